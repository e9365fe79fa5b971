package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paginator/internal/pagination"
	"paginator/internal/scroll"
)

type checkFlags struct {
	direction  string
	scrollable string
	bounds     string
	content    string
	offset     string
	leading    float64
	rtl        bool
	flip       bool
	hidden     bool
	fetching   bool
}

func newCheckCmd() *cobra.Command {
	var f checkFlags
	c := &cobra.Command{
		Use:   "check",
		Short: "Decide whether a scroll event should request the next page",
		Long: `Evaluates one scroll event against the pagination rules and prints
"fetch" when the next page should be requested, "skip" otherwise.

Example:
  paginator check --direction down --bounds 80x20 --content 80x50 --offset 0,10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.params()
			if err != nil {
				return err
			}
			verdict := "skip"
			if pagination.ShouldRequestNextPage(p) {
				verdict = "fetch"
			}
			fmt.Fprintln(cmd.OutOrStdout(), verdict)
			return nil
		},
	}
	fl := c.Flags()
	fl.StringVar(&f.direction, "direction", "", "direction of the scroll event, e.g. down or right|up")
	fl.StringVar(&f.scrollable, "scrollable", pagination.DefaultScrollable.String(), "directions the list pages in")
	fl.StringVar(&f.bounds, "bounds", "", "visible size, WxH")
	fl.StringVar(&f.content, "content", "", "content size, WxH")
	fl.StringVar(&f.offset, "offset", "0,0", "target content offset, X,Y")
	fl.Float64Var(&f.leading, "leading-screens", pagination.DefaultLeadingScreens, "screens of content to keep ahead of the viewport")
	fl.BoolVar(&f.rtl, "rtl", false, "right-to-left layout")
	fl.BoolVar(&f.flip, "flip", false, "the surface mirrors itself in right-to-left layouts")
	fl.BoolVar(&f.hidden, "hidden", false, "the surface is not on screen")
	fl.BoolVar(&f.fetching, "fetching", false, "a page request is already in flight")
	_ = c.MarkFlagRequired("bounds")
	_ = c.MarkFlagRequired("content")
	return c
}

func (f checkFlags) params() (pagination.Params, error) {
	dir, err := scroll.Parse(f.direction)
	if err != nil {
		return pagination.Params{}, fmt.Errorf("--direction: %w", err)
	}
	scrollable, err := scroll.Parse(f.scrollable)
	if err != nil {
		return pagination.Params{}, fmt.Errorf("--scrollable: %w", err)
	}
	if _, err := pagination.AxisFor(scrollable); err != nil {
		return pagination.Params{}, fmt.Errorf("--scrollable: %w", err)
	}
	bounds, err := scroll.ParseSize(f.bounds)
	if err != nil {
		return pagination.Params{}, fmt.Errorf("--bounds: %w", err)
	}
	content, err := scroll.ParseSize(f.content)
	if err != nil {
		return pagination.Params{}, fmt.Errorf("--content: %w", err)
	}
	offset, err := scroll.ParsePoint(f.offset)
	if err != nil {
		return pagination.Params{}, fmt.Errorf("--offset: %w", err)
	}

	ctx := pagination.NewContext()
	if f.fetching {
		ctx.Start()
	}
	return pagination.Params{
		Context:              ctx,
		ScrollDirection:      dir,
		ScrollableDirections: scrollable,
		Bounds:               scroll.Rect{Origin: offset, Size: bounds},
		ContentSize:          content,
		TargetOffset:         offset,
		LeadingScreens:       f.leading,
		Visible:              !f.hidden,
		RightToLeft:          f.rtl,
		FlipsHorizontally:    f.flip,
	}, nil
}
