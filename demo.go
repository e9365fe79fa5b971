package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	cfg "paginator/internal/config"
	"paginator/internal/feed"
	"paginator/internal/logger"
	appTUI "paginator/internal/tui"
)

func newDemoCmd() *cobra.Command {
	v := viper.New()
	c := &cobra.Command{
		Use:   "demo",
		Short: "Scroll an infinitely paginated feed",
		Long: `Shows a feed one page at a time. Scrolling toward the end of the loaded
items requests the next page once fewer than --leading-screens screens of
content remain.

Sources:
  memory   generated items (--total-items, --latency)
  file     items from a YAML file (--file)
  http     a JSON endpoint answering ?page=N&page_size=M (--url)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, v)
		},
	}
	f := c.Flags()
	f.String("source", "", "feed source: memory | file | http")
	f.String("file", "", "YAML feed file for --source file")
	f.String("url", "", "endpoint for --source http")
	f.Int("page-size", 0, "items per page")
	f.Int("total-items", 0, "number of generated items for --source memory")
	f.Duration("latency", 0, "simulated page latency for --source memory")
	f.Float64("leading-screens", 0, "screens of content to keep ahead of the viewport")
	f.String("directions", "", "scrollable directions, e.g. vertical or up|down")
	f.Bool("no-color", false, "disable colors")

	for key, flag := range map[string]string{
		"source":          "source",
		"file":            "file",
		"url":             "url",
		"page_size":       "page-size",
		"total_items":     "total-items",
		"latency":         "latency",
		"leading_screens": "leading-screens",
		"directions":      "directions",
		"no_color":        "no-color",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
	return c
}

func runDemo(cmd *cobra.Command, v *viper.Viper) error {
	c, log, err := loadSettings(cmd, v)
	if err != nil {
		return err
	}
	if c.LogFile == "" {
		// the alternate screen owns the terminal
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	provider, err := newProvider(c)
	if err != nil {
		return err
	}
	dirs, err := c.ScrollableDirections()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.With(logger.ContextWithLogger(ctx, log), zap.String("source", c.Source))

	log.Info("starting demo",
		zap.Int("page_size", c.PageSize),
		zap.Float64("leading_screens", c.LeadingScreens),
		zap.Stringer("directions", dirs))

	return appTUI.Run(ctx, appTUI.Options{
		Title:          fmt.Sprintf("paginator demo (%s)", c.Source),
		Provider:       provider,
		PageSize:       c.PageSize,
		LeadingScreens: c.LeadingScreens,
		Directions:     dirs,
		NoColor:        c.NoColor,
	})
}

func newProvider(c *cfg.Config) (feed.Provider, error) {
	switch c.Source {
	case "memory":
		return feed.NewMemoryProvider(c.TotalItems, c.Latency), nil
	case "file":
		p, err := feed.LoadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("load feed: %w", err)
		}
		return p, nil
	case "http":
		return feed.NewHTTPProvider(c.URL), nil
	}
	return nil, fmt.Errorf("unknown source %q", c.Source)
}
