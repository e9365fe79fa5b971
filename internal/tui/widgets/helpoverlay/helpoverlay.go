package helpoverlay

import (
	"fmt"
	"strings"

	"paginator/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current load state indicated.
func (HelpOverlay) View(s state.UIState) string {
	load := "ready"
	switch s.Load {
	case state.Loading:
		load = "loading"
	case state.LoadFailed:
		load = "failed"
	case state.Exhausted:
		load = "all pages loaded"
	}
	sections := []struct {
		title string
		keys  []string
	}{
		{"Navigation", []string{"↑/↓ or k/j: move", "PgUp/PgDn: fast", "Home/End: edges"}},
		{"Actions", []string{"y: copy title", "r: retry failed page", "q: quit"}},
		{"View", []string{"?: toggle this help"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Feed: %s)\n", load)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
