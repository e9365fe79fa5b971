package statusbar

import (
	"fmt"
	"strings"

	"paginator/internal/tui/state"
)

// Info is what the status bar shows besides UI state.
type Info struct {
	Context   string // pagination context state
	Direction string // last observed scroll direction
	Page      int
	Pages     int
}

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState, info Info) string {
	load := "[READY]"
	switch s.Load {
	case state.Loading:
		load = "[LOADING]"
	case state.LoadFailed:
		load = "[FAILED]"
	case state.Exhausted:
		load = "[END]"
	}
	pos := fmt.Sprintf("%d/%d", s.Cursor+1, s.Count)
	if s.Count == 0 {
		pos = "0/0"
	}
	page := fmt.Sprintf("page %d", info.Page)
	if info.Pages > 0 {
		page = fmt.Sprintf("page %d/%d", info.Page, info.Pages)
	}
	parts := []string{load, pos, page, "V:" + fmt.Sprint(s.ScrollV)}
	if info.Direction != "" {
		parts = append(parts, "dir:"+info.Direction)
	}
	if info.Context != "" {
		parts = append(parts, "ctx:"+info.Context)
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
