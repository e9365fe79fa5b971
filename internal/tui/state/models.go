package state

// LoadState mirrors the pagination context for display purposes.
type LoadState int

const (
	Ready LoadState = iota
	Loading
	LoadFailed
	Exhausted
)

// UIState holds cross-widget UI state used by the list, status bar and help.
type UIState struct {
	// Layout & scrolling
	Width   int
	Height  int // rows available to the list viewport
	Cursor  int // selected item index
	ScrollV int // first visible line
	Count   int // number of items loaded

	Load     LoadState
	ShowHelp bool

	// Notices and ephemeral messages
	Notice string
}
