package state

// chromeRows is the title line plus the status bar.
const chromeRows = 2

// Resize records the terminal size; the list gets what the chrome leaves.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height - chromeRows
	if s.Height < 1 {
		s.Height = 1
	}
	return follow(s)
}

// MoveCursor moves the selection by delta items, clamped to the loaded
// items, and scrolls so the selection stays visible.
func MoveCursor(s UIState, delta int) UIState {
	s.Cursor += delta
	return follow(clampCursor(s))
}

// PageDown moves the selection one screen forward.
func PageDown(s UIState) UIState { return MoveCursor(s, s.Height) }

// PageUp moves the selection one screen back.
func PageUp(s UIState) UIState { return MoveCursor(s, -s.Height) }

func Home(s UIState) UIState {
	s.Cursor = 0
	return follow(s)
}

func End(s UIState) UIState {
	s.Cursor = s.Count - 1
	return follow(clampCursor(s))
}

// SetCount updates the number of loaded items, keeping the selection valid.
func SetCount(s UIState, n int) UIState {
	s.Count = n
	return clampCursor(s)
}

func SetLoad(s UIState, l LoadState) UIState {
	s.Load = l
	return s
}

func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

func SetNotice(s UIState, notice string) UIState {
	s.Notice = notice
	return s
}

func clampCursor(s UIState) UIState {
	if s.Cursor >= s.Count {
		s.Cursor = s.Count - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	return s
}

// follow scrolls the minimum amount that keeps the cursor on screen.
func follow(s UIState) UIState {
	if s.Height <= 0 {
		return s
	}
	if s.Cursor < s.ScrollV {
		s.ScrollV = s.Cursor
	}
	if s.Cursor >= s.ScrollV+s.Height {
		s.ScrollV = s.Cursor - s.Height + 1
	}
	if s.ScrollV < 0 {
		s.ScrollV = 0
	}
	return s
}
