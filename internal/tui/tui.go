package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"paginator/internal/feed"
	"paginator/internal/logger"
	"paginator/internal/pagination"
	"paginator/internal/scroll"
	"paginator/internal/tui/state"
	"paginator/internal/tui/util"
	"paginator/internal/tui/widgets/helpoverlay"
	"paginator/internal/tui/widgets/statusbar"
)

// Options configures the feed list.
type Options struct {
	Title          string
	Provider       feed.Provider
	PageSize       int
	LeadingScreens float64
	Directions     scroll.Direction
	NoColor        bool
	// Copy puts text on the clipboard; defaults to the system clipboard.
	Copy func(string) error
}

// Run shows an infinitely scrolling list fed by opts.Provider until the
// user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	m := newModel(ctx, opts)
	defer m.close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// ===== Model =====

type pageMsg struct {
	number int
	page   feed.Page
	err    error
}

type model struct {
	ctx    context.Context
	opts   Options
	log    *zap.Logger
	keys   keyMap
	styles util.Styles

	spinner spinner.Model
	surface *surface
	pagers  *pagination.Registry
	pager   *pagination.Paginator
	ui      state.UIState

	items   []feed.Item
	page    int // last page loaded
	pages   int
	lastDir scroll.Direction
	lastErr error

	// commands produced by the paginator while handling a message
	pending []tea.Cmd
}

func newModel(ctx context.Context, opts Options) *model {
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	if opts.LeadingScreens <= 0 {
		opts.LeadingScreens = pagination.DefaultLeadingScreens
	}
	if opts.Directions.IsEmpty() {
		opts.Directions = pagination.DefaultScrollable
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.Title == "" {
		opts.Title = "Feed"
	}
	log := logger.FromContext(ctx).Named("tui")
	m := &model{
		ctx:     ctx,
		opts:    opts,
		log:     log,
		keys:    defaultKeyMap(),
		styles:  util.NewStyles(util.DefaultPalette(), util.NoColor(opts.NoColor)),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		surface: newSurface(),
	}
	m.pagers = pagination.NewRegistry(
		pagination.WithDelegate(m),
		pagination.WithScrollableDirections(opts.Directions),
		pagination.WithLeadingScreens(opts.LeadingScreens),
		pagination.WithLogger(log.Named("pagination")),
	)
	m.pager = m.pagers.For(m.surface)
	m.surface.ObserveContentOffset(func(c pagination.OffsetChange) {
		if d := scroll.Between(c.Old, c.New); !d.IsEmpty() {
			m.lastDir = d
		}
	})
	return m
}

// close stops paginating the list.
func (m *model) close() { m.pagers.Remove(m.surface) }

// PrefetchNextPage implements pagination.Delegate. It runs inside Update, so
// the fetch is queued as a command rather than started here.
func (m *model) PrefetchNextPage(_ *pagination.Paginator, pc *pagination.Context) {
	pc.Start()
	m.lastErr = nil
	m.ui = state.SetLoad(m.ui, state.Loading)
	m.pending = append(m.pending, m.fetch(m.page+1), m.spinner.Tick)
}

func (m *model) fetch(n int) tea.Cmd {
	provider, size, ctx := m.opts.Provider, m.opts.PageSize, m.ctx
	return func() tea.Msg {
		p, err := provider.FetchPage(ctx, n, size)
		return pageMsg{number: n, page: p, err: err}
	}
}

func (m *model) Init() tea.Cmd { return nil }

// Update handles all TUI interactions.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.surface.Resize(msg.Width, m.ui.Height)
		m.render()
		m.settle()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.ui = state.ToggleHelp(m.ui)
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copySelected()
			return m, nil
		case key.Matches(msg, m.keys.Retry):
			if m.pager.Context().IsFailed() {
				m.PrefetchNextPage(m.pager, m.pager.Context())
			}
		case key.Matches(msg, m.keys.Up):
			m.navigate(state.MoveCursor(m.ui, -1))
		case key.Matches(msg, m.keys.Down):
			m.navigate(state.MoveCursor(m.ui, 1))
		case key.Matches(msg, m.keys.PageUp):
			m.navigate(state.PageUp(m.ui))
		case key.Matches(msg, m.keys.PageDown):
			m.navigate(state.PageDown(m.ui))
		case key.Matches(msg, m.keys.Home):
			m.navigate(state.Home(m.ui))
		case key.Matches(msg, m.keys.End):
			m.navigate(state.End(m.ui))
		}
		if m.ui.Load == state.Loading {
			m.render()
		}

	case pageMsg:
		m.handlePage(msg)

	case spinner.TickMsg:
		if m.ui.Load != state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.render()
		return m, cmd
	}
	return m, m.flush()
}

func (m *model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *model) navigate(s state.UIState) {
	m.ui = state.SetNotice(s, "")
	m.render()
	m.surface.ScrollTo(m.ui.ScrollV)
}

func (m *model) handlePage(msg pageMsg) {
	pc := m.pager.Context()
	if msg.number != m.page+1 {
		// stale answer for a page that was already handled
		return
	}
	switch {
	case errors.Is(msg.err, feed.ErrNoMorePages):
		pc.Finish(true)
		m.pager.SetEnabled(false)
		m.ui = state.SetLoad(m.ui, state.Exhausted)
		m.log.Debug("feed exhausted", zap.Int("page", msg.number))
	case msg.err != nil:
		pc.Finish(false)
		m.lastErr = msg.err
		m.ui = state.SetLoad(m.ui, state.LoadFailed)
		m.log.Warn("page fetch failed", zap.Int("page", msg.number), zap.Error(msg.err))
	default:
		m.items = append(m.items, msg.page.Items...)
		m.page = msg.number
		m.pages = msg.page.TotalPages
		pc.Finish(true)
		m.ui = state.SetCount(m.ui, len(m.items))
		if msg.page.HasNext() {
			m.ui = state.SetLoad(m.ui, state.Ready)
		} else {
			m.pager.SetEnabled(false)
			m.ui = state.SetLoad(m.ui, state.Exhausted)
		}
		m.log.Debug("page loaded",
			zap.Int("page", msg.number),
			zap.Int("items", len(msg.page.Items)),
			zap.Int("total_pages", msg.page.TotalPages))
	}
	m.render()
	if m.ui.Load == state.Ready {
		// the new content may still leave the tail within reach
		m.settle()
	}
}

// settle re-evaluates the current offset and shows the loading footer if
// that queued a page.
func (m *model) settle() {
	m.surface.Settle()
	if m.ui.Load == state.Loading {
		m.render()
	}
}

func (m *model) copySelected() {
	if len(m.items) == 0 {
		return
	}
	title := m.items[m.ui.Cursor].Title
	if err := m.opts.Copy(title); err != nil {
		m.ui = state.SetNotice(m.ui, "Copy failed: "+err.Error())
		return
	}
	m.ui = state.SetNotice(m.ui, "Copied: "+title)
}

// render rebuilds the list content from the loaded items.
func (m *model) render() {
	var b strings.Builder
	for i, it := range m.items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.row(i, it))
	}
	if footer := m.footer(); footer != "" {
		if len(m.items) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(footer)
	}
	m.surface.SetContent(b.String())
}

// row renders item i with a one-cell cursor column in front of its number.
func (m *model) row(i int, it feed.Item) string {
	marker := " "
	if i == m.ui.Cursor {
		marker = m.styles.Selected.Render(">")
	}
	line := fmt.Sprintf("%s%4d. %s", marker, i+1, it.Title)
	if it.Rating > 0 {
		line += "  " + m.styles.Rating.Render(fmt.Sprintf("★ %.1f", it.Rating))
	}
	if it.Overview != "" {
		line += "  " + m.styles.Faint.Render(it.Overview)
	}
	return line
}

func (m *model) footer() string {
	switch m.ui.Load {
	case state.Loading:
		return m.styles.Loading.Render(fmt.Sprintf("  %s loading page %d…", m.spinner.View(), m.page+1))
	case state.LoadFailed:
		msg := "unknown error"
		if m.lastErr != nil {
			msg = m.lastErr.Error()
		}
		return m.styles.Error.Render(fmt.Sprintf("  page %d failed: %s (r to retry)", m.page+1, msg))
	case state.Exhausted:
		return m.styles.Faint.Render("  · end of feed ·")
	}
	return ""
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.opts.Title) + "\n")
	if m.ui.ShowHelp {
		b.WriteString(m.styles.Help.Render(helpoverlay.NewHelpOverlay().View(m.ui)) + "\n")
	} else {
		b.WriteString(m.surface.View() + "\n")
	}
	info := statusbar.Info{
		Context: m.pager.Context().State().String(),
		Page:    m.page,
		Pages:   m.pages,
	}
	if !m.lastDir.IsEmpty() {
		info.Direction = m.lastDir.String()
	}
	b.WriteString(m.styles.Status.Render(statusbar.NewStatusBar().View(m.ui, info)))
	return b.String()
}
