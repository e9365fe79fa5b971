package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paginator/internal/feed"
	"paginator/internal/logger"
	"paginator/internal/pagination"
	"paginator/internal/tui/state"
)

// drain runs cmd and every command it leads to, feeding page results back
// into the model. Spinner ticks are dropped so the loop ends.
func drain(m *model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case pageMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func send(m *model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	drain(m, cmd)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

type flakyProvider struct {
	feed.Provider
	failures int
}

func (f *flakyProvider) FetchPage(ctx context.Context, number, size int) (feed.Page, error) {
	if f.failures > 0 {
		f.failures--
		return feed.Page{}, errors.New("connection reset")
	}
	return f.Provider.FetchPage(ctx, number, size)
}

func newTestModel(t *testing.T, p feed.Provider) *model {
	t.Helper()
	log, _ := logger.TestLogger()
	ctx := logger.ContextWithLogger(context.Background(), log)
	m := newModel(ctx, Options{Provider: p, PageSize: 5, NoColor: true, Copy: func(string) error { return nil }})
	t.Cleanup(m.close)
	return m
}

func TestModelPrefetchesLeadingScreens(t *testing.T) {
	m := newTestModel(t, feed.NewMemoryProvider(100, 0))

	// 10 rows for the list; two leading screens keep loading until more than
	// 20 lines remain below the view.
	send(m, tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.Len(t, m.items, 35)
	assert.Equal(t, 7, m.page)
	assert.Equal(t, 20, m.pages)
	assert.Equal(t, state.Ready, m.ui.Load)
	assert.True(t, m.pager.Context().IsCompleted())

	// jumping to the end pulls the next page
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 34, m.ui.Cursor)
	assert.True(t, m.pager.Context().IsFetching())
	assert.Equal(t, state.Loading, m.ui.Load)
	require.NotNil(t, cmd)
	drain(m, cmd)
	assert.Greater(t, len(m.items), 35)
}

func TestModelStopsWhenExhausted(t *testing.T) {
	m := newTestModel(t, feed.NewMemoryProvider(7, 0))
	send(m, tea.WindowSizeMsg{Width: 80, Height: 12})

	assert.Len(t, m.items, 7)
	assert.Equal(t, state.Exhausted, m.ui.Load)
	assert.False(t, m.pager.Enabled())
	assert.Contains(t, m.View(), "end of feed")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Nil(t, cmd)
}

func TestModelRetryAfterFailure(t *testing.T) {
	p := &flakyProvider{Provider: feed.NewMemoryProvider(7, 0), failures: 1}
	m := newTestModel(t, p)

	send(m, tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.Empty(t, m.items)
	assert.Equal(t, state.LoadFailed, m.ui.Load)
	assert.True(t, m.pager.Context().IsFailed())
	assert.Contains(t, m.View(), "connection reset")

	send(m, runes("r"))
	assert.Len(t, m.items, 7)
	assert.Equal(t, state.Exhausted, m.ui.Load)
}

func TestModelIgnoresStalePages(t *testing.T) {
	m := newTestModel(t, feed.NewMemoryProvider(7, 0))
	send(m, tea.WindowSizeMsg{Width: 80, Height: 12})
	require.Len(t, m.items, 7)

	m.Update(pageMsg{number: 1, page: feed.Page{Number: 1, TotalPages: 2, Items: []feed.Item{{Title: "dup"}}}})
	assert.Len(t, m.items, 7)
}

func TestModelCopyAndHelp(t *testing.T) {
	var copied string
	m := newTestModel(t, feed.NewMemoryProvider(7, 0))
	m.opts.Copy = func(s string) error { copied = s; return nil }
	send(m, tea.WindowSizeMsg{Width: 80, Height: 12})

	send(m, tea.KeyMsg{Type: tea.KeyDown})
	send(m, runes("y"))
	assert.Equal(t, "Item 2", copied)
	assert.Equal(t, "Copied: Item 2", m.ui.Notice)

	m.opts.Copy = func(string) error { return errors.New("no clipboard") }
	send(m, runes("y"))
	assert.True(t, strings.HasPrefix(m.ui.Notice, "Copy failed"))

	send(m, runes("?"))
	assert.True(t, m.ui.ShowHelp)
	assert.Contains(t, m.View(), "Navigation")

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelHiddenSurfaceDoesNotLoad(t *testing.T) {
	m := newTestModel(t, feed.NewMemoryProvider(7, 0))
	// no size yet: nothing is visible, so nothing is requested
	m.surface.Settle()
	assert.Nil(t, m.flush())
	assert.Equal(t, pagination.Idle, m.pager.Context().State())
}

func TestRowKeepsNumberBesideCursor(t *testing.T) {
	m := newTestModel(t, feed.NewMemoryProvider(1, 0))
	m.styles.Selected = lipgloss.NewStyle()
	m.ui = state.SetCount(m.ui, 1200)
	m.ui = state.End(m.ui)
	require.Equal(t, 1199, m.ui.Cursor)

	sel := m.row(1199, feed.Item{Title: "Item 1200"})
	assert.Equal(t, ">1200. Item 1200", sel)
	assert.Equal(t, "    1. Item 1", m.row(0, feed.Item{Title: "Item 1"}))
	assert.Equal(t, " 1000. Item 1000", m.row(999, feed.Item{Title: "Item 1000"}))
}

func TestModelUsesRegistry(t *testing.T) {
	m := newTestModel(t, feed.NewMemoryProvider(7, 0))
	require.Equal(t, 1, m.pagers.Len())
	assert.Same(t, m.pager, m.pagers.For(m.surface))

	m.close()
	assert.Equal(t, 0, m.pagers.Len())
	assert.Nil(t, m.pager.Surface())

	// a closed list no longer requests pages
	send(m, tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.Empty(t, m.items)
	assert.Equal(t, pagination.Idle, m.pager.Context().State())
}
