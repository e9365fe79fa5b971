package helpoverlay

import (
	"strings"
	"testing"

	"paginator/internal/tui/state"
)

func TestHelpOverlayGroups(t *testing.T) {
	out := NewHelpOverlay().View(state.UIState{Load: state.LoadFailed})
	if !strings.HasPrefix(out, "Help (Feed: failed)") {
		t.Fatalf("missing header: %s", out)
	}
	for _, want := range []string{"Navigation:", "Actions:", "r: retry failed page", "y: copy title"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in help: %s", want, out)
		}
	}
}
