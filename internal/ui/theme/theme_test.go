package theme_test

import (
	"strings"
	"testing"

	"flowstreak/internal/ui/theme"
)

func TestApplyKnownSchemes(t *testing.T) {
	for _, name := range theme.Names() {
		if err := theme.Apply(name); err != nil {
			t.Fatalf("apply %s: %v", name, err)
		}
		if theme.Current.Name != name {
			t.Fatalf("current scheme %q, want %q", theme.Current.Name, name)
		}
		if theme.LevelColor(0) != theme.Current.Levels[0] || theme.LevelColor(9) != theme.Current.Levels[0] {
			t.Fatalf("%s: out-of-range levels must map to the empty colour", name)
		}
	}
	if err := theme.Apply("sepia"); err == nil {
		t.Fatalf("expected error for unknown scheme")
	}
	_ = theme.Apply("dark")
}

func TestLegend(t *testing.T) {
	legend := theme.Legend()
	if !strings.Contains(legend, "Less") || !strings.Contains(legend, "More") || strings.Count(legend, "■") != 5 {
		t.Fatalf("unexpected legend %q", legend)
	}
}

func TestNames(t *testing.T) {
	got := strings.Join(theme.Names(), ",")
	if got != "dark,high-contrast,light" {
		t.Fatalf("unexpected names %s", got)
	}
}
