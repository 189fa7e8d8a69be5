package components_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"flowstreak/internal/ui/components"
)

func TestPaletteSubmit(t *testing.T) {
	p := components.NewPalette()
	p.Open()
	if !p.Visible() {
		t.Fatalf("palette should be visible after Open")
	}
	p = typeText(p, "timer:s")
	view := p.View()
	if !strings.Contains(view, "timer:set <minutes>") || !strings.Contains(view, "timer:start") || strings.Contains(view, "calendar:prev") {
		t.Fatalf("unexpected hints in view:\n%s", view)
	}
	p = typeText(p, "et 45")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("palette should close on enter")
	}
	msg, ok := cmd().(components.PaletteSubmitMsg)
	if !ok || msg.Input != "timer:set 45" {
		t.Fatalf("unexpected submit msg %#v", cmd())
	}
}

func TestPaletteCancel(t *testing.T) {
	p := components.NewPalette()
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("palette should close on esc")
	}
	if _, ok := cmd().(components.PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel msg")
	}
}

func typeText(p components.Palette, text string) components.Palette {
	for _, r := range text {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}
