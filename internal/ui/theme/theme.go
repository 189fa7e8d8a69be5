package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Scheme is one colour set. Levels holds the five calendar steps, empty first.
type Scheme struct {
	Name          string
	Background    lipgloss.Color
	Surface       lipgloss.Color
	Primary       lipgloss.Color
	PrimaryLight  lipgloss.Color
	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Levels        [5]lipgloss.Color
}

var schemes = map[string]Scheme{
	"light": {
		Name:          "light",
		Background:    "#FFFFFF",
		Surface:       "#F9FAFB",
		Primary:       "#0EA5E9",
		PrimaryLight:  "#E0F2FE",
		Text:          "#1F2937",
		TextSecondary: "#6B7280",
		Border:        "#E5E7EB",
		Error:         "#DC2626",
		Success:       "#059669",
		Levels:        [5]lipgloss.Color{"#F3F4F6", "#DBEAFE", "#93C5FD", "#3B82F6", "#1E40AF"},
	},
	"dark": {
		Name:          "dark",
		Background:    "#111827",
		Surface:       "#1F2937",
		Primary:       "#38BDF8",
		PrimaryLight:  "#075985",
		Text:          "#F9FAFB",
		TextSecondary: "#9CA3AF",
		Border:        "#374151",
		Error:         "#EF4444",
		Success:       "#10B981",
		Levels:        [5]lipgloss.Color{"#374151", "#075985", "#0369A1", "#0284C7", "#38BDF8"},
	},
	"high-contrast": {
		Name:          "high-contrast",
		Background:    "#000000",
		Surface:       "#000000",
		Primary:       "#00D9FF",
		PrimaryLight:  "#003344",
		Text:          "#FFFFFF",
		TextSecondary: "#CCCCCC",
		Border:        "#FFFFFF",
		Error:         "#FF0000",
		Success:       "#00FF00",
		Levels:        [5]lipgloss.Color{"#333333", "#004466", "#006699", "#0088CC", "#00D9FF"},
	},
}

var (
	Current Scheme

	Pane  lipgloss.Style
	Title lipgloss.Style
	Muted lipgloss.Style
	Hot   lipgloss.Style
	Error lipgloss.Style
	Bar   lipgloss.Style
)

func init() {
	_ = Apply("dark")
}

// Names lists the available schemes in a stable order.
func Names() []string {
	out := make([]string, 0, len(schemes))
	for name := range schemes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Apply switches the package styles to the named scheme. Call it before the program starts.
func Apply(name string) error {
	s, ok := schemes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	Current = s
	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Foreground(s.Text).
		Padding(1, 2)
	Title = lipgloss.NewStyle().Foreground(s.Primary).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(s.TextSecondary)
	Hot = lipgloss.NewStyle().Foreground(s.Primary).Bold(true)
	Error = lipgloss.NewStyle().Foreground(s.Error)
	Bar = lipgloss.NewStyle().Background(s.Surface).Foreground(s.Text)
	return nil
}

// LevelColor maps an activity level to the current scale; out-of-range levels are empty.
func LevelColor(level int) lipgloss.Color {
	if level < 0 || level >= len(Current.Levels) {
		return Current.Levels[0]
	}
	return Current.Levels[level]
}

// Legend renders the "Less ■■■■■ More" strip.
func Legend() string {
	out := Muted.Render("Less ")
	for _, c := range Current.Levels {
		out += lipgloss.NewStyle().Foreground(c).Render("■")
	}
	return out + Muted.Render(" More")
}
