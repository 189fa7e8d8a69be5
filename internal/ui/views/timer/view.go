package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timerdto "flowstreak/internal/modules/timer/dto"
	"flowstreak/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimerPort interface {
	Toggle(ctx context.Context) timerdto.StateOutput
	Reset(ctx context.Context) timerdto.StateOutput
	QuickSet(ctx context.Context, minutes int) (timerdto.StateOutput, error)
	Tick(ctx context.Context) timerdto.TickOutput
	State() timerdto.StateOutput
}

// ─── messages ────────────────────────────────────────────────────────────────

// TickMsg fires once per second while the program runs.
type TickMsg time.Time

// CompletedMsg is emitted when a countdown reaches zero.
type CompletedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     TimerPort
	state    timerdto.StateOutput
	bar      progress.Model
	presets  []int
	interval time.Duration
	notice   string
	invalid  bool
	width    int
	height   int
}

func New(port TimerPort, presets []int) Model {
	bar := progress.New(progress.WithSolidFill(string(theme.Current.Primary)), progress.WithoutPercentage())
	m := Model{port: port, bar: bar, presets: presets, interval: time.Second}
	if port != nil {
		m.state = port.State()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-8, 48)

	case TickMsg:
		if m.port == nil {
			return m, m.tickCmd()
		}
		out := m.port.Tick(context.Background())
		m.state = out.State
		cmds := []tea.Cmd{m.tickCmd()}
		if out.Completed {
			m.notice = "Session complete"
			m.invalid = false
			cmds = append(cmds, func() tea.Msg { return CompletedMsg{} })
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.port == nil {
			return m, nil
		}
		switch msg.String() {
		case " ", "enter":
			m.state = m.port.Toggle(context.Background())
			m.notice, m.invalid = "", false
		case "r":
			m.state = m.port.Reset(context.Background())
			m.notice, m.invalid = "", false
		default:
			if idx, ok := presetIndex(msg.String()); ok && idx < len(m.presets) {
				m.SetMinutes(m.presets[idx])
			}
		}
	}
	return m, nil
}

// SetMinutes applies a quick-set preset.
func (m *Model) SetMinutes(minutes int) {
	if m.port == nil {
		return
	}
	state, err := m.port.QuickSet(context.Background(), minutes)
	if err != nil {
		m.notice = err.Error()
		m.invalid = true
		return
	}
	m.state = state
	m.notice = ""
	m.invalid = false
}

func (m *Model) Toggle() {
	if m.port != nil {
		m.state = m.port.Toggle(context.Background())
	}
}

func (m *Model) Reset() {
	if m.port != nil {
		m.state = m.port.Reset(context.Background())
	}
}

// Running reports whether the countdown is active.
func (m Model) Running() bool {
	return m.state.Status == "running"
}

func (m Model) State() timerdto.StateOutput {
	return m.state
}

func (m Model) View() string {
	var sb strings.Builder
	clock := lipgloss.NewStyle().Bold(true).Foreground(theme.Current.Text).Render(m.state.Clock)
	sb.WriteString(theme.Title.Render("Focus") + "\n\n")
	sb.WriteString(clock + "  " + theme.Muted.Render(statusLabel(m.state.Status)) + "\n\n")
	sb.WriteString(m.bar.ViewAs(m.state.Progress) + "\n\n")

	presets := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		label := fmt.Sprintf("[%d] %dm", i+1, p)
		if p*60 == m.state.Preset {
			presets = append(presets, theme.Hot.Render(label))
		} else {
			presets = append(presets, theme.Muted.Render(label))
		}
	}
	sb.WriteString(strings.Join(presets, "  ") + "\n")
	sb.WriteString(theme.Muted.Render("space start/pause  r reset") + "\n")
	switch {
	case m.invalid:
		sb.WriteString("\n" + theme.Error.Render(m.notice) + "\n")
	case m.notice != "":
		sb.WriteString("\n" + theme.Hot.Render(m.notice) + "\n")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(sb.String()))
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func presetIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

func statusLabel(status string) string {
	if status == "idle" || status == "" {
		return "ready"
	}
	return status
}
