package today

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	historydto "flowstreak/internal/modules/history/dto"
	"flowstreak/internal/ui/theme"
)

type OverviewPort interface {
	Overview(ctx context.Context) (historydto.OverviewOutput, error)
}

type LoadedMsg struct {
	Overview historydto.OverviewOutput
	Err      error
}

// Model shows today's progress and the streak counters.
type Model struct {
	port     OverviewPort
	overview historydto.OverviewOutput
	width    int
	height   int
}

func New(port OverviewPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		out, err := m.port.Overview(context.Background())
		return LoadedMsg{Overview: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case LoadedMsg:
		// Unreadable history shows as zeros; the error is logged by the caller.
		if msg.Err != nil {
			m.overview = historydto.OverviewOutput{}
		} else {
			m.overview = msg.Overview
		}
	}
	return m, nil
}

// Streak is the last loaded current streak.
func (m Model) Streak() int {
	return m.overview.Streak
}

func (m Model) View() string {
	o := m.overview
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today") + "  " + theme.Muted.Render(o.Today.Date) + "\n\n")
	sb.WriteString(stat(o.Today.Minutes, "minutes") + "    " + stat(o.Today.Sessions, "sessions") + "\n\n")
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("🔥 %d", o.Streak)) + " " + theme.Muted.Render(dayWord(o.Streak)+" streak") + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("longest %d %s", o.LongestStreak, dayWord(o.LongestStreak))) + "\n\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d minutes across %d sessions on %d days", o.TotalMinutes, o.TotalSessions, o.ActiveDays)) + "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, theme.Pane.Render(sb.String()))
}

func stat(value int, label string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Current.Text).Render(fmt.Sprintf("%d", value)) + " " + theme.Muted.Render(label)
}

func dayWord(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
