package calendar

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calendardto "flowstreak/internal/modules/calendar/dto"
	"flowstreak/internal/ui/theme"
)

const maxOffset = 12

// ─── port ────────────────────────────────────────────────────────────────────

type CalendarPort interface {
	Month(ctx context.Context, offset int) (calendardto.MonthOutput, error)
	Day(ctx context.Context, date string, offset int) (calendardto.DayOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type MonthLoadedMsg struct {
	Month calendardto.MonthOutput
	Err   error
}

type DayLoadedMsg struct {
	Day calendardto.DayOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   CalendarPort
	offset int
	month  calendardto.MonthOutput
	row    int
	col    int
	detail *calendardto.DayOutput
	width  int
	height int
}

func New(port CalendarPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-reads the viewed month.
func (m Model) Reload() tea.Cmd {
	offset := m.offset
	return func() tea.Msg {
		if m.port == nil {
			return MonthLoadedMsg{}
		}
		month, err := m.port.Month(context.Background(), offset)
		return MonthLoadedMsg{Month: month, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case MonthLoadedMsg:
		// An unreadable month shows as an empty grid; the error is logged by the caller.
		if msg.Err != nil {
			m.month = calendardto.MonthOutput{Offset: m.offset}
			return m, nil
		}
		m.month = msg.Month
		m.clampCursor()

	case DayLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		day := msg.Day
		m.detail = &day

	case tea.KeyMsg:
		if m.detail != nil {
			if msg.String() == "esc" || msg.String() == "enter" {
				m.detail = nil
			}
			return m, nil
		}
		switch msg.String() {
		case "[", "p":
			return m, m.Shift(-1)
		case "]", "n":
			return m, m.Shift(1)
		case "t":
			return m, m.Jump(0)
		case "left", "h":
			m.col--
		case "right", "l":
			m.col++
		case "up", "k":
			m.row--
		case "down", "j":
			m.row++
		case "enter":
			if cell, ok := m.selected(); ok {
				return m, m.loadDayCmd(cell.Date)
			}
		}
		m.clampCursor()
	}
	return m, nil
}

// Shift moves the viewed month by delta, staying within twelve months of today.
func (m *Model) Shift(delta int) tea.Cmd {
	return m.Jump(m.offset + delta)
}

func (m *Model) Jump(offset int) tea.Cmd {
	if offset < -maxOffset || offset > maxOffset {
		return nil
	}
	m.offset = offset
	m.detail = nil
	return m.Reload()
}

// ShowDay opens the detail panel for date.
func (m Model) ShowDay(date string) tea.Cmd {
	return m.loadDayCmd(date)
}

func (m Model) View() string {
	var sb strings.Builder
	prev, next := "‹", "›"
	if m.offset <= -maxOffset {
		prev = " "
	}
	if m.offset >= maxOffset {
		next = " "
	}
	title := m.month.Title
	if title == "" {
		title = "Calendar"
	}
	sb.WriteString(theme.Muted.Render(prev) + "  " + theme.Title.Render(title) + "  " + theme.Muted.Render(next) + "\n\n")

	labels := m.month.Weekdays
	if len(labels) == 0 {
		labels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	}
	header := make([]string, len(labels))
	for i, l := range labels {
		header[i] = theme.Muted.Render(fmt.Sprintf("%-4s", l[:min(len(l), 3)]))
	}
	sb.WriteString(strings.Join(header, "") + "\n")

	for r, week := range m.month.Weeks {
		cells := make([]string, len(week))
		for c, cell := range week {
			cells[c] = renderCell(cell, r == m.row && c == m.col)
		}
		sb.WriteString(strings.Join(cells, "") + "\n")
	}
	sb.WriteString("\n" + theme.Legend() + "\n")
	sb.WriteString(theme.Muted.Render("[/] month  t today  arrows move  enter details") + "\n")

	content := theme.Pane.Render(sb.String())
	if m.detail != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", theme.Pane.Render(renderDetail(*m.detail)))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// ─── private ─────────────────────────────────────────────────────────────────

func renderCell(cell calendardto.CellOutput, selected bool) string {
	style := lipgloss.NewStyle().Foreground(theme.LevelColor(cell.DisplayLevel))
	glyph := "■"
	if cell.Dimmed {
		style = style.Faint(true)
		glyph = "·"
	}
	label := fmt.Sprintf("%2d", cell.Day)
	day := lipgloss.NewStyle().Foreground(theme.Current.Text)
	if cell.Dimmed {
		day = theme.Muted.Faint(true)
	}
	if cell.IsToday {
		day = theme.Hot
	}
	out := style.Render(glyph) + day.Render(label)
	if selected {
		return lipgloss.NewStyle().Reverse(true).Render(out) + " "
	}
	return out + " "
}

func renderDetail(d calendardto.DayOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Weekday) + "\n")
	sb.WriteString(d.LongDate + "\n")
	if d.OtherMonth {
		sb.WriteString(theme.Muted.Render("(Different month)") + "\n")
	}
	sb.WriteString(fmt.Sprintf("\n%d minutes  │  %d sessions\n", d.Minutes, d.Sessions))
	if d.NoActivity {
		sb.WriteString("\n" + theme.Muted.Render("No activity on this day") + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("esc close"))
	return sb.String()
}

func (m Model) selected() (calendardto.CellOutput, bool) {
	if m.row < 0 || m.row >= len(m.month.Weeks) {
		return calendardto.CellOutput{}, false
	}
	week := m.month.Weeks[m.row]
	if m.col < 0 || m.col >= len(week) {
		return calendardto.CellOutput{}, false
	}
	return week[m.col], true
}

func (m *Model) clampCursor() {
	rows := len(m.month.Weeks)
	if rows == 0 {
		m.row, m.col = 0, 0
		return
	}
	m.row = max(0, min(m.row, rows-1))
	m.col = max(0, min(m.col, 6))
}

func (m Model) loadDayCmd(date string) tea.Cmd {
	offset := m.offset
	return func() tea.Msg {
		if m.port == nil {
			return DayLoadedMsg{}
		}
		day, err := m.port.Day(context.Background(), date, offset)
		return DayLoadedMsg{Day: day, Err: err}
	}
}
