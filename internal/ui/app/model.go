package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	calendardto "flowstreak/internal/modules/calendar/dto"
	historydto "flowstreak/internal/modules/history/dto"
	timerdto "flowstreak/internal/modules/timer/dto"
	"flowstreak/internal/ui/components"
	"flowstreak/internal/ui/theme"
	calendarview "flowstreak/internal/ui/views/calendar"
	timerview "flowstreak/internal/ui/views/timer"
	todayview "flowstreak/internal/ui/views/today"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type timerPort interface {
	Toggle(ctx context.Context) timerdto.StateOutput
	Reset(ctx context.Context) timerdto.StateOutput
	QuickSet(ctx context.Context, minutes int) (timerdto.StateOutput, error)
	Tick(ctx context.Context) timerdto.TickOutput
	State() timerdto.StateOutput
}

type historyPort interface {
	Overview(ctx context.Context) (historydto.OverviewOutput, error)
}

type calendarPort interface {
	Month(ctx context.Context, offset int) (calendardto.MonthOutput, error)
	Day(ctx context.Context, date string, offset int) (calendardto.DayOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabToday
	tabCalendar
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Today", "Calendar",
}

// ─── async messages ───────────────────────────────────────────────────────────

// dataChangedMsg is delivered when the history database changed on disk.
type dataChangedMsg struct{}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Reset   key.Binding
	Presets key.Binding
	Month   key.Binding
	Details key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer")),
		Presets: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "quick set")),
		Month:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "prev/next month")),
		Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "day details")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Presets},
		{k.Month, k.Details},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the refresh loop,
// the global help overlay, and the command palette. The timer keeps ticking
// whichever tab is shown.
type Model struct {
	logger  hclog.Logger
	changes <-chan struct{}

	timerView timerview.Model
	todayView todayview.Model
	calView   calendarview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

// NewModel builds the root model. changes may be nil; each value received on it
// reloads the history-derived views.
func NewModel(
	timer timerPort,
	history historyPort,
	calendar calendarPort,
	presets []int,
	changes <-chan struct{},
	logger hclog.Logger,
) Model {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	var timerV timerview.Model
	if timer != nil {
		timerV = timerview.New(timerPortBridge{p: timer}, presets)
	} else {
		timerV = timerview.New(nil, presets)
	}
	var todayV todayview.Model
	if history != nil {
		todayV = todayview.New(history)
	} else {
		todayV = todayview.New(nil)
	}
	var calV calendarview.Model
	if calendar != nil {
		calV = calendarview.New(calendar)
	} else {
		calV = calendarview.New(nil)
	}

	return Model{
		logger:    logger,
		changes:   changes,
		timerView: timerV,
		todayView: todayV,
		calView:   calV,
		activeTab: tabTimer,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.todayView.Init(),
		m.calView.Init(),
		m.waitForChangeCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Background messages are routed before the palette so the timer and
	// refreshes keep running while it is open.
	switch msg := msg.(type) {
	case timerview.TickMsg:
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(msg)
		return m, cmd

	case timerview.CompletedMsg:
		m.status = "session complete"
		return m, m.reloadCmd()

	case dataChangedMsg:
		return m, tea.Batch(m.reloadCmd(), m.waitForChangeCmd())

	case todayview.LoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("load overview", "error", msg.Err)
		}
		var cmd tea.Cmd
		m.todayView, cmd = m.todayView.Update(msg)
		return m, cmd

	case calendarview.MonthLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("load calendar month", "error", msg.Err)
		}
		var cmd tea.Cmd
		m.calView, cmd = m.calView.Update(msg)
		return m, cmd

	case calendarview.DayLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("load calendar day", "error", msg.Err)
			m.status = "no details for that day"
		} else {
			m.activeTab = tabCalendar
		}
		var cmd tea.Cmd
		m.calView, cmd = m.calView.Update(msg)
		return m, cmd
	}

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabToday:
		m.todayView, tabCmd = m.todayView.Update(msg)
	case tabCalendar:
		m.calView, tabCmd = m.calView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabToday:
		return m.todayView.View()
	case tabCalendar:
		return m.calView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "flowstreak  " + strings.Join(parts, sep)
	return theme.Bar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if state := m.timerView.State(); state.Status != "" && state.Status != "idle" && m.activeTab != tabTimer {
		left = theme.Hot.Render("● "+state.Clock) + "  " + left
	}
	left = theme.Muted.Render(fmt.Sprintf("🔥 %d", m.todayView.Streak())) + "  " + left
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + theme.Bar.Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "timer:start":
		if !m.timerView.Running() {
			m.timerView.Toggle()
		}
		m.activeTab = tabTimer
		m.status = "timer running"

	case "timer:pause":
		if m.timerView.Running() {
			m.timerView.Toggle()
		}
		m.status = "timer paused"

	case "timer:reset":
		m.timerView.Reset()
		m.status = "timer reset"

	case "timer:set":
		if len(parts) < 2 {
			m.status = "usage: timer:set <minutes>"
			return m, nil
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil || minutes <= 0 {
			m.status = "invalid minutes"
			return m, nil
		}
		m.timerView.SetMinutes(minutes)
		m.activeTab = tabTimer
		m.status = fmt.Sprintf("timer set to %d minutes", minutes)

	case "calendar:prev":
		m.activeTab = tabCalendar
		return m, m.calView.Shift(-1)

	case "calendar:next":
		m.activeTab = tabCalendar
		return m, m.calView.Shift(1)

	case "calendar:today":
		m.activeTab = tabCalendar
		return m, m.calView.Jump(0)

	case "calendar:day":
		if len(parts) < 2 {
			m.status = "usage: calendar:day <YYYY-MM-DD>"
			return m, nil
		}
		return m, m.calView.ShowDay(parts[1])

	case "refresh":
		m.status = "refreshed"
		return m, m.reloadCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.todayView, _ = m.todayView.Update(sz)
	m.calView, _ = m.calView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) reloadCmd() tea.Cmd {
	return tea.Batch(m.todayView.Reload(), m.calView.Reload())
}

func (m Model) waitForChangeCmd() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return dataChangedMsg{}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type timerPortBridge struct{ p timerPort }

func (b timerPortBridge) Toggle(ctx context.Context) timerdto.StateOutput {
	return b.p.Toggle(ctx)
}
func (b timerPortBridge) Reset(ctx context.Context) timerdto.StateOutput {
	return b.p.Reset(ctx)
}
func (b timerPortBridge) QuickSet(ctx context.Context, minutes int) (timerdto.StateOutput, error) {
	return b.p.QuickSet(ctx, minutes)
}
func (b timerPortBridge) Tick(ctx context.Context) timerdto.TickOutput {
	return b.p.Tick(ctx)
}
func (b timerPortBridge) State() timerdto.StateOutput {
	return b.p.State()
}
