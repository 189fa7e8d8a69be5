package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	calendarinadapter "flowstreak/internal/modules/calendar/adapter/in"
	calendaroutadapter "flowstreak/internal/modules/calendar/adapter/out"
	calendarservice "flowstreak/internal/modules/calendar/service"
	calendarusecase "flowstreak/internal/modules/calendar/usecase"
	historyinadapter "flowstreak/internal/modules/history/adapter/in"
	historyoutadapter "flowstreak/internal/modules/history/adapter/out"
	historyservice "flowstreak/internal/modules/history/service"
	historyusecase "flowstreak/internal/modules/history/usecase"
	timerinadapter "flowstreak/internal/modules/timer/adapter/in"
	timeroutadapter "flowstreak/internal/modules/timer/adapter/out"
	timerdto "flowstreak/internal/modules/timer/dto"
	timerservice "flowstreak/internal/modules/timer/service"
	timerusecase "flowstreak/internal/modules/timer/usecase"
	"flowstreak/internal/platform/clock"
	"flowstreak/internal/platform/config"
	"flowstreak/internal/platform/id"
	"flowstreak/internal/platform/kv"
	"flowstreak/internal/platform/logging"
	"flowstreak/internal/platform/watch"
	uiapp "flowstreak/internal/ui/app"
	"flowstreak/internal/ui/theme"
)

type App struct {
	Config      config.Config
	Logger      hclog.Logger
	HistoryCLI  historyinadapter.CLIHandler
	TimerCLI    timerinadapter.CLIHandler
	TimerTUI    timerinadapter.TUIHandler
	CalendarCLI calendarinadapter.CLIHandler

	closers []io.Closer
}

// Options carries the process-level writers; zero values use the terminal.
type Options struct {
	Bell io.Writer
}

func New(cfg config.Config, opts Options) (*App, error) {
	logger, logFile, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Logger: logger, closers: []io.Closer{logFile}}

	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	app.closers = append(app.closers, store)

	clk := clock.SystemClock{}

	checker, err := historyoutadapter.NewJSONSchemaChecker()
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("compile history schema: %w", err)
	}
	historyStore := historyoutadapter.NewKVHistoryStore(store)
	historyUC := historyusecase.NewInteractor(
		historyservice.NewHistoryService(clk, historyStore),
		historyStore,
		historyoutadapter.NewKVLegacyCounterStore(store),
		checker,
		historyoutadapter.NewExporter(),
	)

	bell := opts.Bell
	if bell == nil {
		bell = os.Stdout
	}
	timerUC := timerusecase.NewInteractor(
		timerservice.NewTimerService(clk, id.UUID{}, cfg.SessionMinutes, 0),
		timeroutadapter.NewHistoryRecorder(historyUC),
		timeroutadapter.NewBellNotifier(bell, cfg.Bell),
		timeroutadapter.NewKVActiveRunStore(store),
		logger.Named("timer"),
	)

	calendarUC := calendarusecase.NewInteractor(calendarservice.NewCalendarService(
		clk,
		calendaroutadapter.NewHistoryDaySource(historyUC),
	))

	app.HistoryCLI = historyinadapter.NewCLIHandler(historyUC)
	app.TimerCLI = timerinadapter.NewCLIHandler(timerUC)
	app.TimerTUI = timerinadapter.NewTUIHandler(timerUC)
	app.CalendarCLI = calendarinadapter.NewCLIHandler(calendarUC)
	return app, nil
}

// Close releases the store and the log file, in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	if err := theme.Apply(app.Config.Theme); err != nil {
		return err
	}
	logger := app.Logger.Named("ui")

	changes := make(chan struct{}, 1)
	watcher := watch.New([]string{app.Config.DBPath}, app.Config.RefreshInterval, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	watcher.Start()
	defer watcher.Stop()

	if app.Config.TimerMinutes*60 != app.TimerTUI.State().Preset {
		if _, err := app.TimerTUI.QuickSet(context.Background(), app.Config.TimerMinutes); err != nil {
			return err
		}
	}

	model := uiapp.NewModel(app.TimerTUI, app.HistoryCLI, app.CalendarCLI, app.Config.QuickPresets, changes, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	logger.Info("tui started", "data_dir", app.Config.DataDir, "theme", app.Config.Theme)
	_, err := program.Run()

	// Leaving mid-countdown discards the run.
	if state := app.TimerTUI.State(); state.Status != "idle" {
		app.TimerTUI.Reset(context.Background())
		logger.Info("discarded unfinished timer", "remaining", state.Remaining, "run_id", state.RunID)
	}
	return err
}

// RunTimer counts down in the foreground, reporting each whole minute to onMinute.
func RunTimer(ctx context.Context, app *App, minutes int, onMinute func(timerdto.StateOutput)) (timerdto.RunOutput, error) {
	if minutes == 0 {
		minutes = app.Config.TimerMinutes
	}
	return app.TimerCLI.Run(ctx, minutes, func(state timerdto.StateOutput) {
		if onMinute != nil && state.Status == "running" && state.Remaining%60 == 0 {
			onMinute(state)
		}
	})
}
