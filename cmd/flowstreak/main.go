package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"flowstreak/internal/bootstrap"
	calendardto "flowstreak/internal/modules/calendar/dto"
	timerdto "flowstreak/internal/modules/timer/dto"
	apperrors "flowstreak/internal/platform/errors"
	"flowstreak/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "flowstreak",
		Short:         "Focus timer with a daily streak calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", config.DefaultDataDir(), "directory holding the database, log and config.yaml")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newTimerCmd(&dataDir))
	root.AddCommand(newTodayCmd(&dataDir))
	root.AddCommand(newStreakCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newCalendarCmd(&dataDir))
	root.AddCommand(newDoctorCmd(&dataDir))
	return root
}

func loadApp(dataDir string, out io.Writer) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, bootstrap.Options{Bell: out})
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the flowstreak terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newTimerCmd(dataDir *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Focus timer"}

	var minutes int
	run := &cobra.Command{
		Use:   "run [--minutes N]",
		Short: "Count down in the foreground and record the session on completion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minutes < 0 {
				return fmt.Errorf("--minutes must be positive")
			}
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			length := minutes
			if length == 0 {
				length = app.Config.TimerMinutes
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus for %d minutes, ctrl-c to abort\n", length)
			out, err := bootstrap.RunTimer(ctx, app, length, func(state timerdto.StateOutput) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s remaining\n", state.Clock)
			})
			if errors.Is(err, context.Canceled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "aborted, nothing recorded")
				return nil
			}
			if err != nil {
				return err
			}
			if !out.Recorded {
				return fmt.Errorf("session completed but could not be recorded, see %s", app.Config.LogPath)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session complete: +%d minutes run=%s\n", out.Credited, out.RunID)
			return nil
		},
	}
	run.Flags().IntVar(&minutes, "minutes", 0, "countdown length (defaults to timer_minutes)")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the timer running in another flowstreak process",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.TimerCLI.Status(context.Background())
			if errors.Is(err, apperrors.ErrNoActiveRun) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active timer")
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "run=%s status=%s remaining=%ds preset=%ds updated=%s\n",
				out.RunID, out.Status, out.RemainingSeconds, out.PresetSeconds, out.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"))
			return nil
		},
	}

	timer.AddCommand(run, status)
	return timer
}

func newTodayCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's focus minutes and the current streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.HistoryCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "date: %s\nminutes: %d\nsessions: %d\nstreak: %d\n",
				out.Today.Date, out.Today.Minutes, out.Today.Sessions, out.Streak)
			return nil
		},
	}
}

func newStreakCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current and longest streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.HistoryCLI.Overview(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current=%d longest=%d active_days=%d total_minutes=%d total_sessions=%d\n",
				out.Streak, out.LongestStreak, out.ActiveDays, out.TotalMinutes, out.TotalSessions)
			return nil
		},
	}
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Session history"}

	history.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded days, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			days, err := app.HistoryCLI.Days(context.Background())
			if err != nil {
				return err
			}
			if len(days) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions recorded")
				return nil
			}
			for _, d := range days {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d min\tlevel %d\t%d sessions\n", d.Date, d.Minutes, d.Level, d.Sessions)
			}
			return nil
		},
	})

	var format string
	export := &cobra.Command{
		Use:   "export [--format yaml|json]",
		Short: "Write the raw history to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			payload, err := app.HistoryCLI.Export(context.Background(), format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}
	export.Flags().StringVar(&format, "format", "yaml", "export format: yaml|json")

	history.AddCommand(export)
	return history
}

func newCalendarCmd(dataDir *string) *cobra.Command {
	var offset int
	calendar := &cobra.Command{
		Use:   "calendar [--offset N]",
		Short: "Print the activity calendar for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			month, err := app.CalendarCLI.Month(context.Background(), offset)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderMonth(month))
			return nil
		},
	}
	calendar.Flags().IntVar(&offset, "offset", 0, "months from the current month (-12..12)")

	calendar.AddCommand(&cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Show details for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			day, err := app.CalendarCLI.Day(context.Background(), args[0], 0)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n%d minutes, %d sessions\n", day.Weekday, day.LongDate, day.Minutes, day.Sessions)
			if day.NoActivity {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no activity on this day")
			}
			return nil
		},
	})
	return calendar
}

func newDoctorCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Validate stored history and report legacy counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.HistoryCLI.Check(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "history found=%t schema_valid=%t days=%d derived_sessions=%d\n", out.HistoryFound, out.SchemaValid, out.Days, out.DerivedSessions)
			for _, p := range out.Problems {
				_, _ = fmt.Fprintf(w, "  problem: %s\n", p)
			}
			if out.LegacyPresent {
				_, _ = fmt.Fprintf(w, "legacy counters (ignored): sessions=%d totalMinutes=%d\n", out.LegacySessions, out.LegacyTotalMinutes)
			}
			if !out.SchemaValid {
				return fmt.Errorf("%w: stored history failed validation", apperrors.ErrCorruptHistory)
			}
			return nil
		},
	}
}

// shades indexes a display level to a plain-text intensity mark.
var shades = []string{" ", "░", "▒", "▓", "█"}

func renderMonth(month calendardto.MonthOutput) string {
	var sb strings.Builder
	prev, next := "<", ">"
	if !month.CanPrev {
		prev = " "
	}
	if !month.CanNext {
		next = " "
	}
	_, _ = fmt.Fprintf(&sb, "%s %s %s\n", prev, month.Title, next)
	for _, label := range month.Weekdays {
		_, _ = fmt.Fprintf(&sb, "%-4s", label)
	}
	sb.WriteString("\n")
	for _, week := range month.Weeks {
		for _, cell := range week {
			if !cell.IsCurrentMonth {
				sb.WriteString("  · ")
				continue
			}
			mark := shades[0]
			if cell.DisplayLevel >= 0 && cell.DisplayLevel < len(shades) {
				mark = shades[cell.DisplayLevel]
			}
			if cell.IsToday {
				mark = "*"
			}
			_, _ = fmt.Fprintf(&sb, "%2d%s ", cell.Day, mark)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Less " + strings.Join(shades[1:], "") + " More\n")
	return sb.String()
}
