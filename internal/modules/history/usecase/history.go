package usecase

import (
	"context"
	"fmt"
	"strings"

	"flowstreak/internal/modules/history/domain"
	historydto "flowstreak/internal/modules/history/dto"
	historyin "flowstreak/internal/modules/history/port/in"
	historyout "flowstreak/internal/modules/history/port/out"
	"flowstreak/internal/modules/history/service"
	apperrors "flowstreak/internal/platform/errors"
)

type Interactor struct {
	svc      *service.HistoryService
	store    historyout.HistoryStore
	legacy   historyout.LegacyCounterStore
	checker  historyout.SchemaChecker
	exporter historyout.Exporter
}

func NewInteractor(
	svc *service.HistoryService,
	store historyout.HistoryStore,
	legacy historyout.LegacyCounterStore,
	checker historyout.SchemaChecker,
	exporter historyout.Exporter,
) historyin.Usecase {
	return &Interactor{svc: svc, store: store, legacy: legacy, checker: checker, exporter: exporter}
}

func (i *Interactor) Record(ctx context.Context, input historydto.RecordInput) (historydto.RecordOutput, error) {
	date, total, err := i.svc.Record(ctx, input.Minutes)
	if err != nil {
		return historydto.RecordOutput{}, err
	}
	return historydto.RecordOutput{Date: date, Added: input.Minutes, Minutes: total}, nil
}

func (i *Interactor) Days(ctx context.Context) ([]historydto.DayOutput, error) {
	days, err := i.svc.Days(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]historydto.DayOutput, 0, len(days))
	for _, d := range days {
		out = append(out, historydto.DayOutput{
			Date:     d.Date,
			Minutes:  d.Minutes,
			Level:    d.Level,
			Sessions: domain.SessionsFor(d.Minutes),
		})
	}
	return out, nil
}

func (i *Interactor) Today(ctx context.Context) (historydto.TodayOutput, error) {
	h, err := i.svc.Load(ctx)
	if err != nil {
		return historydto.TodayOutput{}, err
	}
	return todayFrom(h, i.svc.Today()), nil
}

func (i *Interactor) Overview(ctx context.Context) (historydto.OverviewOutput, error) {
	h, err := i.svc.Load(ctx)
	if err != nil {
		return historydto.OverviewOutput{}, err
	}
	days := domain.Aggregate(h)
	out := historydto.OverviewOutput{
		Today:         todayFrom(h, i.svc.Today()),
		Streak:        i.svc.Streak(days),
		LongestStreak: domain.LongestStreak(days),
	}
	for _, d := range days {
		if d.Minutes <= 0 {
			continue
		}
		out.ActiveDays++
		out.TotalMinutes += d.Minutes
		out.TotalSessions += domain.SessionsFor(d.Minutes)
	}
	return out, nil
}

func (i *Interactor) Export(ctx context.Context, input historydto.ExportInput) ([]byte, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = "yaml"
	}
	if format != "yaml" && format != "json" {
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrInvalidInput, input.Format)
	}
	if i.exporter == nil {
		return nil, fmt.Errorf("history exporter is not configured")
	}
	h, err := i.svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return i.exporter.Export(h, format)
}

func (i *Interactor) Check(ctx context.Context) (historydto.CheckOutput, error) {
	out := historydto.CheckOutput{SchemaValid: true}

	raw, found, err := i.store.LoadRaw(ctx)
	if err != nil {
		return historydto.CheckOutput{}, err
	}
	out.HistoryFound = found
	if found && i.checker != nil {
		problems, err := i.checker.Validate(raw)
		if err != nil {
			return historydto.CheckOutput{}, err
		}
		out.Problems = problems
		out.SchemaValid = len(problems) == 0
	}
	if out.SchemaValid && found {
		h, err := i.svc.Load(ctx)
		if err != nil {
			out.SchemaValid = false
			out.Problems = append(out.Problems, err.Error())
		} else {
			out.Days = len(h)
			for _, minutes := range h {
				out.DerivedSessions += domain.SessionsFor(minutes)
			}
		}
	}

	if i.legacy != nil {
		legacy, err := i.legacy.LoadLegacy(ctx)
		if err != nil {
			return historydto.CheckOutput{}, err
		}
		out.LegacyPresent = legacy.Present
		out.LegacySessions = legacy.Sessions
		out.LegacyTotalMinutes = legacy.TotalMinutes
	}
	return out, nil
}

func todayFrom(h domain.History, date string) historydto.TodayOutput {
	minutes := h[date]
	return historydto.TodayOutput{Date: date, Minutes: minutes, Sessions: domain.SessionsFor(minutes)}
}
