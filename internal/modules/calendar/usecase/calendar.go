package usecase

import (
	"context"
	"fmt"

	"flowstreak/internal/modules/calendar/domain"
	calendardto "flowstreak/internal/modules/calendar/dto"
	calendarin "flowstreak/internal/modules/calendar/port/in"
	"flowstreak/internal/modules/calendar/service"
	apperrors "flowstreak/internal/platform/errors"
)

type Interactor struct {
	svc *service.CalendarService
}

func NewInteractor(svc *service.CalendarService) calendarin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Month(ctx context.Context, input calendardto.MonthInput) (calendardto.MonthOutput, error) {
	if err := validateOffset(input.Offset); err != nil {
		return calendardto.MonthOutput{}, err
	}
	month, _, err := i.svc.Month(ctx, input.Offset)
	if err != nil {
		return calendardto.MonthOutput{}, err
	}
	out := calendardto.MonthOutput{
		Year:     month.Year,
		Month:    int(month.Month),
		Title:    month.Title,
		Offset:   month.Offset,
		CanPrev:  month.CanPrev,
		CanNext:  month.CanNext,
		Weekdays: append([]string(nil), domain.Weekdays...),
		Weeks:    make([][]calendardto.CellOutput, 0, len(month.Weeks)),
	}
	for _, week := range month.Weeks {
		row := make([]calendardto.CellOutput, 0, len(week))
		for _, cell := range week {
			row = append(row, calendardto.CellOutput{
				Date:           cell.Date,
				Day:            cell.Day,
				Minutes:        cell.Minutes,
				Level:          cell.Level,
				DisplayLevel:   cell.DisplayLevel(),
				IsCurrentMonth: cell.IsCurrentMonth,
				IsFuture:       cell.IsFuture,
				IsToday:        cell.IsToday,
				Dimmed:         cell.Dimmed(),
			})
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out, nil
}

func (i *Interactor) Day(ctx context.Context, input calendardto.DayInput) (calendardto.DayOutput, error) {
	if err := validateOffset(input.Offset); err != nil {
		return calendardto.DayOutput{}, err
	}
	detail, err := i.svc.Day(ctx, input.Date, input.Offset)
	if err != nil {
		return calendardto.DayOutput{}, err
	}
	return calendardto.DayOutput{
		Date:       detail.Date,
		Weekday:    detail.Weekday,
		LongDate:   detail.LongDate,
		Minutes:    detail.Minutes,
		Sessions:   detail.Sessions,
		Level:      detail.Level,
		IsToday:    detail.IsToday,
		IsFuture:   detail.IsFuture,
		OtherMonth: detail.OtherMonth,
		NoActivity: detail.NoActivity,
	}, nil
}

func validateOffset(offset int) error {
	if offset < -domain.MaxOffset || offset > domain.MaxOffset {
		return fmt.Errorf("%w: month offset %d is outside [-%d, %d]", apperrors.ErrInvalidInput, offset, domain.MaxOffset, domain.MaxOffset)
	}
	return nil
}
