package out

import (
	"context"
	"fmt"
	"io"

	timerout "flowstreak/internal/modules/timer/port/out"
)

// BellNotifier rings the terminal bell on completion.
type BellNotifier struct {
	w       io.Writer
	enabled bool
}

func NewBellNotifier(w io.Writer, enabled bool) timerout.Notifier {
	return &BellNotifier{w: w, enabled: enabled}
}

func (n *BellNotifier) Notify(_ context.Context) error {
	if !n.enabled || n.w == nil {
		return nil
	}
	if _, err := io.WriteString(n.w, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}
