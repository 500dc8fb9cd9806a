package timer

import (
	"context"
	"time"
)

// Clock abstracts the per-tick delay so tests can drive the loop without waiting.
type Clock interface {
	// Sleep blocks for d or until ctx is done, whichever comes first.
	// It returns ctx.Err() when the wait was cut short.
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SystemClock waits on the wall clock.
var SystemClock Clock = realClock{}
