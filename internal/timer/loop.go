package timer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rook-computer/blastoff/internal/state"
)

// DefaultInterval is the wall-clock length of one tick.
const DefaultInterval = time.Second

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Loop prints one line per tick and sleeps between ticks.
//
// Down counters run while the value is positive and then print the liftoff
// line. Up counters run until ctx is cancelled. Cancellation is observed both
// before each line and during the sleep; once observed, nothing else is printed
// and Run returns ErrAborted.
type Loop struct {
	Counter  *Counter
	Interval time.Duration
	Clock    Clock
	Out      io.Writer

	// Store, when set, receives a snapshot after every printed line.
	Store  *state.Store
	Logger Logger
}

func NewLoop(counter *Counter, out io.Writer) *Loop {
	return &Loop{Counter: counter, Interval: DefaultInterval, Clock: SystemClock, Out: out}
}

// Run blocks until the loop ends. It returns nil after the liftoff line of a
// countdown and ErrAborted when ctx is cancelled first.
func (l *Loop) Run(ctx context.Context) error {
	if l.Clock == nil {
		l.Clock = SystemClock
	}
	if l.Store != nil {
		l.Store.SetPhase(state.COUNTING)
	}
	l.infof("start direction=%s count=%d", l.Counter.Direction(), l.Counter.Value())

	if l.Counter.Direction() == Up {
		return l.countUp(ctx)
	}
	return l.countDown(ctx)
}

func (l *Loop) countDown(ctx context.Context) error {
	for l.Counter.Continue() {
		if err := l.tick(ctx, CountdownLine(l.Counter.Value())); err != nil {
			return err
		}
		l.Counter.Step()
	}

	l.emit(LiftoffLine)
	if l.Store != nil {
		l.Store.Terminate(LiftoffLine)
	}
	l.infof("liftoff")
	return nil
}

func (l *Loop) countUp(ctx context.Context) error {
	for {
		l.Counter.Step()
		if err := l.tick(ctx, CountUpLine(l.Counter.Value())); err != nil {
			return err
		}
	}
}

func (l *Loop) tick(ctx context.Context, line string) error {
	if ctx.Err() != nil {
		return l.abort()
	}

	l.emit(line)
	if l.Store != nil {
		l.Store.UpdateTick(state.TickInfo{
			Direction: l.Counter.Direction().String(),
			Count:     l.Counter.Value(),
			Line:      line,
		})
	}

	if err := l.Clock.Sleep(ctx, l.Interval); err != nil {
		return l.abort()
	}
	return nil
}

func (l *Loop) abort() error {
	if l.Store != nil {
		l.Store.Terminate(AbortLine)
	}
	l.infof("aborted at count=%d", l.Counter.Value())
	return ErrAborted
}

func (l *Loop) emit(line string) {
	if _, err := fmt.Fprintln(l.Out, line); err != nil && l.Logger != nil {
		l.Logger.Errorf("timer", "write failed: %v", err)
	}
}

func (l *Loop) infof(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Infof("timer", format, args...)
	}
}
