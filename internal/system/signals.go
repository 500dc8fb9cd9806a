package system

import (
	"context"
	"os/signal"
)

// NotifyInterrupt returns a context that is cancelled on the first interrupt
// signal. Call it before any output is produced so an early Ctrl-C is not
// lost to the default handler. The returned stop releases the signal hook.
func NotifyInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, interruptSignals...)
}
