package render

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go"
	fb "github.com/gonutz/framebuffer"
	"github.com/pkg/errors"

	"github.com/rook-computer/blastoff/internal/state"
)

// FBRenderer renders to the Linux framebuffer using an offscreen logical canvas.
type FBRenderer struct {
	Path   string
	Logger Logger

	// The device can show up late during boot; Start retries opening it.
	OpenAttempts uint
	OpenDelay    time.Duration

	fbDev   *fb.Device
	canvas  *Canvas
	running atomic.Bool

	mu      sync.Mutex
	current Screen
}

func NewFBRenderer(path string) *FBRenderer {
	if path == "" {
		path = DefaultFramebuffer
	}
	return &FBRenderer{Path: path, OpenAttempts: 5, OpenDelay: 200 * time.Millisecond}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	var dev *fb.Device
	err := retry.Do(
		func() error {
			var openErr error
			dev, openErr = fb.Open(r.Path)
			return openErr
		},
		retry.Context(ctx),
		retry.Attempts(r.OpenAttempts),
		retry.Delay(r.OpenDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if r.Logger != nil {
				r.Logger.Errorf("fb", "open %s attempt %d: %v", r.Path, n+1, err)
			}
		}),
	)
	if err != nil {
		return errors.Wrapf(err, "open framebuffer %s", r.Path)
	}
	r.fbDev = dev
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	r.canvas = NewCanvas(CanvasWidth, CanvasHeight, r.Logger)
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		_ = r.current.Stop()
		r.current = nil
	}
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// SetScreen replaces the screen drawn on the next frame.
func (r *FBRenderer) SetScreen(screen Screen) {
	r.mu.Lock()
	r.current = screen
	r.mu.Unlock()
}

func (r *FBRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil || r.fbDev == nil {
		return
	}

	r.canvas.FillBackground()
	r.current.Draw(r.canvas, snap)
	blit(r.fbDev, r.canvas.Image())
}

// RunLoop redraws at a fixed frame rate until the context is done.
func (r *FBRenderer) RunLoop(ctx context.Context, store *state.Store) {
	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := store.Snapshot()
			r.RedrawWithState(snap)
			if r.Logger != nil && time.Since(lastLog) > 10*time.Second {
				r.Logger.Infof("fb", "heartbeat frame, phase=%s count=%d", snap.Phase, snap.Tick.Count)
				lastLog = time.Now()
			}
		}
	}
}
