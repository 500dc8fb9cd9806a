package render

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/rook-computer/blastoff/internal/state"
)

// PNGRenderer draws the same screens as FBRenderer but writes each changed
// frame to a PNG file. It lets the display be previewed without a device.
type PNGRenderer struct {
	Path   string
	Logger Logger

	mu      sync.Mutex
	canvas  *Canvas
	current Screen
	last    state.State
	drawn   bool
	frames  int
}

func NewPNGRenderer(path string) *PNGRenderer { return &PNGRenderer{Path: path} }

func (r *PNGRenderer) Start(ctx context.Context) error {
	if r.Path == "" {
		return errors.New("png renderer: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		return errors.Wrap(err, "png renderer")
	}

	r.mu.Lock()
	r.canvas = NewCanvas(CanvasWidth, CanvasHeight, r.Logger)
	r.mu.Unlock()
	return nil
}

func (r *PNGRenderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		_ = r.current.Stop()
		r.current = nil
	}
	return nil
}

func (r *PNGRenderer) SetScreen(screen Screen) {
	r.mu.Lock()
	r.current = screen
	r.drawn = false
	r.mu.Unlock()
}

// Frames reports how many frames were written.
func (r *PNGRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *PNGRenderer) RedrawWithState(snap state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.canvas == nil || r.current == nil {
		return
	}
	if r.drawn && snap == r.last {
		return
	}

	r.canvas.FillBackground()
	r.current.Draw(r.canvas, snap)
	if err := r.write(); err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("png", "%v", err)
		}
		return
	}
	r.last = snap
	r.drawn = true
	r.frames++
}

// write replaces the file atomically so viewers never see a partial frame.
func (r *PNGRenderer) write() error {
	tmp := r.Path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(err, "create frame")
	}
	if err := png.Encode(f, r.canvas.Image()); err != nil {
		f.Close()
		return errors.Wrap(err, "encode frame")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close frame")
	}
	return errors.Wrap(os.Rename(tmp, r.Path), "rename frame")
}

func (r *PNGRenderer) RunLoop(ctx context.Context, store *state.Store) {
	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RedrawWithState(store.Snapshot())
		}
	}
}
