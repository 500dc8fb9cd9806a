package screens

import (
	"context"
	"image"
	"sync"

	"github.com/rook-computer/blastoff/internal/render"
	"github.com/rook-computer/blastoff/internal/render/layout"
	"github.com/rook-computer/blastoff/internal/state"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// ServerScreen shows where the server listens, with a QR code of the URL on
// the left.
type ServerScreen struct {
	URL    string
	Logger Logger

	mu sync.RWMutex
	qr image.Image
}

func NewServerScreen(url string, logger Logger) *ServerScreen {
	return &ServerScreen{URL: url, Logger: logger}
}

func (screen *ServerScreen) Start(ctx context.Context) error {
	img, err := render.GenerateQRCodeImage(screen.URL, 0)
	if err != nil {
		if screen.Logger != nil {
			screen.Logger.Errorf("screens", "qr code for %s: %v", screen.URL, err)
		}
		return nil
	}

	screen.mu.Lock()
	screen.qr = img
	screen.mu.Unlock()
	return nil
}

func (screen *ServerScreen) Stop() error { return nil }

func (screen *ServerScreen) Draw(r render.Drawer, st state.State) {
	r.FillBackground()

	w, h := r.Size()
	area := layout.Inset(image.Rect(0, 0, w, h), padding)
	left, right := layout.SplitLeft(area, area.Dy())

	screen.mu.RLock()
	qr := screen.qr
	screen.mu.RUnlock()
	if qr != nil {
		r.DrawImageInRect(qr, layout.Inset(layout.Square(left), padding/2), render.ScaleModeFit)
	} else {
		right = area
	}

	url := st.Server.URL
	if url == "" {
		url = screen.URL
	}

	heading := "Listening on"
	if st.Phase == state.TERMINATING {
		heading = st.Tick.Line
	}

	headStyle := render.TextStyle{Color: render.Foreground, Size: captionSize}
	urlStyle := render.TextStyle{Color: render.Accent, Size: captionSize}
	hm := r.MeasureText(heading, headStyle)
	um := r.MeasureText(url, urlStyle)

	y := right.Min.Y + (right.Dy()-hm.LineHeight-um.Height)/2
	r.DrawText(heading, right.Min.X, y, headStyle)
	r.DrawText(url, right.Min.X, y+hm.LineHeight, urlStyle)
}
