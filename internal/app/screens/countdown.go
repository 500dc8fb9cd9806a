package screens

import (
	"context"
	"image"
	"strconv"

	"github.com/rook-computer/blastoff/internal/render"
	"github.com/rook-computer/blastoff/internal/render/layout"
	"github.com/rook-computer/blastoff/internal/state"
)

const (
	numeralSize = 360
	captionSize = 56
	padding     = 80
)

// CountdownScreen mirrors the timer: the current count large, and the line
// that was printed for it underneath.
type CountdownScreen struct{}

func (CountdownScreen) Start(ctx context.Context) error { return nil }
func (CountdownScreen) Stop() error                     { return nil }

func (CountdownScreen) Draw(r render.Drawer, st state.State) {
	r.FillBackground()

	if st.Phase == state.IDLE {
		r.DrawTextCentered("ready")
		return
	}

	w, h := r.Size()
	area := layout.Inset(image.Rect(0, 0, w, h), padding)
	top, bottom := layout.SplitTop(area, 2.0/3)

	if st.Phase == state.COUNTING {
		numeral := strconv.Itoa(st.Tick.Count)
		style := render.TextStyle{Color: render.Accent, Size: numeralSize, Align: render.TextAlignCenter}
		m := r.MeasureText(numeral, style)
		r.DrawText(numeral, top.Min.X+top.Dx()/2, top.Min.Y+(top.Dy()-m.Height)/2, style)
	}

	if st.Tick.Line != "" {
		style := render.TextStyle{Color: render.Foreground, Size: captionSize, Align: render.TextAlignCenter}
		m := r.MeasureText(st.Tick.Line, style)
		y := bottom.Min.Y + (bottom.Dy()-m.Height)/2
		if st.Phase == state.TERMINATING {
			y = area.Min.Y + (area.Dy()-m.Height)/2
		}
		r.DrawText(st.Tick.Line, area.Min.X+area.Dx()/2, y, style)
	}
}
