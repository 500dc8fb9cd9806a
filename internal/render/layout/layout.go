// Package layout carves the logical canvas into areas for screens.
package layout

import "image"

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Inset shrinks r by pad on every side. A pad larger than half of r
// collapses it onto its center line.
func Inset(r image.Rectangle, pad int) image.Rectangle {
	r = r.Canon()
	if pad <= 0 {
		return r
	}
	dx := clamp(pad, 0, r.Dx()/2)
	dy := clamp(pad, 0, r.Dy()/2)
	return image.Rect(r.Min.X+dx, r.Min.Y+dy, r.Max.X-dx, r.Max.Y-dy)
}

// SplitTop cuts r into a top part holding frac of its height and the rest.
func SplitTop(r image.Rectangle, frac float64) (top, rest image.Rectangle) {
	r = r.Canon()
	h := clamp(int(float64(r.Dy())*frac), 0, r.Dy())
	top = image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+h)
	rest = image.Rect(r.Min.X, r.Min.Y+h, r.Max.X, r.Max.Y)
	return top, rest
}

// SplitLeft cuts r into a left column width pixels wide and the rest.
func SplitLeft(r image.Rectangle, width int) (left, rest image.Rectangle) {
	r = r.Canon()
	w := clamp(width, 0, r.Dx())
	left = image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y)
	rest = image.Rect(r.Min.X+w, r.Min.Y, r.Max.X, r.Max.Y)
	return left, rest
}

// Center places a w×h rectangle in the middle of r, shrunk to fit.
func Center(r image.Rectangle, w, h int) image.Rectangle {
	r = r.Canon()
	w = clamp(w, 0, r.Dx())
	h = clamp(h, 0, r.Dy())
	x := r.Min.X + (r.Dx()-w)/2
	y := r.Min.Y + (r.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Square is the largest square centered in r.
func Square(r image.Rectangle) image.Rectangle {
	r = r.Canon()
	side := r.Dx()
	if r.Dy() < side {
		side = r.Dy()
	}
	return Center(r, side, side)
}
