package render

import "image/color"

// Display palette and logical canvas.
var (
	Foreground = color.RGBA{R: 0xF5, G: 0xF5, B: 0xF0, A: 0xFF} // #f5f5f0
	Background = color.RGBA{R: 0x0B, G: 0x10, B: 0x2A, A: 0xFF} // #0b102a
	Accent     = color.RGBA{R: 0xFF, G: 0x7A, B: 0x1A, A: 0xFF} // #ff7a1a

	// Logical canvas size; scaled to framebuffer.
	CanvasWidth  = 1920
	CanvasHeight = 1080
)

const (
	DefaultFramebuffer = "/dev/fb0"

	defaultFontSize = 48
	fontDPI         = 96
	framesPerSecond = 30
)
