package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Canvas is the offscreen Drawer that screens paint into. FBRenderer scales
// it onto the device after every frame.
type Canvas struct {
	img    *image.RGBA
	face   font.Face
	ttFont *truetype.Font
	sized  map[int]font.Face
	logger Logger
}

func NewCanvas(width, height int, logger Logger) *Canvas {
	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		sized:  make(map[int]font.Face),
		logger: logger,
	}
	c.loadFonts()
	return c
}

// Image exposes the backing pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) loadFonts() {
	c.face = basicfont.Face7x13

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		c.errorf("font parse failed, using basicfont: %v", err)
	} else {
		face, ferr := opentype.NewFace(fnt, &opentype.FaceOptions{Size: defaultFontSize, DPI: fontDPI, Hinting: font.HintingFull})
		if ferr != nil {
			c.errorf("font face create failed, using basicfont: %v", ferr)
		} else {
			c.face = face
		}
	}

	// Sized text goes through freetype.
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		c.errorf("truetype parse failed: %v", err)
		return
	}
	c.ttFont = tt
}

func (c *Canvas) faceFor(size int) font.Face {
	if size <= 0 || size == defaultFontSize || c.ttFont == nil {
		return c.face
	}
	if face, ok := c.sized[size]; ok {
		return face
	}
	face := truetype.NewFace(c.ttFont, &truetype.Options{Size: float64(size), DPI: fontDPI, Hinting: font.HintingFull})
	c.sized[size] = face
	return face
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := c.faceFor(style.Size)
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	return TextMetrics{
		Width:      font.MeasureString(face, text).Ceil(),
		Height:     ascent + descent,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: m.Height.Ceil(),
	}
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	metrics := c.MeasureText(text, style)

	switch style.Align {
	case TextAlignCenter:
		x -= metrics.Width / 2
	case TextAlignRight:
		x -= metrics.Width
	}

	fg := style.Color
	if fg == nil {
		fg = Foreground
	}

	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fg),
		Face: c.faceFor(style.Size),
		Dot:  fixed.P(x, y+metrics.Ascent),
	}
	drawer.DrawString(text)
	return metrics
}

func (c *Canvas) DrawTextCentered(text string) {
	w, h := c.Size()
	metrics := c.MeasureText(text, TextStyle{})
	c.DrawText(text, w/2, (h-metrics.Height)/2, TextStyle{Color: Foreground, Align: TextAlignCenter})
}

func (c *Canvas) ImageSize(img image.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode) {
	if img == nil || rect.Empty() {
		return
	}

	dst := rect
	if mode == ScaleModeFit {
		dst = fitRect(img.Bounds(), rect)
	}
	xdraw.NearestNeighbor.Scale(c.img, dst, img, img.Bounds(), xdraw.Over, nil)
}

// fitRect scales src to the largest size that fits rect, keeping the aspect
// ratio, and centers it.
func fitRect(src, rect image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 {
		return image.Rectangle{}
	}

	w := rect.Dx()
	h := sh * w / sw
	if h > rect.Dy() {
		h = rect.Dy()
		w = sw * h / sh
	}

	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

func (c *Canvas) errorf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Errorf("fb", format, args...)
	}
}

// pixelSink is the part of a framebuffer device that blitting needs.
type pixelSink interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blit copies the canvas onto dst with nearest-neighbor scaling.
func blit(dst pixelSink, canvas *image.RGBA) {
	if dst == nil {
		return
	}
	bounds := dst.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	cw := canvas.Bounds().Dx()
	ch := canvas.Bounds().Dy()
	if fbWidth == 0 || fbHeight == 0 {
		return
	}
	for y := 0; y < fbHeight; y++ {
		sy := (y * ch) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * cw) / fbWidth
			pixel := canvas.RGBAAt(sx, sy)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
