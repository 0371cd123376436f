package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-raytracer/pkg/core"
)

// PNGWriter buffers pixels into an RGBA image and encodes it on Close
type PNGWriter struct {
	dst     io.Writer
	img     *image.RGBA
	written int
}

// NewPNGWriter creates a PNG writer. If dst is an io.Closer it is closed by Close.
func NewPNGWriter(dst io.Writer) *PNGWriter {
	return &PNGWriter{dst: dst}
}

func (p *PNGWriter) WriteHeader(width, height int) error {
	p.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

func (p *PNGWriter) WritePixel(px core.RGB) error {
	if p.img == nil {
		return ErrHeaderNotWritten
	}
	width := p.img.Bounds().Dx()
	if p.written >= width*p.img.Bounds().Dy() {
		return fmt.Errorf("%w: too many pixels", ErrPixelCount)
	}
	p.img.SetRGBA(p.written%width, p.written/width, color.RGBA{R: px.R, G: px.G, B: px.B, A: 255})
	p.written++
	return nil
}

// Image returns the buffered image
func (p *PNGWriter) Image() *image.RGBA {
	return p.img
}

// Close encodes the image. Nothing is encoded for a short image.
func (p *PNGWriter) Close() error {
	var err error
	switch {
	case p.img == nil:
		err = ErrHeaderNotWritten
	case p.written != p.img.Bounds().Dx()*p.img.Bounds().Dy():
		err = fmt.Errorf("%w: wrote %d of %d", ErrPixelCount, p.written, p.img.Bounds().Dx()*p.img.Bounds().Dy())
	default:
		err = png.Encode(p.dst, p.img)
	}

	if closeErr := closeUnderlying(p.dst); err == nil {
		err = closeErr
	}
	return err
}
