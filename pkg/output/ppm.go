package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-raytracer/pkg/core"
)

// PPMWriter writes the plain-text P3 format: a "P3\n<w> <h>\n255\n" header
// followed by one "<r> <g> <b>\n" line per pixel
type PPMWriter struct {
	dst      io.Writer
	buf      *bufio.Writer
	expected int
	written  int
	header   bool
}

// NewPPMWriter creates a P3 writer. If dst is an io.Closer it is closed by Close.
func NewPPMWriter(dst io.Writer) *PPMWriter {
	return &PPMWriter{
		dst: dst,
		buf: bufio.NewWriter(dst),
	}
}

func (p *PPMWriter) WriteHeader(width, height int) error {
	p.expected = width * height
	p.header = true
	_, err := fmt.Fprintf(p.buf, "P3\n%d %d\n255\n", width, height)
	return err
}

func (p *PPMWriter) WritePixel(px core.RGB) error {
	if !p.header {
		return ErrHeaderNotWritten
	}
	if p.written >= p.expected {
		return fmt.Errorf("%w: too many pixels", ErrPixelCount)
	}
	p.written++
	_, err := fmt.Fprintf(p.buf, "%d %d %d\n", px.R, px.G, px.B)
	return err
}

// Close flushes buffered output and reports ErrPixelCount for a short image
func (p *PPMWriter) Close() error {
	err := p.buf.Flush()
	if closeErr := closeUnderlying(p.dst); err == nil {
		err = closeErr
	}
	if err == nil && p.written != p.expected {
		err = fmt.Errorf("%w: wrote %d of %d", ErrPixelCount, p.written, p.expected)
	}
	return err
}
