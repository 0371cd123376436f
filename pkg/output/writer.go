package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raytracer/pkg/core"
)

var (
	ErrUnknownFormat    = errors.New("output: unknown image format")
	ErrHeaderNotWritten = errors.New("output: pixel written before header")
	ErrPixelCount       = errors.New("output: pixel count does not match header")
)

// Format identifies an image encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ImageWriter is an image sink. The header is written once, followed by
// exactly width*height pixels in row-major order, top to bottom.
type ImageWriter interface {
	WriteHeader(width, height int) error
	WritePixel(px core.RGB) error
	Close() error
}

// ParseFormat converts a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatPPM:
		return FormatPPM, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from a file extension, defaulting to PPM
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return FormatPNG
	}
	return FormatPPM
}

// NewWriter wraps w with an encoder for the given format
func NewWriter(w io.Writer, format Format) (ImageWriter, error) {
	switch format {
	case FormatPPM:
		return NewPPMWriter(w), nil
	case FormatPNG:
		return NewPNGWriter(w), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Create opens path for writing and returns a writer that closes the file
// when the image is complete. A path of "-" writes to stdout.
func Create(path string, format Format) (ImageWriter, error) {
	if path == "-" {
		return NewWriter(nopCloser{os.Stdout}, format)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("output: create %s: %w", path, err)
	}

	writer, err := NewWriter(file, format)
	if err != nil {
		file.Close()
		return nil, err
	}
	return writer, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func closeUnderlying(w io.Writer) error {
	if closer, ok := w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
