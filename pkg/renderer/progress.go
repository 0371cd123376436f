package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Progress observes a render: Start with the pixel count, one Increment
// per written pixel, and Finish with a completion message. Implementations
// must not fail the render.
type Progress interface {
	Start(total int)
	Increment()
	Finish(message string)
}

// NopProgress discards all progress reports
type NopProgress struct{}

func (NopProgress) Start(int) {}
func (NopProgress) Increment() {}
func (NopProgress) Finish(string) {}

// BarProgress draws a terminal progress bar
type BarProgress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBarProgress creates a progress bar that renders to w
func NewBarProgress(w io.Writer) *BarProgress {
	return &BarProgress{w: w}
}

// Start creates a bar sized for total pixels
func (p *BarProgress) Start(total int) {
	p.bar = progressbar.NewOptions64(int64(total),
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("px"),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// Increment advances the bar by one pixel. It is a no-op before Start.
func (p *BarProgress) Increment() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Finish completes the bar and prints message on its own line
func (p *BarProgress) Finish(message string) {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
	fmt.Fprintln(p.w, message)
}
