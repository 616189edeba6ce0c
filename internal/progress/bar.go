// Package progress draws a single-line progress bar for long load runs.
package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
)

// DefaultWidth is the bar width in cells.
const DefaultWidth = 50

// Bar redraws itself in place on out whenever the whole percentage changes.
type Bar struct {
	out     io.Writer
	model   progress.Model
	percent int
	drawn   bool
}

// New returns a bar writing to out. width is the bar width in cells.
func New(out io.Writer, width int) *Bar {
	return &Bar{
		out:     out,
		model:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(width)),
		percent: -1,
	}
}

// Update draws done out of total. It matches harness.ProgressFunc.
func (b *Bar) Update(done, total int) {
	if total <= 0 {
		return
	}
	ratio := float64(done) / float64(total)
	percent := int(ratio * 100)
	if percent == b.percent {
		return
	}
	b.percent = percent
	b.drawn = true
	_, _ = fmt.Fprintf(b.out, "\r%s", b.model.ViewAs(ratio))
}

// Clear erases the bar line, if anything was drawn, and resets the bar for
// the next run.
func (b *Bar) Clear() {
	if b.drawn {
		_, _ = fmt.Fprint(b.out, "\r\x1b[2K")
	}
	b.percent = -1
	b.drawn = false
}
