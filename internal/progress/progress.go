// Package progress shows a terminal progress bar for long per-document stages.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Bar counts completed items and, when visible, renders a progress bar.
// A nil *Bar is valid and does nothing.
type Bar struct {
	bar   *progressbar.ProgressBar
	total int
	done  int
}

// New creates a bar for total items written to w. The bar renders only when
// visible is true; counting works either way.
func New(w io.Writer, total int, description string, visible bool) *Bar {
	b := &Bar{total: total}
	if !visible || total <= 0 {
		return b
	}

	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
	return b
}

// ForStderr creates a bar on standard error, visible only when stderr is a
// terminal and quiet is false.
func ForStderr(total int, description string, quiet bool) *Bar {
	return New(os.Stderr, total, description, !quiet && IsTerminal(os.Stderr))
}

// Tick records one completed item.
func (b *Bar) Tick() {
	if b == nil {
		return
	}
	b.done++
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

// Done returns the number of completed items.
func (b *Bar) Done() int {
	if b == nil {
		return 0
	}
	return b.done
}

// Finish completes the bar and clears its line.
func (b *Bar) Finish() {
	if b == nil || b.bar == nil {
		return
	}
	_ = b.bar.Finish()
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
