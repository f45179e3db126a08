package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Bar receives the bytes read from one source.
type Bar interface {
	io.Writer
	Finish() error
}

// Tracker hands out a Bar per source.
type Tracker interface {
	Track(source string, size int64) Bar
}

type nopTracker struct{}

type nopBar struct{}

// NewNopTracker returns a Tracker whose bars discard everything.
func NewNopTracker() Tracker {
	return nopTracker{}
}

func (nopTracker) Track(string, int64) Bar { return nopBar{} }

func (nopBar) Write(p []byte) (int, error) { return len(p), nil }

func (nopBar) Finish() error { return nil }

type barTracker struct {
	w io.Writer
}

// NewBarTracker returns a Tracker drawing a byte progress bar per source on w.
func NewBarTracker(w io.Writer) Tracker {
	return &barTracker{w: w}
}

func (t *barTracker) Track(source string, size int64) Bar {
	return progressbar.NewOptions64(
		size,
		progressbar.OptionSetWriter(t.w),
		progressbar.OptionSetDescription("[LOADING] "+source),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
