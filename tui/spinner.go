package tui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// spinnerStyle supplies the frames and frame rate of the inline spinner.
var spinnerStyle = spinner.MiniDot

type spinnerWriter struct {
	writer   io.Writer
	interval time.Duration
	err      error
}

func (sw *spinnerWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}

	_, sw.err = fmt.Fprintf(sw.writer, format, args...)
}

type SpinnerOption func(*spinnerWriter)

func WithWriter(w io.Writer) SpinnerOption {
	return func(c *spinnerWriter) {
		c.writer = w
	}
}

func WithInterval(d time.Duration) SpinnerOption {
	return func(c *spinnerWriter) {
		c.interval = d
	}
}

// RunWithSpinner calls fn while animating message on the writer. Non-TTY
// writers get no output.
func RunWithSpinner[T any](message string, fn func() (T, error), opts ...SpinnerOption) (T, error) {
	writer := spinnerWriter{
		writer:   os.Stderr,
		interval: spinnerStyle.FPS,
	}

	for _, opt := range opts {
		opt(&writer)
	}

	if !IsWriterTerminal(writer.writer) {
		return fn()
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(writer.interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			frame := spinnerStyle.Frames[i%len(spinnerStyle.Frames)]
			writer.printf(clearLineReturn+"%s%s%s %s", Cyan, frame, Reset, message)

			select {
			case <-stop:
				writer.printf(clearLineReturn)
				return
			case <-ticker.C:
			}
		}
	}()

	result, err := fn()

	close(stop)
	wg.Wait()

	if err != nil {
		return result, err
	}

	return result, writer.err
}
