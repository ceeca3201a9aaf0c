package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// withSpinner runs fn while animating a progress indicator on stderr. The
// spinner stops and the line is cleared before withSpinner returns, so
// callers can print results immediately afterwards. Cancelling ctx stops
// the animation but fn is still responsible for honoring the context.
func withSpinner(ctx context.Context, message string, fn func() error) error {
	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(message))
				i++
			}
		}
	}()

	err := fn()
	close(done)
	<-stopped
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(message)+4))
	return err
}
