// Package progress provides progress indicators for long-running operations.
package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/promptpack/promptpack/internal/logging"
	"github.com/promptpack/promptpack/internal/ui"
)

// Bar wraps progressbar functionality with integration to promptpack's UI and logging.
type Bar struct {
	bar     *progressbar.ProgressBar
	enabled bool
	desc    string
}

// Options configures the progress bar behavior.
type Options struct {
	// Max is the maximum value for the progress bar (total steps).
	Max int64
	// Description is the prefix text shown before the progress bar.
	Description string
	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer
	// ShowElapsed shows elapsed time on completion.
	ShowElapsed bool
	// ShowCount shows current/total count (e.g., "5/10").
	ShowCount bool
}

// DefaultOptions returns sensible defaults for CLI progress bars.
func DefaultOptions() Options {
	return Options{
		Max:         100,
		Description: "Converting",
		Writer:      os.Stderr,
		ShowElapsed: true,
		ShowCount:   true,
	}
}

// New creates a new progress bar with the given options.
// The bar is only shown if:
//   - Colors are enabled (respects NO_COLOR and --no-color)
//   - Output is a terminal
//   - Not in debug mode (to avoid interfering with logs)
func New(opts Options) *Bar {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	enabled := shouldShowProgress(opts.Writer)

	b := &Bar{
		enabled: enabled,
		desc:    opts.Description,
	}

	if !enabled {
		// Log start at debug level instead
		logging.Debug(fmt.Sprintf("%s started", opts.Description),
			logging.Count(int(opts.Max)))
		return b
	}

	barOpts := []progressbar.Option{
		progressbar.OptionSetDescription(opts.Description),
		progressbar.OptionSetWriter(opts.Writer),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(65 * time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(opts.Writer, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionEnableColorCodes(ui.IsColorEnabled()),
	}
	if opts.ShowCount {
		barOpts = append(barOpts, progressbar.OptionShowCount())
	}
	if opts.ShowElapsed {
		barOpts = append(barOpts, progressbar.OptionShowElapsedTimeOnFinish())
	}

	b.bar = progressbar.NewOptions64(opts.Max, barOpts...)

	return b
}

// Add increments the progress bar by n steps.
func (b *Bar) Add(n int) error {
	if !b.enabled {
		return nil
	}
	return b.bar.Add(n)
}

// Set sets the progress bar to a specific value.
func (b *Bar) Set(n int) error {
	if !b.enabled {
		return nil
	}
	return b.bar.Set(n)
}

// Describe updates the progress bar description.
func (b *Bar) Describe(desc string) {
	b.desc = desc
	if !b.enabled {
		return
	}
	b.bar.Describe(desc)
}

// Finish completes the progress bar and logs completion.
func (b *Bar) Finish() error {
	if !b.enabled {
		logging.Debug(fmt.Sprintf("%s completed", b.desc))
		return nil
	}
	return b.bar.Finish()
}

// Clear removes the progress bar from the terminal.
func (b *Bar) Clear() error {
	if !b.enabled {
		return nil
	}
	return b.bar.Clear()
}

// IsFinished returns true if the progress bar has reached its max value.
func (b *Bar) IsFinished() bool {
	if !b.enabled {
		return false
	}
	return b.bar.IsFinished()
}

// shouldShowProgress determines if progress bars should be displayed.
// Progress is disabled when output is not a terminal, colors are off,
// or the logger runs at debug level.
func shouldShowProgress(w io.Writer) bool {
	if !ui.IsColorEnabled() {
		return false
	}

	if f, ok := w.(*os.File); ok {
		if !ui.IsInteractive(f) {
			return false
		}
	}

	if logging.Default().Enabled(context.Background(), logging.LevelDebug) {
		return false
	}

	return true
}

// Simple creates a progress bar with default presentation for max steps.
func Simple(max int64, description string) *Bar {
	return New(Options{
		Max:         max,
		Description: description,
		Writer:      os.Stderr,
		ShowElapsed: true,
		ShowCount:   true,
	})
}
