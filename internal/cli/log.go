// Package cli implements the pagen command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Every
// command shares the [CLI] value, which owns the logger; --verbose (-v)
// switches it to debug level and turns on pipeline and server hooks that
// trace each stage.
//
// # Commands
//
// The main commands are:
//   - generate: Generate a page and write it in one of the output formats
//   - inspect: Browse the constraints of a generated page interactively
//   - serve: Serve page generation over HTTP
//   - cache: Manage the rendered image cache
//   - completion: Generate shell completion scripts
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Cleared 12 cached images (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
