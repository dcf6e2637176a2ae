package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagen/pkg/observability"
)

// traceHooks logs every pipeline event at debug level.
type traceHooks struct {
	logger *log.Logger
}

func (h traceHooks) OnGenerateStart(_ context.Context, seed uint64) {
	h.logger.Debug("generate start", "seed", seed)
}

func (h traceHooks) OnGenerateComplete(_ context.Context, seed uint64, boxes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "seed", seed, "err", err, "duration", d)
		return
	}
	h.logger.Debug("generate done", "seed", seed, "boxes", boxes, "duration", d)
}

func (h traceHooks) OnClosureComplete(_ context.Context, constraints, faulty int, d time.Duration) {
	h.logger.Debug("closure done", "constraints", constraints, "faulty", faulty, "duration", d)
}

func (h traceHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h traceHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err, "duration", d)
		return
	}
	h.logger.Debug("render done", "format", format, "bytes", size, "duration", d)
}

// EnableTracing registers pipeline hooks that log each stage at debug level.
func (c *CLI) EnableTracing() {
	observability.SetPipelineHooks(traceHooks{logger: c.Logger})
}
