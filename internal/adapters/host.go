package adapters

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// CLIHost is the host of a command line run. Reloading clears the pending
// state and tells the user the app starts over.
type CLIHost struct {
	out          io.Writer
	clearPending func() error
	logger       *zap.Logger
	reloads      int
}

func NewCLIHost(out io.Writer, clearPending func() error, logger *zap.Logger) *CLIHost {
	return &CLIHost{out: out, clearPending: clearPending, logger: logger}
}

func (h *CLIHost) Reload() {
	h.reloads++
	if h.clearPending != nil {
		if err := h.clearPending(); err != nil {
			h.logger.Warn("could not clear pending state", zap.Error(err))
		}
	}
	fmt.Fprintln(h.out, "🔄 Starting over with an empty map")
}

// Reloaded reports whether Reload was called during this run.
func (h *CLIHost) Reloaded() bool {
	return h.reloads > 0
}
