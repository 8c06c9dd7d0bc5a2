package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is a Handler that writes structured log lines.
type LogHandler struct {
	logger *log.Logger
}

// NewLogHandler creates a handler around the given logger. A nil logger gets
// a stderr logger at warn level with millisecond timestamps.
func NewLogHandler(logger *log.Logger) *LogHandler {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.WarnLevel,
			Prefix:          "canopy",
		})
	}
	return &LogHandler{logger: logger}
}

// Handle logs a LayoutError. Configuration errors log at warn level since the
// frame completed with a fallback value; usage errors log at error level.
func (h *LogHandler) Handle(err *LayoutError) {
	if err == nil {
		return
	}
	keyvals := []any{"op", err.Op, "err", err.Err}
	if err.Widget != "" {
		keyvals = append(keyvals, "widget", err.Widget)
	}
	switch err.Kind {
	case KindConfig:
		h.logger.Warn("layout fallback applied", keyvals...)
	default:
		h.logger.Error("layout error", keyvals...)
	}
}
