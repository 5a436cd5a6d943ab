package errors

import (
	"log/slog"
)

// LogHandler is an ErrorHandler that logs through slog.
type LogHandler struct {
	// Logger receives the records. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose enables stack traces on panics.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default().With("system", "flipclock")
}

// HandleError logs a ClockError.
func (h *LogHandler) HandleError(err *ClockError) {
	if err == nil {
		return
	}
	h.logger().Error("flipclock error", "op", err.Op, "kind", err.Kind.String(), "err", err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	args := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		args = append(args, "stack", err.StackTrace)
	}
	h.logger().Error("flipclock panic", args...)
}
