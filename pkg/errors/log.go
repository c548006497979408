package errors

import (
	"log/slog"
	"os"
)

// LogHandler is an ErrorHandler that logs through log/slog.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Logger receives the records. Nil means a text logger on stderr.
	Logger *slog.Logger
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// HandleError logs a GuiError.
func (h *LogHandler) HandleError(err *GuiError) {
	if err == nil {
		return
	}
	h.logger().Error("retain error", "op", err.Op, "kind", err.Kind.String(), "err", err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("retain panic", attrs...)
}

// HandleDefect logs a DefectError.
func (h *LogHandler) HandleDefect(err *DefectError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "detail", err.Detail}
	if err.Widget != "" {
		attrs = append(attrs, "widget", err.Widget)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("retain defect", attrs...)
}
