package logger

import (
	"io"
	"log/slog"
	"os"
)

// serviceName tags every record so aggregated logs stay attributable.
const serviceName = "eatoes"

// New creates the application logger: JSON records on stdout at info level.
func New() *slog.Logger {
	return newWith(os.Stdout)
}

func newWith(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", serviceName))
}
