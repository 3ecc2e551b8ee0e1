package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide slog logger, emitting JSON records on
// stdout at Info level and above.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
