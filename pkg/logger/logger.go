package logger

import (
	"log/slog"
	"os"
)

// Log defaults to a stdout JSON logger so packages can log before Init runs
// (and under go test). Init reconfigures it with the production level.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
