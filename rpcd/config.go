package rpcd

import (
	"log/slog"
	"os"

	"github.com/gphxj/Caculator/calc"
)

// Spec holds what every session is created from.
type Spec struct {
	// Operations are registered in each session's evaluator in addition
	// to the builtins.
	Operations []calc.Operation
	Log        *slog.Logger
}

func slogLevel() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
