// Package observability wires structured logging.
package observability

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a JSON logger writing to path. An empty path returns
// a no-op logger so the TUI stays quiet by default.
func NewLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
