package app

import (
	"fmt"
	"path/filepath"

	"github.com/bnema/zerowrap"
)

// NewLogger builds the process logger, writing to a rotated file as well when enabled.
func NewLogger(cfg LoggingConfig) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Level,
		Format: cfg.Format,
	}

	if cfg.File.Enabled {
		logPath := cfg.File.Path
		if logPath == "" {
			logPath = filepath.Join(DefaultLogDir(), "testnet.log")
		}

		log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
			Enabled:    true,
			Path:       logPath,
			MaxSize:    cfg.File.MaxSize,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAge,
			Compress:   true,
		})
		if err != nil {
			return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
		}
		return log, cleanup, nil
	}

	return zerowrap.New(logConfig), nil, nil
}
