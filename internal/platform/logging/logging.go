package logging

import (
	"fmt"
	"io"

	"github.com/ogurasousui/codex-org-analyzer/internal/platform/config"
	"github.com/sirupsen/logrus"
)

// New は設定に従って logrus.Logger を構築します。出力先は w です。
func New(cfg config.LogConfig, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}
