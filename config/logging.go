package config

import (
	"go.uber.org/zap"

	"github.com/linesmerrill/moderator-codes/logging"
)

func setLogger(env string) (*zap.Logger, error) {
	logger, err := logging.New(env)
	if err != nil {
		return nil, err
	}
	_ = zap.ReplaceGlobals(logger)
	return logger, nil
}
