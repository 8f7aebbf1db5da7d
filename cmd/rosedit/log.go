package main

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newLogger builds a development zap logger and a fresh session id, mirroring
// how a long-lived server would tag every log line with the session that
// produced it even though this process is short-lived.
func newLogger() (*zap.Logger, string, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, "", err
	}
	return logger, uuid.NewString(), nil
}
