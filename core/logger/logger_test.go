package logger_test

import (
	"testing"

	"fmh-devserver/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{"ConsoleDebug", logger.Config{Level: "debug", Format: "console"}},
		{"ConsoleInfo", logger.Config{Level: "info", Format: "console"}},
		{"JSON", logger.Config{Level: "info", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}
