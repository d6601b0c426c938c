package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{name: "production", env: "production"},
		{name: "development", env: "dev"},
		{name: "empty env", env: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(tt.env)
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}
