package server_test

import (
	"testing"
	"time"

	"location-directory/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want bool
	}{
		{"Default", "8080", true},
		{"Low", "1", true},
		{"Zero", "0", false},
		{"TooHigh", "70000", false},
		{"NotANumber", "http", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.IsValidPort())
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	c := server.Config{Port: "9090"}
	assert.Equal(t, ":9090", c.Addr())
	assert.Equal(t, 1024*1024, c.BodyLimit())
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout())

	c = server.Config{BodyLimitKB: 2, ShutdownTimeoutSeconds: 3}
	assert.Equal(t, 2048, c.BodyLimit())
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout())
}
