package server_test

import (
	"testing"

	"fmh-devserver/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{"Localhost", "localhost", 8080, "localhost:8080"},
		{"Loopback", "127.0.0.1", 9000, "127.0.0.1:9000"},
		{"IPv6", "::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Host: tt.host}
			assert.Equal(t, tt.want, c.Addr(tt.port))
		})
	}
}

func TestConfig_URL(t *testing.T) {
	c := server.Config{Host: "localhost"}
	assert.Equal(t, "http://localhost:8085", c.URL(8085))
}
