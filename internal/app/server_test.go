//go:build !integration

package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.ServerConfig
		writeTimeout time.Duration
	}{
		{"short requests keep the floor", config.ServerConfig{Port: "8080", RequestTimeout: 5 * time.Second}, 15 * time.Second},
		{"long requests extend writes", config.ServerConfig{Port: "8080", RequestTimeout: time.Minute}, 65 * time.Second},
		{"no request timeout", config.ServerConfig{Port: "9090"}, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), tt.cfg)

			require.NotNil(t, server.httpServer)
			assert.Equal(t, ":"+tt.cfg.Port, server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, tt.writeTimeout, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, 10*time.Second, server.shutdownTimeout)
		})
	}
}

func TestServer_Serve_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := NewServer(okHandler(), config.ServerConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "Server did not shutdown gracefully")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "invalid-port"})

	err := server.Run(context.Background())
	assert.Error(t, err)
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	server := NewServer(okHandler(), config.ServerConfig{Port: "0"})
	assert.NoError(t, server.Shutdown())
}
