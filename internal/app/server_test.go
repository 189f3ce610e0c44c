//go:build !integration

package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
	assert.Empty(t, server.hooks)
}

func TestNewServer_Options(t *testing.T) {
	server := NewServer(okHandler(), "8080",
		WithShutdownTimeout(3*time.Second),
		WithShutdownTimeout(0),
		WithShutdownHook(func(context.Context) error { return nil }),
		WithShutdownHook(nil),
	)

	assert.Equal(t, 3*time.Second, server.shutdownTimeout)
	assert.Len(t, server.hooks, 1)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	var order []string
	server := NewServer(okHandler(), "0",
		WithShutdownHook(func(context.Context) error { order = append(order, "first"); return nil }),
		WithShutdownHook(func(context.Context) error { order = append(order, "second"); return nil }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- server.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestServer_RunReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	server := NewServer(okHandler(), port)
	server.httpServer.Addr = "127.0.0.1:" + port

	err = server.Run(context.Background())
	assert.Error(t, err)
}

func TestServer_ShutdownJoinsHookErrors(t *testing.T) {
	hookErr := errors.New("flush failed")
	server := NewServer(okHandler(), "0", WithShutdownHook(func(context.Context) error { return hookErr }))

	err := server.Shutdown()

	assert.ErrorIs(t, err, hookErr)
}
