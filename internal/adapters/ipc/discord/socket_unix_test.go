//go:build !windows

package discord

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportDialFindsRuntimeSocket(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)

	listener, err := net.Listen("unix", filepath.Join(dir, "discord-ipc-0"))
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		server, err := listener.Accept()
		if err != nil {
			return
		}
		defer server.Close()
		host := &fakeHost{conn: server, t: t}
		host.expectHandshake("123")
	}()

	conn, err := NewTransport().Dial(context.Background(), "123")
	require.NoError(t, err)
	assert.NoError(t, conn.Close())
}

func TestTransportDialNoSocketAvailable(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	_, err := NewTransport().Dial(context.Background(), "123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no discord ipc socket")
}
