//go:build !windows

package discord

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
)

// dialSocket tries the discord-ipc unix sockets in the conventional
// runtime directories, lowest index first.
func dialSocket(ctx context.Context) (io.ReadWriteCloser, error) {
	var dialer net.Dialer
	var lastErr error

	for _, dir := range socketDirs() {
		for i := 0; i < socketAttempts; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			path := filepath.Join(dir, fmt.Sprintf("discord-ipc-%d", i))
			conn, err := dialer.DialContext(ctx, "unix", path)
			if err == nil {
				return conn, nil
			}
			lastErr = err
		}
	}

	if lastErr == nil {
		lastErr = os.ErrNotExist
	}
	return nil, fmt.Errorf("no discord ipc socket reachable: %w", lastErr)
}

func socketDirs() []string {
	base := os.TempDir()
	for _, env := range []string{"XDG_RUNTIME_DIR", "TMPDIR", "TMP", "TEMP"} {
		if dir := os.Getenv(env); dir != "" {
			base = dir
			break
		}
	}

	// Sandboxed clients keep their socket under the app subdirectory.
	return []string{
		base,
		filepath.Join(base, "app", "com.discordapp.Discord"),
		filepath.Join(base, "snap.discord"),
	}
}
