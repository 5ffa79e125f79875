//go:build windows

package discord

import (
	"context"
	"fmt"
	"io"
	"os"
)

// dialSocket opens the discord-ipc named pipe, lowest index first. The
// pipe supports synchronous duplex file I/O, so a plain file handle is
// enough for this request/response protocol.
func dialSocket(ctx context.Context) (io.ReadWriteCloser, error) {
	var lastErr error

	for i := 0; i < socketAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := fmt.Sprintf(`\\.\pipe\discord-ipc-%d`, i)
		f, err := os.OpenFile(path, os.O_RDWR, 0)
		if err == nil {
			return f, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = os.ErrNotExist
	}
	return nil, fmt.Errorf("no discord ipc pipe reachable: %w", lastErr)
}
