package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hrvstr/drp/internal/domain"
	"github.com/hrvstr/drp/internal/ports"
)

const socketAttempts = 10

// Transport implements ports.Transport over the local discord-ipc
// endpoint (unix socket or named pipe, see dialSocket).
type Transport struct{}

var _ ports.Transport = Transport{}

func NewTransport() Transport {
	return Transport{}
}

func (Transport) Dial(ctx context.Context, clientID domain.ClientID) (ports.Conn, error) {
	if clientID == "" {
		return nil, domain.ErrClientIDEmpty
	}

	rwc, err := dialSocket(ctx)
	if err != nil {
		return nil, err
	}

	conn := &Conn{rwc: rwc, pid: os.Getpid()}
	if err := conn.handshake(ctx, clientID); err != nil {
		_ = rwc.Close()
		return nil, err
	}

	return conn, nil
}

// Conn is one open discord-ipc connection, bound to the client id it
// performed the handshake with.
type Conn struct {
	rwc io.ReadWriteCloser
	pid int
}

var _ ports.Conn = (*Conn)(nil)

type handshakeRequest struct {
	Version  int    `json:"v"`
	ClientID string `json:"client_id"`
}

type commandRequest struct {
	Cmd   string      `json:"cmd"`
	Args  commandArgs `json:"args"`
	Nonce string      `json:"nonce"`
}

type commandArgs struct {
	PID      int              `json:"pid"`
	Activity *domain.Activity `json:"activity"`
}

type serverPayload struct {
	Cmd   string `json:"cmd"`
	Evt   string `json:"evt"`
	Nonce string `json:"nonce"`
	Data  struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"data"`
}

func (c *Conn) handshake(ctx context.Context, clientID domain.ClientID) error {
	c.applyDeadline(ctx)

	request := handshakeRequest{Version: 1, ClientID: string(clientID)}
	if err := writeFrame(c.rwc, opHandshake, request); err != nil {
		return fmt.Errorf("handshake: %w", err)
	}

	op, body, err := readFrame(c.rwc)
	if err != nil {
		return fmt.Errorf("handshake: %w", err)
	}
	if op == opClose {
		return fmt.Errorf("handshake refused: %s", closeReason(body))
	}

	var payload serverPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("decode handshake response: %w", err)
	}
	if payload.Evt == "ERROR" {
		return fmt.Errorf("handshake refused: %s (code %d)", payload.Data.Message, payload.Data.Code)
	}

	return nil
}

// SetActivity pushes one activity frame and waits for the host's reply.
func (c *Conn) SetActivity(ctx context.Context, activity domain.Activity) error {
	c.applyDeadline(ctx)

	nonce := uuid.NewString()
	request := commandRequest{
		Cmd:   "SET_ACTIVITY",
		Args:  commandArgs{PID: c.pid, Activity: &activity},
		Nonce: nonce,
	}
	if err := writeFrame(c.rwc, opFrame, request); err != nil {
		return fmt.Errorf("set activity: %w", err)
	}

	op, body, err := readFrame(c.rwc)
	if err != nil {
		return fmt.Errorf("set activity: %w", err)
	}
	if op == opClose {
		return fmt.Errorf("connection closed by host: %s", closeReason(body))
	}

	var payload serverPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("decode set activity response: %w", err)
	}
	if payload.Evt == "ERROR" {
		return fmt.Errorf("host rejected activity: %s (code %d)", payload.Data.Message, payload.Data.Code)
	}
	if payload.Nonce != "" && payload.Nonce != nonce {
		return fmt.Errorf("response nonce mismatch: got %q, want %q", payload.Nonce, nonce)
	}

	return nil
}

func (c *Conn) Close() error {
	return c.rwc.Close()
}

func (c *Conn) applyDeadline(ctx context.Context) {
	type deadliner interface {
		SetDeadline(time.Time) error
	}

	d, ok := c.rwc.(deadliner)
	if !ok {
		return
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = d.SetDeadline(deadline)
	} else {
		_ = d.SetDeadline(time.Time{})
	}
}

func closeReason(body []byte) string {
	var payload struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return string(body)
	}
	return fmt.Sprintf("%s (code %d)", payload.Message, payload.Code)
}
