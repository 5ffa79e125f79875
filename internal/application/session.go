package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrvstr/drp/internal/domain"
	"github.com/hrvstr/drp/internal/ports"
)

var (
	ErrConnect = errors.New("connect failed")
	ErrSend    = errors.New("send failed")
	ErrClose   = errors.New("close failed")
)

// Session owns the live form, the connection state machine and the
// session clock. All mutation happens on one goroutine; transport calls
// block until done and no operation is retried internally.
type Session struct {
	transport ports.Transport
	clock     ports.Clock

	form    domain.Form
	conn    ports.Conn
	boundID domain.ClientID

	startedAt    time.Time
	lastUpdateAt time.Time
}

func NewSession(transport ports.Transport, clock ports.Clock, form domain.Form) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	now := clock.Now()
	return &Session{
		transport:    transport,
		clock:        clock,
		form:         form,
		startedAt:    now,
		lastUpdateAt: now,
	}
}

// Form exposes the live field model for presentation-layer edits.
func (s *Session) Form() *domain.Form {
	return &s.form
}

func (s *Session) Connected() bool {
	return s.conn != nil
}

func (s *Session) BoundClientID() domain.ClientID {
	return s.boundID
}

func (s *Session) ClockState() domain.ClockState {
	return domain.ClockState{StartedAt: s.startedAt, LastUpdateAt: s.lastUpdateAt}
}

// Connect opens the transport for the form's current client id. Callers
// follow a successful Connect with an immediate Update so the host shows
// the current form right away. Connecting while already connected behaves
// like ensureIdentity: a no-op for the same id, close-then-reopen for a
// changed one.
func (s *Session) Connect(ctx context.Context) error {
	if s.conn != nil {
		return s.ensureIdentity(ctx)
	}

	id := s.form.ClientID
	if id == "" {
		return fmt.Errorf("%w: %w", ErrConnect, domain.ErrClientIDEmpty)
	}

	conn, err := s.transport.Dial(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}

	s.conn = conn
	s.boundID = id
	return nil
}

// Disconnect releases the transport handle. Teardown is fail-open: the
// session transitions to disconnected even when the close errors, so the
// UI never sticks on "connected" with a dead handle.
func (s *Session) Disconnect() error {
	if s.conn == nil {
		return domain.ErrNotConnected
	}

	err := s.conn.Close()
	s.conn = nil
	s.boundID = ""

	if err != nil {
		return fmt.Errorf("%w: %w", ErrClose, err)
	}
	return nil
}

// ensureIdentity reconciles the bound client id with the form. A changed
// id forces close-then-reopen; this is the only reconnection path, there
// is no reconnect-on-failure.
func (s *Session) ensureIdentity(ctx context.Context) error {
	if s.conn == nil {
		return domain.ErrNotConnected
	}

	id := s.form.ClientID
	if id == s.boundID {
		return nil
	}
	if id == "" {
		return fmt.Errorf("%w: %w", ErrConnect, domain.ErrClientIDEmpty)
	}

	// Same fail-open policy as Disconnect: a close error does not keep
	// the stale handle alive.
	_ = s.conn.Close()
	s.conn = nil
	s.boundID = ""

	conn, err := s.transport.Dial(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}

	s.conn = conn
	s.boundID = id
	return nil
}

// Update compiles the current form and pushes it. The resolver consumes
// the clock state from before this push; LastUpdateAt moves to the push
// instant only after the send succeeds. A failed send leaves the
// connection state untouched.
func (s *Session) Update(ctx context.Context) error {
	if err := s.ensureIdentity(ctx); err != nil {
		return err
	}

	now := s.clock.Now()
	start, hasStart := domain.ResolveStart(s.form.TimestampMode, s.form.CustomDate, s.ClockState(), now)
	activity := domain.Compile(s.form, start, hasStart)

	if err := s.conn.SetActivity(ctx, activity); err != nil {
		return fmt.Errorf("%w: %w", ErrSend, err)
	}

	s.lastUpdateAt = now
	return nil
}

// LoadPreset merges a preset into the live form. The record is consumed
// here; it is never reapplied.
func (s *Session) LoadPreset(preset domain.Preset) {
	preset.ApplyTo(&s.form)
}
