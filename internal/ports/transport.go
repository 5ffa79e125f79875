package ports

import (
	"context"

	"github.com/hrvstr/drp/internal/domain"
)

// Transport dials the local presence host for one application id. The id
// is the only parameter that affects which endpoint is targeted.
type Transport interface {
	Dial(ctx context.Context, clientID domain.ClientID) (Conn, error)
}

// Conn is an open presence connection bound to the client id it was
// dialed with. It is exclusively owned by the session; nothing else may
// hold or mutate it.
type Conn interface {
	SetActivity(ctx context.Context, activity domain.Activity) error
	Close() error
}
