package core

import (
	"context"
	"math/big"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// Transfer directions, seen from the pool's custody.
const (
	TransferDirectionIn  = "in"  // user -> pool custody
	TransferDirectionOut = "out" // pool custody -> user
)

// Transfer is one executed movement of funds between a user's custody and the
// pool's custody.
type Transfer struct {
	ID        uint64         `json:"id,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
	TraceID   string         `json:"trace_id,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
	AssetID   string         `json:"asset_id,omitempty"`
	Amount    *big.Int       `json:"amount,omitempty"`
	Direction string         `json:"direction,omitempty"`
	Memo      string         `json:"memo,omitempty"`
	Raw       types.JSONText `json:"raw,omitempty"`
}

// TransferStore transfer log store interface
type TransferStore interface {
	Create(ctx context.Context, tx *db.DB, transfer *Transfer) error
	// FindByTrace returns nil without error when no transfer used the trace.
	FindByTrace(ctx context.Context, traceID string) (*Transfer, error)
	Top(ctx context.Context, limit int) ([]*Transfer, error)
}

// WalletService moves funds between user custody and pool custody. A transfer
// either fully moves the amount or fails without moving anything.
type WalletService interface {
	Transfer(ctx context.Context, transfer *Transfer) error
	PaySchemaURL(amount decimal.Decimal, asset, recipient, trace, memo string) (string, error)
}
