package core

import (
	"context"
	"math/big"
	"time"
)

// Health is the risk-adjusted valuation of a position: the discounted value of
// everything deposited against the full value of everything borrowed.
type Health struct {
	UserID          string    `json:"user_id"`
	CollateralValue *big.Int  `json:"collateral_value"`
	DebtValue       *big.Int  `json:"debt_value"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Healthy reports whether the debt is fully covered.
func (h *Health) Healthy() bool {
	return h.CollateralValue.Cmp(h.DebtValue) >= 0
}

// HealthService evaluates a fully materialized in-memory position against the
// current registry values. Evaluate has no side effects.
type HealthService interface {
	Evaluate(ctx context.Context, position *Position) (*Health, error)
}

// HealthStore caches the latest evaluated health per user for the read api.
type HealthStore interface {
	Save(ctx context.Context, health *Health) error
	Find(ctx context.Context, userID string) (*Health, error)
}
