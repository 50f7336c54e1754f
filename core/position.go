package core

import (
	"context"
	"math/big"

	"github.com/fox-one/pkg/store/db"
)

// Position is the per-user ledger of deposits and debts across all assets,
// keyed by asset id. A missing key is the canonical representation of a zero
// balance, never an error.
type Position struct {
	UserID   string              `json:"user_id"`
	Deposits map[string]*big.Int `json:"deposits"`
	Debts    map[string]*big.Int `json:"debts"`
}

// NewPosition returns the empty position of a never-before-seen user.
func NewPosition(userID string) *Position {
	return &Position{
		UserID:   userID,
		Deposits: map[string]*big.Int{},
		Debts:    map[string]*big.Int{},
	}
}

// Deposit returns the deposited amount of the asset, zero when absent.
func (p *Position) Deposit(assetID string) *big.Int {
	if v, ok := p.Deposits[assetID]; ok {
		return new(big.Int).Set(v)
	}
	return new(big.Int)
}

// SetDeposit overwrites the deposited amount of the asset.
func (p *Position) SetDeposit(assetID string, amount *big.Int) {
	p.Deposits[assetID] = new(big.Int).Set(amount)
}

// Debt returns the borrowed amount of the asset, zero when absent.
func (p *Position) Debt(assetID string) *big.Int {
	if v, ok := p.Debts[assetID]; ok {
		return new(big.Int).Set(v)
	}
	return new(big.Int)
}

// SetDebt overwrites the borrowed amount of the asset.
func (p *Position) SetDebt(assetID string, amount *big.Int) {
	p.Debts[assetID] = new(big.Int).Set(amount)
}

// Clone returns a deep copy. Candidate post-states are computed on a clone and
// only persisted once every check has passed.
func (p *Position) Clone() *Position {
	c := NewPosition(p.UserID)
	for asset, v := range p.Deposits {
		c.Deposits[asset] = new(big.Int).Set(v)
	}
	for asset, v := range p.Debts {
		c.Debts[asset] = new(big.Int).Set(v)
	}
	return c
}

// PositionStore position store interface
type PositionStore interface {
	// Find returns the empty position when the user has no record yet.
	Find(ctx context.Context, userID string) (*Position, error)
	Save(ctx context.Context, tx *db.DB, position *Position) error
	All(ctx context.Context) ([]*Position, error)
}
