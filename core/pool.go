package core

import (
	"context"
	"math/big"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Pool is the aggregate ledger of a single asset: the sum of all outstanding
// deposit claims and all outstanding debt claims, in base units.
type Pool struct {
	AssetID       string   `json:"asset_id"`
	TotalSupplied *big.Int `json:"total_supplied"`
	TotalBorrowed *big.Int `json:"total_borrowed"`
	// TotalReserves is carried for forward compatibility and stays zero.
	TotalReserves *big.Int  `json:"total_reserves"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AvailableLiquidity returns total supplied minus total borrowed, the ceiling
// on any single withdraw or borrow.
func (p *Pool) AvailableLiquidity() *big.Int {
	return new(big.Int).Sub(p.TotalSupplied, p.TotalBorrowed)
}

// PoolStore pool store interface
type PoolStore interface {
	// Init creates the zeroed pool record for the asset. It fails with
	// ErrPoolAlreadyInitialized when the record already exists.
	Init(ctx context.Context, tx *db.DB, assetID string) error
	// Find fails with ErrPoolNotInitialized when the asset was never set up.
	Find(ctx context.Context, assetID string) (*Pool, error)
	Save(ctx context.Context, tx *db.DB, pool *Pool) error
	All(ctx context.Context) ([]*Pool, error)
}
