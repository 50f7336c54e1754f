package core

import (
	"context"
	"math/big"

	"github.com/fox-one/pkg/store/db"
)

// MaxLTV is the basis point denominator; an ltv of 7500 discounts an asset to
// 75% of its price when counted as collateral.
const MaxLTV = 10000

// PriceDecimals is the implicit decimal scale of registry prices, uniform
// across all assets. $1.50 is stored as 15000000.
const PriceDecimals = 7

// RiskParams are the administrator controlled per-asset parameters the engine
// consumes read-only during a transaction.
type RiskParams struct {
	AssetID string   `json:"asset_id"`
	LTV     int64    `json:"ltv"`
	Price   *big.Int `json:"price"`
}

// RiskStore price & risk registry interface. Reads default to zero for assets
// that were never configured.
type RiskStore interface {
	SetLTV(ctx context.Context, tx *db.DB, assetID string, ltv int64) error
	SetPrice(ctx context.Context, tx *db.DB, assetID string, price *big.Int) error
	LTV(ctx context.Context, assetID string) (int64, error)
	Price(ctx context.Context, assetID string) (*big.Int, error)
}

// AdminService is the administrative surface: pool setup and risk parameter
// management. Every call is keyed to the administrator identity.
type AdminService interface {
	InitPool(ctx context.Context, callerID, assetID string) error
	SetLTV(ctx context.Context, callerID, assetID string, ltv int64) error
	SetPrice(ctx context.Context, callerID, assetID string, price *big.Int) error
}
