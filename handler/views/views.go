package views

import (
	"math/big"
	"time"

	"lendpool/core"

	"github.com/shopspring/decimal"
)

// AssetDecimals base unit scale used for the human readable amounts.
const AssetDecimals = 8

// Pool pool view
type Pool struct {
	AssetID            string          `json:"asset_id"`
	TotalSupplied      string          `json:"total_supplied"`
	TotalBorrowed      string          `json:"total_borrowed"`
	TotalReserves      string          `json:"total_reserves"`
	AvailableLiquidity string          `json:"available_liquidity"`
	SuppliedAmount     decimal.Decimal `json:"supplied_amount"`
	BorrowedAmount     decimal.Decimal `json:"borrowed_amount"`
}

// NewPool convert pool to view
func NewPool(pool *core.Pool) *Pool {
	return &Pool{
		AssetID:            pool.AssetID,
		TotalSupplied:      pool.TotalSupplied.String(),
		TotalBorrowed:      pool.TotalBorrowed.String(),
		TotalReserves:      pool.TotalReserves.String(),
		AvailableLiquidity: pool.AvailableLiquidity().String(),
		SuppliedAmount:     human(pool.TotalSupplied),
		BorrowedAmount:     human(pool.TotalBorrowed),
	}
}

// Position position view
type Position struct {
	UserID   string            `json:"user_id"`
	Deposits map[string]string `json:"deposits"`
	Debts    map[string]string `json:"debts"`
}

// NewPosition convert position to view
func NewPosition(position *core.Position) *Position {
	v := &Position{
		UserID:   position.UserID,
		Deposits: map[string]string{},
		Debts:    map[string]string{},
	}
	for asset, amount := range position.Deposits {
		v.Deposits[asset] = amount.String()
	}
	for asset, amount := range position.Debts {
		v.Debts[asset] = amount.String()
	}
	return v
}

// Health health view
type Health struct {
	UserID          string    `json:"user_id"`
	CollateralValue string    `json:"collateral_value"`
	DebtValue       string    `json:"debt_value"`
	Healthy         bool      `json:"healthy"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewHealth convert health to view
func NewHealth(health *core.Health) *Health {
	return &Health{
		UserID:          health.UserID,
		CollateralValue: health.CollateralValue.String(),
		DebtValue:       health.DebtValue.String(),
		Healthy:         health.Healthy(),
		UpdatedAt:       health.UpdatedAt,
	}
}

// Transfer transfer view
type Transfer struct {
	TraceID   string          `json:"trace_id"`
	UserID    string          `json:"user_id"`
	AssetID   string          `json:"asset_id"`
	Amount    string          `json:"amount"`
	Direction string          `json:"direction"`
	Memo      string          `json:"memo"`
	CreatedAt time.Time       `json:"created_at"`
	Value     decimal.Decimal `json:"value"`
}

// NewTransfer convert transfer to view
func NewTransfer(transfer *core.Transfer) *Transfer {
	return &Transfer{
		TraceID:   transfer.TraceID,
		UserID:    transfer.UserID,
		AssetID:   transfer.AssetID,
		Amount:    transfer.Amount.String(),
		Direction: transfer.Direction,
		Memo:      transfer.Memo,
		CreatedAt: transfer.CreatedAt,
		Value:     human(transfer.Amount),
	}
}

func human(v *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(v, -AssetDecimals)
}
