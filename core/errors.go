package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrUnauthorized caller is not the required identity
	ErrUnauthorized ErrorCode = 100001

	// ErrPoolNotInitialized pool accessed before its asset was set up
	ErrPoolNotInitialized ErrorCode = 100100
	// ErrPoolAlreadyInitialized asset initialized twice
	ErrPoolAlreadyInitialized ErrorCode = 100101
	// ErrInvalidAmount amount <= 0
	ErrInvalidAmount ErrorCode = 100102
	// ErrInvalidParameter ltv over 10000 or negative price
	ErrInvalidParameter ErrorCode = 100103
	// ErrNothingToWithdraw zero deposit balance for the requested asset
	ErrNothingToWithdraw ErrorCode = 100104
	// ErrNoDebt zero debt balance for the requested asset
	ErrNoDebt ErrorCode = 100105
	// ErrInsufficientCollateral projected debt exceeds risk-adjusted collateral
	ErrInsufficientCollateral ErrorCode = 100106
	// ErrInsufficientLiquidity requested amount exceeds pool free liquidity
	ErrInsufficientLiquidity ErrorCode = 100107
	// ErrPriceNotSet borrow against an asset with price <= 0
	ErrPriceNotSet ErrorCode = 100108
	// ErrArithmeticOverflow checked multiplication/division left the 128-bit range
	ErrArithmeticOverflow ErrorCode = 100109
	// ErrTransferFailed the value transfer collaborator rejected the movement
	ErrTransferFailed ErrorCode = 100110
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// Msg the human readable description rendered to api callers
func (e ErrorCode) Msg() string {
	switch e {
	case ErrUnauthorized:
		return "unauthorized"
	case ErrPoolNotInitialized:
		return "pool not initialized"
	case ErrPoolAlreadyInitialized:
		return "pool already initialized"
	case ErrInvalidAmount:
		return "amount must be positive"
	case ErrInvalidParameter:
		return "invalid parameter"
	case ErrNothingToWithdraw:
		return "no assets to withdraw"
	case ErrNoDebt:
		return "no debt to repay"
	case ErrInsufficientCollateral:
		return "insufficient collateral"
	case ErrInsufficientLiquidity:
		return "insufficient liquidity in the pool"
	case ErrPriceNotSet:
		return "price for this asset is not set"
	case ErrArithmeticOverflow:
		return "arithmetic overflow"
	case ErrTransferFailed:
		return "transfer failed"
	default:
		return "unknown error"
	}
}
