package core

import (
	"context"
	"math/big"
)

// LendingService is the transition engine. Every operation is atomic: it
// either fully commits or leaves persisted state untouched. The userID passed
// in must already be authorized by the caller.
type LendingService interface {
	// Supply deposits amount of the asset into the pool. traceID is the
	// trace of the payment the user already made into pool custody; it is
	// verified, never initiated.
	Supply(ctx context.Context, userID, assetID string, amount *big.Int, traceID string) error
	// Withdraw removes up to amount of the asset from the user's deposits,
	// capped at the deposited balance. It returns the amount actually
	// withdrawn.
	Withdraw(ctx context.Context, userID, assetID string, amount *big.Int) (*big.Int, error)
	// Repay pays back up to amount of the user's debt, capped at the
	// outstanding debt. traceID is the trace of the user's payment, as for
	// Supply. It returns the amount actually repaid.
	Repay(ctx context.Context, userID, assetID string, amount *big.Int, traceID string) (*big.Int, error)
	// Borrow lends amount of the asset to the user against their collateral.
	Borrow(ctx context.Context, userID, assetID string, amount *big.Int) error
}
