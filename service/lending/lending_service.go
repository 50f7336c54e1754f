package lending

import (
	"context"
	"fmt"
	"math/big"

	"lendpool/core"
	"lendpool/pkg/id"
	"lendpool/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

type lendingService struct {
	db        core.Committer
	pools     core.PoolStore
	positions core.PositionStore
	risks     core.RiskStore
	transfers core.TransferStore
	wallets   core.WalletService
	healthz   core.HealthService
	healths   core.HealthStore
}

// New new lending service
func New(
	committer core.Committer,
	pools core.PoolStore,
	positions core.PositionStore,
	risks core.RiskStore,
	transfers core.TransferStore,
	wallets core.WalletService,
	healthz core.HealthService,
	healths core.HealthStore,
) core.LendingService {
	return &lendingService{
		db:        committer,
		pools:     pools,
		positions: positions,
		risks:     risks,
		transfers: transfers,
		wallets:   wallets,
		healthz:   healthz,
		healths:   healths,
	}
}

// Supply deposits amount of the asset into the pool. The payment behind
// traceID is verified before the ledger update; no health check is needed
// since supplying only ever improves a position.
func (s *lendingService) Supply(ctx context.Context, userID, assetID string, amount *big.Int, traceID string) error {
	log := logger.FromContext(ctx).WithField("service", "lending.supply")

	if !number.IsPositive(amount) {
		return core.ErrInvalidAmount
	}
	if traceID == "" {
		return core.ErrInvalidParameter
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return err
	}
	position, err := s.positions.Find(ctx, userID)
	if err != nil {
		return err
	}

	transfer, err := s.verifyInbound(ctx, userID, assetID, amount, traceID, fmt.Sprintf("supply %s", assetID))
	if err != nil {
		log.WithError(err).Errorln("inbound transfer rejected")
		return err
	}

	newDeposit, err := number.Add(position.Deposit(assetID), amount)
	if err != nil {
		return core.ErrArithmeticOverflow
	}
	position.SetDeposit(assetID, newDeposit)

	pool.TotalSupplied, err = number.Add(pool.TotalSupplied, amount)
	if err != nil {
		return core.ErrArithmeticOverflow
	}

	if err := s.commit(ctx, pool, position, transfer); err != nil {
		return err
	}

	s.refreshHealth(ctx, position)
	return nil
}

// Withdraw removes up to amount of the asset from the user's deposits. The
// candidate post-state is computed on a clone of the position; the persisted
// record is only replaced once the health and liquidity checks have passed.
// The collateral check runs before the liquidity check.
func (s *lendingService) Withdraw(ctx context.Context, userID, assetID string, amount *big.Int) (*big.Int, error) {
	log := logger.FromContext(ctx).WithField("service", "lending.withdraw")

	if !number.IsPositive(amount) {
		return nil, core.ErrInvalidAmount
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return nil, err
	}
	position, err := s.positions.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	current := position.Deposit(assetID)
	if current.Sign() == 0 {
		return nil, core.ErrNothingToWithdraw
	}

	// requests beyond the balance are capped, not rejected
	actual := number.Min(amount, current)

	candidate := position.Clone()
	candidate.SetDeposit(assetID, new(big.Int).Sub(current, actual))

	health, err := s.healthz.Evaluate(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if !health.Healthy() {
		return nil, core.ErrInsufficientCollateral
	}

	if actual.Cmp(pool.AvailableLiquidity()) > 0 {
		return nil, core.ErrInsufficientLiquidity
	}

	pool.TotalSupplied, err = number.Sub(pool.TotalSupplied, actual)
	if err != nil {
		return nil, core.ErrArithmeticOverflow
	}

	transfer := &core.Transfer{
		TraceID:   id.GenTraceID(),
		UserID:    userID,
		AssetID:   assetID,
		Amount:    actual,
		Direction: core.TransferDirectionOut,
		Memo:      fmt.Sprintf("withdraw %s", assetID),
	}
	if err := s.wallets.Transfer(ctx, transfer); err != nil {
		log.WithError(err).Errorln("outbound transfer rejected")
		return nil, core.ErrTransferFailed
	}

	if err := s.commit(ctx, pool, candidate, transfer); err != nil {
		return nil, err
	}

	s.saveHealth(ctx, health)
	return actual, nil
}

// Repay pays back up to amount of the user's outstanding debt. Repayment only
// ever improves health, so no health check runs.
func (s *lendingService) Repay(ctx context.Context, userID, assetID string, amount *big.Int, traceID string) (*big.Int, error) {
	log := logger.FromContext(ctx).WithField("service", "lending.repay")

	if !number.IsPositive(amount) {
		return nil, core.ErrInvalidAmount
	}
	if traceID == "" {
		return nil, core.ErrInvalidParameter
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return nil, err
	}
	position, err := s.positions.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	current := position.Debt(assetID)
	if current.Sign() == 0 {
		return nil, core.ErrNoDebt
	}

	// overpaying is capped at the outstanding debt
	actual := number.Min(amount, current)

	transfer, err := s.verifyInbound(ctx, userID, assetID, actual, traceID, fmt.Sprintf("repay %s", assetID))
	if err != nil {
		log.WithError(err).Errorln("inbound transfer rejected")
		return nil, err
	}

	position.SetDebt(assetID, new(big.Int).Sub(current, actual))

	pool.TotalBorrowed, err = number.Sub(pool.TotalBorrowed, actual)
	if err != nil {
		return nil, core.ErrArithmeticOverflow
	}

	if err := s.commit(ctx, pool, position, transfer); err != nil {
		return nil, err
	}

	s.refreshHealth(ctx, position)
	return actual, nil
}

// Borrow lends amount of the asset against the user's existing collateral.
// The newly borrowed funds do not count as collateral for their own loan, so
// the health check compares existing collateral with the projected debt. The
// collateral check runs before the liquidity check.
func (s *lendingService) Borrow(ctx context.Context, userID, assetID string, amount *big.Int) error {
	log := logger.FromContext(ctx).WithField("service", "lending.borrow")

	if !number.IsPositive(amount) {
		return core.ErrInvalidAmount
	}

	position, err := s.positions.Find(ctx, userID)
	if err != nil {
		return err
	}
	health, err := s.healthz.Evaluate(ctx, position)
	if err != nil {
		return err
	}

	price, err := s.risks.Price(ctx, assetID)
	if err != nil {
		return err
	}
	if price.Sign() <= 0 {
		return core.ErrPriceNotSet
	}

	newDebtValue, err := number.Mul(amount, price)
	if err != nil {
		return core.ErrArithmeticOverflow
	}
	projectedDebtValue, err := number.Add(health.DebtValue, newDebtValue)
	if err != nil {
		return core.ErrArithmeticOverflow
	}

	if health.CollateralValue.Cmp(projectedDebtValue) < 0 {
		return core.ErrInsufficientCollateral
	}

	pool, err := s.pools.Find(ctx, assetID)
	if err != nil {
		return err
	}
	if amount.Cmp(pool.AvailableLiquidity()) > 0 {
		return core.ErrInsufficientLiquidity
	}

	newDebt, err := number.Add(position.Debt(assetID), amount)
	if err != nil {
		return core.ErrArithmeticOverflow
	}
	position.SetDebt(assetID, newDebt)

	pool.TotalBorrowed, err = number.Add(pool.TotalBorrowed, amount)
	if err != nil {
		return core.ErrArithmeticOverflow
	}

	transfer := &core.Transfer{
		TraceID:   id.GenTraceID(),
		UserID:    userID,
		AssetID:   assetID,
		Amount:    new(big.Int).Set(amount),
		Direction: core.TransferDirectionOut,
		Memo:      fmt.Sprintf("borrow %s", assetID),
	}
	if err := s.wallets.Transfer(ctx, transfer); err != nil {
		log.WithError(err).Errorln("outbound transfer rejected")
		return core.ErrTransferFailed
	}

	if err := s.commit(ctx, pool, position, transfer); err != nil {
		return err
	}

	health.DebtValue = projectedDebtValue
	s.saveHealth(ctx, health)
	return nil
}

// verifyInbound checks that the user's payment behind traceID reached pool
// custody and was not credited before. The trace comes from the pay request
// the user settled; the engine never initiates inbound movements itself.
func (s *lendingService) verifyInbound(ctx context.Context, userID, assetID string, amount *big.Int, traceID, memo string) (*core.Transfer, error) {
	existing, err := s.transfers.FindByTrace(ctx, traceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// the payment was already credited once
		return nil, core.ErrTransferFailed
	}

	transfer := &core.Transfer{
		TraceID:   traceID,
		UserID:    userID,
		AssetID:   assetID,
		Amount:    new(big.Int).Set(amount),
		Direction: core.TransferDirectionIn,
		Memo:      memo,
	}
	if err := s.wallets.Transfer(ctx, transfer); err != nil {
		return nil, core.ErrTransferFailed
	}

	return transfer, nil
}

// commit persists the pool, the position and the transfer log entry as one
// atomic batch.
func (s *lendingService) commit(ctx context.Context, pool *core.Pool, position *core.Position, transfer *core.Transfer) error {
	return s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Save(ctx, tx, pool); err != nil {
			return err
		}
		if err := s.positions.Save(ctx, tx, position); err != nil {
			return err
		}
		return s.transfers.Create(ctx, tx, transfer)
	})
}

func (s *lendingService) refreshHealth(ctx context.Context, position *core.Position) {
	health, err := s.healthz.Evaluate(ctx, position)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("refresh health failed")
		return
	}
	s.saveHealth(ctx, health)
}

// saveHealth updates the read side cache; failures are logged, never fatal.
func (s *lendingService) saveHealth(ctx context.Context, health *core.Health) {
	if s.healths == nil {
		return
	}
	if err := s.healths.Save(ctx, health); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("save health snapshot failed")
	}
}
