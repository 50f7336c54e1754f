package lending

import (
	"context"
	"fmt"
	"math/big"

	"lendpool/core"
	"lendpool/service/health"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// the fakes hand out copies so a failed operation cannot leak partial
// mutations into the stored state, matching the transactional stores.

type fakeCommitter struct{}

func (fakeCommitter) Tx(fn func(tx *db.DB) error) error {
	return fn(nil)
}

type fakePoolStore struct {
	pools map[string]*core.Pool
}

func newFakePoolStore() *fakePoolStore {
	return &fakePoolStore{pools: map[string]*core.Pool{}}
}

func (s *fakePoolStore) Init(_ context.Context, _ *db.DB, assetID string) error {
	if _, ok := s.pools[assetID]; ok {
		return core.ErrPoolAlreadyInitialized
	}
	s.pools[assetID] = &core.Pool{
		AssetID:       assetID,
		TotalSupplied: new(big.Int),
		TotalBorrowed: new(big.Int),
		TotalReserves: new(big.Int),
	}
	return nil
}

func (s *fakePoolStore) Find(_ context.Context, assetID string) (*core.Pool, error) {
	pool, ok := s.pools[assetID]
	if !ok {
		return nil, core.ErrPoolNotInitialized
	}
	return copyPool(pool), nil
}

func (s *fakePoolStore) Save(_ context.Context, _ *db.DB, pool *core.Pool) error {
	if _, ok := s.pools[pool.AssetID]; !ok {
		return core.ErrPoolNotInitialized
	}
	s.pools[pool.AssetID] = copyPool(pool)
	return nil
}

func (s *fakePoolStore) All(_ context.Context) ([]*core.Pool, error) {
	pools := make([]*core.Pool, 0, len(s.pools))
	for _, pool := range s.pools {
		pools = append(pools, copyPool(pool))
	}
	return pools, nil
}

func copyPool(pool *core.Pool) *core.Pool {
	c := *pool
	c.TotalSupplied = new(big.Int).Set(pool.TotalSupplied)
	c.TotalBorrowed = new(big.Int).Set(pool.TotalBorrowed)
	c.TotalReserves = new(big.Int).Set(pool.TotalReserves)
	return &c
}

type fakePositionStore struct {
	positions map[string]*core.Position
}

func newFakePositionStore() *fakePositionStore {
	return &fakePositionStore{positions: map[string]*core.Position{}}
}

func (s *fakePositionStore) Find(_ context.Context, userID string) (*core.Position, error) {
	if position, ok := s.positions[userID]; ok {
		return position.Clone(), nil
	}
	return core.NewPosition(userID), nil
}

func (s *fakePositionStore) Save(_ context.Context, _ *db.DB, position *core.Position) error {
	s.positions[position.UserID] = position.Clone()
	return nil
}

func (s *fakePositionStore) All(_ context.Context) ([]*core.Position, error) {
	positions := make([]*core.Position, 0, len(s.positions))
	for _, position := range s.positions {
		positions = append(positions, position.Clone())
	}
	return positions, nil
}

type fakeRiskStore struct {
	ltvs   map[string]int64
	prices map[string]*big.Int
}

func newFakeRiskStore() *fakeRiskStore {
	return &fakeRiskStore{
		ltvs:   map[string]int64{},
		prices: map[string]*big.Int{},
	}
}

func (s *fakeRiskStore) SetLTV(_ context.Context, _ *db.DB, assetID string, ltv int64) error {
	s.ltvs[assetID] = ltv
	return nil
}

func (s *fakeRiskStore) SetPrice(_ context.Context, _ *db.DB, assetID string, price *big.Int) error {
	s.prices[assetID] = new(big.Int).Set(price)
	return nil
}

func (s *fakeRiskStore) LTV(_ context.Context, assetID string) (int64, error) {
	return s.ltvs[assetID], nil
}

func (s *fakeRiskStore) Price(_ context.Context, assetID string) (*big.Int, error) {
	if price, ok := s.prices[assetID]; ok {
		return new(big.Int).Set(price), nil
	}
	return new(big.Int), nil
}

type fakeTransferStore struct {
	transfers []*core.Transfer
}

func (s *fakeTransferStore) Create(_ context.Context, _ *db.DB, transfer *core.Transfer) error {
	for _, t := range s.transfers {
		if t.TraceID == transfer.TraceID {
			return nil
		}
	}
	s.transfers = append(s.transfers, transfer)
	return nil
}

func (s *fakeTransferStore) FindByTrace(_ context.Context, traceID string) (*core.Transfer, error) {
	for _, t := range s.transfers {
		if t.TraceID == traceID {
			return t, nil
		}
	}
	return nil, nil
}

func (s *fakeTransferStore) Top(_ context.Context, limit int) ([]*core.Transfer, error) {
	if len(s.transfers) < limit {
		limit = len(s.transfers)
	}
	return s.transfers[len(s.transfers)-limit:], nil
}

type fakeWalletService struct {
	err       error
	transfers []*core.Transfer
}

func (s *fakeWalletService) Transfer(_ context.Context, transfer *core.Transfer) error {
	if s.err != nil {
		return s.err
	}
	s.transfers = append(s.transfers, transfer)
	return nil
}

func (s *fakeWalletService) PaySchemaURL(_ decimal.Decimal, _, _, _, _ string) (string, error) {
	return "", nil
}

type testEnv struct {
	pools     *fakePoolStore
	positions *fakePositionStore
	risks     *fakeRiskStore
	transfers *fakeTransferStore
	wallet    *fakeWalletService
	lendz     core.LendingService
	seq       int
}

func newTestEnv() *testEnv {
	env := &testEnv{
		pools:     newFakePoolStore(),
		positions: newFakePositionStore(),
		risks:     newFakeRiskStore(),
		transfers: &fakeTransferStore{},
		wallet:    &fakeWalletService{},
	}
	env.lendz = New(
		fakeCommitter{},
		env.pools,
		env.positions,
		env.risks,
		env.transfers,
		env.wallet,
		health.New(env.risks),
		nil,
	)
	return env
}

// trace returns a fresh payment trace, standing in for the trace a settled
// pay request would carry.
func (env *testEnv) trace() string {
	env.seq++
	return fmt.Sprintf("trace-%d", env.seq)
}

func (env *testEnv) supply(ctx context.Context, userID, assetID string, amount *big.Int) error {
	return env.lendz.Supply(ctx, userID, assetID, amount, env.trace())
}

func (env *testEnv) repay(ctx context.Context, userID, assetID string, amount *big.Int) (*big.Int, error) {
	return env.lendz.Repay(ctx, userID, assetID, amount, env.trace())
}

func (env *testEnv) initAsset(assetID string, ltv int64, price *big.Int) {
	ctx := context.Background()
	_ = env.pools.Init(ctx, nil, assetID)
	_ = env.risks.SetLTV(ctx, nil, assetID, ltv)
	_ = env.risks.SetPrice(ctx, nil, assetID, price)
}
