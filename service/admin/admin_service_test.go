package admin

import (
	"context"
	"math/big"
	"testing"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminID = "admin"

type committer struct{}

func (committer) Tx(fn func(tx *db.DB) error) error {
	return fn(nil)
}

type poolStore struct {
	pools map[string]*core.Pool
}

func (s *poolStore) Init(_ context.Context, _ *db.DB, assetID string) error {
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

func (s *poolStore) Find(_ context.Context, assetID string) (*core.Pool, error) {
	pool, ok := s.pools[assetID]
	if !ok {
		return nil, core.ErrPoolNotInitialized
	}
	return pool, nil
}

func (s *poolStore) Save(_ context.Context, _ *db.DB, pool *core.Pool) error {
	s.pools[pool.AssetID] = pool
	return nil
}

func (s *poolStore) All(_ context.Context) ([]*core.Pool, error) {
	pools := make([]*core.Pool, 0, len(s.pools))
	for _, pool := range s.pools {
		pools = append(pools, pool)
	}
	return pools, nil
}

type riskStore struct {
	ltvs   map[string]int64
	prices map[string]*big.Int
}

func (s *riskStore) SetLTV(_ context.Context, _ *db.DB, assetID string, ltv int64) error {
	s.ltvs[assetID] = ltv
	return nil
}

func (s *riskStore) SetPrice(_ context.Context, _ *db.DB, assetID string, price *big.Int) error {
	s.prices[assetID] = price
	return nil
}

func (s *riskStore) LTV(_ context.Context, assetID string) (int64, error) {
	return s.ltvs[assetID], nil
}

func (s *riskStore) Price(_ context.Context, assetID string) (*big.Int, error) {
	if price, ok := s.prices[assetID]; ok {
		return price, nil
	}
	return new(big.Int), nil
}

func newTestService() (core.AdminService, *poolStore, *riskStore) {
	pools := &poolStore{pools: map[string]*core.Pool{}}
	risks := &riskStore{ltvs: map[string]int64{}, prices: map[string]*big.Int{}}
	system := &core.System{AdminID: adminID}
	return New(committer{}, system, pools, risks), pools, risks
}

func TestInitPool(t *testing.T) {
	ctx := context.Background()
	adminz, pools, risks := newTestService()

	require.Nil(t, adminz.InitPool(ctx, adminID, "btc"))

	pool, err := pools.Find(ctx, "btc")
	require.Nil(t, err)
	assert.Equal(t, 0, pool.TotalSupplied.Sign())
	assert.Equal(t, 0, pool.TotalBorrowed.Sign())

	ltv, _ := risks.LTV(ctx, "btc")
	assert.Equal(t, int64(0), ltv)
	price, _ := risks.Price(ctx, "btc")
	assert.Equal(t, 0, price.Sign())

	// initializing twice is rejected
	assert.Equal(t, core.ErrPoolAlreadyInitialized, adminz.InitPool(ctx, adminID, "btc"))
}

func TestSetLTV(t *testing.T) {
	ctx := context.Background()
	adminz, _, risks := newTestService()

	require.Nil(t, adminz.SetLTV(ctx, adminID, "btc", 7500))
	ltv, _ := risks.LTV(ctx, "btc")
	assert.Equal(t, int64(7500), ltv)

	// full bounds are allowed, anything beyond is not
	assert.Nil(t, adminz.SetLTV(ctx, adminID, "btc", 0))
	assert.Nil(t, adminz.SetLTV(ctx, adminID, "btc", core.MaxLTV))
	assert.Equal(t, core.ErrInvalidParameter, adminz.SetLTV(ctx, adminID, "btc", -1))
	assert.Equal(t, core.ErrInvalidParameter, adminz.SetLTV(ctx, adminID, "btc", core.MaxLTV+1))
}

func TestSetPrice(t *testing.T) {
	ctx := context.Background()
	adminz, _, risks := newTestService()

	require.Nil(t, adminz.SetPrice(ctx, adminID, "btc", big.NewInt(15_000_000)))
	price, _ := risks.Price(ctx, "btc")
	assert.Equal(t, big.NewInt(15_000_000), price)

	// a zero price is a valid way to suspend borrowing of an asset
	assert.Nil(t, adminz.SetPrice(ctx, adminID, "btc", new(big.Int)))

	assert.Equal(t, core.ErrInvalidParameter, adminz.SetPrice(ctx, adminID, "btc", nil))
	assert.Equal(t, core.ErrInvalidParameter, adminz.SetPrice(ctx, adminID, "btc", big.NewInt(-1)))
}

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()
	adminz, _, _ := newTestService()

	assert.Equal(t, core.ErrUnauthorized, adminz.InitPool(ctx, "mallory", "btc"))
	assert.Equal(t, core.ErrUnauthorized, adminz.SetLTV(ctx, "mallory", "btc", 100))
	assert.Equal(t, core.ErrUnauthorized, adminz.SetPrice(ctx, "mallory", "btc", big.NewInt(1)))
}
