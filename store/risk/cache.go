package risk

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"lendpool/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/store/db"
	"golang.org/x/sync/singleflight"
)

// Cache decorates a risk store with a short lived read-through cache. Writes
// go straight to the underlying store and invalidate the cached entries.
func Cache(store core.RiskStore, exp time.Duration) core.RiskStore {
	return &cacheRiskStore{
		RiskStore: store,
		cache:     gcache.New(1024).LRU().Expiration(exp).Build(),
		sf:        &singleflight.Group{},
	}
}

type cacheRiskStore struct {
	core.RiskStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheRiskStore) SetLTV(ctx context.Context, tx *db.DB, assetID string, ltv int64) error {
	if err := s.RiskStore.SetLTV(ctx, tx, assetID, ltv); err != nil {
		return err
	}
	s.cache.Remove(s.ltvKey(assetID))
	return nil
}

func (s *cacheRiskStore) SetPrice(ctx context.Context, tx *db.DB, assetID string, price *big.Int) error {
	if err := s.RiskStore.SetPrice(ctx, tx, assetID, price); err != nil {
		return err
	}
	s.cache.Remove(s.priceKey(assetID))
	return nil
}

func (s *cacheRiskStore) LTV(ctx context.Context, assetID string) (int64, error) {
	key := s.ltvKey(assetID)
	if v, err := s.cache.Get(key); err == nil {
		if ltv, ok := v.(int64); ok {
			return ltv, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		ltv, err := s.RiskStore.LTV(ctx, assetID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Set(key, ltv)
		return ltv, nil
	})
	if err != nil {
		return 0, err
	}

	return v.(int64), nil
}

func (s *cacheRiskStore) Price(ctx context.Context, assetID string) (*big.Int, error) {
	key := s.priceKey(assetID)
	if v, err := s.cache.Get(key); err == nil {
		if price, ok := v.(*big.Int); ok {
			return new(big.Int).Set(price), nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		price, err := s.RiskStore.Price(ctx, assetID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.Set(key, new(big.Int).Set(price))
		return price, nil
	})
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(v.(*big.Int)), nil
}

func (s *cacheRiskStore) ltvKey(assetID string) string {
	return fmt.Sprintf("risk:ltv:%s", assetID)
}

func (s *cacheRiskStore) priceKey(assetID string) string {
	return fmt.Sprintf("risk:price:%s", assetID)
}
