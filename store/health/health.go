package health

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"lendpool/core"

	"github.com/go-redis/redis"
)

type healthStore struct {
	redis *redis.Client
	exp   time.Duration
}

// New new health snapshot store backed by redis
func New(redis *redis.Client, exp time.Duration) core.HealthStore {
	return &healthStore{
		redis: redis,
		exp:   exp,
	}
}

type payload struct {
	UserID          string    `json:"user_id"`
	CollateralValue string    `json:"collateral_value"`
	DebtValue       string    `json:"debt_value"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s *healthStore) Save(ctx context.Context, health *core.Health) error {
	bs, err := json.Marshal(payload{
		UserID:          health.UserID,
		CollateralValue: health.CollateralValue.String(),
		DebtValue:       health.DebtValue.String(),
		UpdatedAt:       health.UpdatedAt,
	})
	if err != nil {
		return err
	}

	return s.redis.Set(s.key(health.UserID), bs, s.exp).Err()
}

func (s *healthStore) Find(ctx context.Context, userID string) (*core.Health, error) {
	bs, err := s.redis.Get(s.key(userID)).Bytes()
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal(bs, &p); err != nil {
		return nil, err
	}

	collateral, ok := new(big.Int).SetString(p.CollateralValue, 10)
	if !ok {
		return nil, core.ErrUnknown
	}
	debt, ok := new(big.Int).SetString(p.DebtValue, 10)
	if !ok {
		return nil, core.ErrUnknown
	}

	return &core.Health{
		UserID:          p.UserID,
		CollateralValue: collateral,
		DebtValue:       debt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func (s *healthStore) key(userID string) string {
	return fmt.Sprintf("lendpool:health:%s", userID)
}
