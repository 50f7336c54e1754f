package cmd

import (
	"time"

	"lendpool/core"
	"lendpool/store/health"
	"lendpool/store/pool"
	"lendpool/store/position"
	"lendpool/store/risk"
	"lendpool/store/transfer"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	"github.com/go-redis/redis"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func providePoolStore(db *db.DB) core.PoolStore {
	return pool.New(db)
}

func providePositionStore(db *db.DB) core.PositionStore {
	return position.New(db)
}

func provideRiskStore(db *db.DB) core.RiskStore {
	return risk.Cache(risk.New(db), time.Minute)
}

func provideTransferStore(db *db.DB) core.TransferStore {
	return transfer.New(db)
}

func provideHealthStore() core.HealthStore {
	return health.New(provideRedis(), time.Hour)
}
