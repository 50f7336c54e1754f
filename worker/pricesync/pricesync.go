package pricesync

import (
	"context"
	"encoding/json"
	"fmt"

	"lendpool/core"
	"lendpool/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Worker polls the configured price feed and writes the parsed prices through
// the administrative surface. The engine itself never fetches prices.
type Worker struct {
	worker.BaseJob

	config *core.Oracle
	system *core.System
	client *resty.Client
	pools  core.PoolStore
	adminz core.AdminService
}

// New new price sync worker
func New(config *core.Oracle, system *core.System, pools core.PoolStore, adminz core.AdminService) *Worker {
	w := &Worker{
		config: config,
		system: system,
		client: resty.New().SetBaseURL(config.EndPoint),
		pools:  pools,
		adminz: adminz,
	}

	spec := config.Cron
	if spec == "" {
		spec = "@every 1m"
	}

	w.Cron = cron.New()
	w.OnWork = func() error {
		return w.onWork(context.Background())
	}
	if _, err := w.Cron.AddJob(spec, w); err != nil {
		panic(err)
	}

	return w
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "pricesync")

	prices, err := w.fetchPrices(ctx)
	if err != nil {
		log.WithError(err).Errorln("fetch prices failed")
		return err
	}

	pools, err := w.pools.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("list pools failed")
		return err
	}

	for _, pool := range pools {
		price, ok := prices[pool.AssetID]
		if !ok {
			continue
		}

		scaled := price.Shift(core.PriceDecimals).Truncate(0).BigInt()
		if err := w.adminz.SetPrice(ctx, w.system.AdminID, pool.AssetID, scaled); err != nil {
			log.WithError(err).Errorln("set price failed, asset:", pool.AssetID)
			continue
		}
	}

	return nil
}

func (w *Worker) fetchPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	resp, err := w.client.R().SetContext(ctx).Get("/prices")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("price feed status %d", resp.StatusCode())
	}

	var body struct {
		Prices []map[string]interface{} `json:"prices"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, err
	}

	prices := make(map[string]decimal.Decimal, len(body.Prices))
	for _, item := range body.Prices {
		assetID := cast.ToString(item["asset_id"])
		price, err := decimal.NewFromString(cast.ToString(item["price"]))
		if err != nil || assetID == "" {
			continue
		}
		if price.Sign() < 0 {
			continue
		}
		prices[assetID] = price
	}

	return prices, nil
}
