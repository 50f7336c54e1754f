package admin

import (
	"context"
	"math/big"

	"lendpool/core"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

type adminService struct {
	db     core.Committer
	system *core.System
	pools  core.PoolStore
	risks  core.RiskStore
}

// New new admin service
func New(committer core.Committer, system *core.System, pools core.PoolStore, risks core.RiskStore) core.AdminService {
	return &adminService{
		db:     committer,
		system: system,
		pools:  pools,
		risks:  risks,
	}
}

// InitPool creates the zeroed pool record and zero-initializes the asset's
// ltv and price in the registry.
func (s *adminService) InitPool(ctx context.Context, callerID, assetID string) error {
	if err := s.requireAdmin(callerID); err != nil {
		return err
	}

	log := logger.FromContext(ctx).WithField("service", "admin")
	log.Infoln("init pool, asset:", assetID)

	return s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Init(ctx, tx, assetID); err != nil {
			return err
		}
		if err := s.risks.SetLTV(ctx, tx, assetID, 0); err != nil {
			return err
		}
		return s.risks.SetPrice(ctx, tx, assetID, new(big.Int))
	})
}

// SetLTV sets the loan-to-value ratio, basis points out of 10000.
func (s *adminService) SetLTV(ctx context.Context, callerID, assetID string, ltv int64) error {
	if err := s.requireAdmin(callerID); err != nil {
		return err
	}
	if ltv < 0 || ltv > core.MaxLTV {
		return core.ErrInvalidParameter
	}

	return s.db.Tx(func(tx *db.DB) error {
		return s.risks.SetLTV(ctx, tx, assetID, ltv)
	})
}

// SetPrice sets the asset price with its implicit 7 decimal scale.
func (s *adminService) SetPrice(ctx context.Context, callerID, assetID string, price *big.Int) error {
	if err := s.requireAdmin(callerID); err != nil {
		return err
	}
	if price == nil || price.Sign() < 0 {
		return core.ErrInvalidParameter
	}

	return s.db.Tx(func(tx *db.DB) error {
		return s.risks.SetPrice(ctx, tx, assetID, price)
	})
}

func (s *adminService) requireAdmin(callerID string) error {
	if !s.system.IsAdmin(callerID) {
		return core.ErrUnauthorized
	}
	return nil
}
