package cmd

import (
	"lendpool/core"
	"lendpool/service/admin"
	"lendpool/service/health"
	"lendpool/service/lending"
	"lendpool/service/session"
	"lendpool/service/wallet"

	"github.com/fox-one/pkg/store/db"
)

func provideHealthService(risks core.RiskStore) core.HealthService {
	return health.New(risks)
}

func provideWalletService() core.WalletService {
	return wallet.New(provideMainWallet())
}

func provideSessionService() core.Session {
	return session.New(cfg.Auth.Capacity)
}

// provideAdminService and provideLendingService share one risk store so
// admin writes invalidate what the lending engine reads.
func provideAdminService(system *core.System, db *db.DB, risks core.RiskStore) core.AdminService {
	return admin.New(
		db,
		system,
		providePoolStore(db),
		risks,
	)
}

func provideLendingService(db *db.DB, risks core.RiskStore) core.LendingService {
	return lending.New(
		db,
		providePoolStore(db),
		providePositionStore(db),
		risks,
		provideTransferStore(db),
		provideWalletService(),
		provideHealthService(risks),
		provideHealthStore(),
	)
}
