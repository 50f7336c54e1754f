package cmd

import (
	"context"

	"lendpool/core"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/store/db"
)

const adminPropertyKey = "admin_id"

func provideConfig() *core.Config {
	return &cfg
}

func provideDApp() *mixin.Client {
	c, err := mixin.NewFromKeystore(&cfg.Dapp.Keystore)
	if err != nil {
		panic(err)
	}

	return c
}

func provideMainWallet() *core.Wallet {
	return &core.Wallet{
		Client: provideDApp(),
		Pin:    cfg.Dapp.Pin,
	}
}

// provideSystem resolves the administrator identity: the persisted property
// wins, the config value seeds it on first use.
func provideSystem(ctx context.Context, database *db.DB) *core.System {
	properties := providePropertyStore(database)

	admin := cfg.Admin
	if v, err := properties.Get(ctx, adminPropertyKey); err == nil && v.String() != "" {
		admin = v.String()
	} else if admin != "" {
		if err := properties.Save(ctx, adminPropertyKey, admin); err != nil {
			panic(err)
		}
	}

	return &core.System{
		AdminID:  admin,
		ClientID: cfg.Dapp.ClientID,
		Version:  rootCmd.Version,
	}
}
