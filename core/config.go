package core

import (
	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/store/db"
)

// Config lendpool config
type Config struct {
	DB     db.Config `json:"db"`
	Redis  Redis     `json:"redis"`
	Dapp   Dapp      `json:"dapp"`
	Auth   Auth      `json:"auth"`
	Oracle Oracle    `json:"oracle"`
	// Admin is the administrator identity; overridable by the persisted
	// property once set.
	Admin string `json:"admin"`
}

// Redis redis config
type Redis struct {
	Addr string `json:"addr"`
	DB   int    `json:"db"`
}

// Dapp mixin dapp wallet config
type Dapp struct {
	mixin.Keystore
	ClientSecret string `json:"client_secret"`
	Pin          string `json:"pin"`
}

// Auth session config
type Auth struct {
	Issuers  []string `json:"issuers"`
	Capacity int      `json:"capacity"`
}

// Oracle price feed config
type Oracle struct {
	EndPoint string `json:"end_point"`
	Cron     string `json:"cron"`
}
