package core

import (
	"github.com/fox-one/mixin-sdk-go"
)

// Wallet the dapp wallet holding pool custody
type Wallet struct {
	Client *mixin.Client `json:"client"`
	Pin    string        `json:"pin"`
}
