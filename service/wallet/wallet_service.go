package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lendpool/core"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// AssetDecimals is the base unit scale of transferred assets.
const AssetDecimals = 8

// New new wallet service holding pool custody
func New(mainWallet *core.Wallet) core.WalletService {
	return &walletService{MainWallet: mainWallet}
}

type walletService struct {
	MainWallet *core.Wallet
}

// Transfer executes the movement the engine decided on. Outbound transfers
// are paid from the custody wallet; inbound transfers are verified received
// payments, since a user's funds can only be moved by the user.
func (s *walletService) Transfer(ctx context.Context, transfer *core.Transfer) error {
	amount := decimal.NewFromBigInt(transfer.Amount, -AssetDecimals)

	input := &mixin.TransferInput{
		AssetID: transfer.AssetID,
		Amount:  amount,
		TraceID: transfer.TraceID,
		Memo:    transfer.Memo,
	}

	switch transfer.Direction {
	case core.TransferDirectionOut:
		input.OpponentID = transfer.UserID
		snapshot, err := s.MainWallet.Client.Transfer(ctx, input, s.MainWallet.Pin)
		if err != nil {
			return err
		}
		if raw, err := json.Marshal(snapshot); err == nil {
			transfer.Raw = raw
		}
		return nil

	case core.TransferDirectionIn:
		input.OpponentID = s.MainWallet.Client.ClientID
		payment, err := s.MainWallet.Client.VerifyPayment(ctx, *input)
		if err != nil {
			return err
		}
		if payment.Status != "paid" {
			return errors.New("payment not received")
		}
		if raw, err := json.Marshal(payment); err == nil {
			transfer.Raw = raw
		}
		return nil

	default:
		logger.FromContext(ctx).Errorln("unknown transfer direction:", transfer.Direction)
		return errors.New("unknown transfer direction")
	}
}

// PaySchemaURL build pay schema url
func (s *walletService) PaySchemaURL(amount decimal.Decimal, asset, recipient, trace, memo string) (string, error) {
	if amount.LessThanOrEqual(decimal.Zero) || asset == "" || recipient == "" || trace == "" {
		return "", errors.New("invalid parameters")
	}

	return fmt.Sprintf("mixin://pay?amount=%s&asset=%s&recipient=%s&trace=%s&memo=%s", amount.String(), asset, recipient, trace, memo), nil
}
