package health

import (
	"context"
	"math/big"
	"time"

	"lendpool/core"
	"lendpool/pkg/number"
)

var bps = big.NewInt(core.MaxLTV)

type healthService struct {
	risks core.RiskStore
}

// New new health service
func New(risks core.RiskStore) core.HealthService {
	return &healthService{risks: risks}
}

// Evaluate sums floor(amount * price * ltv / 10000) over deposits and
// amount * price over debts. Every multiplication is overflow checked; an
// overflow aborts the evaluation with ErrArithmeticOverflow.
func (s *healthService) Evaluate(ctx context.Context, position *core.Position) (*core.Health, error) {
	collateralValue := new(big.Int)
	for assetID, amount := range position.Deposits {
		price, err := s.risks.Price(ctx, assetID)
		if err != nil {
			return nil, err
		}
		ltv, err := s.risks.LTV(ctx, assetID)
		if err != nil {
			return nil, err
		}

		value, err := number.Mul(amount, price)
		if err != nil {
			return nil, core.ErrArithmeticOverflow
		}
		value, err = number.Mul(value, big.NewInt(ltv))
		if err != nil {
			return nil, core.ErrArithmeticOverflow
		}
		value, err = number.Div(value, bps)
		if err != nil {
			return nil, core.ErrArithmeticOverflow
		}

		collateralValue, err = number.Add(collateralValue, value)
		if err != nil {
			return nil, core.ErrArithmeticOverflow
		}
	}

	debtValue := new(big.Int)
	for assetID, amount := range position.Debts {
		price, err := s.risks.Price(ctx, assetID)
		if err != nil {
			return nil, err
		}

		value, err := number.Mul(amount, price)
		if err != nil {
			return nil, core.ErrArithmeticOverflow
		}

		debtValue, err = number.Add(debtValue, value)
		if err != nil {
			return nil, core.ErrArithmeticOverflow
		}
	}

	return &core.Health{
		UserID:          position.UserID,
		CollateralValue: collateralValue,
		DebtValue:       debtValue,
		UpdatedAt:       time.Now(),
	}, nil
}
