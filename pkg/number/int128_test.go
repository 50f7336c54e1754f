package number

import (
	"math/big"
	"testing"

	"github.com/bmizerany/assert"
)

func TestCheckedMul(t *testing.T) {
	data := map[string]struct {
		a, b string
		out  string
		err  error
	}{
		"small":        {a: "1000", b: "10000000", out: "10000000000"},
		"max":          {a: "170141183460469231731687303715884105727", b: "1", out: "170141183460469231731687303715884105727"},
		"overflow":     {a: "170141183460469231731687303715884105727", b: "2", err: ErrOverflow},
		"min":          {a: "-2", b: "85070591730234615865843651857942052864", out: "-170141183460469231731687303715884105728"},
		"neg-overflow": {a: "-2", b: "85070591730234615865843651857942052865", err: ErrOverflow},
		"zero":         {a: "0", b: "170141183460469231731687303715884105727", out: "0"},
		"both-factors": {a: "18446744073709551616", b: "18446744073709551616", err: ErrOverflow},
	}

	for name, d := range data {
		t.Run(name, func(t *testing.T) {
			a, b := mustBigInt(d.a), mustBigInt(d.b)
			out, err := Mul(a, b)
			if d.err != nil {
				assert.Equal(t, d.err, err)
				return
			}
			assert.Equal(t, nil, err)
			assert.Equal(t, d.out, out.String())
		})
	}
}

func TestCheckedDiv(t *testing.T) {
	out, err := Div(mustBigInt("75000000000"), big.NewInt(10000))
	assert.Equal(t, nil, err)
	assert.Equal(t, "7500000", out.String())

	// floor division
	out, err = Div(big.NewInt(7), big.NewInt(2))
	assert.Equal(t, nil, err)
	assert.Equal(t, "3", out.String())

	_, err = Div(big.NewInt(1), big.NewInt(0))
	assert.Equal(t, ErrDivByZero, err)
}

func TestMin(t *testing.T) {
	a, b := big.NewInt(200), big.NewInt(50)
	assert.Equal(t, "50", Min(a, b).String())
	assert.Equal(t, "50", Min(b, a).String())

	// Min must copy, mutating the result must not touch the operands.
	Min(a, b).SetInt64(0)
	assert.Equal(t, "50", b.String())
}

func TestIsPositive(t *testing.T) {
	assert.Equal(t, true, IsPositive(big.NewInt(1)))
	assert.Equal(t, false, IsPositive(big.NewInt(0)))
	assert.Equal(t, false, IsPositive(big.NewInt(-1)))
	assert.Equal(t, false, IsPositive(nil))
}
