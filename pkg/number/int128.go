// Package number implements checked arithmetic over the signed 128-bit range.
// Amounts and values never wrap or saturate: any result outside the range
// surfaces ErrOverflow and must abort the enclosing operation.
package number

import (
	"errors"
	"math/big"
)

var (
	// ErrOverflow result left the signed 128-bit range
	ErrOverflow = errors.New("number: 128-bit overflow")
	// ErrDivByZero division by zero
	ErrDivByZero = errors.New("number: division by zero")
)

var (
	// MaxInt128 2^127 - 1
	MaxInt128 = mustBigInt("170141183460469231731687303715884105727")
	// MinInt128 -2^127
	MinInt128 = mustBigInt("-170141183460469231731687303715884105728")
)

func mustBigInt(value string) *big.Int {
	v, ok := new(big.Int).SetString(value, 10)
	if !ok {
		panic("invalid big integer constant")
	}
	return v
}

// Check returns v unchanged when it fits the signed 128-bit range.
func Check(v *big.Int) (*big.Int, error) {
	if v.Cmp(MinInt128) < 0 || v.Cmp(MaxInt128) > 0 {
		return nil, ErrOverflow
	}
	return v, nil
}

// Add returns a+b with a range check.
func Add(a, b *big.Int) (*big.Int, error) {
	return Check(new(big.Int).Add(a, b))
}

// Sub returns a-b with a range check.
func Sub(a, b *big.Int) (*big.Int, error) {
	return Check(new(big.Int).Sub(a, b))
}

// Mul returns a*b with a range check.
func Mul(a, b *big.Int) (*big.Int, error) {
	return Check(new(big.Int).Mul(a, b))
}

// Div returns a/b rounded toward zero, which is floor division for the
// non-negative operands the ledgers hold.
func Div(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivByZero
	}
	return Check(new(big.Int).Quo(a, b))
}

// Min returns a copy of the smaller operand.
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}
	return new(big.Int).Set(b)
}

// IsPositive reports v > 0.
func IsPositive(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}
