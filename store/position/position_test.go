package position

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceCodec(t *testing.T) {
	huge, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	balances := map[string]*big.Int{
		"btc":  big.NewInt(12345),
		"zero": new(big.Int),
		"max":  huge,
	}

	data, err := encodeBalances(balances)
	require.Nil(t, err)

	decoded, err := decodeBalances(data)
	require.Nil(t, err)
	require.Len(t, decoded, 3)
	assert.Equal(t, 0, decoded["btc"].Cmp(big.NewInt(12345)))
	assert.Equal(t, 0, decoded["zero"].Sign())
	assert.Equal(t, 0, decoded["max"].Cmp(huge))
}

func TestDecodeEmptyBlob(t *testing.T) {
	// a fresh row holds nil blobs, which decode to the empty balance map
	decoded, err := decodeBalances(nil)
	require.Nil(t, err)
	assert.Len(t, decoded, 0)
}

func TestDecodeGarbageBlob(t *testing.T) {
	_, err := decodeBalances([]byte("not msgpack"))
	assert.NotNil(t, err)
}
