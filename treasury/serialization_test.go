package treasury

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thetatoken/treasury/common"
)

func TestTreasuryConfigJSON(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tc := newTestConfig(t, 42)

	s, err := json.Marshal(tc)
	require.Nil(err)
	assert.Equal(`{"address":"`+testAddress.Hex()+`","fee_percentage":42}`, string(s))

	// Value and pointer encode the same way
	s2, err := json.Marshal(*tc)
	require.Nil(err)
	assert.Equal(s, s2)

	var d TreasuryConfig
	err = json.Unmarshal(s, &d)
	require.Nil(err)
	assert.Equal(tc.Address(), d.Address())
	assert.Equal(tc.FeePercentage(), d.FeePercentage())
}

func TestTreasuryConfigJSONValidates(t *testing.T) {
	assert := assert.New(t)

	var d TreasuryConfig

	err := json.Unmarshal([]byte(`{"address":"0x2E833968E5bB786Ae419c4d13189fB081Cc43bab","fee_percentage":0}`), &d)
	assert.True(errors.Is(err, ErrInvalidFeePercentage))

	err = json.Unmarshal([]byte(`{"address":"0x2E833968E5bB786Ae419c4d13189fB081Cc43bab","fee_percentage":100}`), &d)
	assert.True(errors.Is(err, ErrInvalidFeePercentage))

	err = json.Unmarshal([]byte(`{"address":"0x2E833968E5bB786Ae419c4d13189fB081Cc43bab","fee_percentage":300}`), &d)
	assert.True(errors.Is(err, ErrInvalidFeePercentage))

	err = json.Unmarshal([]byte(`{"address":"0x1234","fee_percentage":10}`), &d)
	assert.True(errors.Is(err, ErrInvalidTreasuryAddress))

	err = json.Unmarshal([]byte(`{"fee_percentage":10}`), &d)
	assert.True(errors.Is(err, ErrInvalidTreasuryAddress))

	// Failed decodes leave the target untouched
	assert.Equal(uint8(0), d.FeePercentage())
}

func TestTreasuryConfigRLP(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tc := newTestConfig(t, 99)

	raw, err := rlp.EncodeToBytes(tc)
	require.Nil(err)

	var d TreasuryConfig
	err = rlp.DecodeBytes(raw, &d)
	require.Nil(err)
	assert.Equal(tc.Address(), d.Address())
	assert.Equal(uint8(99), d.FeePercentage())

	// A nil config encodes as an empty list, which does not decode back.
	var nilConfig *TreasuryConfig
	raw, err = rlp.EncodeToBytes(nilConfig)
	require.Nil(err)
	assert.Equal([]byte{0xc0}, raw)

	var e TreasuryConfig
	assert.NotNil(rlp.DecodeBytes(raw, &e))
	assert.Equal(uint8(0), e.FeePercentage())
}

func TestTreasuryConfigRLPValidates(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, p := range []uint64{0, 100, 255, 256} {
		raw, err := rlp.EncodeToBytes([]interface{}{testAddress, p})
		require.Nil(err)

		var d TreasuryConfig
		err = rlp.DecodeBytes(raw, &d)
		assert.True(errors.Is(err, ErrInvalidFeePercentage), "percentage %d", p)
	}

	raw, err := rlp.EncodeToBytes([]interface{}{testAddress, uint64(10), uint64(1)})
	require.Nil(err)
	var d TreasuryConfig
	assert.NotNil(rlp.DecodeBytes(raw, &d))
}

func TestSplitResultJSON(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	total := uint256.MustFromDecimal("100000000000000000000")
	res := newTestConfig(t, 10).Split(total)

	s, err := json.Marshal(res)
	require.Nil(err)
	assert.True(strings.Contains(string(s), `"fee":"10000000000000000000"`), string(s))
	assert.True(strings.Contains(string(s), `"remaining":"90000000000000000000"`), string(s))

	var d SplitResult
	require.Nil(json.Unmarshal(s, &d))
	assert.Equal(res.Recipient, d.Recipient)
	assert.True(res.Total.Eq(d.Total))
	assert.True(res.Fee.Eq(d.Fee))
	assert.True(res.Remaining.Eq(d.Remaining))
}

func TestParseAddress(t *testing.T) {
	assert := assert.New(t)

	address, err := ParseAddress("2e833968e5bb786ae419c4d13189fb081cc43bab")
	assert.Nil(err)
	assert.Equal(testAddress, address)

	_, err = ParseAddress("not an address")
	assert.True(errors.Is(err, ErrInvalidTreasuryAddress))

	address, err = ParseAddress("0x0000000000000000000000000000000000000000")
	assert.Nil(err)
	assert.Equal(common.Address{}, address)
}
