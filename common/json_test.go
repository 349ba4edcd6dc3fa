package common

import (
	"encoding/json"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Uint256Wrap struct {
	Amount *JSONUint256
}

func TestJSONUint256(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var c JSONUint256
	err := json.Unmarshal([]byte("123"), &c)
	assert.NotNil(err)
	err = json.Unmarshal([]byte("\"123\""), &c)
	assert.Nil(err)
	assert.Equal(uint64(123), c.ToInt().Uint64())

	err = json.Unmarshal([]byte("\"-1\""), &c)
	assert.NotNil(err)

	max := new(uint256.Int).SetAllOne()
	s, err := json.Marshal((*JSONUint256)(max))
	require.Nil(err)
	assert.Equal([]byte("\"115792089237316195423570985008687907853269984665640564039457584007913129639935\""), s)

	num, err := uint256.FromDecimal("1231231231231231231231231231321231231231231312313213123")
	require.Nil(err)
	x := Uint256Wrap{Amount: (*JSONUint256)(num)}
	y, err := json.Marshal(x)
	require.Nil(err)
	var z Uint256Wrap
	err = json.Unmarshal(y, &z)
	require.Nil(err)

	assert.True(num.Eq(z.Amount.ToInt()))
}

func TestWriteInitialConfig(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := t.TempDir() + "/config.yaml"
	assert.False(FileExists(path))

	require.Nil(WriteInitialConfig(path))
	assert.True(FileExists(path))

	// Second write keeps a backup of the previous file.
	require.Nil(WriteInitialConfig(path))
	assert.True(FileExists(path + ".bak"))
}
