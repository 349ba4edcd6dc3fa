package common

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// JSONUint256 renders a 256-bit unsigned amount as a quoted decimal string.
type JSONUint256 uint256.Int

// MarshalText implements encoding.TextMarshaler
func (b JSONUint256) MarshalText() ([]byte, error) {
	return []byte((*uint256.Int)(&b).Dec()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *JSONUint256) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return errors.New("Uint256 must be formatted as string")
	}
	return b.UnmarshalText(input[1 : len(input)-1])
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *JSONUint256) UnmarshalText(input []byte) error {
	if err := (*uint256.Int)(b).SetFromDecimal(string(input)); err != nil {
		return errors.Wrap(err, "Failed to parse uint256")
	}
	return nil
}

// ToInt converts b to a uint256.Int.
func (b *JSONUint256) ToInt() *uint256.Int {
	return (*uint256.Int)(b)
}

func isString(input []byte) bool {
	return len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"'
}
