package treasury

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/thetatoken/treasury/common"
)

const (
	// MinFeePercentage is the smallest accepted fee percentage.
	MinFeePercentage uint8 = 1
	// MaxFeePercentage is the largest accepted fee percentage.
	MaxFeePercentage uint8 = 99
)

var hundred = uint256.NewInt(100)

// TreasuryConfig specifies which address receives a fee and how large the fee
// is, as a whole-number percentage of the value being split. A TreasuryConfig
// cannot be modified once created, so every instance is valid.
type TreasuryConfig struct {
	address       common.Address
	feePercentage uint8
}

// NewTreasuryConfig creates a TreasuryConfig. The fee percentage must be
// between 1 and 99. The address is taken as is.
func NewTreasuryConfig(address common.Address, feePercentage uint8) (*TreasuryConfig, error) {
	if feePercentage < MinFeePercentage || feePercentage > MaxFeePercentage {
		return nil, &FeePercentageError{Percentage: feePercentage}
	}
	return &TreasuryConfig{
		address:       address,
		feePercentage: feePercentage,
	}, nil
}

// Address returns the treasury address.
func (tc *TreasuryConfig) Address() common.Address {
	return tc.address
}

// FeePercentage returns the fee percentage.
func (tc *TreasuryConfig) FeePercentage() uint8 {
	return tc.feePercentage
}

// ValidateAddress rejects the zero address. It is not part of construction;
// callers that want the stricter contract invoke it explicitly.
func (tc *TreasuryConfig) ValidateAddress() error {
	if tc.address == (common.Address{}) {
		return ErrInvalidTreasuryAddress
	}
	return nil
}

// CalculateFeeSplit splits totalValue into the fee sent to the treasury and
// the remaining amount. The fee is floor(totalValue * feePercentage / 100),
// so any rounding dust stays with the remaining amount.
//
// The calculation never fails. If totalValue * feePercentage overflows 256
// bits the fee is zero and the whole value remains. A nil totalValue is zero.
func (tc *TreasuryConfig) CalculateFeeSplit(totalValue *uint256.Int) (fee *uint256.Int, remaining *uint256.Int) {
	total := new(uint256.Int)
	if totalValue != nil {
		total.Set(totalValue)
	}

	product, overflow := new(uint256.Int).MulOverflow(total, uint256.NewInt(uint64(tc.feePercentage)))
	if overflow {
		product.Clear()
	}
	fee = checkedDiv(product, hundred)

	remaining, underflow := new(uint256.Int).SubOverflow(total, fee)
	if underflow {
		remaining.Clear()
	}

	return fee, remaining
}

// CalculateFeeSplitBig is CalculateFeeSplit for math/big amounts. Values that
// do not fit in 256 bits are left whole: the fee is zero and the remaining
// amount equals totalValue. Negative values split into zero and zero.
func (tc *TreasuryConfig) CalculateFeeSplitBig(totalValue *big.Int) (fee *big.Int, remaining *big.Int) {
	if totalValue == nil {
		return big.NewInt(0), big.NewInt(0)
	}
	if totalValue.Sign() < 0 {
		return big.NewInt(0), big.NewInt(0)
	}
	total, overflow := uint256.FromBig(totalValue)
	if overflow {
		return big.NewInt(0), new(big.Int).Set(totalValue)
	}
	f, r := tc.CalculateFeeSplit(total)
	return f.ToBig(), r.ToBig()
}

// Split calculates the fee split of totalValue and returns it together with
// the recipient of the fee.
func (tc *TreasuryConfig) Split(totalValue *uint256.Int) SplitResult {
	fee, remaining := tc.CalculateFeeSplit(totalValue)
	total := new(uint256.Int)
	if totalValue != nil {
		total.Set(totalValue)
	}
	return SplitResult{
		Recipient: tc.address,
		Total:     total,
		Fee:       fee,
		Remaining: remaining,
	}
}

func (tc *TreasuryConfig) String() string {
	if tc == nil {
		return "nil-TreasuryConfig"
	}
	return fmt.Sprintf("TreasuryConfig{%v %v%%}", tc.address.Hex(), tc.feePercentage)
}

// checkedDiv returns x / y, or zero when y is zero.
func checkedDiv(x, y *uint256.Int) *uint256.Int {
	if y.IsZero() {
		return new(uint256.Int)
	}
	return new(uint256.Int).Div(x, y)
}

// SplitResult is the outcome of splitting a value with a TreasuryConfig.
type SplitResult struct {
	Recipient common.Address
	Total     *uint256.Int
	Fee       *uint256.Int
	Remaining *uint256.Int
}

func (sr SplitResult) String() string {
	return fmt.Sprintf("SplitResult{%v total: %v, fee: %v, remaining: %v}",
		sr.Recipient.Hex(), decOrZero(sr.Total), decOrZero(sr.Fee), decOrZero(sr.Remaining))
}

func decOrZero(x *uint256.Int) string {
	if x == nil {
		return "0"
	}
	return x.Dec()
}
