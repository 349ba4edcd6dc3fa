package treasury

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// WeiPerUnit is the number of wei in one base unit.
const WeiPerUnit = 1e18

// ParseAmount parses a string representation of an amount. Plain numbers are
// in base units and scaled by 10^18 ("1.5", "1e3"); a "wei" suffix takes the
// number as is ("100wei"). Negative amounts, fractions of a wei and amounts
// that do not fit in 256 bits are rejected.
func ParseAmount(in string) (*uint256.Int, bool) {
	in = strings.TrimSpace(in)
	inWei := false
	if len(in) > 3 && strings.EqualFold("wei", in[len(in)-3:]) {
		inWei = true
		in = in[:len(in)-3]
	}
	r, ok := new(big.Rat).SetString(in)
	if !ok || r.Sign() < 0 {
		return nil, false
	}
	if !inWei {
		r.Mul(r, new(big.Rat).SetInt64(WeiPerUnit))
	}
	if !r.IsInt() {
		return nil, false
	}
	amount, overflow := uint256.FromBig(r.Num())
	if overflow {
		return nil, false
	}
	return amount, true
}
