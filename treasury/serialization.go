package treasury

import (
	"encoding/json"
	"io"
	"math"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/thetatoken/treasury/common"
)

// ParseAddress parses a hex encoded treasury address, with or without the 0x
// prefix.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(ErrInvalidTreasuryAddress, "cannot parse %q", s)
	}
	return common.HexToAddress(s), nil
}

// parseFeePercentage narrows a fee percentage read from an external source.
func parseFeePercentage(p uint64) (uint8, error) {
	if p > math.MaxUint8 {
		return 0, errors.Wrapf(ErrInvalidFeePercentage, "fee percentage %d out of range", p)
	}
	return uint8(p), nil
}

// ----------------- JSON -------------------

type TreasuryConfigJSON struct {
	Address       string `json:"address"`        // Address receiving the fee
	FeePercentage uint64 `json:"fee_percentage"` // Whole-number percentage of the value taken as fee
}

func NewTreasuryConfigJSON(tc TreasuryConfig) TreasuryConfigJSON {
	return TreasuryConfigJSON{
		Address:       tc.address.Hex(),
		FeePercentage: uint64(tc.feePercentage),
	}
}

// TreasuryConfig validates the decoded fields and builds a TreasuryConfig.
func (a TreasuryConfigJSON) TreasuryConfig() (*TreasuryConfig, error) {
	address, err := ParseAddress(a.Address)
	if err != nil {
		return nil, err
	}
	feePercentage, err := parseFeePercentage(a.FeePercentage)
	if err != nil {
		return nil, err
	}
	return NewTreasuryConfig(address, feePercentage)
}

func (tc TreasuryConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewTreasuryConfigJSON(tc))
}

func (tc *TreasuryConfig) UnmarshalJSON(data []byte) error {
	var a TreasuryConfigJSON
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	decoded, err := a.TreasuryConfig()
	if err != nil {
		return err
	}
	*tc = *decoded
	return nil
}

type SplitResultJSON struct {
	Recipient common.Address     `json:"recipient"`
	Total     common.JSONUint256 `json:"total"`
	Fee       common.JSONUint256 `json:"fee"`
	Remaining common.JSONUint256 `json:"remaining"`
}

func NewSplitResultJSON(sr SplitResult) SplitResultJSON {
	ret := SplitResultJSON{Recipient: sr.Recipient}
	if sr.Total != nil {
		ret.Total = common.JSONUint256(*sr.Total)
	}
	if sr.Fee != nil {
		ret.Fee = common.JSONUint256(*sr.Fee)
	}
	if sr.Remaining != nil {
		ret.Remaining = common.JSONUint256(*sr.Remaining)
	}
	return ret
}

func (sr SplitResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewSplitResultJSON(sr))
}

func (sr *SplitResult) UnmarshalJSON(data []byte) error {
	var a SplitResultJSON
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	sr.Recipient = a.Recipient
	sr.Total = a.Total.ToInt().Clone()
	sr.Fee = a.Fee.ToInt().Clone()
	sr.Remaining = a.Remaining.ToInt().Clone()
	return nil
}

// ----------------- RLP -------------------

var _ rlp.Encoder = (*TreasuryConfig)(nil)

// EncodeRLP implements RLP Encoder interface. The rlp package encodes a nil
// *TreasuryConfig as an empty list without calling it.
func (tc *TreasuryConfig) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, []interface{}{
		tc.address,
		tc.feePercentage,
	})
}

var _ rlp.Decoder = (*TreasuryConfig)(nil)

// DecodeRLP implements RLP Decoder interface.
func (tc *TreasuryConfig) DecodeRLP(stream *rlp.Stream) error {
	_, err := stream.List()
	if err != nil {
		return err
	}

	var address common.Address
	err = stream.Decode(&address)
	if err != nil {
		return err
	}

	var feePercentage uint64
	err = stream.Decode(&feePercentage)
	if err != nil {
		return err
	}

	err = stream.ListEnd()
	if err != nil {
		return err
	}

	narrowed, err := parseFeePercentage(feePercentage)
	if err != nil {
		return err
	}
	decoded, err := NewTreasuryConfig(address, narrowed)
	if err != nil {
		return err
	}
	*tc = *decoded
	return nil
}
