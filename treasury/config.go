package treasury

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/thetatoken/treasury/common"
	"github.com/thetatoken/treasury/common/util"
)

// LoadTreasuryConfig builds a TreasuryConfig from the treasury.* settings.
// An unparsable address yields ErrInvalidTreasuryAddress, an out of range fee
// percentage yields ErrInvalidFeePercentage.
func LoadTreasuryConfig() (*TreasuryConfig, error) {
	logger := util.GetLoggerForModule("treasury")

	address, err := ParseAddress(viper.GetString(common.CfgTreasuryAddress))
	if err != nil {
		return nil, err
	}

	rawFeePercentage := viper.Get(common.CfgTreasuryFeePercentage)
	if f, ok := rawFeePercentage.(float64); ok && f != math.Trunc(f) {
		return nil, errors.Wrapf(ErrInvalidFeePercentage, "fee percentage %v is not a whole number", f)
	}
	wide, err := cast.ToUint64E(rawFeePercentage)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFeePercentage, "cannot parse fee percentage %v: %v", rawFeePercentage, err)
	}
	feePercentage, err := parseFeePercentage(wide)
	if err != nil {
		return nil, err
	}

	tc, err := NewTreasuryConfig(address, feePercentage)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load treasury config")
	}

	if viper.GetBool(common.CfgTreasuryRejectZeroAddress) {
		if err := tc.ValidateAddress(); err != nil {
			return nil, errors.Wrapf(err, "zero address rejected by %v", common.CfgTreasuryRejectZeroAddress)
		}
	}

	logger.Debugf("Loaded treasury config: %v", tc)
	return tc, nil
}
