package common

import (
	"github.com/spf13/viper"
)

const (
	// CfgConfigPath defines custom config path
	CfgConfigPath = "config.path"

	// CfgTreasuryAddress defines the address that receives the fee portion of a split.
	CfgTreasuryAddress = "treasury.address"
	// CfgTreasuryFeePercentage defines the whole-number percentage diverted to the treasury.
	CfgTreasuryFeePercentage = "treasury.feePercentage"
	// CfgTreasuryRejectZeroAddress rejects the all-zero treasury address when loading the config.
	CfgTreasuryRejectZeroAddress = "treasury.rejectZeroAddress"

	// CfgLogLevels sets the log level.
	CfgLogLevels = "log.levels"
)

// InitialConfig is the default configuartion produced by init command.
const InitialConfig = `# Treasury configuration
treasury:
  address: "0x0000000000000000000000000000000000000000"
  feePercentage: 10
  rejectZeroAddress: false
log:
  levels: "*:info"
`

func init() {
	viper.SetDefault(CfgTreasuryAddress, "0x0000000000000000000000000000000000000000")
	viper.SetDefault(CfgTreasuryFeePercentage, 10)
	viper.SetDefault(CfgTreasuryRejectZeroAddress, false)

	viper.SetDefault(CfgLogLevels, "*:info")
}

// WriteInitialConfig writes initial config file to file system.
func WriteInitialConfig(filePath string) error {
	return WriteFileAtomic(filePath, []byte(InitialConfig), 0600)
}
