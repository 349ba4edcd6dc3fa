package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thetatoken/treasury/cmd/treasury/cmd/utils"
	"github.com/thetatoken/treasury/treasury"
)

// configCmd represents the config command.
// Example:
//
//	treasury config --fee=15
var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Validate and print the treasury configuration",
	Example: `treasury config --address=0x2E833968E5bB786Ae419c4d13189fB081Cc43bab --fee=15`,
	Run:     doConfigCmd,
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func doConfigCmd(cmd *cobra.Command, args []string) {
	tc, err := treasury.LoadTreasuryConfig()
	if err != nil {
		utils.Error("Invalid treasury config: %v\n", err)
	}
	utils.PrintJSON(tc)
}
