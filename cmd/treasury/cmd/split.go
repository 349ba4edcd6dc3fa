package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thetatoken/treasury/cmd/treasury/cmd/utils"
	"github.com/thetatoken/treasury/common/util"
	"github.com/thetatoken/treasury/treasury"
)

var amountFlag string

// splitCmd represents the split command.
// Example:
//
//	treasury split --amount=100
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split an amount into treasury fee and remainder",
	Long:  `Split an amount into treasury fee and remainder. Amounts are in base units (10^18 wei) unless suffixed with "wei".`,
	Example: `treasury split --amount=100
treasury split --amount=12345wei --fee=3`,
	Run: doSplitCmd,
}

func init() {
	splitCmd.Flags().StringVar(&amountFlag, "amount", "", "Amount to split")
	splitCmd.MarkFlagRequired("amount")

	RootCmd.AddCommand(splitCmd)
}

func doSplitCmd(cmd *cobra.Command, args []string) {
	res, err := splitAmount(amountFlag)
	if err != nil {
		utils.Error("Failed to split amount: %v\n", err)
	}
	utils.PrintJSON(res)
}

func splitAmount(amount string) (treasury.SplitResult, error) {
	logger := util.GetLoggerForModule("cli")

	total, ok := treasury.ParseAmount(amount)
	if !ok {
		return treasury.SplitResult{}, errors.Errorf("Invalid amount: %q", amount)
	}

	tc, err := treasury.LoadTreasuryConfig()
	if err != nil {
		return treasury.SplitResult{}, err
	}

	res := tc.Split(total)
	if res.Fee.IsZero() && !total.IsZero() {
		logger.WithFields(log.Fields{
			"total":  total.Dec(),
			"config": tc.String(),
		}).Warn("No fee deducted")
	}
	return res, nil
}
