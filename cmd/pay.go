package cmd

import (
	"lendpool/pkg/id"

	"github.com/fox-one/pkg/qrcode"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// payCmd builds a pay url for supplying or repaying funds into the dapp
// wallet, so a deposit can be made from any mixin messenger client.
var payCmd = &cobra.Command{
	Use:     "pay",
	Aliases: []string{"pr"},
	Short:   "build a payment request url",
	Run: func(cmd *cobra.Command, args []string) {
		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid asset")
		}

		amount, e := cmd.Flags().GetString("amount")
		if e != nil {
			panic("invalid amount")
		}
		amountNum, e := decimal.NewFromString(amount)
		if e != nil || !amountNum.IsPositive() {
			panic("invalid amount")
		}

		memo, e := cmd.Flags().GetString("memo")
		if e != nil {
			panic("invalid memo")
		}

		walletz := provideWalletService()
		dapp := provideDApp()

		url, err := walletz.PaySchemaURL(amountNum, assetID, dapp.ClientID, id.GenTraceID(), memo)
		if err != nil {
			panic(err)
		}

		cmd.Println(url)
		qrcode.Fprint(cmd.OutOrStdout(), url)
	},
}

func init() {
	rootCmd.AddCommand(payCmd)
	payCmd.Flags().StringP("asset", "a", "", "asset id")
	payCmd.Flags().StringP("amount", "q", "", "amount")
	payCmd.Flags().StringP("memo", "m", "", "memo")
}
