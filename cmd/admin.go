package cmd

import (
	"lendpool/core"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// governing command for pools
var initPoolCmd = &cobra.Command{
	Use:     "init-pool",
	Aliases: []string{"ip"},
	Short:   "initialize a lending pool for an asset",
	Run: func(cmd *cobra.Command, args []string) {
		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid asset")
		}

		ctx := cmd.Context()
		database := provideDatabase()
		defer database.Close()

		system := provideSystem(ctx, database)
		adminz := provideAdminService(system, database, provideRiskStore(database))

		if err := adminz.InitPool(ctx, system.AdminID, assetID); err != nil {
			panic(err)
		}

		cmd.Println("pool initialized:", assetID)
	},
}

var setLTVCmd = &cobra.Command{
	Use:   "set-ltv",
	Short: "set the loan-to-value ratio of an asset in basis points",
	Run: func(cmd *cobra.Command, args []string) {
		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid asset")
		}

		ltv, e := cmd.Flags().GetInt64("ltv")
		if e != nil {
			panic("invalid ltv")
		}

		ctx := cmd.Context()
		database := provideDatabase()
		defer database.Close()

		system := provideSystem(ctx, database)
		adminz := provideAdminService(system, database, provideRiskStore(database))

		if err := adminz.SetLTV(ctx, system.AdminID, assetID, ltv); err != nil {
			panic(err)
		}

		cmd.Println("ltv updated:", assetID, ltv)
	},
}

var setPriceCmd = &cobra.Command{
	Use:   "set-price",
	Short: "set the oracle price of an asset",
	Run: func(cmd *cobra.Command, args []string) {
		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid asset")
		}

		price, e := cmd.Flags().GetString("price")
		if e != nil {
			panic("invalid price")
		}
		priceNum, e := decimal.NewFromString(price)
		if e != nil || priceNum.IsNegative() {
			panic("invalid price")
		}

		ctx := cmd.Context()
		database := provideDatabase()
		defer database.Close()

		system := provideSystem(ctx, database)
		adminz := provideAdminService(system, database, provideRiskStore(database))

		value := priceNum.Shift(core.PriceDecimals).Truncate(0).BigInt()
		if err := adminz.SetPrice(ctx, system.AdminID, assetID, value); err != nil {
			panic(err)
		}

		cmd.Println("price updated:", assetID, priceNum.String())
	},
}

func init() {
	rootCmd.AddCommand(initPoolCmd)
	initPoolCmd.Flags().StringP("asset", "a", "", "asset id")

	rootCmd.AddCommand(setLTVCmd)
	setLTVCmd.Flags().StringP("asset", "a", "", "asset id")
	setLTVCmd.Flags().Int64P("ltv", "l", 0, "loan-to-value in basis points")

	rootCmd.AddCommand(setPriceCmd)
	setPriceCmd.Flags().StringP("asset", "a", "", "asset id")
	setPriceCmd.Flags().StringP("price", "p", "", "price")
}
