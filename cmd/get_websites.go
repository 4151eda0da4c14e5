package cmd

import (
	"fmt"

	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/lib"
	"github.com/spf13/cobra"
)

var getWebsitesUserID uint

// getWebsitesCmd represents the get websites command
var getWebsitesCmd = &cobra.Command{
	Use:     "websites",
	Aliases: []string{"website", "w"},
	Short:   "List the websites of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, _, err := db.Connection().ListUserWebsites(getWebsitesUserID)
		if err != nil {
			return err
		}

		formatType, err := lib.ParseFormatType(format)
		if err != nil {
			return err
		}

		formattedOutput, err := lib.FormatOutput(items, formatType)
		if err != nil {
			return err
		}

		fmt.Println(formattedOutput)
		return nil
	},
}

func init() {
	getCmd.AddCommand(getWebsitesCmd)
	getWebsitesCmd.Flags().UintVarP(&getWebsitesUserID, "user", "u", 0, "ID of the owning user (required)")
	cobra.CheckErr(getWebsitesCmd.MarkFlagRequired("user"))
}
