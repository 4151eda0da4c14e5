package cmd

import (
	"fmt"

	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/lib"
	"github.com/spf13/cobra"
)

var getPagesWebsiteID uint
var getPagesStatus string

// getPagesCmd represents the get pages command
var getPagesCmd = &cobra.Command{
	Use:     "pages",
	Aliases: []string{"page", "p"},
	Short:   "List the scanned pages of a website",
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := db.Connection().ListScannedPages(getPagesWebsiteID)
		if err != nil {
			return err
		}

		if getPagesStatus != "" {
			filtered := make([]*db.ScannedPage, 0, len(pages))
			for _, page := range pages {
				if page.Status == getPagesStatus {
					filtered = append(filtered, page)
				}
			}
			pages = filtered
		}

		formatType, err := lib.ParseFormatType(format)
		if err != nil {
			return err
		}

		formattedOutput, err := lib.FormatOutput(pages, formatType)
		if err != nil {
			return err
		}

		fmt.Println(formattedOutput)
		return nil
	},
}

func init() {
	getCmd.AddCommand(getPagesCmd)
	getPagesCmd.Flags().UintVarP(&getPagesWebsiteID, "website", "w", 0, "Website ID (required)")
	getPagesCmd.Flags().StringVarP(&getPagesStatus, "status", "s", "", "Only show pages with this scan status")
	cobra.CheckErr(getPagesCmd.MarkFlagRequired("website"))
}
