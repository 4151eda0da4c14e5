package cmd

import (
	"context"
	"os"

	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/pkg/extractor"
	"github.com/scanopy/scanopy/pkg/scan"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var scanWebsiteID uint
var scanUserID uint

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discovers the pages of a website",
	Long: `Asks the extraction service to enumerate the routes reachable from the
website's domain and registers each discovered URL as a pending page. Already
known URLs keep their current scan status.`,
	Run: func(cmd *cobra.Command, args []string) {
		websiteExists, _ := db.Connection().WebsiteExists(scanWebsiteID)
		if !websiteExists {
			log.Error().Uint("id", scanWebsiteID).Msg("Website does not exist")
			websites, count, _ := db.Connection().ListUserWebsites(scanUserID)
			if count == 0 {
				log.Info().Msg("No websites found for this user")
			} else {
				log.Info().Msg("Available websites:")
				for _, website := range websites {
					log.Info().Msgf("ID: %d, Name: %s, Domain: %s", website.ID, website.Name, website.Domain)
				}
			}
			os.Exit(1)
		}

		service := scan.NewService(db.Connection(), extractor.NewClient())
		summary, err := service.ScanWebsite(context.Background(), scanUserID, scanWebsiteID)
		if err != nil {
			log.Error().Err(err).Uint("website_id", scanWebsiteID).Msg("Discovery failed")
			os.Exit(1)
		}
		log.Info().Int("pages_found", summary.PagesFound).Msg(summary.Message)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().UintVarP(&scanWebsiteID, "website", "w", 0, "Website ID (required)")
	scanCmd.Flags().UintVarP(&scanUserID, "user", "u", 0, "ID of the user owning the website (required)")
	cobra.CheckErr(scanCmd.MarkFlagRequired("website"))
	cobra.CheckErr(scanCmd.MarkFlagRequired("user"))
}
