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

var deepScanWebsiteID uint
var deepScanUserID uint
var deepScanPageID uint

// deepScanCmd represents the deep-scan command
var deepScanCmd = &cobra.Command{
	Use:   "deep-scan",
	Short: "Deep scans the pages of a website",
	Long: `Runs pages of a website through content extraction and indexing. With
--page a single page is scanned synchronously; without it, one batched request
is submitted for all currently pending pages and they complete asynchronously.`,
	Run: func(cmd *cobra.Command, args []string) {
		service := scan.NewService(db.Connection(), extractor.NewClient())
		ctx := context.Background()

		pages, err := db.Connection().ListScannedPages(deepScanWebsiteID)
		if err != nil {
			log.Error().Err(err).Uint("website_id", deepScanWebsiteID).Msg("Unable to list pages")
			os.Exit(1)
		}

		if deepScanPageID != 0 {
			var target *db.ScannedPage
			for _, page := range pages {
				if page.ID == deepScanPageID {
					target = page
					break
				}
			}
			if target == nil {
				log.Error().Uint("page_id", deepScanPageID).Uint("website_id", deepScanWebsiteID).Msg("Page does not belong to this website")
				os.Exit(1)
			}
			response, err := service.DeepScanPage(ctx, deepScanUserID, target.ID, target.URL, deepScanWebsiteID)
			if err != nil {
				log.Error().Err(err).Uint("page_id", target.ID).Msg("Deep scan failed")
				os.Exit(1)
			}
			log.Info().Uint("page_id", target.ID).Int("documents", response.RagDocumentCount).Msg("Page deep scanned")
			return
		}

		var pending []scan.PendingPageInput
		for _, page := range pages {
			if page.Status == db.PageStatusPending {
				pending = append(pending, scan.PendingPageInput{ID: page.ID, URL: page.URL})
			}
		}
		if len(pending) == 0 {
			log.Info().Uint("website_id", deepScanWebsiteID).Msg("No pending pages to deep scan")
			return
		}

		result, err := service.DeepScanAllPending(ctx, deepScanUserID, deepScanWebsiteID, pending)
		if err != nil {
			log.Error().Err(err).Uint("website_id", deepScanWebsiteID).Msg("Batch deep scan failed")
			os.Exit(1)
		}
		log.Info().Int("pages", len(result.InitiatedPageIDs)).Msg(result.Message)
	},
}

func init() {
	rootCmd.AddCommand(deepScanCmd)
	deepScanCmd.Flags().UintVarP(&deepScanWebsiteID, "website", "w", 0, "Website ID (required)")
	deepScanCmd.Flags().UintVarP(&deepScanUserID, "user", "u", 0, "ID of the user owning the website (required)")
	deepScanCmd.Flags().UintVarP(&deepScanPageID, "page", "p", 0, "Deep scan a single page instead of all pending ones")
	cobra.CheckErr(deepScanCmd.MarkFlagRequired("website"))
	cobra.CheckErr(deepScanCmd.MarkFlagRequired("user"))
}
