package cmd

import (
	"fmt"

	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/lib"
	"github.com/spf13/cobra"
)

// createWebsiteCmd represents the createWebsite command
var createWebsiteCmd = &cobra.Command{
	Use:     "website",
	Aliases: []string{"websites", "w"},
	Short:   "Registers a new website for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := cmd.Flags().GetString("name")
		if err != nil {
			return fmt.Errorf("error getting 'name' flag: %v", err)
		}

		domain, err := cmd.Flags().GetString("domain")
		if err != nil {
			return fmt.Errorf("error getting 'domain' flag: %v", err)
		}

		userID, err := cmd.Flags().GetUint("user")
		if err != nil {
			return fmt.Errorf("error getting 'user' flag: %v", err)
		}

		domain = lib.NormalizeDomain(domain)
		if domain == "" {
			return fmt.Errorf("domain cannot be empty")
		}

		if _, err := db.Connection().GetUserByID(userID); err != nil {
			return fmt.Errorf("user %d does not exist", userID)
		}

		website := &db.Website{
			Name:   name,
			Domain: domain,
			UserID: userID,
		}

		website, err = db.Connection().CreateWebsite(website)
		if err != nil {
			return fmt.Errorf("error creating website: %v", err)
		}

		fmt.Printf("Website created successfully! ID: %d\n", website.ID)
		return nil
	},
}

func init() {
	createCmd.AddCommand(createWebsiteCmd)

	createWebsiteCmd.Flags().StringP("name", "n", "", "Display name for the website (required)")
	createWebsiteCmd.Flags().StringP("domain", "d", "", "Domain of the website (required)")
	createWebsiteCmd.Flags().UintP("user", "u", 0, "ID of the owning user (required)")

	cobra.CheckErr(createWebsiteCmd.MarkFlagRequired("name"))
	cobra.CheckErr(createWebsiteCmd.MarkFlagRequired("domain"))
	cobra.CheckErr(createWebsiteCmd.MarkFlagRequired("user"))
}
