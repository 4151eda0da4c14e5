package cmd

import (
	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c", "add"},
	Short:   "Used to persist resources",
}

func init() {
	rootCmd.AddCommand(createCmd)
}
