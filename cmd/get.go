package cmd

import (
	"github.com/spf13/cobra"
)

var format string

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "List resources",
	Long:  `Get is used to retrieve resources like websites and scanned pages.`,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.PersistentFlags().StringVarP(&format, "format", "f", "table", "Output format (json, yaml, text, pretty, table)")
}
