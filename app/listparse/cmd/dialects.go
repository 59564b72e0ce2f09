package cmd

import (
	"fmt"

	"github.com/ftpkit/listparse/internal/dialect"
	"github.com/spf13/cobra"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List registered listing dialects",
	Run: func(cmd *cobra.Command, args []string) {
		for _, key := range dialect.Keys() {
			fmt.Println(key)
		}
	},
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}
