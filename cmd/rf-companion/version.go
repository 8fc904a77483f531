package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romanticformat/companion/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rf-companion version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rf-companion %s\n", version.GetVersion())
	},
}
