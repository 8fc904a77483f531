package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search PREFIX",
	Short: "Suggest card names matching a partial name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		partial := strings.Join(args, " ")
		if len(strings.TrimSpace(partial)) < 2 {
			return fmt.Errorf("need at least 2 characters to search")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), lookupTimeout)
		defer cancel()

		suggestions, err := service.Suggest(ctx, partial)
		if err != nil {
			return fmt.Errorf("autocomplete: %w", err)
		}

		if len(suggestions) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, name := range suggestions {
			fmt.Println(name)
		}
		return nil
	},
}
