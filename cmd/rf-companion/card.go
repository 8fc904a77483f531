package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/romanticformat/companion/internal/cards"
	"github.com/romanticformat/companion/internal/legality"
)

var (
	verdictColors = map[legality.Kind]*color.Color{
		legality.Legal:    color.New(color.FgGreen),
		legality.NotLegal: color.New(color.FgYellow),
		legality.Banned:   color.New(color.FgRed),
		legality.Unknown:  color.New(color.FgCyan),
	}
)

func verdictText(kind legality.Kind) string {
	if c, ok := verdictColors[kind]; ok {
		return c.Sprint(kind.Label())
	}
	return kind.Label()
}

var cardCmd = &cobra.Command{
	Use:   "card NAME",
	Short: "Resolve a card and check its format legality",
	Long: `Resolve a free-text card name via fuzzy lookup and report its
metadata and legality verdict. Multi-word names need no quoting:

  rf-companion card lightning bolt`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), lookupTimeout)
		defer cancel()

		info, err := service.Lookup(ctx, name)
		if err == cards.ErrNotResolved {
			return fmt.Errorf("%q: card not found or API error", name)
		}
		if err != nil {
			return err
		}

		printCard(info)
		return nil
	},
}

func printCard(info *cards.CardInfo) {
	bold := color.New(color.Bold)

	fmt.Printf("%s  [%s]\n", bold.Sprint(info.Name), verdictText(info.Verdict))
	if info.TypeLine != "" {
		fmt.Printf("  Type:       %s\n", info.TypeLine)
	}
	if info.ManaCost != "" {
		fmt.Printf("  Mana cost:  %s\n", info.ManaCost)
	}
	if info.CMC != nil {
		fmt.Printf("  Mana value: %g\n", *info.CMC)
	}
	if len(info.ColorIdentity) > 0 {
		fmt.Printf("  Identity:   %s\n", strings.Join(info.ColorIdentity, ""))
	}
	if len(info.PrintSets) > 0 {
		fmt.Printf("  Printings:  %s\n", strings.Join(info.PrintSets.Sorted(), ", "))
	}
	if info.ImageURL != "" {
		fmt.Printf("  Image:      %s\n", info.ImageURL)
	}
}
