package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/romanticformat/companion/internal/analysis"
	"github.com/romanticformat/companion/internal/charts"
	"github.com/romanticformat/companion/internal/deck"
)

var (
	chartsDir  string
	openCharts bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Analyze deck composition: types, subtypes, colors, mana sources",
	Long: `Analyze a decklist's composition. Prints type buckets, creature
subtypes, color identity distribution and mana sources. Use "-" to read
from stdin. With --charts DIR, interactive HTML charts are written to
DIR as well.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			input []byte
			err   error
		)
		if args[0] == "-" {
			input, err = io.ReadAll(os.Stdin)
		} else {
			input, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read decklist: %w", err)
		}

		return analyzeDecklist(cmd.Context(), string(input))
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&chartsDir, "charts", "", "write HTML charts to this directory")
	analyzeCmd.Flags().BoolVar(&openCharts, "open", false, "open rendered charts in the browser (needs --charts)")
}

func analyzeDecklist(ctx context.Context, input string) error {
	lines := deck.Parse(input)
	if len(lines) == 0 {
		return fmt.Errorf("no cards found in decklist")
	}

	names := make([]string, len(lines))
	for i, line := range lines {
		names[i] = line.Name
	}

	lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	results := service.LookupAll(lookupCtx, names)

	metas := make([]analysis.CardMeta, len(lines))
	unresolved := 0
	for i, result := range results {
		metas[i] = analysis.CardMeta{
			Name:     lines[i].Name,
			Quantity: lines[i].Quantity,
		}
		if result.Err != nil {
			unresolved++
			continue
		}
		metas[i].Name = result.Info.Name
		metas[i].TypeLine = result.Info.TypeLine
		metas[i].Colors = result.Info.Colors
		metas[i].ColorIdentity = result.Info.ColorIdentity
		metas[i].ProducedMana = result.Info.ProducedMana
	}

	printAnalysis(metas, unresolved)

	if chartsDir != "" {
		if err := renderCharts(metas, chartsDir); err != nil {
			return err
		}
	}
	return nil
}

func printAnalysis(metas []analysis.CardMeta, unresolved int) {
	bold := color.New(color.Bold)

	total := 0
	for _, m := range metas {
		total += m.Quantity
	}
	fmt.Printf("%s (%d cards", bold.Sprint("Deck composition"), total)
	if unresolved > 0 {
		fmt.Printf(", %s", color.YellowString("%d unresolved", unresolved))
	}
	fmt.Println(")")

	fmt.Printf("\n%s\n", bold.Sprint("Types"))
	for _, bucket := range analysis.TypeBuckets(metas) {
		fmt.Printf("  %-14s %d\n", bucket.Bucket, bucket.Copies)
	}

	subtypes := analysis.SubtypeBreakdown(metas)
	if len(subtypes) > 0 {
		fmt.Printf("\n%s\n", bold.Sprint("Creature subtypes"))
		for _, sub := range subtypes {
			fmt.Printf("  %-14s %-3d (%s)\n", sub.Subtype, sub.Copies, strings.Join(sub.Cards, ", "))
		}
	}

	fmt.Printf("\n%s\n", bold.Sprint("Color identity"))
	for _, cc := range analysis.ColorDistribution(metas) {
		if cc.Copies > 0 {
			fmt.Printf("  %-3s %d\n", cc.Color, cc.Copies)
		}
	}

	fmt.Printf("\n%s\n", bold.Sprint("Mana sources (all / lands)"))
	all := analysis.ManaSources(metas, false)
	lands := analysis.ManaSources(metas, true)
	for i, cc := range all {
		if cc.Copies > 0 || lands[i].Copies > 0 {
			fmt.Printf("  %-3s %d / %d\n", cc.Color, cc.Copies, lands[i].Copies)
		}
	}
}

func renderCharts(metas []analysis.CardMeta, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create charts dir: %w", err)
	}

	var rendered []string

	typeData := make([]charts.DataPoint, 0)
	for _, bucket := range analysis.TypeBuckets(metas) {
		typeData = append(typeData, charts.DataPoint{Label: bucket.Bucket, Value: float64(bucket.Copies)})
	}
	typeCfg := charts.DefaultChartConfig()
	typeCfg.Title = "Card Types"
	typePath := filepath.Join(dir, "types.html")
	if err := charts.RenderBarChart(typeData, typeCfg, typePath); err != nil {
		return fmt.Errorf("render type chart: %w", err)
	}
	rendered = append(rendered, typePath)

	donuts := []struct {
		title  string
		file   string
		counts []analysis.ColorCount
	}{
		{"Color Identity", "colors.html", analysis.ColorDistribution(metas)},
		{"Mana Sources", "sources_all.html", analysis.ManaSources(metas, false)},
		{"Mana Sources (Lands)", "sources_lands.html", analysis.ManaSources(metas, true)},
	}
	for _, donut := range donuts {
		data := make([]charts.DataPoint, 0)
		for _, cc := range donut.counts {
			if cc.Copies > 0 {
				data = append(data, charts.DataPoint{Label: cc.Color, Value: float64(cc.Copies)})
			}
		}
		cfg := charts.DefaultChartConfig()
		cfg.Title = donut.title
		cfg.Colors = charts.ManaColors(data)
		path := filepath.Join(dir, donut.file)
		if err := charts.RenderDonutChart(data, cfg, path); err != nil {
			return fmt.Errorf("render %s: %w", donut.file, err)
		}
		rendered = append(rendered, path)
	}

	fmt.Printf("\nCharts written to %s\n", dir)

	if openCharts {
		for _, path := range rendered {
			if err := charts.OpenInBrowser(path); err != nil {
				fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
			}
		}
	}
	return nil
}
