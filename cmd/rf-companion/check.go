package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/romanticformat/companion/internal/deck"
	"github.com/romanticformat/companion/internal/legality"
)

var watchDecklist bool

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Check a decklist's format legality, one card per line",
	Long: `Check every line of a decklist ("4x Lightning Bolt" style; # starts a
comment, SB: marks sideboard cards). Use "-" to read from stdin.
With --watch the file is re-checked whenever it changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if path == "-" {
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return checkDecklist(cmd.Context(), string(input))
		}

		if watchDecklist {
			return watchAndCheck(cmd.Context(), path)
		}

		input, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read decklist: %w", err)
		}
		return checkDecklist(cmd.Context(), string(input))
	},
}

func init() {
	checkCmd.Flags().BoolVar(&watchDecklist, "watch", false, "re-check whenever the file changes")
}

// checkDecklist resolves and classifies every parsed line. One bad line
// never stops the rest; it is reported individually.
func checkDecklist(ctx context.Context, input string) error {
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

	problems := 0
	for i, result := range results {
		qty := lines[i].Quantity

		if result.Err != nil {
			problems++
			fmt.Printf("%dx %s: %s\n", qty, result.Input, color.RedString("card not found or API error"))
			continue
		}

		info := result.Info
		fmt.Printf("%dx %s: %s\n", qty, info.Name, verdictText(info.Verdict))
		if info.Verdict != legality.Legal {
			problems++
		}
	}

	d := deck.New()
	for _, line := range lines {
		d.Add(line.Name, line.Quantity)
	}
	fmt.Printf("\n%d cards, %d distinct", d.Total(), d.Len())
	if problems > 0 {
		fmt.Printf(", %s", color.YellowString("%d need attention", problems))
	}
	fmt.Println()

	return nil
}

// watchAndCheck re-runs the decklist check whenever the file is
// written. Editors often replace the file instead of writing in place,
// so the watch is on the directory and filtered by name.
func watchAndCheck(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	runCheck := func() {
		input, err := os.ReadFile(absPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read decklist: %v\n", err)
			return
		}
		fmt.Printf("--- %s ---\n", filepath.Base(absPath))
		if err := checkDecklist(ctx, string(input)); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	runCheck()
	fmt.Fprintln(os.Stderr, "watching for changes, Ctrl+C to stop")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				// The allow list may have changed on disk too; a fresh
				// check should not trust results from before the edit.
				service.InvalidateCache()
				runCheck()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}
