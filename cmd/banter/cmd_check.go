package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"banter/internal/taunt"
)

var checkCmd = &cobra.Command{
	Use:   "check [corpus-file]",
	Short: "Lint a taunt corpus file",
	Long: `Parses a corpus file and reports per-category entry counts, unknown
section names (which fold into GENERAL at runtime), unknown tags (dropped at
runtime) and duplicate lines.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	corpus, stats, err := taunt.Parse(f)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d lines, %d entries\n\n", path, stats.Lines, stats.Entries)

	for _, cat := range taunt.Categories() {
		entries := corpus.Entries(cat)
		if len(entries) == 0 {
			continue
		}
		fmt.Printf("  %-16s %d\n", cat.String(), len(entries))
	}

	for _, name := range stats.UnknownSections {
		fmt.Printf("\nwarning: unknown section [%s] folds into GENERAL\n", name)
	}
	for _, name := range stats.UnknownTags {
		fmt.Printf("warning: unknown tag %q dropped\n", name)
	}

	dupes := duplicateLines(corpus)
	for _, d := range dupes {
		fmt.Printf("warning: duplicate line %q\n", d)
	}

	if stats.Entries == 0 {
		fmt.Println("\nwarning: corpus has no entries; all commentary will be silent")
	}
	return nil
}

// duplicateLines reports entry texts appearing more than once anywhere in
// the corpus.
func duplicateLines(corpus *taunt.Corpus) []string {
	seen := make(map[string]int)
	for _, cat := range taunt.Categories() {
		for _, e := range corpus.Entries(cat) {
			seen[e.Text]++
		}
	}

	var out []string
	for text, n := range seen {
		if n > 1 {
			out = append(out, text)
		}
	}
	return out
}
