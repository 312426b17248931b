package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"bardscore/analyzer"
	"bardscore/array"
)

var (
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

// renderScores prints the corpus scores as a table, hardest read first.
func renderScores(scores *array.Array[analyzer.Score]) error {
	ranked := analyzer.SortDescending(scores)

	printSectionHeader("FLESCH-KINCAID GRADE LEVELS",
		"Higher scores mean a harder read; the grade is the US school",
		"grade a reader needs to follow the text comfortably.")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Rank", "Play", "Score", "Grade")

	for i, s := range ranked {
		_ = table.Append(
			fmt.Sprintf("%d", i+1),
			s.Title,
			fmt.Sprintf("%.2f", s.Value),
			analyzer.OrdinalSuffix(s.Value),
		)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering results: %w", err)
	}

	fmt.Println()
	_, _ = green.Printf("Scored %d plays\n", len(ranked))
	return nil
}

func renderTimings(timer *analyzer.Timer) {
	fmt.Println()
	_, _ = yellow.Println("Timings (fastest observation per run):")
	fmt.Print(timer.Results())
}

func printSectionHeader(title string, descriptions ...string) {
	fmt.Println()
	_, _ = bold.Println("═══════════════════════════════════════════════════════════")
	_, _ = bold.Println(title)
	_, _ = bold.Println("═══════════════════════════════════════════════════════════")
	for _, desc := range descriptions {
		fmt.Println(desc)
	}
	fmt.Println()
}
