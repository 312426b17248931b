package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"bardscore/analyzer"
	"bardscore/array"
)

func runAnalysis(cmd *cobra.Command, _ []string) error {
	if err := applyConfigFile(cmd); err != nil {
		return err
	}

	log := buildLogger(debug)
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	corpus, err := analyzer.LoadCorpus(ctx, playsDir, ext)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	if len(corpus) == 0 {
		return fmt.Errorf("no %s files found under %s", ext, playsDir)
	}

	opts := poolOptions()
	timer := analyzer.NewTimer()

	if !noWarmup {
		warm := analyzer.New(corpus,
			analyzer.WithLogger(log.Named("warmup")),
			analyzer.WithPoolOptions(opts...),
		)
		err := timer.TimeRun("warm-up run", func() error {
			_, err := warm.Scores(ctx)
			return err
		})
		if err != nil {
			return fmt.Errorf("warm-up run: %w", err)
		}
	}

	printSectionHeader(fmt.Sprintf("Scoring %d plays", len(corpus)))
	bar := makeProgressBar(len(corpus))

	a := analyzer.New(corpus,
		analyzer.WithLogger(log),
		analyzer.WithPoolOptions(opts...),
		analyzer.WithResultHook(func(string, float64) {
			_ = bar.Add(1)
		}),
	)

	var scores *array.Array[analyzer.Score]
	err = timer.TimeRun("timed run", func() error {
		var err error
		scores, err = a.Scores(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("scoring corpus: %w", err)
	}
	_ = bar.Finish()
	fmt.Println()

	if err := renderScores(scores); err != nil {
		return err
	}
	renderTimings(timer)
	return nil
}

func makeProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Scoring plays"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
	)
}
