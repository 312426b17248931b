// Package cli implements the bardscore command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"bardscore/active"
)

var (
	cfgPath    string
	playsDir   string
	ext        string
	workers    int
	ratePerSec float64
	rateBurst  int
	debug      bool
	noWarmup   bool
)

var rootCmd = &cobra.Command{
	Use:   "bardscore",
	Short: "Concurrent Flesch-Kincaid grade level analysis for a corpus of plays",
	Long: `bardscore computes the Flesch-Kincaid grade level score for every play in a
corpus, concurrently: one active object per play is started, then the scores
are harvested in order and printed highest grade first.

The corpus is a folder of text files; each file name (minus its extension)
becomes the play's title. A warm-up run precedes the timed run so the
reported timing reflects a warmed scheduler.

Examples:
  bardscore --plays ./plays                # score every .txt under ./plays
  bardscore --workers 8                    # bound the batch to 8 workers
  bardscore --config bardscore.yml --debug # file config plus debug logging`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalysis,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&playsDir, "plays", "plays", "directory containing the corpus")
	flags.StringVar(&ext, "ext", ".txt", "corpus file extension")
	flags.IntVar(&workers, "workers", 0, "bound the batch to this many workers (0 = one goroutine per play)")
	flags.Float64Var(&ratePerSec, "rate", 0, "limit execution starts per second (0 = unlimited)")
	flags.IntVar(&rateBurst, "burst", 1, "rate limiter burst size")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.BoolVar(&noWarmup, "no-warmup", false, "skip the warm-up run")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// fileConfig mirrors the flag set for YAML configuration. Explicit flags
// always win over file values.
type fileConfig struct {
	PlaysDir  string  `yaml:"plays_dir"`
	Extension string  `yaml:"extension"`
	Workers   int     `yaml:"workers"`
	Rate      float64 `yaml:"rate_per_second"`
	Burst     int     `yaml:"rate_burst"`
	Debug     bool    `yaml:"debug"`
	NoWarmup  bool    `yaml:"no_warmup"`
}

func applyConfigFile(cmd *cobra.Command) error {
	if cfgPath == "" {
		return nil
	}

	raw, err := os.ReadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parsing %s: %w", cfgPath, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("plays") && fc.PlaysDir != "" {
		playsDir = fc.PlaysDir
	}
	if !flags.Changed("ext") && fc.Extension != "" {
		ext = fc.Extension
	}
	if !flags.Changed("workers") && fc.Workers > 0 {
		workers = fc.Workers
	}
	if !flags.Changed("rate") && fc.Rate > 0 {
		ratePerSec = fc.Rate
	}
	if !flags.Changed("burst") && fc.Burst > 0 {
		rateBurst = fc.Burst
	}
	if !flags.Changed("debug") {
		debug = debug || fc.Debug
	}
	if !flags.Changed("no-warmup") {
		noWarmup = noWarmup || fc.NoWarmup
	}
	return nil
}

// poolOptions translates the worker and rate flags into active pool options.
func poolOptions() []active.Option {
	var opts []active.Option
	if workers > 0 {
		opts = append(opts, active.WithWorkerCount(workers))
	}
	if ratePerSec > 0 {
		opts = append(opts, active.WithRateLimit(ratePerSec, rateBurst))
	}
	return opts
}

func buildLogger(debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	if debug {
		logConfig.Level.SetLevel(zap.DebugLevel)
	} else {
		logConfig.Level.SetLevel(zap.InfoLevel)
	}
	return zap.Must(logConfig.Build())
}
