package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/saint2706/spatialseqmine/internal/config"
	"github.com/saint2706/spatialseqmine/internal/spatialmine"
)

var mineFlags struct {
	input     string
	neighbors string
	minSup    string
	sep       string
	maxLength int
	maxGap    int
	output    string
	jsonOut   bool
	cfgPath   string
	verbose   bool
	jobs      []string
}

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine spatial sequential patterns from a database and neighborhood file",
	RunE:  runMine,
}

func init() {
	f := mineCmd.Flags()
	f.StringVar(&mineFlags.input, "input", "", "path to the sequence database")
	f.StringVar(&mineFlags.neighbors, "neighbors", "", "path to the neighborhood relation")
	f.StringVar(&mineFlags.minSup, "min-sup", "0.5", "minimum support: integer count or fractional (0,1]")
	f.StringVar(&mineFlags.sep, "sep", "\t", "field separator for the neighborhood file")
	f.IntVar(&mineFlags.maxLength, "max-length", 0, "maximum pattern length in itemsets (0 = unbounded)")
	f.IntVar(&mineFlags.maxGap, "max-gap", 0, "maximum itemset gap between consecutive matches (0 = unbounded)")
	f.StringVar(&mineFlags.output, "output", "", "write pattern:support pairs to this file instead of stdout")
	f.BoolVar(&mineFlags.jsonOut, "json", false, "emit patterns as a JSON object instead of text")
	f.StringVar(&mineFlags.cfgPath, "config", "", "YAML file of default parameters")
	f.BoolVar(&mineFlags.verbose, "verbose", false, "enable debug-level logging")
	f.StringArrayVar(&mineFlags.jobs, "jobs", nil, "input:neighbor pairs to mine concurrently, overrides --input/--neighbors")
}

func runMine(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if mineFlags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(mineFlags.cfgPath)
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, cfg)

	if len(mineFlags.jobs) > 0 {
		return runBatch(cmd.Context(), logger)
	}
	return runSingle(cmd.Context(), logger, mineFlags.input, mineFlags.neighbors, mineFlags.output)
}

// applyConfigDefaults fills any flag the user did not explicitly set from
// the loaded config file, so --config values act as soft defaults.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("input") && cfg.Input != "" {
		mineFlags.input = cfg.Input
	}
	if !flags.Changed("neighbors") && cfg.Neighbors != "" {
		mineFlags.neighbors = cfg.Neighbors
	}
	if !flags.Changed("min-sup") && cfg.MinSup != "" {
		mineFlags.minSup = cfg.MinSup
	}
	if !flags.Changed("sep") && cfg.Sep != "" {
		mineFlags.sep = cfg.Sep
	}
	if !flags.Changed("max-length") && cfg.MaxLength != 0 {
		mineFlags.maxLength = cfg.MaxLength
	}
	if !flags.Changed("max-gap") && cfg.MaxGap != 0 {
		mineFlags.maxGap = cfg.MaxGap
	}
	if !flags.Changed("output") && cfg.Output != "" {
		mineFlags.output = cfg.Output
	}
}

func runSingle(ctx context.Context, logger *slog.Logger, input, neighbors, output string) error {
	eng, err := spatialmine.NewEngine(spatialmine.EngineOptions{
		DatabasePath: input,
		NeighborPath: neighbors,
		MinSup:       mineFlags.minSup,
		Sep:          mineFlags.sep,
		MaxLength:    mineFlags.maxLength,
		MaxGap:       mineFlags.maxGap,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if err := eng.Mine(ctx); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	return writeResult(eng, output)
}

func writeResult(eng *spatialmine.Engine, output string) error {
	if output != "" {
		return eng.Save(output)
	}
	if mineFlags.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(eng.Patterns())
	}
	table := eng.PatternsTable()
	for i, p := range table.Patterns {
		fmt.Printf("%s : %d\n", p, table.Support[i])
	}
	return nil
}

// runBatch fans out one Engine per input:neighbor job pair, each mining
// concurrently in its own goroutine (spec's independent-engines clause).
func runBatch(ctx context.Context, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range mineFlags.jobs {
		parts := strings.SplitN(job, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid --jobs entry %q: want input:neighbor", job)
		}
		input, neighbor := parts[0], parts[1]
		output := ""
		if mineFlags.output != "" {
			output = mineFlags.output + "." + strconv.Itoa(i)
		}
		g.Go(func() error {
			return runSingle(gctx, logger, input, neighbor, output)
		})
	}
	return g.Wait()
}
