package spatialmine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// EngineOptions configures a mining run, matching spec §6's engine
// construction parameters. For the database and neighborhood inputs,
// exactly one of the Path/Reader/Tabular fields should be set; Tabular
// takes precedence over Reader, which takes precedence over Path.
//
// MaxLength and MaxGap of zero mean "unbounded" (spec's default of +∞);
// set them to a positive value to bound pattern length/gap.
type EngineOptions struct {
	DatabasePath    string
	DatabaseReader  io.Reader
	DatabaseTabular TabularSource

	NeighborPath    string
	NeighborReader  io.Reader
	NeighborTabular NeighborTabularSource

	// MinSup is an int (absolute count), float64 (relative fraction of the
	// database size) or string (parsed as either, per spec §4.5).
	MinSup any

	// Sep delimits fields in the neighborhood source. Defaults to "\t".
	Sep string

	MaxLength int
	MaxGap    int

	Logger *slog.Logger
}

// Engine mines one sequence database against one neighborhood map. It
// implements spec §6's external interface: Mine, Patterns, PatternsTable,
// Save, RuntimeSeconds, MemoryUSS, MemoryRSS.
type Engine struct {
	db           Database
	neighborhood Neighborhood
	minSup       int
	maxLength    int
	maxGap       int
	logger       *slog.Logger

	dbReport DecodeReport
	nReport  DecodeReport

	patternStore   *store
	runtimeSeconds float64
	memUSS         uint64
	memRSS         uint64
}

// NewEngine constructs an Engine, decoding the database and neighborhood
// inputs and validating parameters. It returns ErrSourceUnavailable if an
// input cannot be read and ErrParameterRange if minSup/maxLength/maxGap
// are out of range; both are fatal per spec §7.
func NewEngine(opts EngineOptions) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	db, dbReport, err := decodeDatabaseFrom(opts)
	if err != nil {
		return nil, err
	}
	n, nReport, err := decodeNeighborhoodFrom(opts)
	if err != nil {
		return nil, err
	}

	minSup, err := convertMinSup(opts.MinSup, len(db))
	if err != nil {
		return nil, err
	}
	maxLength := opts.MaxLength
	if maxLength == 0 {
		maxLength = Unbounded
	}
	maxGap := opts.MaxGap
	if maxGap == 0 {
		maxGap = Unbounded
	}
	if err := validateParams(minSup, maxLength, maxGap); err != nil {
		return nil, err
	}

	if dbReport.SkippedLines > 0 {
		logger.Debug("skipped malformed database lines", "count", dbReport.SkippedLines)
	}
	if nReport.SkippedLines > 0 {
		logger.Debug("skipped malformed neighborhood lines", "count", nReport.SkippedLines)
	}
	if len(db) == 0 {
		logger.Info("empty sequence database; mine() will report zero patterns")
	}

	return &Engine{
		db:           db,
		neighborhood: n,
		minSup:       minSup,
		maxLength:    maxLength,
		maxGap:       maxGap,
		logger:       logger,
		dbReport:     dbReport,
		nReport:      nReport,
	}, nil
}

func decodeDatabaseFrom(opts EngineOptions) (Database, DecodeReport, error) {
	switch {
	case opts.DatabaseTabular != nil:
		return DatabaseFromTabular(opts.DatabaseTabular), DecodeReport{}, nil
	case opts.DatabaseReader != nil:
		return DecodeDatabase(opts.DatabaseReader)
	case opts.DatabasePath != "":
		f, err := os.Open(opts.DatabasePath)
		if err != nil {
			return nil, DecodeReport{}, sourceUnavailable("opening database", opts.DatabasePath, err)
		}
		defer f.Close()
		return DecodeDatabase(f)
	default:
		return nil, DecodeReport{}, fmt.Errorf("no database source: %w", ErrSourceUnavailable)
	}
}

func decodeNeighborhoodFrom(opts EngineOptions) (Neighborhood, DecodeReport, error) {
	sep := opts.Sep
	if sep == "" {
		sep = "\t"
	}
	switch {
	case opts.NeighborTabular != nil:
		return NeighborhoodFromTabular(opts.NeighborTabular), DecodeReport{}, nil
	case opts.NeighborReader != nil:
		return DecodeNeighborhood(opts.NeighborReader, sep)
	case opts.NeighborPath != "":
		f, err := os.Open(opts.NeighborPath)
		if err != nil {
			return nil, DecodeReport{}, sourceUnavailable("opening neighborhood", opts.NeighborPath, err)
		}
		defer f.Close()
		return DecodeNeighborhood(f, sep)
	default:
		return nil, DecodeReport{}, fmt.Errorf("no neighborhood source: %w", ErrSourceUnavailable)
	}
}

// Mine runs the projection-based mining core to completion, populating the
// pattern store and recording elapsed time and memory snapshots.
func (e *Engine) Mine(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	memBefore := readMemorySnapshot()

	eng := newMiningEngine(e.neighborhood, e.minSup, e.maxLength, e.maxGap)
	eng.run(flattenDatabase(e.db))
	e.patternStore = eng.store

	e.runtimeSeconds = time.Since(start).Seconds()
	memAfter := readMemorySnapshot()
	e.memUSS = memAfter.uss
	e.memRSS = memAfter.rss

	e.logger.Info("mining complete",
		"patterns", len(e.patternStore.order),
		"runtime_seconds", e.runtimeSeconds,
		"heap_delta_bytes", deltaUint64(memBefore.uss, memAfter.uss),
	)
	return nil
}

func deltaUint64(before, after uint64) uint64 {
	if after < before {
		return 0
	}
	return after - before
}

// Patterns returns the discovered patterns as canonical-string -> support.
func (e *Engine) Patterns() map[string]int {
	if e.patternStore == nil {
		return map[string]int{}
	}
	keys, vals := e.patternStore.snapshot()
	out := make(map[string]int, len(keys))
	for i, k := range keys {
		out[k] = vals[i]
	}
	return out
}

// PatternsTable returns the discovered patterns as a two-column view, in
// deterministic insertion order.
func (e *Engine) PatternsTable() PatternTable {
	if e.patternStore == nil {
		return PatternTable{}
	}
	keys, vals := e.patternStore.snapshot()
	return PatternTable{Patterns: keys, Support: vals}
}

// Save writes each pattern:support pair on its own line, with a space
// before the line terminator, per spec §6.
func (e *Engine) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return sourceUnavailable("writing output", path, err)
	}
	defer f.Close()

	keys, vals := []string{}, []int{}
	if e.patternStore != nil {
		keys, vals = e.patternStore.snapshot()
	}
	w := bufio.NewWriter(f)
	for i, k := range keys {
		if _, err := fmt.Fprintf(w, "%s:%d \n", k, vals[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// RuntimeSeconds returns the wall-clock duration of the last Mine call.
func (e *Engine) RuntimeSeconds() float64 { return e.runtimeSeconds }

// MemoryUSS returns the approximate USS memory recorded at Mine completion.
func (e *Engine) MemoryUSS() uint64 { return e.memUSS }

// MemoryRSS returns the approximate RSS memory recorded at Mine completion.
func (e *Engine) MemoryRSS() uint64 { return e.memRSS }

// DecodeReports returns the skip counts recorded while parsing the database
// and neighborhood sources, so a caller can surface malformed-input warnings.
func (e *Engine) DecodeReports() (database, neighborhood DecodeReport) {
	return e.dbReport, e.nReport
}
