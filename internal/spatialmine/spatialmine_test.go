package spatialmine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineMineFromReaders(t *testing.T) {
	dbText := strings.NewReader("a -1\nb -1\na -1 b -1\n")
	neighborText := strings.NewReader("a\ta\tb\nb\ta\tb\n")

	eng, err := NewEngine(EngineOptions{
		DatabaseReader: dbText,
		NeighborReader: neighborText,
		MinSup:         2,
	})
	require.NoError(t, err)

	require.NoError(t, eng.Mine(context.Background()))

	patterns := eng.Patterns()
	require.Equal(t, 2, patterns["a -1"])
	require.Equal(t, 2, patterns["b -1"])
	require.GreaterOrEqual(t, eng.RuntimeSeconds(), 0.0)
}

func TestEngineSaveWritesCanonicalFormat(t *testing.T) {
	dbText := strings.NewReader("a -1\na -1\n")
	neighborText := strings.NewReader("a\ta\n")

	eng, err := NewEngine(EngineOptions{
		DatabaseReader: dbText,
		NeighborReader: neighborText,
		MinSup:         1,
	})
	require.NoError(t, err)
	require.NoError(t, eng.Mine(context.Background()))

	out := filepath.Join(t.TempDir(), "patterns.txt")
	require.NoError(t, eng.Save(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "a -1:2 \n")
}

func TestNewEngineRejectsMissingSource(t *testing.T) {
	_, err := NewEngine(EngineOptions{MinSup: 1})
	require.Error(t, err)
}

func TestNewEngineRejectsInvalidMinSup(t *testing.T) {
	dbText := strings.NewReader("a -1\n")
	neighborText := strings.NewReader("a\ta\n")

	_, err := NewEngine(EngineOptions{
		DatabaseReader: dbText,
		NeighborReader: neighborText,
		MinSup:         0,
	})
	require.ErrorIs(t, err, ErrParameterRange)
}

type fakeTabularSource struct {
	rows [][][]string
}

func (f fakeTabularSource) Transactions() [][][]string { return f.rows }

type fakeNeighborSource struct {
	items      []string
	neighbours [][]string
}

func (f fakeNeighborSource) Items() []string        { return f.items }
func (f fakeNeighborSource) Neighbours() [][]string { return f.neighbours }

func TestEngineMineFromTabularSources(t *testing.T) {
	db := fakeTabularSource{rows: [][][]string{
		{{"a"}},
		{{"a"}},
	}}
	neighbors := fakeNeighborSource{items: []string{"a"}, neighbours: [][]string{{"a"}}}

	eng, err := NewEngine(EngineOptions{
		DatabaseTabular: db,
		NeighborTabular: neighbors,
		MinSup:          2,
	})
	require.NoError(t, err)
	require.NoError(t, eng.Mine(context.Background()))

	table := eng.PatternsTable()
	require.Len(t, table.Patterns, 1)
	require.Equal(t, "a -1", table.Patterns[0])
	require.Equal(t, 2, table.Support[0])
}
