package distmat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boltztsp/distmat"
)

// square4 is a small valid instance reused across tests.
func square4() ([]string, [][]float64) {
	labels := []string{"A", "B", "C", "D"}
	table := [][]float64{
		{0, 10, 20, 30},
		{10, 0, 25, 15},
		{20, 25, 0, 12},
		{30, 15, 12, 0},
	}
	return labels, table
}

func TestNew_ValidTable(t *testing.T) {
	labels, table := square4()
	m, err := distmat.New(labels, table)
	require.NoError(t, err)
	require.Equal(t, 4, m.Order())
	require.Equal(t, labels, m.Labels())
	require.Equal(t, "C", m.Label(2))
	require.Equal(t, 25.0, m.Dist(1, 2))
	require.Equal(t, 25.0, m.Dist(2, 1)) // symmetric lookup
	require.Equal(t, 0.0, m.Dist(3, 3))
	require.Equal(t, 30.0, m.Max())
}

func TestNew_LabelsCopied(t *testing.T) {
	labels, table := square4()
	m, err := distmat.New(labels, table)
	require.NoError(t, err)
	labels[0] = "Z" // mutating the caller's slice must not leak in
	require.Equal(t, "A", m.Label(0))
}

func TestNew_TableCopied(t *testing.T) {
	labels, table := square4()
	m, err := distmat.New(labels, table)
	require.NoError(t, err)
	table[0][1] = 999
	require.Equal(t, 10.0, m.Dist(0, 1))
}

func TestNew_Rejections(t *testing.T) {
	labels, table := square4()

	tests := []struct {
		name   string
		labels []string
		table  [][]float64
		want   error
	}{
		{"single city", []string{"A"}, [][]float64{{0}}, distmat.ErrTooSmall},
		{"ragged row", labels, [][]float64{{0, 1, 2, 3}, {1, 0}, {2, 0, 0, 1}, {3, 0, 1, 0}}, distmat.ErrNonSquare},
		{"label count mismatch", []string{"A", "B"}, table, distmat.ErrBadLabels},
		{"duplicate labels", []string{"A", "B", "B", "D"}, table, distmat.ErrBadLabels},
		{"empty label", []string{"A", "", "C", "D"}, table, distmat.ErrBadLabels},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := distmat.New(tc.labels, tc.table)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_EntryRejections(t *testing.T) {
	mutate := func(f func(tb [][]float64)) ([]string, [][]float64) {
		labels, table := square4()
		f(table)
		return labels, table
	}

	tests := []struct {
		name string
		f    func(tb [][]float64)
		want error
	}{
		{"NaN entry", func(tb [][]float64) { tb[0][1] = math.NaN() }, distmat.ErrNaNInf},
		{"Inf entry", func(tb [][]float64) { tb[2][3] = math.Inf(1) }, distmat.ErrNaNInf},
		{"negative distance", func(tb [][]float64) { tb[1][2], tb[2][1] = -1, -1 }, distmat.ErrNegativeDistance},
		{"non-zero diagonal", func(tb [][]float64) { tb[2][2] = 0.5 }, distmat.ErrNonZeroDiagonal},
		{"asymmetric pair", func(tb [][]float64) { tb[0][3] = 31 }, distmat.ErrAsymmetry},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			labels, table := mutate(tc.f)
			_, err := distmat.New(labels, table)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromTriangular_FillsMirror(t *testing.T) {
	// Lower-triangular hand-written shape: every city is an outer key,
	// each pair appears in exactly one direction.
	entries := map[string]map[string]float64{
		"A": {},
		"B": {"A": 10},
		"C": {"A": 20, "B": 25},
		"D": {"A": 30, "B": 15, "C": 12},
	}
	m, err := distmat.FromTriangular(entries)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, m.Labels()) // sorted
	require.Equal(t, 25.0, m.Dist(1, 2))
	require.Equal(t, 25.0, m.Dist(2, 1))
	require.Equal(t, 30.0, m.Max())
}

func TestFromTriangular_AgreeingBothDirections(t *testing.T) {
	entries := map[string]map[string]float64{
		"X": {"Y": 7},
		"Y": {"X": 7},
	}
	m, err := distmat.FromTriangular(entries)
	require.NoError(t, err)
	require.Equal(t, 7.0, m.Dist(0, 1))
}

func TestFromTriangular_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]map[string]float64
		want    error
	}{
		{"too small", map[string]map[string]float64{"A": {}}, distmat.ErrTooSmall},
		{"unknown inner label", map[string]map[string]float64{
			"A": {"Z": 3}, "B": {"A": 1},
		}, distmat.ErrBadLabels},
		{"missing pair", map[string]map[string]float64{
			"A": {}, "B": {}, "C": {"A": 1, "B": 2},
		}, distmat.ErrMissingDistance},
		{"conflicting directions", map[string]map[string]float64{
			"A": {"B": 5}, "B": {"A": 6},
		}, distmat.ErrAsymmetry},
		{"negative entry", map[string]map[string]float64{
			"A": {"B": -2}, "B": {},
		}, distmat.ErrNegativeDistance},
		{"non-zero self", map[string]map[string]float64{
			"A": {"A": 1, "B": 2}, "B": {},
		}, distmat.ErrNonZeroDiagonal},
		{"NaN entry", map[string]map[string]float64{
			"A": {"B": math.NaN()}, "B": {},
		}, distmat.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := distmat.FromTriangular(tc.entries)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
