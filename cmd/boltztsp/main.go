// Command boltztsp approximates a Travelling Salesman tour with a
// Boltzmann-machine network over a JSON distance file.
//
// The distance file maps city labels to their pairwise distances and may
// be triangular: any pair given in one direction is mirrored into the
// other. Example:
//
//	{
//	  "A": {},
//	  "B": {"A": 10},
//	  "C": {"A": 20, "B": 15}
//	}
//
// Unless -quiet is set, the activation grid is redrawn after every sweep
// (cities as rows, tour positions as columns, O for active neurons). The
// final line reports the attempts consumed and the decoded cycle with its
// total distance.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/boltztsp/boltzmann"
	"github.com/katalvlaran/boltztsp/distmat"
)

func main() {
	var (
		file     = flag.String("file", "distances.json", "distances JSON input file")
		penalty  = flag.Float64("penalty", 0, "penalty for violating tour constraints (must exceed the longest distance)")
		bonus    = flag.Float64("bonus", 0, "bonus for activating a neuron (prevents the empty equilibrium)")
		temp     = flag.Float64("temp", boltzmann.DefaultStartTemp, "initial temperature")
		minTemp  = flag.Float64("mintemp", boltzmann.DefaultMinTemp, "minimum temperature")
		decay    = flag.Float64("decay", 0.999, "temperature decay rate, in (0,1)")
		attempts = flag.Int("attempts", boltzmann.DefaultMaxAttempts, "maximum annealing attempts (negative: unlimited)")
		seed     = flag.Int64("seed", 0, "RNG seed (0: fixed default stream)")
		quiet    = flag.Bool("quiet", false, "suppress the per-sweep grid display (greatly improves speed)")
	)
	flag.Parse()

	if err := run(*file, *penalty, *bonus, *temp, *minTemp, *decay, *attempts, *seed, *quiet); err != nil {
		fmt.Fprintln(os.Stderr, "boltztsp:", err)
		os.Exit(1)
	}
}

func run(file string, penalty, bonus, temp, minTemp, decay float64, attempts int, seed int64, quiet bool) error {
	dist, err := loadDistances(file)
	if err != nil {
		return err
	}

	opts := boltzmann.Options{
		Penalty:     penalty,
		Bonus:       bonus,
		StartTemp:   temp,
		MinTemp:     minTemp,
		DecayRate:   decay,
		MaxAttempts: attempts,
		Seed:        seed,
	}
	if !quiet {
		fmt.Printf("Using penalty: %g\tbonus: %g\n", penalty, bonus)
		fmt.Printf("Starting temp: %g\tmin. temp: %g\tdecay rate: %g\n", temp, minTemp, decay)
		opts.Observer = newGridDisplay(os.Stdout, dist.Labels())
	}

	res, err := boltzmann.Solve(dist, opts)
	if err != nil {
		if errors.Is(err, boltzmann.ErrAttemptsExhausted) {
			return fmt.Errorf("no valid tour after %d attempts; try other parameters: %w", res.Attempts, err)
		}
		return err
	}

	plural := ""
	if res.Attempts > 1 {
		plural = "s"
	}
	fmt.Printf("\nExecution required %d attempt%s.\n", res.Attempts, plural)
	fmt.Printf("\nFinal path:\t%s\n", res.Tour)

	return nil
}

// loadDistances reads a (possibly triangular) label-keyed distance file.
func loadDistances(file string) (*distmat.Matrix, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var entries map[string]map[string]float64
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}

	return distmat.FromTriangular(entries)
}

// gridDisplay renders each snapshot as a city × position grid, rewinding
// the cursor between sweeps so the display animates in place.
type gridDisplay struct {
	out    io.Writer
	labels []string
	lines  int // lines printed by the previous frame, 0 before the first
}

func newGridDisplay(out io.Writer, labels []string) *gridDisplay {
	return &gridDisplay{out: out, labels: labels}
}

// Observe implements boltzmann.Observer.
func (d *gridDisplay) Observe(s boltzmann.Snapshot, attempt int, temp float64) {
	if d.lines > 0 {
		// Rewind over the previous frame with ANSI escapes.
		fmt.Fprintf(d.out, "\033[%dA", d.lines)
	}

	var b strings.Builder
	n := s.Cities()

	// Header: position numbers over the columns.
	b.WriteString("       ")
	var pos int
	for pos = 0; pos < n; pos++ {
		fmt.Fprintf(&b, "%-4d", pos+1)
	}
	b.WriteByte('\n')

	// One row per city, label truncated to four runes.
	var city int
	for city = 0; city < n; city++ {
		fmt.Fprintf(&b, "%4s |", truncLabel(d.labels[city]))
		for pos = 0; pos < n; pos++ {
			if s.Active(city, pos) {
				b.WriteString(" O |")
			} else {
				b.WriteString(" - |")
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "attempt: %d\ttemp: %10.2f\tactive: %d \n", attempt, temp, s.ActiveCount())

	io.WriteString(d.out, b.String())
	d.lines = n + 2
}

// truncLabel shortens a city label to at most four runes for the grid's
// fixed-width row header. Truncating on runes keeps multi-byte labels
// intact instead of splitting a codepoint mid-byte.
func truncLabel(label string) string {
	r := []rune(label)
	if len(r) <= 4 {
		return label
	}

	return string(r[:4])
}
