// Command durinfo prints duration-model properties of the pulse phase
// decoder.
//
// Usage:
//
//	durinfo [flags] [phase-name ...]
//
// Without arguments it prints info for both phases.
//
// Examples:
//
//	durinfo upstroke
//	durinfo -shape0 4 -scale0 12 upstroke
//	durinfo -max-duration 200 -durations 10,50,150
//	durinfo -fit 20,25,31,28
//	durinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-hsmm/hsmm"
	"github.com/cwbudde/algo-hsmm/phase"
	"github.com/cwbudde/algo-hsmm/stats/transition"
)

type phaseEntry struct {
	name  string
	state int
}

var registry = []phaseEntry{
	{"upstroke", int(phase.Upstroke)},
	{"downstroke", int(phase.Downstroke)},
}

// override bundles one state's duration flag group.
type override struct {
	shape, scale *float64
	min, max     *int
}

func (o override) set() bool {
	return !math.IsNaN(*o.shape) || !math.IsNaN(*o.scale) || *o.min > 0 || *o.max > 0
}

func main() {
	maxDuration := flag.Int("max-duration", 100, "sojourn cap in samples")
	minDuration := flag.Int("min-duration", 5, "default lower sojourn bound in samples")
	durations := flag.String("durations", "5,10,25,50,75", "comma-separated durations to tabulate probabilities at")
	fit := flag.String("fit", "", "comma-separated run lengths; prints their method-of-moments gamma fit and exits")
	all := flag.Bool("all", false, "show all phases")
	list := flag.Bool("list", false, "list available phase names")

	overrides := make([]override, len(registry))
	for s := range overrides {
		overrides[s] = override{
			shape: flag.Float64(fmt.Sprintf("shape%d", s), math.NaN(), fmt.Sprintf("gamma shape override for %s", registry[s].name)),
			scale: flag.Float64(fmt.Sprintf("scale%d", s), math.NaN(), fmt.Sprintf("gamma scale override for %s", registry[s].name)),
			min:   flag.Int(fmt.Sprintf("min%d", s), 0, fmt.Sprintf("minimum sojourn override for %s", registry[s].name)),
			max:   flag.Int(fmt.Sprintf("max%d", s), 0, fmt.Sprintf("maximum sojourn override for %s", registry[s].name)),
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: durinfo [flags] [phase-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints duration-model properties of the pulse phase decoder.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for both phases.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  durinfo upstroke\n")
		fmt.Fprintf(os.Stderr, "  durinfo -shape0 4 -scale0 12 upstroke\n")
		fmt.Fprintf(os.Stderr, "  durinfo -fit 20,25,31,28\n")
		fmt.Fprintf(os.Stderr, "  durinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *fit != "" {
		printFit(*fit)
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching phases\n")
		os.Exit(1)
	}

	dec, err := hsmm.New(
		hsmm.WithMaxDuration(*maxDuration),
		hsmm.WithMinDuration(*minDuration),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for s, ov := range overrides {
		if !ov.set() {
			continue
		}
		p, err := dec.Params(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		next := hsmm.DurationParams{Shape: p.Shape, Scale: p.Scale, Min: p.Min, Max: p.Max}
		if !math.IsNaN(*ov.shape) {
			next.Shape = *ov.shape
		}
		if !math.IsNaN(*ov.scale) {
			next.Scale = *ov.scale
		}
		if *ov.min > 0 {
			next.Min = *ov.min
		}
		if *ov.max > 0 {
			next.Max = *ov.max
		}
		if err := dec.SetDurationParams(s, next); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", registry[s].name, err)
			os.Exit(1)
		}
	}

	printParams(dec, entries)
	printProbabilities(dec, entries, parseDurations(*durations, dec.MaxDuration()))
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func printFit(csv string) {
	runs := parseInts(csv)
	if len(runs) == 0 {
		fmt.Fprintf(os.Stderr, "error: -fit needs at least one run length\n")
		os.Exit(1)
	}
	shape, scale := transition.FitGamma(runs)
	fmt.Printf("n=%d  shape=%.4f  scale=%.4f  mean=%.2f  std=%.2f\n",
		len(runs), shape, scale, shape*scale, math.Sqrt(shape)*scale)
}

func resolveEntries(names []string) []phaseEntry {
	byName := make(map[string]phaseEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []phaseEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown phase %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func parseInts(csv string) []int {
	var out []int
	for _, field := range strings.Split(csv, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %q: not an integer\n", field)
			continue
		}
		out = append(out, v)
	}
	return out
}

func parseDurations(csv string, maxDuration int) []int {
	var out []int
	for _, d := range parseInts(csv) {
		if d < 1 || d >= maxDuration {
			fmt.Fprintf(os.Stderr, "warning: skipping duration %d: outside [1, %d)\n", d, maxDuration)
			continue
		}
		out = append(out, d)
	}
	return out
}

func printParams(dec *hsmm.Decoder, entries []phaseEntry) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Phase\tShape\tScale\tMean\tStd\tMin\tMax\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t-----\t----\t---\t---\t---\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		p, err := dec.Params(e.state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			return
		}
		if _, err := fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.2f\t%.2f\t%d\t%d\n",
			e.name, p.Shape, p.Scale, p.Mean, p.Std, p.Min, p.Max); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printProbabilities(dec *hsmm.Decoder, entries []phaseEntry, durations []int) {
	if len(durations) == 0 {
		return
	}
	stay := dec.StayTable()
	trans := dec.TransTable()

	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "Phase\tTable"
	rule := "-----\t-----"
	for _, d := range durations {
		header += fmt.Sprintf("\td=%d", d)
		rule += "\t----"
	}
	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		for _, table := range []struct {
			label string
			rows  [][]float64
		}{
			{"stay", stay},
			{"trans", trans},
		} {
			line := fmt.Sprintf("%s\t%s", e.name, table.label)
			for _, d := range durations {
				line += fmt.Sprintf("\t%.4f", table.rows[e.state][d])
			}
			if _, err := fmt.Fprintf(tw, "%s\n", line); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
