// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotspeedup discovers benchmark runtimes in an experiment directory
// and plots per-competitor speedups against the baseline competitor as
// grouped boxplots, one panel per device and routine combination.
//
// Usage:
//
//	plotspeedup [-o file] experimentdir
//
// The experiment directory holds one directory per routine, each
// holding one directory per input size, each holding one directory per
// competitor, each holding run directories named <device>-run<N> with
// a runtimes file of one nanosecond value per line:
//
//	experimentdir/matmul/64/baseline/cpu-run1/runtimes
//
// Competitor directories named "data" hold problem inputs and are
// skipped. Each competitor measurement x becomes the ratio
// median(baseline)/x at the same routine, input size, and device; the
// baseline itself is not plotted. All panels are written to a single
// PDF, runtimes.pdf unless -o says otherwise.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"benchplot/benchagg"
	"benchplot/benchchart"
	"benchplot/benchdir"
)

var output string

func init() {
	flag.StringVar(&output, "o", "runtimes.pdf", "write the figure to `file`")
	flag.StringVar(&output, "output", "runtimes.pdf", "write the figure to `file`")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: plotspeedup [-o file] experimentdir\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("plotspeedup: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	trials, err := benchdir.ReadTrialsDir(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Discovered routines: %v\n", trials.Routines)
	fmt.Printf("Discovered input sizes: %v\n", trials.InputSizes)
	fmt.Printf("Discovered competitors: %v\n", trials.Competitors)
	fmt.Printf("Discovered devices: %v\n", trials.Devices)
	for _, key := range sortedTrialKeys(trials.Samples) {
		fmt.Printf("  %s/%s/%s/%s: %d runtimes\n",
			key.Routine, key.InputSize, key.Competitor, key.Device, len(trials.Samples[key]))
	}

	speedups := benchagg.Speedups(trials)
	if len(speedups.Samples) == 0 {
		log.Fatal("no speedups to compute: no baseline measurements overlap a competitor")
	}

	var panels []benchchart.SpeedupPanel
	for _, dev := range speedups.Devices {
		for _, routine := range speedups.Routines {
			samples := make(map[benchchart.Key][]float64)
			for key, vals := range speedups.Samples {
				if key.Device == dev && key.Routine == routine {
					samples[benchchart.Key{Group: key.InputSize, Category: key.Competitor}] = vals
				}
			}
			if len(samples) == 0 {
				continue
			}
			panels = append(panels, benchchart.SpeedupPanel{
				Title:       fmt.Sprintf("%s on %s", routine, dev),
				InputSizes:  speedups.InputSizes,
				Competitors: speedups.Competitors,
				Samples:     samples,
			})
		}
	}

	if err := benchchart.Speedups(panels, speedups.Competitors, output); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved plot to %s\n", output)
}

// sortedTrialKeys orders keys for progress output, field by field in
// the same natural order the vocabularies use.
func sortedTrialKeys(samples map[benchdir.TrialKey][]float64) []benchdir.TrialKey {
	keys := make([]benchdir.TrialKey, 0, len(samples))
	for key := range samples {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Routine != b.Routine {
			return benchdir.Natural(a.Routine, b.Routine) < 0
		}
		if a.InputSize != b.InputSize {
			return benchdir.Natural(a.InputSize, b.InputSize) < 0
		}
		if a.Competitor != b.Competitor {
			return benchdir.Natural(a.Competitor, b.Competitor) < 0
		}
		return benchdir.Natural(a.Device, b.Device) < 0
	})
	return keys
}
