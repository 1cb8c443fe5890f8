// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotruntimes discovers benchmark runtimes in a routine tasks folder
// and plots them as grouped boxplots.
//
// Usage:
//
//	plotruntimes tasksfolder
//
// The tasks folder holds one directory per input size (IS1, IS2, ...),
// each holding one directory per run type (baseline, optimized, ...),
// each holding run directories (run1, run2, ...) with a runtimes file
// of one nanosecond value per line:
//
//	tasksfolder/IS1/baseline/run1/runtimes
//
// Input sizes are split into groups by the order of magnitude of their
// median runtime and each group is written as its own figure, to
// runtimes1.pdf, runtimes2.pdf, and so on in the current directory.
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

func usage() {
	fmt.Fprintf(os.Stderr, "usage: plotruntimes tasksfolder\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("plotruntimes: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	tasks, err := benchdir.ReadTasksDir(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if len(tasks.InputSizes) == 0 {
		log.Fatalf("no input size (IS<n>) directories found in %s", flag.Arg(0))
	}
	if len(tasks.RunTypes) == 0 {
		log.Fatalf("no run type directories found in %s", flag.Arg(0))
	}

	fmt.Printf("Discovered input sizes: %v\n", tasks.InputSizes)
	fmt.Printf("Discovered run types: %v\n", tasks.RunTypes)
	keys := make([]benchdir.TaskKey, 0, len(tasks.Samples))
	for key := range tasks.Samples {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].InputSize != keys[j].InputSize {
			return keys[i].InputSize < keys[j].InputSize
		}
		return keys[i].RunType < keys[j].RunType
	})
	for _, key := range keys {
		fmt.Printf("  %s/%s: %d runtimes\n", key.InputSize, key.RunType, len(tasks.Samples[key]))
	}

	groups := benchagg.MagnitudeGroups(tasks)
	if len(groups) == 0 {
		log.Fatal("no runtime data found")
	}
	for i, g := range groups {
		samples := make(map[benchchart.Key][]float64)
		for _, size := range g.InputSizes {
			for _, rt := range tasks.RunTypes {
				vals := tasks.Samples[benchdir.TaskKey{InputSize: size, RunType: rt}]
				if len(vals) > 0 {
					samples[benchchart.Key{Group: size, Category: rt}] = vals
				}
			}
		}
		cfg := benchchart.RuntimesConfig{
			Title:      "Runtimes by input size and run type",
			InputSizes: g.InputSizes,
			RunTypes:   tasks.RunTypes,
			Samples:    samples,
		}
		out := fmt.Sprintf("runtimes%d.pdf", i+1)
		if err := benchchart.Runtimes(cfg, out); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Saved plot to %s\n", out)
	}
}
