// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"

	"benchplot/benchdir"
)

func TestOutputFlagNames(t *testing.T) {
	// The output file can be named with either -o or -output.
	for _, name := range []string{"o", "output"} {
		f := flag.Lookup(name)
		if f == nil {
			t.Fatalf("flag -%s is not registered", name)
		}
		if f.DefValue != "runtimes.pdf" {
			t.Errorf("flag -%s default = %q, want %q", name, f.DefValue, "runtimes.pdf")
		}
	}

	defer flag.Set("o", "runtimes.pdf")
	if err := flag.Set("output", "figs.pdf"); err != nil {
		t.Fatal(err)
	}
	if output != "figs.pdf" {
		t.Errorf("after -output=figs.pdf, output = %q", output)
	}
	if err := flag.Set("o", "other.pdf"); err != nil {
		t.Fatal(err)
	}
	if output != "other.pdf" {
		t.Errorf("after -o=other.pdf, output = %q", output)
	}
}

func TestSortedTrialKeys(t *testing.T) {
	samples := map[benchdir.TrialKey][]float64{
		{Routine: "conv10", InputSize: "64", Competitor: "fast", Device: "cpu"}:    {1},
		{Routine: "conv2", InputSize: "128", Competitor: "fast", Device: "cpu"}:    {1},
		{Routine: "conv2", InputSize: "16", Competitor: "fast", Device: "gpu"}:     {1},
		{Routine: "conv2", InputSize: "16", Competitor: "baseline", Device: "cpu"}: {1},
	}
	want := []benchdir.TrialKey{
		{Routine: "conv2", InputSize: "16", Competitor: "baseline", Device: "cpu"},
		{Routine: "conv2", InputSize: "16", Competitor: "fast", Device: "gpu"},
		{Routine: "conv2", InputSize: "128", Competitor: "fast", Device: "cpu"},
		{Routine: "conv10", InputSize: "64", Competitor: "fast", Device: "cpu"},
	}
	if diff := cmp.Diff(want, sortedTrialKeys(samples)); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}
