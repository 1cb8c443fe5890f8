// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"benchplot/benchdir"
)

func trialSet(samples map[benchdir.TrialKey][]float64) *benchdir.TrialSet {
	t := &benchdir.TrialSet{Samples: samples}
	seen := func(get func(benchdir.TrialKey) string) map[string]bool {
		set := make(map[string]bool)
		for key := range samples {
			set[get(key)] = true
		}
		return set
	}
	for r := range seen(func(k benchdir.TrialKey) string { return k.Routine }) {
		t.Routines = append(t.Routines, r)
	}
	for s := range seen(func(k benchdir.TrialKey) string { return k.InputSize }) {
		t.InputSizes = append(t.InputSizes, s)
	}
	for c := range seen(func(k benchdir.TrialKey) string { return k.Competitor }) {
		t.Competitors = append(t.Competitors, c)
	}
	for d := range seen(func(k benchdir.TrialKey) string { return k.Device }) {
		t.Devices = append(t.Devices, d)
	}
	return t
}

func TestSpeedups(t *testing.T) {
	got := Speedups(trialSet(map[benchdir.TrialKey][]float64{
		{Routine: "matmul", InputSize: "64", Competitor: "baseline", Device: "cpu"}: {100},
		{Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "cpu"}:     {50},
	}))
	want := map[benchdir.TrialKey][]float64{
		{Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "cpu"}: {2.0},
	}
	if diff := cmp.Diff(want, got.Samples); diff != "" {
		t.Errorf("Speedups mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"fast"}, got.Competitors); diff != "" {
		t.Errorf("Competitors mismatch (-want +got):\n%s", diff)
	}
}

func TestSpeedupsPerSampleRatios(t *testing.T) {
	// Each competitor measurement divides the single scalar
	// baseline median, so ratio count equals sample count and the
	// spread is the competitor's alone.
	got := Speedups(trialSet(map[benchdir.TrialKey][]float64{
		{Routine: "matmul", InputSize: "64", Competitor: "baseline", Device: "cpu"}: {90, 100, 110},
		{Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "cpu"}:     {50, 25, 200},
	}))
	want := []float64{2.0, 4.0, 0.5}
	if diff := cmp.Diff(want, got.Samples[benchdir.TrialKey{
		Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "cpu",
	}]); diff != "" {
		t.Errorf("ratios mismatch (-want +got):\n%s", diff)
	}
}

func TestSpeedupsMissingBaseline(t *testing.T) {
	// No baseline at (matmul, 128, cpu): that combination is
	// omitted, not zero-filled, and the rest is unaffected.
	got := Speedups(trialSet(map[benchdir.TrialKey][]float64{
		{Routine: "matmul", InputSize: "64", Competitor: "baseline", Device: "cpu"}: {100},
		{Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "cpu"}:     {50},
		{Routine: "matmul", InputSize: "128", Competitor: "fast", Device: "cpu"}:    {50},
	}))
	if _, ok := got.Samples[benchdir.TrialKey{
		Routine: "matmul", InputSize: "128", Competitor: "fast", Device: "cpu",
	}]; ok {
		t.Errorf("combination without baseline must produce no speedups")
	}
	if len(got.Samples) != 1 {
		t.Errorf("got %d speedup keys, want 1: %v", len(got.Samples), got.Samples)
	}
}

func TestSpeedupsDeviceIsolation(t *testing.T) {
	// Baselines never cross devices: the gpu competitor divides
	// the gpu baseline, not the cpu one.
	got := Speedups(trialSet(map[benchdir.TrialKey][]float64{
		{Routine: "matmul", InputSize: "64", Competitor: "baseline", Device: "cpu"}: {100},
		{Routine: "matmul", InputSize: "64", Competitor: "baseline", Device: "gpu"}: {10},
		{Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "cpu"}:     {50},
		{Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "gpu"}:     {5},
	}))
	cpu := got.Samples[benchdir.TrialKey{Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "cpu"}]
	gpu := got.Samples[benchdir.TrialKey{Routine: "matmul", InputSize: "64", Competitor: "fast", Device: "gpu"}]
	if diff := cmp.Diff([]float64{2.0}, cpu); diff != "" {
		t.Errorf("cpu ratios mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2.0}, gpu); diff != "" {
		t.Errorf("gpu ratios mismatch (-want +got):\n%s", diff)
	}
}
