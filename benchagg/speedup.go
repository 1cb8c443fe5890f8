// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import "benchplot/benchdir"

// A SpeedupSet holds per-sample speedup ratios against the baseline
// competitor. The vocabulary slices keep the natural order of the
// source TrialSet, restricted to the values that survived the ratio
// computation; in particular Competitors never contains the baseline.
type SpeedupSet struct {
	Routines    []string
	InputSizes  []string
	Competitors []string
	Devices     []string

	// Samples maps each non-baseline key to its speedup ratios,
	// one per raw measurement of that competitor.
	Samples map[benchdir.TrialKey][]float64
}

// Speedups computes baseline-relative speedups for every combination
// in t. For a fixed (routine, input size, device), each measurement x
// of a non-baseline competitor yields the ratio median(baseline)/x, so
// values above 1 mean faster than the baseline. The spread of a
// competitor's ratios reflects only that competitor's variance; the
// baseline enters as a single scalar.
//
// Combinations whose baseline sample list is absent or empty produce
// no ratios at all. They are omitted, not zero-filled.
func Speedups(t *benchdir.TrialSet) *SpeedupSet {
	s := &SpeedupSet{Samples: make(map[benchdir.TrialKey][]float64)}

	for _, routine := range t.Routines {
		for _, size := range t.InputSizes {
			for _, dev := range t.Devices {
				base := t.Samples[benchdir.TrialKey{
					Routine:    routine,
					InputSize:  size,
					Competitor: benchdir.Baseline,
					Device:     dev,
				}]
				if len(base) == 0 {
					continue
				}
				med := Median(base)
				for _, comp := range t.Competitors {
					if comp == benchdir.Baseline {
						continue
					}
					key := benchdir.TrialKey{
						Routine:    routine,
						InputSize:  size,
						Competitor: comp,
						Device:     dev,
					}
					vals := t.Samples[key]
					if len(vals) == 0 {
						continue
					}
					ratios := make([]float64, len(vals))
					for i, x := range vals {
						ratios[i] = med / x
					}
					s.Samples[key] = ratios
				}
			}
		}
	}

	seen := func(vocab []string, has func(benchdir.TrialKey) string) []string {
		set := make(map[string]bool)
		for key := range s.Samples {
			set[has(key)] = true
		}
		var kept []string
		for _, v := range vocab {
			if set[v] {
				kept = append(kept, v)
			}
		}
		return kept
	}
	s.Routines = seen(t.Routines, func(k benchdir.TrialKey) string { return k.Routine })
	s.InputSizes = seen(t.InputSizes, func(k benchdir.TrialKey) string { return k.InputSize })
	s.Competitors = seen(t.Competitors, func(k benchdir.TrialKey) string { return k.Competitor })
	s.Devices = seen(t.Devices, func(k benchdir.TrialKey) string { return k.Device })
	return s
}
