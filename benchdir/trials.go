// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdir

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
)

// A TrialKey identifies one sample set in a trial tree.
type TrialKey struct {
	Routine    string
	InputSize  string
	Competitor string
	Device     string
}

// A TrialSet holds the runtimes discovered in a trial tree.
//
// The vocabulary slices are the distinct values seen in the key set,
// in natural order (see Natural). Routine, competitor, and device
// names often embed numbers, so m2 must sort before m10.
type TrialSet struct {
	Routines    []string
	InputSizes  []string
	Competitors []string
	Devices     []string

	// Samples maps each key to its measurements in nanoseconds, in
	// file read order. Keys with no measurements are absent.
	Samples map[TrialKey][]float64
}

// deviceRunRE matches run directories of a competitor. The non-greedy
// prefix before the literal "-run" is the device name, so a device
// name may itself contain dashes (e.g. "gpu-a100-run3").
var deviceRunRE = regexp.MustCompile(`^(.+?)-run\d+$`)

// ReadTrialsDir reads the trial tree rooted at the directory dir.
// It returns an error if dir does not exist or is not a directory.
func ReadTrialsDir(dir string) (*TrialSet, error) {
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("experiment directory does not exist or is not a directory: %s", dir)
	}
	return ReadTrials(os.DirFS(dir))
}

// ReadTrials reads the trial tree rooted at fsys.
//
// The tree is walked three levels deep: routine, input size,
// competitor. Competitor directories named "data" hold problem inputs
// rather than results and are skipped, as are hidden directories at
// every level. Within a competitor, each <device>-run<N> directory
// contributes the measurements of its runtimes file.
//
// ReadTrials returns an error if the tree yields no measurements at
// all, or if the only competitor seen is the baseline (there is
// nothing to compare).
func ReadTrials(fsys fs.FS) (*TrialSet, error) {
	t := &TrialSet{Samples: make(map[TrialKey][]float64)}

	for _, routine := range subdirs(fsys, ".") {
		for _, size := range subdirs(fsys, routine) {
			for _, comp := range subdirs(fsys, path.Join(routine, size)) {
				if comp == "data" {
					continue
				}
				compDir := path.Join(routine, size, comp)
				for _, run := range subdirs(fsys, compDir) {
					m := deviceRunRE.FindStringSubmatch(run)
					if m == nil {
						continue
					}
					vals := readRuntimes(fsys, path.Join(compDir, run, runtimesFile), nil)
					if len(vals) == 0 {
						continue
					}
					key := TrialKey{routine, size, comp, m[1]}
					t.Samples[key] = append(t.Samples[key], vals...)
				}
			}
		}
	}

	if len(t.Samples) == 0 {
		return nil, fmt.Errorf("no runtime data found")
	}

	routines := make(map[string]bool)
	sizes := make(map[string]bool)
	comps := make(map[string]bool)
	devs := make(map[string]bool)
	for key := range t.Samples {
		routines[key.Routine] = true
		sizes[key.InputSize] = true
		comps[key.Competitor] = true
		devs[key.Device] = true
	}
	t.Routines = naturalSorted(routines)
	t.InputSizes = naturalSorted(sizes)
	t.Competitors = naturalSorted(comps)
	t.Devices = naturalSorted(devs)

	other := false
	for _, c := range t.Competitors {
		if c != Baseline {
			other = true
			break
		}
	}
	if !other {
		return nil, fmt.Errorf("no competitor other than %q found, nothing to compare", Baseline)
	}
	return t, nil
}

// subdirs returns the visible subdirectory names of dir. A missing or
// unreadable directory yields nothing.
func subdirs(fsys fs.FS, dir string) []string {
	ents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, ent := range ents {
		if ent.IsDir() && !hidden(ent.Name()) {
			names = append(names, ent.Name())
		}
	}
	return names
}

func naturalSorted(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Natural(names[i], names[j]) < 0
	})
	return names
}
