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

// A TaskKey identifies one sample set in a task tree.
type TaskKey struct {
	InputSize string
	RunType   string
}

// A TaskTree holds the runtimes discovered in a task tree.
type TaskTree struct {
	// InputSizes is the IS<k> directory names in lexicographic
	// order. Note that this is a string sort, so IS10 comes before
	// IS2; callers must not assume numeric ordering for labels
	// with differing digit counts.
	InputSizes []string

	// RunTypes is the run type directory names found under the
	// first input size, in lexicographic order.
	RunTypes []string

	// Samples maps each key to its measurements in nanoseconds, in
	// file read order. Keys with no measurements are absent.
	Samples map[TaskKey][]float64
}

var (
	inputSizeRE = regexp.MustCompile(`^IS\d+$`)
	runRE       = regexp.MustCompile(`^run\d+$`)
)

// ReadTasksDir reads the task tree rooted at the directory dir.
// It returns an error if dir does not exist or is not a directory.
func ReadTasksDir(dir string) (*TaskTree, error) {
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("tasks folder does not exist or is not a directory: %s", dir)
	}
	return ReadTasks(os.DirFS(dir))
}

// ReadTasks reads the task tree rooted at fsys.
//
// Input sizes are the immediate subdirectories matching IS<digits>.
// Run types are the immediate subdirectories of the first input size,
// excluding "data" and hidden names. For every (input size, run type)
// pair, measurements are collected from the runtimes file of every
// run<N> subdirectory. Missing intermediate directories mean no data
// for that key, not an error.
func ReadTasks(fsys fs.FS) (*TaskTree, error) {
	ents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading tasks folder: %v", err)
	}

	t := &TaskTree{Samples: make(map[TaskKey][]float64)}
	for _, ent := range ents {
		if ent.IsDir() && inputSizeRE.MatchString(ent.Name()) {
			t.InputSizes = append(t.InputSizes, ent.Name())
		}
	}
	sort.Strings(t.InputSizes)

	if len(t.InputSizes) > 0 {
		ents, err := fs.ReadDir(fsys, t.InputSizes[0])
		if err != nil {
			return nil, fmt.Errorf("reading input size %s: %v", t.InputSizes[0], err)
		}
		for _, ent := range ents {
			name := ent.Name()
			if ent.IsDir() && name != "data" && !hidden(name) {
				t.RunTypes = append(t.RunTypes, name)
			}
		}
		sort.Strings(t.RunTypes)
	}

	for _, size := range t.InputSizes {
		for _, rt := range t.RunTypes {
			dir := path.Join(size, rt)
			ents, err := fs.ReadDir(fsys, dir)
			if err != nil {
				// No directory for this run type at this
				// input size means no data for the key.
				continue
			}
			var vals []float64
			for _, ent := range ents {
				if !ent.IsDir() || !runRE.MatchString(ent.Name()) {
					continue
				}
				vals = readRuntimes(fsys, path.Join(dir, ent.Name(), runtimesFile), vals)
			}
			if len(vals) > 0 {
				t.Samples[TaskKey{size, rt}] = vals
			}
		}
	}
	return t, nil
}
