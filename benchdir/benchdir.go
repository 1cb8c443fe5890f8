// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchdir discovers benchmark runtime measurements stored in
// convention-based directory trees.
//
// Two layouts are supported. A task tree holds absolute runtimes for
// one routine:
//
//	<tasks>/IS<k>/<run type>/run<N>/runtimes
//
// and a trial tree holds runtimes for several routines, competitors,
// and devices:
//
//	<experiment>/<routine>/<input size>/<competitor>/<device>-run<N>/runtimes
//
// In both layouts the runtimes leaf is a text file with one
// floating-point duration in nanoseconds per line. Blank lines and
// lines that do not parse as a number are skipped; benchmark harnesses
// occasionally interleave diagnostics with measurements and those must
// not abort a report.
//
// Discovery reads from an fs.FS, so a real directory (os.DirFS), a
// test fixture (fstest.MapFS), or any other tree-shaped backend can
// supply the data. Only path-pattern matching lives here; callers get
// back typed sample sets and never see the layout.
package benchdir

import (
	"bufio"
	"io/fs"
	"strconv"
	"strings"
)

// runtimesFile is the leaf file name both layouts share.
const runtimesFile = "runtimes"

// Baseline is the designated reference competitor in a trial tree.
// Speedups are computed against its median runtime and it is never
// plotted as a box of its own.
const Baseline = "baseline"

// readRuntimes appends the measurements in the leaf file at path to
// vals. A missing file means no data, not an error. Lines that do not
// parse as a number are dropped.
func readRuntimes(fsys fs.FS, path string, vals []float64) []float64 {
	f, err := fsys.Open(path)
	if err != nil {
		return vals
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

// hidden reports whether a directory name is hidden by convention.
func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
