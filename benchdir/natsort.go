// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdir

import "strings"

// Natural compares a and b in natural order and returns -1, 0, or +1.
// Maximal runs of digits are compared as integers and all other text
// is compared case-insensitively, so "m2" sorts before "m10" and
// "CPU" next to "cpu". Strings that differ only in case or in leading
// zeros fall back to a plain string comparison so that the order is
// total and deterministic.
func Natural(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			// Compare the two digit runs as integers: the
			// run with more significant digits is larger,
			// equal-length runs compare as strings.
			va, vb := digits(a[i:]), digits(b[j:])
			i += len(va)
			j += len(vb)
			va = strings.TrimLeft(va, "0")
			vb = strings.TrimLeft(vb, "0")
			if len(va) != len(vb) {
				return sign(len(va) - len(vb))
			}
			if c := strings.Compare(va, vb); c != 0 {
				return c
			}
			continue
		}
		ca, cb := lower(a[i]), lower(b[j])
		if ca != cb {
			return sign(int(ca) - int(cb))
		}
		i++
		j++
	}
	if c := sign((len(a) - i) - (len(b) - j)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// digits returns the leading run of ASCII digits in s.
func digits(s string) string {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
