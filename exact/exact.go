// Package exact implements the classical single-pattern exact-matching
// algorithms: naive scanning, the border-array matcher, KMP, and
// Boyer-Moore-Horspool.
//
// Every matcher returns an iterator (a Go 1.23 range-over-func
// iter.Seq[int]) of match start positions in ascending order. An empty
// pattern matches at every position, including len(x), matching the
// convention spec'd for this package.
package exact

import (
	"iter"

	"github.com/mailund/gostr/border"
	"github.com/mailund/gostr/simd"
)

// Naive scans x for every occurrence of p using the textbook double
// loop: for each candidate start, compare p byte by byte.
func Naive(x, p []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(p) == 0 {
			for i := 0; i <= len(x); i++ {
				if !yield(i) {
					return
				}
			}
			return
		}
		for i := 0; i+len(p) <= len(x); i++ {
			j := 0
			for j < len(p) && x[i+j] == p[j] {
				j++
			}
			if j == len(p) {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// Border scans x for p the same way KMP does, but falls back on the
// plain (non-strict) border array of p for its mismatch jump instead of
// the strict one. It is the unoptimized predecessor to KMP: still
// O(len(x)+len(p)), but the plain border array can re-examine a
// character it already knows will mismatch again, where the strict
// array short-circuits that case.
func Border(x, p []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		m := len(p)
		if m == 0 {
			for i := 0; i <= len(x); i++ {
				if !yield(i) {
					return
				}
			}
			return
		}

		ba := border.Array(p)
		j := 0
		for i := 0; i < len(x); i++ {
			for j > 0 && x[i] != p[j] {
				j = ba[j-1]
			}
			if x[i] == p[j] {
				j++
			}
			if j == m {
				if !yield(i - m + 1) {
					return
				}
				j = ba[j-1]
			}
		}
	}
}

// KMP scans x for p in O(len(x)+len(p)) using the strict border array
// of p to avoid re-examining already-matched characters after a
// mismatch.
func KMP(x, p []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(p) == 0 {
			for i := 0; i <= len(x); i++ {
				if !yield(i) {
					return
				}
			}
			return
		}

		ba := border.StrictArray(p)
		j := 0
		for i := 0; i < len(x); i++ {
			for j > 0 && x[i] != p[j] {
				j = ba[j-1]
			}
			if x[i] == p[j] {
				j++
			}
			if j == len(p) {
				if !yield(i - len(p) + 1) {
					return
				}
				j = ba[j-1]
			}
		}
	}
}

// BMH scans x for p right to left within each alignment using the
// Boyer-Moore-Horspool shift table: on a mismatch, p is shifted by a
// precomputed amount keyed on the haystack byte aligned with p's last
// character, skipping alignments the shift table proves cannot match.
//
// The search for the next candidate alignment is accelerated with
// simd.Memchr over the byte p ends with, narrowing which alignments are
// even worth shift-table probing; this does not change BMH's shift
// semantics, only how fast the next candidate is found.
func BMH(x, p []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		n, m := len(x), len(p)
		if m == 0 {
			for i := 0; i <= n; i++ {
				if !yield(i) {
					return
				}
			}
			return
		}
		if m > n {
			return
		}

		jump := shiftTable(p)
		lastByte := p[m-1]

		i := 0
		for i+m <= n {
			// Find the next position >= i+m-1 where x holds lastByte;
			// any alignment whose last-character probe would fail can be
			// skipped outright.
			probe := i + m - 1
			found := simd.Memchr(x[probe:], lastByte)
			if found == -1 {
				return
			}
			i = probe + found - (m - 1)
			if i+m > n {
				return
			}

			j := m - 1
			for j >= 0 && x[i+j] == p[j] {
				j--
			}
			if j < 0 {
				if !yield(i) {
					return
				}
				i++
				continue
			}
			i += jump[x[i+m-1]]
		}
	}
}

// shiftTable builds the Horspool jump table: for every byte, the
// distance to shift p so that the byte last aligned with p's final
// position lines up with its rightmost occurrence in p (excluding the
// final position itself), defaulting to len(p) for bytes absent from p.
func shiftTable(p []byte) [256]int {
	var jump [256]int
	m := len(p)
	for b := range jump {
		jump[b] = m
	}
	for i := 0; i < m-1; i++ {
		jump[p[i]] = m - 1 - i
	}
	return jump
}
