// Package bwt builds a Burrows-Wheeler transform / FM-index over a
// text and answers exact and approximate membership queries against it
// without ever materialising the suffix array's text.
package bwt

import (
	"errors"
	"iter"

	"github.com/mailund/gostr/alphabet"
	"github.com/mailund/gostr/cigar"
	"github.com/mailund/gostr/internal/conv"
	"github.com/mailund/gostr/sais"
)

// ErrEmptyPattern is returned by ApproxSearch, which (unlike Search) has
// no sensible meaning for an empty query: every edit-distance budget
// trivially "matches" everywhere by deleting the whole text.
var ErrEmptyPattern = errors.New("bwt: approximate search requires a non-empty pattern")

// Transform computes the Burrows-Wheeler transform of text: BWT[i] is
// the mapped-text symbol immediately before the suffix at SA[i] (the
// symbol before the sentinel-rooted suffix, i.e. the last symbol, when
// SA[i] == 0). Returns the BWT, the alphabet text was mapped through,
// and the suffix array (built via SA-IS).
func Transform(text []byte) (bwtOut []byte, alpha *alphabet.Alphabet, sa []int, err error) {
	alpha, err = alphabet.FromText(text)
	if err != nil {
		return nil, nil, nil, err
	}
	mapped, err := alpha.MapWithSentinel(text)
	if err != nil {
		return nil, nil, nil, err
	}
	sa = sais.Construct(mapped, alpha.Size())

	n := len(mapped)
	bwtOut = make([]byte, n)
	for i, j := range sa {
		bwtOut[i] = mapped[(j-1+n)%n]
	}
	return bwtOut, alpha, sa, nil
}

// Reverse reconstructs the original sentinelled, alphabet-mapped text
// from its BWT alone, by repeatedly stepping i ← C[BWT[i]] + O[BWT[i]][i]
// starting from the sentinel's row.
func Reverse(bwtIn []byte) []byte {
	n := len(bwtIn)
	if n == 0 {
		return nil
	}

	asize := int(maxByte(bwtIn)) + 1
	ctab := newCTable(bwtIn, asize)
	otab := newOTable(bwtIn, asize)

	x := make([]byte, n) // x[n-1] is never written below; it stays 0, the sentinel
	i := 0
	for j := n - 2; j >= 0; j-- {
		a := bwtIn[i]
		x[j] = a
		i = ctab.at(a) + otab.at(a, i)
	}
	return x
}

func maxByte(b []byte) byte {
	var m byte
	for _, v := range b {
		if v > m {
			m = v
		}
	}
	return m
}

// CTable holds, for each symbol code, the number of BWT symbols
// strictly smaller than it: the starting row of that symbol's block in
// the (conceptual) sorted rotation matrix.
type CTable struct {
	cumsum []int
}

func newCTable(bwtIn []byte, asize int) *CTable {
	counts := make([]int, asize)
	for _, b := range bwtIn {
		counts[b]++
	}
	sum := 0
	for a := 0; a < asize; a++ {
		c := counts[a]
		counts[a] = sum
		sum += c
	}
	return &CTable{cumsum: counts}
}

func (c *CTable) at(a byte) int { return c.cumsum[a] }

// OTable holds, for each symbol a and each prefix length i of the BWT,
// the number of occurrences of a in bwt[0:i]. Stored densely as one
// flat slice, row-major by symbol, since it dominates FM-index memory
// (O(σ·n)) regardless of layout.
type OTable struct {
	stride int
	tbl    []int
}

func newOTable(bwtIn []byte, asize int) *OTable {
	n := len(bwtIn)
	stride := n + 1
	o := &OTable{stride: stride, tbl: make([]int, asize*stride)}
	for i := 1; i <= n; i++ {
		b := bwtIn[i-1]
		for a := 0; a < asize; a++ {
			prev := o.tbl[conv.FlatIndex(a, stride, i-1)]
			if byte(a) == b {
				prev++
			}
			o.tbl[conv.FlatIndex(a, stride, i)] = prev
		}
	}
	return o
}

func (o *OTable) at(a byte, i int) int {
	return o.tbl[conv.FlatIndex(int(a), o.stride, i)]
}

// Match is one approximate-search result: the starting position of a
// matching (possibly edited) occurrence, and the CIGAR describing how
// it was edited to produce the pattern.
type Match struct {
	Pos   int
	CIGAR string
}

// Index is a preprocessed FM-index: the forward C/O tables for exact
// search, plus the O-table of the reversed text's BWT, used only to
// compute the approximate-search D-table lower bound.
type Index struct {
	alpha *alphabet.Alphabet
	sa    []int
	ctab  *CTable
	otab  *OTable
	rotab *OTable
}

// NewIndex preprocesses text for both exact and approximate search.
func NewIndex(text []byte) (*Index, error) {
	bwtOut, alpha, sa, err := Transform(text)
	if err != nil {
		return nil, err
	}
	asize := alpha.Size()

	reversedText := make([]byte, len(text))
	for i, b := range text {
		reversedText[len(text)-1-i] = b
	}
	rbwt, _, _, err := Transform(reversedText)
	if err != nil {
		return nil, err
	}

	return &Index{
		alpha: alpha,
		sa:    sa,
		ctab:  newCTable(bwtOut, asize),
		otab:  newOTable(bwtOut, asize),
		rotab: newOTable(rbwt, asize),
	}, nil
}

// Search yields every starting position of p in the indexed text, by
// narrowing the SA interval [L,R) one pattern symbol at a time from the
// right end, via L,R ← C[a]+O[a][L,R].
func (idx *Index) Search(p []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		mapped, err := idx.alpha.Map(p)
		if err != nil {
			return
		}

		l, r := 0, len(idx.sa)
		for i := len(mapped) - 1; i >= 0; i-- {
			a := mapped[i]
			l = idx.ctab.at(a) + idx.otab.at(a, l)
			r = idx.ctab.at(a) + idx.otab.at(a, r)
			if l >= r {
				return
			}
		}
		for i := l; i < r; i++ {
			if !yield(idx.sa[i]) {
				return
			}
		}
	}
}

// dTable computes, for each prefix length i+1 of mapped pattern p, a
// lower bound on the number of edits required to match p[0:i+1]: it
// runs the backward-search narrowing left-to-right (using the reverse
// text's O-table, which makes that direction meaningful) and counts how
// many times the interval collapsed to empty and had to restart.
func (idx *Index) dTable(mapped []byte) []int {
	d := make([]int, len(mapped))
	minEdits := 0
	l, r := 0, len(idx.sa)
	for i, a := range mapped {
		l = idx.ctab.at(a) + idx.rotab.at(a, l)
		r = idx.ctab.at(a) + idx.rotab.at(a, r)
		if l == r {
			minEdits++
			l, r = 0, len(idx.sa)
		}
		d[i] = minEdits
	}
	return d
}

// ApproxSearch yields every occurrence of p in the indexed text within
// edit distance k (substitutions, insertions, and deletions), each with
// the CIGAR of the specific alignment found. The search recurses from
// the pattern's right end with the D-table as a branch-and-bound
// pruning heuristic; deletions are excluded at the initial call so the
// search never reports a spurious trailing deletion.
func (idx *Index) ApproxSearch(p []byte, k int) (iter.Seq[Match], error) {
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}
	mapped, err := idx.alpha.Map(p)
	if err != nil {
		return func(func(Match) bool) {}, nil
	}
	d := idx.dTable(mapped)

	return func(yield func(Match) bool) {
		edits := make([]cigar.Edit, 0, len(mapped)+k)
		stop := false

		emit := func(l, r int) {
			c := cigar.EditsToCIGAR(reverseEdits(edits))
			for j := l; j < r && !stop; j++ {
				if !yield(Match{Pos: idx.sa[j], CIGAR: c}) {
					stop = true
				}
			}
		}

		var rec, recMatch, recInsert, recDelete func(i, l, r, budget int)

		rec = func(i, l, r, budget int) {
			if stop || budget < 0 {
				return
			}
			if i < 0 {
				emit(l, r)
				return
			}
			if budget < d[i] {
				return
			}
			recMatch(i, l, r, budget)
			recInsert(i, l, r, budget)
			recDelete(i, l, r, budget)
		}

		recMatch = func(i, l, r, budget int) {
			for a := 1; a < idx.alpha.Size(); a++ {
				nl := idx.ctab.at(byte(a)) + idx.otab.at(byte(a), l)
				nr := idx.ctab.at(byte(a)) + idx.otab.at(byte(a), r)
				if nl >= nr {
					continue
				}
				cost := 0
				if byte(a) != mapped[i] {
					cost = 1
				}
				edits = append(edits, cigar.Match)
				rec(i-1, nl, nr, budget-cost)
				edits = edits[:len(edits)-1]
			}
		}

		recInsert = func(i, l, r, budget int) {
			edits = append(edits, cigar.Insert)
			rec(i-1, l, r, budget-1)
			edits = edits[:len(edits)-1]
		}

		recDelete = func(i, l, r, budget int) {
			for a := 1; a < idx.alpha.Size(); a++ {
				nl := idx.ctab.at(byte(a)) + idx.otab.at(byte(a), l)
				nr := idx.ctab.at(byte(a)) + idx.otab.at(byte(a), r)
				if nl >= nr {
					continue
				}
				edits = append(edits, cigar.Delete)
				rec(i, nl, nr, budget-1)
				edits = edits[:len(edits)-1]
			}
		}

		i := len(mapped) - 1
		recMatch(i, 0, len(idx.sa), k)
		if !stop {
			recInsert(i, 0, len(idx.sa), k)
		}
	}, nil
}

// reverseEdits reverses edits, since the recursion pushes operations in
// search order starting from the pattern's right end.
func reverseEdits(edits []cigar.Edit) []cigar.Edit {
	out := make([]cigar.Edit, len(edits))
	for i, e := range edits {
		out[len(edits)-1-i] = e
	}
	return out
}
