package gostr

import (
	"iter"

	"github.com/mailund/gostr/alphabet"
	"github.com/mailund/gostr/bitvector"
	"github.com/mailund/gostr/bwt"
	"github.com/mailund/gostr/cigar"
	"github.com/mailund/gostr/exact"
	"github.com/mailund/gostr/lcp"
	"github.com/mailund/gostr/sais"
	"github.com/mailund/gostr/skew"
	"github.com/mailund/gostr/suffixtree"
	"github.com/mailund/gostr/trie"
)

// Re-exported types, so that a caller who only needs the common path
// can depend on this package alone.
type (
	Alphabet   = alphabet.Alphabet
	BitVector  = bitvector.BitVector
	SuffixTree = suffixtree.SuffixTree
	Trie       = trie.Trie
	Index      = bwt.Index
	Match      = bwt.Match
	Edit       = cigar.Edit
)

// Edit operation constants, re-exported from package cigar.
const (
	EditMatch  = cigar.Match
	EditInsert = cigar.Insert
	EditDelete = cigar.Delete
)

// NewAlphabet builds the dense alphabet of the distinct bytes in text.
//
// Example:
//
//	a, err := gostr.NewAlphabet([]byte("mississippi"))
func NewAlphabet(text []byte) (*Alphabet, error) {
	return alphabet.FromText(text)
}

// NewBitVector allocates a packed bit array of n bits, all clear.
func NewBitVector(n int) *BitVector {
	return bitvector.New(n)
}

// Naive finds every occurrence of p in x by trying every alignment.
//
// Example:
//
//	for pos := range gostr.Naive([]byte("mississippi"), []byte("ssi")) {
//	    fmt.Println(pos) // 2, 5
//	}
func Naive(x, p []byte) iter.Seq[int] { return exact.Naive(x, p) }

// Border finds every occurrence of p in x using p's border array to
// skip alignments, the textbook precursor to KMP.
func Border(x, p []byte) iter.Seq[int] { return exact.Border(x, p) }

// KMP finds every occurrence of p in x with the Knuth-Morris-Pratt
// automaton, in O(len(x)+len(p)) with no backtracking over x.
func KMP(x, p []byte) iter.Seq[int] { return exact.KMP(x, p) }

// BMH finds every occurrence of p in x with Boyer-Moore-Horspool's
// bad-character shift table, sublinear on average for long patterns.
func BMH(x, p []byte) iter.Seq[int] { return exact.BMH(x, p) }

// BuildTrie constructs a trie of patterns with Aho-Corasick failure
// and output links already linked, ready for multi-pattern search.
func BuildTrie(patterns ...[]byte) *Trie {
	return trie.Build(patterns)
}

// AhoCorasick scans text once and yields every (patternIndex, pos) at
// which one of patterns occurs, including patterns that occur as
// another pattern's suffix.
//
// Example:
//
//	for idx, pos := range gostr.AhoCorasick([]byte("ahishers"),
//	    []byte("he"), []byte("she"), []byte("his"), []byte("hers")) {
//	    fmt.Println(idx, pos)
//	}
func AhoCorasick(text []byte, patterns ...[]byte) iter.Seq2[int, int] {
	return trie.Build(patterns).Search(text)
}

func mapSentinelled(text []byte) (*Alphabet, []byte, error) {
	a, err := alphabet.FromText(text)
	if err != nil {
		return nil, nil, err
	}
	mapped, err := a.MapWithSentinel(text)
	if err != nil {
		return nil, nil, err
	}
	return a, mapped, nil
}

// SAIS builds the suffix array of text in O(n) via induced sorting
// (SA-IS), returning it alongside the alphabet text was mapped through.
func SAIS(text []byte) ([]int, *Alphabet, error) {
	a, mapped, err := mapSentinelled(text)
	if err != nil {
		return nil, nil, err
	}
	return sais.Construct(mapped, a.Size()), a, nil
}

// Skew builds the suffix array of text via the Skew/DC3 algorithm,
// returning it alongside the alphabet text was mapped through.
func Skew(text []byte) ([]int, *Alphabet, error) {
	a, mapped, err := mapSentinelled(text)
	if err != nil {
		return nil, nil, err
	}
	return skew.Construct(mapped, a.Size()), a, nil
}

// LCPFromSA computes the LCP array of an alphabet-mapped text given its
// suffix array (see SAIS/Skew), in O(n) via Kasai's algorithm.
func LCPFromSA(mapped []byte, sa []int) []int {
	return lcp.FromSA(mapped, sa)
}

// LCPFromSuffixTree computes the suffix array and LCP array implied by
// a suffix tree's shape.
func LCPFromSuffixTree(t *SuffixTree) (sa []int, lcpArr []int) {
	return lcp.FromSuffixTree(t.Root())
}

// NaiveSuffixTree builds a suffix tree of text by slow-scanning every
// suffix from the root, O(n^2) worst case.
func NaiveSuffixTree(text []byte) (*SuffixTree, error) {
	return suffixtree.NaiveConstruct(text)
}

// McCreightSuffixTree builds a suffix tree of text in O(n) using
// McCreight's suffix-link construction.
//
// Example:
//
//	t, err := gostr.McCreightSuffixTree([]byte("mississippi"))
//	for pos := range t.Search([]byte("ssi")) {
//	    fmt.Println(pos) // 5, 2
//	}
func McCreightSuffixTree(text []byte) (*SuffixTree, error) {
	return suffixtree.McCreightConstruct(text)
}

// LCPSuffixTree builds a suffix tree of text directly from its suffix
// array and LCP array (see SAIS/Skew and LCPFromSA), skipping
// McCreight's suffix-link bookkeeping entirely.
func LCPSuffixTree(text []byte, sa, lcpArr []int) (*SuffixTree, error) {
	return suffixtree.LCPConstruct(text, sa, lcpArr)
}

// ExactPreprocess builds an FM-index over text, ready for both exact
// and approximate search via the returned Index's methods.
//
// Example:
//
//	idx, err := gostr.ExactPreprocess([]byte("mississippi"))
//	for pos := range idx.Search([]byte("ssi")) {
//	    fmt.Println(pos) // 5, 2
//	}
//	matches, err := idx.ApproxSearch([]byte("ssx"), 1)
//	for m := range matches {
//	    fmt.Println(m.Pos, m.CIGAR)
//	}
func ExactPreprocess(text []byte) (*Index, error) {
	return bwt.NewIndex(text)
}

// EditsToCIGAR run-length encodes a sequence of edit operations, e.g.
// [Match,Match,Insert] -> "2M1I".
func EditsToCIGAR(edits []Edit) string { return cigar.EditsToCIGAR(edits) }

// CIGARToEdits decodes a CIGAR string back into its edit operations,
// rejecting anything that isn't a sequence of <count><M|I|D> tokens.
func CIGARToEdits(c string) ([]Edit, error) { return cigar.CIGARToEdits(c) }

// ExtractAlignment replays a CIGAR against text (from pos) and pattern,
// producing two equal-length strings with '-' padding on insertions and
// deletions, suitable for printing one above the other.
func ExtractAlignment(text, pattern []byte, pos int, c string) (alignedText, alignedPattern string, err error) {
	return cigar.ExtractAlignment(text, pattern, pos, c)
}

// CountEdits counts the differing columns between two aligned strings
// produced by ExtractAlignment.
func CountEdits(alignedText, alignedPattern string) int {
	return cigar.CountEdits(alignedText, alignedPattern)
}
