// Package gostr is a string-indexing and pattern-matching library:
// alphabet remapping, classical exact matchers, Aho-Corasick
// multi-pattern search, suffix array construction (Skew/DC3 and
// SA-IS), LCP arrays, suffix trees (naive, McCreight, and LCP-driven
// construction), a BWT/FM-index with exact and approximate search, and
// CIGAR/edit-distance helpers.
//
// Each concern lives in its own subpackage (alphabet, exact, trie,
// skew, sais, lcp, suffixtree, bwt, cigar); this package is a thin
// facade over them for callers who want one import.
//
// Basic usage:
//
//	// Exact search with any of the classical matchers.
//	for pos := range gostr.KMP([]byte("mississippi"), []byte("ssi")) {
//	    fmt.Println(pos) // 2, 5
//	}
//
//	// Multi-pattern search in one scan.
//	for idx, pos := range gostr.AhoCorasick([]byte("ahishers"),
//	    []byte("he"), []byte("she"), []byte("his"), []byte("hers")) {
//	    fmt.Println(idx, pos)
//	}
//
//	// FM-index exact and approximate search.
//	idx, err := gostr.ExactPreprocess([]byte("mississippi"))
//	for pos := range idx.Search([]byte("ssi")) {
//	    fmt.Println(pos)
//	}
//	matches, err := idx.ApproxSearch([]byte("ssx"), 1)
//	for m := range matches {
//	    fmt.Println(m.Pos, m.CIGAR)
//	}
//
// Every constructed index (Alphabet, suffix array, LCP array,
// SuffixTree, Index, Trie) is immutable after construction and safe to
// share across goroutines for read-only queries; construction itself
// is not safe to call concurrently on the same index.
package gostr
