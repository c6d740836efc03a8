package gostr_test

import (
	"fmt"

	"github.com/mailund/gostr"
)

// ExampleKMP demonstrates exact matching with Knuth-Morris-Pratt.
func ExampleKMP() {
	for pos := range gostr.KMP([]byte("mississippi"), []byte("ssi")) {
		fmt.Println(pos)
	}
	// Output:
	// 2
	// 5
}

// ExampleAhoCorasick demonstrates scanning for several patterns in one
// pass over the text.
func ExampleAhoCorasick() {
	for idx, pos := range gostr.AhoCorasick([]byte("ahishers"),
		[]byte("he"), []byte("she"), []byte("his"), []byte("hers")) {
		fmt.Println(idx, pos)
	}
	// Output:
	// 2 1
	// 1 3
	// 0 4
	// 3 4
}

// ExampleMcCreightSuffixTree demonstrates building a suffix tree and
// searching it for occurrences of a pattern.
func ExampleMcCreightSuffixTree() {
	t, err := gostr.McCreightSuffixTree([]byte("mississippi"))
	if err != nil {
		panic(err)
	}
	fmt.Println(t.Contains([]byte("ssi")))
	// Output: true
}

// ExampleExactPreprocess demonstrates exact and approximate search over
// an FM-index.
func ExampleExactPreprocess() {
	idx, err := gostr.ExactPreprocess([]byte("mississippi"))
	if err != nil {
		panic(err)
	}

	matches, err := idx.ApproxSearch([]byte("ssx"), 1)
	if err != nil {
		panic(err)
	}
	count := 0
	for range matches {
		count++
	}
	fmt.Println(count >= 1)
	// Output: true
}
