// Package lcp computes longest-common-prefix arrays, either directly
// from a suffix array (Kasai's algorithm) or from a suffix tree's
// structure.
package lcp

// FromSA computes the LCP array of x given its suffix array sa, using
// Kasai's algorithm: lcp[i] is the length of the longest common prefix
// of the suffixes at sa[i-1] and sa[i] (lcp[0] is always 0, there being
// no predecessor).
//
// Runs in O(n): the offset only ever decreases by at most one per step
// of the outer loop before being extended, so the total extension work
// across all positions is bounded by n.
func FromSA(x []byte, sa []int) []int {
	n := len(sa)
	lcpArr := make([]int, n)
	if n == 0 {
		return lcpArr
	}

	rank := make([]int, n) // rank[i] = position of suffix i within sa
	for i, s := range sa {
		rank[s] = i
	}

	offset := 0
	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			offset = 0
			continue
		}
		j := sa[r-1]
		if offset > 0 {
			offset--
		}
		for i+offset < n && j+offset < n && x[i+offset] == x[j+offset] {
			offset++
		}
		lcpArr[r] = offset
	}
	return lcpArr
}

// Node is the minimal shape lcp.FromSuffixTree needs from a constructed
// suffix tree, satisfied by package suffixtree's *Inner and *Leaf.
type Node interface {
	EdgeLen() int
	SortedChildren() []Node
	IsLeaf() bool
	LeafLabel() int
}

// FromSuffixTree computes the suffix array and LCP array implied by a
// suffix tree's shape, via a DFS over children in sorted order that
// tracks the accumulated string depth. The LCP between two
// SA-adjacent leaves is exactly the string depth of their lowest
// common ancestor, which in a left-to-right DFS is always the most
// recent branch point entered (moving from one child subtree to the
// next sibling): every leaf reached purely by following first
// children inherits that pending value unchanged, since no branch
// point lies between it and the previous leaf.
func FromSuffixTree(root Node) (sa []int, lcpArr []int) {
	pending := -1 // no previous leaf yet
	walk(root, 0, &pending, &sa, &lcpArr)
	return sa, lcpArr
}

func walk(n Node, depth int, pending *int, sa *[]int, lcpArr *[]int) {
	if n.IsLeaf() {
		*sa = append(*sa, n.LeafLabel())
		if *pending < 0 {
			*lcpArr = append(*lcpArr, 0)
		} else {
			*lcpArr = append(*lcpArr, *pending)
		}
		return
	}
	for idx, c := range n.SortedChildren() {
		if idx > 0 {
			*pending = depth
		}
		walk(c, depth+c.EdgeLen(), pending, sa, lcpArr)
	}
}
