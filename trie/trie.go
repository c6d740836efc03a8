// Package trie implements a byte-keyed trie augmented into an
// Aho-Corasick automaton: failure (suffix) links and output links over
// a set of patterns, supporting a single left-to-right scan of a text
// that reports every occurrence of every pattern.
//
// Two constructors are provided, Build and BuildBreadthFirst. Both
// insert the patterns one at a time from the root and then set failure
// and output links in a single breadth-first pass, so every node
// shallower than the one being linked already has its links; they
// produce the same automaton. Neither builds the trie level by level.
//
// Search uses package simd's multi-byte Memchr probes as a prefilter:
// while the automaton sits in the root state, it skips straight to the
// next byte that could start a match instead of stepping one byte at a
// time through text no pattern can match.
package trie

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/mailund/gostr/simd"
)

// noPattern marks a trie node that is not the end of any inserted
// pattern.
const noPattern = -1

// Node is a single trie node. Fields are exported for callers that
// want to walk the structure directly; Trie's own methods are the
// supported API.
type Node struct {
	Label    byte
	Depth    int
	Children map[byte]*Node
	Parent   *Node

	// PatternIdx is the index into the pattern list Build was given, or
	// noPattern if this node is not the end of any pattern.
	PatternIdx int

	suffixLink *Node
	outputLink *Node
}

// IsAccepting reports whether this node marks the end of a pattern.
func (n *Node) IsAccepting() bool { return n.PatternIdx != noPattern }

// Trie is a byte-keyed trie with Aho-Corasick failure/output links
// computed over the patterns it was built from.
type Trie struct {
	root *Node

	// firstBytes caches the root's outgoing edge bytes, for Search's
	// literal prefilter; prefilterDisabled is set instead once there are
	// more of them than simd's widest multi-byte probe can take at once.
	firstBytes        []byte
	prefilterDisabled bool
}

// New returns an empty trie, ready for Insert.
func New() *Trie {
	root := &Node{Children: map[byte]*Node{}, PatternIdx: noPattern}
	root.suffixLink = root
	return &Trie{root: root}
}

// Insert adds pattern to the trie, marking its terminal node with idx.
// Insert does not recompute failure/output links; call Relink once all
// patterns are inserted (Build and BuildBreadthFirst do this themselves).
func (t *Trie) Insert(pattern []byte, idx int) {
	n := t.root
	for _, b := range pattern {
		child, ok := n.Children[b]
		if !ok {
			child = &Node{
				Label:      b,
				Depth:      n.Depth + 1,
				Children:   map[byte]*Node{},
				Parent:     n,
				PatternIdx: noPattern,
			}
			n.Children[b] = child
		}
		n = child
	}
	n.PatternIdx = idx
}

// Contains reports whether pattern was inserted into the trie.
func (t *Trie) Contains(pattern []byte) bool {
	n := t.root
	for _, b := range pattern {
		child, ok := n.Children[b]
		if !ok {
			return false
		}
		n = child
	}
	return n.IsAccepting()
}

// Build inserts every pattern, walking down from the root for each one,
// and then computes Aho-Corasick links with a breadth-first pass.
func Build(patterns [][]byte) *Trie {
	t := New()
	for i, p := range patterns {
		t.Insert(p, i)
	}
	t.relinkBreadthFirst()
	t.computeFirstBytes()
	return t
}

// BuildBreadthFirst inserts every pattern and computes Aho-Corasick
// links with a breadth-first pass. It performs the same steps as Build
// and yields an identical automaton.
func BuildBreadthFirst(patterns [][]byte) *Trie {
	t := New()
	for i, p := range patterns {
		t.Insert(p, i)
	}
	t.relinkBreadthFirst()
	t.computeFirstBytes()
	return t
}

// Relink recomputes failure/output links after a batch of Insert calls,
// with the same breadth-first pass Build uses.
func (t *Trie) Relink() {
	t.relinkBreadthFirst()
	t.computeFirstBytes()
}

// computeFirstBytes caches the distinct first bytes of the trie's
// non-empty patterns, for Search's literal prefilter. Disabled (nil,
// prefilterDisabled) once there are more than three, since Memchr3 is
// the widest probe simd offers.
func (t *Trie) computeFirstBytes() {
	keys := sortedKeys(t.root.Children)
	if len(keys) > 3 {
		t.firstBytes = nil
		t.prefilterDisabled = true
		return
	}
	t.firstBytes = keys
	t.prefilterDisabled = false
}

func sortedKeys(m map[byte]*Node) []byte {
	keys := make([]byte, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (t *Trie) relinkBreadthFirst() {
	root := t.root
	var queue []*Node
	for _, b := range sortedKeys(root.Children) {
		child := root.Children[b]
		child.suffixLink = root
		setOutputLink(root, child)
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, b := range sortedKeys(n.Children) {
			child := n.Children[b]
			child.suffixLink = failureTarget(root, n.suffixLink, b)
			setOutputLink(root, child)
			queue = append(queue, child)
		}
	}
}

// failureTarget finds the node a failure link should point to: the
// longest proper suffix of the current path that is itself a path from
// root, extended by the byte b.
func failureTarget(root, fromSuffixLink *Node, b byte) *Node {
	f := fromSuffixLink
	for {
		if child, ok := f.Children[b]; ok {
			return child
		}
		if f == root {
			return root
		}
		f = f.suffixLink
	}
}

// setOutputLink sets n's output link to the nearest proper ancestor (by
// suffix link) that is itself accepting, so occurrence reporting can
// walk straight from one match to the next without re-testing
// non-accepting nodes. Root is never a valid output-link target: the
// empty pattern, if any, is reported separately by Search, not via the
// automaton's failure chain.
func setOutputLink(root, n *Node) {
	switch {
	case n.suffixLink == root:
		n.outputLink = nil
	case n.suffixLink.IsAccepting():
		n.outputLink = n.suffixLink
	default:
		n.outputLink = n.suffixLink.outputLink
	}
}

// findOut advances the automaton from state n on input byte b, falling
// back through failure links until a transition exists (or the root is
// reached, which always has an implicit self-loop on unknown bytes).
func findOut(root, n *Node, b byte) *Node {
	for n != root {
		if child, ok := n.Children[b]; ok {
			return child
		}
		n = n.suffixLink
	}
	if child, ok := root.Children[b]; ok {
		return child
	}
	return root
}

// skipToFirstByte returns the offset in x of the next byte that could
// begin a pattern match (one of the root's outgoing edge bytes), using
// simd's multi-byte Memchr probes, or -1 if none remain. Called only
// when the automaton is in the root state, where advancing over a byte
// that starts no pattern is a guaranteed no-op.
func (t *Trie) skipToFirstByte(x []byte) int {
	if t.prefilterDisabled {
		return 0
	}
	switch len(t.firstBytes) {
	case 0:
		return -1
	case 1:
		return simd.Memchr(x, t.firstBytes[0])
	case 2:
		return simd.Memchr2(x, t.firstBytes[0], t.firstBytes[1])
	default:
		return simd.Memchr3(x, t.firstBytes[0], t.firstBytes[1], t.firstBytes[2])
	}
}

// Search scans x once and yields (patternIdx, position) for every
// occurrence of every pattern the trie was built from, in left-to-right
// order of occurrence end position. A pattern inserted as the empty
// slice is the root itself; it is yielded once, at position 0, rather
// than at every position (unlike the classical exact matchers' empty
// pattern convention, which matches everywhere).
//
// While the automaton sits in the root state (no partial match pending),
// stretches of x that cannot start any pattern are skipped in bulk via
// skipToFirstByte instead of stepping through the automaton one byte at
// a time.
func (t *Trie) Search(x []byte) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if t.root.IsAccepting() {
			if !yield(t.root.PatternIdx, 0) {
				return
			}
		}

		n := t.root
		i := 0
		for i < len(x) {
			if n == t.root {
				skip := t.skipToFirstByte(x[i:])
				if skip < 0 {
					return
				}
				i += skip
				if i >= len(x) {
					return
				}
			}

			n = findOut(t.root, n, x[i])
			for m := n; m != nil; m = m.outputLink {
				if !m.IsAccepting() {
					continue
				}
				if !yield(m.PatternIdx, i-m.Depth+1) {
					return
				}
			}
			i++
		}
	}
}

// Dot renders the trie (edges and failure links) as Graphviz dot
// source, for debugging. It is not part of the stable API.
func (t *Trie) Dot() string {
	var b strings.Builder
	b.WriteString("digraph Trie {\n")
	ids := map[*Node]int{}
	var assign func(n *Node)
	next := 0
	assign = func(n *Node) {
		ids[n] = next
		next++
		for _, c := range sortedKeys(n.Children) {
			assign(n.Children[c])
		}
	}
	assign(t.root)

	var walk func(n *Node)
	walk = func(n *Node) {
		shape := "circle"
		if n.IsAccepting() {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  n%d [shape=%s,label=\"%d\"];\n", ids[n], shape, ids[n])
		for _, c := range sortedKeys(n.Children) {
			child := n.Children[c]
			fmt.Fprintf(&b, "  n%d -> n%d [label=%q];\n", ids[n], ids[child], string(c))
			walk(child)
		}
		if n.suffixLink != nil && n != t.root {
			fmt.Fprintf(&b, "  n%d -> n%d [style=dashed,color=gray];\n", ids[n], ids[n.suffixLink])
		}
	}
	walk(t.root)
	b.WriteString("}\n")
	return b.String()
}
