// Package suffixtree builds a compressed trie of all suffixes of a
// text, supporting three construction strategies over the same
// representation: a naive O(n^2)-worst-case construction that
// slow-scans every suffix from the root, McCreight's O(n) construction
// driven by suffix links, and a construction driven by an
// already-computed suffix array and LCP array (package lcp).
package suffixtree

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/mailund/gostr/alphabet"
	"github.com/mailund/gostr/lcp"
	"github.com/mailund/gostr/subseq"
)

// Node is satisfied by both *Inner and *Leaf. Exported for callers that
// want to walk the structure directly (e.g. package lcp's
// FromSuffixTree); SuffixTree's own methods are the supported API.
type Node interface {
	EdgeLabel() subseq.SubSeq[byte]
	Parent() *Inner
	IsLeaf() bool
	EdgeLen() int
	LeafLabel() int
	SortedChildren() []lcp.Node

	setEdgeLabel(subseq.SubSeq[byte])
	setParent(*Inner)
}

type base struct {
	edgeLabel subseq.SubSeq[byte]
	parent    *Inner
}

func (b *base) EdgeLabel() subseq.SubSeq[byte]    { return b.edgeLabel }
func (b *base) Parent() *Inner                    { return b.parent }
func (b *base) EdgeLen() int                      { return b.edgeLabel.Len() }
func (b *base) setEdgeLabel(s subseq.SubSeq[byte]) { b.edgeLabel = s }
func (b *base) setParent(p *Inner)                 { b.parent = p }

// Inner is an internal node: every node but the root has a non-empty
// edge label, and every Inner may additionally carry a suffix link
// used by McCreight's construction.
type Inner struct {
	base
	suffixLink *Inner
	children   map[byte]Node
}

func newInner(edge subseq.SubSeq[byte]) *Inner {
	return &Inner{base: base{edgeLabel: edge}, children: map[byte]Node{}}
}

func (n *Inner) IsLeaf() bool   { return false }
func (n *Inner) LeafLabel() int { return -1 }

func (n *Inner) addChildren(children ...Node) {
	for _, c := range children {
		c.setParent(n)
		n.children[c.EdgeLabel().At(0)] = c
	}
}

func (n *Inner) outChild(edge subseq.SubSeq[byte]) Node {
	return n.children[edge.At(0)]
}

func (n *Inner) sortedKeys() []byte {
	keys := make([]byte, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (n *Inner) SortedChildren() []lcp.Node {
	keys := n.sortedKeys()
	out := make([]lcp.Node, len(keys))
	for i, k := range keys {
		out[i] = n.children[k]
	}
	return out
}

// Leaf is a terminal node labelled with the start index, in the mapped
// text, of the suffix it represents.
type Leaf struct {
	base
	leafLabel int
}

func newLeaf(label int, edge subseq.SubSeq[byte]) *Leaf {
	return &Leaf{base: base{edgeLabel: edge}, leafLabel: label}
}

func (n *Leaf) IsLeaf() bool               { return true }
func (n *Leaf) LeafLabel() int             { return n.leafLabel }
func (n *Leaf) SortedChildren() []lcp.Node { return nil }

// breakEdge splits the edge leading to n, k characters down, inserting
// a new Inner in n's place and attaching a new Leaf (label, z) as n's
// sibling under it. Returns the new leaf.
func breakEdge(label int, n Node, k int, z subseq.SubSeq[byte]) *Leaf {
	edge := n.EdgeLabel()
	prefix, err := edge.Slice(0, k)
	if err != nil {
		panic(fmt.Errorf("suffixtree: breakEdge: %w", err))
	}

	newN := newInner(prefix)
	leaf := newLeaf(label, z)

	n.setEdgeLabel(edge.From(k))

	parent := n.Parent()
	parent.addChildren(newN)
	newN.addChildren(n, leaf)

	return leaf
}

// searchResult records where a search stopped: the node last searched
// on, how far down its incoming edge the search got (0 if it couldn't
// leave the node at all), and the remaining query at that point.
type searchResult struct {
	node    Node
	j       int
	pattern subseq.SubSeq[byte]
}

func firstMismatch(x, y subseq.SubSeq[byte]) int {
	n := min(x.Len(), y.Len())
	i := 0
	for ; i < n; i++ {
		if x.At(i) != y.At(i) {
			return i
		}
	}
	return i
}

// treeSearch slow-scans p from n, comparing symbol by symbol.
func treeSearch(n *Inner, p subseq.SubSeq[byte]) searchResult {
	if p.Empty() {
		return searchResult{n, 0, p}
	}
	for {
		child := n.outChild(p)
		if child == nil {
			return searchResult{n, 0, p}
		}
		i := firstMismatch(child.EdgeLabel(), p)
		if i == p.Len() || i < child.EdgeLen() {
			return searchResult{child, i, p}
		}
		inner, ok := child.(*Inner)
		if !ok {
			panic("suffixtree: slow scan continued past a leaf")
		}
		n, p = inner, p.From(i)
	}
}

// treeFastSearch is treeSearch without symbol comparison on edges: it
// jumps min(edgeLen, remaining) per step. Callers must only use it when
// p is known to be a substring of the concatenated edges below n.
func treeFastSearch(n *Inner, p subseq.SubSeq[byte]) searchResult {
	if p.Empty() {
		return searchResult{n, 0, p}
	}
	for {
		child := n.outChild(p)
		if child == nil {
			panic("suffixtree: fast scan found no out-edge")
		}
		i := min(child.EdgeLen(), p.Len())
		if i == p.Len() {
			return searchResult{child, i, p}
		}
		inner, ok := child.(*Inner)
		if !ok {
			panic("suffixtree: fast scan continued past a leaf")
		}
		n, p = inner, p.From(i)
	}
}

// SuffixTree is a compressed trie of every suffix of a sentinelled,
// alphabet-mapped text.
type SuffixTree struct {
	alpha *alphabet.Alphabet
	root  *Inner
}

// NaiveConstruct builds a suffix tree by slow-scanning from the root
// for every suffix of text, in increasing start-index order. Because
// the sentinel byte is unique, no suffix is ever a prefix of another,
// so every insertion ends in a mismatch, never a full match.
func NaiveConstruct(text []byte) (*SuffixTree, error) {
	a, x, err := mapSentinelled(text)
	if err != nil {
		return nil, err
	}

	root := newInner(x.From(x.Len()))
	for i := 0; i < x.Len(); i++ {
		y := x.From(i)
		res := treeSearch(root, y)
		switch {
		case res.j == 0:
			inner := res.node.(*Inner)
			inner.addChildren(newLeaf(i, res.pattern))
		case res.j < res.pattern.Len():
			breakEdge(i, res.node, res.j, res.pattern.From(res.j))
		}
	}

	return &SuffixTree{alpha: a, root: root}, nil
}

// McCreightConstruct builds a suffix tree in O(n) by maintaining the
// most recently inserted leaf and following suffix links to skip
// re-scanning the part of each suffix already known to be in the tree.
//
// At step i, let p = v.parent and pp = p.parent, decomposing x[i:] as
// a . y . z where a is the path down to pp, y is p's edge label, and z
// is v's edge label. If p already has a suffix link, z is slow-scanned
// from p.suffix_link directly. Otherwise y is fast-scanned from
// pp.suffix_link (pp always has one, since root's is set at the start
// and every other suffix link is assigned before its node is used
// here); if the fast scan stops on an edge, the new leaf is inserted by
// breaking that edge, which also determines p's suffix link, and the
// step is done. If it stops on a node, that node is where z is
// slow-scanned from, and it becomes p's suffix link.
func McCreightConstruct(text []byte) (*SuffixTree, error) {
	a, x, err := mapSentinelled(text)
	if err != nil {
		return nil, err
	}

	root := newInner(x.From(x.Len()))
	v := newLeaf(0, x)
	root.addChildren(v)
	root.suffixLink = root

	var leaf Node = v
	for i := 1; i < x.Len(); i++ {
		p := leaf.Parent()

		var yNode *Inner
		var z subseq.SubSeq[byte]

		if p.suffixLink != nil {
			yNode = p.suffixLink
			if p == root {
				z = x.From(i)
			} else {
				z = leaf.EdgeLabel()
			}
		} else {
			pp := p.Parent()

			var y subseq.SubSeq[byte]
			if pp == root {
				y = p.EdgeLabel().From(1)
			} else {
				y = p.EdgeLabel()
			}
			z = leaf.EdgeLabel()

			res := treeFastSearch(pp.suffixLink, y)
			if res.node.EdgeLen() != res.j {
				newLeafNode := breakEdge(i, res.node, res.j, z)
				p.suffixLink = newLeafNode.Parent()
				leaf = newLeafNode
				continue
			}

			inner, ok := res.node.(*Inner)
			if !ok {
				panic("suffixtree: fast scan mismatch landed on a leaf")
			}
			yNode = inner
			p.suffixLink = yNode
		}

		res := treeSearch(yNode, z)
		switch {
		case res.j == 0:
			inner := res.node.(*Inner)
			newLeafNode := newLeaf(i, res.pattern)
			inner.addChildren(newLeafNode)
			leaf = newLeafNode
		case res.j < res.pattern.Len():
			leaf = breakEdge(i, res.node, res.j, res.pattern.From(res.j))
		}
	}

	return &SuffixTree{alpha: a, root: root}, nil
}

// searchUp walks up from n until the remaining string depth fits on
// the current node's incoming edge, returning the node to attach at
// and how far down its edge (0 meaning attach as a direct child).
func searchUp(n Node, length int) (Node, int) {
	for length > 0 && n.EdgeLen() <= length {
		length -= n.EdgeLen()
		n = n.Parent()
	}
	depth := 0
	if length != 0 {
		depth = n.EdgeLen() - length
	}
	return n, depth
}

// LCPConstruct builds a suffix tree by inserting suffixes in SA order,
// using lcpArr to find the insertion point by walking up from the
// previously inserted leaf instead of searching down from the root.
// sa and lcpArr must be the suffix array and LCP array of text's
// sentinelled alphabet mapping (package skew/sais and package lcp).
func LCPConstruct(text []byte, sa []int, lcpArr []int) (*SuffixTree, error) {
	a, x, err := mapSentinelled(text)
	if err != nil {
		return nil, err
	}
	if len(sa) != x.Len() || len(lcpArr) != x.Len() {
		return nil, fmt.Errorf("suffixtree: sa/lcp length %d/%d does not match mapped text length %d", len(sa), len(lcpArr), x.Len())
	}

	root := newInner(x.From(x.Len()))
	v := newLeaf(sa[0], x.From(sa[0]))
	root.addChildren(v)

	var leaf Node = v
	for i := 1; i < len(sa); i++ {
		n, depth := searchUp(leaf, x.Len()-sa[i-1]-lcpArr[i])
		if depth == 0 {
			inner := n.(*Inner)
			newLeafNode := newLeaf(sa[i], x.From(sa[i]+lcpArr[i]))
			inner.addChildren(newLeafNode)
			leaf = newLeafNode
		} else {
			leaf = breakEdge(sa[i], n, depth, x.From(sa[i]+lcpArr[i]))
		}
	}

	return &SuffixTree{alpha: a, root: root}, nil
}

func mapSentinelled(text []byte) (*alphabet.Alphabet, subseq.SubSeq[byte], error) {
	a, err := alphabet.FromText(text)
	if err != nil {
		return nil, subseq.SubSeq[byte]{}, err
	}
	mapped, err := a.MapWithSentinel(text)
	if err != nil {
		return nil, subseq.SubSeq[byte]{}, err
	}
	return a, subseq.Full(mapped), nil
}

func leafLabels(n Node) []int {
	if n.IsLeaf() {
		return []int{n.LeafLabel()}
	}
	inner := n.(*Inner)
	var out []int
	for _, k := range inner.sortedKeys() {
		out = append(out, leafLabels(inner.children[k])...)
	}
	return out
}

// Search remaps p through the tree's alphabet (yielding nothing on an
// unknown symbol), slow-scans it, and if p is consumed entirely,
// yields every leaf label under the node the search stopped on/in.
func (t *SuffixTree) Search(p []byte) iter.Seq[int] {
	return func(yield func(int) bool) {
		mapped, err := t.alpha.Map(p)
		if err != nil {
			return
		}
		res := treeSearch(t.root, subseq.Full(mapped))
		if res.j != res.pattern.Len() {
			return
		}
		for _, label := range leafLabels(res.node) {
			if !yield(label) {
				return
			}
		}
	}
}

// Root returns the tree's root as an lcp.Node, for callers that want to
// derive the suffix array and LCP array implied by its shape (package
// lcp's FromSuffixTree).
func (t *SuffixTree) Root() lcp.Node { return t.root }

// Contains reports whether p occurs in the indexed text.
func (t *SuffixTree) Contains(p []byte) bool {
	mapped, err := t.alpha.Map(p)
	if err != nil {
		return false
	}
	res := treeSearch(t.root, subseq.Full(mapped))
	return res.j == res.pattern.Len()
}

// Dot renders the tree as Graphviz dot source, for debugging. Not part
// of the stable API.
func (t *SuffixTree) Dot() string {
	var b strings.Builder
	b.WriteString("digraph SuffixTree {\n  rankdir=LR;\n")
	ids := map[Node]int{}
	next := 0
	var assign func(n Node)
	assign = func(n Node) {
		ids[n] = next
		next++
		if inner, ok := n.(*Inner); ok {
			for _, k := range inner.sortedKeys() {
				assign(inner.children[k])
			}
		}
	}
	assign(t.root)

	edgeText := func(n Node) string {
		edge := n.EdgeLabel()
		var sb strings.Builder
		for i := 0; i < edge.Len(); i++ {
			if bb, ok := t.alpha.Revmap(edge.At(i)); ok {
				sb.WriteByte(bb)
			} else {
				sb.WriteByte('$')
			}
		}
		return sb.String()
	}

	var walk func(n Node)
	walk = func(n Node) {
		if n.IsLeaf() {
			fmt.Fprintf(&b, "  n%d [shape=circle,label=%q];\n", ids[n], fmt.Sprintf("%d", n.LeafLabel()))
		} else {
			fmt.Fprintf(&b, "  n%d [shape=point];\n", ids[n])
		}
		if n.Parent() != nil {
			fmt.Fprintf(&b, "  n%d -> n%d [label=%q];\n", ids[n.Parent()], ids[n], edgeText(n))
		}
		if inner, ok := n.(*Inner); ok {
			if inner.suffixLink != nil && inner != t.root {
				fmt.Fprintf(&b, "  n%d -> n%d [style=dashed,color=red];\n", ids[inner], ids[inner.suffixLink])
			}
			for _, k := range inner.sortedKeys() {
				walk(inner.children[k])
			}
		}
	}
	walk(t.root)
	b.WriteString("}\n")
	return b.String()
}
