package lcp

import (
	"reflect"
	"testing"

	"github.com/mailund/gostr/alphabet"
	"github.com/mailund/gostr/skew"
)

// naiveLCP computes the LCP array directly from x and sa, by literally
// comparing adjacent suffixes byte by byte. Used as ground truth.
func naiveLCP(x []byte, sa []int) []int {
	out := make([]int, len(sa))
	for i := 1; i < len(sa); i++ {
		a, b := sa[i-1], sa[i]
		k := 0
		for a+k < len(x) && b+k < len(x) && x[a+k] == x[b+k] {
			k++
		}
		out[i] = k
	}
	return out
}

func TestFromSAMatchesNaive(t *testing.T) {
	texts := []string{"mississippi", "banana", "aaaaaaaaaa", "abcabcabc", "gostr"}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			a, err := alphabet.FromText([]byte(text))
			if err != nil {
				t.Fatal(err)
			}
			mapped, err := a.MapWithSentinel([]byte(text))
			if err != nil {
				t.Fatal(err)
			}
			sa := skew.Construct(mapped, a.Size())

			got := FromSA(mapped, sa)
			want := naiveLCP(mapped, sa)

			if !reflect.DeepEqual(got, want) {
				t.Fatalf("FromSA(%q) = %v, want %v", text, got, want)
			}
		})
	}
}

// mockNode is a minimal Node for exercising FromSuffixTree without
// depending on package suffixtree.
type mockNode struct {
	edgeLen  int
	children []*mockNode
	leaf     bool
	label    int
}

func (n *mockNode) EdgeLen() int   { return n.edgeLen }
func (n *mockNode) IsLeaf() bool   { return n.leaf }
func (n *mockNode) LeafLabel() int { return n.label }
func (n *mockNode) SortedChildren() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Builds the suffix tree shape for "banana$" by hand to check
// FromSuffixTree against the independently-known LCP array.
func TestFromSuffixTreeKnownShape(t *testing.T) {
	// suffixes of "banana$" sorted: $ (6), a$ (5), ana$ (3), anana$ (1),
	// banana$ (0), na$ (4), nana$ (2)
	// sa  = [6, 5, 3, 1, 0, 4, 2]
	// lcp = [0, 0, 1, 3, 0, 0, 2]
	leaf := func(label int) *mockNode { return &mockNode{leaf: true, label: label} }

	root := &mockNode{children: []*mockNode{
		leaf(6),                            // "$"
		{edgeLen: 1, children: []*mockNode{ // "a" (depth 1)
			leaf(5),                            // "a$" (depth 2)
			{edgeLen: 2, children: []*mockNode{ // "na" (depth 3)
				leaf(3), // "$" -> "ana$" (depth 4)
				leaf(1), // "na$" -> "anana$" (depth 6)
			}},
		}},
		leaf(0),                            // "banana$"
		{edgeLen: 2, children: []*mockNode{ // "na" (depth 2)
			leaf(4), // "$" -> "na$" (depth 3)
			leaf(2), // "na$" -> "nana$" (depth 5)
		}},
	}}

	sa, got := FromSuffixTree(root)
	wantSA := []int{6, 5, 3, 1, 0, 4, 2}
	wantLCP := []int{0, 0, 1, 3, 0, 0, 2}

	if !reflect.DeepEqual(sa, wantSA) {
		t.Fatalf("sa = %v, want %v", sa, wantSA)
	}
	if !reflect.DeepEqual(got, wantLCP) {
		t.Fatalf("lcp = %v, want %v", got, wantLCP)
	}
}
