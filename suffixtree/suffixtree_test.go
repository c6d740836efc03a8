package suffixtree

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/mailund/gostr/alphabet"
	"github.com/mailund/gostr/lcp"
	"github.com/mailund/gostr/skew"
)

// allLeaves collects every leaf label in sorted-subtree (i.e. suffix
// array) order, the way (*SuffixTree).Search does internally.
func allLeaves(t *testing.T, st *SuffixTree) []int {
	t.Helper()
	return leafLabels(st.root)
}

func naiveSuffixArray(mapped []byte) []int {
	sa := make([]int, len(mapped))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(mapped[sa[i]:], mapped[sa[j]:]) < 0
	})
	return sa
}

var constructors = map[string]func(text []byte) (*SuffixTree, error){
	"naive":     NaiveConstruct,
	"mccreight": McCreightConstruct,
}

func TestConstructorsAgreeWithSuffixArray(t *testing.T) {
	texts := []string{
		"mississippi", "banana", "abcabcabc", "aaaaaaaaaa",
		"a", "ab", "aba", "gostr is a string library", "zzyzx", "",
	}

	for name, construct := range constructors {
		for _, text := range texts {
			t.Run(name+"/"+text, func(t *testing.T) {
				st, err := construct([]byte(text))
				if err != nil {
					t.Fatal(err)
				}

				a, err := alphabet.FromText([]byte(text))
				if err != nil {
					t.Fatal(err)
				}
				mapped, err := a.MapWithSentinel([]byte(text))
				if err != nil {
					t.Fatal(err)
				}

				want := naiveSuffixArray(mapped)
				got := allLeaves(t, st)

				if len(got) != len(want) {
					t.Fatalf("leaf count = %d, want %d", len(got), len(want))
				}
				for i := range want {
					if got[i] != want[i] {
						t.Fatalf("leaves[%d] = %d, want %d (full: %v vs %v)", i, got[i], want[i], got, want)
					}
				}
			})
		}
	}
}

func TestLCPConstructMatchesSuffixArray(t *testing.T) {
	texts := []string{"mississippi", "banana", "abcabcabc", "aaaaaaaaaa", "gostr"}

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
			lcpArr := lcp.FromSA(mapped, sa)

			st, err := LCPConstruct([]byte(text), sa, lcpArr)
			if err != nil {
				t.Fatal(err)
			}

			got := allLeaves(t, st)
			for i := range sa {
				if got[i] != sa[i] {
					t.Fatalf("leaves = %v, want %v", got, sa)
				}
			}
		})
	}
}

func TestAllConstructorsAgree(t *testing.T) {
	texts := []string{"mississippi", "banana", "cabbage", "aaaa"}

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
			lcpArr := lcp.FromSA(mapped, sa)

			naive, err := NaiveConstruct([]byte(text))
			if err != nil {
				t.Fatal(err)
			}
			mcc, err := McCreightConstruct([]byte(text))
			if err != nil {
				t.Fatal(err)
			}
			fromLCP, err := LCPConstruct([]byte(text), sa, lcpArr)
			if err != nil {
				t.Fatal(err)
			}

			wantLeaves := allLeaves(t, naive)
			for _, st := range []*SuffixTree{mcc, fromLCP} {
				got := allLeaves(t, st)
				if len(got) != len(wantLeaves) {
					t.Fatalf("leaf count mismatch: %v vs %v", got, wantLeaves)
				}
				for i := range got {
					if got[i] != wantLeaves[i] {
						t.Fatalf("leaves disagree: %v vs %v", got, wantLeaves)
					}
				}
			}
		})
	}
}

func TestSearchAndContains(t *testing.T) {
	text := "mississippi"
	st, err := McCreightConstruct([]byte(text))
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		pattern string
		want    []int
	}{
		{"i", []int{1, 4, 7, 10}},
		{"ssi", []int{2, 5}},
		{"ppi", []int{8}},
		{"mississippi", []int{0}},
		{"z", nil},
		{"", nil}, // handled separately below
	}

	for _, tc := range cases {
		if tc.pattern == "" {
			continue
		}
		t.Run(tc.pattern, func(t *testing.T) {
			var got []int
			for label := range st.Search([]byte(tc.pattern)) {
				got = append(got, label)
			}
			sort.Ints(got)
			sort.Ints(tc.want)

			if len(got) != len(tc.want) {
				t.Fatalf("Search(%q) = %v, want %v", tc.pattern, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Search(%q) = %v, want %v", tc.pattern, got, tc.want)
				}
			}

			if got, want := st.Contains([]byte(tc.pattern)), len(tc.want) > 0; got != want {
				t.Fatalf("Contains(%q) = %v, want %v", tc.pattern, got, want)
			}
		})
	}

	if st.Contains([]byte("xyz")) {
		t.Fatal("Contains(xyz) = true, want false")
	}
}

func TestSearchEmptyPatternMatchesEveryPosition(t *testing.T) {
	text := "aba"
	st, err := NaiveConstruct([]byte(text))
	if err != nil {
		t.Fatal(err)
	}

	var got []int
	for label := range st.Search(nil) {
		got = append(got, label)
	}
	sort.Ints(got)

	// Every suffix (including the sentinel's own empty position) is
	// under the root, so the empty pattern matches all of them.
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Search(\"\") = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Search(\"\") = %v, want %v", got, want)
		}
	}
}

func TestFromSuffixTreeAgreesWithFromSA(t *testing.T) {
	texts := []string{"mississippi", "banana", "abcabcabc", "aaaaaaaaaa", "cabbage"}

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
			wantSA := skew.Construct(mapped, a.Size())
			wantLCP := lcp.FromSA(mapped, wantSA)

			st, err := McCreightConstruct([]byte(text))
			if err != nil {
				t.Fatal(err)
			}

			gotSA, gotLCP := lcp.FromSuffixTree(st.root)

			if len(gotSA) != len(wantSA) {
				t.Fatalf("sa length = %d, want %d", len(gotSA), len(wantSA))
			}
			for i := range wantSA {
				if gotSA[i] != wantSA[i] {
					t.Fatalf("sa = %v, want %v", gotSA, wantSA)
				}
				if gotLCP[i] != wantLCP[i] {
					t.Fatalf("lcp = %v, want %v", gotLCP, wantLCP)
				}
			}
		})
	}
}

func TestDotProducesOutput(t *testing.T) {
	st, err := McCreightConstruct([]byte("banana"))
	if err != nil {
		t.Fatal(err)
	}
	dot := st.Dot()
	if !strings.HasPrefix(dot, "digraph SuffixTree {") {
		t.Fatalf("Dot() output missing header: %q", dot)
	}
}
