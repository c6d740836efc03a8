package skew

import (
	"bytes"
	"reflect"
	"sort"
	"testing"

	"github.com/mailund/gostr/alphabet"
)

// naiveSuffixArray sorts suffixes with bytes.Compare, as a slow but
// obviously-correct reference for testing Construct against.
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

func mapWithSentinel(t *testing.T, text string) ([]byte, int) {
	t.Helper()
	a, err := alphabet.FromText([]byte(text))
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	mapped, err := a.MapWithSentinel([]byte(text))
	if err != nil {
		t.Fatalf("MapWithSentinel: %v", err)
	}
	return mapped, a.Size()
}

func TestConstructMatchesNaiveSort(t *testing.T) {
	texts := []string{
		"mississippi",
		"banana",
		"abcabcabc",
		"aaaaaaaaaa",
		"a",
		"ab",
		"aba",
		"gostr is a string library",
		"zzyzx",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			mapped, asize := mapWithSentinel(t, text)

			want := naiveSuffixArray(mapped)
			got := Construct(mapped, asize)

			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Construct(%q) = %v, want %v", text, got, want)
			}
		})
	}
}

func TestCentralAndTerminalSentinelAgree(t *testing.T) {
	texts := []string{"mississippi", "banana", "abcabcabc", "aaaaaaaaaa", "gostrgostrgostr"}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			mapped, asize := mapWithSentinel(t, text)

			central := Construct(mapped, asize)
			terminal := ConstructTerminalSentinel(mapped, asize)

			if !reflect.DeepEqual(central, terminal) {
				t.Fatalf("central and terminal sentinel variants disagree on %q:\n central=%v\n terminal=%v", text, central, terminal)
			}
		})
	}
}

func TestConstructIsAPermutation(t *testing.T) {
	mapped, asize := mapWithSentinel(t, "mississippi")
	sa := Construct(mapped, asize)

	seen := make([]bool, len(mapped))
	for _, i := range sa {
		if i < 0 || i >= len(mapped) || seen[i] {
			t.Fatalf("SA is not a permutation: %v", sa)
		}
		seen[i] = true
	}
}

func FuzzConstructMatchesNaiveSort(f *testing.F) {
	f.Add("mississippi")
	f.Add("banana")
	f.Add("a")

	f.Fuzz(func(t *testing.T, text string) {
		if len(text) == 0 || len(text) > 200 {
			t.Skip()
		}
		b := []byte(text)
		for _, c := range b {
			if c == 0 {
				t.Skip() // a raw NUL would collide with the sentinel
			}
		}

		a, err := alphabet.FromText(b)
		if err != nil {
			t.Skip()
		}
		mapped, err := a.MapWithSentinel(b)
		if err != nil {
			t.Fatal(err)
		}

		want := naiveSuffixArray(mapped)
		got := Construct(mapped, a.Size())
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Construct(%q) = %v, want %v", text, got, want)
		}
	})
}
