package border

import (
	"reflect"
	"testing"
)

func TestArray(t *testing.T) {
	cases := []struct {
		x    string
		want []int
	}{
		{"", []int{}},
		{"a", []int{0}},
		{"aa", []int{0, 1}},
		{"aaa", []int{0, 1, 2}},
		{"aabaa", []int{0, 1, 0, 1, 2}},
		{"ababab", []int{0, 0, 1, 2, 3, 4}},
	}

	for _, c := range cases {
		t.Run(c.x, func(t *testing.T) {
			got := Array([]byte(c.x))
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("Array(%q) = %v, want %v", c.x, got, c.want)
			}
		})
	}
}

func TestStrictArray(t *testing.T) {
	// "aaaa": plain border array is [0,1,2,3]; strict discards the
	// extendable borders since x[b] == x[j+1] for every 'a' run.
	got := StrictArray([]byte("aaaa"))
	want := []int{0, 0, 0, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("StrictArray(aaaa) = %v, want %v", got, want)
	}
}

func TestStrictArrayMatchesPlainWhenNoExtension(t *testing.T) {
	// "abac": the only non-zero border (1, at j=2) is followed by 'b' in
	// the prefix but by 'c' in x, so it cannot be extended.
	got := StrictArray([]byte("abac"))
	want := Array([]byte("abac"))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("StrictArray(abac) = %v, want %v (no borders to strictify here)", got, want)
	}
}
