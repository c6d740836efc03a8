// Package cigar represents alignments between a text and a pattern as
// CIGAR strings: a run-length encoding of the edit operations (match,
// insert, delete) needed to turn one into the other.
package cigar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Edit is a single alignment operation.
type Edit int

const (
	Match Edit = iota
	Insert
	Delete
)

func (e Edit) String() string {
	switch e {
	case Match:
		return "M"
	case Insert:
		return "I"
	case Delete:
		return "D"
	default:
		return "?"
	}
}

// ErrInvalidCIGAR is returned by CIGARToEdits when its input does not
// match the CIGAR grammar (<digits><[MID]>)*.
var ErrInvalidCIGAR = errors.New("cigar: invalid CIGAR string")

// EditsToCIGAR run-length encodes edits into a CIGAR string: adjacent
// identical operations are grouped as <count><letter>.
func EditsToCIGAR(edits []Edit) string {
	var b strings.Builder
	i := 0
	for i < len(edits) {
		j := i + 1
		for j < len(edits) && edits[j] == edits[i] {
			j++
		}
		fmt.Fprintf(&b, "%d%s", j-i, edits[i])
		i = j
	}
	return b.String()
}

var cigarToken = regexp.MustCompile(`(\d+)([MID])`)

// CIGARToEdits parses a CIGAR string back into its edit sequence,
// rejecting anything that doesn't fully match the CIGAR grammar.
func CIGARToEdits(s string) ([]Edit, error) {
	matches := cigarToken.FindAllStringSubmatchIndex(s, -1)

	var out []Edit
	consumed := 0
	for _, m := range matches {
		if m[0] != consumed {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCIGAR, s)
		}
		n, err := strconv.Atoi(s[m[2]:m[3]])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCIGAR, s)
		}

		var e Edit
		switch s[m[4]:m[5]] {
		case "M":
			e = Match
		case "I":
			e = Insert
		case "D":
			e = Delete
		}
		for k := 0; k < n; k++ {
			out = append(out, e)
		}
		consumed = m[1]
	}
	if consumed != len(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCIGAR, s)
	}
	return out, nil
}

// ExtractAlignment reconstructs the two aligned strings (the text side
// and the pattern side) a CIGAR implies, starting from position pos in
// text: Match and Delete advance the text cursor, Match and Insert
// advance the pattern cursor, and whichever side doesn't advance on a
// given operation is padded with '-'. The two returned strings always
// have equal length.
func ExtractAlignment(text, pattern []byte, pos int, c string) (alignedText, alignedPattern string, err error) {
	edits, err := CIGARToEdits(c)
	if err != nil {
		return "", "", err
	}

	var tb, pb strings.Builder
	ti, pi := pos, 0
	for _, e := range edits {
		switch e {
		case Match:
			tb.WriteByte(text[ti])
			pb.WriteByte(pattern[pi])
			ti++
			pi++
		case Insert:
			tb.WriteByte('-')
			pb.WriteByte(pattern[pi])
			pi++
		case Delete:
			tb.WriteByte(text[ti])
			pb.WriteByte('-')
			ti++
		}
	}
	return tb.String(), pb.String(), nil
}

// CountEdits returns the number of columns where the two (equal-length)
// aligned strings differ.
func CountEdits(alignedText, alignedPattern string) int {
	n := min(len(alignedText), len(alignedPattern))
	count := 0
	for i := 0; i < n; i++ {
		if alignedText[i] != alignedPattern[i] {
			count++
		}
	}
	count += abs(len(alignedText) - len(alignedPattern))
	return count
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
