// Package alphabet maps an arbitrary byte text onto a dense, small
// numbering so the rest of gostr's constructions can use array indexing
// and fixed-size tables instead of hash maps.
//
// Symbol 0 is reserved as a sentinel that never occurs in mapped text;
// distinct source bytes are assigned codes 1..k in sorted order. This
// mirrors the convention every downstream construction (Skew, SA-IS,
// BWT) depends on: a string terminator that compares less than every
// real symbol.
package alphabet

import (
	"errors"
	"fmt"
	"sort"
)

// MaxSize is the largest alphabet gostr's fixed-width tables support,
// including the sentinel. A mapped symbol is always a byte, so this is
// also the hard ceiling of 256.
const MaxSize = 256

// ErrUnknownSymbol is returned by Map/MapWithSentinel when the input
// contains a byte that was not present in the text the Alphabet was
// built from.
var ErrUnknownSymbol = errors.New("alphabet: unknown symbol")

// ErrAlphabetTooLarge is returned by FromText when the input text
// contains more than MaxSize-1 distinct bytes (the sentinel takes the
// remaining slot).
var ErrAlphabetTooLarge = errors.New("alphabet: more than 255 distinct symbols")

// Sentinel is the reserved code for the end-of-string marker appended
// by MapWithSentinel. It never appears in Map's output.
const Sentinel byte = 0

// Alphabet is a bijection between a set of source bytes and the dense
// codes 1..Size()-1, with code 0 reserved for the sentinel.
type Alphabet struct {
	toCode  [MaxSize]int16 // -1 for bytes not in the alphabet
	toByte  []byte         // toByte[0] is unused; toByte[c] is the source byte for code c
}

// FromText builds an Alphabet from the distinct bytes occurring in text.
// Bytes are assigned codes in ascending order of value, so Map preserves
// lexicographic order of the original text.
func FromText(text []byte) (*Alphabet, error) {
	var seen [MaxSize]bool
	for _, b := range text {
		seen[b] = true
	}

	var distinct []byte
	for b := 0; b < MaxSize; b++ {
		if seen[b] {
			distinct = append(distinct, byte(b))
		}
	}
	return fromDistinct(distinct)
}

// FromSymbols builds an Alphabet from an explicit set of symbols rather
// than by scanning a text, useful when a caller wants a stable alphabet
// across several texts (e.g. pattern and text sharing one Alphabet).
func FromSymbols(symbols []byte) (*Alphabet, error) {
	seen := make(map[byte]bool, len(symbols))
	var distinct []byte
	for _, b := range symbols {
		if !seen[b] {
			seen[b] = true
			distinct = append(distinct, b)
		}
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	return fromDistinct(distinct)
}

func fromDistinct(distinct []byte) (*Alphabet, error) {
	if len(distinct)+1 > MaxSize {
		return nil, fmt.Errorf("%w: got %d distinct bytes", ErrAlphabetTooLarge, len(distinct))
	}

	a := &Alphabet{toByte: make([]byte, len(distinct)+1)}
	for i := range a.toCode {
		a.toCode[i] = -1
	}
	for i, b := range distinct {
		code := int16(i + 1)
		a.toCode[b] = code
		a.toByte[code] = b
	}
	return a, nil
}

// Size returns the number of codes in use, including the sentinel: a
// string over k distinct bytes has Size() == k+1.
func (a *Alphabet) Size() int { return len(a.toByte) }

// Contains reports whether b is a known source symbol.
func (a *Alphabet) Contains(b byte) bool {
	return a.toCode[b] >= 0
}

// Map translates text into the alphabet's codes, without a trailing
// sentinel. It fails if text contains a byte unknown to the alphabet.
func (a *Alphabet) Map(text []byte) ([]byte, error) {
	out := make([]byte, len(text))
	for i, b := range text {
		code := a.toCode[b]
		if code < 0 {
			return nil, fmt.Errorf("%w: byte %q at offset %d", ErrUnknownSymbol, b, i)
		}
		out[i] = byte(code)
	}
	return out, nil
}

// MapWithSentinel is Map with a trailing Sentinel (code 0) appended,
// the form every suffix-array and BWT construction in gostr expects.
func (a *Alphabet) MapWithSentinel(text []byte) ([]byte, error) {
	out, err := a.Map(text)
	if err != nil {
		return nil, err
	}
	return append(out, Sentinel), nil
}

// Revmap translates a single non-sentinel code back to its source byte.
// It reports ok=false for code 0 (the sentinel has no source symbol) or
// any code outside [0, Size()).
func (a *Alphabet) Revmap(code byte) (b byte, ok bool) {
	if int(code) == 0 || int(code) >= len(a.toByte) {
		return 0, false
	}
	return a.toByte[code], true
}

// RevmapBytes translates a slice of codes back to source bytes. It
// fails if any code is the sentinel or out of range.
func (a *Alphabet) RevmapBytes(codes []byte) ([]byte, error) {
	out := make([]byte, len(codes))
	for i, c := range codes {
		b, ok := a.Revmap(c)
		if !ok {
			return nil, fmt.Errorf("%w: code %d at offset %d has no source symbol", ErrUnknownSymbol, c, i)
		}
		out[i] = b
	}
	return out, nil
}
