package alphabet

import (
	"errors"
	"testing"
)

func TestFromTextAndMapRoundTrip(t *testing.T) {
	texts := []string{
		"mississippi",
		"banana",
		"a",
		"abcabcabc",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			a, err := FromText([]byte(text))
			if err != nil {
				t.Fatalf("FromText: %v", err)
			}

			mapped, err := a.Map([]byte(text))
			if err != nil {
				t.Fatalf("Map: %v", err)
			}

			back, err := a.RevmapBytes(mapped)
			if err != nil {
				t.Fatalf("RevmapBytes: %v", err)
			}
			if string(back) != text {
				t.Fatalf("round trip: got %q, want %q", back, text)
			}
		})
	}
}

func TestMapWithSentinelAppendsZero(t *testing.T) {
	a, err := FromText([]byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	mapped, err := a.MapWithSentinel([]byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if len(mapped) != 3 || mapped[2] != Sentinel {
		t.Fatalf("expected trailing sentinel, got %v", mapped)
	}
	for _, c := range mapped[:2] {
		if c == Sentinel {
			t.Fatalf("sentinel leaked into mapped body: %v", mapped)
		}
	}
}

func TestMapUnknownSymbol(t *testing.T) {
	a, err := FromText([]byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Map([]byte("abc")); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestRevmapSentinelFails(t *testing.T) {
	a, err := FromText([]byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.Revmap(Sentinel); ok {
		t.Fatalf("expected sentinel to have no source symbol")
	}
}

func TestOrderPreserved(t *testing.T) {
	a, err := FromText([]byte("cab"))
	if err != nil {
		t.Fatal(err)
	}
	mapped, err := a.Map([]byte("cab"))
	if err != nil {
		t.Fatal(err)
	}
	// 'a' < 'b' < 'c' lexicographically, so codes must reflect that order
	// regardless of the order bytes first appeared in the source text.
	var codeA, codeB, codeC byte
	for i, b := range []byte("cab") {
		switch b {
		case 'a':
			codeA = mapped[i]
		case 'b':
			codeB = mapped[i]
		case 'c':
			codeC = mapped[i]
		}
	}
	if !(codeA < codeB && codeB < codeC) {
		t.Fatalf("expected ascending codes a<b<c, got a=%d b=%d c=%d", codeA, codeB, codeC)
	}
}

func TestAlphabetTooLarge(t *testing.T) {
	text := make([]byte, MaxSize)
	for i := range text {
		text[i] = byte(i)
	}
	if _, err := FromText(text); !errors.Is(err, ErrAlphabetTooLarge) {
		t.Fatalf("expected ErrAlphabetTooLarge, got %v", err)
	}
}

func FuzzMapRevmapRoundTrip(f *testing.F) {
	f.Add([]byte("mississippi"))
	f.Add([]byte(""))
	f.Add([]byte("aaaa"))

	f.Fuzz(func(t *testing.T, text []byte) {
		a, err := FromText(text)
		if err != nil {
			t.Skip()
		}
		mapped, err := a.Map(text)
		if err != nil {
			t.Fatalf("Map failed on its own source text: %v", err)
		}
		back, err := a.RevmapBytes(mapped)
		if err != nil {
			t.Fatalf("RevmapBytes: %v", err)
		}
		if string(back) != string(text) {
			t.Fatalf("round trip mismatch: got %q want %q", back, text)
		}
	})
}
