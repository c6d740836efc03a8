package cigar

import (
	"reflect"
	"testing"
)

func TestEditsToCIGARAndBack(t *testing.T) {
	cases := []struct {
		name  string
		edits []Edit
		cigar string
	}{
		{"empty", nil, ""},
		{"single match", []Edit{Match}, "1M"},
		{"runs", []Edit{Match, Match, Match, Insert, Delete, Delete}, "3M1I2D"},
		{"alternating", []Edit{Match, Insert, Match, Insert}, "1M1I1M1I"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotCIGAR := EditsToCIGAR(tc.edits)
			if gotCIGAR != tc.cigar {
				t.Fatalf("EditsToCIGAR(%v) = %q, want %q", tc.edits, gotCIGAR, tc.cigar)
			}

			gotEdits, err := CIGARToEdits(tc.cigar)
			if err != nil {
				t.Fatalf("CIGARToEdits(%q): %v", tc.cigar, err)
			}
			if len(tc.edits) == 0 {
				if len(gotEdits) != 0 {
					t.Fatalf("CIGARToEdits(%q) = %v, want empty", tc.cigar, gotEdits)
				}
				return
			}
			if !reflect.DeepEqual(gotEdits, tc.edits) {
				t.Fatalf("CIGARToEdits(%q) = %v, want %v", tc.cigar, gotEdits, tc.edits)
			}
		})
	}
}

func TestCIGARToEditsRejectsGarbage(t *testing.T) {
	bad := []string{"M", "1X", "1M ", " 1M", "1M2", "1M1Mx", "-1M"}
	for _, c := range bad {
		if _, err := CIGARToEdits(c); err == nil {
			t.Fatalf("CIGARToEdits(%q) succeeded, want error", c)
		}
	}
}

func TestExtractAlignmentAndCountEdits(t *testing.T) {
	text := []byte("mississippi")
	pattern := []byte("missispi")
	// "mississippi" vs "missispi": 6M matches "missis", 2D drops the
	// text's "si", then 2M aligns the text's "pp" with the pattern's "pi".
	c := "6M2D2M"

	alignedText, alignedPattern, err := ExtractAlignment(text, pattern, 0, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(alignedText) != len(alignedPattern) {
		t.Fatalf("alignment lengths differ: %q vs %q", alignedText, alignedPattern)
	}

	// 6M consumes "missis" from both; 2D consumes "si" from text only
	// (pattern padded with '-'); 2M consumes "pp" from the text and "pi"
	// from the pattern.
	wantAlignedText := "missis" + "si" + "pp"
	wantAlignedPattern := "missis" + "--" + "pi"

	if alignedText != wantAlignedText {
		t.Fatalf("alignedText = %q, want %q", alignedText, wantAlignedText)
	}
	if alignedPattern != wantAlignedPattern {
		t.Fatalf("alignedPattern = %q, want %q", alignedPattern, wantAlignedPattern)
	}

	// Two gap columns plus the p/i mismatch in the last 2M.
	edits := CountEdits(alignedText, alignedPattern)
	if edits != 3 {
		t.Fatalf("CountEdits = %d, want 3", edits)
	}
}

func TestExtractAlignmentInvalidCIGAR(t *testing.T) {
	_, _, err := ExtractAlignment([]byte("abc"), []byte("abc"), 0, "bogus")
	if err == nil {
		t.Fatal("expected error for invalid CIGAR")
	}
}
