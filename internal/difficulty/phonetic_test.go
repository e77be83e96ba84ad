package difficulty

import "testing"

func TestDoubleMetaphone(t *testing.T) {
	tests := []struct {
		word      string
		primary   string
		alternate string
	}{
		{"thumb", "0M", "TM"},
		{"smith", "SM0", "XMT"},
		{"knight", "NT", "NT"},
		{"laugh", "LF", "LF"},
		{"phone", "FN", "FN"},
		{"character", "KRKTR", "KRKTR"},
		{"extraordinarily", "AKSTRRTNRL", "AKSTRRTNRL"},
		{"Xavier", "SF", "SFR"},
		{"edge", "AJ", "AJ"},
		{"", "", ""},
	}
	for _, tc := range tests {
		p, a := DoubleMetaphone(tc.word)
		if p != tc.primary || a != tc.alternate {
			t.Errorf("DoubleMetaphone(%q) = (%q, %q), want (%q, %q)", tc.word, p, a, tc.primary, tc.alternate)
		}
	}
}

func TestDoubleMetaphone_IgnoresNonLetters(t *testing.T) {
	p1, a1 := DoubleMetaphone("look-up")
	p2, a2 := DoubleMetaphone("LOOKUP")
	if p1 != p2 || a1 != a2 {
		t.Errorf("got (%q, %q) and (%q, %q), want equal", p1, a1, p2, a2)
	}
}

func TestPhoneticScore(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"cat", 2},
		{"phone", 2},
		{"character", 4},
		{"extraordinarily", 4},
	}
	for _, tc := range tests {
		if got := PhoneticScore(tc.text); got != tc.want {
			t.Errorf("PhoneticScore(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}
