package similarity

import "testing"

func TestScore_Identity(t *testing.T) {
	for _, s := range []string{"", "object", "a longer sentence with words", "  spaced   out  "} {
		if got := Score(s, s); got != 100 {
			t.Errorf("Score(%q, %q) = %d, want 100", s, s, got)
		}
	}
}

func TestScore_EmptyVersusNonEmpty(t *testing.T) {
	if got := Score("object", ""); got != 0 {
		t.Errorf("Score(object, \"\") = %d, want 0", got)
	}
	if got := Score("", "object"); got != 0 {
		t.Errorf("Score(\"\", object) = %d, want 0", got)
	}
	if got := Score("", ""); got != 100 {
		t.Errorf("Score(\"\", \"\") = %d, want 100", got)
	}
}

func TestScore_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"object", "objetc"},
		{"hello world", "helo wrld"},
		{"kitten", "sitting"},
		{"", "x"},
	}
	for _, p := range pairs {
		ab := Score(p[0], p[1])
		ba := Score(p[1], p[0])
		if ab != ba {
			t.Errorf("Score(%q,%q)=%d but Score(%q,%q)=%d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestScore_NormalizesBeforeComparing(t *testing.T) {
	if got := Score("Hello   World", "hello world"); got != 100 {
		t.Errorf("Score = %d, want 100 after normalization", got)
	}
}

func TestScore_Transposition(t *testing.T) {
	// "objetc" vs "object": one transposition = two edits over six runes.
	got := Score("object", "objetc")
	if got < 60 || got >= 100 {
		t.Errorf("Score(object, objetc) = %d, want in [60,100)", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"object", "objetc", 2},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistance_Runes(t *testing.T) {
	if got := Distance("héllo", "hello"); got != 1 {
		t.Errorf("Distance(héllo, hello) = %d, want 1", got)
	}
}
