package similarity

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  Verdict
	}{
		{100, VerdictCorrect},
		{99, VerdictClose},
		{81, VerdictClose},
		{80, VerdictIncorrect},
		{0, VerdictIncorrect},
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestVerdict_Acceptable(t *testing.T) {
	if !VerdictCorrect.Acceptable() {
		t.Error("correct should be acceptable")
	}
	if !VerdictClose.Acceptable() {
		t.Error("close should be acceptable")
	}
	if VerdictIncorrect.Acceptable() {
		t.Error("incorrect should not be acceptable")
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		expected, actual string
		want             bool
	}{
		{"object", "object", true},
		{"Object", "  object ", true},
		{"object", "objetc", true},  // distance 2
		{"object", "objets", true},  // distance 2
		{"object", "obj", true},     // distance 3
		{"object", "ob", false},     // distance 4
		{"object", "", false},       // distance 6
		{"", "", true},
	}
	for _, tt := range tests {
		if got := WithinTolerance(tt.expected, tt.actual); got != tt.want {
			t.Errorf("WithinTolerance(%q, %q) = %v, want %v", tt.expected, tt.actual, got, tt.want)
		}
	}
}
