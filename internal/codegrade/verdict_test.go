package codegrade

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseVerdict_Valid(t *testing.T) {
	v, err := parseVerdict(json.RawMessage(`{"correct":true,"feedback":"clean solution"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Correct {
		t.Fatal("expected correct")
	}
	if v.Feedback != "clean solution" {
		t.Fatalf("unexpected feedback: %q", v.Feedback)
	}
}

func TestParseVerdict_FeedbackOptional(t *testing.T) {
	v, err := parseVerdict(json.RawMessage(`{"correct":false}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Correct {
		t.Fatal("expected incorrect")
	}
}

func TestParseVerdict_MissingCorrect(t *testing.T) {
	_, err := parseVerdict(json.RawMessage(`{"feedback":"hmm"}`))
	var invalid *ErrInvalidVerdict
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidVerdict, got %v", err)
	}
}

func TestParseVerdict_ExtraProperty(t *testing.T) {
	_, err := parseVerdict(json.RawMessage(`{"correct":true,"score":95}`))
	var invalid *ErrInvalidVerdict
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidVerdict, got %v", err)
	}
}

func TestParseVerdict_NotJSON(t *testing.T) {
	_, err := parseVerdict(json.RawMessage(`the answer looks right to me`))
	var invalid *ErrInvalidVerdict
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidVerdict, got %v", err)
	}
}

func TestBuildGradingPrompt(t *testing.T) {
	prompt := buildGradingPrompt(Submission{
		QuestionID: "q3",
		Prompt:     "Reverse a string",
		Reference:  "def rev(s): return s[::-1]",
		Code:       "def rev(s):\n    return ''.join(reversed(s))",
		Language:   "python",
	})

	for _, want := range []string{"Reverse a string", "s[::-1]", "reversed(s)", "python"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
