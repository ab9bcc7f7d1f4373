package codegrade

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockGrader(
		MockResult{Verdict: &Verdict{Correct: true}},
	)
	g := WithRetry(mock, retryConfig())

	v, err := g.Grade(context.Background(), Submission{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Correct {
		t.Fatal("expected correct verdict")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockGrader(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Verdict: &Verdict{Correct: true}},
	)
	g := WithRetry(mock, retryConfig())

	v, err := g.Grade(context.Background(), Submission{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Correct {
		t.Fatal("expected correct verdict")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockGrader(
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResult{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := WithRetry(mock, retryConfig())

	_, err := g.Grade(context.Background(), Submission{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidVerdictRetriedOnce(t *testing.T) {
	mock := NewMockGrader(
		MockResult{Err: &ErrInvalidVerdict{Err: errors.New("not json")}},
		MockResult{Err: &ErrInvalidVerdict{Err: errors.New("not json")}},
		MockResult{Verdict: &Verdict{Correct: true}},
	)
	g := WithRetry(mock, retryConfig())

	_, err := g.Grade(context.Background(), Submission{})
	var invalid *ErrInvalidVerdict
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidVerdict, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCanceledNotRetried(t *testing.T) {
	mock := NewMockGrader(
		MockResult{Err: context.Canceled},
	)
	g := WithRetry(mock, retryConfig())

	_, err := g.Grade(context.Background(), Submission{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitHonorsRetryAfter(t *testing.T) {
	mock := NewMockGrader(
		MockResult{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond}},
		MockResult{Verdict: &Verdict{Correct: false, Feedback: "wrong output"}},
	)
	g := WithRetry(mock, retryConfig())

	v, err := g.Grade(context.Background(), Submission{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Correct {
		t.Fatal("expected incorrect verdict")
	}
	if v.Feedback != "wrong output" {
		t.Fatalf("unexpected feedback: %q", v.Feedback)
	}
}
