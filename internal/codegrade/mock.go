package codegrade

import (
	"context"
	"sync"
)

// MockResult is a canned verdict for the MockGrader.
type MockResult struct {
	Verdict *Verdict
	Err     error
}

// MockGrader is a deterministic Grader for testing.
// It returns canned verdicts in FIFO order and records all submissions.
type MockGrader struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []Submission
}

// NewMockGrader creates a MockGrader with the given canned results.
func NewMockGrader(results ...MockResult) *MockGrader {
	return &MockGrader{results: results}
}

// Grade returns the next canned result or ErrProviderUnavailable if the
// queue is empty.
func (m *MockGrader) Grade(_ context.Context, sub Submission) (*Verdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, sub)

	if len(m.results) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	res := m.results[0]
	m.results = m.results[1:]

	if res.Err != nil {
		return nil, res.Err
	}
	return res.Verdict, nil
}

// ProviderID returns "mock".
func (m *MockGrader) ProviderID() string {
	return "mock"
}

// AddResult appends a canned result to the queue.
func (m *MockGrader) AddResult(res MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// CallCount returns the number of Grade calls made.
func (m *MockGrader) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
