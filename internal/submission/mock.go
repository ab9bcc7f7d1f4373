package submission

import (
	"context"
	"sync"
)

// MockResponse is a canned outcome for the MockSubmitter.
type MockResponse struct {
	Outcome *Outcome
	Err     error
}

// MockSubmitter is a deterministic Submitter for tests. It returns canned
// responses in FIFO order and records every payload it receives.
type MockSubmitter struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Payload
}

// NewMockSubmitter creates a MockSubmitter with the given canned responses.
// An exhausted queue answers success.
func NewMockSubmitter(responses ...MockResponse) *MockSubmitter {
	return &MockSubmitter{responses: responses}
}

func (m *MockSubmitter) Submit(_ context.Context, p Payload) (*Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, p)

	if len(m.responses) == 0 {
		return &Outcome{Success: true}, nil
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp.Outcome, resp.Err
}

// CallCount returns the number of Submit calls made.
func (m *MockSubmitter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
