package submission

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
)

func testPayload() Payload {
	return Payload{
		QuizID:         "quiz-1",
		Type:           "practice",
		Score:          2,
		TotalQuestions: 3,
		Answers: []quiz.GradedAnswer{
			{QuestionID: "q1", IsCorrect: true, TimeSpentSeconds: 5},
			{QuestionID: "q2", IsCorrect: false, TimeSpentSeconds: 8},
			{QuestionID: "q3", IsCorrect: true, TimeSpentSeconds: 2},
		},
		TotalTime: 15,
	}
}

func TestPayloadFor(t *testing.T) {
	res := &quiz.QuizResult{
		QuizID:   "quiz-1",
		QuizType: "practice",
		Score:    1,
		MaxScore: 2,
		QuestionResults: []quiz.GradedAnswer{
			{QuestionID: "q1", IsCorrect: true, TimeSpentSeconds: 4},
			{QuestionID: "q2", TimeSpentSeconds: 6},
		},
	}
	p := PayloadFor(res)
	if p.TotalTime != 10 {
		t.Errorf("TotalTime = %d, want 10", p.TotalTime)
	}
	if p.TotalQuestions != 2 || p.Score != 1 {
		t.Errorf("payload = %+v", p)
	}
}

func TestClient_SuccessShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"success": true, "result": {"id": "r-1"}}`))
	}))
	defer srv.Close()

	out, err := NewClient(srv.URL).Submit(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success || len(out.Result) == 0 {
		t.Errorf("outcome = %+v", out)
	}
}

func TestClient_FailureShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "quiz already scored"}`))
	}))
	defer srv.Close()

	out, err := NewClient(srv.URL).Submit(context.Background(), testPayload())
	var rejected *ErrRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
	if out == nil || out.Error != "quiz already scored" {
		t.Errorf("outcome = %+v", out)
	}
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Submit(context.Background(), testPayload())
	var unavailable *ErrServerUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("want ErrServerUnavailable, got %v", err)
	}
	if unavailable.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d", unavailable.StatusCode)
	}
}

func TestClient_TransportError(t *testing.T) {
	c := NewClientWithHTTP("http://127.0.0.1:0/nowhere", &http.Client{Timeout: 100 * time.Millisecond})
	_, err := c.Submit(context.Background(), testPayload())
	var unavailable *ErrServerUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("want ErrServerUnavailable, got %v", err)
	}
}

func TestClient_UndecodableBodyTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	out, err := NewClient(srv.URL).Submit(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("2xx with junk body should not error: %v", err)
	}
	if !out.Success {
		t.Error("junk 2xx body should count as accepted")
	}
}

func TestMockSubmitter_RecordsCalls(t *testing.T) {
	m := NewMockSubmitter(MockResponse{Err: errors.New("boom")})

	if _, err := m.Submit(context.Background(), testPayload()); err == nil {
		t.Error("first canned response should error")
	}
	if _, err := m.Submit(context.Background(), testPayload()); err != nil {
		t.Errorf("exhausted queue should answer success, got %v", err)
	}
	if m.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", m.CallCount())
	}
}
