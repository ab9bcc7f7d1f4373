package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionType identifies which normalization and grading branch applies
// to a question. The set is closed; anything else is rejected at load time.
type QuestionType string

const (
	TypeMCQ       QuestionType = "mcq"
	TypeCode      QuestionType = "code"
	TypeBlanks    QuestionType = "blanks"
	TypeOpenEnded QuestionType = "openended"
	TypeFlashcard QuestionType = "flashcard"
	TypeOrdering  QuestionType = "ordering"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMCQ, TypeCode, TypeBlanks, TypeOpenEnded, TypeFlashcard, TypeOrdering:
		return true
	}
	return false
}

// Option is a single answer choice. Historically options were stored either
// as plain strings or as {id, text} objects; both forms decode into this
// one shape. A plain string becomes an Option whose ID and Text are equal.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// UnmarshalJSON accepts both the plain-string and the object form.
func (o *Option) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		o.ID = s
		o.Text = s
		return nil
	}

	var obj struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("option must be a string or {id,text} object: %w", err)
	}
	o.ID = obj.ID
	o.Text = obj.Text
	if o.Text == "" {
		o.Text = o.ID
	}
	return nil
}

// Question is one quiz question. Immutable once loaded; owned by the quiz
// definition and read-only to the engine.
type Question struct {
	ID              string       `json:"id"`
	Type            QuestionType `json:"type"`
	Prompt          string       `json:"prompt"`
	Options         []Option     `json:"options,omitempty"`
	ReferenceAnswer string       `json:"referenceAnswer"`

	// CanonicalOrder is the author-defined correct sequence of option IDs.
	// Only set for ordering questions.
	CanonicalOrder []string `json:"canonicalOrder,omitempty"`
}

// OptionText resolves an option identifier to its display text. The match
// tries option IDs first, then display text, both case-insensitively.
// Returns the identifier unchanged when nothing matches, so a stale or
// free-form selection still surfaces in results instead of vanishing.
func (q *Question) OptionText(id string) string {
	id = strings.TrimSpace(id)
	for _, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt.ID), id) {
			return opt.Text
		}
	}
	for _, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt.Text), id) {
			return opt.Text
		}
	}
	return id
}

// Definition is the read-only quiz a session runs against.
type Definition struct {
	ID        string     `json:"quizId"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	QuizType  string     `json:"quizType"`
	Questions []Question `json:"questions"`
}

// QuestionByID returns the question with the given id, or nil.
func (d *Definition) QuestionByID(id string) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}
