package quiz

// RawAnswer is whatever a question UI produced for one question, reduced to
// an explicit tagged shape. Each question type consumes a different subset
// of fields; the answers package decides which. Loose legacy payloads (the
// same logical field under many historical names) are carried in Legacy and
// funneled through one best-effort extraction adapter instead of being
// probed ad hoc at every call site.
type RawAnswer struct {
	// Selected is the chosen option identifier (mcq).
	Selected string

	// Text is a free-text or code submission (code, blanks, openended).
	Text string

	// SelfReport is the learner's own verdict (flashcard):
	// "correct", "incorrect", or free text.
	SelfReport string

	// Order is a permutation of option IDs (ordering).
	Order []string

	// Correct carries an externally supplied correctness flag, when one
	// exists (server-graded mcq, code grader verdicts). Nil means the
	// engine must derive correctness itself.
	Correct *bool

	// Legacy holds an unrecognized payload as decoded JSON. When set, the
	// typed fields above are ignored and extraction is best-effort.
	Legacy map[string]any
}

// SelectedAnswer builds a RawAnswer for an mcq selection.
func SelectedAnswer(optionID string) RawAnswer {
	return RawAnswer{Selected: optionID}
}

// TextAnswer builds a RawAnswer for a free-text or code submission.
func TextAnswer(text string) RawAnswer {
	return RawAnswer{Text: text}
}

// SelfReportAnswer builds a RawAnswer for a flashcard self-report.
func SelfReportAnswer(report string) RawAnswer {
	return RawAnswer{SelfReport: report}
}

// OrderAnswer builds a RawAnswer for an ordering permutation.
func OrderAnswer(order []string) RawAnswer {
	return RawAnswer{Order: order}
}

// LegacyAnswer wraps a loose payload for best-effort extraction.
func LegacyAnswer(fields map[string]any) RawAnswer {
	return RawAnswer{Legacy: fields}
}

// IsZero reports whether the answer carries no data at all.
func (r RawAnswer) IsZero() bool {
	return r.Selected == "" && r.Text == "" && r.SelfReport == "" &&
		len(r.Order) == 0 && r.Correct == nil && len(r.Legacy) == 0
}
