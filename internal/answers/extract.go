package answers

import (
	"fmt"
	"strings"
)

// Best-effort extraction of answer data from loose legacy payloads. The
// same logical field has lived under several names over time; this adapter
// is the single place that knows about all of them. Everything here
// tolerates missing and mistyped fields and returns zero values instead of
// failing, so one malformed record cannot abort scoring an attempt.

// selectedFieldNames are the historical homes of an mcq selection,
// in priority order.
var selectedFieldNames = []string{"selectedOptionId", "selectedOption", "userAnswer", "answer"}

// textFieldNames are the historical homes of a free-text answer,
// in priority order.
var textFieldNames = []string{"userAnswer", "text", "value"}

// extractSelected pulls an mcq option identifier out of a legacy payload.
func extractSelected(fields map[string]any) string {
	for _, name := range selectedFieldNames {
		if v, ok := fields[name]; ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// extractText pulls a free-text answer out of a legacy payload. Blanks
// answers may also live inside a filledBlanks map keyed by question id.
func extractText(fields map[string]any, questionID string) string {
	for _, name := range textFieldNames {
		if v, ok := fields[name]; ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	if blanks, ok := fields["filledBlanks"].(map[string]any); ok {
		if v, ok := blanks[questionID]; ok {
			return stringify(v)
		}
	}
	return ""
}

// extractCorrect pulls an externally supplied correctness flag, when one
// exists. Nil means no flag was present.
func extractCorrect(fields map[string]any) *bool {
	if v, ok := fields["isCorrect"]; ok {
		if b, ok := v.(bool); ok {
			return &b
		}
	}
	return nil
}

// extractOrder pulls an ordering permutation out of a legacy payload.
func extractOrder(fields map[string]any) []string {
	for _, name := range []string{"order", "userOrder", "steps"} {
		v, ok := fields[name]
		if !ok {
			continue
		}
		items, ok := v.([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, stringify(item))
		}
		return out
	}
	return nil
}

// extractSelfReport pulls a flashcard self-report out of a legacy payload.
func extractSelfReport(fields map[string]any) string {
	for _, name := range []string{"response", "selfReport", "userAnswer"} {
		if v, ok := fields[name]; ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringify renders a scalar JSON value as a string. Numbers lose any
// ".0" suffix so option indices survive the float round-trip through
// encoding/json.
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	case bool:
		return fmt.Sprintf("%t", x)
	case nil:
		return ""
	default:
		return ""
	}
}
