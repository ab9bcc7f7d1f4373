package similarity

// CloseThreshold is the score above which a non-exact answer counts as
// close. At or below it the answer is incorrect.
const CloseThreshold = 80

// DefaultEditTolerance is the maximum edit distance accepted by the
// pass/fail gate used at answer submission. It is deliberately stricter
// than, and independent of, the 0-100 score.
const DefaultEditTolerance = 3

// Verdict buckets a similarity score for UI feedback and for deriving a
// boolean correctness when a question type carries no explicit flag.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"   // score == 100
	VerdictClose     Verdict = "close"     // score > CloseThreshold
	VerdictIncorrect Verdict = "incorrect" // everything else
)

// Classify maps a 0-100 score to a Verdict.
func Classify(score int) Verdict {
	switch {
	case score >= 100:
		return VerdictCorrect
	case score > CloseThreshold:
		return VerdictClose
	default:
		return VerdictIncorrect
	}
}

// Acceptable reports whether a verdict counts as "acceptably correct" for
// question types that derive correctness from similarity alone.
func (v Verdict) Acceptable() bool {
	return v == VerdictCorrect || v == VerdictClose
}

// WithinTolerance is the strict pass/fail gate: it accepts actual when its
// edit distance from expected (after normalization) is at most
// DefaultEditTolerance. Equal normalized strings short-circuit to true.
func WithinTolerance(expected, actual string) bool {
	a := Normalize(expected)
	b := Normalize(actual)
	if a == b {
		return true
	}
	return Distance(a, b) <= DefaultEditTolerance
}
