// Package similarity grades free-text answers by approximate string match
// instead of exact equality. The score is derived from Levenshtein edit
// distance over whitespace- and case-normalized input.
package similarity

import (
	"math"
	"strings"
)

// Normalize collapses whitespace runs to single spaces, trims, and
// lowercases, so "Hello   World " and "hello world" compare equal.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Score returns a confidence in [0,100] that actual matches expected.
// Equal normalized strings score exactly 100. Otherwise the score is
// round((1 - d/maxLen) * 100) where d is the edit distance and maxLen the
// length of the longer normalized string, clamped to [0,100]. Two empty
// strings score 100.
//
// Deterministic and symmetric: Score(a, b) == Score(b, a).
func Score(expected, actual string) int {
	a := Normalize(expected)
	b := Normalize(actual)

	if a == b {
		return 100
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100
	}

	d := Distance(a, b)
	score := math.Round((1 - float64(d)/float64(maxLen)) * 100)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

// Distance computes the Levenshtein edit distance between a and b
// (insertion, deletion, substitution all cost 1). Operates on runes.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	// Rolling single row of the DP table.
	dp := make([]int, m+1)
	for j := 0; j <= m; j++ {
		dp[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := dp[0]
		dp[0] = i
		for j := 1; j <= m; j++ {
			tmp := dp[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			dp[j] = min3(dp[j]+1, dp[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return dp[m]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
