// Package entropy provides the Shannon-entropy analyzer used as the fallback
// detector for unstructured high-randomness strings.
package entropy

import (
	"math"
	"regexp"
)

// MinCandidateLen is the shortest token the entropy pass will consider.
const MinCandidateLen = 20

// reCandidate matches maximal runs of the token alphabet used by the entropy
// pass. The run itself is maximal because the class is greedy and the
// surrounding characters are outside it.
var reCandidate = regexp.MustCompile(`[A-Za-z0-9/+=]{20,}`)

// Shannon returns the Shannon entropy of s in bits per character, computed
// over the frequency distribution of Unicode code points (Go runes). The
// empty string has entropy 0.
//
// The unit choice matters: a byte-based computation would differ on
// multi-byte input. Candidates produced by Candidates are ASCII-only, so for
// everything this package actually scores the two agree.
func Shannon(s string) float64 {
	if s == "" {
		return 0
	}
	counts := map[rune]int{}
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}
	h := 0.0
	n := float64(total)
	for _, c := range counts {
		p := float64(c) / n
		h += -p * math.Log2(p)
	}
	return h
}

// Candidates returns the maximal non-overlapping runs of [A-Za-z0-9/+=] of
// length >= MinCandidateLen in line, in order of appearance.
func Candidates(line string) []string {
	return reCandidate.FindAllString(line, -1)
}
