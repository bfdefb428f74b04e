// Package rules defines the fixed pattern rule set and the pure line matcher
// the scan engine runs against every line of every file.
package rules

import (
	"regexp"

	"github.com/secretsweep/secretsweep/internal/types"
)

// Labels for the two synthetic finding types the engine emits outside the
// rule table.
const (
	TypeHighEntropy = "High Entropy String"
	TypeLocalEnv    = "Local Environment Secret"
)

// Span is one rule match on a line: the matched substring and its byte
// offsets within the line.
type Span struct {
	Start int
	End   int
	Value string
}

// Rule is a named secret pattern with a fixed severity. Rules are immutable
// for the process lifetime.
type Rule struct {
	Type     string
	Severity types.Severity
	Pattern  *regexp.Regexp

	// find overrides plain regexp matching for rules whose boundary
	// conditions Go's RE2 syntax cannot express (no lookaround).
	find func(line string) []Span
}

var (
	reAWSAccessKey = regexp.MustCompile(`AKIA[A-Z0-9]{16}`)
	// Descriptive only; matching for this rule goes through exactRun40,
	// which enforces the not-embedded-in-a-longer-run boundary RE2 cannot.
	reAWSSecretKey = regexp.MustCompile(`[A-Za-z0-9/+=]{40}`)
	reBase64Run    = regexp.MustCompile(`[A-Za-z0-9/+=]+`)
	reAPIKey       = regexp.MustCompile(`(?i)api[_-]?key\s*[:=]\s*["']?[A-Za-z0-9_-]{16,}["']?`)
)

// exactRun40 finds runs of the base64 alphabet that are exactly 40 characters
// long. Longer runs are rejected wholesale: a 40-char token embedded in a
// 60-char run is not an AWS secret key, it is noise (the entropy pass may
// still pick it up).
func exactRun40(line string) []Span {
	var out []Span
	for _, loc := range reBase64Run.FindAllStringIndex(line, -1) {
		if loc[1]-loc[0] == 40 {
			out = append(out, Span{Start: loc[0], End: loc[1], Value: line[loc[0]:loc[1]]})
		}
	}
	return out
}

// defaultRules is ordered; the engine reports matches in this rule order
// within a line.
var defaultRules = []Rule{
	{Type: "AWS Access Key ID", Severity: types.SevHigh, Pattern: reAWSAccessKey},
	{Type: "AWS Secret Access Key", Severity: types.SevHigh, Pattern: reAWSSecretKey, find: exactRun40},
	{Type: "Generic API Key", Severity: types.SevMedium, Pattern: reAPIKey},
}

// Default returns the process-wide rule table. Callers must not mutate it.
func Default() []Rule {
	return defaultRules
}

// Matches returns all non-overlapping matches of the rule on one line, in
// left-to-right order. It is a pure function: no scan state survives between
// calls, lines, or files.
func (r Rule) Matches(line string) []Span {
	if r.find != nil {
		return r.find(line)
	}
	var out []Span
	for _, loc := range r.Pattern.FindAllStringIndex(line, -1) {
		out = append(out, Span{Start: loc[0], End: loc[1], Value: line[loc[0]:loc[1]]})
	}
	return out
}
