package types

import "strings"

// Severity is the coarse-grained risk level attached to a finding.
type Severity string

const (
	SevInfo     Severity = "Info"
	SevNone     Severity = "None"
	SevLow      Severity = "Low"
	SevMedium   Severity = "Medium"
	SevHigh     Severity = "High"
	SevCritical Severity = "Critical"
)

// Rank orders severities for threshold comparisons (fail-on gates).
// Unknown labels rank below Info.
func (s Severity) Rank() int {
	switch s {
	case SevInfo:
		return 1
	case SevNone:
		return 2
	case SevLow:
		return 3
	case SevMedium:
		return 4
	case SevHigh:
		return 5
	case SevCritical:
		return 6
	}
	return 0
}

// ParseSeverity maps a case-insensitive label to a Severity; ok is false for
// labels outside the fixed set.
func ParseSeverity(label string) (Severity, bool) {
	for _, s := range []Severity{SevInfo, SevNone, SevLow, SevMedium, SevHigh, SevCritical} {
		if strings.EqualFold(string(s), label) {
			return s, true
		}
	}
	return "", false
}

// Finding describes one secret-like occurrence: where it was seen, how it was
// classified, and the exact matched text. Value is always a contiguous
// substring of the line it was found on.
type Finding struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Type     string   `json:"type"`
	Value    string   `json:"value"`
	Severity Severity `json:"severity"`
}
