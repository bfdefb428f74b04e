package engine

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/secretsweep/secretsweep/internal/entropy"
	"github.com/secretsweep/secretsweep/internal/rules"
	"github.com/secretsweep/secretsweep/internal/types"
)

// entropyThreshold is the minimum Shannon entropy (bits/char) for a
// candidate to be reported as a High Entropy String.
const entropyThreshold = 4.0

// isEnvFile reports whether path names a local environment file: basename
// ".env" exactly, ".env." plus any suffix (.env.local), or anything with a
// ".env" extension (config.env).
func isEnvFile(path string) bool {
	base := filepath.Base(path)
	return base == ".env" || strings.HasPrefix(base, ".env.") || strings.HasSuffix(base, ".env")
}

func claimKey(line int, value string) string {
	return strconv.Itoa(line) + "|" + value
}

// scanContent runs the full per-file detection pass over data: every rule
// against every line, then (for non-env files) the entropy fallback. Rule
// findings come first in line order then rule order; entropy findings follow.
//
// Environment files get every rule hit downgraded to an informational
// "Local Environment Secret" and no entropy pass at all: the file is an
// expected secrets location, and low-severity entropy noise there is
// deliberate suppression, not an oversight.
func scanContent(path string, data []byte, ruleset []rules.Rule) []types.Finding {
	env := isEnvFile(path)

	var out []types.Finding
	var entropic []types.Finding
	claimed := map[string]bool{}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		txt := sc.Text()

		for _, r := range ruleset {
			for _, sp := range r.Matches(txt) {
				f := types.Finding{
					File:     path,
					Line:     line,
					Type:     r.Type,
					Value:    sp.Value,
					Severity: r.Severity,
				}
				if env {
					f.Type = rules.TypeLocalEnv
					f.Severity = types.SevInfo
				}
				out = append(out, f)
				claimed[claimKey(line, sp.Value)] = true
			}
		}

		if env {
			continue
		}
		for _, cand := range entropy.Candidates(txt) {
			if claimed[claimKey(line, cand)] {
				continue
			}
			if entropy.Shannon(cand) >= entropyThreshold {
				entropic = append(entropic, types.Finding{
					File:     path,
					Line:     line,
					Type:     rules.TypeHighEntropy,
					Value:    cand,
					Severity: types.SevLow,
				})
			}
		}
	}
	// A scanner error (e.g. a line over the buffer cap) truncates the pass at
	// the last complete line; findings from complete lines stand.
	return append(out, entropic...)
}
