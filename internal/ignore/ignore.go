// Package ignore implements caller-supplied path exclusion for scans: an
// ordered list of doublestar globs, loadable from a .sweepignore file.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher holds an ordered set of glob patterns matched against
// slash-separated relative paths and against path basenames.
type Matcher struct {
	patterns []string
}

// New builds a Matcher from glob patterns, dropping empty entries.
func New(patterns []string) Matcher {
	var out []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return Matcher{patterns: out}
}

// Load reads patterns from a .sweepignore-style file: one glob per line,
// blank lines and #-comments skipped. A missing file yields an empty matcher
// and no error.
func Load(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Matcher{}, nil
		}
		return Matcher{}, err
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return Matcher{}, err
	}
	return New(patterns), nil
}

// Append returns a Matcher with extra patterns added after the existing ones.
func (m Matcher) Append(patterns ...string) Matcher {
	return New(append(append([]string{}, m.patterns...), patterns...))
}

// Empty reports whether the matcher has no patterns.
func (m Matcher) Empty() bool { return len(m.patterns) == 0 }

// Match reports whether rel (slash or OS separators) matches any pattern,
// either as a full relative path or by basename.
func (m Matcher) Match(rel string) bool {
	if len(m.patterns) == 0 {
		return false
	}
	rp := strings.ReplaceAll(rel, "\\", "/")
	base := filepath.Base(rp)
	for _, g := range m.patterns {
		if ok, _ := doublestar.Match(g, rp); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
	}
	return false
}
