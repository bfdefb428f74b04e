package engine

import (
	"os"
	"path/filepath"

	"github.com/secretsweep/secretsweep/internal/ignore"
	"github.com/sirupsen/logrus"
)

type walkNode struct {
	path  string
	depth int
}

// enumerate resolves base to the ordered list of files to scan. A regular
// file is its own list; a directory is walked depth-first with each
// directory's entries visited in listing order and ignored subtrees pruned.
// A missing base or one that is neither a regular file nor a directory
// yields an empty list, never an error.
//
// The walk uses an explicit stack rather than recursion, never follows
// symlinks (directory entries are classified by Lstat, so a symlinked
// directory is simply not descended), and caps depth as a second bound
// against pathological trees.
func enumerate(base string, ign ignore.Matcher, maxDepth int, log *logrus.Logger) []string {
	st, err := os.Stat(base)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", base).Debug("scan path does not exist")
		} else {
			log.WithField("path", base).WithError(err).Warn("cannot stat scan path")
		}
		return nil
	}
	if st.Mode().IsRegular() {
		return []string{base}
	}
	if !st.IsDir() {
		log.WithField("path", base).Debug("scan path is neither file nor directory")
		return nil
	}

	var files []string
	stack := []walkNode{{path: base, depth: 0}}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir.path)
		if err != nil {
			log.WithField("dir", dir.path).WithError(err).Warn("skipping unreadable directory")
			continue
		}

		// Files are appended in listing order; subdirectories are descended
		// afterwards, also in listing order (pushed reversed so the stack
		// pops them first-listed first).
		var pending []walkNode
		for _, e := range entries {
			full := filepath.Join(dir.path, e.Name())
			rel, _ := filepath.Rel(base, full)
			if e.IsDir() {
				if defaultIgnoreDirs[e.Name()] || ign.Match(rel) {
					continue
				}
				if dir.depth+1 > maxDepth {
					log.WithField("dir", full).Warn("max depth reached, skipping subtree")
					continue
				}
				pending = append(pending, walkNode{path: full, depth: dir.depth + 1})
				continue
			}
			if !e.Type().IsRegular() {
				continue
			}
			if defaultIgnoreFiles[e.Name()] || ign.Match(rel) {
				continue
			}
			files = append(files, full)
		}
		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}
	}
	return files
}
