package engine

// Directory names pruned during traversal regardless of caller-supplied
// ignore patterns. Kept intentionally small; everything else is the caller's
// call via ignore globs.
var defaultIgnoreDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// Files secretsweep itself writes into the scan root. Scanning them would
// re-report cached finding values on the next run.
var defaultIgnoreFiles = map[string]bool{
	".secretsweep_cache.json":  true,
	".secretsweep_audit.jsonl": true,
}

// looksBinary reports whether content is likely non-text. A NUL byte in the
// sniff window is treated as binary; pattern and entropy scanning of such
// content yields only noise.
func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
