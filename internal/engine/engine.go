package engine

import (
	"os"
	"path/filepath"
	"time"

	"github.com/secretsweep/secretsweep/internal/cache"
	"github.com/secretsweep/secretsweep/internal/ignore"
	"github.com/secretsweep/secretsweep/internal/rules"
	"github.com/secretsweep/secretsweep/internal/types"
	"github.com/sirupsen/logrus"
)

// IgnoreFileName is the per-root ignore file read before every scan.
const IgnoreFileName = ".sweepignore"

const defaultMaxDepth = 40

// Options controls one scan invocation.
type Options struct {
	// Root is the base path to scan: a file or a directory. Empty means the
	// current directory.
	Root string

	// IgnorePatterns are doublestar globs excluded from the walk, applied on
	// top of the built-in directory set and the root's .sweepignore file.
	IgnorePatterns []string

	// MaxBytes skips files larger than this when > 0.
	MaxBytes int64

	// MaxDepth bounds directory nesting; <= 0 selects the default (40).
	MaxDepth int

	// NoCache disables the incremental cache.
	NoCache bool

	// Rules overrides the default rule table; nil means rules.Default().
	Rules []rules.Rule

	// Logger receives operator diagnostics (skipped files, I/O failures).
	// Findings never pass through it. Nil selects a stderr logger.
	Logger *logrus.Logger
}

// Result carries the findings of one scan plus basic statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
}

// Scan runs a scan and returns only findings.
func Scan(opts Options) ([]types.Finding, error) {
	res, err := ScanWithStats(opts)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats runs a full scan of opts.Root. Per-file and per-subtree I/O
// failures never abort the scan: they are logged to opts.Logger and collapse
// to empty finding lists. A nonexistent root yields an empty Result.
//
// Findings are ordered by file enumeration order; within a file, rule
// findings (line order, then rule order) precede entropy findings.
func ScanWithStats(opts Options) (Result, error) {
	var res Result

	root := opts.Root
	if root == "" {
		root = "."
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	ruleset := opts.Rules
	if ruleset == nil {
		ruleset = rules.Default()
	}

	rootInfo, statErr := os.Stat(root)
	isDir := statErr == nil && rootInfo.IsDir()

	ign := ignore.New(nil)
	if isDir {
		loaded, err := ignore.Load(filepath.Join(root, IgnoreFileName))
		if err != nil {
			log.WithError(err).Warn("cannot read ignore file")
		} else {
			ign = loaded
		}
	}
	ign = ign.Append(opts.IgnorePatterns...)

	useCache := !opts.NoCache && isDir
	db := cache.DB{Entries: map[string]cache.Entry{}}
	if useCache {
		if loaded, err := cache.Load(root); err == nil {
			db = loaded
		}
	}
	dirty := false

	started := time.Now()
	for _, path := range enumerate(root, ign, maxDepth, log) {
		data, err := os.ReadFile(path)
		if err != nil {
			log.WithField("file", path).WithError(err).Warn("skipping unreadable file")
			continue
		}
		if opts.MaxBytes > 0 && int64(len(data)) > opts.MaxBytes {
			log.WithField("file", path).Debug("skipping oversized file")
			continue
		}
		if looksBinary(data) {
			log.WithField("file", path).Debug("skipping binary file")
			continue
		}

		res.FilesScanned++
		h := cache.Hash(data)
		if useCache {
			if cached, ok := db.Lookup(path, h); ok {
				res.Findings = append(res.Findings, cached...)
				continue
			}
		}
		found := scanContent(path, data, ruleset)
		res.Findings = append(res.Findings, found...)
		if useCache {
			db.Entries[path] = cache.Entry{Hash: h, Findings: found}
			dirty = true
		}
	}
	res.Duration = time.Since(started)

	if useCache && dirty {
		if err := cache.Save(root, db); err != nil {
			log.WithError(err).Warn("cannot write scan cache")
		}
	}
	return res, nil
}
