package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/secretsweep/secretsweep/internal/rules"
	"github.com/secretsweep/secretsweep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "creds.txt"), awsAccessKey+"\n")
	writeFile(t, filepath.Join(dir, "node_modules", "leak.js"), awsAccessKey+"\n")
	writeFile(t, filepath.Join(dir, ".env"), "AWS_KEY="+awsAccessKey+"\n")

	res, err := ScanWithStats(Options{Root: dir, Logger: quietLogger()})
	require.NoError(t, err)
	require.Len(t, res.Findings, 2)
	assert.Equal(t, 2, res.FilesScanned)

	byType := map[string]types.Finding{}
	for _, f := range res.Findings {
		byType[f.Type] = f
	}
	aws := byType["AWS Access Key ID"]
	assert.Equal(t, filepath.Join(dir, "creds.txt"), aws.File)
	assert.Equal(t, types.SevHigh, aws.Severity)
	assert.Equal(t, awsAccessKey, aws.Value)
	assert.Equal(t, 1, aws.Line)

	env := byType[rules.TypeLocalEnv]
	assert.Equal(t, types.SevInfo, env.Severity)
	assert.Equal(t, filepath.Join(dir, ".env"), env.File)
}

func TestScanNonexistentRoot(t *testing.T) {
	res, err := ScanWithStats(Options{
		Root:   filepath.Join(t.TempDir(), "missing"),
		Logger: quietLogger(),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Findings)
	assert.Zero(t, res.FilesScanned)
}

func TestScanSingleFileRoot(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "one.txt")
	writeFile(t, p, "x\n"+awsAccessKey+"\n")

	findings, err := Scan(Options{Root: p, Logger: quietLogger()})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, p, findings[0].File)
	assert.Equal(t, 2, findings[0].Line)
}

func TestScanCacheReplayIsIdentical(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), awsAccessKey+"\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "nothing here\n")

	first, err := ScanWithStats(Options{Root: dir, Logger: quietLogger()})
	require.NoError(t, err)

	// Second scan hits the cache for every file; output must be identical.
	second, err := ScanWithStats(Options{Root: dir, Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, first.Findings, second.Findings)
	assert.Equal(t, first.FilesScanned, second.FilesScanned)

	// And identical to a cache-free scan.
	third, err := ScanWithStats(Options{Root: dir, NoCache: true, Logger: quietLogger()})
	require.NoError(t, err)
	assert.Equal(t, first.Findings, third.Findings)
}

func TestScanCacheInvalidatedOnChange(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	writeFile(t, p, "clean\n")

	res, err := ScanWithStats(Options{Root: dir, Logger: quietLogger()})
	require.NoError(t, err)
	require.Empty(t, res.Findings)

	writeFile(t, p, awsAccessKey+"\n")
	res, err = ScanWithStats(Options{Root: dir, Logger: quietLogger()})
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
}

func TestScanIgnorePatternOption(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "secrets.bak"), awsAccessKey+"\n")
	writeFile(t, filepath.Join(dir, "keep.txt"), awsAccessKey+"\n")

	findings, err := Scan(Options{
		Root:           dir,
		IgnorePatterns: []string{"*.bak"},
		Logger:         quietLogger(),
	})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, filepath.Join(dir, "keep.txt"), findings[0].File)
}

func TestScanSweepignoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, IgnoreFileName), "# local excludes\nfixtures/**\n")
	writeFile(t, filepath.Join(dir, "fixtures", "seed.txt"), awsAccessKey+"\n")
	writeFile(t, filepath.Join(dir, "real.txt"), awsAccessKey+"\n")

	findings, err := Scan(Options{Root: dir, Logger: quietLogger()})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, filepath.Join(dir, "real.txt"), findings[0].File)
}

func TestScanSkipsOversizedAndBinary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "big.txt"), awsAccessKey+"\n"+strings.Repeat("a", 2048))
	writeFile(t, filepath.Join(dir, "bin.dat"), awsAccessKey+"\x00\x00")
	writeFile(t, filepath.Join(dir, "ok.txt"), awsAccessKey+"\n")

	findings, err := Scan(Options{Root: dir, MaxBytes: 1024, Logger: quietLogger()})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, filepath.Join(dir, "ok.txt"), findings[0].File)
}

func TestScanContinuesPastUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are advisory for root")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked.txt")
	writeFile(t, locked, awsAccessKey+"\n")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0644) })
	writeFile(t, filepath.Join(dir, "open.txt"), awsAccessKey+"\n")

	findings, err := Scan(Options{Root: dir, Logger: quietLogger()})
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, filepath.Join(dir, "open.txt"), findings[0].File)
}
