// Package audit keeps an append-only JSONL journal of past scans. Records
// carry locations and classifications only; matched values never reach disk
// through this package.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/secretsweep/secretsweep/internal/types"
)

// FindingSummary locates a finding without reproducing its value.
type FindingSummary struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
}

// Record is one journal entry describing a completed scan.
type Record struct {
	Timestamp      time.Time        `json:"timestamp"`
	ScanID         string           `json:"scan_id"`
	Root           string           `json:"root"`
	TotalFindings  int              `json:"total_findings"`
	SeverityCounts map[string]int   `json:"severity_counts"`
	FilesScanned   int              `json:"files_scanned"`
	Duration       string           `json:"duration"`
	Findings       []FindingSummary `json:"findings,omitempty"`
}

// Log appends to and reads from one journal file.
type Log struct {
	path string
}

// New returns the journal for a scan root, preferring .git/ as its home so
// the file does not get committed by accident.
func New(root string) *Log {
	path := filepath.Join(root, ".secretsweep_audit.jsonl")
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		path = filepath.Join(gitDir, "secretsweep_audit.jsonl")
	}
	return &Log{path: path}
}

// NewRecord summarizes one scan into a journal entry.
func NewRecord(root string, findings []types.Finding, filesScanned int, duration time.Duration) Record {
	counts := map[string]int{}
	summaries := make([]FindingSummary, 0, len(findings))
	for _, f := range findings {
		counts[string(f.Severity)]++
		summaries = append(summaries, FindingSummary{
			File:     f.File,
			Line:     f.Line,
			Type:     f.Type,
			Severity: string(f.Severity),
		})
	}
	return Record{
		Timestamp:      time.Now(),
		Root:           root,
		TotalFindings:  len(findings),
		SeverityCounts: counts,
		FilesScanned:   filesScanned,
		Duration:       duration.String(),
		Findings:       summaries,
	}
}

// Append writes one record to the journal, assigning a scan ID when missing.
func (l *Log) Append(rec Record) error {
	if rec.ScanID == "" {
		rec.ScanID = fmt.Sprintf("scan_%d", time.Now().UnixNano())
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns past records, newest first. Corrupt lines are skipped.
func (l *Log) History() ([]Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []Record
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
