package repair

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	rolloutPrefix = "rollout-"
	backupSuffix  = ".mixed.bak"
	jsonlSuffix   = ".jsonl"

	// Fixed-width timestamp segment: YYYY-MM-DDThh-mm-ss.
	timestampLen = 19
)

// Outcome is the terminal state of one file's repair attempt.
// Everything except OutcomeRepaired counts as "not repaired".
type Outcome int

const (
	OutcomeRepaired Outcome = iota
	OutcomeNoIdentity
	OutcomeNoTimestamp
	OutcomeNoCandidate
	OutcomeNoMatchingRecords
	OutcomeWriteFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRepaired:
		return "repaired"
	case OutcomeNoIdentity:
		return "no session identity"
	case OutcomeNoTimestamp:
		return "no timestamp in filename"
	case OutcomeNoCandidate:
		return "no backup candidate"
	case OutcomeNoMatchingRecords:
		return "no matching records"
	case OutcomeWriteFailed:
		return "write failed"
	}
	return "unknown"
}

// RepairFile runs the full repair pipeline against one rollout
// file: extract the target identity, locate the sibling backup
// with the same timestamp prefix, filter the backup by working
// directory, relabel, merge, and overwrite. dryRun suppresses the
// final write but reports the outcome the write would have had.
func RepairFile(path string, dryRun bool) Outcome {
	cwd, id := ExtractIdentity(path)
	if cwd == "" || id == "" {
		return OutcomeNoIdentity
	}
	targetCwd := NormalizeCwd(cwd)

	tsPrefix := timestampPrefix(filepath.Base(path))
	if tsPrefix == "" {
		return OutcomeNoTimestamp
	}

	backup := findBackup(filepath.Dir(path), tsPrefix)
	if backup == "" {
		return OutcomeNoCandidate
	}

	recovered := CollectMatchingRecords(backup, targetCwd)
	if len(recovered) == 0 {
		return OutcomeNoMatchingRecords
	}

	for i, rec := range recovered {
		recovered[i] = Rehydrate(rec, cwd, id)
	}

	// Recovered history goes first, then whatever the target
	// already holds.
	merged := MergeRecords(recovered, ReadRecords(path))

	if dryRun {
		return OutcomeRepaired
	}
	if err := WriteRecords(path, merged); err != nil {
		log.Printf("warning: %v", err)
		return OutcomeWriteFailed
	}
	return OutcomeRepaired
}

// timestampPrefix extracts the fixed-width timestamp segment that
// immediately follows the rollout- marker in a file name, or ""
// when the name does not carry one.
func timestampPrefix(name string) string {
	if !strings.HasPrefix(name, rolloutPrefix) {
		return ""
	}
	rest := name[len(rolloutPrefix):]
	if len(rest) < timestampLen {
		return ""
	}
	return rest[:timestampLen]
}

// findBackup returns the path of the .mixed.bak file in dir that
// shares the rollout timestamp prefix, or "". With several
// candidates the longest name wins (most specific); the sort is
// stable over os.ReadDir's lexical order, so ties resolve
// deterministically.
func findBackup(dir, tsPrefix string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	want := rolloutPrefix + tsPrefix + "-"
	var candidates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, want) &&
			strings.HasSuffix(name, backupSuffix) {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i]) > len(candidates[j])
	})
	return filepath.Join(dir, candidates[0])
}
