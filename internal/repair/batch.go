package repair

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Stats aggregates one batch run.
type Stats struct {
	Scanned   int
	Repaired  int
	ByOutcome map[Outcome]int
}

// Run repairs every rollout jsonl file under root, recursively.
// Files are processed independently and in walk order; a failed
// repair is counted, never fatal. The only error is a root
// directory that does not exist.
func Run(root string, dryRun bool) (Stats, error) {
	stats := Stats{ByOutcome: make(map[Outcome]int)}

	if _, err := os.Stat(root); err != nil {
		return stats, fmt.Errorf("root %s: %w", root, err)
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isRolloutTarget(d.Name()) {
			return nil
		}
		stats.Scanned++
		outcome := RepairFile(path, dryRun)
		stats.ByOutcome[outcome]++
		if outcome == OutcomeRepaired {
			stats.Repaired++
		}
		return nil
	})
	return stats, nil
}

// isRolloutTarget reports whether name is a repairable rollout
// file: rollout-*.jsonl and not itself a backup.
func isRolloutTarget(name string) bool {
	return strings.HasPrefix(name, rolloutPrefix) &&
		strings.HasSuffix(name, jsonlSuffix) &&
		!strings.HasSuffix(name, backupSuffix)
}
