package repair

import "os"

// CollectMatchingRecords reads a backup rollout file and returns,
// in order, the records that belong to targetCwd. targetCwd must
// already be normalized.
//
// The scan folds an active-context accumulator over the file:
// session_meta and turn_context records with a non-empty cwd move
// the context, and every record is kept while the context equals
// the target — including the record that moved it there. Records
// without a cwd of their own inherit the context, which is how
// data-bearing records are included or excluded as a block.
//
// A missing or unreadable source yields an empty sequence, not an
// error.
func CollectMatchingRecords(path, targetCwd string) []Record {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var (
		matched []Record
		active  string
	)
	lr := newLineReader(f, maxRecordLen)
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		rec, ok := ParseRecord(line)
		if !ok {
			continue
		}

		if cwd := rec.declaredCwd(); cwd != "" {
			active = NormalizeCwd(cwd)
		}
		if active != "" && active == targetCwd {
			matched = append(matched, rec)
		}
	}
	return matched
}
