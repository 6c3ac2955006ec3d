package repair

import (
	"bytes"
	"fmt"
	"os"
)

// ReadRecords reparses a rollout file, skipping blank and
// malformed lines. A missing or unreadable file yields nil.
func ReadRecords(path string) []Record {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var recs []Record
	lr := newLineReader(f, maxRecordLen)
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		if rec, ok := ParseRecord(line); ok {
			recs = append(recs, rec)
		}
	}
	return recs
}

// MergeRecords concatenates recovered records ahead of the
// target's existing ones and removes exact duplicates, keeping the
// first occurrence of each and preserving first-seen order.
// Equality is structural (canonical form), so a duplicate is
// dropped even when its key order or whitespace differs. Merging
// an already-deduplicated sequence with an empty one returns it
// unchanged.
func MergeRecords(source, existing []Record) []Record {
	seen := make(map[string]struct{}, len(source)+len(existing))
	out := make([]Record, 0, len(source)+len(existing))
	for _, seq := range [][]Record{source, existing} {
		for _, rec := range seq {
			key := rec.canonicalKey()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, rec)
		}
	}
	return out
}

// WriteRecords overwrites path with one record per line. The write
// is a plain truncate-and-rewrite: a crash mid-write can leave the
// file truncated, which callers accept for this tool.
func WriteRecords(path string, recs []Record) error {
	var buf bytes.Buffer
	for _, rec := range recs {
		buf.WriteString(rec.Raw)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
