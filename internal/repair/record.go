// Package repair recovers Codex rollout session records from
// .mixed.bak backup files. Records belonging to a target session's
// working directory are filtered out of the backup, relabeled with
// the target's identity, and merged back into the target file with
// order-preserving deduplication.
package repair

import (
	"strings"

	"github.com/gowebpki/jcs"
	"github.com/tidwall/gjson"
)

// Rollout JSONL record types that carry working-directory context.
const (
	TypeSessionMeta = "session_meta"
	TypeTurnContext = "turn_context"
)

const (
	initialLineBufSize = 64 * 1024        // 64KB
	maxRecordLen       = 20 * 1024 * 1024 // 20MB
)

// Record is a single rollout log line kept in its original byte
// form. Fields are read on demand with gjson rather than decoded
// into a struct, so record kinds this tool does not know about
// pass through untouched.
type Record struct {
	Raw string
}

// ParseRecord validates one JSONL line. Blank and malformed lines
// yield ok=false and are skipped by every caller.
func ParseRecord(line string) (Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !gjson.Valid(line) {
		return Record{}, false
	}
	return Record{Raw: line}, true
}

// Kind returns the record's type discriminator.
func (r Record) Kind() string {
	return gjson.Get(r.Raw, "type").Str
}

// declaredCwd returns the working directory a record announces,
// or "" when it announces none. Only session_meta and turn_context
// declare one; every other kind inherits the active context.
func (r Record) declaredCwd() string {
	switch r.Kind() {
	case TypeSessionMeta:
		return gjson.Get(r.Raw, "payload.meta.cwd").Str
	case TypeTurnContext:
		return gjson.Get(r.Raw, "payload.cwd").Str
	}
	return ""
}

// canonicalKey returns the RFC 8785 (JCS) form of the record, so
// two records that differ only in key order or whitespace compare
// equal. Lines that cannot be canonicalized fall back to their raw
// bytes, degrading to exact-byte equality rather than dropping the
// record.
func (r Record) canonicalKey() string {
	c, err := jcs.Transform([]byte(r.Raw))
	if err != nil {
		return r.Raw
	}
	return string(c)
}
