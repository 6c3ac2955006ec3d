package repair

import "strings"

// NormalizeCwd canonicalizes a working-directory path for
// comparison: separators become forward slashes, the Windows
// verbatim prefix is stripped, trailing separators are dropped,
// and the result is lower-cased. Total and idempotent; normalizing
// an already-normalized path is a no-op.
//
// Both verbatim spellings (`\\?\` and `//?/`) collapse to `//?/`
// once separators are replaced, so a single prefix strip covers
// them.
func NormalizeCwd(raw string) string {
	s := strings.ReplaceAll(raw, `\`, "/")
	s = strings.TrimPrefix(s, "//?/")
	s = strings.TrimRight(s, "/")
	return strings.ToLower(s)
}
