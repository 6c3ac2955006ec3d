package repair

import (
	"os"
	"path/filepath"
	"testing"
)

func createTestFile(
	t *testing.T, name, content string,
) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(
		path, []byte(content), 0o644,
	); err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	return path
}

func createFileIn(
	t *testing.T, dir, name, content string,
) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(
		path, []byte(content), 0o644,
	); err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	return path
}

// rawLines flattens records to their raw strings for comparison.
func rawLines(recs []Record) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Raw
	}
	return out
}

func recordsOf(lines ...string) []Record {
	recs := make([]Record, len(lines))
	for i, line := range lines {
		recs[i] = Record{Raw: line}
	}
	return recs
}
