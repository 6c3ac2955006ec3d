package repair

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesm/rolloutrepair/internal/testjsonl"
)

func TestMergeRecords(t *testing.T) {
	a := `{"type":"response_item","payload":{"n":1}}`
	b := `{"type":"response_item","payload":{"n":2}}`
	c := `{"type":"response_item","payload":{"n":3}}`

	t.Run("first-seen order", func(t *testing.T) {
		got := MergeRecords(recordsOf(a, b, a, c, b), nil)
		want := []string{a, b, c}
		if diff := cmp.Diff(want, rawLines(got)); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("source precedes existing", func(t *testing.T) {
		got := MergeRecords(recordsOf(b), recordsOf(a, b))
		want := []string{b, a}
		if diff := cmp.Diff(want, rawLines(got)); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("idempotent on merged input", func(t *testing.T) {
		deduped := MergeRecords(recordsOf(a, b, c), nil)
		again := MergeRecords(deduped, nil)
		if diff := cmp.Diff(rawLines(deduped), rawLines(again)); diff != "" {
			t.Errorf("second merge changed output (-want +got):\n%s", diff)
		}
	})

	t.Run("structural equality ignores key order", func(t *testing.T) {
		ordered := `{"payload":{"n":1},"type":"response_item"}`
		got := MergeRecords(recordsOf(a), recordsOf(ordered))
		assert.Equal(t, []string{a}, rawLines(got))
	})

	t.Run("rehydrated duplicate wins over original position", func(t *testing.T) {
		// After rehydration the recovered session_meta can equal
		// the target's own record; the recovered copy comes first
		// in the concatenation, so it is the one kept.
		meta := testjsonl.SessionMetaJSON("T1", "/work/proj")
		data := testjsonl.ResponseItemJSON("user", "hello")

		got := MergeRecords(recordsOf(meta, data), recordsOf(meta))
		want := []string{meta, data}
		if diff := cmp.Diff(want, rawLines(got)); diff != "" {
			t.Errorf("merge mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestReadRecords(t *testing.T) {
	t.Run("tolerates malformed lines", func(t *testing.T) {
		content := testjsonl.SessionMetaJSON("a", "/w") +
			"\n\n{oops\n" +
			testjsonl.ResponseItemJSON("user", "hi") + "\n"
		path := createTestFile(t, "rollout.jsonl", content)

		assert.Len(t, ReadRecords(path), 2)
	})

	t.Run("missing file yields nil", func(t *testing.T) {
		assert.Nil(t, ReadRecords(
			filepath.Join(t.TempDir(), "nope.jsonl"),
		))
	})
}

func TestWriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	recs := recordsOf(
		testjsonl.SessionMetaJSON("a", "/w"),
		testjsonl.ResponseItemJSON("user", "hi"),
	)

	require.NoError(t, WriteRecords(path, recs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := testjsonl.JoinJSONL(recs[0].Raw, recs[1].Raw)
	assert.Equal(t, want, string(data))
}
