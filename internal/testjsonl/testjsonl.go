// Package testjsonl provides shared rollout JSONL fixture
// builders. Used by both the repair and CLI test packages.
package testjsonl

import (
	"encoding/json"
	"strings"
)

// SessionMetaJSON returns a session_meta record as a JSON string.
func SessionMetaJSON(id, cwd string) string {
	m := map[string]any{
		"type": "session_meta",
		"payload": map[string]any{
			"meta": map[string]any{
				"id":  id,
				"cwd": cwd,
			},
		},
	}
	return mustMarshal(m)
}

// TurnContextJSON returns a turn_context record as a JSON string.
func TurnContextJSON(cwd string) string {
	m := map[string]any{
		"type": "turn_context",
		"payload": map[string]any{
			"cwd": cwd,
		},
	}
	return mustMarshal(m)
}

// ResponseItemJSON returns a data-bearing record with no cwd of
// its own, so it inherits whatever context is active.
func ResponseItemJSON(role, text string) string {
	m := map[string]any{
		"type": "response_item",
		"payload": map[string]any{
			"role": role,
			"content": []any{
				map[string]any{
					"type": "input_text",
					"text": text,
				},
			},
		},
	}
	return mustMarshal(m)
}

// JoinJSONL joins records into file content with a trailing
// newline.
func JoinJSONL(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func mustMarshal(m map[string]any) string {
	b, err := json.Marshal(m)
	if err != nil {
		panic(err)
	}
	return string(b)
}
