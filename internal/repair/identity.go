package repair

import (
	"log"
	"os"

	"github.com/tidwall/gjson"
)

// ExtractIdentity returns the working directory and session id
// declared by the first session_meta record in a rollout file.
// Both are "" when the file is missing, unreadable, or contains no
// session_meta record; a missing file is silent, any other open
// error is logged and treated the same way.
func ExtractIdentity(path string) (cwd, id string) {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: reading meta from %s: %v", path, err)
		}
		return "", ""
	}
	defer f.Close()

	lr := newLineReader(f, maxRecordLen)
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		rec, ok := ParseRecord(line)
		if !ok || rec.Kind() != TypeSessionMeta {
			continue
		}
		meta := gjson.Get(rec.Raw, "payload.meta")
		return meta.Get("cwd").Str, meta.Get("id").Str
	}
	return "", ""
}
