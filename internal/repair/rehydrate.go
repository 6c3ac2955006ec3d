package repair

import "github.com/tidwall/sjson"

// Rehydrate overwrites a record's identity fields with the target
// session's cwd and id. session_meta gets both payload.meta.cwd
// and payload.meta.id; turn_context carries no id and gets only
// payload.cwd. All other kinds are returned unchanged, and every
// byte outside the overwritten fields is preserved as-is.
func Rehydrate(rec Record, cwd, id string) Record {
	switch rec.Kind() {
	case TypeSessionMeta:
		raw, err := sjson.Set(rec.Raw, "payload.meta.cwd", cwd)
		if err != nil {
			return rec
		}
		raw, err = sjson.Set(raw, "payload.meta.id", id)
		if err != nil {
			return rec
		}
		return Record{Raw: raw}
	case TypeTurnContext:
		raw, err := sjson.Set(rec.Raw, "payload.cwd", cwd)
		if err != nil {
			return rec
		}
		return Record{Raw: raw}
	}
	return rec
}
