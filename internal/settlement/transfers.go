package settlement

import "strings"

// MergeTransferRecords reconciles previously recorded payout transfer ids
// with newly completed ones.
//
// The artist and venue transfers for one order are issued as two independent
// gateway calls that fail and retry on independent schedules, so any single
// attempt may report zero, one or both ids. Every string-valued, non-blank
// entry found in existing is seeded into an accumulator keyed by recipient
// role, then each update map is overlaid on top. A partial update can
// therefore never erase a role recorded on an earlier attempt.
//
// existing comes from a jsonb column that predates this code and may hold
// anything: null, a bare object, a list with non-object members. Malformed
// entries are skipped, never an error. The result is the merged record
// wrapped in a one-element slice, or an empty slice when nothing valid was
// ever recorded.
func MergeTransferRecords(existing any, updates []map[string]string) []map[string]string {
	merged := make(map[string]string)

	for _, entry := range normalizeRecords(existing) {
		for role, id := range entry {
			if strings.TrimSpace(id) == "" {
				continue
			}
			merged[role] = id
		}
	}

	for _, update := range updates {
		for role, id := range update {
			if strings.TrimSpace(id) == "" {
				continue
			}
			merged[role] = id
		}
	}

	if len(merged) == 0 {
		return []map[string]string{}
	}
	return []map[string]string{merged}
}

// normalizeRecords flattens the historical storage shapes into clean
// role-to-id maps, dropping whatever does not fit.
func normalizeRecords(existing any) []map[string]string {
	var out []map[string]string

	appendEntry := func(raw map[string]any) {
		entry := make(map[string]string)
		for role, v := range raw {
			if id, ok := v.(string); ok {
				entry[role] = id
			}
		}
		if len(entry) > 0 {
			out = append(out, entry)
		}
	}

	switch v := existing.(type) {
	case nil:
	case []map[string]string:
		out = append(out, v...)
	case map[string]string:
		out = append(out, v)
	case map[string]any:
		appendEntry(v)
	case []any:
		for _, item := range v {
			if raw, ok := item.(map[string]any); ok {
				appendEntry(raw)
			}
		}
	}

	return out
}
