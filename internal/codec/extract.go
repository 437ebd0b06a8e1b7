package codec

import "github.com/mesh-intelligence/labelstate/pkg/types"

// Extract derives the full state map from an entity's label list. Labels
// that do not parse as state labels are skipped without error; unrelated
// labels ("bug", "enhancement") are expected to coexist. Should two
// labels decode to the same key, the later one wins, which keeps the
// view well-defined even when the list arrives with duplicates.
func Extract(labels []types.Label, prefix, separator string) map[string]string {
	state := make(map[string]string)
	for _, l := range labels {
		key, value, ok := Parse(l.Name, prefix, separator)
		if !ok {
			continue
		}
		state[key] = value
	}
	return state
}
