package types

// Label is a named tag attached to an entity and, independently,
// registered in the repository-wide catalog. The name is the identity:
// two labels are the same label exactly when their names are equal.
// Color and description ride along from the API but carry no meaning
// for state storage.
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// Entity identifies an issue or pull request by its number within a
// repository. It is the unit other-usage checks count against.
type Entity struct {
	Number int `json:"number"`
}

// Names returns the label names in list order.
func Names(labels []Label) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return names
}
