package types

// Result is the per-invocation outcome record. Value is set by Get
// (nil when the key is absent), State by GetAll (a JSON object of the
// full state map). Set and Remove report only Success.
type Result struct {
	Success bool    `json:"success"`
	Value   *string `json:"value,omitempty"`
	State   string  `json:"state,omitempty"`
}

// OK wraps a bare success flag.
func OK() Result {
	return Result{Success: true}
}

// Failed is the uniform unsuccessful result.
func Failed() Result {
	return Result{Success: false}
}
