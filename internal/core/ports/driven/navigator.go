package driven

// QueryParam is the deep-link parameter holding the current topic key.
const QueryParam = "q"

// Navigator abstracts the address bar: the query state used for deep links.
// SetQueryParam pushes a new history entry rather than replacing the current one.
type Navigator interface {
	// QueryParam returns the value of name, or "" when absent.
	QueryParam(name string) string

	// SetQueryParam records name=value as a new history entry.
	SetQueryParam(name, value string) error
}
