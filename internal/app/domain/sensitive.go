package domain

import "encoding/json"

// Masked is printed wherever a Sensitive value would otherwise be rendered.
const Masked = "****"

// Sensitive is a string that must never be written to a log or a response.
// Only Reveal returns the underlying value.
type Sensitive string

// Reveal returns the plain text value
func (s Sensitive) Reveal() string {
	return string(s)
}

func (s Sensitive) String() string {
	return Masked
}

// GoString keeps %#v from leaking the value
func (s Sensitive) GoString() string {
	return Masked
}

func (s Sensitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(Masked)
}
