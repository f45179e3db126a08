package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates a ULID string identifying one invocation of the tool.
// Log lines of the same run share it.
var NewRunID = func() string {
	return ulid.Make().String()
}

// IsValid reports whether s is a well-formed ULID.
func IsValid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
