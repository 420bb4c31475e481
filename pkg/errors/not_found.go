package errors

import "fmt"

// NotFound is returned by a property store when the requested key has no value.
type NotFound struct {
	Key string
}

func (e NotFound) Error() string {
	return fmt.Sprintf("property %q not found", e.Key)
}
