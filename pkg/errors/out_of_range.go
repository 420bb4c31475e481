package errors

import "fmt"

// OutOfRange is used when a property value is a well-formed integer that does not fit in an int.
type OutOfRange struct {
	Key   string
	Value string
}

// Error returns a message naming the key and the offending value.
func (e OutOfRange) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("value %s is out of integer range", e.Value)
	}

	return fmt.Sprintf("value %s for property %q is out of integer range", e.Value, e.Key)
}
