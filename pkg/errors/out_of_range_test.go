package errors

import (
	"testing"
)

func TestOutOfRange_Error(t *testing.T) {
	testCases := []struct {
		error        OutOfRange
		errorMessage string
	}{
		{
			error:        OutOfRange{Key: "retries", Value: "99999999999999999999"},
			errorMessage: `value 99999999999999999999 for property "retries" is out of integer range`,
		},
		{
			error:        OutOfRange{Value: "-99999999999999999999"},
			errorMessage: "value -99999999999999999999 is out of integer range",
		},
	}

	for _, tc := range testCases {
		if tc.error.Error() != tc.errorMessage {
			t.Errorf("FAILED, Expected: %v, Got: %v", tc.errorMessage, tc.error.Error())
		}
	}
}
