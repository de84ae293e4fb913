package utils

import (
	"fmt"
	"strconv"
)

// ConvertToInt converts a string to an int, returning an error for
// non-numeric input
func ConvertToInt(value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value %q", value)
	}
	return parsed, nil
}
