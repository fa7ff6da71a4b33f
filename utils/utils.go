package utils

import (
	"fmt"
	"strconv"
)

// ToString formats value the way template text is displayed.
func ToString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	}

	return fmt.Sprintf("%v", value)
}

// IsScalar reports whether value has a plain text form: strings, Stringers,
// booleans and numbers.
func IsScalar(value interface{}) bool {
	switch value.(type) {
	case string, fmt.Stringer, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}

	return false
}
