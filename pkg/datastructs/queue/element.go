package queue

import (
	"encoding/json"
	"math"
)

// IsValidNumber reports whether f is a finite number.
// NaN and both infinities are rejected.
func IsValidNumber(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsValidElement reports whether v can be stored in a queue.
func IsValidElement(v any) bool {
	_, ok := ToElement(v)
	return ok
}

// ToElement converts a type-erased value to a queue element.
// Only Go numeric kinds and json.Number are accepted; the result must be finite.
func ToElement(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if !IsValidNumber(f) {
		return 0, false
	}
	return f, true
}
