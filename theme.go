// File: docconf/theme.go
package docconf

import (
	"fmt"
	"reflect"
	"strconv"
)

// ThemeString retrieves a string theme option by key.
// Attempts conversion from common types if the stored value isn't already a string.
func (rc *ResolvedConfig) ThemeString(key string) (string, error) {
	val, found := rc.Theme[key]
	if !found {
		return "", fmt.Errorf("theme option not set: %s", key)
	}
	if val == nil {
		return "", nil
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for theme option %s", val, key)
	}
}

// ThemeInt64 retrieves an integer theme option by key.
// Attempts conversion from numeric types and parsable strings.
func (rc *ResolvedConfig) ThemeInt64(key string) (int64, error) {
	val, found := rc.Theme[key]
	if !found {
		return 0, fmt.Errorf("theme option not set: %s", key)
	}
	if val == nil {
		return 0, fmt.Errorf("theme option %s is nil, cannot convert to int64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		} else {
			return 0, fmt.Errorf("cannot convert string %q to int64 for theme option %s: %w", s, key, err)
		}
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for theme option %s", val, key)
}

// ThemeBool retrieves a boolean theme option by key.
// Attempts conversion from numeric types (0=false, non-zero=true) and parsable strings.
func (rc *ResolvedConfig) ThemeBool(key string) (bool, error) {
	val, found := rc.Theme[key]
	if !found {
		return false, fmt.Errorf("theme option not set: %s", key)
	}
	if val == nil {
		return false, fmt.Errorf("theme option %s is nil, cannot convert to bool", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		s := v.String()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		} else {
			return false, fmt.Errorf("cannot convert string %q to bool for theme option %s: %w", s, key, err)
		}
	// Numeric interpretation: 0 is false, non-zero is true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for theme option %s", val, key)
}
