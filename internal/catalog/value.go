package catalog

import (
	"fmt"
	"strconv"
)

// CastValue coerces the raw text of a statement literal into the typed
// value for a column. Rows only ever hold values produced here (or
// normalized by NormalizeValue on snapshot load), so comparisons can
// assume one concrete Go type per column type.
func CastValue(raw string, ct ColumnType) (interface{}, error) {
	switch ct {
	case ColumnTypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to int: %w", raw, err)
		}
		return n, nil
	case ColumnTypeText:
		return raw, nil
	case ColumnTypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to float: %w", raw, err)
		}
		return f, nil
	case ColumnTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot cast %q to bool: %w", raw, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown column type %q", ct)
	}
}

// NormalizeValue converts a value decoded from the snapshot into the
// canonical in-memory representation for the column type. JSON numbers
// arrive as float64; Int columns normalize back to int64.
func NormalizeValue(val interface{}, ct ColumnType) (interface{}, bool) {
	switch ct {
	case ColumnTypeInt:
		switch v := val.(type) {
		case int64:
			return v, true
		case int:
			return int64(v), true
		case float64:
			if v == float64(int64(v)) {
				return int64(v), true
			}
		}
	case ColumnTypeText:
		if s, ok := val.(string); ok {
			return s, true
		}
	case ColumnTypeFloat:
		switch v := val.(type) {
		case float64:
			return v, true
		case int64:
			return float64(v), true
		case int:
			return float64(v), true
		}
	case ColumnTypeBool:
		if b, ok := val.(bool); ok {
			return b, true
		}
	}
	return nil, false
}

// ValueKey stringifies a typed value for use as an equality-index key.
func ValueKey(val interface{}) string {
	switch v := val.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Compare orders two typed values of the same column type.
// Returns -1, 0 or 1; false if the values are not comparable.
func Compare(a, b interface{}) (int, bool) {
	switch av := a.(type) {
	case int64:
		bv, ok := b.(int64)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		// false sorts before true
		switch {
		case !av && bv:
			return -1, true
		case av && !bv:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Satisfies evaluates a comparison operator against two typed values.
// Values of mismatched types never satisfy any operator.
func Satisfies(a interface{}, op string, b interface{}) bool {
	cmp, ok := Compare(a, b)
	if !ok {
		return false
	}
	switch op {
	case "=":
		return cmp == 0
	case "!=":
		return cmp != 0
	case ">":
		return cmp > 0
	case "<":
		return cmp < 0
	case ">=":
		return cmp >= 0
	case "<=":
		return cmp <= 0
	}
	return false
}
