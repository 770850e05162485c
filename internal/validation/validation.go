// Package validation evaluates declarative field rules.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rule pairs a value with optional constraints. Length bounds apply only to
// string values and numeric bounds only to numeric values.
type Rule struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Int returns a pointer to n for use as a length bound.
func Int(n int) *int {
	return &n
}

// Float returns a pointer to f for use as a numeric bound.
func Float(f float64) *float64 {
	return &f
}

// Validate reports whether every declared constraint of rule holds.
func Validate(rule Rule) bool {
	valid := true

	if rule.Required {
		valid = valid && len(strings.TrimSpace(formatValue(rule.Value))) != 0
	}

	if s, ok := rule.Value.(string); ok {
		length := utf8.RuneCountInString(s)
		if rule.MinLength != nil {
			valid = valid && length >= *rule.MinLength
		}
		if rule.MaxLength != nil {
			valid = valid && length <= *rule.MaxLength
		}
	}

	if n, ok := numeric(rule.Value); ok {
		// Comparisons against NaN are always false.
		if rule.Min != nil {
			valid = valid && n >= *rule.Min
		}
		if rule.Max != nil {
			valid = valid && n <= *rule.Max
		}
	}

	return valid
}

// ValidateAll reports whether all rules pass.
func ValidateAll(rules ...Rule) bool {
	for _, rule := range rules {
		if !Validate(rule) {
			return false
		}
	}
	return true
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
