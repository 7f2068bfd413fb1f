package application

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"keyframer/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "padCount" -> "pad count")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"track":    "track name",
		"path":     "file path",
		"padCount": "pad count",
		"fromTime": "source time",
		"toTime":   "destination time",
		"dir":      "output directory",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ParseTime parses a non-negative, finite time. The result is rounded to
// the keyframe resolution.
func ParseTime(fieldName, s string) (float64, error) {
	v, err := parseFloat(fieldName, s)
	if err != nil {
		return 0, err
	}
	if err := ValidateTime(fieldName, v); err != nil {
		return 0, err
	}
	return domain.RoundTime(v), nil
}

// ValidateTime rejects negative and non-finite times
func ValidateTime(fieldName string, t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return &ValidationError{Field: fieldName, Message: fmt.Sprintf("not a number: %v", t)}
	}
	if t < 0 {
		return &ValidationError{Field: fieldName, Message: fmt.Sprintf("cannot be negative: %v", t)}
	}
	return nil
}

// ParseValue parses a finite node value
func ParseValue(s string) (float64, error) {
	return parseFloat("value", s)
}

// ParseMode parses a mode name or integer code
func ParseMode(s string) (Mode, error) {
	return domain.ParseMode(s)
}

// ValidatePadCount rejects negative pad counts
func ValidatePadCount(n int) error {
	if n < 0 {
		return &ValidationError{
			Field:   "padCount",
			Message: fmt.Sprintf("pad count cannot be negative: %d", n),
		}
	}
	return nil
}

func parseFloat(fieldName, s string) (float64, error) {
	if err := ValidateRequired(fieldName, s); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("not a number: %q", s),
		}
	}
	return v, nil
}
