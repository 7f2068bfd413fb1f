package domain

import (
	"fmt"
	"math"
	"strconv"
)

// RoundTime rounds t to two decimal places, the resolution at which keyframe
// times are compared and stored.
func RoundTime(t float64) float64 {
	scaled := t * 100
	if math.IsInf(scaled, 0) {
		return t // too large to carry a fraction
	}
	r := math.Round(scaled) / 100
	if r == 0 {
		return 0 // normalize -0
	}
	return r
}

// checkTime validates a time value and returns it rounded
func checkTime(field string, t float64) (float64, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("not a number: %v", t)}
	}
	if t < 0 {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("cannot be negative: %v", t)}
	}
	return RoundTime(t), nil
}

func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: "value", Message: fmt.Sprintf("not a number: %v", v)}
	}
	return nil
}

// FormatNumber prints a float in its shortest exact form ("0", "1", "0.25").
// Magnitudes of 1e21 and above use an exponent ("1e+300").
func FormatNumber(v float64) string {
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
