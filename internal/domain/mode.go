package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the interpolation mode stored on a node. It is carried through
// exports as-is and never evaluated here.
type Mode int

const (
	ModeStep Mode = iota
	ModeLinear
	ModeQuadraticIn
	ModeQuadraticOut
	ModeSmoothstep
)

var modeNames = [...]string{
	ModeStep:         "Step",
	ModeLinear:       "Linear",
	ModeQuadraticIn:  "QuadraticIn",
	ModeQuadraticOut: "QuadraticOut",
	ModeSmoothstep:   "Smoothstep",
}

// Modes returns every mode in code order
func Modes() []Mode {
	return []Mode{ModeStep, ModeLinear, ModeQuadraticIn, ModeQuadraticOut, ModeSmoothstep}
}

// Valid reports whether m is a member of the enum
func (m Mode) Valid() bool {
	return m >= ModeStep && m <= ModeSmoothstep
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next returns the following mode, wrapping back to Step after Smoothstep
func (m Mode) Next() Mode {
	if !m.Valid() {
		return ModeStep
	}
	return (m + 1) % Mode(len(modeNames))
}

// ModeFromCode converts a serialized integer code into a Mode
func ModeFromCode(code int) (Mode, error) {
	m := Mode(code)
	if !m.Valid() {
		return 0, &ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("unknown mode code %d (expected 0-%d)", code, len(modeNames)-1),
		}
	}
	return m, nil
}

// ParseMode accepts either a mode name (case-insensitive, "quadratic_in"
// and "QUADRATIC_IN" spellings included) or its integer code.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if code, err := strconv.Atoi(s); err == nil {
		return ModeFromCode(code)
	}

	normalized := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	for i, name := range modeNames {
		if strings.ToLower(name) == normalized {
			return Mode(i), nil
		}
	}

	return 0, &ValidationError{
		Field:   "mode",
		Message: fmt.Sprintf("unknown mode %q", s),
	}
}
