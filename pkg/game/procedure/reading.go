package procedure

import (
	"fmt"
	"strconv"
	"strings"
)

// Reading is a measured value in tenths (2.5 ppm is Reading(25)) so that
// derived readings compare exactly.
type Reading int

// ParseReading parses a decimal with at most one fractional digit ("2", "2.5", "-0.5").
func ParseReading(s string) (Reading, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	whole, frac, hasFrac := strings.Cut(digits, ".")
	if whole == "" || (hasFrac && len(frac) != 1) {
		return 0, fmt.Errorf("invalid reading %q: want at most one decimal place", s)
	}

	w, err := strconv.Atoi(whole)
	if err != nil || w < 0 {
		return 0, fmt.Errorf("invalid reading %q", s)
	}
	r := w * 10
	if hasFrac {
		f, err := strconv.Atoi(frac)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid reading %q", s)
		}
		r += f
	}
	if neg {
		r = -r
	}
	return Reading(r), nil
}

// String formats the reading with one decimal place
func (r Reading) String() string {
	sign := ""
	v := int(r)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}

// Range is an inclusive ideal range for an observable.
type Range struct {
	Min Reading
	Max Reading
}

// Status is where a reading falls relative to its ideal range.
type Status int

const (
	StatusOK Status = iota
	StatusLow
	StatusHigh
)

// Classify reports whether r is below, inside or above the range
func (rg Range) Classify(r Reading) Status {
	switch {
	case r < rg.Min:
		return StatusLow
	case r > rg.Max:
		return StatusHigh
	default:
		return StatusOK
	}
}
