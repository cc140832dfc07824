package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BlankDurationMinutes is applied when a duration field is left empty.
const BlankDurationMinutes = 25

// ValidateDurationMinutes rejects interval lengths outside
// [0, MaxDurationMinutes].
func ValidateDurationMinutes(minutes int) error {
	if minutes < 0 || minutes > MaxDurationMinutes {
		return fmt.Errorf("%w: %d minutes, must be between 0 and %d", ErrInvalidDuration, minutes, MaxDurationMinutes)
	}
	return nil
}

// ParseDurationEdit interprets the text of a duration field while it is
// being edited. Leading decimal digits are read ("12abc" is 12), after an
// optional "+". Blank text is a transient 0. Anything else, including
// negative numbers, is not a valid edit and ok is false.
func ParseDurationEdit(text string) (minutes int, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	text = strings.TrimPrefix(text, "+")

	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// CommitDurationEdit returns the value a duration field settles on once
// editing ends. Blank text becomes BlankDurationMinutes, invalid text keeps
// current.
func CommitDurationEdit(text string, current int) int {
	if strings.TrimSpace(text) == "" {
		return BlankDurationMinutes
	}
	if n, ok := ParseDurationEdit(text); ok {
		return n
	}
	return current
}
