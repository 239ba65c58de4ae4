package models

import (
	"strings"
	"unicode/utf8"
)

// ValidateProjectName checks that a name is 2-50 characters after trimming.
// Lengths are counted in runes, not bytes.
func ValidateProjectName(name string) error {
	trimmed := strings.TrimSpace(name)
	if n := utf8.RuneCountInString(trimmed); n < 2 || n > 50 {
		return ErrInvalidProjectName
	}
	return nil
}

// ValidateDescription checks that a description is at most 200 characters.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > 200 {
		return ErrInvalidDescription
	}
	return nil
}

// ValidateRate checks that an hourly rate is within 0-100000.
func ValidateRate(rate int64) error {
	if rate < 0 || rate > 100000 {
		return ErrInvalidRate
	}
	return nil
}

// ValidateNote checks that a session note is non-empty after trimming.
func ValidateNote(note string) error {
	if strings.TrimSpace(note) == "" {
		return ErrEmptyNote
	}
	return nil
}
