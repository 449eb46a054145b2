package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"carrierdash/internal/carriers"
)

// Dataset names are file names: alphanumeric, underscore, hyphen, dot
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Bounds accepted for year filters
const (
	MinYear = 1900
	MaxYear = 2100
)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	if strings.Contains(id, "..") {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateColumn checks that column is one of the designated traffic columns
func ValidateColumn(column string) error {
	if !carriers.IsDesignatedColumn(column) {
		return fmt.Errorf("column must be one of %s", strings.Join(carriers.DesignatedColumns, ", "))
	}
	return nil
}

// ValidateYear validates year filter values
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
	}
	return nil
}

// ValidateMonthRange validates a zero-based, inclusive month range
func ValidateMonthRange(from, to int) error {
	if from < 0 || from > 11 || to < 0 || to > 11 {
		return errors.New("month must be between 0 (Jan) and 11 (Dec)")
	}
	if from > to {
		return errors.New("from month must not be after to month")
	}
	return nil
}
