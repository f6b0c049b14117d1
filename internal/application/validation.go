package application

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseYear validates and parses a year string (e.g., "2024").
// Returns a ValidationError for anything that is not a 4-digit year.
func ParseYear(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &ValidationError{Field: "year", Message: "year is required"}
	}

	year, err := strconv.Atoi(value)
	if err != nil || year < 1000 || year > 9999 {
		return 0, &ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("expected a 4-digit year, got: %s", value),
		}
	}
	return year, nil
}

// ValidateYear checks that a year value is a plausible 4-digit year
func ValidateYear(year int) error {
	if year < 1000 || year > 9999 {
		return &ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("expected a 4-digit year, got: %d", year),
		}
	}
	return nil
}

// ValidateMonth checks that a month number is in 1-12
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return &ValidationError{
			Field:   "month",
			Message: fmt.Sprintf("expected a month between 1 and 12, got: %d", month),
		}
	}
	return nil
}
