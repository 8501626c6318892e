package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxBlockIDLength bounds block identifiers. IDs appear in URL paths and
// terminal output, so they stay short.
const maxBlockIDLength = 128

// ValidateBlockID validates a block identifier.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only IDs
//   - No control characters
//   - No slashes (IDs are used as URL path segments)
//   - Maximum length of 128 characters
func ValidateBlockID(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidBlockID, "block id cannot be empty")
	}

	if len(id) > maxBlockIDLength {
		return New(ErrCodeInvalidBlockID, "block id too long (max %d characters)", maxBlockIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBlockID, "block id contains invalid control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidBlockID, "block id cannot contain slashes: %q", id)
	}

	return nil
}

// ValidateFinite rejects NaN and infinite values for the named field.
// Geometry accepts any finite number, including negative and zero sizes.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", field)
	}
	return nil
}

// ValidatePositive rejects values that are not finite and strictly positive.
func ValidatePositive(field string, v float64) error {
	if err := ValidateFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %v", field, v)
	}
	return nil
}
