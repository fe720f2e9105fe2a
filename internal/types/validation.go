package types

import (
	"fmt"
	"strings"
)

// ------------------------------
// Shared Validation
// ------------------------------

// ValidateIDPresent reports an error when id is empty or whitespace.
// fieldName is used in the error message ("tableId", "recordId", ...).
func ValidateIDPresent(id, fieldName string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateTitlePresent reports an error when title is empty or whitespace.
func ValidateTitlePresent(title, fieldName string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
