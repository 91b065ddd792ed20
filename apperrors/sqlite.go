package apperrors

import "strings"

// IsUniqueViolation detects SQLite unique constraint failures. The driver
// does not expose a typed error for them, so this matches the message.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
