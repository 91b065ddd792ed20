package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// NormalizeLocation maps the UI's "show everything" location values onto the
// empty string so repositories only ever see one no-filter representation.
func NormalizeLocation(city string) string {
	city = strings.TrimSpace(city)
	switch strings.ToLower(city) {
	case "", "all", "all locations":
		return ""
	}
	return city
}

// StringPtr returns a pointer to the string value
func StringPtr(s string) *string {
	return &s
}

// GetenvDefault reads an environment variable with a fallback.
func GetenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewReceiptNumber generates a receipt reference for a recorded payment.
func NewReceiptNumber() string {
	return fmt.Sprintf("RCT-%s", strings.ToUpper(uuid.NewString()[0:8]))
}

// PickFields copies only whitelisted keys from a parsed JSON body into an
// update map, so callers cannot set arbitrary columns.
func PickFields(body map[string]interface{}, allowed ...string) map[string]interface{} {
	fields := make(map[string]interface{})
	for _, key := range allowed {
		if value, ok := body[key]; ok {
			fields[key] = value
		}
	}
	return fields
}
