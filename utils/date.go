package utils

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"property-management-backend/apperrors"
)

// DateOnly is a calendar date stored as ISO 8601 text (YYYY-MM-DD).
type DateOnly time.Time

// dateLayouts are accepted on input. Output is always ISO.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// DateLocation is the timezone "today" is evaluated in.
var DateLocation = time.UTC

// InitializeDateLocation loads the timezone from APP_TIMEZONE, keeping UTC
// when unset.
func InitializeDateLocation() error {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", name, err)
	}
	DateLocation = loc
	return nil
}

// ParseFlexibleDate accepts either ISO (2006-01-02) or UK (02/01/2006) input.
func ParseFlexibleDate(s string) (DateOnly, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), nil
		}
	}
	return DateOnly{}, fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD or DD/MM/YYYY", s)
}

// NormalizeDateFields rewrites the named keys of an update map into canonical
// ISO text. gorm's Updates hands map values to the driver verbatim, skipping
// the DateOnly Valuer, so raw request strings would otherwise land in the
// date columns unconverted and break the uniform YYYY-MM-DD storage that
// string comparisons on those columns rely on.
func NormalizeDateFields(fields map[string]interface{}, names ...string) error {
	for _, name := range names {
		value, ok := fields[name]
		if !ok || value == nil {
			continue
		}
		s, ok := value.(string)
		if !ok {
			return apperrors.NewValidationError(map[string]string{
				name: "Must be a date string (YYYY-MM-DD or DD/MM/YYYY)",
			})
		}
		parsed, err := ParseFlexibleDate(s)
		if err != nil {
			return apperrors.NewValidationError(map[string]string{name: err.Error()})
		}
		fields[name] = parsed.String()
	}
	return nil
}

// Today returns the current date in the configured timezone.
func Today() DateOnly {
	now := time.Now().In(DateLocation)
	return DateOnly(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		*d = DateOnly(time.Time{})
		return nil
	}
	parsed, err := ParseFlexibleDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Value implements the driver.Valuer interface for database writes
func (d DateOnly) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the sql.Scanner interface for database reads
func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		*d = DateOnly(time.Time{})
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*d = DateOnly(v)
		return nil
	case string:
		parsed, err := ParseFlexibleDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseFlexibleDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into DateOnly", value)
	}
}

func (d DateOnly) String() string {
	return time.Time(d).Format("2006-01-02")
}

func (d DateOnly) Time() time.Time {
	return time.Time(d)
}

func (d DateOnly) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d DateOnly) Before(other DateOnly) bool {
	return time.Time(d).Before(time.Time(other))
}
