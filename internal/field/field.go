// Package field provides the validated value types a contact record is built
// from: Name, Phone, and Birthday. Validation happens at construction time
// only; a successfully constructed value always satisfies its invariant.
package field

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for caller-checkable validation failures.
var (
	ErrPhoneLength = errors.New("field: phone number must contain 10 digits")
	ErrPhoneDigits = errors.New("field: phone number must contain only digits")
	ErrDateFormat  = errors.New("field: invalid date format, use DD.MM.YYYY")
)

// dateLayout is the only accepted birthday format.
const dateLayout = "02.01.2006"

// Name is a contact's display name. Any string is accepted.
type Name string

// String returns the name as entered.
func (n Name) String() string { return string(n) }

// Phone is a validated phone number: exactly 10 ASCII digits, no separators.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it wrapped as a Phone.
// The length is checked before the digit scan, so a short non-numeric
// input reports the length error.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != 10 {
		return Phone{}, ErrPhoneLength
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return Phone{}, ErrPhoneDigits
		}
	}
	return Phone{value: raw}, nil
}

// String returns the phone number exactly as it was validated.
func (p Phone) String() string { return p.value }

// Birthday is a validated calendar date with no time-of-day component.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw strictly as DD.MM.YYYY with zero-padded day and
// month. Malformed input, wrong separators, and impossible calendar dates
// (31.04, 29.02 in a non-leap year) all fail construction.
func NewBirthday(raw string) (Birthday, error) {
	if len(raw) != len(dateLayout) || raw[2] != '.' || raw[5] != '.' {
		return Birthday{}, ErrDateFormat
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrDateFormat, raw)
	}
	return Birthday{date: date}, nil
}

// String renders the date back as DD.MM.YYYY, round-tripping the input.
func (b Birthday) String() string { return b.date.Format(dateLayout) }

// Date returns the stored calendar date (midnight UTC).
func (b Birthday) Date() time.Time { return b.date }

// Next returns the next occurrence of the birthday on or after today.
// The comparison is date-only: a birthday today is its own next occurrence.
// A Feb 29 birthday in a non-leap candidate year is observed on Mar 1,
// via time.Date normalization.
func (b Birthday) Next(today time.Time) time.Time {
	t := midnight(today)
	next := time.Date(t.Year(), b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(t) {
		next = time.Date(t.Year()+1, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}

// DaysUntil returns the non-negative number of days from today to the next
// occurrence of the birthday. Zero means the birthday is today.
func (b Birthday) DaysUntil(today time.Time) int {
	return int(b.Next(today).Sub(midnight(today)) / (24 * time.Hour))
}

// midnight truncates t to a date-only value in UTC so day arithmetic is
// immune to time-of-day and DST offsets.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
