// Package contact defines the Record aggregate: one contact's name, phone
// numbers, and optional birthday.
package contact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/field"
)

// ErrPhoneNotFound is returned when a phone lookup misses.
var ErrPhoneNotFound = errors.New("contact: phone number not found")

// Record aggregates a contact's data. The name is fixed at construction;
// phones and the birthday are attached incrementally. Every mutation
// validates before committing, so a failed call leaves the record unchanged.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday *field.Birthday
}

// NewRecord creates a Record with the given name and no phones or birthday.
func NewRecord(name string) *Record {
	return &Record{name: field.Name(name)}
}

// Name returns the contact's name.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns the phone numbers in insertion order.
// The returned slice is a copy; mutating it does not affect the record.
func (r *Record) Phones() []field.Phone {
	return append([]field.Phone(nil), r.phones...)
}

// AddPhone validates raw and appends it to the phone list.
// Duplicate values are permitted.
func (r *Record) AddPhone(raw string) error {
	p, err := field.NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone matching raw exactly.
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(raw)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, raw)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first phone matching old with a validated new value.
// The replacement is positional: the edited phone keeps its place in the list.
func (r *Record) EditPhone(old, new string) error {
	i := r.indexOf(old)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, old)
	}
	p, err := field.NewPhone(new)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone matching raw exactly.
func (r *Record) FindPhone(raw string) (field.Phone, error) {
	i := r.indexOf(raw)
	if i < 0 {
		return field.Phone{}, fmt.Errorf("%w: %s", ErrPhoneNotFound, raw)
	}
	return r.phones[i], nil
}

// AddBirthday validates raw and sets it as the contact's birthday,
// replacing any previous value wholesale.
func (r *Record) AddBirthday(raw string) error {
	b, err := field.NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the contact's birthday and whether one is set.
func (r *Record) Birthday() (field.Birthday, bool) {
	if r.birthday == nil {
		return field.Birthday{}, false
	}
	return *r.birthday, true
}

// DaysToBirthday returns the day count from today to the contact's next
// birthday. The second result is false when no birthday is set.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.birthday == nil {
		return 0, false
	}
	return r.birthday.DaysUntil(today), true
}

// String renders the contact as a single display line:
//
//	Contact name: John, phones: 0937777777; 5555555555, birthday: 25.12.1990
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}

	birthday := "No birthday"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}

// indexOf returns the position of the first phone equal to raw, or -1.
func (r *Record) indexOf(raw string) int {
	for i, p := range r.phones {
		if p.String() == raw {
			return i
		}
	}
	return -1
}
