// Package book implements the address book: a name-keyed collection of
// contact records with an upcoming-birthdays query.
package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/smileynet/rolodex/internal/contact"
)

// ErrRecordNotFound is returned when a name lookup misses.
var ErrRecordNotFound = errors.New("book: record not found")

// DefaultWindow is the day span used for upcoming-birthday queries when the
// caller does not choose one.
const DefaultWindow = 7

// Book maps contact names to records, preserving insertion order for
// iteration. It is not safe for concurrent use; callers needing shared
// access must serialize externally.
type Book struct {
	records map[string]*contact.Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// Add inserts a record keyed by its name. Re-adding an existing name
// silently replaces the previous record, keeping its iteration position.
func (b *Book) Add(r *contact.Record) {
	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record for name.
func (b *Book) Find(name string) (*contact.Record, error) {
	r, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, name)
	}
	return r, nil
}

// Delete removes the record for name.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, name)
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Upcoming returns the records whose next birthday falls within window days
// of today, inclusive. Records without a birthday are skipped. The result
// follows insertion order, not proximity; a negative window yields nil.
func (b *Book) Upcoming(today time.Time, window int) []*contact.Record {
	var out []*contact.Record
	for _, name := range b.order {
		r := b.records[name]
		days, ok := r.DaysToBirthday(today)
		if ok && days <= window {
			out = append(out, r)
		}
	}
	return out
}
