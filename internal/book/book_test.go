package book

import (
	"errors"
	"testing"
	"time"

	"github.com/smileynet/rolodex/internal/contact"
)

func newRecord(t *testing.T, name string, phones []string, birthday string) *contact.Record {
	t.Helper()
	r := contact.NewRecord(name)
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}
	if birthday != "" {
		if err := r.AddBirthday(birthday); err != nil {
			t.Fatalf("AddBirthday(%q) error = %v", birthday, err)
		}
	}
	return r
}

func TestAddAndFind(t *testing.T) {
	b := New()
	john := newRecord(t, "John", []string{"0937777777"}, "")
	b.Add(john)

	got, err := b.Find("John")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != john {
		t.Error("Find() returned a different record")
	}

	if _, err := b.Find("Jane"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Find(absent) error = %v, want ErrRecordNotFound", err)
	}
}

func TestAdd_OverwritesSameName(t *testing.T) {
	b := New()
	b.Add(newRecord(t, "John", []string{"1111111111"}, ""))
	b.Add(newRecord(t, "Jane", []string{"2222222222"}, ""))
	replacement := newRecord(t, "John", []string{"3333333333"}, "")
	b.Add(replacement)

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	got, err := b.Find("John")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != replacement {
		t.Error("Find() should return the replacement record")
	}
	// Overwrite keeps the original iteration position.
	records := b.Records()
	if records[0].Name() != "John" || records[1].Name() != "Jane" {
		t.Errorf("order = [%s, %s], want [John, Jane]", records[0].Name(), records[1].Name())
	}
}

func TestDelete(t *testing.T) {
	b := New()
	b.Add(newRecord(t, "John", nil, ""))
	b.Add(newRecord(t, "Jane", nil, ""))

	if err := b.Delete("Jane"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := b.Find("Jane"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Find(deleted) error = %v, want ErrRecordNotFound", err)
	}

	records := b.Records()
	if len(records) != 1 || records[0].Name() != "John" {
		t.Errorf("Records() = %d entries, want only John", len(records))
	}

	if err := b.Delete("Jane"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Delete(absent) error = %v, want ErrRecordNotFound", err)
	}
}

func TestRecords_InsertionOrder(t *testing.T) {
	b := New()
	names := []string{"Zoe", "Adam", "Mia"}
	for _, n := range names {
		b.Add(newRecord(t, n, nil, ""))
	}

	records := b.Records()
	if len(records) != len(names) {
		t.Fatalf("Records() count = %d, want %d", len(records), len(names))
	}
	for i, n := range names {
		if records[i].Name() != n {
			t.Errorf("records[%d] = %q, want %q", i, records[i].Name(), n)
		}
	}
}

func TestUpcoming_WindowBoundary(t *testing.T) {
	today := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)

	b := New()
	b.Add(newRecord(t, "OnBoundary", nil, "30.08.1990")) // exactly 7 days
	b.Add(newRecord(t, "Outside", nil, "31.08.1990"))    // 8 days
	b.Add(newRecord(t, "Today", nil, "23.08.1990"))      // 0 days
	b.Add(newRecord(t, "NoBirthday", []string{"1234567890"}, ""))

	got := b.Upcoming(today, DefaultWindow)
	want := []string{"OnBoundary", "Today"}
	if len(got) != len(want) {
		t.Fatalf("Upcoming() count = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name() != name {
			t.Errorf("upcoming[%d] = %q, want %q", i, got[i].Name(), name)
		}
	}
}

func TestUpcoming_NegativeWindow(t *testing.T) {
	today := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	b := New()
	b.Add(newRecord(t, "Today", nil, "23.08.1990"))

	if got := b.Upcoming(today, -1); got != nil {
		t.Errorf("Upcoming(-1) = %d records, want none", len(got))
	}
}
