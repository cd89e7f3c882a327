package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// fixedNow is the frozen clock used by every test in this file.
var fixedNow = time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func seededBook(t *testing.T) *book.Book {
	t.Helper()
	b := book.New()

	john := contact.NewRecord("John")
	if err := john.AddPhone("0937777777"); err != nil {
		t.Fatal(err)
	}
	if err := john.AddBirthday("25.08.1990"); err != nil { // 2 days out
		t.Fatal(err)
	}
	b.Add(john)

	jane := contact.NewRecord("Jane")
	if err := jane.AddPhone("9876543210"); err != nil {
		t.Fatal(err)
	}
	if err := jane.AddBirthday("25.12.1995"); err != nil { // months out
		t.Fatal(err)
	}
	b.Add(jane)

	b.Add(contact.NewRecord("Mia"))
	return b
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", updated)
	}
	return next
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel()

	if m.mode != ModeBrowse {
		t.Errorf("mode = %v, want ModeBrowse", m.mode)
	}
	if m.window != book.DefaultWindow {
		t.Errorf("window = %d, want %d", m.window, book.DefaultWindow)
	}
	if m.book == nil {
		t.Fatal("book should not be nil")
	}
	if m.book.Len() != 0 {
		t.Errorf("book length = %d, want 0", m.book.Len())
	}
}

func TestBrowse_CursorNavigation(t *testing.T) {
	m := NewModel(WithBook(seededBook(t)), WithClock(clock))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("cursor should wrap to 0, got %d", m.cursor)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 2 {
		t.Errorf("cursor after up from 0 = %d, want 2", m.cursor)
	}
}

func TestBrowse_UpcomingFilter(t *testing.T) {
	m := NewModel(WithBook(seededBook(t)), WithClock(clock))

	m = press(t, m, keyRune('u'))
	records := m.visible()
	if len(records) != 1 || records[0].Name() != "John" {
		t.Fatalf("upcoming filter = %d records, want only John", len(records))
	}

	m = press(t, m, keyRune('u'))
	if got := len(m.visible()); got != 3 {
		t.Errorf("after toggle back, visible = %d, want 3", got)
	}
}

func TestAdd_SubmitValidContact(t *testing.T) {
	m := NewModel(WithClock(clock))

	m = press(t, m, keyRune('a'))
	if m.mode != ModeAdd {
		t.Fatalf("mode = %v, want ModeAdd", m.mode)
	}

	m.form.inputs[fieldName].SetValue("Vovan")
	m.form.inputs[fieldPhones].SetValue("0934563292 0931112233")
	m.form.inputs[fieldBirthday].SetValue("31.07.1992")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeBrowse {
		t.Fatalf("mode after submit = %v, want ModeBrowse", m.mode)
	}

	r, err := m.book.Find("Vovan")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got := len(r.Phones()); got != 2 {
		t.Errorf("phone count = %d, want 2", got)
	}
	if bd, ok := r.Birthday(); !ok || bd.String() != "31.07.1992" {
		t.Errorf("birthday = %q, %v; want 31.07.1992, true", bd, ok)
	}
}

func TestAdd_InvalidPhoneKeepsFormOpen(t *testing.T) {
	m := NewModel(WithClock(clock))

	m = press(t, m, keyRune('a'))
	m.form.inputs[fieldName].SetValue("Vovan")
	m.form.inputs[fieldPhones].SetValue("123")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeAdd {
		t.Errorf("mode after invalid submit = %v, want ModeAdd", m.mode)
	}
	if m.form.err == nil {
		t.Error("form should carry the validation error")
	}
	if m.book.Len() != 0 {
		t.Errorf("book length = %d, want 0 after failed add", m.book.Len())
	}
}

func TestAdd_EmptyNameRejected(t *testing.T) {
	m := NewModel(WithClock(clock))

	m = press(t, m, keyRune('a'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeAdd {
		t.Errorf("mode = %v, want ModeAdd", m.mode)
	}
	if m.form.err == nil {
		t.Error("form should reject an empty name")
	}
}

func TestAdd_EscCancels(t *testing.T) {
	m := NewModel(WithClock(clock))

	m = press(t, m, keyRune('a'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeBrowse {
		t.Errorf("mode after esc = %v, want ModeBrowse", m.mode)
	}
	if m.book.Len() != 0 {
		t.Errorf("book length = %d, want 0", m.book.Len())
	}
}

func TestConfirmDelete_EnterDeletes(t *testing.T) {
	m := NewModel(WithBook(seededBook(t)), WithClock(clock))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}) // select Jane
	m = press(t, m, keyRune('d'))
	if m.mode != ModeConfirmDelete || m.pendingName != "Jane" {
		t.Fatalf("mode = %v, pending = %q; want confirm for Jane", m.mode, m.pendingName)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeBrowse {
		t.Errorf("mode after confirm = %v, want ModeBrowse", m.mode)
	}
	if _, err := m.book.Find("Jane"); err == nil {
		t.Error("Jane should be deleted")
	}
	if m.book.Len() != 2 {
		t.Errorf("book length = %d, want 2", m.book.Len())
	}
}

func TestConfirmDelete_EscCancels(t *testing.T) {
	m := NewModel(WithBook(seededBook(t)), WithClock(clock))

	m = press(t, m, keyRune('d'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeBrowse {
		t.Errorf("mode after esc = %v, want ModeBrowse", m.mode)
	}
	if m.book.Len() != 3 {
		t.Errorf("book length = %d, want 3", m.book.Len())
	}
}

func TestView_ListsContacts(t *testing.T) {
	m := NewModel(WithBook(seededBook(t)), WithClock(clock))
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	for _, name := range []string{"John", "Jane", "Mia"} {
		if !strings.Contains(view, name) {
			t.Errorf("View() missing %q", name)
		}
	}
}

func TestView_DetailShowsPhonesAndBirthday(t *testing.T) {
	m := NewModel(WithBook(seededBook(t)), WithClock(clock))
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	if !strings.Contains(view, "0937777777") {
		t.Error("detail pane should show John's phone")
	}
	if !strings.Contains(view, "25.08.1990") {
		t.Error("detail pane should show John's birthday")
	}
}

// TestModel_Teatest_FullSession drives a complete add-then-delete session
// through the Bubble Tea runtime.
func TestModel_Teatest_FullSession(t *testing.T) {
	m := NewModel(WithClock(clock))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	// Add a contact through the form.
	tm.Send(keyRune('a'))
	tm.Type("Olena")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("0931234567")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("24.08.1991")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	// Quit from browse mode.
	tm.Send(keyRune('q'))
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	r, err := final.book.Find("Olena")
	if err != nil {
		t.Fatalf("Find(Olena) error = %v", err)
	}
	if days, ok := r.DaysToBirthday(fixedNow); !ok || days != 1 {
		t.Errorf("DaysToBirthday() = %d, %v; want 1, true", days, ok)
	}
}
