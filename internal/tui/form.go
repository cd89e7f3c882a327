package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/contact"
)

// Form field indices, in tab order.
const (
	fieldName = iota
	fieldPhones
	fieldBirthday
	fieldCount
)

// errNameRequired is the form-level error for an empty name.
var errNameRequired = errors.New("tui: contact name cannot be empty")

// addForm collects a new contact's name, phones, and birthday.
type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    error
}

// newAddForm returns a form with the name field focused.
func newAddForm() addForm {
	var f addForm

	name := textinput.New()
	name.Placeholder = "Jane"
	name.CharLimit = 64
	name.Focus()
	f.inputs[fieldName] = name

	phones := textinput.New()
	phones.Placeholder = "10 digits, space-separated"
	phones.CharLimit = 128
	f.inputs[fieldPhones] = phones

	birthday := textinput.New()
	birthday.Placeholder = "DD.MM.YYYY (optional)"
	birthday.CharLimit = 10
	f.inputs[fieldBirthday] = birthday

	return f
}

// cycleFocus moves focus forward (+1) or backward (-1) through the fields.
func (f addForm) cycleFocus(delta int) addForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	return f
}

// update forwards a message to the focused input.
func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// submit validates the form and builds a contact record from it.
// On validation failure the partially built record is discarded, so
// nothing reaches the book.
func (f addForm) submit() (*contact.Record, error) {
	name := strings.TrimSpace(f.inputs[fieldName].Value())
	if name == "" {
		return nil, errNameRequired
	}

	r := contact.NewRecord(name)
	for _, raw := range strings.Fields(f.inputs[fieldPhones].Value()) {
		if err := r.AddPhone(raw); err != nil {
			return nil, err
		}
	}
	if raw := strings.TrimSpace(f.inputs[fieldBirthday].Value()); raw != "" {
		if err := r.AddBirthday(raw); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// view renders the form fields with labels and any validation error.
func (f addForm) view() string {
	var b strings.Builder
	b.WriteString("Add contact\n\n")
	b.WriteString("  Name:     " + f.inputs[fieldName].View() + "\n")
	b.WriteString("  Phones:   " + f.inputs[fieldPhones].View() + "\n")
	b.WriteString("  Birthday: " + f.inputs[fieldBirthday].View() + "\n")
	if f.err != nil {
		b.WriteString("\n  " + ErrorStyle().Render(f.err.Error()) + "\n")
	}
	return b.String()
}
