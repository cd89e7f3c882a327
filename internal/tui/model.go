// Package tui implements the interactive browse session: a two-pane terminal
// view over one in-memory address book. The book lives only for the session;
// nothing is written to disk.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// Mode identifies which screen the model is showing.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeAdd
	ModeConfirmDelete
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the browse session.
type Model struct {
	mode Mode
	book *book.Book

	cursor       int
	upcomingOnly bool
	window       int
	pendingName  string // Contact queued for delete confirmation.
	status       string

	form addForm
	help help.Model
	now  func() time.Time

	browseKeys  browseKeys
	formKeys    formKeys
	confirmKeys confirmKeys

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithBook sets the address book the session operates on.
func WithBook(b *book.Book) Option {
	return func(m *Model) { m.book = b }
}

// WithWindow sets the day span for the upcoming-birthdays filter.
func WithWindow(days int) Option {
	return func(m *Model) { m.window = days }
}

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates a browse-mode Model over an empty book unless
// WithBook supplies one.
func NewModel(opts ...Option) Model {
	m := Model{
		mode:        ModeBrowse,
		book:        book.New(),
		window:      book.DefaultWindow,
		help:        help.New(),
		now:         time.Now,
		browseKeys:  BrowseKeyMap(),
		formKeys:    FormKeyMap(),
		confirmKeys: ConfirmKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// visible returns the records shown in the list pane, honoring the
// upcoming-birthdays filter.
func (m Model) visible() []*contact.Record {
	if m.upcomingOnly {
		return m.book.Upcoming(m.now(), m.window)
	}
	return m.book.Records()
}

// selected returns the record under the cursor, or nil when the list is empty.
func (m Model) selected() *contact.Record {
	records := m.visible()
	if len(records) == 0 || m.cursor >= len(records) {
		return nil
	}
	return records[m.cursor]
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAdd:
			return m.updateAdd(msg)
		case ModeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	// Non-key messages (cursor blink ticks) belong to the form's inputs.
	if m.mode == ModeAdd {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	return m, nil
}

// updateBrowse processes keys in browse mode.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.browseKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.browseKeys.Up):
		if n := len(m.visible()); n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}

	case key.Matches(msg, m.browseKeys.Down):
		if n := len(m.visible()); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case key.Matches(msg, m.browseKeys.Add):
		m.mode = ModeAdd
		m.form = newAddForm()
		m.status = ""

	case key.Matches(msg, m.browseKeys.Delete):
		if r := m.selected(); r != nil {
			m.mode = ModeConfirmDelete
			m.pendingName = r.Name()
		}

	case key.Matches(msg, m.browseKeys.Upcoming):
		m.upcomingOnly = !m.upcomingOnly
		m.cursor = 0

	case key.Matches(msg, m.browseKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateAdd processes keys in the add-contact form.
func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.mode = ModeBrowse
		return m, nil

	case key.Matches(msg, m.formKeys.Next):
		m.form = m.form.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.formKeys.Prev):
		m.form = m.form.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		r, err := m.form.submit()
		if err != nil {
			m.form.err = err
			return m, nil
		}
		m.book.Add(r)
		m.mode = ModeBrowse
		m.cursor = m.indexOf(r.Name())
		m.status = fmt.Sprintf("Added %s", r.Name())
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// updateConfirm processes keys on the delete confirmation screen.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Confirm):
		if err := m.book.Delete(m.pendingName); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("Deleted %s", m.pendingName)
		}
		m.mode = ModeBrowse
		m.pendingName = ""
		if n := len(m.visible()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		} else if n == 0 {
			m.cursor = 0
		}

	case key.Matches(msg, m.confirmKeys.Cancel):
		m.mode = ModeBrowse
		m.pendingName = ""
	}

	return m, nil
}

// indexOf returns the visible-list position of name, or 0 if absent.
func (m Model) indexOf(name string) int {
	for i, r := range m.visible() {
		if r.Name() == name {
			return i
		}
	}
	return 0
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the current screen with the help bar at the bottom.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	switch m.mode {
	case ModeAdd:
		body = FocusedBorder().
			Width(m.width - borderChrome).
			Height(m.contentHeight()).
			Render(m.form.view())
	case ModeConfirmDelete:
		body = FocusedBorder().
			Width(m.width - borderChrome).
			Height(m.contentHeight()).
			Render(m.viewConfirm())
	default:
		body = m.viewBrowse()
	}

	helpView := m.help.View(m.helpBindings())
	return lipgloss.JoinVertical(lipgloss.Left, body, helpView)
}

// helpBindings returns the key map for the current mode's help bar.
func (m Model) helpBindings() help.KeyMap {
	switch m.mode {
	case ModeAdd:
		return m.formKeys
	case ModeConfirmDelete:
		return m.confirmKeys
	default:
		return m.browseKeys
	}
}

// viewBrowse renders the two-pane list + detail layout.
func (m Model) viewBrowse() string {
	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	left := FocusedBorder().
		Width(leftWidth - borderChrome).
		Height(contentHeight).
		Render(m.viewList())
	right := UnfocusedBorder().
		Width(rightWidth - borderChrome).
		Height(contentHeight).
		Render(m.viewDetail())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// viewList renders the contact list pane.
func (m Model) viewList() string {
	var b strings.Builder
	if m.upcomingOnly {
		fmt.Fprintf(&b, "Birthdays next %dd\n\n", m.window)
	} else {
		b.WriteString("Contacts\n\n")
	}

	records := m.visible()
	if len(records) == 0 {
		if m.upcomingOnly {
			b.WriteString("  No upcoming birthdays.")
		} else {
			b.WriteString("  No contacts yet. Press a to add one.")
		}
		return b.String()
	}

	for i, r := range records {
		marker := "  "
		if i == m.cursor {
			marker = CursorMarker
		}
		line := marker + r.Name()
		if days, ok := r.DaysToBirthday(m.now()); ok && days <= m.window {
			line += " " + BirthdayBadge(days)
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	return b.String()
}

// viewDetail renders the selected contact's detail pane.
func (m Model) viewDetail() string {
	r := m.selected()
	if r == nil {
		return "Nothing selected."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", r.Name())

	phones := r.Phones()
	if len(phones) == 0 {
		b.WriteString("  No phones.\n")
	}
	for _, p := range phones {
		fmt.Fprintf(&b, "  %s\n", p)
	}

	if bd, ok := r.Birthday(); ok {
		days := bd.DaysUntil(m.now())
		fmt.Fprintf(&b, "\n  Birthday: %s %s\n", bd, BirthdayBadge(days))
	} else {
		b.WriteString("\n  No birthday.\n")
	}
	return b.String()
}

// viewConfirm renders the delete confirmation screen.
func (m Model) viewConfirm() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delete %s?\n", m.pendingName)
	b.WriteString("\n  The contact and all its phone numbers will be removed.")
	b.WriteString("\n\n  [Enter] Delete   [Esc] Cancel")
	return b.String()
}
