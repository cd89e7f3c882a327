// Command rolodex is an in-memory contact directory. The demo command runs a
// scripted session; browse opens an interactive TUI over a book that lives
// only for the session.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/contact"
	"github.com/smileynet/rolodex/internal/field"
	"github.com/smileynet/rolodex/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Demo    DemoCmd          `cmd:"" help:"Run a scripted address book session."`
	Browse  BrowseCmd        `cmd:"" help:"Open the interactive contact browser."`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DemoCmd runs the scripted session: build a book, mutate it, report
// upcoming birthdays.
type DemoCmd struct {
	Window *int `help:"Day span for the upcoming birthdays report (default from config)."`
}

// Run executes the demo command.
func (d *DemoCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if d.Window != nil {
		cfg.Birthdays.Window = *d.Window
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	return d.run(os.Stdout, cfg.Birthdays.Window, time.Now())
}

// run executes the demo against w, enabling testable wiring. The third
// contact's birthday is derived from today so the upcoming report always
// has a hit.
func (d *DemoCmd) run(w io.Writer, window int, today time.Time) error {
	b := book.New()

	john := contact.NewRecord("John")
	for _, p := range []string{"0937777777", "5555555555"} {
		if err := john.AddPhone(p); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
	}
	if err := john.AddBirthday("25.12.1990"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	b.Add(john)

	jane := contact.NewRecord("Jane")
	if err := jane.AddPhone("9876543210"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := jane.AddBirthday("01.01.1995"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	b.Add(jane)

	for _, r := range b.Records() {
		fmt.Fprintln(w, r)
	}

	found, err := b.Find("John")
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := found.EditPhone("0937777777", "0936666666"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintln(w, found)

	phone, err := found.FindPhone("5555555555")
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintf(w, "%s: %s\n", found.Name(), phone)

	if err := b.Delete("Jane"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Fprintln(w, "Jane's record deleted.")

	for _, r := range b.Records() {
		fmt.Fprintln(w, r)
	}

	// A birthday three days out, so the report below always finds it.
	vovan := contact.NewRecord("Vovan")
	if err := vovan.AddPhone("0934563292"); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	soon := today.AddDate(0, 0, 3)
	birthday := time.Date(1992, soon.Month(), soon.Day(), 0, 0, 0, 0, time.UTC)
	if err := vovan.AddBirthday(birthday.Format("02.01.2006")); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	b.Add(vovan)

	for _, r := range b.Upcoming(today, window) {
		days, _ := r.DaysToBirthday(today)
		fmt.Fprintf(w, "Upcoming birthday: %s (in %d days)\n", r, days)
	}
	return nil
}

// BrowseCmd opens the interactive contact browser TUI.
type BrowseCmd struct {
	Seed bool `help:"Preload sample contacts into the session."`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the session book and launches the browser TUI.
func (b *BrowseCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	sessionBook := book.New()
	if b.Seed || cfg.Demo.Seed {
		if err := seedBook(sessionBook, time.Now()); err != nil {
			return fmt.Errorf("browse: %w", err)
		}
	}

	m := tui.NewModel(
		tui.WithBook(sessionBook),
		tui.WithWindow(cfg.Birthdays.Window),
	)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	return b.run(isTTY && !cfg.UI.Plain, prog)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// seedBook fills b with sample contacts, one of them inside the default
// birthday window relative to today.
func seedBook(b *book.Book, today time.Time) error {
	type seed struct {
		name     string
		phones   []string
		birthday string
	}
	soon := today.AddDate(0, 0, 2)
	seeds := []seed{
		{"John", []string{"0936666666", "5555555555"}, "25.12.1990"},
		{"Jane", []string{"9876543210"}, "01.01.1995"},
		{"Vovan", []string{"0934563292"}, time.Date(1992, soon.Month(), soon.Day(), 0, 0, 0, 0, time.UTC).Format("02.01.2006")},
	}

	for _, s := range seeds {
		r := contact.NewRecord(s.name)
		for _, p := range s.phones {
			if err := r.AddPhone(p); err != nil {
				return err
			}
		}
		if err := r.AddBirthday(s.birthday); err != nil {
			return err
		}
		b.Add(r)
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitSession = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch {
	case errors.Is(err, book.ErrRecordNotFound),
		errors.Is(err, contact.ErrPhoneNotFound),
		errors.Is(err, field.ErrPhoneLength),
		errors.Is(err, field.ErrPhoneDigits),
		errors.Is(err, field.ErrDateFormat):
		return exitSession
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
