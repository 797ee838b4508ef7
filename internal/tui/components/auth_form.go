package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/drake/reel/internal/tui/styles"
)

// FormMode selects between the sign-in and sign-up layouts
type FormMode int

const (
	ModeLogin FormMode = iota
	ModeRegister
)

// AuthForm is the sign-in / sign-up form. Register mode adds a username
// field above the shared email and password inputs.
type AuthForm struct {
	Mode FormMode

	username textinput.Model
	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model

	focus   int
	errMsg  string
	busy    bool
	width   int
}

// NewAuthForm creates a form in login mode
func NewAuthForm() AuthForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	confirm := textinput.New()
	confirm.Placeholder = "repeat password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	confirm.CharLimit = 128

	f := AuthForm{
		username: username,
		email:    email,
		password: password,
		confirm:  confirm,
	}
	f.SetMode(ModeLogin)
	return f
}

// SetMode switches between login and register and resets focus
func (f *AuthForm) SetMode(mode FormMode) {
	f.Mode = mode
	f.errMsg = ""
	f.busy = false
	f.focus = 0
	f.applyFocus()
}

// SetSize updates the form width
func (f *AuthForm) SetSize(width int) {
	f.width = width
}

// SetError displays a submission error and re-enables the form
func (f *AuthForm) SetError(msg string) {
	f.errMsg = msg
	f.busy = false
}

// SetBusy disables input while a submission is in flight
func (f *AuthForm) SetBusy() {
	f.busy = true
	f.errMsg = ""
}

// Busy reports whether a submission is in flight
func (f *AuthForm) Busy() bool { return f.busy }

// Values returns the trimmed form values
func (f *AuthForm) Values() (username, email, password string) {
	return strings.TrimSpace(f.username.Value()),
		strings.TrimSpace(f.email.Value()),
		f.password.Value()
}

// Validate checks required fields, returning a message for the first
// missing one.
func (f *AuthForm) Validate() string {
	username, email, password := f.Values()
	if f.Mode == ModeRegister && username == "" {
		return "Username is required"
	}
	if email == "" {
		return "Email is required"
	}
	if !strings.Contains(email, "@") {
		return "Email is invalid"
	}
	if password == "" {
		return "Password is required"
	}
	if f.Mode == ModeRegister {
		if len(password) < 6 {
			return "Password must be at least 6 characters"
		}
		if f.confirm.Value() != password {
			return "Passwords do not match"
		}
	}
	return ""
}

// Reset clears all fields
func (f *AuthForm) Reset() {
	f.username.SetValue("")
	f.email.SetValue("")
	f.password.SetValue("")
	f.confirm.SetValue("")
	f.errMsg = ""
	f.busy = false
	f.focus = 0
	f.applyFocus()
}

// NextField advances focus to the next input
func (f *AuthForm) NextField() {
	f.focus = (f.focus + 1) % f.fieldCount()
	f.applyFocus()
}

// PrevField moves focus to the previous input
func (f *AuthForm) PrevField() {
	f.focus = (f.focus + f.fieldCount() - 1) % f.fieldCount()
	f.applyFocus()
}

func (f *AuthForm) fieldCount() int {
	if f.Mode == ModeRegister {
		return 4
	}
	return 2
}

func (f *AuthForm) fields() []*textinput.Model {
	if f.Mode == ModeRegister {
		return []*textinput.Model{&f.username, &f.email, &f.password, &f.confirm}
	}
	return []*textinput.Model{&f.email, &f.password}
}

func (f *AuthForm) applyFocus() {
	for i, field := range f.fields() {
		if i == f.focus {
			field.Focus()
		} else {
			field.Blur()
		}
	}
}

// Update forwards input to the focused field
func (f *AuthForm) Update(msg tea.Msg) tea.Cmd {
	if f.busy {
		return nil
	}
	var cmd tea.Cmd
	fields := f.fields()
	*fields[f.focus], cmd = fields[f.focus].Update(msg)
	return cmd
}

// View renders the form
func (f *AuthForm) View() string {
	var b strings.Builder

	title := "Sign in"
	if f.Mode == ModeRegister {
		title = "Create account"
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Email", "Password"}
	if f.Mode == ModeRegister {
		labels = []string{"Username", "Email", "Password", "Confirm password"}
	}
	for i, field := range f.fields() {
		label := styles.FormLabelStyle.Render(labels[i])
		if i == f.focus {
			label = styles.FormFocusStyle.Render(labels[i])
		}
		b.WriteString(label + "\n")
		b.WriteString(field.View() + "\n\n")
	}

	switch {
	case f.busy:
		b.WriteString(styles.DimStyle.Render("signing in..."))
	case f.errMsg != "":
		b.WriteString(styles.ErrorStyle.Render(f.errMsg))
	default:
		hint := "enter submit · tab next field · ctrl+r create account"
		if f.Mode == ModeRegister {
			hint = "enter submit · tab next field · ctrl+r sign in instead"
		}
		b.WriteString(styles.HelpDescStyle.Render(hint))
	}

	return styles.FormBoxStyle.Render(b.String())
}
