package contact

import (
	"time"

	"github.com/olivierh59500/smarthome-landing/internal/config"
)

// State of the submit button
type State int

const (
	Idle State = iota
	Sending
	Sent
)

// Button labels per state
const (
	IdleLabel    = "Отправить заявку"
	SendingLabel = "Отправка..."
	SentLabel    = "Отправлено!"
)

// Field names
const (
	Name    = "name"
	Phone   = "phone"
	Message = "message"
)

// Form is the contact form. Nothing is ever sent; Submit only plays the
// sending/sent animation and clears the fields at the end.
type Form struct {
	Fields map[string]string
	Focus  string // field receiving typed text, "" for none

	state      State
	elapsed    time.Duration
	sendDelay  time.Duration
	resetDelay time.Duration
}

func NewForm() *Form {
	return &Form{
		Fields:     map[string]string{Name: "", Phone: "", Message: ""},
		sendDelay:  config.ContactSendDelay,
		resetDelay: config.ContactResetDelay,
	}
}

func (f *Form) State() State {
	return f.state
}

// Label is the submit button text for the current state.
func (f *Form) Label() string {
	switch f.state {
	case Sending:
		return SendingLabel
	case Sent:
		return SentLabel
	default:
		return IdleLabel
	}
}

// Type appends runes to the focused field.
func (f *Form) Type(rs []rune) {
	if f.Focus == "" || len(rs) == 0 {
		return
	}
	f.Fields[f.Focus] += string(rs)
}

// Backspace removes the last rune of the focused field.
func (f *Form) Backspace() {
	if f.Focus == "" {
		return
	}
	r := []rune(f.Fields[f.Focus])
	if len(r) == 0 {
		return
	}
	f.Fields[f.Focus] = string(r[:len(r)-1])
}

// Captures reports whether typed keys go to the form. An open overlay keeps
// the keyboard even while a field is focused.
func (f *Form) Captures(overlay bool) bool {
	return f.Focus != "" && !overlay
}

// Enter handles the Return key: a line break in the message field, a submit
// from any other field.
func (f *Form) Enter() {
	if f.Focus == Message {
		f.Type([]rune{'\n'})
		return
	}
	f.Submit()
}

// Submit starts the mocked send. Ignored unless the form is idle.
func (f *Form) Submit() {
	if f.state != Idle {
		return
	}
	f.state = Sending
	f.elapsed = 0
}

// Update advances the send animation by dt.
func (f *Form) Update(dt time.Duration) {
	if f.state == Idle {
		return
	}
	f.elapsed += dt
	switch f.state {
	case Sending:
		if f.elapsed >= f.sendDelay {
			f.state = Sent
			f.elapsed = 0
		}
	case Sent:
		if f.elapsed >= f.resetDelay {
			f.state = Idle
			f.elapsed = 0
			f.reset()
		}
	}
}

func (f *Form) reset() {
	for k := range f.Fields {
		f.Fields[k] = ""
	}
	f.Focus = ""
}
