package contact

import (
	"testing"
	"time"
)

func TestSubmitSequence(t *testing.T) {
	f := NewForm()
	f.Focus = Name
	f.Type([]rune("Анна"))
	f.Focus = Phone
	f.Type([]rune("+7 900 000-00-00"))

	f.Submit()
	if f.State() != Sending || f.Label() != SendingLabel {
		t.Fatalf("after submit: %v %q", f.State(), f.Label())
	}

	frame := time.Second / 60
	var elapsed time.Duration
	for f.State() == Sending {
		f.Update(frame)
		elapsed += frame
	}
	if elapsed < 1500*time.Millisecond || elapsed > 1500*time.Millisecond+frame {
		t.Fatalf("sent after %v", elapsed)
	}
	if f.Label() != SentLabel {
		t.Fatalf("sent label: %q", f.Label())
	}
	if f.Fields[Name] != "Анна" {
		t.Fatalf("fields cleared too early")
	}

	f.Update(2999 * time.Millisecond)
	if f.State() != Sent {
		t.Fatalf("reverted too early")
	}
	f.Update(time.Second)
	if f.State() != Idle || f.Label() != IdleLabel {
		t.Fatalf("final: %v %q", f.State(), f.Label())
	}
	for k, v := range f.Fields {
		if v != "" {
			t.Fatalf("field %s not cleared: %q", k, v)
		}
	}
	if f.Focus != "" {
		t.Fatalf("focus kept: %q", f.Focus)
	}
}

func TestSubmitIgnoredWhileBusy(t *testing.T) {
	f := NewForm()
	f.Submit()
	f.Update(time.Second)
	f.Submit()
	f.Update(600 * time.Millisecond)
	if f.State() != Sent {
		t.Fatalf("second submit restarted the timer: %v", f.State())
	}
}

func TestTypingAndBackspace(t *testing.T) {
	f := NewForm()
	f.Type([]rune("ignored"))
	for _, v := range f.Fields {
		if v != "" {
			t.Fatalf("typed without focus")
		}
	}
	f.Focus = Message
	f.Type([]rune("Привет"))
	f.Backspace()
	if f.Fields[Message] != "Приве" {
		t.Fatalf("backspace: %q", f.Fields[Message])
	}
	f.Fields[Message] = ""
	f.Backspace()
	if f.Fields[Message] != "" {
		t.Fatalf("backspace on empty: %q", f.Fields[Message])
	}
}

func TestCapturesOnlyWithoutOverlay(t *testing.T) {
	f := NewForm()
	if f.Captures(false) {
		t.Fatalf("unfocused form captured keys")
	}
	f.Focus = Name
	if !f.Captures(false) {
		t.Fatalf("focused form did not capture keys")
	}
	if f.Captures(true) {
		t.Fatalf("focused form captured keys under an open overlay")
	}
}

func TestEnterInMessageBreaksLine(t *testing.T) {
	f := NewForm()
	f.Focus = Message
	f.Type([]rune("Привет"))
	f.Enter()
	f.Type([]rune("мир"))
	if f.State() != Idle {
		t.Fatalf("enter in the message field submitted: %v", f.State())
	}
	if got := f.Fields[Message]; got != "Привет\nмир" {
		t.Fatalf("message: %q", got)
	}

	f.Focus = Phone
	f.Enter()
	if f.State() != Sending {
		t.Fatalf("enter in the phone field did not submit: %v", f.State())
	}
	if f.Fields[Phone] != "" {
		t.Fatalf("enter typed into the phone field: %q", f.Fields[Phone])
	}
}
