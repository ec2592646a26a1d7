package estimator

import (
	"time"

	"github.com/olivierh59500/smarthome-landing/internal/config"
)

const submitLabel = "Отправить заявку"

// Slider limits on the form
const (
	AreaMin, AreaMax   = 20, 400
	RoomsMin, RoomsMax = 1, 10
)

// Modal is the calculator dialog: the form, its live estimate and the
// mocked request button.
type Modal struct {
	Input    Input
	Estimate Estimate

	ButtonText     string
	ButtonDisabled bool

	open       bool
	submitting bool
	elapsed    time.Duration
	closeDelay time.Duration
}

func NewModal() *Modal {
	m := &Modal{
		Input:      DefaultInput(),
		ButtonText: submitLabel,
		closeDelay: config.ProjectCloseDelay,
	}
	m.Recalculate()
	return m
}

// IsOpen reports whether the dialog is shown; the page does not scroll while it is.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Open shows the dialog with a fresh estimate.
func (m *Modal) Open() {
	m.open = true
	m.Recalculate()
}

func (m *Modal) Close() {
	m.open = false
}

// Escape closes the dialog if it is open and reports whether it did.
func (m *Modal) Escape() bool {
	if !m.open {
		return false
	}
	m.Close()
	return true
}

// Recalculate refreshes Estimate from Input.
func (m *Modal) Recalculate() {
	m.Estimate = Calculate(m.Input)
}

func (m *Modal) SetType(t string) {
	m.Input.Type = t
	m.Recalculate()
}

func (m *Modal) SetLevel(l string) {
	m.Input.Level = l
	m.Recalculate()
}

func (m *Modal) SetTimeline(t string) {
	m.Input.Timeline = t
	m.Recalculate()
}

func (m *Modal) SetArea(a float64) {
	m.Input.Area = min(AreaMax, max(AreaMin, a))
	m.Recalculate()
}

func (m *Modal) SetRooms(r float64) {
	m.Input.Rooms = min(RoomsMax, max(RoomsMin, r))
	m.Recalculate()
}

// Submit mocks sending the request: the button confirms, and after a delay
// it is restored and the dialog closes.
func (m *Modal) Submit() {
	if m.submitting {
		return
	}
	m.submitting = true
	m.elapsed = 0
	m.ButtonText = "Заявка отправлена"
	m.ButtonDisabled = true
}

// Update advances the submit timer by dt.
func (m *Modal) Update(dt time.Duration) {
	if !m.submitting {
		return
	}
	m.elapsed += dt
	if m.elapsed < m.closeDelay {
		return
	}
	m.submitting = false
	m.ButtonText = submitLabel
	m.ButtonDisabled = false
	m.Close()
}
