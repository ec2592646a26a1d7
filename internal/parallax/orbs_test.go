package parallax

import (
	"math"
	"testing"
)

func TestMoveScalesPerOrb(t *testing.T) {
	o := New(1)
	o.Move(1000, 250, 1000, 1000) // mx = 0.5, my = -0.25
	for i, orb := range o.Items {
		speed := float64(i+1) * 15
		if math.Abs(orb.OffsetX-0.5*speed) > 1e-12 || math.Abs(orb.OffsetY+0.25*speed) > 1e-12 {
			t.Fatalf("orb %d offset (%v, %v), speed %v", i, orb.OffsetX, orb.OffsetY, speed)
		}
	}
}

func TestMoveCentreIsNeutral(t *testing.T) {
	o := New(1)
	o.Move(400, 300, 800, 600)
	for i, orb := range o.Items {
		if orb.OffsetX != 0 || orb.OffsetY != 0 {
			t.Fatalf("orb %d moved at centre: %+v", i, orb)
		}
	}
	o.Move(10, 10, 0, 600)
	if o.Items[0].OffsetX != 0 {
		t.Fatalf("zero-width viewport applied an offset")
	}
}

func TestStepDriftIsBounded(t *testing.T) {
	o := New(42)
	for n := 0; n < 600; n++ {
		o.Step(1.0 / 60)
		for i, orb := range o.Items {
			// octave sums can exceed 1 slightly, allow twice the nominal span
			if math.Abs(orb.DriftX) > 24 || math.Abs(orb.DriftY) > 24 {
				t.Fatalf("step %d orb %d drift too large: %v, %v", n, i, orb.DriftX, orb.DriftY)
			}
		}
	}
	x, y := o.Items[0].Position(1000, 1000)
	if math.Abs(x-180) > 24 || math.Abs(y-250) > 24 {
		t.Fatalf("position strayed: %v, %v", x, y)
	}
}
