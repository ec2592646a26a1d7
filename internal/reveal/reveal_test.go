package reveal

import (
	"image"
	"math"
	"testing"
	"time"
)

func TestRatio(t *testing.T) {
	root := image.Rect(0, 0, 100, 100)
	cases := []struct {
		name string
		r    image.Rectangle
		want float64
	}{
		{"inside", image.Rect(10, 10, 20, 20), 1},
		{"half", image.Rect(0, 50, 10, 150), 0.5},
		{"outside", image.Rect(0, 200, 10, 210), 0},
		{"empty", image.Rect(5, 5, 5, 5), 0},
	}
	for _, c := range cases {
		if got := Ratio(c.r, root); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestUpdateRevealsPastThresholdWithMargin(t *testing.T) {
	o := NewObserver()
	// 100px tall element starting 45px above the bottom edge of an 800px view:
	// the 50px margin hides all of it.
	hidden := o.Observe(image.Rect(0, 755, 200, 855), Up)
	// 9px inside the shrunk root: 9% visible, below the 10% threshold.
	almost := o.Observe(image.Rect(0, 741, 200, 841), Left)
	// 10px inside the shrunk root: exactly 10%.
	shown := o.Observe(image.Rect(0, 740, 200, 840), Right)

	o.Update(image.Rect(0, 0, 1280, 800), 0)

	if hidden.Revealed || almost.Revealed {
		t.Fatalf("revealed too early: hidden=%v almost=%v", hidden.Revealed, almost.Revealed)
	}
	if !shown.Revealed {
		t.Fatalf("element at threshold not revealed")
	}
}

func TestRevealIsOneWay(t *testing.T) {
	o := NewObserver()
	e := o.Observe(image.Rect(100, 100, 200, 200), Up)
	o.Update(image.Rect(0, 0, 800, 600), 0)
	if !e.Revealed {
		t.Fatalf("not revealed")
	}
	// Scroll far away.
	o.Update(image.Rect(0, 5000, 800, 5600), 0)
	if !e.Revealed {
		t.Fatalf("reveal reverted")
	}
}

func TestProgressAndOffsets(t *testing.T) {
	o := NewObserver()
	e := o.Observe(image.Rect(100, 100, 200, 200), Left)
	if dx, _ := e.Offset(); dx != -60 {
		t.Fatalf("initial offset: got %v", dx)
	}
	o.Update(image.Rect(0, 0, 800, 600), o.Duration/2)
	if e.Progress != 0.5 {
		t.Fatalf("half progress: got %v", e.Progress)
	}
	o.Update(image.Rect(0, 0, 800, 600), time.Hour)
	if e.Progress != 1 || e.Alpha() != 1 {
		t.Fatalf("final: progress=%v alpha=%v", e.Progress, e.Alpha())
	}
	if dx, dy := e.Offset(); dx != 0 || dy != 0 {
		t.Fatalf("final offset: %v,%v", dx, dy)
	}
}
