package sprout

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

// counter is a minimal interpolation owner.
type counter struct {
	x float64
}

var counterX = FloatMember("x",
	func(c *counter) float64 { return c.x },
	func(c *counter, v float64) { c.x = v },
)

func TestLerpCompletesExactlyAtEnd(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	Enqueue(s, c, counterX, 0, 10, 1.0)

	s.Advance(0.4)
	if !approxEqual(c.x, 4, epsilon) {
		t.Errorf("after 0.4s x = %v, want ~4", c.x)
	}
	s.Advance(0.4)
	if !approxEqual(c.x, 8, epsilon) {
		t.Errorf("after 0.8s x = %v, want ~8", c.x)
	}
	s.Advance(0.4)
	if c.x != 10 {
		t.Errorf("after 1.2s x = %v, want exactly 10", c.x)
	}
	if s.Tracking(c) {
		t.Error("owner should be removed once its queue drains")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestLerpNoOvershootNonRepresentableEnd(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	Enqueue(s, c, counterX, 0.1, 0.3, 0.5)
	s.Advance(10)
	if c.x != 0.3 {
		t.Errorf("x = %v, want exactly 0.3", c.x)
	}
}

func TestLerpQueueIsFIFO(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	Enqueue(s, c, counterX, 0, 10, 1)
	Enqueue(s, c, counterX, 10, 20, 1)

	if got := s.Pending(c); got != 2 {
		t.Fatalf("Pending = %d, want 2", got)
	}
	s.Advance(1)
	if c.x != 10 {
		t.Errorf("x = %v, want 10 after first lerp", c.x)
	}
	if got := s.Pending(c); got != 1 {
		t.Errorf("Pending = %d, want 1", got)
	}
	s.Advance(0.5)
	if math.Abs(c.x-15) > epsilon {
		t.Errorf("x = %v, want ~15", c.x)
	}
	s.Advance(0.5)
	if c.x != 20 || s.Tracking(c) {
		t.Errorf("x = %v tracked = %v, want 20 and untracked", c.x, s.Tracking(c))
	}
}

func TestLerpDuplicateCollapse(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	Enqueue(s, c, counterX, 0, 10, 1)
	Enqueue(s, c, counterX, 0, 10, 1)

	s.Advance(1)
	if c.x != 10 {
		t.Fatalf("x = %v, want 10", c.x)
	}
	if s.Pending(c) != 0 {
		t.Errorf("duplicate should be dropped, Pending = %d", s.Pending(c))
	}
	if s.Tracking(c) {
		t.Error("owner should no longer be tracked")
	}

	// The dropped duplicate must not replay from its start value.
	s.Advance(0.5)
	if c.x != 10 {
		t.Errorf("x = %v after extra advance, want 10", c.x)
	}
}

func TestLerpCollapseStopsAtDifferentEnd(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	Enqueue(s, c, counterX, 0, 10, 1)
	Enqueue(s, c, counterX, 0, 10, 1)
	Enqueue(s, c, counterX, 10, 0, 1)
	Enqueue(s, c, counterX, 0, 10, 1)

	s.Advance(1)
	if got := s.Pending(c); got != 2 {
		t.Fatalf("Pending = %d, want 2 (collapse stops at end=0)", got)
	}
	s.Advance(0.5)
	if math.Abs(c.x-5) > epsilon {
		t.Errorf("x = %v, want ~5 while heading to 0", c.x)
	}
}

func TestLerpOwnersByIdentity(t *testing.T) {
	s := NewScheduler()
	a := &counter{}
	b := &counter{}
	Enqueue(s, a, counterX, 0, 10, 1)
	Enqueue(s, b, counterX, 0, 20, 2)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2 distinct owners with equal fields", s.Len())
	}
	s.Advance(1)
	if a.x != 10 {
		t.Errorf("a.x = %v, want 10", a.x)
	}
	if math.Abs(b.x-10) > epsilon {
		t.Errorf("b.x = %v, want ~10", b.x)
	}
	if s.Tracking(a) || !s.Tracking(b) {
		t.Errorf("tracking a=%v b=%v, want false true", s.Tracking(a), s.Tracking(b))
	}
}

func TestLerpZeroDurationCompletesOnNextAdvance(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	Enqueue(s, c, counterX, 0, 7, 0)
	if c.x != 0 {
		t.Fatalf("enqueue must not apply values, x = %v", c.x)
	}
	s.Advance(0)
	if c.x != 7 {
		t.Errorf("x = %v, want 7", c.x)
	}
	if s.Tracking(c) {
		t.Error("owner should be removed")
	}
}

func TestLerpNegativeDuration(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	Enqueue(s, c, counterX, 0, 3, -1)
	s.Advance(1.0 / 60)
	if c.x != 3 {
		t.Errorf("x = %v, want 3", c.x)
	}
}

func TestLerpToCapturesStartLazily(t *testing.T) {
	s := NewScheduler()
	c := &counter{x: 2}
	LerpTo(s, c, counterX, 4, 1)
	LerpTo(s, c, counterX, 8, 1)

	s.Advance(1)
	if c.x != 4 {
		t.Fatalf("x = %v, want 4", c.x)
	}
	s.Advance(0.5)
	if math.Abs(c.x-6) > epsilon {
		t.Errorf("x = %v, want ~6 (second lerp starts from 4)", c.x)
	}
}

func TestEnqueueEase(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	EnqueueEase(s, c, counterX, 0, 10, 1, ease.InQuad)
	s.Advance(0.5)
	if math.Abs(c.x-2.5) > 1e-4 {
		t.Errorf("x = %v, want ~2.5 with InQuad at t=0.5", c.x)
	}
	s.Advance(0.5)
	if c.x != 10 {
		t.Errorf("x = %v, want 10", c.x)
	}
}

func TestEnqueueEaseOvershoots(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	EnqueueEase(s, c, counterX, 0, 10, 1, ease.OutBack)
	s.Advance(0.7)
	if c.x <= 10 {
		t.Errorf("x = %v at t=0.7, want past 10 with OutBack", c.x)
	}
	if !approxEqual(c.x, 10.8, 0.01) {
		t.Errorf("x = %v at t=0.7, want ~10.8", c.x)
	}
	s.Advance(0.5)
	if c.x != 10 {
		t.Errorf("x = %v after completion, want exactly 10", c.x)
	}
	if s.Tracking(c) {
		t.Error("owner should be removed after completion")
	}
}

func TestEnqueueEaseUndershootsStart(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	EnqueueEase(s, c, counterX, 0, 10, 1, ease.InBack)
	s.Advance(0.2)
	if c.x >= 0 {
		t.Errorf("x = %v at t=0.2, want below start with InBack", c.x)
	}
}

func TestEnqueueEaseNilIsLinear(t *testing.T) {
	s := NewScheduler()
	c := &counter{}
	EnqueueEase(s, c, counterX, 0, 10, 1, nil)
	s.Advance(0.25)
	if c.x != 2.5 {
		t.Errorf("x = %v, want exactly 2.5", c.x)
	}
}

func TestLerpVecMember(t *testing.T) {
	s := NewScheduler()
	o := NewObject(NewImage(nil))
	Enqueue(s, o, Location, Vec2{0, 0}, Vec2{100, 50}, 2)
	s.Advance(1)
	if !approxEqual(o.Location.X, 50, epsilon) || !approxEqual(o.Location.Y, 25, epsilon) {
		t.Errorf("Location = %v, want ~{50 25}", o.Location)
	}
	s.Advance(1)
	if o.Location != (Vec2{100, 50}) {
		t.Errorf("Location = %v, want {100 50}", o.Location)
	}
}

func TestLerpRotationStaysNormalized(t *testing.T) {
	s := NewScheduler()
	o := NewObject(NewImage(nil))
	Enqueue(s, o, Rotation, 0, 720, 1)
	for _, want := range []float64{180, 0, 180} {
		s.Advance(0.25)
		if r := o.Rotation(); !approxEqual(r, want, epsilon) {
			t.Fatalf("rotation = %v, want ~%v", r, want)
		}
	}
	s.Advance(0.25)
	if o.Rotation() != 0 {
		t.Errorf("rotation = %v, want 0 (720 normalized)", o.Rotation())
	}
}

func TestSchedulerRemoveAndClear(t *testing.T) {
	s := NewScheduler()
	a := &counter{}
	b := &counter{}
	Enqueue(s, a, counterX, 0, 1, 1)
	Enqueue(s, b, counterX, 0, 1, 1)

	s.Remove(a)
	s.Remove(a) // no-op
	if s.Tracking(a) || s.Len() != 1 {
		t.Errorf("after Remove: tracking=%v len=%d", s.Tracking(a), s.Len())
	}
	s.Advance(1)
	if a.x != 0 {
		t.Errorf("removed owner was still animated, x = %v", a.x)
	}

	Enqueue(s, a, counterX, 0, 1, 1)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d", s.Len())
	}
}

func TestEnqueuePanicsOnInvalidMember(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for member without accessors")
		}
	}()
	Enqueue(NewScheduler(), &counter{}, Member[*counter, float64]{Name: "bogus"}, 0, 1, 1)
}

func TestSchedulerSetLoggerNil(t *testing.T) {
	s := NewScheduler()
	s.SetLogger(nil) // should not panic
	Enqueue(s, &counter{}, counterX, 0, 1, 0)
	s.Advance(0)
}
