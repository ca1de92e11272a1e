package sprout

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Member is a typed handle to one animatable attribute of an owner of type O.
// Get and Set must go through the owner's own accessors so that any
// normalization the owner applies (rotation wrapping, for example) still
// holds while the attribute is being interpolated.
type Member[O comparable, T comparable] struct {
	Name string
	Get  func(O) T
	Set  func(O, T)
	Lerp func(a, b T, t float64) T
}

// FloatMember builds a Member for a float64 attribute.
func FloatMember[O comparable](name string, get func(O) float64, set func(O, float64)) Member[O, float64] {
	return Member[O, float64]{Name: name, Get: get, Set: set, Lerp: lerpFloat}
}

// VecMember builds a Member for a Vec2 attribute.
func VecMember[O comparable](name string, get func(O) Vec2, set func(O, Vec2)) Member[O, Vec2] {
	return Member[O, Vec2]{Name: name, Get: get, Set: set, Lerp: lerpVec}
}

func lerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{lerpFloat(a.X, b.X, t), lerpFloat(a.Y, b.Y, t)}
}

func (m Member[O, T]) valid() bool {
	return m.Get != nil && m.Set != nil && m.Lerp != nil
}

// interpolator is one pending timed change of a single attribute.
type interpolator interface {
	// tick advances elapsed time by dt, writes the blended value and reports
	// whether the interpolator completed.
	tick(dt float64) bool
	// atEnd reports whether the owner's attribute already equals the end value.
	atEnd() bool
	member() string
}

type lerp[O comparable, T comparable] struct {
	owner    O
	m        Member[O, T]
	start    T
	end      T
	duration float64
	elapsed  float64
	progress *gween.Tween // nil for a plain linear blend
	lazy     bool         // capture start from the owner on the first tick
}

func (l *lerp[O, T]) tick(dt float64) bool {
	if l.lazy {
		l.start = l.m.Get(l.owner)
		l.lazy = false
	}
	l.elapsed += dt
	if l.elapsed >= l.duration {
		l.m.Set(l.owner, l.end)
		return true
	}
	t := l.elapsed / l.duration
	if l.progress != nil {
		// Eased progress may leave [0, 1] for curves that overshoot.
		eased, _ := l.progress.Set(float32(l.elapsed))
		t = float64(eased)
	}
	l.m.Set(l.owner, l.m.Lerp(l.start, l.end, t))
	return false
}

func (l *lerp[O, T]) atEnd() bool {
	return l.m.Get(l.owner) == l.end
}

func (l *lerp[O, T]) member() string {
	return l.m.Name
}

// Scheduler owns every pending interpolation, keyed by owner identity. Each
// owner has a FIFO queue and only the head of a queue is played. Call Advance
// once per frame; Machine does this before the active state's Update.
//
// Owners are compared with ==, so pass pointers: two distinct objects with
// equal fields are tracked separately.
type Scheduler struct {
	queues map[any][]interpolator
	log    *zap.Logger
	drop   []any // reused removal buffer
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		queues: make(map[any][]interpolator),
		log:    zap.NewNop(),
	}
}

// SetLogger sets the logger used for debug output. A nil logger disables it.
func (s *Scheduler) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
}

// Enqueue appends a linear interpolation of member on owner from start to end
// over duration seconds. A duration <= 0 completes on the next Advance.
// Panics if member is incomplete.
func Enqueue[O comparable, T comparable](s *Scheduler, owner O, member Member[O, T], start, end T, duration float64) {
	EnqueueEase(s, owner, member, start, end, duration, nil)
}

// EnqueueEase is Enqueue with an easing function from gween/ease. A nil fn
// blends linearly. Curves such as ease.OutBack may carry the attribute past
// end before it settles; the final value is always exactly end.
func EnqueueEase[O comparable, T comparable](s *Scheduler, owner O, member Member[O, T], start, end T, duration float64, fn ease.TweenFunc) {
	s.push(owner, newLerp(owner, member, start, end, duration, fn, false))
}

// LerpTo appends a linear interpolation of member to end. The start value is
// read from the owner when the interpolation reaches the head of its queue,
// so chained calls animate from wherever the previous one finished.
func LerpTo[O comparable, T comparable](s *Scheduler, owner O, member Member[O, T], end T, duration float64) {
	var zero T
	s.push(owner, newLerp(owner, member, zero, end, duration, nil, true))
}

func newLerp[O comparable, T comparable](owner O, member Member[O, T], start, end T, duration float64, fn ease.TweenFunc, lazy bool) *lerp[O, T] {
	if !member.valid() {
		panic(fmt.Sprintf("sprout: interpolation member %q has no accessors", member.Name))
	}
	l := &lerp[O, T]{
		owner:    owner,
		m:        member,
		start:    start,
		end:      end,
		duration: duration,
		lazy:     lazy,
	}
	if fn != nil {
		l.progress = gween.New(0, 1, float32(duration), fn)
	}
	return l
}

func (s *Scheduler) push(owner any, l interpolator) {
	if owner == nil {
		panic("sprout: cannot interpolate a nil owner")
	}
	s.queues[owner] = append(s.queues[owner], l)
}

// Advance plays the head interpolator of every owner by dt seconds. A
// completed head is dequeued together with any directly following entries
// whose end value the attribute already holds. Owners left with an empty
// queue are removed before Advance returns.
func (s *Scheduler) Advance(dt float64) {
	s.drop = s.drop[:0]
	for owner, q := range s.queues {
		if len(q) == 0 {
			s.drop = append(s.drop, owner)
			continue
		}
		if q[0].tick(dt) {
			done := q[0].member()
			q = popFront(q)
			collapsed := 0
			for len(q) > 0 && q[0].atEnd() {
				q = popFront(q)
				collapsed++
			}
			s.log.Debug("interpolation complete",
				zap.String("member", done),
				zap.Int("collapsed", collapsed),
				zap.Int("remaining", len(q)))
			s.queues[owner] = q
		}
		if len(q) == 0 {
			s.drop = append(s.drop, owner)
		}
	}
	for _, owner := range s.drop {
		delete(s.queues, owner)
	}
	s.drop = s.drop[:0]
}

// popFront removes the head without retaining a pointer in the backing array.
func popFront(q []interpolator) []interpolator {
	q[0] = nil
	return q[1:]
}

// Tracking reports whether owner has pending interpolations.
func (s *Scheduler) Tracking(owner any) bool {
	_, ok := s.queues[owner]
	return ok
}

// Pending returns the number of queued interpolations for owner.
func (s *Scheduler) Pending(owner any) int {
	return len(s.queues[owner])
}

// Len returns the number of tracked owners.
func (s *Scheduler) Len() int {
	return len(s.queues)
}

// Remove discards every pending interpolation of owner. The attribute keeps
// whatever value it had.
func (s *Scheduler) Remove(owner any) {
	if _, ok := s.queues[owner]; !ok {
		return
	}
	delete(s.queues, owner)
	s.log.Debug("interpolation owner removed")
}

// Clear discards all pending interpolations.
func (s *Scheduler) Clear() {
	clear(s.queues)
}
