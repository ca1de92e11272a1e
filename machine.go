package sprout

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// State is one mode of the application, such as a menu or a battle. The
// Machine calls Initialize when the state becomes current, Update and Draw
// once per frame while it is current, and Cleanup when it is left.
type State interface {
	Initialize(ctx *Context)
	Update(dt float64)
	Draw(screen *ebiten.Image)
	Cleanup()
}

// StateFuncs adapts four plain functions into a State. Nil fields are no-ops.
type StateFuncs struct {
	OnInitialize func(ctx *Context)
	OnUpdate     func(dt float64)
	OnDraw       func(screen *ebiten.Image)
	OnCleanup    func()
}

func (s StateFuncs) Initialize(ctx *Context) {
	if s.OnInitialize != nil {
		s.OnInitialize(ctx)
	}
}

func (s StateFuncs) Update(dt float64) {
	if s.OnUpdate != nil {
		s.OnUpdate(dt)
	}
}

func (s StateFuncs) Draw(screen *ebiten.Image) {
	if s.OnDraw != nil {
		s.OnDraw(screen)
	}
}

func (s StateFuncs) Cleanup() {
	if s.OnCleanup != nil {
		s.OnCleanup()
	}
}

// Context is handed to State.Initialize. It carries the shared services a
// state needs to set itself up.
type Context struct {
	// Size is the logical screen size.
	Size    Vec2
	Machine *Machine
	Tweens  *Scheduler
	Assets  *Assets
	Log     *zap.Logger
}

// Machine is an ordered collection of states that drives the frame loop.
// Registration order is the state index. Switching is requested with
// SwitchTo and takes effect at the start of the next frame: the old state's
// Cleanup runs, then the new state's Initialize, before either Update or
// Draw of that frame. Only one switch is processed per frame; the last
// SwitchTo before the frame boundary wins.
type Machine struct {
	states   []State
	current  int
	previous int
	started  bool
	quit     bool
	frame    uint64

	tweens *Scheduler
	sink   EventSink
	log    *zap.Logger
}

// NewMachine creates an empty machine with its own Scheduler.
func NewMachine() *Machine {
	return &Machine{
		tweens: NewScheduler(),
		log:    zap.NewNop(),
	}
}

// Register appends a state and returns its index.
// Panics if state is nil.
func (m *Machine) Register(state State) int {
	if state == nil {
		panic("sprout: cannot register nil state")
	}
	m.states = append(m.states, state)
	return len(m.states) - 1
}

// SwitchTo requests a switch to the state at index. The switch happens at the
// start of the next Step. Panics if index is out of range.
func (m *Machine) SwitchTo(index int) {
	if index < 0 || index >= len(m.states) {
		panic(fmt.Sprintf("sprout: state index %d out of range [0, %d)", index, len(m.states)))
	}
	m.current = index
}

// Current returns the index of the current (or requested) state.
func (m *Machine) Current() int { return m.current }

// Previous returns the index of the state that ran the last frame.
func (m *Machine) Previous() int { return m.previous }

// Len returns the number of registered states.
func (m *Machine) Len() int { return len(m.states) }

// Frame returns the number of completed Steps.
func (m *Machine) Frame() uint64 { return m.frame }

// Scheduler returns the machine's interpolation scheduler.
func (m *Machine) Scheduler() *Scheduler { return m.tweens }

// SetLogger sets the logger used by the machine and its scheduler.
func (m *Machine) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	m.log = l
	m.tweens.SetLogger(l)
}

// SetEventSink sets the optional lifecycle observer.
func (m *Machine) SetEventSink(sink EventSink) {
	m.sink = sink
}

// Quit stops the run loop at the end of the current frame. No Cleanup is
// called.
func (m *Machine) Quit() {
	if m.quit {
		return
	}
	m.quit = true
	m.log.Info("quit requested", zap.Int("state", m.current))
	m.emit(EventQuit, m.current)
}

// Quitting reports whether Quit has been called.
func (m *Machine) Quitting() bool { return m.quit }

// Start initializes the current state. Run calls it once before the first
// frame; call it yourself when driving Step and Render from your own loop.
// Panics if no states are registered or Start was already called.
func (m *Machine) Start(ctx *Context) {
	if len(m.states) == 0 {
		panic("sprout: machine has no states")
	}
	if m.started {
		panic("sprout: machine already started")
	}
	m.started = true
	m.previous = m.current
	m.states[m.current].Initialize(ctx)
	m.emit(EventStateEnter, m.current)
}

// Step runs the update half of one frame: a pending state switch, the
// scheduler, then the current state's Update.
func (m *Machine) Step(ctx *Context, dt float64) {
	if !m.started {
		m.Start(ctx)
	}
	if m.current != m.previous {
		next := m.current
		old := m.previous
		m.states[old].Cleanup()
		m.emit(EventStateExit, old)
		m.states[next].Initialize(ctx)
		m.previous = next
		m.log.Debug("state switched", zap.Int("from", old), zap.Int("to", next))
		m.emit(EventStateEnter, next)
	}
	m.tweens.Advance(dt)
	m.states[m.previous].Update(dt)
	m.frame++
}

// Render runs the draw half of one frame: clear to background, then the
// current state's Draw.
func (m *Machine) Render(screen *ebiten.Image, background Color) {
	screen.Fill(background.RGBA())
	if !m.started {
		return
	}
	m.states[m.previous].Draw(screen)
}

func (m *Machine) emit(t EventType, state int) {
	if m.sink == nil {
		return
	}
	m.sink.EmitEvent(Event{Type: t, State: state, Frame: m.frame})
}
