package sprout

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the target frame rate. Zero means DefaultTPS.
	TPS int
	// Background is the color the screen is cleared to every frame.
	Background Color
	Fullscreen bool
	// ShowFPS draws the FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug installs a development logger when the Context has none.
	Debug bool
	// ScreenshotDir is where Game.Screenshot writes PNGs. Defaults to
	// "screenshots".
	ScreenshotDir string
	// Script, if set, drives the game for an automated smoke run.
	Script *Script
}

// Game adapts a Machine to ebiten.Game. Run creates one; construct it with
// NewGame to drive Ebitengine yourself.
type Game struct {
	machine *Machine
	ctx     *Context
	cfg     RunConfig
	clock   *Clock
	fps     *fpsOverlay
	script  *Script

	screenshotQueue []string
}

// NewGame wires m to ctx and cfg. ctx.Machine and ctx.Tweens are filled in
// from m, ctx.Size from cfg, and ctx.Log with a no-op or development logger.
func NewGame(m *Machine, ctx *Context, cfg RunConfig) *Game {
	if ctx == nil {
		ctx = &Context{}
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	ctx.Machine = m
	ctx.Tweens = m.Scheduler()
	if ctx.Size == (Vec2{}) {
		ctx.Size = Vec2{float64(cfg.Width), float64(cfg.Height)}
	}
	if ctx.Log == nil {
		ctx.Log = zap.NewNop()
		if cfg.Debug {
			if l, err := zap.NewDevelopment(); err == nil {
				ctx.Log = l
			}
		}
	}
	m.SetLogger(ctx.Log)
	g := &Game{
		machine: m,
		ctx:     ctx,
		cfg:     cfg,
		clock:   NewClock(cfg.TPS),
		script:  cfg.Script,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Context returns the context passed to every state's Initialize.
func (g *Game) Context() *Context {
	return g.ctx
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.machine.Quitting() {
		return ebiten.Termination
	}
	if g.script != nil {
		g.script.step(g)
	}
	dt := g.clock.Tick()
	g.machine.Step(g.ctx, dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.machine.Quitting() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.machine.Render(screen, g.cfg.Background)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width <= 0 || g.cfg.Height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives m until the window is closed or Quit is
// called. The first registered (or SwitchTo'd) state is initialized before
// the first frame. No state's Cleanup is called on exit.
func Run(m *Machine, ctx *Context, cfg RunConfig) error {
	g := NewGame(m, ctx, cfg)

	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetTPS(tpsOrDefault(cfg.TPS))
	ebiten.SetFullscreen(cfg.Fullscreen)

	m.Start(g.ctx)
	g.ctx.Log.Info("run loop starting",
		zap.String("title", cfg.Title),
		zap.Int("states", m.Len()),
		zap.Int("tps", tpsOrDefault(cfg.TPS)))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("sprout: run: %w", err)
	}
	return nil
}

func tpsOrDefault(tps int) int {
	if tps <= 0 {
		return DefaultTPS
	}
	return tps
}
