// Package sprout is a minimal 2D game framework for [Ebitengine].
//
// Sprout provides four pieces that work together every frame: a state
// machine that runs the loop, a scheduler that interpolates attributes over
// time, an animator that flips through sprite sheet frames, and a game object
// that draws a sprite rotated and scaled about its center.
//
// # Quick start
//
// Register states on a [Machine] and hand it to [Run], which creates the
// window and loop for you:
//
//	m := sprout.NewMachine()
//	m.Register(&titleState{})
//	m.Register(&tableState{})
//	sprout.Run(m, &sprout.Context{Assets: sprout.InstallAssets()}, sprout.RunConfig{
//		Title: "IncrediCards", Width: 800, Height: 600,
//		Background: sprout.ColorBlack,
//	})
//
// For full control, build a [Game] with [NewGame] and pass it to
// ebiten.RunGame yourself, or call [Machine.Step] and [Machine.Render]
// directly from your own ebiten.Game.
//
// # Frame order
//
// Each frame the machine:
//
//  1. processes a pending [Machine.SwitchTo]: Cleanup of the old state, then
//     Initialize of the new one;
//  2. advances the [Scheduler];
//  3. calls the current state's Update;
//  4. clears the screen and calls the current state's Draw.
//
// A switch requested during Update is seen at the start of the next frame,
// never in the middle of one.
//
// # Interpolation
//
// [Enqueue] and [LerpTo] queue a timed change of one attribute. Queues are
// per owner and play in order:
//
//	sprout.LerpTo(ctx.Tweens, coin, sprout.Location, sprout.Vec2{X: 400, Y: 300}, 0.5)
//	sprout.LerpTo(ctx.Tweens, coin, sprout.Rotation, 180, 0.25)
//
// Easing curves come from [gween] via [EnqueueEase].
//
// # Sprites
//
// A [GameObject] draws either a static [Image] or an [Animator]. Sheets can
// be cut from a grid image ([NewSpriteSheet], [Assets.Sheet]) or collected
// from a TexturePacker atlas ([Atlas.Sheet]).
//
// # ECS integration
//
// State machine lifecycle events can be forwarded to a [Donburi] world with
// the adapter in github.com/phanxgames/sprout/ecs, a separate Go module.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package sprout
