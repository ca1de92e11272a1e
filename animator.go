package sprout

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animator plays a Sheet frame by frame. It is a Sprite, so it can be handed
// straight to a GameObject, which updates it every frame.
//
// An animator is in one of three states: playing, paused, or finished. A
// non-looping animator finishes when it runs past its last frame; it then
// stays on the last frame image with Frame() >= FrameCount() until the next
// Play or Reset.
type Animator struct {
	// Looping wraps playback back to frame 0 after the last frame.
	Looping bool
	// OnFinish, if set, is called once when a non-looping animation runs out
	// of frames.
	OnFinish func()

	sheet      Sheet
	frame      int
	frameCount int
	frameTime  float64
	duration   float64
	transition float64 // seconds per frame
	playing    bool
	speed      float64
	current    *ebiten.Image
}

// NewAnimator creates a looping animator that plays the whole sheet once every
// durationSeconds. Playback starts immediately.
func NewAnimator(sheet Sheet, durationSeconds float64) *Animator {
	a := &Animator{
		Looping: true,
		sheet:   sheet,
		playing: true,
		speed:   1,
	}
	a.Reset()
	a.SetDuration(durationSeconds)
	return a
}

// SetDuration sets the time one full pass over the sheet takes and derives the
// per-frame time from it. Panics if the sheet has no frames.
func (a *Animator) SetDuration(seconds float64) {
	if a.frameCount <= 0 {
		panic("sprout: animator sheet has no frames")
	}
	a.duration = seconds
	a.transition = seconds / float64(a.frameCount)
}

// UseAnimation switches to a different sheet and resets playback. The total
// duration is kept and spread over the new sheet's frames.
func (a *Animator) UseAnimation(sheet Sheet) {
	a.sheet = sheet
	a.Reset()
	a.SetDuration(a.duration)
}

// Reset rewinds to frame 0 without changing the play state.
func (a *Animator) Reset() {
	if a.sheet == nil {
		panic("sprout: animator has no sheet")
	}
	a.frameCount = a.sheet.FrameCount()
	if a.frameCount <= 0 {
		panic(fmt.Sprintf("sprout: animator sheet has %d frames", a.frameCount))
	}
	a.frame = 0
	a.frameTime = 0
	a.current = a.sheet.FrameAt(0)
}

// Play rewinds and starts playback at the given speed multiplier.
func (a *Animator) Play(speed float64) {
	a.speed = speed
	a.Reset()
	a.Unpause()
}

// Pause stops playback on the current frame.
func (a *Animator) Pause() {
	a.playing = false
}

// Unpause resumes playback from the current frame.
func (a *Animator) Unpause() {
	a.playing = true
}

// Update advances playback by dt seconds scaled by the play speed. Several
// frames may be skipped in one call when dt spans more than one frame.
func (a *Animator) Update(dt float64) {
	dt *= a.speed
	if !a.playing || a.frame >= a.frameCount {
		return
	}
	a.frameTime += dt
	if a.transition <= 0 {
		// Zero duration: one frame per update.
		a.frameTime = 0
		a.advance()
		return
	}
	for a.playing && a.frameTime >= a.transition {
		a.frameTime -= a.transition
		a.advance()
	}
}

// advance moves to the next frame, wrapping or finishing as configured.
func (a *Animator) advance() {
	a.frame++
	if a.Looping {
		a.frame %= a.frameCount
	}
	if a.frame >= a.frameCount {
		a.playing = false
		if a.OnFinish != nil {
			a.OnFinish()
		}
		return
	}
	a.current = a.sheet.FrameAt(a.frame)
}

// CurrentImage returns the image of the current frame.
func (a *Animator) CurrentImage() *ebiten.Image {
	return a.current
}

func (a *Animator) sprite() {}

// Frame returns the current frame index. After a non-looping animation
// finishes it is >= FrameCount.
func (a *Animator) Frame() int { return a.frame }

// FrameCount returns the number of frames in the current sheet.
func (a *Animator) FrameCount() int { return a.frameCount }

// Playing reports whether the animator is advancing frames.
func (a *Animator) Playing() bool { return a.playing }

// Finished reports whether a non-looping animation ran out of frames.
func (a *Animator) Finished() bool { return a.frame >= a.frameCount }

// Speed returns the playback speed multiplier.
func (a *Animator) Speed() float64 { return a.speed }

// Duration returns the time of one full pass over the sheet.
func (a *Animator) Duration() float64 { return a.duration }

// FrameDuration returns the time each frame is shown.
func (a *Animator) FrameDuration() float64 { return a.transition }
