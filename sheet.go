package sprout

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the drawable carried by a GameObject. Only *Image and *Animator
// implement it.
type Sprite interface {
	// CurrentImage returns the image to draw this frame. May be nil.
	CurrentImage() *ebiten.Image
	// Update advances any internal playback by dt seconds.
	Update(dt float64)

	sprite()
}

// Image is a static sprite. A nil image is allowed and draws nothing.
type Image struct {
	img *ebiten.Image
}

// NewImage wraps img as a static sprite.
func NewImage(img *ebiten.Image) *Image {
	return &Image{img: img}
}

// CurrentImage returns the wrapped image.
func (i *Image) CurrentImage() *ebiten.Image {
	return i.img
}

// Update is a no-op; static images do not animate.
func (i *Image) Update(dt float64) {}

func (i *Image) sprite() {}

// Sheet is an indexed sequence of frame images used for flip-book animation.
type Sheet interface {
	FrameCount() int
	FrameAt(index int) *ebiten.Image
}

// SpriteSheet slices a single image into equally sized frames, row-major
// from the top-left. Frames are cut once at construction.
type SpriteSheet struct {
	frames []*ebiten.Image
	frameW int
	frameH int
}

// NewSpriteSheet cuts img into frameW x frameH frames. count limits the
// number of frames taken; pass 0 to use every full cell. Panics if the frame
// size is not positive.
func NewSpriteSheet(img *ebiten.Image, frameW, frameH, count int) *SpriteSheet {
	if frameW <= 0 || frameH <= 0 {
		panic(fmt.Sprintf("sprout: invalid sprite sheet frame size %dx%d", frameW, frameH))
	}
	b := img.Bounds()
	cols := b.Dx() / frameW
	rows := b.Dy() / frameH
	total := cols * rows
	if count <= 0 || count > total {
		count = total
	}
	ss := &SpriteSheet{
		frames: make([]*ebiten.Image, 0, count),
		frameW: frameW,
		frameH: frameH,
	}
	for i := 0; i < count; i++ {
		x := b.Min.X + (i%cols)*frameW
		y := b.Min.Y + (i/cols)*frameH
		sub := img.SubImage(image.Rect(x, y, x+frameW, y+frameH)).(*ebiten.Image)
		ss.frames = append(ss.frames, sub)
	}
	return ss
}

// FrameCount returns the number of frames in the sheet.
func (s *SpriteSheet) FrameCount() int {
	return len(s.frames)
}

// FrameAt returns the frame at index. Panics if index is out of range.
func (s *SpriteSheet) FrameAt(index int) *ebiten.Image {
	return s.frames[index]
}

// FrameSize returns the size of one frame in pixels.
func (s *SpriteSheet) FrameSize() (w, h int) {
	return s.frameW, s.frameH
}

// FrameSheet is a Sheet over an explicit list of frames, such as the regions
// returned by Atlas.Sheet.
type FrameSheet []*ebiten.Image

// FrameCount returns the number of frames.
func (f FrameSheet) FrameCount() int {
	return len(f)
}

// FrameAt returns the frame at index.
func (f FrameSheet) FrameAt(index int) *ebiten.Image {
	return f[index]
}
