package sprout

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is a positioned, rotated and scaled entity wrapping a Sprite.
// Location, Velocity and Scale may be read directly; write Location,
// Velocity and rotation through the setters so their invariants hold.
type GameObject struct {
	Location Vec2
	Velocity Vec2
	Scale    float64
	Active   bool

	rotation float64 // degrees, always in [0, 360)
	sprite   Sprite
}

// Animatable members of GameObject for use with Enqueue and LerpTo.
var (
	Location = VecMember("location", (*GameObject).location, (*GameObject).SetLocation)
	Velocity = VecMember("velocity", (*GameObject).velocity, (*GameObject).SetVelocity)
	Rotation = FloatMember("rotation", (*GameObject).Rotation, (*GameObject).SetRotation)
	Scale    = FloatMember("scale", (*GameObject).scale, (*GameObject).SetScale)
)

// NewObject creates an inactive object at the origin with scale 1 drawing
// sprite. Panics if sprite is nil.
func NewObject(sprite Sprite) *GameObject {
	o := &GameObject{Scale: 1}
	o.SetSprite(sprite)
	return o
}

func (o *GameObject) location() Vec2 { return o.Location }
func (o *GameObject) velocity() Vec2 { return o.Velocity }
func (o *GameObject) scale() float64 { return o.Scale }

// SetLocation sets the object's center point.
func (o *GameObject) SetLocation(v Vec2) {
	o.Location = v
}

// MoveTo sets the object's center point from two coordinates.
func (o *GameObject) MoveTo(x, y float64) {
	o.Location = Vec2{x, y}
}

// SetVelocity sets the object's velocity in units per second.
func (o *GameObject) SetVelocity(v Vec2) {
	o.Velocity = v
}

// Rotation returns the rotation in degrees, in [0, 360).
func (o *GameObject) Rotation() float64 {
	return o.rotation
}

// SetRotation sets the rotation in degrees. Positive values turn the sprite
// counter-clockwise. The stored value is wrapped into [0, 360), so 450
// becomes 90 and -30 becomes 330.
func (o *GameObject) SetRotation(deg float64) {
	o.rotation = normalizeDegrees(deg)
}

// SetScale sets the uniform draw scale.
func (o *GameObject) SetScale(s float64) {
	o.Scale = s
}

// Sprite returns the object's drawable.
func (o *GameObject) Sprite() Sprite {
	return o.sprite
}

// SetSprite replaces the object's drawable. Panics on a nil sprite or a nil
// *Image / *Animator.
func (o *GameObject) SetSprite(s Sprite) {
	switch v := s.(type) {
	case *Image:
		if v == nil {
			panic("sprout: nil *Image sprite")
		}
	case *Animator:
		if v == nil {
			panic("sprout: nil *Animator sprite")
		}
	default:
		panic(fmt.Sprintf("sprout: unsupported sprite type %T", s))
	}
	o.sprite = s
}

// Update moves the object by its velocity and advances its sprite.
func (o *GameObject) Update(dt float64) {
	o.Location = o.Location.Add(o.Velocity.Mul(dt))
	o.sprite.Update(dt)
}

// Draw renders the sprite's current image rotated and scaled about its
// center, centered on Location.
func (o *GameObject) Draw(screen *ebiten.Image) {
	img := o.sprite.CurrentImage()
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = geoM(objectTransform(o, float64(b.Dx()), float64(b.Dy())))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}

// TransformedBounds returns the axis-aligned rectangle covered by the drawn
// sprite. Returns a zero Rect centered on Location when there is no image.
func (o *GameObject) TransformedBounds() Rect {
	img := o.sprite.CurrentImage()
	if img == nil {
		return Rect{X: o.Location.X, Y: o.Location.Y}
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	return transformedBounds(objectTransform(o, w, h), w, h)
}
