package sprout

import (
	"cmp"
	"encoding/json"
	"fmt"
	"image"
	"math"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// region describes a sub-rectangle within an atlas page.
type region struct {
	page      int
	x, y      int // top-left corner of the sub-image rect within the atlas page
	w, h      int // unrotated size; a rotated region occupies h x w on the page
	originalW int // untrimmed sprite width as authored
	originalH int // untrimmed sprite height as authored
	offsetX   int // horizontal trim offset
	offsetY   int // vertical trim offset
	rotated   bool
}

// Atlas holds one or more atlas page images and a map of named regions
// parsed from TexturePacker JSON.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]region
	frames  map[string]*ebiten.Image
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	// Peek at top-level keys to detect format.
	var top struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &top); err != nil {
		return nil, fmt.Errorf("sprout: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]region),
		frames:  make(map[string]*ebiten.Image),
	}

	switch {
	case top.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(top.Textures, &textures); err != nil {
			return nil, fmt.Errorf("sprout: failed to parse atlas textures array: %w", err)
		}
		for i, tex := range textures {
			for name, f := range tex.Frames {
				atlas.regions[name] = frameToRegion(f, i)
			}
		}
	case top.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(top.Frames, &frames); err != nil {
			return nil, fmt.Errorf("sprout: failed to parse atlas frames: %w", err)
		}
		for name, f := range frames {
			atlas.regions[name] = frameToRegion(f, 0)
		}
	default:
		return nil, fmt.Errorf("sprout: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	for name, r := range atlas.regions {
		if r.page >= len(pages) || pages[r.page] == nil {
			return nil, fmt.Errorf("sprout: atlas region %q references missing page %d", name, r.page)
		}
	}
	return atlas, nil
}

// Has reports whether the atlas contains the named region.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Image returns the named region as an image of its untrimmed, unrotated
// size. Panics if the region does not exist.
func (a *Atlas) Image(name string) *ebiten.Image {
	if img, ok := a.frames[name]; ok {
		return img
	}
	r, ok := a.regions[name]
	if !ok {
		panic(fmt.Sprintf("sprout: atlas region %q not found", name))
	}
	img := regionImage(a.Pages[r.page], r)
	a.frames[name] = img
	return img
}

// Sprite returns the named region as a static sprite.
func (a *Atlas) Sprite(name string) *Image {
	return NewImage(a.Image(name))
}

// Sheet collects every region whose name starts with prefix into a frame
// sequence ordered by the trailing frame number ("run_2.png" before
// "run_10.png"). Panics if nothing matches, since an empty animation is a
// content error.
func (a *Atlas) Sheet(prefix string) FrameSheet {
	var names []string
	for name := range a.regions {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		panic(fmt.Sprintf("sprout: atlas has no regions with prefix %q", prefix))
	}
	slices.SortFunc(names, func(x, y string) int {
		if c := cmp.Compare(frameNumber(x), frameNumber(y)); c != 0 {
			return c
		}
		return strings.Compare(x, y)
	})
	sheet := make(FrameSheet, len(names))
	for i, name := range names {
		sheet[i] = a.Image(name)
	}
	return sheet
}

// frameNumber returns the trailing integer of name without its extension,
// or math.MinInt when there is none.
func frameNumber(name string) int {
	base := strings.TrimSuffix(name, path.Ext(name))
	i := len(base)
	for i > 0 && base[i-1] >= '0' && base[i-1] <= '9' {
		i--
	}
	n, err := strconv.Atoi(base[i:])
	if err != nil {
		return math.MinInt
	}
	return n
}

// regionImage cuts r out of page. Rotated regions are turned back upright and
// trimmed regions are padded back to their original size.
func regionImage(page *ebiten.Image, r region) *ebiten.Image {
	rect, geo := regionGeometry(r)
	sub := page.SubImage(rect).(*ebiten.Image)
	if !r.rotated && r.offsetX == 0 && r.offsetY == 0 &&
		r.originalW == r.w && r.originalH == r.h {
		return sub
	}
	dst := ebiten.NewImage(r.originalW, r.originalH)
	dst.DrawImage(sub, &ebiten.DrawImageOptions{GeoM: geo})
	return dst
}

// regionGeometry returns the page rectangle holding r and the transform that
// maps it into an upright image of the original size. w and h are the
// unrotated size, so a rotated region occupies h x w on the page.
func regionGeometry(r region) (image.Rectangle, ebiten.GeoM) {
	var geo ebiten.GeoM
	if !r.rotated {
		geo.Translate(float64(r.offsetX), float64(r.offsetY))
		return image.Rect(r.x, r.y, r.x+r.w, r.y+r.h), geo
	}
	// Stored 90 degrees clockwise: rotate back counter-clockwise.
	geo.Rotate(-math.Pi / 2)
	geo.Translate(0, float64(r.h))
	geo.Translate(float64(r.offsetX), float64(r.offsetY))
	return image.Rect(r.x, r.y, r.x+r.h, r.y+r.w), geo
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func frameToRegion(f jsonFrame, page int) region {
	r := region{
		page:      page,
		x:         f.Frame.X,
		y:         f.Frame.Y,
		w:         f.Frame.W,
		h:         f.Frame.H,
		originalW: f.SourceSize.W,
		originalH: f.SourceSize.H,
		offsetX:   f.SpriteSourceSize.X,
		offsetY:   f.SpriteSourceSize.Y,
		rotated:   f.Rotated,
	}
	if r.originalW == 0 || r.originalH == 0 {
		r.originalW, r.originalH = r.w, r.h
	}
	return r
}
