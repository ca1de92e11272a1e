package sprout

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	// Register the decoders asset images are stored in.
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Assets resolves and loads image assets relative to a root directory or an
// fs.FS (for example an embed.FS). Loaded images are cached by name.
type Assets struct {
	root  string
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewAssets serves assets from the directory root.
func NewAssets(root string) *Assets {
	return &Assets{root: root, fsys: os.DirFS(root), cache: make(map[string]*ebiten.Image)}
}

// NewAssetsFS serves assets from fsys. Path returns slash-separated names
// relative to fsys.
func NewAssetsFS(fsys fs.FS) *Assets {
	return &Assets{fsys: fsys, cache: make(map[string]*ebiten.Image)}
}

// InstallAssets serves assets from the directory holding the running
// executable, falling back to the working directory.
func InstallAssets() *Assets {
	exe, err := os.Executable()
	if err != nil {
		return NewAssets(".")
	}
	return NewAssets(filepath.Dir(exe))
}

// Path returns the location of the named asset. Names always use forward
// slashes.
func (a *Assets) Path(name string) string {
	if a.root == "" {
		return path.Clean(name)
	}
	return filepath.Join(a.root, filepath.FromSlash(name))
}

// Image loads and decodes the named image. Results are cached, so repeated
// calls return the same *ebiten.Image.
func (a *Assets) Image(name string) (*ebiten.Image, error) {
	if img, ok := a.cache[name]; ok {
		return img, nil
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(a.fsys, path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("sprout: load image %s: %w", a.Path(name), err)
	}
	a.cache[name] = img
	return img, nil
}

// Sprite loads the named image as a static sprite.
func (a *Assets) Sprite(name string) (*Image, error) {
	img, err := a.Image(name)
	if err != nil {
		return nil, err
	}
	return NewImage(img), nil
}

// Sheet loads the named image and cuts it into frameW x frameH frames.
// count limits the number of frames; 0 takes every full cell.
func (a *Assets) Sheet(name string, frameW, frameH, count int) (*SpriteSheet, error) {
	img, err := a.Image(name)
	if err != nil {
		return nil, err
	}
	return NewSpriteSheet(img, frameW, frameH, count), nil
}

// LoadImage loads a single image file from disk as a static sprite.
func LoadImage(file string) (*Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(file)
	if err != nil {
		return nil, fmt.Errorf("sprout: load image %s: %w", file, err)
	}
	return NewImage(img), nil
}
