// Package config loads sprout game settings from YAML files and persists
// per-user window settings between runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/phanxgames/sprout"
	"gopkg.in/yaml.v3"
)

// File is the top-level structure of a game configuration file.
//
//	window:
//	  title: IncrediCards
//	  width: 800
//	  height: 600
//	background: [225, 225, 225]
//	assets: Assets
//	animations:
//	  coin_flip:
//	    sheet: coin.png
//	    frame_width: 64
//	    frame_height: 64
//	    duration: 0.5
//	    looping: false
type File struct {
	Window     Window               `yaml:"window"`
	Background []int                `yaml:"background"`
	ShowFPS    bool                 `yaml:"show_fps"`
	Debug      bool                 `yaml:"debug"`
	Assets     string               `yaml:"assets"`
	Animations map[string]Animation `yaml:"animations"`
}

// Window holds the window and loop settings.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TPS        int    `yaml:"tps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Animation describes one sprite sheet animation.
type Animation struct {
	Sheet       string  `yaml:"sheet"`
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
	Frames      int     `yaml:"frames"`   // 0 uses every full cell
	Duration    float64 `yaml:"duration"` // seconds for one pass
	Looping     *bool   `yaml:"looping"`  // defaults to true
	Speed       float64 `yaml:"speed"`    // defaults to 1
}

// Load reads and parses the YAML file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports every invalid setting in f.
func (f *File) Validate() error {
	var errs []error
	if f.Window.Width < 0 || f.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d is negative", f.Window.Width, f.Window.Height))
	}
	if f.Window.TPS < 0 {
		errs = append(errs, fmt.Errorf("window tps %d is negative", f.Window.TPS))
	}
	if n := len(f.Background); n != 0 && n != 3 && n != 4 {
		errs = append(errs, fmt.Errorf("background needs 3 or 4 components, got %d", n))
	}
	for _, c := range f.Background {
		if c < 0 || c > 255 {
			errs = append(errs, fmt.Errorf("background component %d outside [0, 255]", c))
			break
		}
	}
	for name, a := range f.Animations {
		if a.Sheet == "" {
			errs = append(errs, fmt.Errorf("animation %q: missing sheet", name))
		}
		if a.FrameWidth <= 0 || a.FrameHeight <= 0 {
			errs = append(errs, fmt.Errorf("animation %q: frame size %dx%d must be positive", name, a.FrameWidth, a.FrameHeight))
		}
		if a.Duration < 0 {
			errs = append(errs, fmt.Errorf("animation %q: negative duration", name))
		}
	}
	return errors.Join(errs...)
}

// BackgroundColor returns the configured background, black when unset.
func (f *File) BackgroundColor() sprout.Color {
	if len(f.Background) < 3 {
		return sprout.ColorBlack
	}
	c := sprout.Color{
		R: float64(f.Background[0]) / 255,
		G: float64(f.Background[1]) / 255,
		B: float64(f.Background[2]) / 255,
		A: 1,
	}
	if len(f.Background) == 4 {
		c.A = float64(f.Background[3]) / 255
	}
	return c
}

// RunConfig converts the file into a sprout.RunConfig.
func (f *File) RunConfig() sprout.RunConfig {
	return sprout.RunConfig{
		Title:      f.Window.Title,
		Width:      f.Window.Width,
		Height:     f.Window.Height,
		TPS:        f.Window.TPS,
		Background: f.BackgroundColor(),
		Fullscreen: f.Window.Fullscreen,
		ShowFPS:    f.ShowFPS,
		Debug:      f.Debug,
	}
}

// AssetStore returns an asset loader rooted at the configured directory,
// or next to the executable when none is set.
func (f *File) AssetStore() *sprout.Assets {
	if f.Assets == "" {
		return sprout.InstallAssets()
	}
	return sprout.NewAssets(f.Assets)
}

// Animator builds the named animation, loading its sheet through assets.
func (f *File) Animator(assets *sprout.Assets, name string) (*sprout.Animator, error) {
	def, ok := f.Animations[name]
	if !ok {
		return nil, fmt.Errorf("config: unknown animation %q", name)
	}
	sheet, err := assets.Sheet(def.Sheet, def.FrameWidth, def.FrameHeight, def.Frames)
	if err != nil {
		return nil, fmt.Errorf("config: animation %q: %w", name, err)
	}
	if sheet.FrameCount() == 0 {
		return nil, fmt.Errorf("config: animation %q: sheet %s has no %dx%d frames",
			name, def.Sheet, def.FrameWidth, def.FrameHeight)
	}
	return def.build(sheet), nil
}

func (a Animation) build(sheet sprout.Sheet) *sprout.Animator {
	anim := sprout.NewAnimator(sheet, a.Duration)
	if a.Looping != nil {
		anim.Looping = *a.Looping
	}
	speed := a.Speed
	if speed == 0 {
		speed = 1
	}
	anim.Play(speed)
	return anim
}
