package sprout

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"coin-flip", "coin-flip"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	m := NewMachine()
	m.Register(StateFuncs{})
	g := NewGame(m, nil, RunConfig{})
	g.Screenshot("a")
	g.Screenshot("b")
	g.Screenshot("c")
	if len(g.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(g.screenshotQueue))
	}
	if g.screenshotQueue[0] != "a" || g.screenshotQueue[1] != "b" || g.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", g.screenshotQueue)
	}
}

func TestScreenshotDirOverride(t *testing.T) {
	m := NewMachine()
	m.Register(StateFuncs{})
	g := NewGame(m, nil, RunConfig{ScreenshotDir: "shots"})
	if g.cfg.ScreenshotDir != "shots" {
		t.Errorf("ScreenshotDir = %q, want %q", g.cfg.ScreenshotDir, "shots")
	}
}

func TestUnpremultiply(t *testing.T) {
	tests := []struct {
		in, want [4]uint8
	}{
		{[4]uint8{255, 0, 0, 255}, [4]uint8{255, 0, 0, 255}},
		{[4]uint8{64, 32, 0, 128}, [4]uint8{127, 63, 0, 128}},
		{[4]uint8{0, 0, 0, 0}, [4]uint8{0, 0, 0, 0}},
		{[4]uint8{200, 0, 0, 100}, [4]uint8{255, 0, 0, 100}},
	}
	for _, tt := range tests {
		r, g, b, a := unpremultiply(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
		if got := [4]uint8{r, g, b, a}; got != tt.want {
			t.Errorf("unpremultiply(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{255, 0, 0, 255})
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := decoded.At(1, 1).RGBA(); r>>8 != 255 {
		t.Errorf("pixel (1,1) red = %d, want 255", r>>8)
	}
}

func TestWritePNGBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
