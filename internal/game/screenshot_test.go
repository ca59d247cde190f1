package game

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/sar2/sar2/internal/engine/device/devicetest"
)

func TestCapture(t *testing.T) {
	rec := devicetest.New()
	// Two rows, bottom first: red then blue. Alpha is left at zero.
	rec.Pixels = []uint8{
		255, 0, 0, 0, 255, 0, 0, 0,
		0, 0, 255, 0, 0, 0, 255, 0,
	}

	img, err := Capture(rec, 2, 2)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top left = %v, want opaque blue", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom right = %v, want opaque red", got)
	}
}

func TestCaptureErrors(t *testing.T) {
	tests := []struct {
		name          string
		pixels        []uint8
		width, height int
	}{
		{"empty", nil, 0, 0},
		{"short read", make([]uint8, 12), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := devicetest.New()
			rec.Pixels = tt.pixels
			if _, err := Capture(rec, tt.width, tt.height); err == nil {
				t.Error("Capture succeeded")
			}
		})
	}
}

func TestSaveScreenshot(t *testing.T) {
	rec := devicetest.New()
	rec.Pixels = []uint8{10, 20, 30, 0, 40, 50, 60, 0, 70, 80, 90, 0}
	img, err := Capture(rec, 3, 1)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	path, err := SaveScreenshot(dir, img, at)
	if err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	if want := filepath.Join(dir, "sar2-20240309-140506.000.bmp"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	got, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 3 || b.Dy() != 1 {
		t.Fatalf("bounds = %v, want 3x1", b)
	}
	r, g, b, _ := got.At(1, 0).RGBA()
	if r>>8 != 40 || g>>8 != 50 || b>>8 != 60 {
		t.Errorf("pixel = %d %d %d, want 40 50 60", r>>8, g>>8, b>>8)
	}
}
