package game

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"github.com/sar2/sar2/internal/engine/device"
)

// Capture reads the last presented frame into an image.
func Capture(dev device.Device, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("capture: bad size %dx%d", width, height)
	}
	px := dev.ReadPixels(0, 0, int32(width), int32(height))
	stride := 4 * width
	if len(px) < stride*height {
		return nil, errors.New("capture: short pixel read")
	}
	px = px[:stride*height]

	// Rows come bottom first.
	for i := 0; i < height/2; i++ {
		a, b := px[stride*i:stride*(i+1)], px[stride*(height-1-i):stride*(height-i)]
		for j := range a {
			a[j], b[j] = b[j], a[j]
		}
	}
	for i := 3; i < len(px); i += 4 {
		px[i] = 255
	}

	return &image.RGBA{
		Pix:    px,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// screenshotName names a screenshot by the time it was taken.
func screenshotName(t time.Time) string {
	return "sar2-" + t.Format("20060102-150405.000") + ".bmp"
}

// SaveScreenshot writes img as a BMP file into dir and returns its path.
func SaveScreenshot(dir string, img image.Image, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	path := filepath.Join(dir, screenshotName(t))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := bmp.Encode(w, img); err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
