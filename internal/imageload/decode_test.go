package imageload

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a solid w x h PNG into dir and returns its path
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
	return path
}

func TestScaledWidth(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		height     int
		expected   int
	}{
		{"square", 400, 400, 198, 198},
		{"landscape", 400, 200, 198, 396},
		{"portrait", 200, 400, 198, 99},
		{"rounds to nearest", 3, 2, 7, 11},
		{"never below one", 1, 1000, 198, 1},
		{"invalid source", 0, 10, 198, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaledWidth(tt.srcW, tt.srcH, tt.height); got != tt.expected {
				t.Errorf("ScaledWidth(%d, %d, %d) = %d, expected %d",
					tt.srcW, tt.srcH, tt.height, got, tt.expected)
			}
		})
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		maxW, maxH int
		expW, expH int
	}{
		{"already fits", 100, 50, 800, 600, 100, 50},
		{"wide", 1600, 400, 800, 600, 800, 200},
		{"tall", 400, 1200, 800, 600, 200, 600},
		{"exact ratio", 1600, 1200, 800, 600, 800, 600},
		{"no box", 1600, 1200, 0, 0, 1600, 1200},
		{"invalid source", 0, 0, 800, 600, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.srcW, tt.srcH, tt.maxW, tt.maxH)
			if w != tt.expW || h != tt.expH {
				t.Errorf("FitSize() = %dx%d, expected %dx%d", w, h, tt.expW, tt.expH)
			}
		})
	}
}

func TestDecodeScaled(t *testing.T) {
	path := writePNG(t, t.TempDir(), "wide.png", 80, 40)

	img, err := DecodeScaled(path, 20)
	if err != nil {
		t.Fatalf("DecodeScaled failed: %v", err)
	}
	if img.Width != 40 || img.Height != 20 {
		t.Errorf("Expected 40x20, got %dx%d", img.Width, img.Height)
	}
	if b := img.Image.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("Image bounds %v do not match reported size", b)
	}
	if img.Path != path {
		t.Errorf("Expected path %s, got %s", path, img.Path)
	}
}

func TestDecodeScaled_InvalidHeight(t *testing.T) {
	path := writePNG(t, t.TempDir(), "a.png", 10, 10)
	if _, err := DecodeScaled(path, 0); err == nil {
		t.Error("Expected error for zero height")
	}
}

func TestDecodeScaled_NotImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := DecodeScaled(path, 20)
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("Expected ErrNotImage, got %v", err)
	}
}

func TestDecodeFit(t *testing.T) {
	dir := t.TempDir()
	big := writePNG(t, dir, "big.png", 300, 100)
	small := writePNG(t, dir, "small.png", 30, 10)

	img, err := DecodeFit(big, 150, 150)
	if err != nil {
		t.Fatalf("DecodeFit failed: %v", err)
	}
	if img.Width != 150 || img.Height != 50 {
		t.Errorf("Expected 150x50, got %dx%d", img.Width, img.Height)
	}

	img, err = DecodeFit(small, 150, 150)
	if err != nil {
		t.Fatalf("DecodeFit failed: %v", err)
	}
	if img.Width != 30 || img.Height != 10 {
		t.Errorf("Small images should not be upscaled, got %dx%d", img.Width, img.Height)
	}
}
