package imageload

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	// Extra formats registered with image.Decode
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ytget/photo-viewer/internal/model"
)

// ErrNotImage is returned for files no registered decoder understands
var ErrNotImage = errors.New("not a supported image")

// DecodeScaled decodes the file at path and scales it to height, keeping the
// aspect ratio.
func DecodeScaled(path string, height int) (*model.DecodedImage, error) {
	if height <= 0 {
		return nil, fmt.Errorf("invalid target height %d", height)
	}

	src, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	width := ScaledWidth(src.Bounds().Dx(), src.Bounds().Dy(), height)
	return &model.DecodedImage{
		Path:   path,
		Width:  width,
		Height: height,
		Image:  scale(src, width, height),
	}, nil
}

// DecodeFit decodes the file at path and scales it down to fit inside
// maxWidth x maxHeight. Images already inside the box are returned as is.
func DecodeFit(path string, maxWidth, maxHeight int) (*model.DecodedImage, error) {
	src, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	w, h := FitSize(src.Bounds().Dx(), src.Bounds().Dy(), maxWidth, maxHeight)
	img := src
	if w != src.Bounds().Dx() || h != src.Bounds().Dy() {
		img = scale(src, w, h)
	}
	return &model.DecodedImage{Path: path, Width: w, Height: h, Image: img}, nil
}

// ScaledWidth returns the width of a srcW x srcH image scaled to height,
// rounded to the nearest pixel and never below 1
func ScaledWidth(srcW, srcH, height int) int {
	if srcW <= 0 || srcH <= 0 {
		return 1
	}
	w := (srcW*height + srcH/2) / srcH
	if w < 1 {
		w = 1
	}
	return w
}

// FitSize returns the largest size with the source aspect ratio that fits
// in the box without upscaling
func FitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 1, 1
	}
	if maxW <= 0 || maxH <= 0 || (srcW <= maxW && srcH <= maxH) {
		return srcW, srcH
	}

	// Compare srcW/maxW with srcH/maxH without floats
	if srcW*maxH >= srcH*maxW {
		h := (srcH*maxW + srcW/2) / srcW
		return maxW, max(h, 1)
	}
	w := (srcW*maxH + srcH/2) / srcH
	return max(w, 1), maxH
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotImage, path)
		}
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

func scale(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
