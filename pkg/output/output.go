package output

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// ErrUnsupportedFormat is returned when a file extension has no encoder
var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// Formats lists the file extensions Save can write
var Formats = []string{".png", ".bmp", ".tif", ".tiff"}

// ToRGBA converts row-major linear RGB pixels into an 8-bit image, applying gamma 2
// (square root) and clamping each channel to 255
func ToRGBA(pixels []core.Vec3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, encode(pixels[y*width+x]))
		}
	}
	return img
}

// encode gamma-encodes a linear color into an opaque 8-bit pixel
func encode(linear core.Vec3) color.RGBA {
	c := linear.Clamp(0, 1).Sqrt().Multiply(256).Clamp(0, 255)
	return color.RGBA{R: toByte(c.X), G: toByte(c.Y), B: toByte(c.Z), A: 255}
}

// toByte truncates an encoded channel, mapping NaN to 0
func toByte(encoded float64) uint8 {
	if math.IsNaN(encoded) {
		return 0
	}
	return uint8(encoded)
}

// Save writes img to path, choosing the encoder from the file extension and creating
// parent directories as needed
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !isSupported(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if ext == ".png" {
		if err := gg.SavePNG(path, img); err != nil {
			return fmt.Errorf("writing png: %w", err)
		}
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	switch ext {
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		err = tiff.Encode(file, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ext, err)
	}

	return file.Close()
}

func isSupported(ext string) bool {
	for _, format := range Formats {
		if ext == format {
			return true
		}
	}
	return false
}
