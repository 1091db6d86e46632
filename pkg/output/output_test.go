package output

import (
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected uint8
	}{
		{"black", 0, 0},
		{"negative", -0.5, 0},
		{"nan", math.NaN(), 0},
		{"quarter", 0.25, 128},
		{"just under one", 0.99, 254},
		{"one clamps", 1, 255},
		{"over bright", 4, 255},
		{"infinite", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := encode(core.NewVec3(tt.linear, tt.linear, tt.linear))
			expected := color.RGBA{R: tt.expected, G: tt.expected, B: tt.expected, A: 255}
			if result != expected {
				t.Errorf("encode(%f) = %v, want %v", tt.linear, result, expected)
			}
		})
	}

	t.Run("channels independent", func(t *testing.T) {
		result := encode(core.NewVec3(0.25, math.NaN(), 4))
		if expected := (color.RGBA{R: 128, G: 0, B: 255, A: 255}); result != expected {
			t.Errorf("encode = %v, want %v", result, expected)
		}
	})
}

func TestToRGBA_RowMajor(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, 0), core.NewVec3(0.25, 0.25, 0.25), core.NewVec3(1, 1, 1),
	}

	img := ToRGBA(pixels, 3, 2)
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}

	tests := []struct {
		x, y    int
		r, g, b uint8
	}{
		{0, 0, 255, 0, 0},
		{1, 0, 0, 255, 0},
		{2, 0, 0, 0, 255},
		{0, 1, 0, 0, 0},
		{1, 1, 128, 128, 128},
		{2, 1, 255, 255, 255},
	}
	for _, tt := range tests {
		c := img.RGBAAt(tt.x, tt.y)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
			t.Errorf("Pixel (%d,%d) = %v, want (%d,%d,%d,255)", tt.x, tt.y, c, tt.r, tt.g, tt.b)
		}
	}
}

func testImage() *image.RGBA {
	return ToRGBA([]core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0.25, 0.25, 0.25),
	}, 2, 2)
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer file.Close()

	var img image.Image
	switch filepath.Ext(path) {
	case ".bmp":
		img, err = bmp.Decode(file)
	case ".tiff":
		img, err = tiff.Decode(file)
	default:
		img, _, err = image.Decode(file)
	}
	if err != nil {
		t.Fatalf("Decode %s failed: %v", path, err)
	}
	return img
}

func TestSave_Formats(t *testing.T) {
	src := testImage()

	for _, name := range []string{"render.png", "render.bmp", "render.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			if err := Save(path, src); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			img := decode(t, path)
			if img.Bounds() != src.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", src.Bounds(), img.Bounds())
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					r1, g1, b1, _ := src.At(x, y).RGBA()
					r2, g2, b2, _ := img.At(x, y).RGBA()
					if r1>>8 != r2>>8 || g1>>8 != g2>>8 || b1>>8 != b2>>8 {
						t.Errorf("Pixel (%d,%d) changed: %v -> %v", x, y, src.At(x, y), img.At(x, y))
					}
				}
			}
		})
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.exr")
	if err := Save(path, testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file for an unsupported format")
	}
}
