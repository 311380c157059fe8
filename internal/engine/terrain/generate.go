package terrain

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/ojrac/opensimplex-go"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// GenerateOptions controls procedural heightmap generation.
type GenerateOptions struct {
	Size        int     // Width and height in pixels
	Seed        int64   // Noise seed
	Octaves     int     // Number of fBm layers
	Frequency   float64 // Base frequency in cycles per image
	Persistence float64 // Amplitude falloff per octave
	Lacunarity  float64 // Frequency growth per octave
}

// DefaultGenerateOptions returns options that produce rolling hills.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Size:        256,
		Seed:        1,
		Octaves:     6,
		Frequency:   3,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Generate renders fractal OpenSimplex noise into a grayscale image.
func Generate(opts GenerateOptions) (*image.Gray, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("invalid size %d", opts.Size)
	}
	if opts.Octaves <= 0 {
		return nil, fmt.Errorf("invalid octave count %d", opts.Octaves)
	}

	noise := opensimplex.NewNormalized(opts.Seed)
	img := image.NewGray(image.Rect(0, 0, opts.Size, opts.Size))

	// Normalise by the total amplitude so the sum stays in [0, 1].
	var total float64
	amp := 1.0
	for range opts.Octaves {
		total += amp
		amp *= opts.Persistence
	}

	for y := range opts.Size {
		for x := range opts.Size {
			u := float64(x) / float64(opts.Size)
			v := float64(y) / float64(opts.Size)

			var sum float64
			freq, amp := opts.Frequency, 1.0
			for range opts.Octaves {
				sum += noise.Eval2(u*freq, v*freq) * amp
				freq *= opts.Lacunarity
				amp *= opts.Persistence
			}

			h := sum / total
			if h < 0 {
				h = 0
			}
			if h > 1 {
				h = 1
			}
			img.Pix[y*img.Stride+x] = uint8(h * 255)
		}
	}

	return img, nil
}

// FormatFromPath picks an image format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("unsupported heightmap format %q", ext)
	}
}

// Encode writes img in the named format (png, bmp or tiff).
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported heightmap format %q", format)
	}
}
