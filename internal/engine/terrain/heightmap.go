package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ErrEmptyImage is returned when a heightmap has no pixels.
var ErrEmptyImage = errors.New("heightmap image is empty")

// Heightmap samples elevation from the luminance of an image.
type Heightmap struct {
	gray  *image.Gray
	scale float32
}

// LoadHeightmap decodes the image at path and returns a sampler over it.
func LoadHeightmap(path string, scale float32) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load heightmap %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load heightmap %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("cannot load heightmap %s (%s): %w", path, format, ErrEmptyImage)
	}

	return NewHeightmap(img, scale), nil
}

// NewHeightmap wraps an in-memory image. Non-gray images are converted once.
func NewHeightmap(img image.Image, scale float32) *Heightmap {
	return &Heightmap{
		gray:  toGray(img),
		scale: scale,
	}
}

// Width returns the image width in pixels.
func (h *Heightmap) Width() int {
	return h.gray.Rect.Dx()
}

// Height returns the image height in pixels.
func (h *Heightmap) Height() int {
	return h.gray.Rect.Dy()
}

// Elevation maps (i, j) in [-0.5, 0.5]² to a pixel and returns its gray value
// times the elevation scale. Positions outside the image are clamped to the edge.
func (h *Heightmap) Elevation(i, j float32) float32 {
	w, ht := h.Width(), h.Height()
	px := clampIndex(int(float32(w)*(i+0.5)), w)
	py := clampIndex(int(float32(ht)*(j+0.5)), ht)

	origin := h.gray.Rect.Min
	return float32(h.gray.GrayAt(origin.X+px, origin.Y+py).Y) * h.scale
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	b := img.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return g
}
