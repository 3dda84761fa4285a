package imaging

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBAColor is a non-premultiplied color with 8-bit components.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor is a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// PixelSample is the color of one pixel of a decoded bitmap.
//
// X and Y are in decoded coordinates. SourceX and SourceY give the top-left
// source pixel of the sample-size square the decoded pixel stands for.
type PixelSample struct {
	Label   string    `json:"label,omitempty"`
	X       int       `json:"x"`
	Y       int       `json:"y"`
	SourceX int       `json:"source_x"`
	SourceY int       `json:"source_y"`
	Hex     string    `json:"hex"` // "#rrggbb", alpha dropped
	RGBA    RGBAColor `json:"rgba"`
	HSL     HSLColor  `json:"hsl"`
}

// LabeledPoint is a pixel coordinate with an optional label echoed in the
// result.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// SamplePixels reads the color at each point of a decoded bitmap.
//
// Points are in decoded coordinates (0 to Width()-1, 0 to Height()-1).
// Results keep the input order. An out-of-range point fails the whole call
// and no partial result is returned.
//
// Colors are reported non-premultiplied, so an ALPHA_8 bitmap samples as
// black with its alpha, and an RGB_565 bitmap shows its quantised channels.
func SamplePixels(bmp *Bitmap, points []LabeledPoint) ([]PixelSample, error) {
	if bmp == nil || bmp.Image == nil {
		return nil, fmt.Errorf("no bitmap to sample")
	}

	b := bmp.Image.Bounds()
	scale := bmp.SampleSize
	if scale < 1 {
		scale = 1
	}

	samples := make([]PixelSample, 0, len(points))
	for _, p := range points {
		if p.X < 0 || p.X >= b.Dx() || p.Y < 0 || p.Y >= b.Dy() {
			return nil, fmt.Errorf("coordinates (%d,%d) outside bitmap bounds %dx%d", p.X, p.Y, b.Dx(), b.Dy())
		}

		rgba := toNRGBA8(bmp.Image, b.Min.X+p.X, b.Min.Y+p.Y)
		c := colorful.Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
		}
		h, s, l := c.Hsl()
		if math.IsNaN(h) {
			h = 0
		}

		samples = append(samples, PixelSample{
			Label:   p.Label,
			X:       p.X,
			Y:       p.Y,
			SourceX: p.X * scale,
			SourceY: p.Y * scale,
			Hex:     c.Hex(),
			RGBA:    rgba,
			HSL: HSLColor{
				H: int(math.Round(h)) % 360,
				S: int(math.Round(s * 100)),
				L: int(math.Round(l * 100)),
			},
		})
	}

	return samples, nil
}

// toNRGBA8 returns the non-premultiplied 8-bit color at (x, y).
func toNRGBA8(img image.Image, x, y int) RGBAColor {
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return RGBAColor{}
	}
	if a != 0xffff {
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	return RGBAColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
