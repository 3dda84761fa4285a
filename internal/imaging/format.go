package imaging

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// PixelFormat names the in-memory layout of a decoded bitmap.
type PixelFormat string

const (
	// ARGB8888 keeps 8 bits per channel including alpha.
	ARGB8888 PixelFormat = "ARGB_8888"

	// RGB565 keeps 5 bits of red, 6 of green and 5 of blue and no alpha.
	// Translucent pixels are composited over black.
	RGB565 PixelFormat = "RGB_565"

	// Alpha8 keeps only the alpha channel.
	Alpha8 PixelFormat = "ALPHA_8"
)

// ParsePixelFormat accepts the canonical names case-insensitively, with or
// without the underscore. An empty string selects ARGB8888.
func ParsePixelFormat(s string) (PixelFormat, error) {
	switch strings.ToUpper(strings.ReplaceAll(s, "_", "")) {
	case "", "ARGB8888":
		return ARGB8888, nil
	case "RGB565":
		return RGB565, nil
	case "ALPHA8":
		return Alpha8, nil
	}
	return "", fmt.Errorf("unknown pixel format: %s", s)
}

// ConvertPixelFormat rewrites src into the layout named by pf. ARGB8888 and
// unknown formats return src unchanged.
func ConvertPixelFormat(src *image.NRGBA, pf PixelFormat) image.Image {
	switch pf {
	case RGB565:
		return toRGB565(src)
	case Alpha8:
		return toAlpha8(src)
	}
	return src
}

func toRGB565(src *image.NRGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			si := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := dst.PixOffset(x, y)
			a := uint32(src.Pix[si+3])
			r := uint32(src.Pix[si]) * a / 0xff
			g := uint32(src.Pix[si+1]) * a / 0xff
			bl := uint32(src.Pix[si+2]) * a / 0xff

			dst.Pix[di] = expand5(uint8(r) >> 3)
			dst.Pix[di+1] = expand6(uint8(g) >> 2)
			dst.Pix[di+2] = expand5(uint8(bl) >> 3)
			dst.Pix[di+3] = 0xff
		}
	}
	return dst
}

func toAlpha8(src *image.NRGBA) *image.Alpha {
	b := src.Bounds()
	dst := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[dst.PixOffset(x, y)] = src.Pix[src.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
		}
	}
	return dst
}

// expand5 and expand6 widen a truncated channel back to 8 bits by
// replicating its high bits, so 0 stays 0 and full scale stays 0xff.
func expand5(v uint8) uint8 { return v<<3 | v>>2 }

func expand6(v uint8) uint8 { return v<<2 | v>>4 }

// QuantizeRGB565 converts an arbitrary image to the RGB_565 layout.
func QuantizeRGB565(img image.Image) *image.RGBA {
	return toRGB565(imaging.Clone(img))
}
