package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// ErrNoChildren is returned when a scroll capture has nothing to stack.
var ErrNoChildren = errors.New("scroll view has no children")

// DefaultBackground is painted behind every child of a scroll capture.
const DefaultBackground = "#ffffff"

// View is anything that can render itself into a bitmap.
//
// Bounds reports the view's size; only Dx and Dy are used. Draw renders the
// view with its top-left corner at the given point of dst.
type View interface {
	Bounds() image.Rectangle
	Draw(dst draw.Image, at image.Point)
}

// ImageView is a View backed by an already rendered image.
type ImageView struct {
	Image image.Image
}

// Bounds returns the bounds of the backing image.
func (v ImageView) Bounds() image.Rectangle {
	return v.Image.Bounds()
}

// Draw composites the backing image over dst at the given point.
func (v ImageView) Draw(dst draw.Image, at image.Point) {
	b := v.Image.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(dst, r, v.Image, b.Min, draw.Over)
}

// OpenView decodes the image file at path into a view at full resolution.
func OpenView(path string) (ImageView, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return ImageView{}, fmt.Errorf("failed to open view %s: %w", path, err)
	}
	return ImageView{Image: img}, nil
}

// CaptureView renders v into a fresh bitmap exactly the view's size.
//
// The view draws into a scratch canvas first and the result is cropped out of
// it, so the returned bitmap never shares pixels with anything the view holds.
func CaptureView(v View) *image.RGBA {
	size := v.Bounds().Size()
	canvas := image.NewRGBA(image.Rectangle{Max: size})
	v.Draw(canvas, image.Point{})
	return transform.Crop(canvas, image.Rectangle{Max: size})
}

// CaptureScrollView renders the full content of a vertically scrolling
// container, including the parts that are off screen.
//
// Parameters:
//   - children: The container's children, stacked top to bottom.
//   - width: Width of the container in pixels. Zero or negative uses the
//     widest child.
//   - background: Hex color ("#rrggbb" or "#rgb") painted behind each child
//     before it is drawn. Empty selects DefaultBackground.
//
// The output height is the sum of the children's heights. The result uses
// the RGB_565 layout, so it carries no transparency: anything not covered by
// a child comes out black.
//
// # Errors
//
//   - ErrNoChildren if children is empty
//   - The background string is not a valid hex color
func CaptureScrollView(children []View, width int, background string) (*image.RGBA, error) {
	if len(children) == 0 {
		return nil, ErrNoChildren
	}
	if background == "" {
		background = DefaultBackground
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return nil, fmt.Errorf("invalid background color %q: %w", background, err)
	}

	height := 0
	widest := 0
	for _, child := range children {
		size := child.Bounds().Size()
		height += size.Y
		if size.X > widest {
			widest = size.X
		}
	}
	if width <= 0 {
		width = widest
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scroll content %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	fill := image.NewUniform(bg)
	y := 0
	for _, child := range children {
		size := child.Bounds().Size()
		area := image.Rect(0, y, size.X, y+size.Y)
		draw.Draw(canvas, area, fill, image.Point{}, draw.Src)
		child.Draw(canvas, area.Min)
		y += size.Y
	}

	return QuantizeRGB565(canvas), nil
}
