package imaging

import (
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// Bitmap is an image decoded at a reduced size together with the facts that
// produced it.
type Bitmap struct {
	// Image holds the pixels. Its concrete type depends on PixelFormat:
	// *image.NRGBA for ARGB_8888, *image.RGBA for RGB_565 and *image.Alpha
	// for ALPHA_8.
	Image image.Image

	// SourceWidth and SourceHeight are the intrinsic dimensions reported by
	// the bounds-only probe.
	SourceWidth  int
	SourceHeight int

	// SampleSize is the power-of-two factor both dimensions were divided by.
	SampleSize int

	// Format is the codec name of the source.
	Format string

	PixelFormat PixelFormat
}

// Width returns the decoded width in pixels.
func (b *Bitmap) Width() int { return b.Image.Bounds().Dx() }

// Height returns the decoded height in pixels.
func (b *Bitmap) Height() int { return b.Image.Bounds().Dy() }

// DecodeOption configures a sampled decode.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	pixelFormat PixelFormat
	filter      imaging.ResampleFilter
	filterName  string
}

// WithPixelFormat selects the pixel layout of the decoded bitmap. The default
// is ARGB8888.
func WithPixelFormat(pf PixelFormat) DecodeOption {
	return func(o *decodeOptions) {
		o.pixelFormat = pf
	}
}

// WithFilter selects the resampling filter used to apply the sample factor.
// Unknown names are ignored and the default box filter is kept.
func WithFilter(name string) DecodeOption {
	return func(o *decodeOptions) {
		if f, ok := filters[strings.ToLower(name)]; ok {
			o.filter = f
			o.filterName = strings.ToLower(name)
		}
	}
}

// The box filter averages every source pixel that falls into a destination
// pixel, which is what a subsampling decoder does.
var filters = map[string]imaging.ResampleFilter{
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
	"linear":     imaging.Linear,
	"catmullrom": imaging.CatmullRom,
	"lanczos":    imaging.Lanczos,
}

// FilterNames lists the accepted WithFilter names.
func FilterNames() []string {
	return []string{"box", "nearest", "linear", "catmullrom", "lanczos"}
}

func resolveOptions(opts []DecodeOption) decodeOptions {
	o := decodeOptions{
		pixelFormat: ARGB8888,
		filter:      imaging.Box,
		filterName:  "box",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DecodeSampledFile decodes the image at path at the largest power-of-two
// reduction that still covers reqWidth x reqHeight.
//
// The file is first probed for its bounds without allocating pixels, the
// sample size is computed with SampleSizeFor, and only then is the image
// decoded and reduced.
//
// # Errors
//
//   - The file cannot be opened or read
//   - No registered codec recognises the data (wraps image.ErrFormat)
//   - The probe reports non-positive bounds or a requested dimension is
//     negative (wraps ErrInvalidDimensions)
func DecodeSampledFile(path string, reqWidth, reqHeight int, opts ...DecodeOption) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return DecodeSampledReader(f, reqWidth, reqHeight, opts...)
}

// DecodeSampledResource decodes a bundled image from fsys the same way
// DecodeSampledFile decodes a file.
func DecodeSampledResource(fsys fs.FS, name string, reqWidth, reqHeight int, opts ...DecodeOption) (*Bitmap, error) {
	r, err := readResource(fsys, name)
	if err != nil {
		return nil, err
	}
	return DecodeSampledReader(r, reqWidth, reqHeight, opts...)
}

// DecodeSampledReader probes r, rewinds it and decodes at the computed sample
// size.
func DecodeSampledReader(r io.ReadSeeker, reqWidth, reqHeight int, opts ...DecodeOption) (*Bitmap, error) {
	o := resolveOptions(opts)

	bounds, err := ProbeReader(r)
	if err != nil {
		return nil, err
	}

	sampleSize, err := SampleSizeFor(*bounds, reqWidth, reqHeight)
	if err != nil {
		return nil, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind image: %w", err)
	}

	src, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var reduced *image.NRGBA
	if sampleSize > 1 {
		w, h := SampledDimensions(bounds.Width, bounds.Height, sampleSize)
		reduced = imaging.Resize(src, w, h, o.filter)
	} else {
		reduced = imaging.Clone(src)
	}

	return &Bitmap{
		Image:        ConvertPixelFormat(reduced, o.pixelFormat),
		SourceWidth:  bounds.Width,
		SourceHeight: bounds.Height,
		SampleSize:   sampleSize,
		Format:       bounds.Format,
		PixelFormat:  o.pixelFormat,
	}, nil
}
