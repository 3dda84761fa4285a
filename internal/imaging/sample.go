package imaging

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when probed bounds or a requested box
// cannot be used to compute a sample size.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// CalculateInSampleSize returns the largest power-of-two sample factor that,
// when both source dimensions are divided by it, still leaves an image at
// least as large as the requested box.
//
// Parameters:
//   - width, height: Intrinsic pixel dimensions of the source image.
//   - reqWidth, reqHeight: The bounding box the caller wants to display.
//
// Returns 1 (no reduction) when the source already fits inside the requested
// box in both dimensions.
//
// # Algorithm
//
// The search is seeded with half of each source dimension and doubles the
// factor while both halved dimensions divided by the current factor remain
// strictly larger than the request. Decoders that subsample only support
// powers of two and round other factors down, so the result matches what a
// decoder would actually apply. The decoded image can be up to twice the
// requested size in each dimension.
//
// # Edge Cases
//
// A zero request dimension lets the loop run until a halved dimension divided
// by the factor reaches zero. A negative source dimension (a failed probe
// reports -1) or a negative request dimension yields 1. The function never
// panics.
func CalculateInSampleSize(width, height, reqWidth, reqHeight int) int {
	sampleSize := 1
	if width < 0 || height < 0 || reqWidth < 0 || reqHeight < 0 {
		return sampleSize
	}

	if height > reqHeight || width > reqWidth {
		halfHeight := height / 2
		halfWidth := width / 2

		for halfHeight/sampleSize > reqHeight && halfWidth/sampleSize > reqWidth {
			sampleSize *= 2
		}
	}
	return sampleSize
}

// SampleSizeFor validates probed bounds and a requested box before computing
// the sample size.
//
// Unlike CalculateInSampleSize, which is total, this returns an error wrapping
// ErrInvalidDimensions when the bounds are not positive or either requested
// dimension is negative. A zero request dimension is accepted.
func SampleSizeFor(bounds Bounds, reqWidth, reqHeight int) (int, error) {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return 0, fmt.Errorf("source %dx%d: %w", bounds.Width, bounds.Height, ErrInvalidDimensions)
	}
	if reqWidth < 0 || reqHeight < 0 {
		return 0, fmt.Errorf("requested %dx%d: %w", reqWidth, reqHeight, ErrInvalidDimensions)
	}
	return CalculateInSampleSize(bounds.Width, bounds.Height, reqWidth, reqHeight), nil
}

// SampledDimensions returns the size of an image decoded with the given
// sample factor. Each dimension is divided and floored, but never drops
// below one pixel.
func SampledDimensions(width, height, sampleSize int) (int, int) {
	if sampleSize < 1 {
		sampleSize = 1
	}
	w := width / sampleSize
	h := height / sampleSize
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
