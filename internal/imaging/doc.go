// Package imaging provides memory-conscious bitmap decoding and view capture.
//
// The centre of the package is CalculateInSampleSize, which picks the
// power-of-two reduction to apply while decoding so that the decoded bitmap
// is no smaller than the box the caller wants to display. The decode helpers
// wrap it in the usual three-step sequence:
//
//  1. Probe the source for its bounds without allocating pixels
//     (image.DecodeConfig).
//  2. Compute the sample size from the bounds and the requested box.
//  3. Decode and reduce by that factor, then convert to the requested
//     PixelFormat.
//
// # Sources
//
// Images can come from a file path (DecodeSampledFile), any seekable reader
// (DecodeSampledReader) or a bundled resource in an fs.FS such as embed.FS
// (DecodeSampledResource). PNG, JPEG, GIF, BMP, TIFF and WebP are registered.
//
// # Pixel Formats
//
//   - ARGB_8888: 8 bits per channel with alpha (*image.NRGBA), the default
//   - RGB_565: 16 bits per pixel, no alpha (*image.RGBA holding quantized values)
//   - ALPHA_8: alpha channel only (*image.Alpha)
//
// # Views
//
// CaptureView renders a View into a standalone bitmap. CaptureScrollView
// stacks several views vertically over a background color the way a scroll
// container lays out its children, and quantizes the result to RGB_565.
// SamplePixels reads colors back out of a decoded bitmap.
//
// # Thread Safety
//
// BitmapCache is safe for concurrent use. Every other function is stateless
// and may be called from any goroutine.
//
// # Error Handling
//
// Functions return wrapped errors for unreadable files, unknown formats
// (image.ErrFormat) and unusable dimensions (ErrInvalidDimensions).
// CalculateInSampleSize itself never fails.
package imaging
