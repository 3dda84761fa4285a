// Package screen converts between density-independent pixels (dp) and
// physical pixels (px) for a given display.
//
// One dp is one pixel on a 160 dpi baseline screen. Density is the scale
// from dp to px for a particular display: 1.0 at 160 dpi, 2.0 at 320 dpi
// and so on.
package screen

import "fmt"

// BaselineDPI is the screen density at which one dp equals one px.
const BaselineDPI = 160

// DisplayMetrics describes the display a conversion applies to.
type DisplayMetrics struct {
	WidthPixels  int     `json:"width_pixels"`
	HeightPixels int     `json:"height_pixels"`
	Density      float64 `json:"density"`
	DensityDPI   int     `json:"density_dpi"`
}

// MetricsForDPI builds metrics for a display of the given size and density
// bucket (120, 160, 240, 320, 480, 640, ...).
func MetricsForDPI(widthPixels, heightPixels, dpi int) (*DisplayMetrics, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("density dpi must be positive, got %d", dpi)
	}
	return &DisplayMetrics{
		WidthPixels:  widthPixels,
		HeightPixels: heightPixels,
		Density:      float64(dpi) / BaselineDPI,
		DensityDPI:   dpi,
	}, nil
}

// ScreenWidthPixels returns the display width in pixels, or 0 for nil metrics.
func ScreenWidthPixels(m *DisplayMetrics) int {
	if m == nil {
		return 0
	}
	return m.WidthPixels
}

// ScreenHeightPixels returns the display height in pixels, or 0 for nil metrics.
func ScreenHeightPixels(m *DisplayMetrics) int {
	if m == nil {
		return 0
	}
	return m.HeightPixels
}

// DpToPx converts dp to px. It returns -1 when m is nil.
func DpToPx(m *DisplayMetrics, dp float64) float64 {
	if m == nil {
		return -1
	}
	return dp * m.Density
}

// PxToDp converts px to dp. It returns -1 when m is nil or has no density.
func PxToDp(m *DisplayMetrics, px float64) float64 {
	if m == nil || m.Density == 0 {
		return -1
	}
	return px / m.Density
}

// DpToPxInt is DpToPx rounded half up to a whole pixel.
func DpToPxInt(m *DisplayMetrics, dp float64) int {
	return int(DpToPx(m, dp) + 0.5)
}

// PxToDpInt is PxToDp rounded half up to a whole dp.
func PxToDpInt(m *DisplayMetrics, px float64) int {
	return int(PxToDp(m, px) + 0.5)
}
