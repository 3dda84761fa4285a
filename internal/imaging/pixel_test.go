package imaging

import (
	"image"
	"image/color"
	"os"
	"testing"
)

func TestSamplePixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(3, 1, color.NRGBA{0, 0, 255, 128})
	img.SetNRGBA(1, 0, color.NRGBA{128, 128, 128, 255})

	bmp := &Bitmap{Image: img, SampleSize: 4}
	got, err := SamplePixels(bmp, []LabeledPoint{
		{X: 0, Y: 0, Label: "red"},
		{X: 3, Y: 1},
		{X: 1, Y: 0, Label: "gray"},
	})
	if err != nil {
		t.Fatalf("SamplePixels failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(got))
	}

	red := got[0]
	if red.Label != "red" || red.Hex != "#ff0000" {
		t.Errorf("red sample: got %+v", red)
	}
	if red.HSL != (HSLColor{H: 0, S: 100, L: 50}) {
		t.Errorf("red HSL: got %+v", red.HSL)
	}

	blue := got[1]
	if blue.SourceX != 12 || blue.SourceY != 4 {
		t.Errorf("source position: got (%d,%d), want (12,4)", blue.SourceX, blue.SourceY)
	}
	if blue.RGBA.A != 128 || blue.RGBA.B < 254 {
		t.Errorf("translucent blue should stay non-premultiplied: %+v", blue.RGBA)
	}
	if blue.HSL.H != 240 {
		t.Errorf("blue hue: got %d, want 240", blue.HSL.H)
	}

	if gray := got[2]; gray.HSL.S != 0 || gray.HSL.H != 0 {
		t.Errorf("gray should have no hue or saturation: %+v", gray.HSL)
	}
}

func TestSamplePixels_Errors(t *testing.T) {
	bmp := &Bitmap{Image: image.NewNRGBA(image.Rect(0, 0, 2, 2)), SampleSize: 1}

	for _, p := range []LabeledPoint{{X: -1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}} {
		if _, err := SamplePixels(bmp, []LabeledPoint{p}); err == nil {
			t.Errorf("expected error for point %+v", p)
		}
	}

	if _, err := SamplePixels(nil, nil); err == nil {
		t.Error("expected error for nil bitmap")
	}
}

func TestSamplePixels_RGB565(t *testing.T) {
	imgPath := createTestImage(t, 8, 8, color.RGBA{0x12, 0x34, 0x56, 255})
	defer os.Remove(imgPath)

	bmp, err := DecodeSampledFile(imgPath, 4, 4, WithPixelFormat(RGB565))
	if err != nil {
		t.Fatalf("DecodeSampledFile failed: %v", err)
	}

	got, err := SamplePixels(bmp, []LabeledPoint{{X: 0, Y: 0}})
	if err != nil {
		t.Fatalf("SamplePixels failed: %v", err)
	}
	if got[0].RGBA != (RGBAColor{0x10, 0x34, 0x52, 255}) {
		t.Errorf("quantised color: got %+v", got[0].RGBA)
	}
}
