package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestParsePixelFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    PixelFormat
		wantErr bool
	}{
		{"", ARGB8888, false},
		{"ARGB_8888", ARGB8888, false},
		{"argb8888", ARGB8888, false},
		{"RGB_565", RGB565, false},
		{"rgb565", RGB565, false},
		{"alpha_8", Alpha8, false},
		{"RGBA_F16", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePixelFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePixelFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePixelFormat(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertPixelFormat_RGB565(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	src.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})
	src.SetNRGBA(2, 0, color.NRGBA{0x12, 0x34, 0x56, 255})
	src.SetNRGBA(3, 0, color.NRGBA{255, 0, 0, 0})

	dst, ok := ConvertPixelFormat(src, RGB565).(*image.RGBA)
	if !ok {
		t.Fatal("RGB565 conversion should return *image.RGBA")
	}

	tests := []struct {
		x    int
		want color.RGBA
	}{
		{0, color.RGBA{255, 255, 255, 255}},
		{1, color.RGBA{0, 0, 0, 255}},
		// 0x12>>3=2 -> 0x10|0x00, 0x34>>2=13 -> 0x34|0x00, 0x56>>3=10 -> 0x50|0x02
		{2, color.RGBA{0x10, 0x34, 0x52, 255}},
		{3, color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		if got := dst.RGBAAt(tt.x, 0); got != tt.want {
			t.Errorf("pixel %d: got %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestConvertPixelFormat_Alpha8(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 40})
	src.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 255})

	dst, ok := ConvertPixelFormat(src, Alpha8).(*image.Alpha)
	if !ok {
		t.Fatal("ALPHA_8 conversion should return *image.Alpha")
	}
	if dst.AlphaAt(0, 0).A != 40 || dst.AlphaAt(1, 0).A != 255 {
		t.Errorf("alpha: got %d,%d want 40,255", dst.AlphaAt(0, 0).A, dst.AlphaAt(1, 0).A)
	}
}

func TestConvertPixelFormat_ARGB8888(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if got := ConvertPixelFormat(src, ARGB8888); got != image.Image(src) {
		t.Error("ARGB8888 conversion should return the source unchanged")
	}
}

func TestQuantizeRGB565(t *testing.T) {
	src := image.NewGray(image.Rect(3, 3, 5, 5))
	src.SetGray(3, 3, color.Gray{Y: 255})

	dst := QuantizeRGB565(src)
	if dst.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds: got %v, want (0,0)-(2,2)", dst.Bounds())
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel: got %v, want white", got)
	}
}
