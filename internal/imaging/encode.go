package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

// BitmapResult is the transport form of a decoded or captured bitmap.
type BitmapResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// SampledBitmapResult adds the sampling facts to a BitmapResult.
type SampledBitmapResult struct {
	BitmapResult
	SourceWidth  int    `json:"source_width"`
	SourceHeight int    `json:"source_height"`
	SampleSize   int    `json:"sample_size"`
	SourceFormat string `json:"source_format"`
	PixelFormat  string `json:"pixel_format"`
}

// EncodeBitmap encodes img as PNG and wraps it in base64 for JSON transport.
func EncodeBitmap(img image.Image) (*BitmapResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode bitmap: %w", err)
	}

	return &BitmapResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// EncodeSampled encodes a sampled bitmap along with how it was produced.
func EncodeSampled(bmp *Bitmap) (*SampledBitmapResult, error) {
	res, err := EncodeBitmap(bmp.Image)
	if err != nil {
		return nil, err
	}
	return &SampledBitmapResult{
		BitmapResult: *res,
		SourceWidth:  bmp.SourceWidth,
		SourceHeight: bmp.SourceHeight,
		SampleSize:   bmp.SampleSize,
		SourceFormat: bmp.Format,
		PixelFormat:  string(bmp.PixelFormat),
	}, nil
}
