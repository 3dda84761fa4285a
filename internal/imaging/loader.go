package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"io/fs"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Bounds is the result of a bounds-only probe: the intrinsic size of an image
// and the name of the codec that recognised it. No pixel data is allocated to
// obtain it.
type Bounds struct {
	// Width is the intrinsic image width in pixels.
	Width int `json:"width"`

	// Height is the intrinsic image height in pixels.
	Height int `json:"height"`

	// Format is the registered codec name: "png", "jpeg", "gif", "bmp",
	// "tiff" or "webp".
	Format string `json:"format"`

	// MimeType is derived from Format, or "application/octet-stream" when the
	// format has no well-known MIME type.
	MimeType string `json:"mime_type"`
}

// ProbeReader reads only the image header from r and reports its bounds.
//
// The returned error wraps image.ErrFormat when no registered codec
// recognises the data.
func ProbeReader(r io.Reader) (*Bounds, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("failed to probe image bounds: %w", err)
	}
	return &Bounds{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Format:   format,
		MimeType: mimeTypeFor(format),
	}, nil
}

// ProbeFile reports the bounds of the image stored at path.
func ProbeFile(path string) (*Bounds, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeResource reports the bounds of an image bundled in fsys, typically an
// embed.FS holding application resources.
func ProbeResource(fsys fs.FS, name string) (*Bounds, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open resource: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

func mimeTypeFor(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tiff":
		return "image/tiff"
	case "webp":
		return "image/webp"
	}
	return "application/octet-stream"
}

// readResource loads a resource fully so it can be probed and then decoded
// from the start; fs.File does not guarantee io.Seeker.
func readResource(fsys fs.FS, name string) (*bytes.Reader, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource: %w", err)
	}
	return bytes.NewReader(data), nil
}

// BitmapCache provides thread-safe caching of sampled bitmaps so repeated
// requests for the same file at the same size skip the probe and decode.
//
// Entries are keyed by path, requested box and pixel format. Removing an entry
// with Evict releases the cache's reference to the pixel buffer, which is how
// callers recycle a bitmap they no longer need.
//
// # Example Usage
//
//	cache := imaging.NewBitmapCache()
//	bmp, err := cache.Load("/path/to/photo.jpg", 320, 240)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Use bmp.Image...
//	cache.Evict("/path/to/photo.jpg")
type BitmapCache struct {
	mu      sync.RWMutex
	bitmaps map[cacheKey]*Bitmap
}

type cacheKey struct {
	path      string
	reqWidth  int
	reqHeight int
	format    PixelFormat
	filter    string
}

// NewBitmapCache creates and initializes a new empty bitmap cache.
func NewBitmapCache() *BitmapCache {
	return &BitmapCache{
		bitmaps: make(map[cacheKey]*Bitmap),
	}
}

// Load returns the cached bitmap for (path, reqWidth, reqHeight, options) or
// decodes it with DecodeSampledFile and caches the result.
//
// Different paths to the same file (relative vs absolute) are separate
// entries.
func (c *BitmapCache) Load(path string, reqWidth, reqHeight int, opts ...DecodeOption) (*Bitmap, error) {
	o := resolveOptions(opts)
	key := cacheKey{path: path, reqWidth: reqWidth, reqHeight: reqHeight, format: o.pixelFormat, filter: o.filterName}

	c.mu.RLock()
	if bmp, ok := c.bitmaps[key]; ok {
		c.mu.RUnlock()
		return bmp, nil
	}
	c.mu.RUnlock()

	bmp, err := DecodeSampledFile(path, reqWidth, reqHeight, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.bitmaps[key] = bmp
	c.mu.Unlock()

	return bmp, nil
}

// Evict removes every cached bitmap decoded from path, whatever size or
// format it was requested at.
func (c *BitmapCache) Evict(path string) {
	c.mu.Lock()
	for key := range c.bitmaps {
		if key.path == path {
			delete(c.bitmaps, key)
		}
	}
	c.mu.Unlock()
}

// Clear removes all bitmaps from the cache.
func (c *BitmapCache) Clear() {
	c.mu.Lock()
	c.bitmaps = make(map[cacheKey]*Bitmap)
	c.mu.Unlock()
}

// Len reports the number of cached bitmaps.
func (c *BitmapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bitmaps)
}
