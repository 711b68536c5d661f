package render

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Resource is a cached renderable image. Decoding happens at load time; the
// GPU-side image is created lazily on first draw so the cache stays usable
// in headless tests.
type Resource struct {
	Path string

	src image.Image
	img *ebiten.Image
}

// Bounds returns the decoded image bounds.
func (r *Resource) Bounds() image.Rectangle {
	if r == nil || r.src == nil {
		return image.Rectangle{}
	}
	return r.src.Bounds()
}

// Source returns the decoded image.
func (r *Resource) Source() image.Image {
	if r == nil {
		return nil
	}
	return r.src
}

// Image returns the GPU-side image, creating it on first use.
func (r *Resource) Image() *ebiten.Image {
	if r == nil || r.src == nil {
		return nil
	}
	if r.img == nil {
		r.img = ebiten.NewImageFromImage(r.src)
	}
	return r.img
}

// AssetCache deduplicates renderable resources keyed by source path. Each
// path is loaded at most once and the key set only grows; a failed load is
// remembered as "no resource" and never retried (Reload is the one
// deliberate exception, driven by file-change notifications).
//
// The cache is touched only by the loop goroutine; the file watcher hands
// over bare path strings on a channel instead of calling in.
type AssetCache struct {
	entries map[string]*Resource
	loads   int
}

// NewAssetCache creates an empty cache.
func NewAssetCache() *AssetCache {
	return &AssetCache{entries: map[string]*Resource{}}
}

// Load returns the resource for path, loading it on first request. A load
// failure logs, caches nil, and returns nil; callers render a placeholder.
func (c *AssetCache) Load(path string) *Resource {
	if c == nil || path == "" {
		return nil
	}
	if res, ok := c.entries[path]; ok {
		return res
	}
	res, err := c.decode(path)
	if err != nil {
		log.Printf("assets: load %s: %v", path, err)
		res = nil
	}
	c.entries[path] = res
	return res
}

// Reload re-decodes a path in place, used for on-disk asset hot reload. An
// unknown path is ignored; a failed reload keeps the previous entry.
func (c *AssetCache) Reload(path string) {
	if c == nil {
		return
	}
	if _, ok := c.entries[path]; !ok {
		return
	}
	res, err := c.decode(path)
	if err != nil {
		log.Printf("assets: reload %s: %v", path, err)
		return
	}
	c.entries[path] = res
}

// Len returns the number of cached keys, failed loads included.
func (c *AssetCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Loads returns how many decode attempts the cache has made.
func (c *AssetCache) Loads() int {
	if c == nil {
		return 0
	}
	return c.loads
}

func (c *AssetCache) decode(path string) (*Resource, error) {
	c.loads++
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return &Resource{Path: path, src: img}, nil
}
