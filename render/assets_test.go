package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestAssetCacheLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "player.png")
	writePNG(t, path, 16, 16)

	c := NewAssetCache()
	res := c.Load(path)
	require.NotNil(t, res)
	assert.Equal(t, image.Rect(0, 0, 16, 16), res.Bounds())
	assert.Equal(t, path, res.Path)

	// second load hits the cache: same pointer, no new decode
	again := c.Load(path)
	assert.Same(t, res, again)
	assert.Equal(t, 1, c.Loads())
	assert.Equal(t, 1, c.Len())
}

func TestAssetCacheFailureCached(t *testing.T) {
	c := NewAssetCache()

	res := c.Load("does/not/exist.png")
	assert.Nil(t, res)
	assert.Equal(t, 1, c.Loads())

	// the failure is remembered, not retried
	res = c.Load("does/not/exist.png")
	assert.Nil(t, res)
	assert.Equal(t, 1, c.Loads())
	assert.Equal(t, 1, c.Len(), "failed keys still occupy the cache")
}

func TestAssetCacheUndecodableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	c := NewAssetCache()
	assert.Nil(t, c.Load(path))
	assert.Nil(t, c.Load(path))
	assert.Equal(t, 1, c.Loads())
}

func TestAssetCacheEmptyPath(t *testing.T) {
	c := NewAssetCache()
	assert.Nil(t, c.Load(""))
	assert.Equal(t, 0, c.Loads())
	assert.Equal(t, 0, c.Len())
}

func TestAssetCacheReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")
	writePNG(t, path, 16, 16)

	c := NewAssetCache()
	require.NotNil(t, c.Load(path))

	// file changes on disk; reload picks up the new bounds
	writePNG(t, path, 32, 8)
	c.Reload(path)

	res := c.Load(path)
	require.NotNil(t, res)
	assert.Equal(t, image.Rect(0, 0, 32, 8), res.Bounds())
}

func TestAssetCacheReloadKeepsOldOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprite.png")
	writePNG(t, path, 16, 16)

	c := NewAssetCache()
	old := c.Load(path)
	require.NotNil(t, old)

	require.NoError(t, os.Remove(path))
	c.Reload(path)

	assert.Same(t, old, c.Load(path), "failed reload keeps the previous resource")
}

func TestAssetCacheReloadUnknownPathIgnored(t *testing.T) {
	c := NewAssetCache()
	c.Reload("never/loaded.png")
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Loads())
}

func TestResourceNilSafety(t *testing.T) {
	var r *Resource
	assert.Equal(t, image.Rectangle{}, r.Bounds())
	assert.Nil(t, r.Source())
	assert.Nil(t, r.Image())
}

func TestResourceSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dot.png")
	writePNG(t, path, 1, 1)

	c := NewAssetCache()
	res := c.Load(path)
	require.NotNil(t, res)

	src := res.Source()
	require.NotNil(t, src)
	r, g, b, a := src.At(0, 0).RGBA()
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, color.NRGBA{
		R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8),
	})
}
