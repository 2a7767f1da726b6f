package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/ldtkscene/asset"
)

type texture struct {
	version uint64
	img     *ebiten.Image
	tiles   map[tileKey]*ebiten.Image
}

type tileKey struct {
	layout asset.LayoutHandle
	index  int
}

// textureRegistry uploads decoded images to the GPU once per image version
// and caches atlas sub-images. A reloaded image replaces its entry.
type textureRegistry struct {
	server  *asset.Server
	entries map[asset.ImageHandle]*texture
}

func newTextureRegistry(server *asset.Server) *textureRegistry {
	return &textureRegistry{server: server, entries: make(map[asset.ImageHandle]*texture)}
}

func (r *textureRegistry) image(h asset.ImageHandle) (*texture, bool) {
	version := r.server.ImageVersion(h)
	if t, ok := r.entries[h]; ok && t.version == version {
		return t, true
	}
	src, ok := r.server.Image(h)
	if !ok {
		return nil, false
	}
	if old, ok := r.entries[h]; ok {
		old.img.Deallocate()
	}
	t := &texture{
		version: version,
		img:     ebiten.NewImageFromImage(src),
		tiles:   make(map[tileKey]*ebiten.Image),
	}
	r.entries[h] = t
	return t, true
}

// tile returns the atlas cell index of image h cut by layout.
func (r *textureRegistry) tile(h asset.ImageHandle, layout asset.LayoutHandle, index int) (*ebiten.Image, bool) {
	t, ok := r.image(h)
	if !ok {
		return nil, false
	}
	key := tileKey{layout: layout, index: index}
	if sub, ok := t.tiles[key]; ok {
		return sub, true
	}
	l, ok := r.server.Layout(layout)
	if !ok {
		return nil, false
	}
	rect, ok := l.Rect(index)
	if !ok {
		return nil, false
	}
	sub, ok := t.img.SubImage(rect).(*ebiten.Image)
	if !ok {
		return nil, false
	}
	t.tiles[key] = sub
	return sub, true
}
