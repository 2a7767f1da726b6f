package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
	"github.com/milk9111/ldtkscene/ecs/system"
)

// Renderer draws the spawned scene through the world's camera. World y
// grows upward; the screen y is flipped when drawing.
type Renderer struct {
	Clear   color.Color
	texture *textureRegistry
}

func NewRenderer(server *asset.Server) *Renderer {
	return &Renderer{
		Clear:   color.Black,
		texture: newTextureRegistry(server),
	}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if bg, ok := system.Background(w); ok {
		screen.Fill(bg.Color)
	} else if r.Clear != nil {
		screen.Fill(r.Clear)
	}

	var cam component.Camera
	if e, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if c, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
			cam = *c
		}
	}
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	bounds := screen.Bounds()
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2

	for _, d := range system.CollectDrawables(w) {
		img, ok := r.texture.tile(d.Sprite.Image, d.Sprite.Layout, d.Sprite.Index)
		if !ok {
			continue
		}
		size := img.Bounds().Size()

		op := &ebiten.DrawImageOptions{}
		if d.Sprite.FlipX {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(size.X), 0)
		}
		if d.Sprite.FlipY {
			op.GeoM.Scale(1, -1)
			op.GeoM.Translate(0, float64(size.Y))
		}
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate((d.X-cam.X)*zoom+halfW, (cam.Y-d.Y)*zoom+halfH)
		op.ColorScale.ScaleAlpha(float32(d.Sprite.Alpha))

		screen.DrawImage(img, op)
	}
}
