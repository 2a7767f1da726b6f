package component

import "github.com/milk9111/ldtkscene/asset"

// Sprite draws one region of an atlas image.
type Sprite struct {
	Image  asset.ImageHandle
	Layout asset.LayoutHandle
	Index  int
	Alpha  float64
	FlipX  bool
	FlipY  bool
}

var SpriteComponent = NewComponent[Sprite]()
