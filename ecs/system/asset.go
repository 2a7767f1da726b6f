package system

import (
	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ecs"
)

// AssetSystem applies finished asset loads at the start of each tick so
// later systems see load state change only at tick boundaries.
type AssetSystem struct {
	server *asset.Server
}

func NewAssetSystem(server *asset.Server) *AssetSystem {
	return &AssetSystem{server: server}
}

func (s *AssetSystem) Update(w *ecs.World) {
	if w == nil || s.server == nil {
		return
	}
	s.server.Update()
}
