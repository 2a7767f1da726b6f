package system

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
	"github.com/milk9111/ldtkscene/ldtk"
)

var errImageFailed = errors.New("tileset image failed to load")

type readiness int

const (
	waiting readiness = iota
	ready
	failed
)

// LevelSpawnSystem waits for every tileset image of a pending world to load
// and then builds the level's entity tree under it: one entity per level,
// one per rendered layer and one per tile.
type LevelSpawnSystem struct {
	server *asset.Server
	log    *zap.Logger

	// AbandonOnFailure gives up on a world as soon as one of its images
	// fails. Otherwise such a world waits forever.
	AbandonOnFailure bool
}

func NewLevelSpawnSystem(server *asset.Server, log *zap.Logger) *LevelSpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &LevelSpawnSystem{server: server, log: log, AbandonOnFailure: true}
}

func (s *LevelSpawnSystem) Update(w *ecs.World) {
	if w == nil || s.server == nil {
		return
	}
	ecs.ForEach(w, component.LDtkWorldComponent.Kind(), func(e ecs.Entity, pw *component.LDtkWorld) {
		if pw == nil || pw.State != component.WorldAwaitingAssets {
			return
		}

		state, image, err := s.readiness(pw)
		switch state {
		case waiting:
			return
		case failed:
			if !s.AbandonOnFailure {
				return
			}
			pw.State = component.WorldAbandoned
			s.log.Warn("abandoning world, tileset image failed",
				zap.String("level", pw.Level.Identifier),
				zap.String("image", image),
				zap.Error(err),
			)
			w.Events().Push(ecs.Event{Type: EventWorldAbandoned, Data: WorldAbandoned{World: e, Image: image, Err: err}})
			return
		case ready:
		}

		pw.State = component.WorldReady
		evt, err := s.spawnLevel(w, e, pw)
		if err != nil {
			pw.State = component.WorldAbandoned
			s.log.Error("spawn level", zap.String("level", pw.Level.Identifier), zap.Error(err))
			return
		}
		pw.State = component.WorldSpawned

		s.log.Info("level spawned",
			zap.String("level", pw.Level.Identifier),
			zap.String("iid", evt.IID),
			zap.Int("layers", evt.Layers),
			zap.Int("tiles", evt.Tiles),
		)
		w.Events().Push(ecs.Event{Type: EventLevelSpawned, Data: evt})
	})
}

// readiness scans the world's images in tileset uid order. A failed image
// wins over a pending one so a broken world is reported without waiting
// for the rest.
func (s *LevelSpawnSystem) readiness(pw *component.LDtkWorld) (readiness, string, error) {
	uids := make([]int, 0, len(pw.Tilesets))
	for uid := range pw.Tilesets {
		uids = append(uids, uid)
	}
	sort.Ints(uids)

	result := ready
	for _, uid := range uids {
		h := pw.Tilesets[uid].Image
		switch s.server.LoadState(h) {
		case asset.Loaded:
		case asset.Failed:
			err := s.server.ImageErr(h)
			if err == nil {
				err = errImageFailed
			}
			return failed, s.server.ImagePath(h), err
		default:
			result = waiting
		}
	}
	return result, "", nil
}

func (s *LevelSpawnSystem) spawnLevel(w *ecs.World, worldEntity ecs.Entity, pw *component.LDtkWorld) (LevelSpawnedEvent, error) {
	level := pw.Level
	evt := LevelSpawnedEvent{Project: pw.Project, World: worldEntity, IID: level.IID}

	bundles := []ecs.Bundle{
		ecs.With(component.NameComponent.Kind(), component.Name{Value: level.Identifier}),
		ecs.With(component.LDtkLevelComponent.Kind(), component.LDtkLevel{IID: level.IID}),
		ecs.With(component.TransformComponent.Kind(), LevelTransform(level)),
		ecs.With(component.VisibilityComponent.Kind(), component.Visibility{}),
		ecs.With(component.LevelBoundsComponent.Kind(), component.LevelBounds{Width: float64(level.PxWid), Height: float64(level.PxHei)}),
	}
	if bg, ok := level.BackgroundColor(); ok {
		bundles = append(bundles, ecs.With(component.LevelBackgroundComponent.Kind(), component.LevelBackground{Color: bg}))
	}
	levelEntity, err := ecs.SpawnChild(w, worldEntity, bundles...)
	if err != nil {
		return evt, fmt.Errorf("level %q: %w", level.Identifier, err)
	}
	evt.Level = levelEntity

	z := 0
	for i := len(level.LayerInstances) - 1; i >= 0; i-- {
		layer := &level.LayerInstances[i]
		switch layer.Type {
		case ldtk.LayerIntGrid:
			sublayers, tiles, err := s.spawnIntGridLayer(w, levelEntity, layer, z, pw.Tilesets)
			if err != nil {
				ecs.DestroyRecursive(w, levelEntity)
				return evt, fmt.Errorf("level %q layer %q: %w", level.Identifier, layer.Identifier, err)
			}
			if sublayers < 0 {
				continue
			}
			z += sublayers
			evt.Layers++
			evt.Tiles += tiles
		case ldtk.LayerEntities, ldtk.LayerTiles, ldtk.LayerAutoLayer:
			s.log.Debug("layer type not rendered", zap.String("layer", layer.Identifier), zap.Stringer("type", layer.Type))
		}
	}
	return evt, nil
}

// spawnIntGridLayer builds one layer entity and its tiles starting at depth
// baseZ. It returns the number of sub-layers used, or -1 when the layer has
// no resolved tileset and was skipped.
func (s *LevelSpawnSystem) spawnIntGridLayer(w *ecs.World, levelEntity ecs.Entity, layer *ldtk.LayerInstance, baseZ int, tilesets map[int]component.TilesetAssets) (int, int, error) {
	uid, ok := layer.TilesetUID()
	if !ok {
		s.log.Debug("layer has no tileset", zap.String("layer", layer.Identifier))
		return -1, 0, nil
	}
	assets, ok := tilesets[uid]
	if !ok {
		s.log.Debug("layer tileset not resolved", zap.String("layer", layer.Identifier), zap.Int("uid", uid))
		return -1, 0, nil
	}

	layerEntity, err := ecs.SpawnChild(w, levelEntity,
		ecs.With(component.NameComponent.Kind(), component.Name{Value: layer.Identifier}),
		ecs.With(component.LDtkLayerComponent.Kind(), component.LDtkLayer{IID: layer.IID}),
		ecs.With(component.TransformComponent.Kind(), component.Transform{}),
		ecs.With(component.VisibilityComponent.Kind(), component.Visibility{Hidden: !layer.Visible}),
	)
	if err != nil {
		return 0, 0, err
	}

	sublayers := ldtk.StackTiles(ldtk.TilePool(layer))
	tiles := 0
	for i, sub := range sublayers {
		for _, placed := range sub {
			pt := ldtk.PlaceTile(layer, placed, baseZ+i)
			_, err := ecs.SpawnChild(w, layerEntity,
				ecs.With(component.TransformComponent.Kind(), component.Transform{X: pt.X, Y: pt.Y, Z: pt.Z}),
				ecs.With(component.SpriteComponent.Kind(), component.Sprite{
					Image:  assets.Image,
					Layout: assets.Layout,
					Index:  pt.Index,
					Alpha:  pt.Alpha,
					FlipX:  pt.FlipX,
					FlipY:  pt.FlipY,
				}),
				ecs.With(component.LDtkGridCoordComponent.Kind(), component.LDtkGridCoord{GridCoord: pt.Coord}),
				ecs.With(component.RenderGridCoordComponent.Kind(), component.RenderGridCoord{GridCoord: pt.RenderCoord}),
				ecs.With(component.LDtkTileComponent.Kind(), component.LDtkTile{}),
			)
			if err != nil {
				return 0, 0, err
			}
			tiles++
		}
	}
	return len(sublayers), tiles, nil
}

// LevelTransform places a level in world space. Unset world coordinates
// stay at zero and the document's y axis is flipped.
func LevelTransform(level *ldtk.Level) component.Transform {
	t := component.Transform{Z: float64(level.WorldDepth)}
	if level.WorldX != ldtk.UnsetWorldCoord {
		t.X = float64(level.WorldX)
	}
	if level.WorldY != ldtk.UnsetWorldCoord {
		t.Y = float64(-level.WorldY)
	}
	return t
}
