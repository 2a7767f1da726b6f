package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
	"github.com/milk9111/ldtkscene/ldtk"
)

var spawnChild = ecs.SpawnChild

// SelectLevel replaces any pending selection with sel.
func SelectLevel(w *ecs.World, sel ldtk.Selection) error {
	for _, e := range ecs.Query(w, component.LevelSelectionComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	_, err := ecs.Spawn(w, ecs.With(component.LevelSelectionComponent.Kind(), component.LevelSelection{Selection: sel}))
	return err
}

// LevelSelectionSystem applies a pending LevelSelection to the first loaded
// project that contains the selected level. It requests the level's tileset
// images, leaves a pending LDtkWorld for LevelSpawnSystem and only then
// destroys the project's previous world. A selection no project matches stays
// queued; one that matched is consumed even if applying it fails.
type LevelSelectionSystem struct {
	server *asset.Server
	log    *zap.Logger
}

func NewLevelSelectionSystem(server *asset.Server, log *zap.Logger) *LevelSelectionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &LevelSelectionSystem{server: server, log: log}
}

func (s *LevelSelectionSystem) Update(w *ecs.World) {
	if w == nil || s.server == nil {
		return
	}
	reqEntity, ok := ecs.First(w, component.LevelSelectionComponent.Kind())
	if !ok {
		return
	}
	req, ok := ecs.Get(w, reqEntity, component.LevelSelectionComponent.Kind())
	if !ok {
		return
	}
	sel := req.Selection

	for _, projectEntity := range ecs.Query(w, component.LDtkProjectComponent.Kind()) {
		p, ok := ecs.Get(w, projectEntity, component.LDtkProjectComponent.Kind())
		if !ok {
			continue
		}
		project, ok := s.server.Project(p.Handle)
		if !ok {
			continue
		}
		world, level, ok := project.Doc.FindWorldLevel(sel)
		if !ok {
			continue
		}

		worldEntity, tilesets, err := s.apply(w, projectEntity, p.Handle, project, sel, world, level)
		ecs.DestroyEntity(w, reqEntity)
		if err != nil {
			s.log.Error("apply level selection", zap.Stringer("selection", sel), zap.Error(err))
			return
		}

		s.log.Info("level selected",
			zap.Stringer("selection", sel),
			zap.String("world", world.Identifier),
			zap.String("level", level.Identifier),
			zap.Int("tilesets", tilesets),
		)
		w.Events().Push(ecs.Event{Type: EventLevelSelectionApplied, Data: LevelSelectionApplied{
			Project:   projectEntity,
			World:     worldEntity,
			Selection: sel,
			Tilesets:  tilesets,
		}})
		return
	}
}

func (s *LevelSelectionSystem) apply(w *ecs.World, projectEntity ecs.Entity, handle asset.ProjectHandle, project *asset.Project, sel ldtk.Selection, world *ldtk.World, level *ldtk.Level) (ecs.Entity, int, error) {
	previous := ecs.Children(w, projectEntity)
	tilesets := s.resolveTilesets(project, level)
	e, err := spawnChild(w, projectEntity,
		ecs.With(component.NameComponent.Kind(), component.Name{Value: world.Identifier}),
		ecs.With(component.TransformComponent.Kind(), component.Transform{}),
		ecs.With(component.LDtkWorldComponent.Kind(), component.LDtkWorld{
			Project:   handle,
			Selection: sel,
			World:     world,
			Level:     level,
			Tilesets:  tilesets,
			State:     component.WorldAwaitingAssets,
		}),
	)
	if err != nil {
		return 0, 0, err
	}
	for _, child := range previous {
		ecs.DestroyRecursive(w, child)
	}
	return e, len(tilesets), nil
}

// resolveTilesets requests the image and registers the atlas layout of every
// tileset the level's layers draw from. Tilesets without a usable image path
// are left out; layers using them spawn nothing.
func (s *LevelSelectionSystem) resolveTilesets(project *asset.Project, level *ldtk.Level) map[int]component.TilesetAssets {
	out := make(map[int]component.TilesetAssets)
	for _, def := range project.Doc.TilesetDefs(level.TilesetUIDs()) {
		if def.RelPath == nil {
			s.log.Debug("tileset has no image path", zap.Int("uid", def.UID), zap.String("tileset", def.Identifier))
			continue
		}
		p, ok := project.ResolveAsset(*def.RelPath)
		if !ok {
			s.log.Debug("unresolvable tileset path",
				zap.Int("uid", def.UID),
				zap.String("rel_path", *def.RelPath),
				zap.String("project", project.Path),
			)
			continue
		}
		out[def.UID] = component.TilesetAssets{
			TileSize: def.TileGridSize,
			Image:    s.server.LoadImage(p),
			Layout:   s.server.AddLayout(asset.TilesetLayout(def)),
		}
	}
	return out
}
