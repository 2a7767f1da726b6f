package plugin

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
	"github.com/milk9111/ldtkscene/ecs/system"
)

// Options configures the installed systems.
type Options struct {
	Logger           *zap.Logger
	AbandonOnFailure bool
}

// Systems are the installed systems, exposed so hosts can adjust them.
type Systems struct {
	Assets    *system.AssetSystem
	Despawn   *system.DespawnSystem
	Selection *system.LevelSelectionSystem
	Spawn     *system.LevelSpawnSystem
	Camera    *system.CameraSystem
}

// Install adds the level systems to s in the order they must run: asset
// results, despawn requests, selection, the load gate and spawning, then
// the camera.
func Install(s *ecs.Scheduler, server *asset.Server, opts Options) Systems {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sys := Systems{
		Assets:    system.NewAssetSystem(server),
		Despawn:   system.NewDespawnSystem(log.Named("despawn")),
		Selection: system.NewLevelSelectionSystem(server, log.Named("selection")),
		Spawn:     system.NewLevelSpawnSystem(server, log.Named("spawn")),
		Camera:    system.NewCameraSystem(),
	}
	sys.Spawn.AbandonOnFailure = opts.AbandonOnFailure

	s.Add(sys.Assets)
	s.Add(sys.Despawn)
	s.Add(sys.Selection)
	s.Add(sys.Spawn)
	s.Add(sys.Camera)
	return sys
}

// SpawnProject requests the project at path and creates the entity that
// owns its worlds.
func SpawnProject(w *ecs.World, server *asset.Server, path string) (ecs.Entity, error) {
	h := server.LoadProject(path)
	e, err := ecs.Spawn(w,
		ecs.With(component.NameComponent.Kind(), component.Name{Value: asset.CleanPath(path)}),
		ecs.With(component.TransformComponent.Kind(), component.Transform{}),
		ecs.With(component.LDtkProjectComponent.Kind(), component.LDtkProject{Handle: h}),
	)
	if err != nil {
		return 0, fmt.Errorf("spawn project %s: %w", path, err)
	}
	return e, nil
}
