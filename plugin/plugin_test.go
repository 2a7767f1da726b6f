package plugin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
	"github.com/milk9111/ldtkscene/ecs/system"
	"github.com/milk9111/ldtkscene/ldtk"
	"github.com/milk9111/ldtkscene/levels"
)

func TestInstallOrder(t *testing.T) {
	server, err := asset.NewServer(levels.FS)
	require.NoError(t, err)
	defer server.Close()

	s := ecs.NewScheduler()
	sys := Install(s, server, Options{AbandonOnFailure: false})

	assert.Equal(t, []ecs.System{sys.Assets, sys.Despawn, sys.Selection, sys.Spawn, sys.Camera}, s.Systems())
	assert.False(t, sys.Spawn.AbandonOnFailure)
}

func TestSpawnSampleProject(t *testing.T) {
	server, err := asset.NewServer(levels.FS, asset.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	defer server.Close()

	w := ecs.NewWorld()
	s := ecs.NewScheduler()
	Install(s, server, Options{Logger: zaptest.NewLogger(t), AbandonOnFailure: true})

	project, err := SpawnProject(w, server, "./"+levels.SampleProject)
	require.NoError(t, err)
	name, ok := ecs.Get(w, project, component.NameComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, levels.SampleProject, name.Value)

	require.NoError(t, system.SelectLevel(w, ldtk.ByIndices(0, 0)))

	var spawned *system.LevelSpawnedEvent
	for i := 0; i < 5 && spawned == nil; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		require.NoError(t, server.WaitIdle(ctx))
		cancel()
		s.Update(w)
		for _, evt := range w.Events().Drain() {
			if data, ok := evt.Data.(system.LevelSpawnedEvent); ok {
				spawned = &data
			}
		}
	}
	require.NotNil(t, spawned, "sample level spawns")
	assert.Equal(t, "6c2c3f50-25d0-11ef-8d9b-d7a1b1f3a001", spawned.IID)
	assert.Equal(t, 17, spawned.Tiles)

	parent, ok := ecs.Parent(w, spawned.World)
	require.True(t, ok)
	assert.Equal(t, project, parent, "world hangs under the project entity")
}
