package system

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
	"github.com/milk9111/ldtkscene/ldtk"
)

type harness struct {
	t       *testing.T
	w       *ecs.World
	server  *asset.Server
	sched   *ecs.Scheduler
	spawn   *LevelSpawnSystem
	project ecs.Entity
	events  []ecs.Event
}

func newHarness(t *testing.T, fsys fs.FS, projectPath string) *harness {
	t.Helper()
	log := zaptest.NewLogger(t)
	server, err := asset.NewServer(fsys, asset.WithLogger(log))
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.Close() })

	h := &harness{t: t, w: ecs.NewWorld(), server: server}
	h.spawn = NewLevelSpawnSystem(server, log)
	h.sched = ecs.NewScheduler(
		NewAssetSystem(server),
		NewDespawnSystem(log),
		NewLevelSelectionSystem(server, log),
		h.spawn,
	)

	h.project, err = ecs.Spawn(h.w,
		ecs.With(component.NameComponent.Kind(), component.Name{Value: projectPath}),
		ecs.With(component.TransformComponent.Kind(), component.Transform{}),
		ecs.With(component.LDtkProjectComponent.Kind(), component.LDtkProject{Handle: server.LoadProject(projectPath)}),
	)
	require.NoError(t, err)
	return h
}

// tick waits for outstanding loads and runs one scheduler pass.
func (h *harness) tick() {
	h.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(h.t, h.server.WaitIdle(ctx))
	h.sched.Update(h.w)
	h.events = append(h.events, h.w.Events().Drain()...)
}

func (h *harness) selectLevel(sel ldtk.Selection) {
	h.t.Helper()
	require.NoError(h.t, SelectLevel(h.w, sel))
}

func (h *harness) spawned() (LevelSpawnedEvent, bool) {
	for i := len(h.events) - 1; i >= 0; i-- {
		if evt, ok := h.events[i].Data.(LevelSpawnedEvent); ok {
			return evt, true
		}
	}
	return LevelSpawnedEvent{}, false
}

func (h *harness) tickUntilSpawned() LevelSpawnedEvent {
	h.t.Helper()
	h.events = nil
	for i := 0; i < 5; i++ {
		h.tick()
		if evt, ok := h.spawned(); ok {
			return evt
		}
	}
	h.t.Fatal("level never spawned")
	return LevelSpawnedEvent{}
}

func (h *harness) worlds() []ecs.Entity {
	return ecs.Query(h.w, component.LDtkWorldComponent.Kind())
}

func (h *harness) world(e ecs.Entity) *component.LDtkWorld {
	h.t.Helper()
	pw, ok := ecs.Get(h.w, e, component.LDtkWorldComponent.Kind())
	require.True(h.t, ok)
	return pw
}

type spawnedTile struct {
	layer     string
	transform component.Transform
	sprite    component.Sprite
	grid      ldtk.GridCoord
	render    ldtk.GridCoord
}

// layers returns the layer entities under level and the tiles of each.
func (h *harness) layers(level ecs.Entity) ([]string, map[string][]spawnedTile) {
	var names []string
	tiles := make(map[string][]spawnedTile)
	for _, layer := range ecs.Children(h.w, level) {
		if !ecs.Has(h.w, layer, component.LDtkLayerComponent.Kind()) {
			continue
		}
		name, _ := ecs.Get(h.w, layer, component.NameComponent.Kind())
		names = append(names, name.Value)
		for _, e := range ecs.Children(h.w, layer) {
			tr, _ := ecs.Get(h.w, e, component.TransformComponent.Kind())
			sp, _ := ecs.Get(h.w, e, component.SpriteComponent.Kind())
			g, _ := ecs.Get(h.w, e, component.LDtkGridCoordComponent.Kind())
			r, _ := ecs.Get(h.w, e, component.RenderGridCoordComponent.Kind())
			require.True(h.t, ecs.Has(h.w, e, component.LDtkTileComponent.Kind()))
			tiles[name.Value] = append(tiles[name.Value], spawnedTile{
				layer:     name.Value,
				transform: *tr,
				sprite:    *sp,
				grid:      g.GridCoord,
				render:    r.GridCoord,
			})
		}
	}
	return names, tiles
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

// projectFS serializes doc as maps/project.ldtk next to the given images.
func projectFS(t *testing.T, doc *ldtk.Document, images ...string) fstest.MapFS {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	fsys := fstest.MapFS{"maps/project.ldtk": {Data: data}}
	for _, p := range images {
		fsys[p] = &fstest.MapFile{Data: pngBytes(t, 32, 32)}
	}
	return fsys
}

const testProject = "maps/project.ldtk"

func ptr[T any](v T) *T { return &v }

func testTileset(uid int, relPath *string) ldtk.TilesetDefinition {
	return ldtk.TilesetDefinition{UID: uid, Identifier: "Tiles", RelPath: relPath, TileGridSize: 16, CWid: 2, CHei: 2, PxWid: 32, PxHei: 32}
}

func testLayer(name string, tilesetUID *int, tiles ...ldtk.TileInstance) ldtk.LayerInstance {
	return ldtk.LayerInstance{
		IID:           name + "-iid",
		Identifier:    name,
		Type:          ldtk.LayerIntGrid,
		CWid:          4,
		CHei:          4,
		GridSize:      16,
		Opacity:       1,
		Visible:       true,
		TilesetDefUID: tilesetUID,
		GridTiles:     tiles,
	}
}

func tileAt(x, y, t int) ldtk.TileInstance {
	return ldtk.TileInstance{Px: [2]int{x, y}, T: t, A: 1}
}

func testDoc(levels ...ldtk.Level) *ldtk.Document {
	return &ldtk.Document{
		IID:    "doc",
		Levels: levels,
		Defs:   ldtk.Defs{Tilesets: []ldtk.TilesetDefinition{testTileset(1, ptr("tiles.png"))}},
	}
}
