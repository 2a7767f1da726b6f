package scene

import (
	"fmt"

	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
)

// Snapshot is a plain copy of the spawned scene tree.
type Snapshot struct {
	Worlds []World `yaml:"worlds"`
}

type World struct {
	Entity string `yaml:"entity"`
	Name   string `yaml:"name"`
	State  string `yaml:"state"`
	Level  *Level `yaml:"level,omitempty"`
}

type Level struct {
	Name       string  `yaml:"name"`
	IID        string  `yaml:"iid"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Z          float64 `yaml:"z"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background,omitempty"`
	Layers     []Layer `yaml:"layers"`
}

type Layer struct {
	Name   string `yaml:"name"`
	IID    string `yaml:"iid"`
	Hidden bool   `yaml:"hidden,omitempty"`
	Tiles  []Tile `yaml:"tiles"`
}

type Tile struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Z          float64 `yaml:"z"`
	Index      int     `yaml:"index"`
	Alpha      float64 `yaml:"alpha"`
	FlipX      bool    `yaml:"flip_x,omitempty"`
	FlipY      bool    `yaml:"flip_y,omitempty"`
	Grid       [2]int  `yaml:"grid,flow"`
	RenderGrid [2]int  `yaml:"render_grid,flow"`
}

// Capture walks every LDtkWorld entity and its descendants.
func Capture(w *ecs.World) Snapshot {
	var snap Snapshot
	ecs.ForEach(w, component.LDtkWorldComponent.Kind(), func(e ecs.Entity, pw *component.LDtkWorld) {
		node := World{Entity: e.String(), Name: name(w, e), State: pw.State.String()}
		for _, child := range ecs.Children(w, e) {
			if lvl, ok := captureLevel(w, child); ok {
				node.Level = &lvl
				break
			}
		}
		snap.Worlds = append(snap.Worlds, node)
	})
	return snap
}

// Tiles returns every tile of the snapshot in capture order.
func (s Snapshot) Tiles() []Tile {
	var out []Tile
	for _, w := range s.Worlds {
		if w.Level == nil {
			continue
		}
		for _, l := range w.Level.Layers {
			out = append(out, l.Tiles...)
		}
	}
	return out
}

func captureLevel(w *ecs.World, e ecs.Entity) (Level, bool) {
	lvl, ok := ecs.Get(w, e, component.LDtkLevelComponent.Kind())
	if !ok {
		return Level{}, false
	}
	out := Level{Name: name(w, e), IID: lvl.IID}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		out.X, out.Y, out.Z = t.X, t.Y, t.Z
	}
	if b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok {
		out.Width, out.Height = b.Width, b.Height
	}
	if bg, ok := ecs.Get(w, e, component.LevelBackgroundComponent.Kind()); ok {
		out.Background = hexColor(bg.Color.R, bg.Color.G, bg.Color.B)
	}
	for _, child := range ecs.Children(w, e) {
		if layer, ok := captureLayer(w, child); ok {
			out.Layers = append(out.Layers, layer)
		}
	}
	return out, true
}

func captureLayer(w *ecs.World, e ecs.Entity) (Layer, bool) {
	l, ok := ecs.Get(w, e, component.LDtkLayerComponent.Kind())
	if !ok {
		return Layer{}, false
	}
	out := Layer{Name: name(w, e), IID: l.IID}
	if v, ok := ecs.Get(w, e, component.VisibilityComponent.Kind()); ok {
		out.Hidden = v.Hidden
	}
	for _, child := range ecs.Children(w, e) {
		if !ecs.Has(w, child, component.LDtkTileComponent.Kind()) {
			continue
		}
		var tile Tile
		if t, ok := ecs.Get(w, child, component.TransformComponent.Kind()); ok {
			tile.X, tile.Y, tile.Z = t.X, t.Y, t.Z
		}
		if s, ok := ecs.Get(w, child, component.SpriteComponent.Kind()); ok {
			tile.Index, tile.Alpha, tile.FlipX, tile.FlipY = s.Index, s.Alpha, s.FlipX, s.FlipY
		}
		if g, ok := ecs.Get(w, child, component.LDtkGridCoordComponent.Kind()); ok {
			tile.Grid = [2]int{g.X, g.Y}
		}
		if g, ok := ecs.Get(w, child, component.RenderGridCoordComponent.Kind()); ok {
			tile.RenderGrid = [2]int{g.X, g.Y}
		}
		out.Tiles = append(out.Tiles, tile)
	}
	return out, true
}

func name(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
		return n.Value
	}
	return ""
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
