package ldtk

import "fmt"

// DefaultWorldIdentifier names the world synthesized for single-world
// projects.
const DefaultWorldIdentifier = "World"

// SelectionKind tells how a Selection addresses a level.
type SelectionKind int

const (
	SelectByIndices SelectionKind = iota
	SelectByIID
)

// Selection picks one level out of a document, either by its position or by
// its stable iid.
type Selection struct {
	Kind       SelectionKind
	WorldIndex int
	LevelIndex int
	IID        string
}

// ByIndices selects the level at levelIndex in the world at worldIndex.
func ByIndices(worldIndex, levelIndex int) Selection {
	return Selection{Kind: SelectByIndices, WorldIndex: worldIndex, LevelIndex: levelIndex}
}

// ByIID selects the first level, in document order, whose iid matches.
func ByIID(iid string) Selection {
	return Selection{Kind: SelectByIID, IID: iid}
}

func (s Selection) String() string {
	switch s.Kind {
	case SelectByIID:
		return fmt.Sprintf("iid(%s)", s.IID)
	default:
		return fmt.Sprintf("indices(%d,%d)", s.WorldIndex, s.LevelIndex)
	}
}

// LevelRef is a level together with its position in the document.
type LevelRef struct {
	WorldIndex int
	LevelIndex int
	World      *World
	Level      *Level
}

// WorldList returns the document's worlds. Single-world projects keep their
// levels at the root; they are exposed through one synthesized world.
func (d *Document) WorldList() []World {
	if d == nil {
		return nil
	}
	if len(d.Worlds) > 0 || len(d.Levels) == 0 {
		return d.Worlds
	}
	return []World{{
		IID:        d.IID,
		Identifier: DefaultWorldIdentifier,
		Levels:     d.Levels,
	}}
}

// LevelRefs lists every level in document order.
func (d *Document) LevelRefs() []LevelRef {
	worlds := d.WorldList()
	var out []LevelRef
	for wi := range worlds {
		world := &worlds[wi]
		for li := range world.Levels {
			out = append(out, LevelRef{
				WorldIndex: wi,
				LevelIndex: li,
				World:      world,
				Level:      &world.Levels[li],
			})
		}
	}
	return out
}

// FindWorldLevel resolves a selection. It never mutates the document.
func (d *Document) FindWorldLevel(sel Selection) (*World, *Level, bool) {
	switch sel.Kind {
	case SelectByIndices:
		return d.findAtIndices(sel.WorldIndex, sel.LevelIndex)
	case SelectByIID:
		return d.findByIID(sel.IID)
	default:
		return nil, nil, false
	}
}

func (d *Document) findAtIndices(worldIndex, levelIndex int) (*World, *Level, bool) {
	worlds := d.WorldList()
	if worldIndex < 0 || worldIndex >= len(worlds) {
		return nil, nil, false
	}
	world := &worlds[worldIndex]
	if levelIndex < 0 || levelIndex >= len(world.Levels) {
		return nil, nil, false
	}
	return world, &world.Levels[levelIndex], true
}

func (d *Document) findByIID(iid string) (*World, *Level, bool) {
	worlds := d.WorldList()
	for wi := range worlds {
		world := &worlds[wi]
		for li := range world.Levels {
			if world.Levels[li].IID == iid {
				return world, &world.Levels[li], true
			}
		}
	}
	return nil, nil, false
}

// IndicesOf returns the world and level index of the level with iid.
func (d *Document) IndicesOf(iid string) (int, int, bool) {
	for _, ref := range d.LevelRefs() {
		if ref.Level.IID == iid {
			return ref.WorldIndex, ref.LevelIndex, true
		}
	}
	return 0, 0, false
}
