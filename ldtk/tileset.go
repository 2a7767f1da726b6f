package ldtk

import "sort"

// TilesetUIDs returns the distinct tileset uids referenced by the level's
// layers, sorted ascending. Layers without a tileset contribute nothing.
func (l *Level) TilesetUIDs() []int {
	if l == nil {
		return nil
	}
	set := make(map[int]struct{})
	for i := range l.LayerInstances {
		if uid, ok := l.LayerInstances[i].TilesetUID(); ok {
			set[uid] = struct{}{}
		}
	}
	uids := make([]int, 0, len(set))
	for uid := range set {
		uids = append(uids, uid)
	}
	sort.Ints(uids)
	return uids
}

// TilesetDefs returns the definitions whose uid is in uids, in definition
// order. Unknown uids are ignored.
func (d *Document) TilesetDefs(uids []int) []*TilesetDefinition {
	if d == nil || len(uids) == 0 {
		return nil
	}
	want := make(map[int]struct{}, len(uids))
	for _, uid := range uids {
		want[uid] = struct{}{}
	}
	var out []*TilesetDefinition
	for i := range d.Defs.Tilesets {
		def := &d.Defs.Tilesets[i]
		if _, ok := want[def.UID]; ok {
			out = append(out, def)
		}
	}
	return out
}

// Tileset looks up a single tileset definition by uid.
func (d *Document) Tileset(uid int) (*TilesetDefinition, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Defs.Tilesets {
		if d.Defs.Tilesets[i].UID == uid {
			return &d.Defs.Tilesets[i], true
		}
	}
	return nil, false
}
