package ldtk

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Validate reports structural problems that decoding alone does not catch:
// malformed or duplicated iids and layers pointing at unknown tilesets. None
// of these stop a level from spawning; affected layers are skipped.
func (d *Document) Validate() error {
	if d == nil {
		return errors.New("ldtk: nil document")
	}
	var errs []error
	seen := make(map[string]struct{})
	for _, ref := range d.LevelRefs() {
		lvl := ref.Level
		if _, err := uuid.Parse(lvl.IID); err != nil {
			errs = append(errs, fmt.Errorf("level %q: iid %q: %w", lvl.Identifier, lvl.IID, err))
		}
		if _, dup := seen[lvl.IID]; dup {
			errs = append(errs, fmt.Errorf("level %q: duplicate iid %q", lvl.Identifier, lvl.IID))
		}
		seen[lvl.IID] = struct{}{}

		for i := range lvl.LayerInstances {
			layer := &lvl.LayerInstances[i]
			uid, ok := layer.TilesetUID()
			if !ok {
				continue
			}
			if _, ok := d.Tileset(uid); !ok {
				errs = append(errs, fmt.Errorf("level %q layer %q: unknown tileset uid %d", lvl.Identifier, layer.Identifier, uid))
			}
		}
	}
	return errors.Join(errs...)
}
