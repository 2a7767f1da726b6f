package component

import "github.com/milk9111/ldtkscene/asset"

// LDtkProject marks the entity that owns a loaded project. Level selections
// spawn their world under it.
type LDtkProject struct {
	Handle asset.ProjectHandle
}

var LDtkProjectComponent = NewComponent[LDtkProject]()
