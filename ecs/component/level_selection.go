package component

import "github.com/milk9111/ldtkscene/ldtk"

// LevelSelection is a request to show a level. It stays in the world until a
// loaded project contains the selected level, so a selection made before the
// project finishes loading is applied as soon as it can be.
type LevelSelection struct {
	Selection ldtk.Selection
}

var LevelSelectionComponent = NewComponent[LevelSelection]()
