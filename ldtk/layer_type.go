package ldtk

import (
	"encoding/json"
	"fmt"
)

// LayerType is the kind of a layer instance, stored as "__type".
type LayerType int

const (
	LayerIntGrid LayerType = iota
	LayerEntities
	LayerTiles
	LayerAutoLayer
)

var layerTypeNames = [...]string{
	LayerIntGrid:   "IntGrid",
	LayerEntities:  "Entities",
	LayerTiles:     "Tiles",
	LayerAutoLayer: "AutoLayer",
}

func (t LayerType) String() string {
	if t < 0 || int(t) >= len(layerTypeNames) {
		return fmt.Sprintf("LayerType(%d)", int(t))
	}
	return layerTypeNames[t]
}

// ParseLayerType maps an LDtk "__type" string to a LayerType.
func ParseLayerType(s string) (LayerType, error) {
	for i, name := range layerTypeNames {
		if name == s {
			return LayerType(i), nil
		}
	}
	return 0, fmt.Errorf("ldtk: unknown layer type %q", s)
}

func (t LayerType) MarshalJSON() ([]byte, error) {
	if t < 0 || int(t) >= len(layerTypeNames) {
		return nil, fmt.Errorf("ldtk: invalid layer type %d", int(t))
	}
	return json.Marshal(layerTypeNames[t])
}

func (t *LayerType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("ldtk: layer type: %w", err)
	}
	parsed, err := ParseLayerType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
