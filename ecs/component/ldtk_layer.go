package component

// LDtkLayer tags a spawned layer with its iid.
type LDtkLayer struct {
	IID string
}

var LDtkLayerComponent = NewComponent[LDtkLayer]()
