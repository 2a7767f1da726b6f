package component

// Name is a human readable label, used for debugging and scene dumps.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
