package component

// Visibility hides an entity and everything below it without removing them.
type Visibility struct {
	Hidden bool
}

var VisibilityComponent = NewComponent[Visibility]()
