package component

// DespawnAllRequest asks the despawn system to remove every spawned world.
// Systems or the host create a short-lived entity carrying it.
type DespawnAllRequest struct{}

var DespawnAllRequestComponent = NewComponent[DespawnAllRequest]()
