package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// CameraTag marks the view entity, which survives resets.
type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// ObstacleTag marks stage geometry. A reset destroys it together with the
// PlayerTag entity and rebuilds both.
type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()
