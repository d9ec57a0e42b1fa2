package component

// Camera describes a horizontally scrolling view. MinX/MaxX are the visible
// world bounds after the last camera update.
type Camera struct {
	CenterOffset float64
	ViewWidth    float64
	MinX         float64
	MaxX         float64
}

var CameraComponent = NewComponent[Camera]()
