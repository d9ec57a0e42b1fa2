package component

import "github.com/jakecoffman/cp"

type PartShape uint8

const (
	PartBox PartShape = iota
	// PartPolygon is a regular polygon whose first vertex sits half a step past
	// angle zero, then rotated by Angle.
	PartPolygon
)

// BodyPart is one collidable piece of a body. Offsets are relative to the body
// position.
type BodyPart struct {
	Label   Label
	Shape   PartShape
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Sides   int
	Radius  float64
	Angle   float64
}

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// A body with no Parts is a single Width x Height box carrying Label.
type PhysicsBody struct {
	Label         Label
	Parts         []BodyPart
	Width         float64
	Height        float64
	Density       float64
	Friction      float64
	Elasticity    float64
	Static        bool
	FixedRotation bool

	Body   *cp.Body
	Shapes []*cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Force accumulates forces to apply at the body centre on the next step.
// Units are mass*px/ms^2, scaled by the physics system.
type Force struct {
	X float64
	Y float64
}

var ForceComponent = NewComponent[Force]()
