package component

// Player holds the movement tuning for the controllable body.
type Player struct {
	MoveForce float64
	JumpForce float64
}

var PlayerComponent = NewComponent[Player]()

// Jump counts jumps already used since the last landing. A jump is allowed
// while Used < Max; landing sets Used back to 0.
type Jump struct {
	Used int
	Max  int
}

var JumpComponent = NewComponent[Jump]()
