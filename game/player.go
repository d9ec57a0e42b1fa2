package game

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// Player drives the player entity: it turns commands into forces and tracks
// the jump budget.
type Player struct {
	w      *ecs.World
	entity ecs.Entity
}

func newPlayer(w *ecs.World, e ecs.Entity) *Player {
	return &Player{w: w, entity: e}
}

func (p *Player) Entity() ecs.Entity {
	return p.entity
}

func (p *Player) MoveLeft() {
	p.push(-1, 0)
}

func (p *Player) MoveRight() {
	p.push(1, 0)
}

// Jump pushes the player up if the budget allows it.
func (p *Player) Jump() bool {
	jump, ok := ecs.Get(p.w, p.entity, component.JumpComponent.Kind())
	if !ok || jump.Used >= jump.Max {
		return false
	}
	p.push(0, -1)
	jump.Used++
	return true
}

func (p *Player) push(dirX, dirY float64) {
	tuning, ok := ecs.Get(p.w, p.entity, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	force, ok := ecs.Get(p.w, p.entity, component.ForceComponent.Kind())
	if !ok {
		return
	}
	force.X += dirX * tuning.MoveForce
	force.Y += dirY * tuning.JumpForce
}

// JumpBudget returns how many jumps have been used since the last landing.
func (p *Player) JumpBudget() int {
	jump, ok := ecs.Get(p.w, p.entity, component.JumpComponent.Kind())
	if !ok {
		return 0
	}
	return jump.Used
}

// MaxJumps is the number of jumps allowed between landings.
func (p *Player) MaxJumps() int {
	jump, ok := ecs.Get(p.w, p.entity, component.JumpComponent.Kind())
	if !ok {
		return 0
	}
	return jump.Max
}

// SetJumpBudget sets the used-jump count, clamped to [0, max].
func (p *Player) SetJumpBudget(n int) {
	jump, ok := ecs.Get(p.w, p.entity, component.JumpComponent.Kind())
	if !ok {
		return
	}
	if n < 0 {
		n = 0
	}
	if n > jump.Max {
		n = jump.Max
	}
	jump.Used = n
}

// OnCollision restores the budget when any pair joins the player with
// something it can land on.
func (p *Player) OnCollision(pairs []ecs.ContactPair) {
	for _, pair := range pairs {
		other, ok := pair.Other(p.entity)
		if ok && other.Label.Landing() {
			p.SetJumpBudget(0)
			return
		}
	}
}

func (p *Player) Position() (float64, float64) {
	t, ok := ecs.Get(p.w, p.entity, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return t.X, t.Y
}

// Teleport moves the player's body, zeroing its velocity.
func (p *Player) Teleport(x, y float64) {
	if t, ok := ecs.Get(p.w, p.entity, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	body, ok := ecs.Get(p.w, p.entity, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return
	}
	body.Body.SetPosition(cp.Vector{X: x, Y: y})
	body.Body.SetVelocity(0, 0)
}
