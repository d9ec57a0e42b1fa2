package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// ForceScale converts forces given in mass*px/ms^2 (the unit gameplay tuning is
// written in) into the mass*px/s^2 chipmunk integrates with.
const ForceScale = 1e6

const defaultDensity = 0.001

// PhysicsConfig tunes the chipmunk space.
type PhysicsConfig struct {
	Gravity    float64
	Damping    float64
	Iterations int
	TimeStep   float64
}

func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:    1000,
		Damping:    0.55,
		Iterations: 10,
		TimeStep:   1.0 / 60.0,
	}
}

// AfterStepFunc runs once after every physics step.
type AfterStepFunc func(w *ecs.World)

// CollisionStartFunc receives the pairs that began touching during one step.
// It is not called for steps without new contacts.
type CollisionStartFunc func(w *ecs.World, pairs []ecs.ContactPair)

type PhysicsSystem struct {
	cfg           PhysicsConfig
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	parts    map[*cp.Shape]ecs.BodyRef
	pending  []ecs.ContactPair

	nextSub        uint64
	afterStep      []afterStepSub
	collisionStart []collisionStartSub
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

type afterStepSub struct {
	id uint64
	fn AfterStepFunc
}

type collisionStartSub struct {
	id uint64
	fn CollisionStartFunc
}

func NewPhysicsSystem(cfg PhysicsConfig) *PhysicsSystem {
	def := DefaultPhysicsConfig()
	if cfg.Iterations <= 0 {
		cfg.Iterations = def.Iterations
	}
	if cfg.TimeStep <= 0 {
		cfg.TimeStep = def.TimeStep
	}
	if cfg.Damping <= 0 || cfg.Damping > 1 {
		cfg.Damping = def.Damping
	}
	ps := &PhysicsSystem{
		cfg:      cfg,
		entities: make(map[ecs.Entity]*bodyInfo),
		parts:    make(map[*cp.Shape]ecs.BodyRef),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = uint(ps.cfg.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: ps.cfg.Gravity})
	space.SetDamping(ps.cfg.Damping)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// BodyCount reports how many entities currently own chipmunk bodies.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}

// Update syncs entities into the space, applies queued forces, steps once and
// publishes contact and after-step notifications in that order.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)
	ps.applyForces(w)

	ps.pending = ps.pending[:0]
	ps.space.Step(ps.cfg.TimeStep)

	ps.syncTransforms(w)

	if len(ps.pending) > 0 {
		pairs := append([]ecs.ContactPair(nil), ps.pending...)
		for _, sub := range append([]collisionStartSub(nil), ps.collisionStart...) {
			sub.fn(w, pairs)
		}
	}
	for _, sub := range append([]afterStepSub(nil), ps.afterStep...) {
		sub.fn(w)
	}
}

// Sync removes bodies of destroyed entities and creates bodies for new ones
// without stepping.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}
		info := ps.createBodyInfo(e, t, body)
		if info == nil {
			return
		}
		ps.entities[e] = info
		body.Body = info.body
		body.Shapes = info.shapes
	})
}

// PartOf reports which entity and label a chipmunk shape belongs to.
func (ps *PhysicsSystem) PartOf(shape *cp.Shape) (ecs.BodyRef, bool) {
	if ps == nil || shape == nil {
		return ecs.BodyRef{}, false
	}
	ref, ok := ps.parts[shape]
	return ref, ok
}

// OnAfterStep registers fn to run after every step.
func (ps *PhysicsSystem) OnAfterStep(fn AfterStepFunc) *Subscription {
	if ps == nil || fn == nil {
		return nil
	}
	ps.nextSub++
	ps.afterStep = append(ps.afterStep, afterStepSub{id: ps.nextSub, fn: fn})
	return &Subscription{ps: ps, id: ps.nextSub}
}

// OnCollisionStart registers fn to receive each step's new contacts.
func (ps *PhysicsSystem) OnCollisionStart(fn CollisionStartFunc) *Subscription {
	if ps == nil || fn == nil {
		return nil
	}
	ps.nextSub++
	ps.collisionStart = append(ps.collisionStart, collisionStartSub{id: ps.nextSub, fn: fn})
	return &Subscription{ps: ps, id: ps.nextSub}
}

// Listeners reports the number of active subscriptions.
func (ps *PhysicsSystem) Listeners() int {
	if ps == nil {
		return 0
	}
	return len(ps.afterStep) + len(ps.collisionStart)
}

func (ps *PhysicsSystem) unsubscribe(id uint64) {
	for i, sub := range ps.afterStep {
		if sub.id == id {
			ps.afterStep = append(ps.afterStep[:i:i], ps.afterStep[i+1:]...)
			return
		}
	}
	for i, sub := range ps.collisionStart {
		if sub.id == id {
			ps.collisionStart = append(ps.collisionStart[:i:i], ps.collisionStart[i+1:]...)
			return
		}
	}
}

// Subscription is a registered physics listener.
type Subscription struct {
	ps *PhysicsSystem
	id uint64
}

// Unsubscribe removes the listener. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.ps == nil {
		return
	}
	s.ps.unsubscribe(s.id)
	s.ps = nil
}

func collisionTypeFor(l component.Label) cp.CollisionType {
	return cp.CollisionType(l) + 1
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	labels := append([]component.Label{component.LabelNone}, component.Labels...)
	for i, a := range labels {
		for _, b := range labels[i:] {
			handler := ps.space.NewCollisionHandler(collisionTypeFor(a), collisionTypeFor(b))
			handler.UserData = ps
			handler.BeginFunc = beginContact
		}
	}

	ps.handlersReady = true
}

func beginContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	sys, ok := userData.(*PhysicsSystem)
	if !ok || sys == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	refA, okA := sys.parts[shapeA]
	refB, okB := sys.parts[shapeB]
	if !okA || !okB {
		return true
	}
	sys.pending = append(sys.pending, ecs.ContactPair{A: refA, B: refB})
	return true
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, t *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	parts := bodyComp.Parts
	if len(parts) == 0 {
		width, height := bodyComp.Width, bodyComp.Height
		if width <= 0 || height <= 0 {
			width = 32
			height = 32
		}
		parts = []component.BodyPart{{Label: bodyComp.Label, Shape: component.PartBox, Width: width, Height: height}}
	}

	var body *cp.Body
	if bodyComp.Static {
		body = cp.NewStaticBody()
	} else {
		density := bodyComp.Density
		if density <= 0 {
			density = defaultDensity
		}
		mass, moment := massProperties(parts, density)
		if bodyComp.FixedRotation {
			moment = math.Inf(1)
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	body.SetAngle(t.Rotation)
	ps.space.AddBody(body)

	info := &bodyInfo{body: body, static: bodyComp.Static}
	for _, part := range parts {
		shape := newPartShape(body, part)
		if shape == nil {
			log.Printf("physics: entity %s has degenerate %s part, skipping", e, part.Label)
			continue
		}
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeFor(part.Label))
		ps.space.AddShape(shape)
		ps.parts[shape] = ecs.BodyRef{Entity: e, Label: part.Label}
		info.shapes = append(info.shapes, shape)
	}
	return info
}

func newPartShape(body *cp.Body, part component.BodyPart) *cp.Shape {
	switch part.Shape {
	case component.PartBox:
		if part.Width <= 0 || part.Height <= 0 {
			return nil
		}
		bb := cp.BB{
			L: part.OffsetX - part.Width/2,
			B: part.OffsetY - part.Height/2,
			R: part.OffsetX + part.Width/2,
			T: part.OffsetY + part.Height/2,
		}
		return cp.NewBox2(body, bb, 0)
	case component.PartPolygon:
		verts := PolygonVertices(part)
		if len(verts) < 3 {
			return nil
		}
		return cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
	}
	return nil
}

// PolygonVertices returns the body-local vertices of a regular polygon part.
func PolygonVertices(part component.BodyPart) []cp.Vector {
	if part.Sides < 3 || part.Radius <= 0 {
		return nil
	}
	theta := 2 * math.Pi / float64(part.Sides)
	offset := theta / 2
	verts := make([]cp.Vector, 0, part.Sides)
	for i := 0; i < part.Sides; i++ {
		angle := offset + float64(i)*theta + part.Angle
		verts = append(verts, cp.Vector{
			X: part.OffsetX + part.Radius*math.Cos(angle),
			Y: part.OffsetY + part.Radius*math.Sin(angle),
		})
	}
	return verts
}

func massProperties(parts []component.BodyPart, density float64) (float64, float64) {
	var mass, moment float64
	for _, part := range parts {
		switch part.Shape {
		case component.PartBox:
			m := density * part.Width * part.Height
			mass += m
			moment += cp.MomentForBox(m, part.Width, part.Height) + m*(part.OffsetX*part.OffsetX+part.OffsetY*part.OffsetY)
		case component.PartPolygon:
			verts := PolygonVertices(part)
			if len(verts) < 3 {
				continue
			}
			n := float64(part.Sides)
			m := density * 0.5 * n * part.Radius * part.Radius * math.Sin(2*math.Pi/n)
			mass += m
			moment += cp.MomentForPoly(m, len(verts), verts, cp.Vector{}, 0)
		}
	}
	if mass <= 0 {
		mass = 1
		moment = math.Inf(1)
	}
	return mass, moment
}

func (ps *PhysicsSystem) applyForces(w *ecs.World) {
	ecs.ForEach2(w, component.ForceComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, f *component.Force, body *component.PhysicsBody) {
		if f.X == 0 && f.Y == 0 {
			return
		}
		if body.Body != nil && !body.Static {
			force := cp.Vector{X: f.X * ForceScale, Y: f.Y * ForceScale}
			body.Body.ApplyForceAtWorldPoint(force, body.Body.Position())
		}
		f.X, f.Y = 0, 0
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Body == nil || body.Static {
			return
		}
		pos := body.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = body.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeBody(info)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeBody(info *bodyInfo) {
	for _, shape := range info.shapes {
		if shape == nil {
			continue
		}
		ps.space.RemoveShape(shape)
		delete(ps.parts, shape)
	}
	if info.body != nil {
		ps.space.RemoveBody(info.body)
	}
}
