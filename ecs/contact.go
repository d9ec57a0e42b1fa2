package ecs

import "github.com/milk9111/hopper/ecs/component"

// BodyRef identifies one collidable part: the entity that owns it and the label
// of the part that was touched.
type BodyRef struct {
	Entity Entity
	Label  component.Label
}

// ContactPair is an unordered pair of parts that started touching.
type ContactPair struct {
	A BodyRef
	B BodyRef
}

// Other returns the side of the pair that is not e.
func (p ContactPair) Other(e Entity) (BodyRef, bool) {
	switch {
	case p.A.Entity == e:
		return p.B, true
	case p.B.Entity == e:
		return p.A, true
	}
	return BodyRef{}, false
}

// Couples reports whether the pair joins entity e with a part labelled l.
func (p ContactPair) Couples(e Entity, l component.Label) bool {
	other, ok := p.Other(e)
	return ok && other.Label == l
}
