package ecs

import "github.com/milk9111/hopper/ecs/component"

// ForEach calls fn for every entity carrying a. The entity list is snapshotted
// first so fn may add, remove or destroy.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil || fn == nil {
		return
	}
	for _, e := range sa.Entities() {
		va, ok := sa.Get(e)
		if !ok || !IsAlive(w, e) {
			continue
		}
		fn(e, va)
	}
}

func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, a, false)
	sb := storeFor(w, b, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range sa.Entities() {
		va, ok := sa.Get(e)
		if !ok || !IsAlive(w, e) {
			continue
		}
		vb, ok := sb.Get(e)
		if !ok {
			continue
		}
		fn(e, va, vb)
	}
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, a, false)
	sb := storeFor(w, b, false)
	sc := storeFor(w, c, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range sa.Entities() {
		va, ok := sa.Get(e)
		if !ok || !IsAlive(w, e) {
			continue
		}
		vb, ok := sb.Get(e)
		if !ok {
			continue
		}
		vc, ok := sc.Get(e)
		if !ok {
			continue
		}
		fn(e, va, vb, vc)
	}
}

// Query returns the live entities carrying a.
func Query[A any](w *World, a component.ComponentKind[A]) []Entity {
	var out []Entity
	ForEach(w, a, func(e Entity, _ *A) { out = append(out, e) })
	return out
}
