package physics

import "math"

// CollisionHandler is called once for each newly-started collision pair.
// Handlers run synchronously inside Step, after integration.
type CollisionHandler func(a, b *Body)

// anchor pins a body-local point to a fixed world point. The body hangs
// from the anchor and swings like a damped pendulum.
type anchor struct {
	body  *Body
	local Vec // Anchor point in body-local coordinates
	world Vec // Fixed world position the local point is pinned to
}

// pairKey identifies an unordered body pair by world-assigned ids.
type pairKey struct {
	lo, hi int
}

func makePairKey(a, b *Body) pairKey {
	if a.id < b.id {
		return pairKey{lo: a.id, hi: b.id}
	}
	return pairKey{lo: b.id, hi: a.id}
}

// World owns bodies and advances them under gravity and accumulated
// forces. It tracks overlapping pairs between steps so that collision
// handlers fire exactly once per contact start.
type World struct {
	gravity     Vec
	bodies      []*Body
	anchors     []anchor
	onCollision CollisionHandler
	overlapping map[pairKey]bool
	nextID      int

	// Reused between steps to avoid allocations
	started []pairKey
	seen    map[pairKey]bool
}

// NewWorld creates an empty world with the given gravity vector.
func NewWorld(gravity Vec) *World {
	return &World{
		gravity:     gravity,
		overlapping: make(map[pairKey]bool),
		seen:        make(map[pairKey]bool),
	}
}

// AddBody registers a body with the world and returns it.
func (w *World) AddBody(b *Body) *Body {
	b.id = w.nextID
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody unregisters a body and drops its anchors and overlap state.
func (w *World) RemoveBody(b *Body) {
	kept := w.bodies[:0]
	for _, o := range w.bodies {
		if o != b {
			kept = append(kept, o)
		}
	}
	w.bodies = kept
	w.ClearAnchors(b)
	for key := range w.overlapping {
		if key.lo == b.id || key.hi == b.id {
			delete(w.overlapping, key)
		}
	}
}

// Gravity returns the current gravity vector.
func (w *World) Gravity() Vec {
	return w.gravity
}

// SetGravity replaces the gravity vector.
func (w *World) SetGravity(g Vec) {
	w.gravity = g
}

// OnCollisionStart sets the handler invoked for each newly-started
// collision pair during Step.
func (w *World) OnCollisionStart(fn CollisionHandler) {
	w.onCollision = fn
}

// Anchor pins the body-local point to the given world position. The body
// stops integrating linearly and swings about the anchor instead.
func (w *World) Anchor(b *Body, local, world Vec) {
	w.anchors = append(w.anchors, anchor{body: b, local: local, world: world})
}

// ClearAnchors removes all anchors attached to the body.
func (w *World) ClearAnchors(b *Body) {
	kept := w.anchors[:0]
	for _, a := range w.anchors {
		if a.body != b {
			kept = append(kept, a)
		}
	}
	w.anchors = kept
}

// Anchored reports whether the body is held by at least one anchor.
func (w *World) Anchored(b *Body) bool {
	for _, a := range w.anchors {
		if a.body == b {
			return true
		}
	}
	return false
}

// anchorSwingDamping bleeds angular velocity from anchored bodies each
// second so a captured body settles instead of swinging forever.
const anchorSwingDamping = 0.4

// Step advances the simulation by dt seconds: integrates dynamic bodies
// (semi-implicit Euler), resolves anchors, then fires collision-start
// handlers for pairs that began overlapping during this step.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if b.Static || w.Anchored(b) {
			b.force = Vec{}
			continue
		}
		acc := w.gravity
		if b.Mass > 0 {
			acc = acc.Add(b.force.Scale(1 / b.Mass))
		}
		b.Vel = b.Vel.Add(acc.Scale(dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Angle += b.AngVel * dt
		b.force = Vec{}
	}

	w.resolveAnchors(dt)
	w.detectCollisions()
}

// resolveAnchors swings each anchored body about its pin point under
// gravity, then snaps the pinned local point back onto the world anchor.
func (w *World) resolveAnchors(dt float64) {
	for _, a := range w.anchors {
		b := a.body
		armLen := a.local.Length()
		if armLen < 1 {
			armLen = 1
		}
		inertia := b.Inertia
		if inertia <= 0 {
			inertia = 1
		}

		// Pendulum about the anchor: gravity torque restores toward
		// hanging straight down. Low inertia swings freely.
		angAcc := -(w.gravity.Y / armLen) * math.Sin(b.Angle) / inertia
		b.AngVel += angAcc * dt
		b.AngVel *= math.Pow(anchorSwingDamping, dt)
		b.Angle += b.AngVel * dt

		b.Pos = a.world.Sub(a.local.Rotate(b.Angle))
		b.Vel = Vec{}
	}
}

// detectCollisions finds newly-overlapping pairs and fires the handler
// once per pair, in registration order.
func (w *World) detectCollisions() {
	w.started = w.started[:0]
	clear(w.seen)

	byKey := make(map[pairKey][2]*Body)
	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if a.Static && b.Static {
				continue
			}
			if !a.overlaps(b) {
				continue
			}
			key := makePairKey(a, b)
			w.seen[key] = true
			if !w.overlapping[key] {
				w.overlapping[key] = true
				w.started = append(w.started, key)
				byKey[key] = [2]*Body{a, b}
			}
		}
	}

	// Forget pairs that separated this step.
	for key := range w.overlapping {
		if !w.seen[key] {
			delete(w.overlapping, key)
		}
	}

	if w.onCollision == nil {
		return
	}
	for _, key := range w.started {
		pair := byKey[key]
		w.onCollision(pair[0], pair[1])
	}
}
