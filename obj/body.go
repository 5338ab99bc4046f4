package obj

import (
	"github.com/jakecoffman/cp"
)

// Body adapts a chipmunk body to the combat PhysicsBody interface.
type Body struct {
	body  *cp.Body
	world *CollisionWorld
}

func (b *Body) Position() cp.Vector {
	if b == nil || b.body == nil {
		return cp.Vector{}
	}
	return b.body.Position()
}

func (b *Body) Velocity() cp.Vector {
	if b == nil || b.body == nil {
		return cp.Vector{}
	}
	return b.body.Velocity()
}

func (b *Body) SetVelocity(v cp.Vector) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetVelocityVector(v)
}

// ApplyImpulse pushes the body through its centre of mass.
func (b *Body) ApplyImpulse(j cp.Vector) {
	if b == nil || b.body == nil {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(j, b.body.Position())
}

// SetPosition teleports the body. Queries made before the next step still
// see the new location.
func (b *Body) SetPosition(p cp.Vector) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetPosition(p)
	b.world.markMoved(b.body)
}

// SetHorizontalVelocity keeps the vertical component and replaces X.
func (b *Body) SetHorizontalVelocity(vx float64) {
	if b == nil || b.body == nil {
		return
	}
	v := b.body.Velocity()
	b.body.SetVelocity(vx, v.Y)
}
