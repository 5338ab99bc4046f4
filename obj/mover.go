package obj

// Mover is the voluntary movement controller of an actor. Knockback locks
// switch it off through the MovementAuthority methods.
type Mover struct {
	Speed float64

	body     *Body
	disabled bool
}

func NewMover(body *Body, speed float64) *Mover {
	return &Mover{body: body, Speed: speed}
}

func (m *Mover) Enable() {
	if m == nil {
		return
	}
	m.disabled = false
}

func (m *Mover) Disable() {
	if m == nil {
		return
	}
	m.disabled = true
}

func (m *Mover) Enabled() bool {
	return m != nil && !m.disabled
}

// Drive sets horizontal velocity from a -1..1 input while enabled.
func (m *Mover) Drive(moveX float64) {
	if !m.Enabled() || m.body == nil {
		return
	}
	m.body.SetHorizontalVelocity(moveX * m.Speed)
}
