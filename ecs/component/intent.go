package component

// NoSlot means no slot switch was requested this frame.
const NoSlot = -1

// Intent is written each frame by the input or behaviour layer before the
// simulation step reads it.
type Intent struct {
	MovingDir int
	Jump      bool
	Dash      bool

	// Fire is held state, not an edge.
	Fire bool
	// QuickMelee switches to the melee slot when a fire is honoured.
	QuickMelee bool
	Slot       int

	AimX, AimY float64
	HasAim     bool

	Hovering bool
}

// Idle returns an intent with nothing requested.
func Idle() Intent {
	return Intent{Slot: NoSlot}
}
