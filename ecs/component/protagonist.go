package component

// Protagonist holds the player-controlled extension of Actor.
type Protagonist struct {
	DashDelay int
	DashTime  int

	RegenDelay       int
	RegenRate        float64
	TimeSinceDamaged int

	// Footstep[1] is the current walk phase flag, Footstep[0] latches until
	// the deferred reset clears it.
	Footstep [2]bool

	WeaponNumberTo float64
	HoverFrame     float64

	ShotsFired int
}

// NewProtagonist returns the stock extension: a 50 frame dash delay and
// regeneration kicking in 150 frames after the last hit.
func NewProtagonist() *Protagonist {
	return &Protagonist{
		DashDelay:  50,
		DashTime:   50,
		RegenDelay: 150,
		RegenRate:  0.1,
	}
}
