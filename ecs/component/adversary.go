package component

// Adversary holds flags owned by the behaviour layer. The combat core reads
// them and never sets them.
type Adversary struct {
	Name           string
	Archetype      string
	HasSurrendered bool
	Dying          bool
	HasSeenPlayer  bool
	WeaponTaken    bool
}

// Acquirable reports whether a fire notification may retarget this adversary.
func (a *Adversary) Acquirable() bool {
	return a != nil && !a.HasSurrendered && !a.Dying && !a.HasSeenPlayer
}
