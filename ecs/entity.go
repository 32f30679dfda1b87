package ecs

import "fmt"

// Entity is a generational handle into the world arena: the low half is a
// 1-based slot, the high half counts how many times that slot was recycled.
// The zero value is never issued.
type Entity uint64

const slotBits = 32

func handle(slot, gen uint32) Entity {
	return Entity(gen)<<slotBits | Entity(slot)
}

func (e Entity) slot() uint32 { return uint32(e) }

func (e Entity) gen() uint32 { return uint32(e >> slotBits) }

// Valid reports whether e could ever have been issued. It says nothing about
// liveness; ask the World for that.
func (e Entity) Valid() bool { return e.slot() != 0 }

func (e Entity) String() string {
	return fmt.Sprintf("#%d.%d", e.slot(), e.gen())
}
