package inet

import "fmt"

// Value is a port value: either a port pointer, naming one slot of one node,
// or an immediate literal tagged at or above the profile's LiteralTag.
type Value uint64

// Addr is a node address; node storage starts at Addr * NodeSize.
type Addr uint64

// Slot selects one word within a node.
type Slot uint8

// Node slots; the three ports followed by the metadata word.
const (
	Prim Slot = iota
	Aux1
	Aux2
	infoSlot
)

// NodeSize is the number of storage words occupied by each node.
const NodeSize = 4

// RootAddr is the address of the root cell, by convention the first node of
// any loaded table; its aux-1 port holds the net's result.
const RootAddr Addr = 0

// PortPointer returns the pointer to slot of the node at addr.
func PortPointer(addr Addr, slot Slot) Value {
	return Value(addr)*NodeSize + Value(slot)
}

// AddrOf returns the node address of a port pointer.
func AddrOf(p Value) Addr { return Addr(p / NodeSize) }

// SlotOf returns the slot of a port pointer.
func SlotOf(p Value) Slot { return Slot(p % NodeSize) }

func (slot Slot) String() string {
	switch slot {
	case Prim:
		return "a"
	case Aux1:
		return "b"
	case Aux2:
		return "c"
	case infoSlot:
		return "i"
	}
	return fmt.Sprintf("Slot(%d)", uint8(slot))
}
