package inet

import "fmt"

// Type selects one of the node variants.
type Type uint8

// Node types.
const (
	// NOD is a generic binary node, duplicator or constructor depending on
	// how its kind relates to the node it meets.
	NOD Type = iota

	// OP1 is an operator holding one pending operand in aux-1.
	OP1

	// OP2 is a binary operator awaiting both operands.
	OP2

	// ITE is a conditional choosing between the two halves of a pair.
	ITE
)

func (typ Type) String() string {
	switch typ {
	case NOD:
		return "NOD"
	case OP1:
		return "OP1"
	case OP2:
		return "OP2"
	case ITE:
		return "ITE"
	}
	return fmt.Sprintf("Type(%d)", uint8(typ))
}

// Kind is an opaque node label: a duplication group for NOD nodes, an opcode
// for operators.
type Kind uint64

const (
	typeBits  = 2
	isNumBits = 3
)

// Info is the unpacked metadata word of a node.
//
// Packed, kind occupies the low KindBits, followed by the 2-bit type and the
// 3-bit is-number mask in the highest bits; one mask bit per port, set when
// that port's stored payload is a literal.
type Info struct {
	Kind  Kind
	Type  Type
	IsNum uint8
}

// PackInfo packs info into a metadata word for the given profile.
func (prof Profile) PackInfo(info Info) uint64 {
	kb := prof.KindBits()
	return uint64(info.Kind&prof.KindMask()) |
		uint64(info.Type&(1<<typeBits-1))<<kb |
		uint64(info.IsNum&(1<<isNumBits-1))<<(kb+typeBits)
}

// UnpackInfo unpacks a metadata word for the given profile.
func (prof Profile) UnpackInfo(word uint64) Info {
	kb := prof.KindBits()
	return Info{
		Kind:  Kind(word) & prof.KindMask(),
		Type:  Type(word>>kb) & (1<<typeBits - 1),
		IsNum: uint8(word>>(kb+typeBits)) & (1<<isNumBits - 1),
	}
}

// IsNumeric returns true if the is-number bit for slot is set.
func (info Info) IsNumeric(slot Slot) bool { return info.IsNum>>slot&1 != 0 }

func (info Info) String() string {
	return fmt.Sprintf("%v:%v", info.Type, uint64(info.Kind))
}
