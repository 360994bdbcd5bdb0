package inet

import (
	"strings"

	"github.com/pkg/errors"
)

// Profile fixes the storage word width of a net, and with it the literal
// tag, the literal payload width and the width of node kinds.
type Profile struct {
	Name string

	// StorageBits is the width of each stored node word.
	StorageBits uint

	// LiteralTag marks literal values: any Value at or above it is a literal.
	// It must exceed every port pointer the net can address.
	LiteralTag Value
}

// The supported profiles.
var (
	// Profile32 stores 32-bit words, literals carry 32-bit payloads.
	Profile32 = Profile{Name: "u32", StorageBits: 32, LiteralTag: 1 << 32}

	// Profile64 stores 64-bit words; since values are themselves only 64
	// bits wide, literals carry 63-bit payloads.
	Profile64 = Profile{Name: "u64", StorageBits: 64, LiteralTag: 1 << 63}

	// DefaultProfile is used by nets not given any WithProfile option.
	DefaultProfile = Profile32
)

// Profiles lists every supported profile.
var Profiles = []Profile{Profile32, Profile64}

// ProfileNamed returns the profile with the given name.
func ProfileNamed(name string) (Profile, error) {
	var names []string
	for _, prof := range Profiles {
		if prof.Name == name {
			return prof, nil
		}
		names = append(names, prof.Name)
	}
	return Profile{}, errors.Errorf("unknown profile %q, expected one of %v", name, strings.Join(names, ", "))
}

func (prof Profile) String() string { return prof.Name }

// Literal tags a raw payload as a literal value.
func (prof Profile) Literal(payload uint64) Value {
	return Value(payload&prof.PayloadMask()) | prof.LiteralTag
}

// IsLiteral returns true if v is a literal rather than a port pointer.
func (prof Profile) IsLiteral(v Value) bool { return v >= prof.LiteralTag }

// Payload returns the raw payload of v, truncated to the payload width.
func (prof Profile) Payload(v Value) uint64 { return uint64(v) & prof.PayloadMask() }

// PayloadMask masks any literal payload.
func (prof Profile) PayloadMask() uint64 { return uint64(prof.LiteralTag) - 1 }

// StorageMask masks any stored word.
func (prof Profile) StorageMask() uint64 {
	if prof.StorageBits >= 64 {
		return ^uint64(0)
	}
	return 1<<prof.StorageBits - 1
}

// MaxNodes returns the number of node addresses whose port pointers stay
// below both the literal tag and the storage word width.
func (prof Profile) MaxNodes() uint64 {
	limit := uint64(prof.LiteralTag)
	if mask := prof.StorageMask(); mask < limit-1 {
		limit = mask + 1
	}
	return limit / NodeSize
}

// KindBits returns the width of the kind field within a metadata word.
func (prof Profile) KindBits() uint { return prof.StorageBits - typeBits - isNumBits }

// KindMask masks any node kind.
func (prof Profile) KindMask() Kind { return Kind(1)<<prof.KindBits() - 1 }
