package inet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PortPointer(t *testing.T) {
	for _, addr := range []Addr{0, 1, 7, 1<<30 - 1} {
		for slot := Prim; slot <= Aux2; slot++ {
			p := PortPointer(addr, slot)
			assert.Equal(t, addr, AddrOf(p), "expected addr of %v", p)
			assert.Equal(t, slot, SlotOf(p), "expected slot of %v", p)
		}
	}
	assert.Equal(t, Value(4*5+2), PortPointer(5, Aux2))
}

func Test_Profile(t *testing.T) {
	for _, tc := range []struct {
		prof        Profile
		payloadMask uint64
		kindBits    uint
		maxNodes    uint64
	}{
		{Profile32, 1<<32 - 1, 27, 1 << 30},
		{Profile64, 1<<63 - 1, 59, 1 << 61},
	} {
		t.Run(tc.prof.Name, func(t *testing.T) {
			prof := tc.prof
			assert.Equal(t, tc.payloadMask, prof.PayloadMask(), "expected payload mask")
			assert.Equal(t, tc.kindBits, prof.KindBits(), "expected kind bits")
			assert.Equal(t, tc.maxNodes, prof.MaxNodes(), "expected max nodes")

			last := PortPointer(Addr(prof.MaxNodes()-1), Aux2)
			assert.False(t, prof.IsLiteral(last), "expected highest port pointer to not be a literal")
			assert.True(t, uint64(last) <= prof.StorageMask(), "expected highest port pointer to fit in storage")

			for _, x := range []uint64{0, 1, 42, tc.payloadMask} {
				v := prof.Literal(x)
				assert.True(t, prof.IsLiteral(v), "expected %v to be a literal", x)
				assert.Equal(t, x, prof.Payload(v), "expected payload round trip")
			}
			assert.Equal(t, uint64(0), prof.Payload(prof.Literal(tc.payloadMask+1)), "expected payload truncation")

			found, err := ProfileNamed(prof.Name)
			require.NoError(t, err, "must find profile by name")
			assert.Equal(t, prof, found)
		})
	}

	_, err := ProfileNamed("u16")
	assert.EqualError(t, err, `unknown profile "u16", expected one of u32, u64`)
}

func Test_Info(t *testing.T) {
	assert.Equal(t,
		uint64(5)|uint64(OP2)<<27|uint64(5)<<29,
		Profile32.PackInfo(Info{Kind: 5, Type: OP2, IsNum: 5}),
		"expected kind, then type, then is-number bits")
	assert.Equal(t, uint64(0), Profile32.PackInfo(Info{}), "expected empty info to pack to zero")

	for _, prof := range Profiles {
		t.Run(prof.Name, func(t *testing.T) {
			for _, info := range []Info{
				{},
				{Kind: 1, Type: OP1, IsNum: 1},
				{Kind: 3, Type: ITE, IsNum: 6},
				{Kind: prof.KindMask(), Type: OP2, IsNum: 7},
			} {
				word := prof.PackInfo(info)
				assert.True(t, word <= prof.StorageMask(), "expected %v to fit in storage", info)
				assert.Equal(t, info, prof.UnpackInfo(word), "expected round trip")
			}
			assert.Equal(t, Info{Type: NOD}, prof.UnpackInfo(prof.PackInfo(Info{Kind: prof.KindMask() + 1})),
				"expected kind truncation")
		})
	}

	info := Info{IsNum: 1<<Prim | 1<<Aux2}
	assert.True(t, info.IsNumeric(Prim))
	assert.False(t, info.IsNumeric(Aux1))
	assert.True(t, info.IsNumeric(Aux2))
}

func Test_StrategyNamed(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Strategy
	}{
		{"lifo", LIFO},
		{"LIFO", LIFO},
		{"Fifo", FIFO},
	} {
		got, err := StrategyNamed(tc.name)
		require.NoError(t, err, "must parse %q", tc.name)
		assert.Equal(t, tc.want, got)
	}
	_, err := StrategyNamed("random")
	assert.Error(t, err)
}
