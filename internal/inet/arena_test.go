package inet

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Net_alloc(t *testing.T) {
	net := New()

	a, err := net.Alloc(NOD, 0)
	require.NoError(t, err, "must alloc")
	b, err := net.Alloc(OP2, OpMul)
	require.NoError(t, err, "must alloc")
	c, err := net.Alloc(ITE, 3)
	require.NoError(t, err, "must alloc")
	assert.Equal(t, []Addr{0, 1, 2}, []Addr{a, b, c}, "expected fresh addresses")
	assert.Equal(t, 3, net.Len())

	info, err := net.Info(b)
	require.NoError(t, err, "must read info")
	assert.Equal(t, Info{Kind: OpMul, Type: OP2}, info)
	for slot := Prim; slot <= Aux2; slot++ {
		v, err := net.ReadPort(b, slot)
		require.NoError(t, err, "must read port")
		assert.Equal(t, PortPointer(b, slot), v, "expected fresh port to refer to itself")
	}
	assert.False(t, net.IsFree(b), "expected typed node to not be free")

	require.NoError(t, net.Free(b), "must free")
	require.NoError(t, net.Free(c), "must free")
	assert.True(t, net.IsFree(b), "expected freed node to be free")
	assert.True(t, net.IsFree(c), "expected freed node to be free")
	assert.Equal(t, 2, net.Freed())

	d, err := net.Alloc(OP1, OpAdd)
	require.NoError(t, err, "must alloc")
	assert.Equal(t, c, d, "expected most recently freed address to be reused")
	e, err := net.Alloc(OP1, OpSub)
	require.NoError(t, err, "must alloc")
	assert.Equal(t, b, e, "expected next freed address to be reused")
	assert.Equal(t, 3, net.Len(), "expected no growth while reusing")
	assert.Equal(t, 0, net.Freed())

	assert.False(t, net.IsFree(99), "expected out of range address to not be free")
}

func Test_Net_alloc_limit(t *testing.T) {
	net := New(WithMemLimit(2), WithPageSize(1))
	for i := 0; i < 2; i++ {
		_, err := net.Alloc(NOD, 0)
		require.NoError(t, err, "must alloc within limit")
	}
	_, err := net.Alloc(NOD, 0)
	assert.True(t, errors.Is(err, ErrOutOfMemory), "expected out of memory, got %+v", err)
	assert.Equal(t, 2, net.Len(), "expected no partial growth")
}

func Test_Net_link(t *testing.T) {
	net := New()
	lit := net.prof.Literal
	x, _ := net.Alloc(NOD, 0)
	y, _ := net.Alloc(NOD, 1)

	require.NoError(t, net.Link(lit(1), lit(2)), "must link literals")
	assert.Empty(t, net.Redexes(), "expected no pair between two literals")

	require.NoError(t, net.Link(PortPointer(x, Aux1), PortPointer(y, Prim)))
	assert.Empty(t, net.Redexes(), "expected no pair through an aux port")
	v, err := net.Follow(PortPointer(x, Aux1))
	require.NoError(t, err, "must follow")
	assert.Equal(t, PortPointer(y, Prim), v, "expected link to write both sides")

	require.NoError(t, net.Link(PortPointer(y, Prim), PortPointer(x, Prim)))
	assert.Equal(t, []Addr{y}, net.Redexes(), "expected the first side to be pushed")

	require.NoError(t, net.Link(lit(7), PortPointer(x, Prim)))
	assert.Equal(t, []Addr{y, x}, net.Redexes(), "expected the port side to be pushed")
	v, err = net.ReadPort(x, Prim)
	require.NoError(t, err, "must read")
	assert.Equal(t, lit(7), v, "expected literal to read back tagged")
	info, _ := net.Info(x)
	assert.True(t, info.IsNumeric(Prim), "expected is-number bit to be set")

	require.NoError(t, net.Link(PortPointer(x, Prim), PortPointer(x, Prim)), "must link a port to itself")
	info, _ = net.Info(x)
	assert.False(t, info.IsNumeric(Prim), "expected is-number bit to be cleared")

	_, err = net.Follow(lit(3))
	assert.True(t, errors.Is(err, ErrInvalidDereference), "expected invalid dereference, got %+v", err)

	_, err = net.ReadPort(5, Aux1)
	assert.True(t, errors.Is(err, ErrInvalidDereference), "expected invalid dereference, got %+v", err)
}

func Test_Net_load(t *testing.T) {
	net := New()
	assert.Error(t, net.Load([]uint64{1, 2, 3}), "expected partial node to be rejected")

	table := addTable()
	require.NoError(t, net.Load(table), "must load")
	assert.Equal(t, table, net.Words(), "expected words to round trip")
	assert.Equal(t, 2, net.Len())
	assert.Equal(t, 1, net.Live())

	require.NoError(t, net.SeedRedexes(), "must seed")
	assert.Equal(t, []Addr{1}, net.Redexes())

	limited := New(WithMemLimit(1))
	err := limited.Load(table)
	assert.True(t, errors.Is(err, ErrOutOfMemory), "expected out of memory, got %+v", err)

	wide := addTable()
	wide[5] |= 1 << 32
	err = net.Load(wide)
	require.Error(t, err, "expected a word wider than u32 to be rejected")
	assert.Contains(t, err.Error(), "word 5 (@1)", "expected the offending word named")
	assert.Equal(t, table, net.Words(), "expected a rejected table to leave storage alone")

	require.NoError(t, New(WithProfile(Profile64)).Load(wide), "expected u64 storage to fit the same word")
}

// addTable is root <- 5 + 3 as a u32 node table.
func addTable() []uint64 {
	return []uint64{
		2, 6, 0, 0,
		3, 5, 1, uint64(OP1)<<27 | 3<<29,
	}
}
