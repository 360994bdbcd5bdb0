package inet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_eval(t *testing.T) {
	const half = 1 << 31

	for _, tc := range []struct {
		prof     Profile
		op       Opcode
		fst, snd uint64
		want     uint64
	}{
		{Profile32, OpAdd, 5, 3, 8},
		{Profile32, OpAdd, 1<<32 - 1, 2, 1},
		{Profile32, OpSub, 10, 3, 7},
		{Profile32, OpSub, 0, 1, 1<<32 - 1},
		{Profile32, OpMul, 6, 7, 42},
		{Profile32, OpDiv, 42, 5, 8},
		{Profile32, OpMod, 42, 5, 2},
		{Profile32, OpPow, 2, 10, 1024},
		{Profile32, OpPow, 2, 40, 1<<32 - 1},
		{Profile32, OpPow, 0, 0, 1},
		{Profile32, OpFixPow, 16, half, 4},
		{Profile32, OpAnd, 0xc, 0xa, 0x8},
		{Profile32, OpOr, 0xc, 0xa, 0xe},
		{Profile32, OpXor, 0xc, 0xa, 0x6},
		{Profile32, OpNot, 99, 0, 1<<32 - 1},
		{Profile32, OpNot, 99, 0xf, 1<<32 - 1 - 0xf},
		{Profile32, OpShr, 0x80, 3, 0x10},
		{Profile32, OpShl, 1, 31, 1 << 31},
		{Profile32, OpShl, 1, 32, 0},
		{Profile32, OpGT, 3, 2, 1},
		{Profile32, OpGT, 2, 3, 0},
		{Profile32, OpLT, 2, 3, 1},
		{Profile32, OpEQ, 3, 3, 1},
		{Profile32, OpEQ, 3, 4, 0},

		{Profile64, OpAdd, 1 << 40, 1 << 40, 1 << 41},
		{Profile64, OpSub, 0, 1, 1<<63 - 1},
		{Profile64, OpNot, 0, 0, 1<<63 - 1},
		{Profile64, OpShl, 1, 62, 1 << 62},
		{Profile64, OpShl, 1, 63, 0},
	} {
		name := tc.prof.Name + "/" + OpcodeName(tc.op)
		t.Run(name, func(t *testing.T) {
			net := New(WithProfile(tc.prof))
			assert.Equal(t, tc.want, net.eval(0, tc.op, tc.fst, tc.snd),
				"expected %v %v %v", tc.fst, OpcodeName(tc.op), tc.snd)
		})
	}
}

func Test_OpcodeName(t *testing.T) {
	assert.Equal(t, "add", OpcodeName(OpAdd))
	assert.Equal(t, "eq", OpcodeName(OpEQ))
	assert.Equal(t, "op16", OpcodeName(numOpcodes))
}
