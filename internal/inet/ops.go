package inet

import (
	"fmt"
	"math"
)

// Opcode is the kind of an operator node.
type Opcode = Kind

// Operator opcodes. Binary operators take the stored aux-1 operand first
// and the arriving literal second.
const (
	OpAdd Opcode = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpFixPow // exponent read as a fixed point fraction of 2^32
	OpAnd
	OpOr
	OpXor
	OpNot // unary, on the arriving literal
	OpShr
	OpShl
	OpGT
	OpLT
	OpEQ

	numOpcodes
)

var opNames = [numOpcodes]string{
	"add", "sub", "mul", "div", "mod", "pow", "fixpow",
	"and", "or", "xor", "not", "shr", "shl", "gt", "lt", "eq",
}

// OpcodeName returns a mnemonic for an operator kind.
func OpcodeName(op Opcode) string {
	if op < numOpcodes {
		return opNames[op]
	}
	return fmt.Sprintf("op%d", uint64(op))
}

// eval computes op over two literal payloads, within the payload width.
func (net *Net) eval(a Addr, op Opcode, fst, snd uint64) uint64 {
	mask := net.prof.PayloadMask()
	var res uint64
	switch op {
	case OpAdd:
		res = fst + snd
	case OpSub:
		res = fst - snd
	case OpMul:
		res = fst * snd
	case OpDiv, OpMod:
		if snd == 0 {
			net.fault(faultf(ErrArithmetic, a, "%v #%v by zero", OpcodeName(op), fst))
			return 0
		}
		if op == OpDiv {
			res = fst / snd
		} else {
			res = fst % snd
		}
	case OpPow:
		res = powPayload(float32(fst), float32(snd), mask)
	case OpFixPow:
		res = powPayload(float32(fst), float32(snd)/(1<<32), mask)
	case OpAnd:
		res = fst & snd
	case OpOr:
		res = fst | snd
	case OpXor:
		res = fst ^ snd
	case OpNot:
		res = ^snd
	case OpShr:
		res = fst >> snd
	case OpShl:
		res = fst << snd
	case OpGT:
		res = boolPayload(fst > snd)
	case OpLT:
		res = boolPayload(fst < snd)
	case OpEQ:
		res = boolPayload(fst == snd)
	default:
		net.fault(faultf(ErrInvalidInteraction, a, "no operator %v", uint64(op)))
		return 0
	}
	return res & mask
}

// powPayload rounds through float32, clamping into the payload range.
func powPayload(base, exp float32, mask uint64) uint64 {
	f := float64(float32(math.Pow(float64(base), float64(exp))))
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= float64(mask):
		return mask
	}
	return uint64(f)
}

func boolPayload(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
