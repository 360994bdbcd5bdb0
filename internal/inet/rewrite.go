package inet

import "fmt"

// Rule names the interaction applied by a rewrite.
type Rule uint8

// Interaction rules.
const (
	// RuleApply evaluates an OP1 node against a literal.
	RuleApply Rule = iota

	// RuleCurry turns an OP2 node meeting a literal into a pending OP1.
	RuleCurry

	// RuleCopy duplicates a literal into both aux ports of a NOD.
	RuleCopy

	// RuleBranch resolves an ITE node against a literal.
	RuleBranch

	// RuleAnnihilate cross-wires the aux ports of two matching nodes.
	RuleAnnihilate

	// RuleCommute duplicates two binary nodes through each other.
	RuleCommute

	// RuleCommuteUnary duplicates an OP1 node, sharing its pending operand.
	RuleCommuteUnary

	// RulePermute swaps the roles of the two nodes of a pair.
	RulePermute

	// RuleInvalid is counted for pairs that have no rule.
	RuleInvalid

	numRules
)

var ruleNames = [numRules]string{
	"apply",
	"curry",
	"copy",
	"branch",
	"annihilate",
	"commute",
	"commute-unary",
	"permute",
	"invalid",
}

func (rule Rule) String() string {
	if rule < numRules {
		return ruleNames[rule]
	}
	return fmt.Sprintf("Rule(%d)", uint8(rule))
}

// Rewrite applies the interaction rule for the active pair whose principal
// side is the node at addr.
func (net *Net) Rewrite(addr Addr) error {
	return net.guard("rewrite", func() { net.rewrite(addr) })
}

func (net *Net) rewrite(a Addr) {
	for {
		b := net.readPort(a, Prim)
		if net.prof.IsLiteral(b) {
			net.interactLiteral(a, b)
			return
		}
		if SlotOf(b) != Prim {
			net.invalid(a, "principal port wired to %v%v", uint64(AddrOf(b)), SlotOf(b))
			return
		}
		next, permute := net.interactNodes(a, AddrOf(b))
		if !permute {
			return
		}
		net.count(a, RulePermute)
		a = next
	}
}

func (net *Net) interactLiteral(a Addr, b Value) {
	info := net.info(a)
	switch info.Type {

	case OP1:
		net.count(a, RuleApply)
		dst := net.readPort(a, Aux2)
		fst := net.operand(a, net.readPort(a, Aux1))
		res := net.eval(a, info.Kind, fst, net.prof.Payload(b))
		net.link(dst, net.prof.Literal(res))
		net.free(a)

	case OP2:
		net.count(a, RuleCurry)
		net.setType(a, OP1)
		net.link(PortPointer(a, Prim), net.readPort(a, Aux1))
		net.link(PortPointer(a, Aux1), b)

	case NOD:
		net.count(a, RuleCopy)
		net.link(b, net.readPort(a, Aux1))
		net.link(b, net.readPort(a, Aux2))
		net.free(a)

	case ITE:
		net.count(a, RuleBranch)
		cond := net.prof.Payload(b) == 0
		condPtr := func(c bool) Value {
			if c {
				return PortPointer(a, Aux1)
			}
			return PortPointer(a, Aux2)
		}
		pair := net.readPort(a, Aux1)
		net.setType(a, NOD)
		net.link(PortPointer(a, Prim), pair)
		keep, dest := condPtr(!cond), net.readPort(a, Aux2)
		if dest == PortPointer(a, Aux2) {
			dest = keep
		}
		net.link(keep, dest)
		drop := condPtr(cond)
		net.link(drop, drop)

	default:
		net.invalid(a, "%v meets literal", info.Type)
	}
}

// interactNodes rewrites the pair of nodes a and b, returning b and true
// when the pair must instead be rewritten from b's side.
func (net *Net) interactNodes(a, b Addr) (Addr, bool) {
	ai, bi := net.info(a), net.info(b)
	switch {

	case ai.Type == bi.Type && (ai.Type != NOD || ai.Kind == bi.Kind):
		net.count(a, RuleAnnihilate)
		net.annihilate(a, b)

	case ai.Type == NOD && (bi.Type == NOD || bi.Type == OP2 || bi.Type == ITE):
		net.count(a, RuleCommute)
		net.commute(a, b, ai, bi)

	case (ai.Type == NOD || ai.Type == ITE) && bi.Type == OP1:
		net.count(a, RuleCommuteUnary)
		net.commuteUnary(a, b, bi)

	case bi.Type == NOD:
		return b, true

	default:
		net.invalid(a, "%v meets %v @%v", ai, bi, uint64(b))
	}
	return a, false
}

// annihilate cross-wires aux-1 to aux-1 and aux-2 to aux-2. The aux-2
// destinations are only read after the aux-1 link, which may have rewired
// them when a and b are wired to each other directly.
func (net *Net) annihilate(a, b Addr) {
	net.splice(a, b, Aux1)
	net.splice(a, b, Aux2)
	net.free(a)
	if a != b {
		net.free(b)
	}
}

// splice links whatever the given slots of a and b are wired to.
//
// A port looped onto itself is erased, as the dropped side of a branch is:
// its partner's far end gets looped instead, so that a late result lands in
// its own producer rather than in a slot of a freed and maybe reused node.
func (net *Net) splice(a, b Addr, slot Slot) {
	x, y := net.readPort(a, slot), net.readPort(b, slot)
	switch {
	case x == PortPointer(a, slot):
		net.link(y, y)
	case y == PortPointer(b, slot):
		net.link(x, x)
	default:
		net.link(x, y)
	}
}

// attach links port to whatever addr's slot is wired to, looping port onto
// itself when that slot is erased.
func (net *Net) attach(port Value, addr Addr, slot Slot) {
	v := net.readPort(addr, slot)
	if v == PortPointer(addr, slot) {
		v = port
	}
	net.link(port, v)
}

// commute replaces a and b by four nodes: p and q of b's type, r and s of
// a's type. Only p and r are allocated; b serves as q and a as s.
//
// Each aux destination of a and b is read right before the link that
// consumes it, and all four are consumed before any aux port of a or b is
// overwritten by the internal wiring.
func (net *Net) commute(a, b Addr, ai, bi Info) {
	p := net.alloc(bi.Type, bi.Kind)
	r := net.alloc(ai.Type, ai.Kind)
	q, s := b, a

	net.attach(PortPointer(p, Prim), a, Aux1)
	net.attach(PortPointer(q, Prim), a, Aux2)
	net.attach(PortPointer(r, Prim), b, Aux1)
	net.attach(PortPointer(s, Prim), b, Aux2)

	net.link(PortPointer(r, Aux1), PortPointer(p, Aux1))
	net.link(PortPointer(s, Aux1), PortPointer(p, Aux2))
	net.link(PortPointer(r, Aux2), PortPointer(q, Aux1))
	net.link(PortPointer(s, Aux2), PortPointer(q, Aux2))
}

// commuteUnary is commute against an OP1 node, whose aux-1 holds the pending
// operand: both copies share it, so only p needs allocating, with b as q and
// a as s.
func (net *Net) commuteUnary(a, b Addr, bi Info) {
	p := net.alloc(bi.Type, bi.Kind)
	q, s := b, a

	net.attach(PortPointer(p, Prim), a, Aux1)
	net.attach(PortPointer(q, Prim), a, Aux2)
	net.attach(PortPointer(s, Prim), b, Aux2)
	net.link(PortPointer(p, Aux1), net.readPort(b, Aux1))

	net.link(PortPointer(s, Aux1), PortPointer(p, Aux2))
	net.link(PortPointer(s, Aux2), PortPointer(q, Aux2))
}

// operand returns the payload of an operator's stored operand.
func (net *Net) operand(a Addr, v Value) uint64 {
	if !net.prof.IsLiteral(v) {
		net.fault(faultf(ErrInvalidDereference, a, "pending operand %v%v is not a literal", uint64(AddrOf(v)), SlotOf(v)))
		return 0
	}
	return net.prof.Payload(v)
}

func (net *Net) invalid(a Addr, mess string, args ...interface{}) {
	net.count(a, RuleInvalid)
	net.fault(faultf(ErrInvalidInteraction, a, mess, args...))
}

func (net *Net) count(a Addr, rule Rule) {
	net.stats.count(rule)
	net.metrics.rewrite(rule)
	if net.logfn != nil {
		net.logf(">", "%v @%v", rule, a)
	}
}
