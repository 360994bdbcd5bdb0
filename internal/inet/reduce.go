package inet

import (
	"context"
	"strconv"
	"strings"
)

// Stats describes a reduction run.
type Stats struct {
	// Rewrites counts active pairs taken off the worklist.
	Rewrites int

	// Passes counts how many times a snapshot of the whole worklist was
	// drained; it has no bearing on the result.
	Passes int

	// Faults counts faults, which only lenient nets survive.
	Faults int

	// MaxPending is the worklist high-water mark.
	MaxPending int

	// Rules counts applications of each rule; a permuted pair counts both
	// the permutation and the rule finally applied.
	Rules map[Rule]int
}

func (stats *Stats) count(rule Rule) {
	if stats.Rules == nil {
		stats.Rules = make(map[Rule]int, numRules)
	}
	stats.Rules[rule]++
}

func (stats Stats) String() string {
	var sb strings.Builder
	sb.WriteString("rewrites:")
	sb.WriteString(strconv.Itoa(stats.Rewrites))
	sb.WriteString(" passes:")
	sb.WriteString(strconv.Itoa(stats.Passes))
	sb.WriteString(" faults:")
	sb.WriteString(strconv.Itoa(stats.Faults))
	sb.WriteString(" max-pending:")
	sb.WriteString(strconv.Itoa(stats.MaxPending))
	for rule := Rule(0); rule < numRules; rule++ {
		if n := stats.Rules[rule]; n > 0 {
			sb.WriteByte(' ')
			sb.WriteString(rule.String())
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// SeedRedexes replaces the worklist with every active pair of the current
// graph, as after Load. Pairs of two nodes are pushed once, from the side
// with the lower address.
func (net *Net) SeedRedexes() error {
	return net.guard("seed", net.seed)
}

// Reduce rewrites active pairs until none remain, leaving the net in normal
// form. The context is checked between passes.
//
// Faults halt a strict net, returning a *Fault naming the offending node;
// running out of memory halts any net. Stats cover this call only.
func (net *Net) Reduce(ctx context.Context) (Stats, error) {
	net.stats = Stats{MaxPending: net.pending()}
	err := net.guard("reduce", func() { net.reduce(ctx) })
	return net.stats, err
}

func (net *Net) seed() {
	net.redex, net.head = net.redex[:0], 0
	for a, end := Addr(0), Addr(net.Len()); a < end; a++ {
		b := net.readPort(a, Prim)
		if net.prof.IsLiteral(b) {
			net.push(a)
		} else if AddrOf(b) >= a && SlotOf(b) == Prim && !net.isFree(a) {
			net.push(a)
		}
	}
	net.logf("#", "seeded %v redexes", net.pending())
}

func (net *Net) reduce(ctx context.Context) {
	for net.pending() > 0 {
		net.haltif(ctx.Err())
		for n := net.pending(); n > 0; n-- {
			net.rewrite(net.pop())
			net.stats.Rewrites++
		}
		net.stats.Passes++
		net.metrics.pass(net.stats.MaxPending)
		if net.logfn != nil {
			net.logf("#", "pass %v rewrites:%v pending:%v", net.stats.Passes, net.stats.Rewrites, net.pending())
		}
	}
}

func (net *Net) pending() int { return len(net.redex) - net.head }

func (net *Net) push(addr Addr) {
	net.redex = append(net.redex, addr)
	if n := net.pending(); n > net.stats.MaxPending {
		net.stats.MaxPending = n
	}
}

func (net *Net) pop() (addr Addr) {
	switch net.strategy {
	case FIFO:
		addr = net.redex[net.head]
		net.head++
		if net.head == len(net.redex) {
			net.redex, net.head = net.redex[:0], 0
		} else if net.head >= 1024 && 2*net.head >= len(net.redex) {
			n := copy(net.redex, net.redex[net.head:])
			net.redex, net.head = net.redex[:n], 0
		}
	default:
		i := len(net.redex) - 1
		addr, net.redex = net.redex[i], net.redex[:i]
	}
	return addr
}
