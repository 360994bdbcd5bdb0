package inet

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/jcorbin/inets/internal/mem"
	"github.com/jcorbin/inets/internal/panicerr"
)

// Net is an interaction net: flat node storage, a worklist of nodes whose
// principal port forms an active pair, and a free list of reclaimable nodes.
//
// A Net has exactly one mutator; none of its methods are safe to call
// concurrently.
type Net struct {
	logging

	prof     Profile
	mem      mem.Words
	memLimit uint
	pageSize uint

	redex []Addr
	head  int
	freed []Addr

	strategy Strategy
	strict   bool
	metrics  *Metrics

	stats Stats
}

// New creates an empty net.
func New(opts ...Option) *Net {
	var net Net
	defaultOptions.apply(&net)
	Options(opts...).apply(&net)
	net.init()
	return &net
}

func (net *Net) init() {
	net.mem.Width = net.prof.StorageBits
	net.mem.PageSize = net.pageSize * NodeSize
	limit := net.prof.MaxNodes()
	if lim := uint64(net.memLimit); lim != 0 && lim < limit {
		limit = lim
	}
	if words := limit * NodeSize; uint64(uint(words)) == words {
		net.mem.Limit = uint(words)
	}
}

// Profile returns the net's storage profile.
func (net *Net) Profile() Profile { return net.prof }

// Load replaces the net's content with a flat table of node words, as laid
// out in storage: three ports then one metadata word per node. The worklist
// and free list are emptied; call SeedRedexes to discover the active pairs
// of the loaded graph. Words wider than the profile's storage are rejected.
func (net *Net) Load(words []uint64) error {
	if len(words)%NodeSize != 0 {
		return errors.Errorf("node table length %v is not a multiple of %v", len(words), NodeSize)
	}
	mask := net.prof.StorageMask()
	for i, word := range words {
		if word&^mask != 0 {
			return errors.Errorf("node table word %v (@%v) %#x does not fit %v-bit storage",
				i, i/NodeSize, word, net.prof.StorageBits)
		}
	}
	net.mem.Reset()
	net.redex, net.head, net.freed = net.redex[:0], 0, net.freed[:0]
	if _, err := net.mem.Grow(uint(len(words))); err != nil {
		return &Fault{Kind: ErrOutOfMemory, Detail: "loading node table", cause: err}
	}
	return net.mem.Stor(0, words...)
}

// Words returns a copy of the net's node storage, in the layout accepted by
// Load.
func (net *Net) Words() []uint64 { return net.mem.Snapshot() }

// Len returns the number of node addresses in storage, free or not.
func (net *Net) Len() int { return int(net.mem.Size() / NodeSize) }

// Freed returns the number of addresses on the free list.
func (net *Net) Freed() int { return len(net.freed) }

// Live returns the number of non-free nodes, not counting the root cell.
func (net *Net) Live() (n int) {
	for addr, end := Addr(0), Addr(net.Len()); addr < end; addr++ {
		if addr != RootAddr && !net.isFree(addr) {
			n++
		}
	}
	return n
}

// Redexes returns a copy of the pending worklist, in push order.
func (net *Net) Redexes() []Addr {
	return append([]Addr(nil), net.redex[net.head:]...)
}

// Result returns the value wired to the root cell's aux-1 port.
func (net *Net) Result() (Value, error) {
	return net.ReadPort(RootAddr, Aux1)
}

// Info returns the unpacked metadata of the node at addr.
func (net *Net) Info(addr Addr) (info Info, err error) {
	err = net.guard("info", func() { info = net.info(addr) })
	return info, err
}

// guard runs f, turning any halt into an error return.
func (net *Net) guard(name string, f func()) error {
	err := panicerr.Recover(name, func() error {
		f()
		return nil
	})
	if v, ok := panicerr.Value(err); ok {
		if he, ok := v.(haltError); ok {
			return he.error
		}
	}
	return err
}

func (net *Net) halt(err error) {
	net.logf("#", "halt: %v", err)
	panic(haltError{err})
}

func (net *Net) haltif(err error) {
	if err != nil {
		net.halt(err)
	}
}

// fault reports f, halting if the net is strict; lenient nets count it and
// carry on, leaving the caller to substitute a zero value.
func (net *Net) fault(f *Fault) {
	net.stats.Faults++
	net.metrics.fault(f)
	if net.strict {
		net.halt(f)
	}
	net.logf("!", "%v", f)
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
