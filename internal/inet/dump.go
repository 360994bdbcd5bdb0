package inet

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type fmtBuf interface {
	Len() int
	WriteByte(c byte) error
	WriteString(s string) (n int, err error)
}

// Dump writes a listing of every node: its address, "~" if free, otherwise
// its type, kind and the values of its three ports.
func (net *Net) Dump(w io.Writer) error {
	return net.guard("dump", func() {
		netDumper{net: net, out: w}.dump()
	})
}

type netDumper struct {
	net *Net
	out io.Writer

	addrWidth int
}

func (dump netDumper) dump() {
	fmt.Fprintf(dump.out, "# Net Dump\n")
	fmt.Fprintf(dump.out, "  profile: %v\n", dump.net.prof)
	fmt.Fprintf(dump.out, "  nodes: %v live: %v freed: %v redex: %v\n",
		dump.net.Len(), dump.net.Live(), len(dump.net.freed), dump.net.pending())

	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(dump.net.Len()))
	}
	var buf strings.Builder
	for addr, end := Addr(0), Addr(dump.net.Len()); addr < end; addr++ {
		buf.Reset()
		fmt.Fprintf(&buf, "  @%*v ", dump.addrWidth, uint64(addr))
		dump.formatNode(&buf, addr)
		buf.WriteByte('\n')
		io.WriteString(dump.out, buf.String())
	}
}

func (dump netDumper) formatNode(buf fmtBuf, addr Addr) {
	if dump.net.isFree(addr) {
		buf.WriteByte('~')
		return
	}
	info := dump.net.info(addr)
	buf.WriteByte('[')
	buf.WriteString(info.Type.String())
	buf.WriteByte(':')
	if info.Type == OP1 || info.Type == OP2 {
		buf.WriteString(OpcodeName(info.Kind))
	} else {
		buf.WriteString(strconv.FormatUint(uint64(info.Kind), 10))
	}
	buf.WriteString("|")
	for slot := Prim; slot < infoSlot; slot++ {
		buf.WriteByte(' ')
		formatValue(buf, dump.net.prof, dump.net.readPort(addr, slot))
	}
	buf.WriteByte(']')
}

// FormatValue renders a port value: "#n" for a literal, the node address
// followed by a slot letter for a port pointer.
func (prof Profile) FormatValue(v Value) string {
	var sb strings.Builder
	formatValue(&sb, prof, v)
	return sb.String()
}

func formatValue(buf fmtBuf, prof Profile, v Value) {
	if prof.IsLiteral(v) {
		buf.WriteByte('#')
		buf.WriteString(strconv.FormatUint(prof.Payload(v), 10))
		return
	}
	buf.WriteString(strconv.FormatUint(uint64(AddrOf(v)), 10))
	buf.WriteString(SlotOf(v).String())
}

// Readback renders the graph reachable from the value held at port, in a
// form that depends only on the graph's shape: nodes are numbered in the
// order they are reached, port's own node being 0.
//
// A node is rendered on first visit as "$id.slot=TYPE:kind(p0 p1 p2)" where
// slot is the port it was entered through; later visits render as
// "@id.slot". Literals render as "#n".
func (net *Net) Readback(port Value) (s string, err error) {
	err = net.guard("readback", func() { s = net.readback(port) })
	return s, err
}

func (net *Net) readback(port Value) string {
	if net.prof.IsLiteral(port) {
		return net.prof.FormatValue(port)
	}

	ids := map[Addr]int{AddrOf(port): 0}
	type frame struct {
		s string
		v Value
	}
	stack := []frame{{v: net.readPort(AddrOf(port), SlotOf(port))}}

	var sb strings.Builder
	for len(stack) > 0 {
		i := len(stack) - 1
		top := stack[i]
		stack = stack[:i]

		if top.s != "" {
			sb.WriteString(top.s)
			continue
		}
		if net.prof.IsLiteral(top.v) {
			formatValue(&sb, net.prof, top.v)
			continue
		}

		addr, slot := AddrOf(top.v), SlotOf(top.v)
		if id, seen := ids[addr]; seen {
			fmt.Fprintf(&sb, "@%v.%v", id, slot)
			continue
		}
		id := len(ids)
		ids[addr] = id
		info := net.info(addr)
		fmt.Fprintf(&sb, "$%v.%v=%v(", id, slot, info)
		stack = append(stack,
			frame{s: ")"},
			frame{v: net.readPort(addr, Aux2)},
			frame{s: " "},
			frame{v: net.readPort(addr, Aux1)},
			frame{s: " "},
			frame{v: net.readPort(addr, Prim)},
		)
	}
	return sb.String()
}
