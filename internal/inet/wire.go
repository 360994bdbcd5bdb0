package inet

// ReadPort returns the value held by a port: a literal if the node's
// is-number bit for slot is set, a port pointer otherwise.
func (net *Net) ReadPort(addr Addr, slot Slot) (v Value, err error) {
	err = net.guard("read", func() { v = net.readPort(addr, slot) })
	return v, err
}

// WritePort stores v into a port, without touching whatever v refers to.
func (net *Net) WritePort(addr Addr, slot Slot, v Value) error {
	return net.guard("write", func() { net.writePort(addr, slot, v) })
}

// Follow returns the value held by the port that p points to; p must not be
// a literal, since literals have no ports.
func (net *Net) Follow(p Value) (v Value, err error) {
	err = net.guard("follow", func() { v = net.follow(p) })
	return v, err
}

// Link wires a and b to each other, pushing a newly formed active pair onto
// the worklist.
func (net *Net) Link(a, b Value) error {
	return net.guard("link", func() { net.link(a, b) })
}

func (net *Net) readPort(addr Addr, slot Slot) Value {
	p0 := uint(PortPointer(addr, Prim))
	raw := net.load(addr, p0+uint(slot))
	if net.prof.UnpackInfo(net.load(addr, p0+uint(infoSlot))).IsNumeric(slot) {
		return net.prof.Literal(raw)
	}
	return Value(raw)
}

func (net *Net) writePort(addr Addr, slot Slot, v Value) {
	info := net.info(addr)
	if net.prof.IsLiteral(v) {
		info.IsNum |= 1 << slot
		v = Value(net.prof.Payload(v))
	} else {
		info.IsNum &^= 1 << slot
	}
	p0 := uint(PortPointer(addr, Prim))
	net.stor(addr, p0+uint(slot), uint64(v))
	net.stor(addr, p0+uint(infoSlot), net.prof.PackInfo(info))
}

func (net *Net) follow(p Value) Value {
	if net.prof.IsLiteral(p) {
		net.fault(faultf(ErrInvalidDereference, 0, "cannot follow literal #%v", net.prof.Payload(p)))
		return 0
	}
	return net.readPort(AddrOf(p), SlotOf(p))
}

// link is the only place where active pairs are discovered: a pair is active
// when neither side is an auxiliary port and at least one side is a port.
func (net *Net) link(a, b Value) {
	aLit, bLit := net.prof.IsLiteral(a), net.prof.IsLiteral(b)
	if !aLit {
		net.writePort(AddrOf(a), SlotOf(a), b)
	}
	if !bLit {
		net.writePort(AddrOf(b), SlotOf(b), a)
	}
	if !(aLit && bLit) && (aLit || SlotOf(a) == Prim) && (bLit || SlotOf(b) == Prim) {
		if aLit {
			net.push(AddrOf(b))
		} else {
			net.push(AddrOf(a))
		}
	}
}
