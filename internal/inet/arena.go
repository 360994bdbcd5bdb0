package inet

// Alloc allocates a node of the given type and kind, reusing the most
// recently freed address if any. The new node's ports all refer to
// themselves, and none hold literals.
func (net *Net) Alloc(typ Type, kind Kind) (addr Addr, err error) {
	err = net.guard("alloc", func() { addr = net.alloc(typ, kind) })
	return addr, err
}

// Free resets the node at addr and pushes it onto the free list. Freeing an
// address twice without reallocating it in between corrupts the free list.
func (net *Net) Free(addr Addr) error {
	return net.guard("free", func() { net.free(addr) })
}

// IsFree returns true if all of the node's ports refer to themselves and its
// metadata is empty; addresses outside of storage are never free.
func (net *Net) IsFree(addr Addr) bool { return net.isFree(addr) }

func (net *Net) alloc(typ Type, kind Kind) Addr {
	var addr Addr
	if i := len(net.freed) - 1; i >= 0 {
		addr, net.freed = net.freed[i], net.freed[:i]
	} else {
		base, err := net.mem.Grow(NodeSize)
		if err != nil {
			net.halt(&Fault{
				Kind:   ErrOutOfMemory,
				Addr:   Addr(base / NodeSize),
				Detail: "cannot allocate " + typ.String(),
				cause:  err,
			})
		}
		addr = Addr(base / NodeSize)
	}
	net.clean(addr, Info{Kind: kind, Type: typ})
	net.metrics.alloc()
	if net.logfn != nil {
		net.logf("+", "alloc @%v %v:%v", addr, typ, uint64(kind))
	}
	return addr
}

func (net *Net) free(addr Addr) {
	net.clean(addr, Info{})
	net.freed = append(net.freed, addr)
	net.metrics.free()
	if net.logfn != nil {
		net.logf("-", "free @%v", addr)
	}
}

func (net *Net) clean(addr Addr, info Info) {
	p0 := PortPointer(addr, Prim)
	net.stor(addr, uint(p0), uint64(p0+Value(Prim)), uint64(p0+Value(Aux1)), uint64(p0+Value(Aux2)), net.prof.PackInfo(info))
}

func (net *Net) isFree(addr Addr) bool {
	p0 := uint(PortPointer(addr, Prim))
	if p0+NodeSize > net.mem.Size() {
		return false
	}
	for slot := Prim; slot < infoSlot; slot++ {
		if word, _ := net.mem.Load(p0 + uint(slot)); word != uint64(p0)+uint64(slot) {
			return false
		}
	}
	word, _ := net.mem.Load(p0 + uint(infoSlot))
	return word == 0
}

func (net *Net) info(addr Addr) Info {
	return net.prof.UnpackInfo(net.load(addr, uint(PortPointer(addr, infoSlot))))
}

func (net *Net) setInfo(addr Addr, info Info) {
	net.stor(addr, uint(PortPointer(addr, infoSlot)), net.prof.PackInfo(info))
}

func (net *Net) setType(addr Addr, typ Type) {
	info := net.info(addr)
	info.Type = typ
	net.setInfo(addr, info)
}

// load reads a storage word of the node at addr, faulting if it lies past
// the storage bound.
func (net *Net) load(addr Addr, i uint) uint64 {
	word, err := net.mem.Load(i)
	if err != nil {
		net.fault(&Fault{Kind: ErrInvalidDereference, Addr: addr, Detail: "past storage bound", cause: err})
	}
	return word
}

func (net *Net) stor(addr Addr, i uint, words ...uint64) {
	if err := net.mem.Stor(i, words...); err != nil {
		net.fault(&Fault{Kind: ErrInvalidDereference, Addr: addr, Detail: "past storage bound", cause: err})
	}
}
