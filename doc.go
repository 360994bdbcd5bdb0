/* Command inets reduces interaction nets.

A net is given as a flat node table: unsigned words, separated by commas or
whitespace, four per node. The first three words of a node are its principal
and two auxiliary ports, the fourth packs its kind, type, and which of its
ports hold literal numbers rather than port pointers. A port pointer names
node*4+slot, slot 0 being the principal port.

	// root <- 5 + 3
	2, 6, 0, 0,           // @0 root cell
	3, 5, 1, 1744830464,  // @1 OP1:add, prim #3, aux1 #5

The first node is the root cell. It never interacts, and whatever ends up
wired to its aux1 port once the net is in normal form is printed as the
result: a literal as "#n", or a rendering of the reachable graph, nodes
numbered in the order they are reached.

Commands:

	inets reduce FILE  reduce to normal form, printing the result and stats
	inets dump FILE    list every node of a loaded net
	inets check FILE   reduce under both LIFO and FIFO worklist orders,
	                   failing unless both reach the same normal form

Given --out, reduce also writes the normal form back out as a node table,
which dump and reduce accept in turn.

Settings may be given in a YAML file passed with --config, under the keys
profile, strategy, mem_limit, page_size, lenient, trace and timeout; any
flag given explicitly overrides the file.

By default the first fault, like an active pair that no rule covers, stops
reduction with an error naming the offending node. Under --lenient faults
are counted and substituted with zero instead.
*/
package main
