/* Package inet implements a sequential interaction net reducer.

An interaction net is a graph of nodes, each with one principal port and two
auxiliary ports. Every port is wired to exactly one other port, or holds an
immediate literal number. Whenever two principal ports face each other, or a
principal port holds a literal, the pair is active: it may be rewritten by a
local rule that depends only on the types of the two sides. Reduction keeps
rewriting active pairs until none remain; since every rule is local and no
two active pairs overlap, the order of rewrites does not affect the final
graph.

Storage

Nodes live in one flat word array, four words per node:

	[ prim | aux1 | aux2 | info ]

The first three words hold port values; the info word packs the node's kind,
its type, and one is-number bit per port. A port value is either a port
pointer, addr*4+slot, or a literal tagged at or above the profile's
LiteralTag. Stored words only hold the literal payload; the is-number bit
restores the tag when the port is read.

A Profile fixes the storage word width. Profile32 stores 32-bit words, with
32-bit literal payloads and 27-bit kinds; Profile64 stores 64-bit words, with
63-bit payloads and 59-bit kinds.

A free node has every port wired to itself and an all-zero info word. Freed
addresses are kept on a free list, and reused most recent first.

Node types

	NOD  generic binary node; two NODs of equal kind annihilate, otherwise
	     they duplicate through each other
	OP1  operator holding its first operand in aux1; a literal arriving on
	     its principal port is evaluated against it, the result going out
	     through aux2
	OP2  operator awaiting both operands; the first literal to arrive is
	     moved into aux1, leaving an OP1
	ITE  conditional; its aux1 leads to a pair whose two halves are the
	     branches, a literal arriving on its principal port chooses one:
	     nonzero selects the first half, zero the second

Operator kinds are opcodes: add, sub, mul, div, mod, pow, fixpow, and, or,
xor, not, shr, shl, gt, lt, eq; all compute within the literal payload
width.

Reduction

Active pairs are only ever discovered by Link, which pushes them onto a
worklist. SeedRedexes finds those of a freshly loaded graph. Reduce then
drains the worklist, pass after pass, until it is empty; Stats describe the
run.

Faults, like a pair with no rule, halt a strict net with a *Fault naming the
node being rewritten. A lenient net, built WithStrict(false), logs and counts
them instead, substituting zero for whatever could not be computed. Running
out of memory always halts.

Root

By convention the first node of a loaded table, at RootAddr, is the root
cell: it stays inert, and whatever ends up wired to its aux1 port is the
result of the net.
*/
package inet
