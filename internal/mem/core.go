package mem

import "fmt"

// DefaultPageSize provides a default for Words.PageSize.
const DefaultPageSize = 1024

// Words implements a contiguous, growable word memory.
//
// Stores are truncated to Width bits, so that a 32-bit memory reads back
// exactly what a uint32 array would hold, while callers only ever deal in
// uint64 words.
type Words struct {
	// PageSize specifies the growth granularity of the backing buffer.
	PageSize uint

	// Limit specifies a size, in words, past which any growth results in an
	// error; 0 means unlimited.
	Limit uint

	// Width specifies the stored word width in bits; 0 means 64.
	Width uint

	words []uint64
}

// LimitError indicates that a memory operation, like load or grow, exceeded
// a limit.
type LimitError struct {
	Addr uint
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v", lim.Op, lim.Addr)
}

// Size returns the number of words currently in use.
func (m *Words) Size() uint { return uint(len(m.words)) }

// Mask returns the mask applied to every stored word.
func (m *Words) Mask() uint64 {
	if m.Width == 0 || m.Width >= 64 {
		return ^uint64(0)
	}
	return 1<<m.Width - 1
}

// Load returns the word at addr, or a LimitError if addr is not in use.
func (m *Words) Load(addr uint) (uint64, error) {
	if addr >= uint(len(m.words)) {
		return 0, LimitError{addr, "load"}
	}
	return m.words[addr], nil
}

// Stor stores values starting at addr, which must already be in use.
func (m *Words) Stor(addr uint, values ...uint64) error {
	end := addr + uint(len(values))
	if end > uint(len(m.words)) {
		return LimitError{end, "stor"}
	}
	mask := m.Mask()
	for i, val := range values {
		m.words[addr+uint(i)] = val & mask
	}
	return nil
}

// Grow extends the words in use by n, zero filled, returning the address of
// the first new word. No partial growth is done if Limit would be exceeded.
func (m *Words) Grow(n uint) (base uint, err error) {
	base = uint(len(m.words))
	end := base + n
	if err := m.checkLimit(end, "grow"); err != nil {
		return base, err
	}
	if end > uint(cap(m.words)) {
		m.realloc(end)
	}
	m.words = m.words[:end]
	for i := base; i < end; i++ {
		m.words[i] = 0
	}
	return base, nil
}

// Reset drops all words in use, retaining the backing buffer.
func (m *Words) Reset() { m.words = m.words[:0] }

// Snapshot returns a copy of the words in use.
func (m *Words) Snapshot() []uint64 {
	return append([]uint64(nil), m.words...)
}

func (m *Words) realloc(need uint) {
	pageSize := m.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	size := (need + pageSize - 1) / pageSize * pageSize
	if grown := 2 * uint(cap(m.words)); size < grown {
		size = grown
	}
	if lim := m.Limit; lim != 0 && size > lim {
		size = lim
	}
	words := make([]uint64, len(m.words), size)
	copy(words, m.words)
	m.words = words
}

func (m *Words) checkLimit(addr uint, op string) error {
	if maxSize := m.Limit; maxSize != 0 && addr > maxSize {
		return LimitError{addr, op}
	}
	return nil
}
