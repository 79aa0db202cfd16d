package mem

import "fmt"

// PagedCore tracks the page layout common to any paged memory model: a sorted
// list of page base addresses and their sizes.
type PagedCore struct {
	// PageSize specifies the length for newly allocated pages.
	PageSize uint64

	// Limit specifies a capacity: any load or store touching an address at or
	// past Limit results in a LimitError. Zero means unlimited.
	Limit uint64

	bases []uint64
	sizes []uint64
}

// LimitError indicates that a memory operation, like load or store, exceeded a limit.
type LimitError struct {
	Addr  uint64
	Limit uint64
	Op    string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit %v exceeded by %v @%v", lim.Limit, lim.Op, lim.Addr)
}

// findPage returns the index of the last page whose base is <= addr, or 0 if
// there is no such page.
func (m *PagedCore) findPage(addr uint64) int {
	i, j := 0, len(m.bases)
	for i < j {
		h := int(uint(i+j)>>1) + 1
		if h < len(m.bases) && m.bases[h] <= addr {
			i = h
		} else {
			j = h - 1
		}
	}
	return i
}

// allocPage ensures that a page exists at pageID able to hold addr, either
// appending a new last page, or inserting one into a gap before the current
// page at pageID.
func (m *PagedCore) allocPage(pageID int, addr uint64) (base, size uint64, isNew bool) {
	if pageID == len(m.bases) {
		base = addr / m.PageSize * m.PageSize
		size = m.PageSize
		if i := len(m.bases) - 1; i >= 0 {
			lastEnd := m.bases[i] + m.sizes[i]
			if base < lastEnd {
				size -= lastEnd - base
				base = lastEnd
			}
		}
		m.bases = append(m.bases, base)
		m.sizes = append(m.sizes, size)
		return base, size, true
	}

	base = m.bases[pageID]
	if addr < base {
		size = m.PageSize
		nextBase := base
		base = addr / m.PageSize * m.PageSize
		if i := pageID - 1; i >= 0 {
			if prevEnd := m.bases[i] + m.sizes[i]; base < prevEnd {
				base = prevEnd
			}
		}
		if gapSize := nextBase - base; size > gapSize {
			size = gapSize
		}
		m.bases = append(m.bases, 0)
		m.sizes = append(m.sizes, 0)
		copy(m.bases[pageID+1:], m.bases[pageID:])
		copy(m.sizes[pageID+1:], m.sizes[pageID:])
		m.bases[pageID] = base
		m.sizes[pageID] = size
		return base, size, true
	}

	return base, m.sizes[pageID], false
}

// checkLimit checks an exclusive end address against any Limit.
func (m *PagedCore) checkLimit(end uint64, op string) error {
	if limit := m.Limit; limit != 0 && end > limit {
		return LimitError{Addr: end - 1, Limit: limit, Op: op}
	}
	return nil
}

func (m *PagedCore) clone() PagedCore {
	return PagedCore{
		PageSize: m.PageSize,
		Limit:    m.Limit,
		bases:    append([]uint64(nil), m.bases...),
		sizes:    append([]uint64(nil), m.sizes...),
	}
}
