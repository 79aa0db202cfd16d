package mem

// DefaultCellsPageSize provides a default for Cells.PageSize.
const DefaultCellsPageSize = 256

// Cells implements a paged memory of signed 64-bit cells.
// Pages are allocated on first store; loads from unallocated space yield 0.
type Cells struct {
	PagedCore
	pages [][]int64
}

// Size returns an address one position higher than the last position in the
// last page allocated so far.
func (m *Cells) Size() uint64 {
	if i := len(m.bases) - 1; i >= 0 {
		return m.bases[i] + uint64(len(m.pages[i]))
	}
	return 0
}

// Load returns a single value from the given address.
// Unallocated pages are left unallocated, resulting in implicit 0 values.
// Returns an error if addr exceeds any Limit.
func (m *Cells) Load(addr uint64) (int64, error) {
	if err := m.checkLimit(addr+1, "load"); err != nil {
		return 0, err
	}

	if len(m.pages) == 0 {
		return 0, nil
	}

	pageID := m.findPage(addr)
	base := m.bases[pageID]
	page := m.pages[pageID]
	if addr >= base && addr-base < uint64(len(page)) {
		return page[addr-base], nil
	}

	return 0, nil
}

// LoadInto reads len(buf) cells from memory starting at addr.
// Skips any unallocated pages, zeroing the result buffer where encountered.
// Returns an error if Limit would be exceeded; no partial load is done.
func (m *Cells) LoadInto(addr uint64, buf []int64) error {
	if len(buf) == 0 {
		return nil
	}

	end := addr + uint64(len(buf))
	if err := m.checkLimit(end, "load"); err != nil {
		return err
	}

	for pageID := m.findPage(addr); addr < end && pageID < len(m.bases); pageID++ {
		base := m.bases[pageID]
		if base >= end {
			break
		}

		if base > addr {
			skip := base - addr
			zero(buf[:skip])
			buf = buf[skip:]
			addr = base
		}

		page := m.pages[pageID]
		if addr > base {
			skip := addr - base
			if skip >= uint64(len(page)) {
				continue
			}
			page = page[skip:]
		}

		n := copy(buf, page)
		buf = buf[n:]
		addr += uint64(n)
	}

	zero(buf)
	return nil
}

// Stor stores any values at addr, allocating pages if necessary.
// Returns an error if Limit would be exceeded; no partial store is done.
func (m *Cells) Stor(addr uint64, values ...int64) error {
	if len(values) == 0 {
		return nil
	}

	end := addr + uint64(len(values))
	if err := m.checkLimit(end, "stor"); err != nil {
		return err
	}

	if m.PageSize == 0 {
		m.PageSize = DefaultCellsPageSize
	}

	for pageID := m.findPage(addr); addr < end; pageID++ {
		base, size, page := m.allocPage(pageID, addr)
		if addr > base {
			skip := addr - base
			if skip >= size {
				continue
			}
			page = page[skip:]
		}
		n := copy(page, values)
		values = values[n:]
		addr += uint64(n)
	}

	return nil
}

// Each calls f with every allocated page, in address order, until f returns
// false. The page slice aliases memory and must not be retained.
func (m *Cells) Each(f func(base uint64, page []int64) bool) {
	for i, base := range m.bases {
		if !f(base, m.pages[i]) {
			return
		}
	}
}

// Clone returns a deep copy of the memory.
func (m *Cells) Clone() *Cells {
	c := &Cells{
		PagedCore: m.PagedCore.clone(),
		pages:     make([][]int64, len(m.pages)),
	}
	for i, page := range m.pages {
		c.pages[i] = append([]int64(nil), page...)
	}
	return c
}

func (m *Cells) allocPage(pageID int, addr uint64) (base, size uint64, page []int64) {
	base, size, isNew := m.PagedCore.allocPage(pageID, addr)
	if isNew {
		page = make([]int64, size)
		if pageID == len(m.pages) {
			m.pages = append(m.pages, page)
		} else {
			m.pages = append(m.pages, nil)
			copy(m.pages[pageID+1:], m.pages[pageID:])
			m.pages[pageID] = page
		}
	} else {
		page = m.pages[pageID]
	}
	return base, size, page
}

func zero(buf []int64) {
	for i := range buf {
		buf[i] = 0
	}
}
