package ion

import "github.com/go-ion/ion-symtab/internal/hashindex"

// indexThreshold is the local symbol count below which lookups use a linear
// scan instead of building an index.
const indexThreshold = 16

const initialByIDCapacity = 16

// tableIndex pairs the two lazily built lookup structures a Table keeps over
// its local symbols: a dense by-SID array and a by-name hash index.
type tableIndex struct {
	byID   []Symbol // index i holds the symbol with SID == minLocalID+i; zero value (SID 0) means unset.
	byName *hashindex.Index
}

func (ix *tableIndex) growByID(need int) {
	if len(ix.byID) >= need {
		return
	}
	newCap := len(ix.byID)
	if newCap < initialByIDCapacity {
		newCap = initialByIDCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	grown := make([]Symbol, newCap)
	copy(grown, ix.byID)
	ix.byID = grown
}

func (ix *tableIndex) setByID(sid SID, minLocalID int64, sym Symbol) {
	i := int64(sid) - minLocalID
	ix.growByID(int(i) + 1)
	ix.byID[i] = sym
}

func (ix *tableIndex) getByID(sid SID, minLocalID int64) (Symbol, bool) {
	i := int64(sid) - minLocalID
	if i < 0 || int(i) >= len(ix.byID) {
		return Symbol{}, false
	}
	sym := ix.byID[i]
	if sym.SID == 0 {
		return Symbol{}, false
	}
	return sym, true
}

// buildIndex constructs both lookup structures over the table's current
// local symbols. It is idempotent.
func (t *Table) buildIndex() {
	if t.idx != nil {
		return
	}
	idx := &tableIndex{byName: hashindex.New()}
	idx.growByID(len(t.symbols))
	for _, s := range t.symbols {
		idx.setByID(s.SID, t.minLocalID, s)
		if s.Text != nil {
			// Duplicate text: Insert leaves the first entry in place, so the
			// lowest SID wins since symbols are appended in ascending order.
			idx.byName.Insert(*s.Text, int64(s.SID))
		}
	}
	t.idx = idx
}

// ensureIndexed lazily builds the index once local symbol count reaches
// indexThreshold, or unconditionally if the table is already locked — Lock
// builds the index regardless of size whenever MaxID is positive.
func (t *Table) ensureIndexed() {
	if t.idx != nil {
		return
	}
	if t.locked || len(t.symbols) >= indexThreshold {
		t.buildIndex()
	}
}

// indexAppend updates an already-built index for a newly appended symbol.
func (t *Table) indexAppend(s Symbol) {
	if t.idx == nil {
		return
	}
	t.idx.setByID(s.SID, t.minLocalID, s)
	if s.Text != nil {
		t.idx.byName.Insert(*s.Text, int64(s.SID))
	}
}

// localFindByName looks up text among this table's own local symbols only
// (no system table, no imports) returning the lowest matching SID.
func (t *Table) localFindByName(text string) (SID, bool) {
	t.ensureIndexed()
	if t.idx != nil {
		if id, ok := t.idx.byName.Find(text); ok {
			return SID(id), true
		}
		return 0, false
	}
	for _, s := range t.symbols {
		if s.Text != nil && *s.Text == text {
			return s.SID, true
		}
	}
	return 0, false
}

// localFindBySID looks up sid among this table's own local symbols only.
func (t *Table) localFindBySID(sid SID) (Symbol, bool) {
	if int64(sid) < t.minLocalID || int64(sid) > t.maxID {
		return Symbol{}, false
	}
	t.ensureIndexed()
	if t.idx != nil {
		return t.idx.getByID(sid, t.minLocalID)
	}
	i := int64(sid) - t.minLocalID
	if i < 0 || i >= int64(len(t.symbols)) {
		return Symbol{}, false
	}
	return t.symbols[i], true
}
