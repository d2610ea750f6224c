package ion

import (
	"strings"
	"unicode/utf8"
)

// Open allocates a new LOCAL or SHARED table under owner. A LOCAL table
// receives the system table as its SystemTable and has MaxID/MinLocalID
// pre-advanced past the system table's symbols, by incorporating it with a
// nil resolved table — the system table is never itself an entry in
// Imports(), only an offset. A SHARED table starts at MinLocalID 1 and does
// not pre-incorporate anything.
func Open(kind Kind, owner *Owner) (*Table, error) {
	if kind != KindLocal && kind != KindShared {
		return nil, &InvalidArgumentError{API: "Open", Msg: "kind must be LOCAL or SHARED"}
	}
	sys, err := SystemTable(1)
	if err != nil {
		return nil, err
	}

	t := &Table{
		owner:       owner,
		kind:        kind,
		minLocalID:  1,
		systemTable: sys,
	}
	if kind == KindLocal {
		sysMaxID := sys.MaxID()
		if err := t.incorporate(nil, &sysMaxID); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// openRaw is used internally (by the system-table bootstrap) to build a table whose kind is already fully known and which must not
// auto-incorporate the system table.
func openRaw(kind Kind, owner *Owner, name string, version int, systemTable *Table) *Table {
	return &Table{
		owner:       owner,
		kind:        kind,
		name:        name,
		version:     version,
		minLocalID:  1,
		systemTable: systemTable,
	}
}

// Clone copies kind, name, version, imports, and symbols from src into a new
// table owned by owner. If owner == src.Owner(), symbol text is aliased
// (Go strings are immutable, so this is a plain slice copy); otherwise each
// string is deep-copied via strings.Clone so the new table shares no memory
// with src.
func Clone(src *Table, owner *Owner) *Table {
	dst := &Table{
		owner:        owner,
		kind:         src.kind,
		name:         src.name,
		version:      src.version,
		maxID:        src.maxID,
		minLocalID:   src.minLocalID,
		flushedMaxID: src.flushedMaxID,
		systemTable:  src.systemTable,
	}

	dst.imports = append([]ResolvedImport(nil), src.imports...)

	sameOwner := owner == src.owner
	dst.symbols = make([]Symbol, len(src.symbols))
	for i, s := range src.symbols {
		if s.Text != nil && !sameOwner {
			copied := strings.Clone(*s.Text)
			s.Text = &copied
		}
		dst.symbols[i] = s
	}

	return dst
}

// Lock finalizes a table: it builds the lookup indices (if MaxID is
// positive) and marks it immutable. Locking is idempotent and one-way.
func (t *Table) Lock() {
	if t.locked {
		return
	}
	if t.maxID > 0 {
		t.buildIndex()
	}
	t.locked = true
}

// SetName sets the table's name. Only meaningful for SHARED/SYSTEM tables;
// allowed only while unlocked.
func (t *Table) SetName(name string) error {
	if err := t.assertUnlocked("SetName"); err != nil {
		return err
	}
	t.name = name
	return nil
}

// SetVersion sets the table's version. Only meaningful for SHARED/SYSTEM
// tables; allowed only while unlocked.
func (t *Table) SetVersion(version int) error {
	if err := t.assertUnlocked("SetVersion"); err != nil {
		return err
	}
	t.version = version
	return nil
}

// SetMaxID truncates the table's declared max_id. It can only shorten, never
// lengthen, the table: it is meant for a SHARED table's explicit max_id
// field, which may clamp away trailing symbols the wire form still lists.
func (t *Table) SetMaxID(maxID int64) error {
	if err := t.assertUnlocked("SetMaxID"); err != nil {
		return err
	}
	if maxID < 0 {
		return &InvalidArgumentError{API: "SetMaxID", Msg: "max_id must not be negative"}
	}
	if maxID > t.maxID {
		return &InvalidArgumentError{API: "SetMaxID", Msg: "max_id may only be shortened, not lengthened"}
	}
	t.maxID = maxID
	if t.maxID < t.minLocalID-1 {
		t.minLocalID = t.maxID + 1
	}
	if t.maxID < int64(len(t.symbols))+t.minLocalID-1 {
		keep := t.maxID - t.minLocalID + 1
		if keep < 0 {
			keep = 0
		}
		t.symbols = t.symbols[:keep]
		t.idx = nil // rebuilt on demand from the remaining symbols
	}
	return nil
}

// incorporate advances the receiving table's SID space to make room for an
// import or the system table. If resolved is non-nil it must be SHARED or
// SYSTEM. If resolved is nil, declaredMaxID must be defined and
// non-negative — this is what lets SID assignments stay stable even when a
// shared table's content is unavailable.
func (t *Table) incorporate(resolved *Table, declaredMaxID *int64) error {
	if resolved != nil && resolved.Kind() != KindShared && resolved.Kind() != KindSystem {
		return &InvalidSymbolTableError{Msg: "import referencing a local table"}
	}

	var n int64
	switch {
	case declaredMaxID != nil:
		n = *declaredMaxID
	case resolved != nil:
		n = resolved.MaxID()
	default:
		return &InvalidSymbolTableError{Msg: "undefined max_id with no resolvable shared table"}
	}
	if n < 0 {
		return &InvalidSymbolTableError{Msg: "declared max_id must not be negative"}
	}

	t.maxID += n
	t.minLocalID = t.maxID + 1
	return nil
}

// AddImport appends a resolved import to a LOCAL table and advances its SID
// space. It fails if the table is locked or already has a local symbol:
// imports must precede locals.
func (t *Table) AddImport(desc ImportDescriptor, resolved *Table) error {
	if err := t.assertUnlocked("AddImport"); err != nil {
		return err
	}
	if t.HasLocalSymbols() {
		return &HasLocalSymbolsError{}
	}

	declaredMaxID := desc.MaxID
	if declaredMaxID == nil && resolved != nil {
		n := resolved.MaxID()
		declaredMaxID = &n
	}

	if err := t.incorporate(resolved, declaredMaxID); err != nil {
		return err
	}

	t.imports = append(t.imports, ResolvedImport{
		Name:          desc.Name,
		Version:       desc.Version,
		DeclaredMaxID: *declaredMaxID,
		Resolved:      resolved,
	})
	return nil
}

// AddSymbol interns text: if it already exists, its existing SID is
// returned and its add_count is bumped; otherwise a new symbol is appended
// at SID = MaxID+1. text is validated as well-formed UTF-8. Fails if the
// table is locked.
func (t *Table) AddSymbol(text string) (SID, error) {
	if err := t.assertUnlocked("AddSymbol"); err != nil {
		return 0, err
	}
	if !utf8.ValidString(text) {
		return 0, &InvalidUTF8Error{Text: text}
	}

	if sid, ok := t.localFindByName(text); ok {
		t.bumpAddCount(sid)
		return sid, nil
	}

	newSID := SID(t.maxID + 1)
	sym := Symbol{SID: newSID, Text: &text}
	if t.kind == KindShared || t.kind == KindSystem {
		sym.Source = &ImportLocation{ImportName: t.name, SID: newSID}
	}

	t.symbols = append(t.symbols, sym)
	t.maxID = int64(newSID)
	t.indexAppend(sym)
	return newSID, nil
}

func (t *Table) bumpAddCount(sid SID) {
	i := int64(sid) - t.minLocalID
	if i < 0 || i >= int64(len(t.symbols)) {
		return
	}
	t.symbols[i].AddCount++
	if t.idx != nil {
		t.idx.setByID(sid, t.minLocalID, t.symbols[i])
	}
}
