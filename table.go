package ion

// Kind identifies which of the four roles a Table plays. It is fixed when a
// table is opened, from the kind passed to Open(LOCAL|SHARED, ...), and is
// not recomputed from name/version on later mutation; the zero value
// KindEmpty denotes a bare table that has not yet been opened.
type Kind uint8

const (
	// KindEmpty is the kind of a table that has not yet been opened.
	KindEmpty Kind = iota
	// KindSystem is the kind of the singleton system table.
	KindSystem
	// KindShared is the kind of a named, versioned shared table.
	KindShared
	// KindLocal is the kind of a per-document local table.
	KindLocal
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case KindSystem:
		return "system"
	case KindShared:
		return "shared"
	case KindLocal:
		return "local"
	default:
		return "empty"
	}
}

// DeriveKind computes the kind a (name, version) pair implies: a non-empty
// name equal to the system table's name with version 1 is SYSTEM, any other
// non-empty name is SHARED, and an empty name is LOCAL. It exists for
// validating that rule (e.g. in tests); Table.Kind is authoritative at
// runtime and is fixed by Open, not recomputed from this.
func DeriveKind(name string, version int) Kind {
	if name == "" {
		return KindLocal
	}
	if name == systemTableName && version == 1 {
		return KindSystem
	}
	return KindShared
}

// Owner is the arena a Table's heap state is allocated under. This
// implementation has no bespoke allocator — the runtime heap already pools
// and reclaims memory — so Owner is reduced to a comparable identity used by
// Clone to decide whether strings may be aliased (same owner) or must be
// deep-copied (different owner). A table releases its arena simply by
// becoming unreachable.
type Owner struct{ _ byte }

// NewOwner allocates a fresh, empty Owner.
func NewOwner() *Owner {
	return &Owner{}
}

// Table is the mutable symbol-context record: kind, name, version, max_id,
// minimum local SID, flush watermark, lock flag, imports, local symbols, and
// (lazily) its lookup indices.
type Table struct {
	owner *Owner

	kind    Kind
	name    string
	version int

	maxID        int64
	minLocalID   int64
	flushedMaxID int64

	locked bool

	imports []ResolvedImport
	symbols []Symbol

	idx *tableIndex

	systemTable *Table
}

// Owner returns the arena this table's heap state belongs to.
func (t *Table) Owner() *Owner { return t.owner }

// Kind returns the table's kind.
func (t *Table) Kind() Kind { return t.kind }

// Name returns the table's name ("" for LOCAL and EMPTY tables).
func (t *Table) Name() string { return t.name }

// Version returns the table's version (0 for LOCAL and EMPTY tables).
func (t *Table) Version() int { return t.version }

// MaxID returns the highest SID known to this context.
func (t *Table) MaxID() int64 { return t.maxID }

// MinLocalID returns the first SID in this table's local-symbol range.
func (t *Table) MinLocalID() int64 { return t.minLocalID }

// FlushedMaxID returns the high-water mark a serializer may use to emit only
// the suffix of symbols added since the last flush.
func (t *Table) FlushedMaxID() int64 { return t.flushedMaxID }

// MarkFlushed records that every symbol up to the current MaxID has now been
// serialized once, advancing FlushedMaxID to MaxID. It is legal on a locked
// table: flush bookkeeping is not part of the immutability contract.
func (t *Table) MarkFlushed() {
	t.flushedMaxID = t.maxID
}

// IsLocked reports whether the table has been locked.
func (t *Table) IsLocked() bool { return t.locked }

// HasLocalSymbols reports whether any local symbol has been added.
func (t *Table) HasLocalSymbols() bool { return len(t.symbols) > 0 }

// Imports returns the table's resolved imports, in declaration order. The
// returned slice is owned by the table and must not be modified.
func (t *Table) Imports() []ResolvedImport { return t.imports }

// Symbols returns the table's local symbols, in SID order. The returned
// slice is owned by the table and must not be modified.
func (t *Table) Symbols() []Symbol { return t.symbols }

// SystemTable returns the system table this table was built against. Every
// table (including the system table itself, which returns itself) has one.
func (t *Table) SystemTable() *Table { return t.systemTable }

func (t *Table) assertUnlocked(api string) error {
	if t.locked {
		return &ImmutableError{API: api}
	}
	return nil
}
