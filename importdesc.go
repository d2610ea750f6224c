package ion

// ImportDescriptor is the (name, version, max_id) triple a local table
// declares for one import. MaxID is nil when the wire form left it
// undefined, meaning "use whatever the resolved shared table provides".
type ImportDescriptor struct {
	Name    string
	Version int
	MaxID   *int64
}

// ResolvedImport is an import descriptor together with the shared table the
// Catalog resolved it to, if any. Resolved is nil when the catalog has no
// matching table; DeclaredMaxID is always defined by the time a
// ResolvedImport is attached to a Table; it alone (never Resolved's actual
// symbol count) is used for SID offset arithmetic.
type ResolvedImport struct {
	Name          string
	Version       int
	DeclaredMaxID int64
	Resolved      *Table
}
