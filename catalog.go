package ion

// Catalog resolves an import descriptor to a shared table. It is an external
// collaborator: the subsystem only ever calls BestMatch and never constructs
// shared tables of its own accord.
//
// BestMatch implements the standard resolution rule: an exact (name,
// version) match if present, else the highest version known for name, else
// nil if nothing with that name is known. maxID, when non-nil, is advisory:
// a Catalog implementation may use it to select among multiple stored
// versions, but the caller is responsible for adjusting the result's
// declared max_id — BestMatch never truncates or extends what it returns.
type Catalog interface {
	BestMatch(name string, version int, maxID *int64) *Table
}

// MemCatalog is an in-memory Catalog that resolves by exact (name, version)
// match, falling back to the highest known version for name.
type MemCatalog struct {
	tables map[string]map[int]*Table
}

// NewMemCatalog creates an empty in-memory catalog.
func NewMemCatalog() *MemCatalog {
	return &MemCatalog{tables: make(map[string]map[int]*Table)}
}

// Add registers a SHARED or SYSTEM table for later resolution. It panics if
// t is not shared/system-kinded, since only those carry a name and version.
func (c *MemCatalog) Add(t *Table) {
	if t.Kind() != KindShared && t.Kind() != KindSystem {
		panic("ion: MemCatalog.Add requires a SHARED or SYSTEM table")
	}
	byVersion, ok := c.tables[t.Name()]
	if !ok {
		byVersion = make(map[int]*Table)
		c.tables[t.Name()] = byVersion
	}
	byVersion[t.Version()] = t
}

// BestMatch implements Catalog.
func (c *MemCatalog) BestMatch(name string, version int, _ *int64) *Table {
	byVersion, ok := c.tables[name]
	if !ok || len(byVersion) == 0 {
		return nil
	}
	if t, ok := byVersion[version]; ok {
		return t
	}

	var best *Table
	for _, t := range byVersion {
		if best == nil || t.Version() > best.Version() {
			best = t
		}
	}
	return best
}
