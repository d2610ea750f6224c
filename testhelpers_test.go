package ion

// newSharedTable builds a locked SHARED table directly through the builder
// API, for use as catalog fixtures in tests.
func newSharedTable(name string, version int, symbols []string) *Table {
	t, err := Open(KindShared, NewOwner())
	if err != nil {
		panic(err)
	}
	if err := t.SetName(name); err != nil {
		panic(err)
	}
	if err := t.SetVersion(version); err != nil {
		panic(err)
	}
	for _, s := range symbols {
		if _, err := t.AddSymbol(s); err != nil {
			panic(err)
		}
	}
	t.Lock()
	return t
}

func mustText(t *Table, sid SID) string {
	sym, ok := t.FindBySID(sid)
	if !ok || sym.Text == nil {
		return ""
	}
	return *sym.Text
}
