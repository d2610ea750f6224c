package ion

// FindByName resolves text to a SID, searching system table, then imports
// in declaration order, then local symbols. If allowSymbolIdentifier is true
// and text has the `$<int>` shape, it is parsed directly as a raw SID
// instead of being searched for. It returns (UnknownSID, false) if nothing
// matches.
func (t *Table) FindByName(text string, allowSymbolIdentifier bool) (SID, bool) {
	if allowSymbolIdentifier {
		if sid, ok := parseSymbolIdentifier(text); ok {
			return sid, true
		}
	}

	if sid, ok := t.systemTable.localFindByName(text); ok {
		return sid, true
	}

	if sid, ok := t.findByNameInImports(text); ok {
		return sid, true
	}

	if sid, ok := t.localFindByName(text); ok {
		return sid, true
	}

	return UnknownSID, false
}

func (t *Table) findByNameInImports(text string) (SID, bool) {
	offset := t.importBaseOffset()
	for _, imp := range t.imports {
		if imp.Resolved != nil {
			if localSID, ok := imp.Resolved.localFindByName(text); ok && int64(localSID) <= imp.DeclaredMaxID {
				return SID(offset + int64(localSID)), true
			}
		}
		offset += imp.DeclaredMaxID
	}
	return UnknownSID, false
}

// importBaseOffset is the SID offset at which the first import begins: the
// system table's max_id for a LOCAL table (which implicitly imports it),
// zero otherwise.
func (t *Table) importBaseOffset() int64 {
	if t.kind == KindLocal && t.systemTable != nil {
		return t.systemTable.MaxID()
	}
	return 0
}

// FindBySID resolves sid to a symbol. SID 0 always resolves to symbol zero.
// For a SHARED table, SID 1 maps to its first local symbol; for a LOCAL
// table, SIDs 1..system.max_id resolve in the system table, SIDs inside an
// import's declared range resolve there (synthesizing an unknown-text
// symbol with an import location if the import is unresolved or the slot
// doesn't exist), and anything past that resolves locally.
func (t *Table) FindBySID(sid SID) (Symbol, bool) {
	if sid == UnknownSID {
		return zeroSymbol, true
	}
	if sid < 0 {
		return Symbol{}, false
	}

	if t.kind == KindLocal {
		if int64(sid) <= t.systemTable.MaxID() {
			return t.systemTable.localFindBySID(sid)
		}

		offset := t.importBaseOffset()
		for _, imp := range t.imports {
			if int64(sid) <= offset+imp.DeclaredMaxID {
				inImportSID := SID(int64(sid) - offset)
				if imp.Resolved != nil {
					if sym, ok := imp.Resolved.localFindBySID(inImportSID); ok {
						return sym, true
					}
				}
				return Symbol{SID: sid, Source: &ImportLocation{ImportName: imp.Name, SID: inImportSID}}, true
			}
			offset += imp.DeclaredMaxID
		}
	}

	return t.localFindBySID(sid)
}

// ResolveSymbolIdentifier implements the `$<int>` read-side semantics: SID 0
// and any SID beyond MaxID yield a synthetic unknown-text symbol
// (equivalent to symbol zero); everything else resolves through FindBySID.
func (t *Table) ResolveSymbolIdentifier(sid SID) Symbol {
	if sid == UnknownSID || int64(sid) > t.maxID {
		return Symbol{SID: sid}
	}
	if sym, ok := t.FindBySID(sid); ok {
		return sym
	}
	return Symbol{SID: sid}
}
