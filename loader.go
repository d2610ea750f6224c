package ion

// importEntry is one parsed, catalog-resolved member of an imports list.
type importEntry struct {
	desc     ImportDescriptor
	resolved *Table
}

// LoadSymbolTable consumes a struct value a Reader is positioned on (current
// is the type Next() just reported) and loads it into a new Table. The
// struct must be annotated $ion_symbol_table (LOCAL) or
// $ion_shared_symbol_table (SHARED); anything else fails with
// NotASymbolTableError.
//
// predecessor is the previous local context, used only for the append form
// (imports: $ion_symbol_table) — pass nil if there isn't one (e.g. this is
// the first local table in the stream, or the caller is loading a shared
// table).
//
// Fields are scanned once to collect their raw content, then applied in a
// fixed order (imports before symbols, then name/version/max_id defaulting)
// regardless of the order they appeared on the wire.
func LoadSymbolTable(current Type, r Reader, cat Catalog, owner *Owner, predecessor *Table) (*Table, error) {
	if current != StructType {
		return nil, &NotASymbolTableError{}
	}

	var annotations []string
	kind := KindEmpty
	for i := 0; ; i++ {
		ann, ok := r.Annotation(i)
		if !ok {
			break
		}
		annotations = append(annotations, ann)
		switch ann {
		case annotationLocalSymbolTable:
			kind = KindLocal
		case annotationSharedSymbolTable:
			kind = KindShared
		}
	}
	if kind == KindEmpty {
		return nil, &NotASymbolTableError{Annotations: annotations}
	}
	if r.IsNull() {
		return nil, &InvalidSymbolTableError{Msg: "symbol table value is null"}
	}

	t, err := Open(kind, owner)
	if err != nil {
		return nil, err
	}

	if err := r.StepIn(); err != nil {
		return nil, err
	}

	var (
		haveName, haveVersion              bool
		haveImportsField, haveSymbolsField bool
		haveMaxIDField                     bool
		name                               string
		version                            int
		explicitMaxID                      *int64

		importsAppendForm bool
		importEntries     []importEntry
		symbolTexts       []*string
	)

	for {
		typ, ok := r.Next()
		if !ok {
			break
		}
		sid, recognized := classifyField(r, t.systemTable)
		if !recognized {
			continue // unknown field: ignored
		}

		switch sid {
		case SIDName:
			if !haveName && typ == StringType && !r.IsNull() {
				s, err := r.StringValue()
				if err != nil {
					return nil, err
				}
				if s != "" {
					name, haveName = s, true
				}
			}

		case SIDVersion:
			if !haveVersion && typ == IntType && !r.IsNull() {
				v, err := r.Int32Value()
				if err != nil {
					return nil, err
				}
				if v >= 1 {
					version, haveVersion = int(v), true
				}
			}

		case SIDImports:
			if haveImportsField {
				return nil, &InvalidSymbolTableError{Msg: "multiple imports fields found within a single symbol table"}
			}
			haveImportsField = true
			appendForm, entries, err := parseImportsField(typ, r, cat)
			if err != nil {
				return nil, err
			}
			importsAppendForm, importEntries = appendForm, entries

		case SIDSymbols:
			if haveSymbolsField {
				return nil, &InvalidSymbolTableError{Msg: "multiple symbols fields found within a single symbol table"}
			}
			haveSymbolsField = true
			texts, err := parseSymbolsField(typ, r)
			if err != nil {
				return nil, err
			}
			symbolTexts = texts

		case SIDMaxID:
			if haveMaxIDField {
				return nil, &InvalidSymbolTableError{Msg: "multiple max_id fields found within a single symbol table"}
			}
			haveMaxIDField = true
			if typ == IntType && !r.IsNull() {
				v, err := r.Int32Value()
				if err != nil {
					return nil, err
				}
				n := int64(v)
				explicitMaxID = &n
			}
		}
	}

	if err := r.StepOut(); err != nil {
		return nil, err
	}

	// Apply in a fixed order regardless of wire order: imports first (so the
	// SID space they occupy is settled), then symbols, then the shared-table
	// name/version/max_id defaulting.
	if haveImportsField {
		if importsAppendForm {
			if t.kind != KindLocal {
				return nil, &InvalidSymbolTableError{Msg: "append form is only valid for local symbol tables"}
			}
			if predecessor != nil && predecessor.Kind() == KindLocal {
				t.imports = append([]ResolvedImport(nil), predecessor.imports...)
				t.symbols = append([]Symbol(nil), predecessor.symbols...)
				t.maxID = predecessor.maxID
				t.minLocalID = predecessor.minLocalID
			}
			// No predecessor to append to: leave the table as freshly opened.
		} else {
			for _, e := range importEntries {
				if t.kind == KindLocal {
					if err := t.AddImport(e.desc, e.resolved); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	for _, text := range symbolTexts {
		t.declareLocalSymbol(text)
	}

	if t.kind == KindShared {
		if haveName {
			_ = t.SetName(name)
		}
		v := 1
		if haveVersion {
			v = version
		}
		_ = t.SetVersion(v)

		if explicitMaxID != nil {
			if *explicitMaxID < 1 {
				return nil, &InvalidSymbolTableError{Msg: "shared symbol table max_id must be >= 1"}
			}
			// max_id only ever clamps a shared table downward; a declared
			// value at or above the current max_id is a no-op.
			if *explicitMaxID < t.maxID {
				if err := t.SetMaxID(*explicitMaxID); err != nil {
					return nil, err
				}
			}
		}
	}

	t.Lock()
	return t, nil
}

// classifyField resolves the field the reader is currently positioned on to
// a system SID: the reader's own field SID if it has one (a binary reader
// always does), otherwise its field name re-resolved against the system
// table (a text reader's fallback).
func classifyField(r Reader, sys *Table) (SID, bool) {
	if sid, ok := r.FieldNameSID(); ok && sid != UnknownSID {
		return sid, true
	}
	if name, ok := r.FieldName(); ok {
		if sid, ok := sys.localFindByName(name); ok {
			return sid, true
		}
	}
	return UnknownSID, false
}

// parseImportsField parses either shape the imports field may take: a list
// of import structs, or the append-form symbol value $ion_symbol_table. It
// only parses — applying the result to a Table happens once every field has
// been scanned, so that doesn't depend on wire order.
func parseImportsField(typ Type, r Reader, cat Catalog) (appendForm bool, entries []importEntry, err error) {
	if typ == SymbolType && !r.IsNull() {
		s, err := r.StringValue()
		if err != nil {
			return false, nil, err
		}
		if s != annotationLocalSymbolTable {
			return false, nil, &InvalidSymbolTableError{Msg: "unrecognized imports symbol value " + s}
		}
		return true, nil, nil
	}

	if typ != ListType || r.IsNull() {
		return false, nil, nil
	}

	if err := r.StepIn(); err != nil {
		return false, nil, err
	}
	for {
		etyp, ok := r.Next()
		if !ok {
			break
		}
		if etyp != StructType || r.IsNull() {
			continue
		}
		desc, resolved, err := parseImportEntry(r, cat)
		if err != nil {
			return false, nil, err
		}
		entries = append(entries, importEntry{desc: desc, resolved: resolved})
	}
	if err := r.StepOut(); err != nil {
		return false, nil, err
	}
	return false, entries, nil
}

// parseImportEntry parses one member of the imports list into a descriptor
// and resolves it against the catalog. Its fields are identified the same
// way as the table's own fields (see classifyField).
func parseImportEntry(r Reader, cat Catalog) (ImportDescriptor, *Table, error) {
	sys, err := SystemTable(1)
	if err != nil {
		return ImportDescriptor{}, nil, err
	}
	if err := r.StepIn(); err != nil {
		return ImportDescriptor{}, nil, err
	}

	var (
		name       string
		haveName   bool
		version    = 1
		maxID      *int64
		haveMaxID  bool
	)

	for {
		typ, ok := r.Next()
		if !ok {
			break
		}
		fsid, _ := classifyField(r, sys)
		switch fsid {
		case SIDName:
			if typ == StringType && !r.IsNull() {
				s, err := r.StringValue()
				if err != nil {
					return ImportDescriptor{}, nil, err
				}
				name, haveName = s, true
			}
		case SIDVersion:
			if typ == IntType && !r.IsNull() {
				v, err := r.Int32Value()
				if err != nil {
					return ImportDescriptor{}, nil, err
				}
				if v >= 1 {
					version = int(v)
				}
			}
		case SIDMaxID:
			if haveMaxID {
				return ImportDescriptor{}, nil, &InvalidSymbolTableError{Msg: "multiple max_id declarations within one import"}
			}
			haveMaxID = true
			if typ == IntType && !r.IsNull() {
				v, err := r.Int32Value()
				if err != nil {
					return ImportDescriptor{}, nil, err
				}
				n := int64(v)
				maxID = &n
			}
		}
	}

	if err := r.StepOut(); err != nil {
		return ImportDescriptor{}, nil, err
	}

	if !haveName || name == "" {
		return ImportDescriptor{}, nil, &InvalidSymbolTableError{Msg: "import missing required name"}
	}

	desc := ImportDescriptor{Name: name, Version: version, MaxID: maxID}

	var resolved *Table
	if cat != nil {
		resolved = cat.BestMatch(name, version, maxID)
	}
	if maxID == nil && resolved != nil {
		n := resolved.MaxID()
		desc.MaxID = &n
	}

	return desc, resolved, nil
}

// parseSymbolsField parses the symbols list into one text pointer per
// element, in order: a non-null string element yields that text, anything
// else (null, or a non-string value) yields nil, meaning unknown text but a
// live SID slot. It only parses — symbols are declared against the Table
// once every field has been scanned. Unlike Table.AddSymbol, no interning
// happens here: duplicate text produces two distinct symbols.
func parseSymbolsField(typ Type, r Reader) ([]*string, error) {
	if typ != ListType || r.IsNull() {
		return nil, nil
	}

	if err := r.StepIn(); err != nil {
		return nil, err
	}
	var texts []*string
	for {
		etyp, ok := r.Next()
		if !ok {
			break
		}
		if etyp == StringType && !r.IsNull() {
			s, err := r.StringValue()
			if err != nil {
				return nil, err
			}
			texts = append(texts, &s)
		} else {
			texts = append(texts, nil)
		}
	}
	if err := r.StepOut(); err != nil {
		return nil, err
	}
	return texts, nil
}

// declareLocalSymbol appends a new local symbol at the next sequential SID
// without interning (the loader's append semantics, as opposed to
// Table.AddSymbol's dedup-by-text semantics).
func (t *Table) declareLocalSymbol(text *string) SID {
	newSID := SID(t.maxID + 1)
	sym := Symbol{SID: newSID, Text: text}
	if t.kind == KindShared || t.kind == KindSystem {
		sym.Source = &ImportLocation{ImportName: t.name, SID: newSID}
	}
	t.symbols = append(t.symbols, sym)
	t.maxID = int64(newSID)
	t.indexAppend(sym)
	return newSID
}
