package ion

// WriteTo serializes t as a full (non-incremental) symbol-table value: a
// struct annotated $ion_symbol_table or $ion_shared_symbol_table, with
// fields written in the order name, version, imports, symbols, max_id. name,
// version and max_id are only emitted for SHARED tables; imports and symbols
// are emitted whenever the table has any. A local symbol with unknown text is
// written as a typed null rather than an empty string, so a reader can tell
// the slot exists but carries no text.
func WriteTo(t *Table, w Writer) error {
	switch t.kind {
	case KindLocal:
		return writeSymbolTable(t, w, SIDIonSymbolTable, 0)
	case KindShared:
		return writeSymbolTable(t, w, SIDIonSharedSymbolTable, 0)
	default:
		return &InvalidArgumentError{API: "WriteTo", Msg: "only LOCAL or SHARED tables can be serialized"}
	}
}

// WriteIncrementalTo serializes only the symbols t has gained since its last
// flush, in append form: imports is written as the symbol value
// $ion_symbol_table (meaning "extend the previous local context") rather
// than a list, and symbols carries only the suffix past FlushedMaxID. It is
// only meaningful for LOCAL tables — SHARED tables have no predecessor to
// append to. While FlushedMaxID is still 0 (nothing flushed yet), the full
// form is written instead, exactly as WriteTo would. The caller is expected
// to call t.MarkFlushed() after a successful write.
func WriteIncrementalTo(t *Table, w Writer) error {
	if t.kind != KindLocal {
		return &InvalidArgumentError{API: "WriteIncrementalTo", Msg: "incremental form is only valid for local tables"}
	}
	return writeSymbolTable(t, w, SIDIonSymbolTable, t.flushedMaxID)
}

// writeSymbolTable does the common work: since is 0 for a full write, or a
// table's FlushedMaxID for an incremental one, naming the last SID already
// written; only local symbols with a higher SID are written.
func writeSymbolTable(t *Table, w Writer, annotation SID, since int64) error {
	incremental := since > 0

	if err := w.AddAnnotationSID(annotation); err != nil {
		return err
	}
	if err := w.StartContainer(StructType); err != nil {
		return err
	}

	if t.kind == KindShared {
		if t.name != "" {
			if err := w.WriteFieldSID(SIDName); err != nil {
				return err
			}
			if err := w.WriteString(t.name); err != nil {
				return err
			}
		}
		if t.version > 0 {
			if err := w.WriteFieldSID(SIDVersion); err != nil {
				return err
			}
			if err := w.WriteInt64(int64(t.version)); err != nil {
				return err
			}
		}
	}

	if incremental {
		if err := w.WriteFieldSID(SIDImports); err != nil {
			return err
		}
		if err := w.WriteString(annotationLocalSymbolTable); err != nil {
			return err
		}
	} else if len(t.imports) > 0 {
		if err := w.WriteFieldSID(SIDImports); err != nil {
			return err
		}
		if err := writeImports(t, w); err != nil {
			return err
		}
	}

	start := 0
	if incremental {
		start = int(since - t.minLocalID + 1)
		if start < 0 {
			start = 0
		}
	}
	if start < len(t.symbols) {
		if err := w.WriteFieldSID(SIDSymbols); err != nil {
			return err
		}
		if err := writeSymbols(t.symbols[start:], w); err != nil {
			return err
		}
	}

	if t.kind == KindShared && t.maxID > 0 {
		if err := w.WriteFieldSID(SIDMaxID); err != nil {
			return err
		}
		if err := w.WriteInt64(t.maxID); err != nil {
			return err
		}
	}

	return w.FinishContainer()
}

func writeImports(t *Table, w Writer) error {
	if len(t.imports) == 0 {
		return nil
	}
	if err := w.StartContainer(ListType); err != nil {
		return err
	}
	for _, imp := range t.imports {
		if err := w.StartContainer(StructType); err != nil {
			return err
		}
		if err := w.WriteFieldSID(SIDName); err != nil {
			return err
		}
		if err := w.WriteString(imp.Name); err != nil {
			return err
		}
		if err := w.WriteFieldSID(SIDVersion); err != nil {
			return err
		}
		if err := w.WriteInt64(int64(imp.Version)); err != nil {
			return err
		}
		if err := w.WriteFieldSID(SIDMaxID); err != nil {
			return err
		}
		if err := w.WriteInt64(imp.DeclaredMaxID); err != nil {
			return err
		}
		if err := w.FinishContainer(); err != nil {
			return err
		}
	}
	return w.FinishContainer()
}

func writeSymbols(symbols []Symbol, w Writer) error {
	if err := w.StartContainer(ListType); err != nil {
		return err
	}
	for _, sym := range symbols {
		if sym.Text != nil {
			if err := w.WriteString(*sym.Text); err != nil {
				return err
			}
		} else if err := w.WriteStringNull(); err != nil {
			return err
		}
	}
	return w.FinishContainer()
}
