package ion

// fakeValue is a tree node standing in for one value in an Ion value
// stream. It exists only to drive fakeReader/fakeWriter, the in-memory
// Reader/Writer test doubles used by loader_test.go and serializer_test.go,
// so the loader/serializer can be exercised against a minimal stand-in
// instead of a full codec.
type fakeValue struct {
	typ         Type
	fieldName   string
	fieldSID    SID
	annotations []string
	isNull      bool
	text        string
	intVal      int32
	children    []fakeValue
}

func strVal(s string) fakeValue    { return fakeValue{typ: StringType, text: s} }
func symVal(s string) fakeValue    { return fakeValue{typ: SymbolType, text: s} }
func nullVal(typ Type) fakeValue   { return fakeValue{typ: typ, isNull: true} }
func intVal(v int32) fakeValue     { return fakeValue{typ: IntType, intVal: v} }
func listVal(vs ...fakeValue) fakeValue   { return fakeValue{typ: ListType, children: vs} }
func structVal(vs ...fakeValue) fakeValue { return fakeValue{typ: StructType, children: vs} }

func field(name string, sid SID, v fakeValue) fakeValue {
	v.fieldName = name
	v.fieldSID = sid
	return v
}

func annotated(ann string, v fakeValue) fakeValue {
	v.annotations = append([]string{ann}, v.annotations...)
	return v
}

type fakeFrame struct {
	values []fakeValue
	pos    int
}

// fakeReader is a Reader over a fakeValue tree.
type fakeReader struct {
	stack []fakeFrame
}

func newFakeReader(root fakeValue) *fakeReader {
	return &fakeReader{stack: []fakeFrame{{values: []fakeValue{root}, pos: -1}}}
}

func (r *fakeReader) top() *fakeFrame { return &r.stack[len(r.stack)-1] }

func (r *fakeReader) cur() fakeValue {
	f := r.top()
	return f.values[f.pos]
}

func (r *fakeReader) Next() (Type, bool) {
	f := r.top()
	f.pos++
	if f.pos >= len(f.values) {
		return NoType, false
	}
	return f.values[f.pos].typ, true
}

func (r *fakeReader) StepIn() error {
	r.stack = append(r.stack, fakeFrame{values: r.cur().children, pos: -1})
	return nil
}

func (r *fakeReader) StepOut() error {
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

func (r *fakeReader) IsNull() bool { return r.cur().isNull }

func (r *fakeReader) Int32Value() (int32, error) { return r.cur().intVal, nil }

func (r *fakeReader) StringValue() (string, error) { return r.cur().text, nil }

func (r *fakeReader) FieldNameSID() (SID, bool) {
	v := r.cur()
	return v.fieldSID, v.fieldSID != UnknownSID
}

func (r *fakeReader) FieldName() (string, bool) {
	v := r.cur()
	return v.fieldName, v.fieldName != ""
}

func (r *fakeReader) Annotation(i int) (string, bool) {
	anns := r.cur().annotations
	if i < 0 || i >= len(anns) {
		return "", false
	}
	return anns[i], true
}

// fakeWriter is a Writer that records a fakeValue tree.
type fakeWriter struct {
	stack         []*fakeValue
	out           []fakeValue
	pendingField  *SID
	pendingAnnSID *SID
}

func annotationNameForSID(sid SID) string {
	switch sid {
	case SIDIonSymbolTable:
		return annotationLocalSymbolTable
	case SIDIonSharedSymbolTable:
		return annotationSharedSymbolTable
	default:
		return ""
	}
}

func (w *fakeWriter) AddAnnotationSID(sid SID) error {
	s := sid
	w.pendingAnnSID = &s
	return nil
}

func (w *fakeWriter) WriteFieldSID(sid SID) error {
	s := sid
	w.pendingField = &s
	return nil
}

func (w *fakeWriter) takePending() (SID, []string) {
	var fieldSID SID
	var anns []string
	if w.pendingField != nil {
		fieldSID = *w.pendingField
		w.pendingField = nil
	}
	if w.pendingAnnSID != nil {
		anns = []string{annotationNameForSID(*w.pendingAnnSID)}
		w.pendingAnnSID = nil
	}
	return fieldSID, anns
}

func (w *fakeWriter) emit(v fakeValue) {
	fieldSID, anns := w.takePending()
	v.fieldSID = fieldSID
	v.annotations = anns
	if len(w.stack) == 0 {
		w.out = append(w.out, v)
		return
	}
	parent := w.stack[len(w.stack)-1]
	parent.children = append(parent.children, v)
}

func (w *fakeWriter) StartContainer(kind Type) error {
	fieldSID, anns := w.takePending()
	w.stack = append(w.stack, &fakeValue{typ: kind, fieldSID: fieldSID, annotations: anns})
	return nil
}

func (w *fakeWriter) FinishContainer() error {
	n := len(w.stack)
	top := *w.stack[n-1]
	w.stack = w.stack[:n-1]
	if len(w.stack) == 0 {
		w.out = append(w.out, top)
	} else {
		parent := w.stack[len(w.stack)-1]
		parent.children = append(parent.children, top)
	}
	return nil
}

func (w *fakeWriter) WriteString(s string) error {
	w.emit(fakeValue{typ: StringType, text: s})
	return nil
}

func (w *fakeWriter) WriteStringNull() error {
	w.emit(fakeValue{typ: StringType, isNull: true})
	return nil
}

func (w *fakeWriter) WriteInt64(v int64) error {
	w.emit(fakeValue{typ: IntType, intVal: int32(v)})
	return nil
}
