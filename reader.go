package ion

// Reader is the external collaborator that produces the value stream a
// symbol table is loaded from. The full Ion binary/text codec that
// implements it lives elsewhere — only the handful of methods the loader
// needs are declared here.
type Reader interface {
	// StepIn steps into the current container value.
	StepIn() error
	// StepOut steps out of the current container value.
	StepOut() error
	// Next advances to the next value, returning its type and whether one
	// was found (false at the end of the current container or stream).
	Next() (Type, bool)
	// IsNull reports whether the current value is null.
	IsNull() bool
	// Int32Value returns the current value as an int32.
	Int32Value() (int32, error)
	// StringValue returns the current value's text. Valid for both
	// StringType and SymbolType values.
	StringValue() (string, error)
	// FieldNameSID returns the current field's name as a system SID, and
	// whether the reader was able to supply one (a binary reader always
	// can; a text reader may not recognize the field name as a system
	// symbol, in which case the loader falls back to FieldName).
	FieldNameSID() (SID, bool)
	// FieldName returns the current field's name as text, and whether the
	// current value has a field name at all.
	FieldName() (string, bool)
	// Annotation returns the i'th annotation on the current value, and
	// whether one exists at that index.
	Annotation(i int) (string, bool)
}

// Writer is the external collaborator that consumes the value stream a
// symbol table is serialized to.
type Writer interface {
	// AddAnnotationSID attaches an annotation (by system SID) to the next
	// value written.
	AddAnnotationSID(sid SID) error
	// WriteFieldSID writes the field name (by system SID) of the next value
	// written inside a struct.
	WriteFieldSID(sid SID) error
	// StartContainer begins a list or struct value.
	StartContainer(kind Type) error
	// FinishContainer ends the most recently started container.
	FinishContainer() error
	// WriteString writes a string (or symbol) value.
	WriteString(s string) error
	// WriteStringNull writes a typed null in place of a string value,
	// preserving the slot for a symbol whose text is unknown.
	WriteStringNull() error
	// WriteInt64 writes an integer value.
	WriteInt64(v int64) error
}
