package ion

import "fmt"

// A Type represents the shape of a value as seen by a Reader or produced by
// a Writer. It is a trimmed-down version of the full Ion type system: the
// symbol-table subsystem only ever reads or writes structs, lists, symbols,
// strings, ints, and (typed) nulls.
type Type uint8

const (
	// NoType is returned by a Reader that is not currently pointing at a value.
	NoType Type = iota

	// NullType is the type of an explicit null, typed or untyped.
	NullType

	// IntType is the type of a signed Ion integer, e.g. `version` or `max_id`.
	IntType

	// SymbolType is the type of an Ion symbol, including the `$<int>` shorthand
	// and the `imports: $ion_symbol_table` append-form marker.
	SymbolType

	// StringType is the type of a non-symbol Unicode string, e.g. a symbol's text.
	StringType

	// ListType is the type of a list, e.g. the `symbols` field.
	ListType

	// StructType is the type of a structure, e.g. the table value itself or one
	// member of its `imports` list.
	StructType
)

// String implements fmt.Stringer for Type.
func (t Type) String() string {
	switch t {
	case NoType:
		return "<no type>"
	case NullType:
		return "null"
	case IntType:
		return "int"
	case StringType:
		return "string"
	case SymbolType:
		return "symbol"
	case StructType:
		return "struct"
	case ListType:
		return "list"
	default:
		return fmt.Sprintf("<unknown type %v>", uint8(t))
	}
}
