package ion

import "fmt"

// An InvalidArgumentError is returned for a null handle, a negative length,
// or a SID outside the range an operation can accept.
type InvalidArgumentError struct {
	API string
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("ion: invalid argument in %v: %v", e.API, e.Msg)
}

// An ImmutableError is returned when a caller attempts to mutate a locked table.
type ImmutableError struct {
	API string
}

func (e *ImmutableError) Error() string {
	return fmt.Sprintf("ion: %v: table is locked", e.API)
}

// A HasLocalSymbolsError is returned by AddImport when the table already has
// at least one local symbol; imports must precede locals.
type HasLocalSymbolsError struct{}

func (e *HasLocalSymbolsError) Error() string {
	return "ion: cannot add an import after local symbols have been defined"
}

// An InvalidSymbolTableError is returned for a malformed on-wire symbol table:
// a missing import name, a duplicate imports/symbols/max_id field, a shared
// max_id below 1, an undefined max_id with no resolvable shared table, or an
// import referencing a local table.
type InvalidSymbolTableError struct {
	Msg string
}

func (e *InvalidSymbolTableError) Error() string {
	return fmt.Sprintf("ion: invalid symbol table: %v", e.Msg)
}

// An InvalidUTF8Error is returned when symbol text fails UTF-8 well-formedness.
type InvalidUTF8Error struct {
	Text string
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("ion: invalid UTF-8 in symbol text %q", e.Text)
}

// An InvalidSymbolError is the error category for a SID that cannot be
// resolved and has no synthetic representation. No function in this package
// returns it: FindBySID reports an unresolvable SID with a false result, and
// Symbol.Equal returns a bool (two unknown-text local symbols compare equal).
type InvalidSymbolError struct {
	Msg string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("ion: invalid symbol: %v", e.Msg)
}

// A NotASymbolTableError is returned when a struct's annotations match
// neither $ion_symbol_table nor $ion_shared_symbol_table.
type NotASymbolTableError struct {
	Annotations []string
}

func (e *NotASymbolTableError) Error() string {
	return fmt.Sprintf("ion: not a symbol table, annotations were %v", e.Annotations)
}

// An UnsupportedVersionError is returned when the system table is requested
// for any version other than 1.
type UnsupportedVersionError struct {
	Major int
	Minor int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("ion: unsupported version %v.%v", e.Major, e.Minor)
}

// A NoMemoryError is the error category for a table's owning arena failing to
// satisfy an allocation. In this Go implementation an Owner performs no
// allocation of its own, so the subsystem never raises it.
type NoMemoryError struct{}

func (e *NoMemoryError) Error() string {
	return "ion: no memory"
}
