package ion

import "sync"

// systemTableName is the name of the Ion v1.0 system table, "$ion".
const systemTableName = "$ion"

// Well-known field/annotation names.
const (
	annotationLocalSymbolTable  = "$ion_symbol_table"
	annotationSharedSymbolTable = "$ion_shared_symbol_table"

	fieldName    = "name"
	fieldVersion = "version"
	fieldImports = "imports"
	fieldSymbols = "symbols"
	fieldMaxID   = "max_id"
)

// Well-known system SIDs 1..9: the fixed symbols every Ion v1.0 system table
// assigns, in order.
const (
	SIDIon                  SID = 1
	SIDIon10                SID = 2
	SIDIonSymbolTable       SID = 3
	SIDName                 SID = 4
	SIDVersion              SID = 5
	SIDImports              SID = 6
	SIDSymbols              SID = 7
	SIDMaxID                SID = 8
	SIDIonSharedSymbolTable SID = 9
)

var systemSymbolNames = []string{
	systemTableName,
	"$ion_1_0",
	annotationLocalSymbolTable,
	fieldName,
	fieldVersion,
	fieldImports,
	fieldSymbols,
	fieldMaxID,
	annotationSharedSymbolTable,
}

var (
	systemTableOnce sync.Once
	systemTableV1   *Table
)

// SystemTable returns the singleton system table for the given major
// version, lazily constructing it on first request. The returned table is
// always fully built and locked.
//
// Only version 1 is supported; any other request fails with
// UnsupportedVersionError.
func SystemTable(version int) (*Table, error) {
	if version != 1 {
		return nil, &UnsupportedVersionError{Major: version}
	}
	systemTableOnce.Do(func() {
		systemTableV1 = buildSystemTableV1()
	})
	return systemTableV1, nil
}

func buildSystemTableV1() *Table {
	t := openRaw(KindSystem, NewOwner(), systemTableName, 1, nil)
	t.systemTable = t // a system table points to itself as its own system table

	for _, name := range systemSymbolNames {
		if _, err := t.AddSymbol(name); err != nil {
			panic("ion: system table bootstrap failed: " + err.Error())
		}
	}
	t.Lock()
	return t
}
