package ion

import "fmt"

// SID is a symbol identifier: a small positive integer naming an entry in a
// symbol context. SID 0 is never assigned to any table but is always a legal
// reference to "symbol zero", the universal placeholder for unknown text.
type SID int64

// UnknownSID is the sentinel returned by a by-name lookup that finds nothing.
const UnknownSID SID = 0

// String implements fmt.Stringer for SID, in the `$<int>` shorthand.
func (s SID) String() string {
	return fmt.Sprintf("$%d", int64(s))
}

// ImportLocation names the shared table and in-import SID a symbol was
// declared at, used when a symbol's text could not be resolved.
type ImportLocation struct {
	ImportName string
	SID        SID
}

// Equal reports whether two import locations name the same slot.
func (l ImportLocation) Equal(o ImportLocation) bool {
	return l.ImportName == o.ImportName && l.SID == o.SID
}

// Symbol is the (SID, optional text, optional import location) tuple. A nil
// Text means "unknown text": the declaring shared table was unavailable, or
// the slot was explicitly null/non-string in the wire form.
type Symbol struct {
	SID      SID
	Text     *string
	Source   *ImportLocation
	AddCount int
}

// zeroSymbol is the synthetic "symbol zero" placeholder: SID 0, unknown text,
// no import location.
var zeroSymbol = Symbol{SID: UnknownSID}

// HasUnknownText reports whether this symbol's text is absent.
func (s Symbol) HasUnknownText() bool {
	return s.Text == nil
}

// Equal reports whether two symbols are equivalent: symbols with identical
// non-null text are equal regardless of SID; symbols with null text are
// equal iff both are local (in which case they are always equal, both
// representing symbol zero) or both are shared with identical import
// locations.
func (s Symbol) Equal(o Symbol) bool {
	if s.Text != nil && o.Text != nil {
		return *s.Text == *o.Text
	}
	if s.Text != nil || o.Text != nil {
		return false
	}

	// Both unknown text.
	sLocal, oLocal := s.Source == nil, o.Source == nil
	if sLocal && oLocal {
		// Symbol zero: every local symbol with unknown text is equivalent to
		// every other.
		return true
	}
	if sLocal != oLocal {
		return false
	}
	return s.Source.Equal(*o.Source)
}
