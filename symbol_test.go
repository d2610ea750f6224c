package ion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolEqualText(t *testing.T) {
	a := "hello"
	b := "hello"
	c := "world"
	assert.True(t, Symbol{SID: 10, Text: &a}.Equal(Symbol{SID: 20, Text: &b}))
	assert.False(t, Symbol{SID: 10, Text: &a}.Equal(Symbol{SID: 10, Text: &c}))
}

func TestSymbolZeroEquivalence(t *testing.T) {
	zero1 := Symbol{SID: 0}
	zero2 := Symbol{SID: 55}
	assert.True(t, zero1.Equal(zero2))
	assert.True(t, zero2.Equal(zero1))
}

func TestSymbolUnknownTextSharedMustMatchLocation(t *testing.T) {
	loc1 := &ImportLocation{ImportName: "foo", SID: 4}
	loc2 := &ImportLocation{ImportName: "foo", SID: 4}
	loc3 := &ImportLocation{ImportName: "foo", SID: 5}

	a := Symbol{SID: 13, Source: loc1}
	b := Symbol{SID: 13, Source: loc2}
	c := Symbol{SID: 14, Source: loc3}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSymbolLocalUnknownTextNeverEqualsSharedUnknownText(t *testing.T) {
	local := Symbol{SID: 10}
	shared := Symbol{SID: 10, Source: &ImportLocation{ImportName: "foo", SID: 1}}
	assert.False(t, local.Equal(shared))
}

func TestSymbolHasUnknownText(t *testing.T) {
	text := "x"
	assert.False(t, Symbol{Text: &text}.HasUnknownText())
	assert.True(t, Symbol{}.HasUnknownText())
}
