package uca

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-uca/uca/internal/ucadata"
)

func elements(b []byte) []Element {
	it := NewElementIter(b)
	var out []Element
	for {
		el, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, el)
	}
}

func TestElementIterSimpleLetters(t *testing.T) {
	got := elements(cps('a'))
	require.Len(t, got, 1)
	require.Equal(t, Element{L1: 0x100A, L2: 0x0020, L3: 0x0002, L4: 0xFFFF}, got[0])
}

func TestElementIterCaseDistinguishedAtTertiary(t *testing.T) {
	lower := elements(cps('a'))
	upper := elements(cps('A'))
	require.Equal(t, lower[0].L1, upper[0].L1, "case must share the same primary weight")
	require.Less(t, lower[0].L3, upper[0].L3, "lowercase must sort before uppercase at the tertiary level")
}

func TestElementIterFFFENonVariable(t *testing.T) {
	// U+FFFE has primary 0x0001, below the variable-weight floor of 2, so
	// it must NOT produce a (0,0,0,L1) variable-shifted element
	// (spec.md §8 scenario 8, §9 open question).
	got := elements(cps(0xFFFE))
	require.Len(t, got, 1)
	require.Equal(t, uint16(0x0001), got[0].L1)
	require.NotEqual(t, uint16(0), got[0].L2, "non-variable element must keep its own L2")
}

func TestElementIterVariableSpaceShifts(t *testing.T) {
	// A space (variable) produces a (0,0,0,L1) element, not (L1,L2,L3,L4).
	got := elements(cps(' '))
	require.Len(t, got, 1)
	require.Equal(t, Element{L4: 0x0209}, got[0])
}

func TestElementIterIgnorableAfterVariableIsZeroed(t *testing.T) {
	// space (variable) followed by a combining mark (zero primary, non-zero
	// tertiary) must zero out the mark's element entirely.
	got := elements(cps(' ', 0x0301))
	require.Len(t, got, 2)
	require.Equal(t, Element{}, got[1])
}

func TestElementIterImplicitWeight(t *testing.T) {
	// U+4E2D (中) is in the CJK Unified Ideographs band and has no
	// explicit mapping in this bundled dataset, so it must fall through
	// to the implicit-weight computation.
	cp := uint32(0x4E2D)
	got := elements(cps(cp))
	require.Len(t, got, 2)
	require.Equal(t, uint16(0xFB40+(cp>>15)), got[0].L1)
	require.Equal(t, uint16(0x0020), got[0].L2)
	require.Equal(t, uint16(0xFFFF), got[0].L4)
	require.Equal(t, uint16((cp&0x7FFF)|0x8000), got[1].L1)
	require.Equal(t, Element{L1: got[1].L1}, got[1])
}

func TestElementIterContiguousContraction(t *testing.T) {
	// a + combining acute, with nothing else following, matches the
	// bundled illustrative contraction contiguously.
	got := elements(cps('a', 0x0301))
	require.Len(t, got, 1, "the contraction must consume both code points into a single element")
	require.Equal(t, uint16(0x1100), got[0].L1)
}

func TestElementIterDiscontiguousContractionMatches(t *testing.T) {
	// a + cedilla(ccc 202) + acute(ccc 230): the acute is not blocked by
	// the lower-ccc cedilla, so it discontiguously completes the
	// contraction; the cedilla is left to be weighted on its own
	// afterwards (spec.md §4.6 discontiguous phase).
	got := elements(cps('a', 0x0327, 0x0301))
	require.Len(t, got, 2)
	require.Equal(t, uint16(0x1100), got[0].L1, "contraction element")
	require.Equal(t, uint16(0), got[1].L1, "cedilla has a zero primary")
	require.NotZero(t, got[1].L2, "cedilla keeps its own secondary weight")
}

func TestElementIterDiscontiguousContractionBlocked(t *testing.T) {
	// a + ring-above(ccc 230) + acute(ccc 230): the ring blocks the acute
	// (equal, not increasing, CCC), so no contraction can form and all
	// three code points weight independently.
	got := elements(cps('a', 0x030A, 0x0301))
	require.Len(t, got, 3)
	require.NotEqual(t, uint16(0x1100), got[0].L1, "contraction must not have matched")
}

func TestElementIterContractionRootFallsBackToSimpleMapping(t *testing.T) {
	// 'a' occupies a contraction-root bucket, but when nothing follows it
	// that could complete the contraction, it must still resolve to its
	// own ordinary simple mapping rather than an implicit weight
	// (condict_uca's resolve_cea_index: contraction IMPLICIT falls back
	// to lookup_simple_mapping).
	got := elements(cps('a', 'b'))
	require.Len(t, got, 2)
	require.Equal(t, uint16(0x100A), got[0].L1)
	require.Equal(t, uint16(0x100B), got[1].L1)
}

func TestElementIterNoMappingToZeroElements(t *testing.T) {
	// Every code point must produce at least one collation element
	// (spec.md §3 invariant).
	for _, cp := range []uint32{'a', 'A', ' ', 0xFFFE, 0x4E2D, 0x10FFFF} {
		got := elements(cps(cp))
		require.NotEmpty(t, got, "cp %#x produced zero elements", cp)
	}
}

func TestCJKCompatLookupTableBounds(t *testing.T) {
	require.True(t, isCJKCompatUnifiedIdeograph(0xFA0E))
	require.False(t, isCJKCompatUnifiedIdeograph(0xFA0F+1)) // FA10 is not Unified_Ideograph
	require.False(t, isCJKCompatUnifiedIdeograph(0xFA2A))
	require.False(t, isCJKCompatUnifiedIdeograph(0x0041))
	require.Len(t, ucadata.CJKCompatUnifiedIdeograph, 28)
}
