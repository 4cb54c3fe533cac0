package uca

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func nfdCodePoints(b []byte) []uint32 {
	it := NewNfdIter(b)
	var out []uint32
	for {
		cp, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, cp)
	}
}

// cps builds a UTF-8 byte slice from explicit code points, so tests never
// depend on how combining-mark literals happen to render in source.
func cps(points ...uint32) []byte {
	var out []byte
	for _, cp := range points {
		out = append(out, []byte(string(rune(cp)))...)
	}
	return out
}

func TestNfdPrecomposedMatchesDecomposed(t *testing.T) {
	precomposed := cps(0x00E9)        // é
	decomposed := cps('e', 0x0301)    // e + combining acute

	got := nfdCodePoints(precomposed)
	want := nfdCodePoints(decomposed)
	require.Equal(t, want, got, "canonically equivalent inputs must normalize identically (spec.md §8 property 3)")
	require.Equal(t, []uint32{'e', 0x0301}, got)
}

func TestNfdIdempotence(t *testing.T) {
	inputs := [][]byte{
		cps('c', 'a', 'f', 0x00E9),
		cps('a', 0x0301, 0x0316),
		cps('h', 'e', 'l', 'l', 'o'),
		cps(0x00E7, 'a'),
	}
	for _, in := range inputs {
		once := nfdCodePoints(in)
		twice := nfdCodePoints(cps(once...))
		require.Equal(t, once, twice, "NFD(NFD(s)) must equal NFD(s) for %v", in)
	}
}

func TestNfdNonStarterRunSortedByCCC(t *testing.T) {
	// U+0316 (ccc 220) typed after U+0301 (ccc 230) must be reordered
	// ahead of it.
	got := nfdCodePoints(cps('a', 0x0301, 0x0316))
	want := []uint32{'a', 0x0316, 0x0301}
	require.Equal(t, want, got)
}

func TestNfdEqualCCCStable(t *testing.T) {
	// Two ccc-230 marks must preserve input order (stable sort).
	got := nfdCodePoints(cps('a', 0x0301, 0x0300))
	want := []uint32{'a', 0x0301, 0x0300}
	require.Equal(t, want, got)
}

func TestNfdHangulDecomposition(t *testing.T) {
	got := nfdCodePoints(cps(0xAC00)) // 가 = LV syllable, L=0x1100 V=0x1161
	want := []uint32{0x1100, 0x1161}
	require.Equal(t, want, got)
}

func TestNfdPrecomposedDecomposesThenReorders(t *testing.T) {
	// ç (U+00E7) decomposes to c + cedilla (ccc 202); a trailing typed
	// acute (ccc 230) must sort after it, not before.
	got := nfdCodePoints(cps(0x00E7, 0x0301))
	want := []uint32{'c', 0x0327, 0x0301}
	require.Equal(t, want, got)
}

func TestNfdPeekShiftBackwards(t *testing.T) {
	it := NewNfdIter(cps('a', 0x0327, 0x0301)) // a + cedilla(202) + acute(230), already in CCC order
	require.Equal(t, uint32('a'), it.Peek(0))
	require.Equal(t, uint32(0x0327), it.Peek(1))
	require.Equal(t, uint32(0x0301), it.Peek(2))

	it.ShiftBackwards(2, 1)
	require.Equal(t, uint32('a'), it.Peek(0))
	require.Equal(t, uint32(0x0301), it.Peek(1))
	require.Equal(t, uint32(0x0327), it.Peek(2))
}
