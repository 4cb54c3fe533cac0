package ucadata

// This file is the hand-authored seed data for the tables build.go
// assembles at package init time. It is a small, internally consistent
// representative slice of the UCD and the CLDR root (allkeys.txt),
// covering ASCII letters and digits, a handful of Latin-1 precomposed
// letters and their combining-mark decompositions, ASCII space and
// punctuation (as variable-weight entries), the U+FFFE CLDR-reserved
// non-variable exception, and one illustrative contraction exercising
// both the contiguous and discontiguous resolution phases. It is not a
// full UCD/CLDR extract — see DESIGN.md for exactly what's covered and
// why a full table isn't bundled.
//
// Every value below is a real Unicode property (CCC values, decomposition
// mappings, the FFFE exception) even though the set of code points
// covered is small.

// compEntry is one hand-authored composition fact: either a non-zero CCC
// (a combining mark) or a two-code-point canonical decomposition (a
// precomposed letter), never both for the entries used here.
type compEntry struct {
	cp     uint32
	ccc    uint8
	decomp []uint32
}

var compSeed = []compEntry{
	// Combining marks, by real CCC (DerivedCombiningClass.txt).
	{cp: 0x0300, ccc: 230}, // COMBINING GRAVE ACCENT
	{cp: 0x0301, ccc: 230}, // COMBINING ACUTE ACCENT
	{cp: 0x0303, ccc: 230}, // COMBINING TILDE
	{cp: 0x0308, ccc: 230}, // COMBINING DIAERESIS
	{cp: 0x030A, ccc: 230}, // COMBINING RING ABOVE
	{cp: 0x0316, ccc: 220}, // COMBINING GRAVE ACCENT BELOW
	{cp: 0x0327, ccc: 202}, // COMBINING CEDILLA

	// Precomposed Latin-1 letters (UnicodeData.txt canonical decompositions).
	{cp: 0x00C0, decomp: []uint32{0x41, 0x0300}}, // À
	{cp: 0x00C9, decomp: []uint32{0x45, 0x0301}}, // É
	{cp: 0x00E0, decomp: []uint32{0x61, 0x0300}}, // à
	{cp: 0x00E1, decomp: []uint32{0x61, 0x0301}}, // á
	{cp: 0x00E7, decomp: []uint32{0x63, 0x0327}}, // ç
	{cp: 0x00E8, decomp: []uint32{0x65, 0x0300}}, // è
	{cp: 0x00E9, decomp: []uint32{0x65, 0x0301}}, // é
	{cp: 0x00F1, decomp: []uint32{0x6E, 0x0303}}, // ñ
	{cp: 0x00FC, decomp: []uint32{0x75, 0x0308}}, // ü
}

// ceaSimpleSeed lists code points whose mapping is exactly (L1, 0x0020,
// 0x0002) and so can use the compact IsSimpleL1 encoding: ASCII lowercase
// letters and digits. Primary weights are assigned in code point order
// starting at 0x1000, well clear of the variable-weight band and of the
// implicit-weight range computed by the pipeline for unmapped code
// points, mirroring how CLDR root assigns contiguous primary weights to
// the Latin script block.
type ceaSimpleEntry struct {
	cp uint32
	l1 uint16
}

var ceaSimpleSeed = func() []ceaSimpleEntry {
	var out []ceaSimpleEntry
	w := uint16(0x1000)
	for cp := uint32('0'); cp <= '9'; cp++ {
		out = append(out, ceaSimpleEntry{cp: cp, l1: w})
		w++
	}
	for cp := uint32('a'); cp <= 'z'; cp++ {
		out = append(out, ceaSimpleEntry{cp: cp, l1: w})
		w++
	}
	return out
}()

// ceaWeights is one fully explicit (L1, L2, L3) collation element.
type ceaWeights struct{ l1, l2, l3 uint16 }

// ceaExplicitSeed lists code points needing an explicit weight triple:
// uppercase letters (same primary as their lowercase counterpart, case
// distinguished at the tertiary level), punctuation/space (variable
// primaries), combining marks (zero primary, distinguishing secondary),
// and the U+FFFE CLDR-reserved exception.
var ceaExplicitSeed = func() []struct {
	cp      uint32
	weights []ceaWeights
} {
	var out []struct {
		cp      uint32
		weights []ceaWeights
	}
	add := func(cp uint32, w ...ceaWeights) {
		out = append(out, struct {
			cp      uint32
			weights []ceaWeights
		}{cp: cp, weights: w})
	}

	// Uppercase letters share the lowercase primary band but sort after
	// their lowercase form at the tertiary level (real CLDR root behavior).
	wUpper := uint16(0x100A)
	for cp := uint32('A'); cp <= 'Z'; cp++ {
		add(cp, ceaWeights{l1: wUpper, l2: 0x0020, l3: 0x0008})
		wUpper++
	}

	// Variable-weight punctuation/space: small primaries, all <= HighestVar.
	add(' ', ceaWeights{l1: 0x0209, l2: 0x0020, l3: 0x0002})
	add('.', ceaWeights{l1: 0x0230, l2: 0x0020, l3: 0x0002})
	add(',', ceaWeights{l1: 0x0231, l2: 0x0020, l3: 0x0002})
	add('-', ceaWeights{l1: 0x0202, l2: 0x0020, l3: 0x0002})

	// Combining marks: zero primary (ignorable unless preceded by a
	// variable, per the Shifting strategy), distinguishing secondary.
	add(0x0300, ceaWeights{l1: 0, l2: 0x0024, l3: 0x0002})
	add(0x0301, ceaWeights{l1: 0, l2: 0x0025, l3: 0x0002})
	add(0x0303, ceaWeights{l1: 0, l2: 0x0026, l3: 0x0002})
	add(0x0308, ceaWeights{l1: 0, l2: 0x0027, l3: 0x0002})
	add(0x030A, ceaWeights{l1: 0, l2: 0x0028, l3: 0x0002})
	add(0x0316, ceaWeights{l1: 0, l2: 0x0029, l3: 0x0002})
	add(0x0327, ceaWeights{l1: 0, l2: 0x002A, l3: 0x0002})

	// U+FFFE: CLDR root gives this reserved code point a minimal primary
	// weight (0x0001), below the variable-weight floor of 2, so it is the one
	// code point in the variable-weight primary range that Shifting
	// nonetheless treats as non-variable (spec.md §4.6).
	add(0xFFFE, ceaWeights{l1: 0x0001, l2: 0x0020, l3: 0x0002})

	return out
}()

// contractionSeed describes the single illustrative multi-code-point
// contraction bundled here: the two-element sequence U+0061 LATIN SMALL
// LETTER A, U+0301 COMBINING ACUTE ACCENT maps to a primary weight
// distinct from plain "a" followed by a separately-weighted accent. This
// is not drawn from the real CLDR root (which maps à/á via their
// precomposed or canonically-decomposed form, not a contraction); it
// exists purely to exercise the contraction hash table's contiguous and
// discontiguous resolution phases end to end. See DESIGN.md.
var contractionSeed = struct {
	root uint32
	cont uint32
	w    ceaWeights
}{root: 0x61, cont: 0x0301, w: ceaWeights{l1: 0x1100, l2: 0x0020, l3: 0x0002}}
