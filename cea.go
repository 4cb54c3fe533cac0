package uca

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/go-uca/uca/internal/ucadata"
)

// Element is a single weighted collation element (spec.md §3): a 4-tuple
// of 16-bit weights. A weight of 0 is ignorable at that level.
type Element struct {
	L1, L2, L3, L4 uint16
}

// Implicit-weight bands (spec.md §4.6). Ranges are expressed as
// *unicode.RangeTable values and merged with rangetable.Merge so the
// disjoint "other unified ideograph" band — eight separate blocks — is
// checked with a single unicode.Is, the same idiom the stdlib's own
// Unicode range tables use for multi-block scripts.
func rangeTable(pairs ...rune) *unicode.RangeTable {
	lo, hi := pairs[0], pairs[1]
	return &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}},
	}
}

var (
	tangutRange = rangetable.Merge(
		rangeTable(0x17000, 0x18AFF),
		rangeTable(0x18D00, 0x18D8F),
	)
	nushuRange  = rangeTable(0x1B170, 0x1B2FF)
	khitanRange = rangeTable(0x18B00, 0x18CFF)
	cjkUnifiedRange = rangeTable(0x4E00, 0x9FFF)
	otherUnifiedIdeographRange = rangetable.Merge(
		rangeTable(0x3400, 0x4DBF),
		rangeTable(0x20000, 0x2A6DF),
		rangeTable(0x2A700, 0x2B739),
		rangeTable(0x2B740, 0x2B81D),
		rangeTable(0x2B820, 0x2CEA1),
		rangeTable(0x2CEB0, 0x2EBE0),
		rangeTable(0x30000, 0x3134A),
		rangeTable(0x31350, 0x323AF),
	)
)

const cjkCompatIdeographBase = 0xFA0E

func isCJKCompatUnifiedIdeograph(cp uint32) bool {
	if cp < cjkCompatIdeographBase || int(cp-cjkCompatIdeographBase) >= len(ucadata.CJKCompatUnifiedIdeograph) {
		return false
	}
	return ucadata.CJKCompatUnifiedIdeograph[cp-cjkCompatIdeographBase]
}

// implicitWeights computes the two collation elements for a code point
// with no explicit mapping (spec.md §4.6).
func implicitWeights(cp uint32) (Element, Element) {
	r := rune(cp)
	var aaaa, bbbb uint32

	switch {
	case unicode.Is(tangutRange, r):
		aaaa, bbbb = 0xFB00, cp-0x17000
	case unicode.Is(nushuRange, r):
		aaaa, bbbb = 0xFB01, cp-0x1B170
	case unicode.Is(khitanRange, r):
		aaaa, bbbb = 0xFB02, cp-0x18B00
	case unicode.Is(cjkUnifiedRange, r) || isCJKCompatUnifiedIdeograph(cp):
		aaaa, bbbb = 0xFB40+(cp>>15), cp&0x7FFF
	case unicode.Is(otherUnifiedIdeographRange, r):
		aaaa, bbbb = 0xFB80+(cp>>15), cp&0x7FFF
	default:
		aaaa, bbbb = 0xFBC0+(cp>>15), cp&0x7FFF
	}
	bbbb |= 0x8000

	return Element{L1: uint16(aaaa), L2: 0x0020, L3: 0x0002, L4: 0xFFFF},
		Element{L1: uint16(bbbb)}
}

// ElementIter wraps an NfdIter and yields four-level weighted collation
// elements, resolving simple mappings, contiguous and discontiguous
// contractions, implicit weights, and the Shifting variable-weight
// strategy (spec.md §4.6).
type ElementIter struct {
	nfd          NfdIter
	pending      ringBuffer[Element]
	lastVariable bool
}

// NewElementIter creates an ElementIter over the code points decoded and
// NFD-normalized from b.
func NewElementIter(b []byte) ElementIter {
	return ElementIter{nfd: NewNfdIter(b), pending: newRingBuffer[Element](4)}
}

// Next returns the next collation element and true, or (Element{}, false)
// at the end of the input.
func (e *ElementIter) Next() (Element, bool) {
	for e.pending.isEmpty() {
		if !e.fill() {
			return Element{}, false
		}
	}
	return e.pending.popStart(), true
}

// fill consumes one NFD code point — and, via contraction resolution, zero
// or more additional ones — and pushes the resulting collation element(s)
// onto the pending queue. It returns false only at end of input.
func (e *ElementIter) fill() bool {
	cp, ok := e.nfd.Next()
	if !ok {
		return false
	}

	idx := e.resolveMapping(cp)
	if idx.IsImplicit() {
		a, b := implicitWeights(cp)
		e.pending.pushEnd(a)
		e.pending.pushEnd(b)
		e.lastVariable = false
		return true
	}

	offset := idx.Idx()
	count := idx.Len()
	for i := uint32(0); i < count; i++ {
		var l1, l2, l3 uint16
		if idx.IsSimpleL1() {
			l1 = ucadata.CeaData[offset+i]
			l2, l3 = 0x0020, 0x0002
		} else {
			base := offset + i*3
			l1, l2, l3 = ucadata.CeaData[base], ucadata.CeaData[base+1], ucadata.CeaData[base+2]
		}
		e.pushElement(l1, l2, l3)
	}
	return true
}

// pushElement applies the Shifting variable-weight strategy to one raw
// (L1, L2, L3) table entry, appending the resulting element to the
// pending queue and updating lastVariable (spec.md §4.6).
func (e *ElementIter) pushElement(l1, l2, l3 uint16) {
	switch {
	case l1 >= 2 && l1 <= ucadata.HighestVar:
		e.pending.pushEnd(Element{L4: l1})
		e.lastVariable = true
	case e.lastVariable && l1 == 0 && l3 != 0:
		e.pending.pushEnd(Element{})
		e.lastVariable = false
	default:
		var l4 uint16
		if l3 != 0 {
			l4 = 0xFFFF
		}
		e.pending.pushEnd(Element{L1: l1, L2: l2, L3: l3, L4: l4})
		e.lastVariable = false
	}
}

// resolveMapping resolves cp's mapping: it first tries contraction
// resolution, falling back to cp's own simple mapping if no contraction
// matched (spec.md §4.6's resolve_cea_index — a contraction root bucket's
// own value is always IMPLICIT by construction, so a root-occupying code
// point with no matching continuation still gets its ordinary mapping,
// not an implicit weight).
func (e *ElementIter) resolveMapping(cp uint32) ucadata.CEAIndex {
	if v := e.resolveContraction(cp); !v.IsImplicit() {
		return v
	}
	return ucadata.LookupSimpleMapping(cp)
}

// resolveContraction performs contiguous and discontiguous contraction
// matching against the buffered NFD stream, returning the IMPLICIT
// sentinel if cp does not start a contraction or none of its
// continuations match. It may advance/denormalize the underlying NfdIter.
func (e *ElementIter) resolveContraction(cp uint32) ucadata.CEAIndex {
	root, ok := ucadata.HashFind(cp, ucadata.Contractions[:ucadata.ContractionsRootSize])
	if !ok {
		return ucadata.CEAIndex(0)
	}

	cur := root
	contigIdx := 0
	var bestValue ucadata.CEAIndex
	bestLen := 0

	// Contiguous phase.
	for cur.ContCount > 0 {
		contTable := ucadata.Contractions[cur.ContIdx : cur.ContIdx+uint32(cur.ContCount)]
		peekCp := e.nfd.Peek(contigIdx)
		b, hit := ucadata.HashFind(peekCp, contTable)
		if !hit {
			break
		}
		contigIdx++
		cur = b
		if v := ucadata.CEAIndex(b.Value); !v.IsImplicit() {
			bestValue, bestLen = v, contigIdx
		}
	}

	// Discontiguous phase: only continues if the contraction still has
	// continuations and the next code point is a non-starter.
	if cur.ContCount > 0 {
		discontigIdx := contigIdx
		prevCcc := ucadata.GetCCC(e.nfd.Peek(discontigIdx))
		if prevCcc != 0 {
			discontigIdx++
			for cur.ContCount > 0 {
				nextCp := e.nfd.Peek(discontigIdx)
				nextCcc := ucadata.GetCCC(nextCp)
				if nextCp == 0 || nextCcc == 0 {
					break
				}
				blocked := prevCcc >= nextCcc
				prevCcc = nextCcc
				if blocked {
					discontigIdx++
					continue
				}
				contTable := ucadata.Contractions[cur.ContIdx : cur.ContIdx+uint32(cur.ContCount)]
				b, hit := ucadata.HashFind(nextCp, contTable)
				if !hit {
					discontigIdx++
					continue
				}
				e.nfd.ShiftBackwards(discontigIdx, contigIdx)
				cur = b
				contigIdx++
				if v := ucadata.CEAIndex(b.Value); !v.IsImplicit() {
					bestValue, bestLen = v, contigIdx
				}
				prevCcc = ucadata.GetCCC(e.nfd.Peek(discontigIdx))
				discontigIdx++
			}
		}
	}

	if !bestValue.IsImplicit() {
		e.nfd.Skip(bestLen)
	}
	return bestValue
}
