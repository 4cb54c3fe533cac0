package uca

import "github.com/go-uca/uca/internal/ucadata"

// hangulSBase, hangulLBase etc. are the arithmetic constants for Hangul
// syllable decomposition (Unicode 3.12.1): a syllable's index decomposes
// into an L (leading consonant), V (vowel), and optional T (trailing
// consonant) jamo by base-28/base-21 arithmetic.
const (
	hangulSBase = 0xAC00
	hangulSLast = 0xD7A3
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulTCount = 28
	hangulNCount = 21 * hangulTCount
)

func isHangulSyllable(cp uint32) bool {
	return cp >= hangulSBase && cp <= hangulSLast
}

// decomposeHangul returns the 2 or 3 jamo a Hangul syllable decomposes
// into; all three are starters, so no further non-starter handling is
// needed for them.
func decomposeHangul(cp uint32) []uint32 {
	sIndex := cp - hangulSBase
	l := hangulLBase + sIndex/hangulNCount
	v := hangulVBase + (sIndex%hangulNCount)/hangulTCount
	t := sIndex % hangulTCount
	if t == 0 {
		return []uint32{l, v}
	}
	return []uint32{l, v, hangulTBase + t}
}

// decompositionOf returns cp's fully pre-expanded canonical decomposition
// (just cp itself if it has none).
func decompositionOf(cp uint32) []uint32 {
	rec := ucadata.LookupCompData(cp)
	if rec.DecompLen == 0 {
		return []uint32{cp}
	}
	return ucadata.DecompData[rec.DecompIdx : uint32(rec.DecompIdx)+uint32(rec.DecompLen)]
}

// NfdIter wraps a CodePointIter and lazily yields code points in Canonical
// Decomposition form: non-starters are stable-sorted by Canonical
// Combining Class within each maximal run, and Hangul syllables are
// decomposed arithmetically (spec.md §4.2).
type NfdIter struct {
	inner CodePointIter
	buf   ringBuffer[uint32]

	// runOpen/runStart track the currently-open non-starter run within
	// buf, so pushSorted knows how far back it may insertion-sort.
	runOpen  bool
	runStart int
}

// NewNfdIter creates an NfdIter over the code points decoded from b.
func NewNfdIter(b []byte) NfdIter {
	return NfdIter{inner: NewCodePointIter(b)}
}

// Next returns the next NFD code point and true, or (0, false) at the end
// of the input.
func (n *NfdIter) Next() (uint32, bool) {
	if !n.ensure(0) {
		return 0, false
	}
	return n.buf.popStart(), true
}

// Peek returns the i-th upcoming NFD code point (0 is the next one Next
// would return) without consuming it, or 0 past the end of the input.
func (n *NfdIter) Peek(i int) uint32 {
	if !n.ensure(i) {
		return 0
	}
	return *n.buf.at(i)
}

// Skip discards count already-buffered code points. Only safe to call
// after a Peek has established that at least that many are buffered.
func (n *NfdIter) Skip(count int) {
	n.buf.skip(count)
}

// ShiftBackwards rotates the buffered item at index from to index to
// (to <= from), used by the CEA stage to denormalize the buffer during
// discontiguous contraction resolution (spec.md §4.6, §9).
func (n *NfdIter) ShiftBackwards(from, to int) {
	n.buf.shiftBackwards(from, to)
}

// ensure guarantees the buffer holds at least count+1 items, or that the
// input is exhausted. It returns false only when the buffer could not be
// grown to that size because the input ran out.
func (n *NfdIter) ensure(count int) bool {
	for n.buf.size() <= count {
		if !n.fill() {
			return false
		}
	}
	return true
}

// fill consumes one source code point (and its full decomposition), then,
// if that opened a non-starter run, keeps consuming subsequent source code
// points — by peek, without committing — for as long as they begin with a
// non-starter, sort-inserting each into the run. It stops at the first
// code point whose decomposition begins with a starter, or at end of
// input, leaving that code point unconsumed for the next call.
func (n *NfdIter) fill() bool {
	cp, ok := n.inner.Next()
	if !ok {
		return false
	}
	n.runOpen = false
	n.consume(cp)

	if !n.runOpen {
		return true
	}
	for {
		peekCp := n.inner.Peek()
		if peekCp == 0 {
			break
		}
		if isHangulSyllable(peekCp) {
			break
		}
		seq := decompositionOf(peekCp)
		if ucadata.GetCCC(seq[0]) == 0 {
			break
		}
		n.inner.skip()
		for _, c := range seq {
			n.pushSorted(c, ucadata.GetCCC(c))
		}
	}
	return true
}

// consume pushes one source code point's decomposition (or its Hangul
// jamo expansion) into the buffer.
func (n *NfdIter) consume(cp uint32) {
	if isHangulSyllable(cp) {
		for _, j := range decomposeHangul(cp) {
			n.pushSorted(j, 0)
		}
		return
	}
	for _, c := range decompositionOf(cp) {
		n.pushSorted(c, ucadata.GetCCC(c))
	}
}

// pushSorted appends cp to the buffer, opening a new non-starter run or
// insertion-sorting backwards (stable on equal CCC) within the currently
// open one, per the discipline in spec.md §4.2 step 3.
func (n *NfdIter) pushSorted(cp uint32, ccc uint8) {
	if ccc == 0 {
		n.buf.pushEnd(cp)
		n.runOpen = false
		return
	}
	if !n.runOpen {
		n.buf.pushEnd(cp)
		n.runOpen = true
		n.runStart = n.buf.size() - 1
		return
	}
	n.buf.pushEnd(cp)
	i := n.buf.size() - 1
	for i > n.runStart {
		prev := *n.buf.at(i - 1)
		if ucadata.GetCCC(prev) <= ccc {
			break
		}
		*n.buf.at(i) = prev
		i--
	}
	*n.buf.at(i) = cp
}
