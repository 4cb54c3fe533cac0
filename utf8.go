package uca

// Quick UTF-8 summary:
//
//	U+0000  to U+007F:   0xxxxxxx
//	U+0080  to U+07FF:   110xxxxx 10xxxxxx
//	U+0800  to U+FFFF:   1110xxxx 10xxxxxx 10xxxxxx
//	U+10000 to U+10FFFF: 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
//
// The shortest possible form must always be chosen; so-called overlong
// encodings are invalid, as are the surrogate code points U+D800-U+DFFF.
// Any invalid sequence is replaced by a single U+FFFD, consuming whatever
// prefix of it was successfully read.

const replacementChar = 0xFFFD

// firstByteLength is indexed by the top 5 bits of a lead byte and gives the
// expected length (in bytes) of the sequence it starts, or 0 if the byte
// can never start a valid sequence (a continuation byte, or one of the
// bit patterns UTF-8 never assigns).
var firstByteLength = [32]uint8{
	// 0xxxx(xxx) - ASCII byte, always a single-byte sequence.
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	// 10xxx(xxx) - continuation byte, invalid as a lead byte.
	0, 0, 0, 0, 0, 0, 0, 0,
	// 110xx(xxx) - 2-byte sequence.
	2, 2, 2, 2,
	// 1110x(xxx) - 3-byte sequence.
	3, 3,
	// 11110(xxx) - 4-byte sequence.
	4,
	// 11111(xxx) - invalid.
	0,
}

// minCodePoint gives the smallest code point that may legally be encoded
// in a sequence of the given length; anything below it is an overlong
// encoding.
var minCodePoint = [5]uint32{0, 0, 0x80, 0x800, 0x10000}

// scanNext decodes one code point starting at b[0] and returns it along
// with the number of bytes consumed. On any malformed input it returns
// replacementChar and the number of bytes of the malformed prefix that
// were consumed (at least 1).
func scanNext(b []byte) (cp uint32, consumed int) {
	length := firstByteLength[b[0]>>3]
	cp = uint32(b[0]) & (0xFF >> length)
	read := 1
	for read < int(length) && read < len(b) && b[read]&0xC0 == 0x80 {
		cp = (cp << 6) | uint32(b[read]&0x3F)
		read++
	}
	if read != int(length) ||
		cp < minCodePoint[length] ||
		cp&0xFFFFF800 == 0xD800 ||
		cp > 0x10FFFF {
		return replacementChar, read
	}
	return cp, read
}

// CodePointIter decodes a UTF-8 byte span into a stream of code points,
// substituting U+FFFD for any ill-formed sequence. It is the first stage
// of the collation pipeline (spec.md §4.1).
type CodePointIter struct {
	b   []byte
	pos int
}

// NewCodePointIter creates a CodePointIter over b. b is not copied and
// must not be mutated while the iterator is in use.
func NewCodePointIter(b []byte) CodePointIter {
	return CodePointIter{b: b}
}

// Next returns the next code point and true, or (0, false) at the end of
// the input.
func (it *CodePointIter) Next() (uint32, bool) {
	if it.pos == len(it.b) {
		return 0, false
	}
	cp, n := scanNext(it.b[it.pos:])
	it.pos += n
	return cp, true
}

// Peek returns the next code point without consuming it, or 0 at the end
// of the input.
func (it *CodePointIter) Peek() uint32 {
	if it.pos == len(it.b) {
		return 0
	}
	cp, _ := scanNext(it.b[it.pos:])
	return cp
}

// skip discards the next code point, if any.
func (it *CodePointIter) skip() {
	_, _ = it.Next()
}
