package uca

// ringBuffer is a small FIFO queue whose storage starts inline (on the
// struct itself, sized by inlineCap) and promotes to a heap-allocated
// slice, doubling in capacity, once it overflows. It backs the NFD
// lookahead buffer and the pending-element queue of the CEA stage: both
// need indexed access, a stable "skip" of the read cursor, and the ability
// to pop from the front and push at the back, all without allocating in
// the common case where a code point or a collation element sequence
// doesn't need to look more than a handful of items ahead.
//
// Growth always copies the buffer so it starts at index 0, matching the
// inline array it replaces; this keeps the indexing arithmetic in at()
// identical regardless of whether the buffer is still inline.
type ringBuffer[T any] struct {
	inline  [inlineCap]T
	initCap int
	heap    []T
	start   int
	length  int
}

// inlineCap is the largest inline capacity any ring buffer in this package
// needs (the NFD lookahead buffer and the weight comparator's per-level
// queues, spec.md §4.3/§4.7); buffers that need a smaller inline capacity
// (the CEA pending-element queue) set initCap and use a sub-slice of the
// same backing array, since Go generics cannot parameterize an array's
// length.
const inlineCap = 8

// newRingBuffer returns a ringBuffer whose inline capacity is initCap
// instead of the inlineCap default, before it first promotes to the heap.
func newRingBuffer[T any](initCap int) ringBuffer[T] {
	return ringBuffer[T]{initCap: initCap}
}

func (r *ringBuffer[T]) ownInlineCap() int {
	if r.initCap != 0 {
		return r.initCap
	}
	return inlineCap
}

func (r *ringBuffer[T]) capacity() int {
	if r.heap != nil {
		return len(r.heap)
	}
	return r.ownInlineCap()
}

func (r *ringBuffer[T]) slice() []T {
	if r.heap != nil {
		return r.heap
	}
	return r.inline[:r.ownInlineCap()]
}

func (r *ringBuffer[T]) isEmpty() bool { return r.length == 0 }

func (r *ringBuffer[T]) size() int { return r.length }

// at returns a pointer to the item i slots past the current start, where
// i == 0 is the next item that popStart would return.
func (r *ringBuffer[T]) at(i int) *T {
	buf := r.slice()
	return &buf[(r.start+i)%len(buf)]
}

// skip advances the read cursor past count already-buffered items. It is
// only safe to call when the buffer is known to hold at least that many
// items (typically because peek has already forced them to be read).
func (r *ringBuffer[T]) skip(count int) {
	r.start = (r.start + count) % r.capacity()
	r.length -= count
}

// shiftBackwards rotates the item at index `from` to index `to` (to <=
// from), shifting the intervening items forward by one. This is the
// operation the CEA stage uses to denormalize the NFD buffer when a
// discontiguous contraction match pulls a later non-starter forward
// (spec.md §4.2, §4.6 discontiguous phase).
func (r *ringBuffer[T]) shiftBackwards(from, to int) {
	buf := r.slice()
	cap := len(buf)
	fromIdx := (r.start + from) % cap
	toIdx := (r.start + to) % cap

	value := buf[fromIdx]
	for fromIdx != toIdx {
		prevIdx := (fromIdx + cap - 1) % cap
		buf[fromIdx] = buf[prevIdx]
		fromIdx = prevIdx
	}
	buf[toIdx] = value
}

func (r *ringBuffer[T]) popStart() T {
	buf := r.slice()
	i := r.start
	value := buf[i]
	r.start = (i + 1) % len(buf)
	r.length--
	return value
}

func (r *ringBuffer[T]) pushEnd(value T) {
	if r.length == r.capacity() {
		r.grow()
	}
	buf := r.slice()
	i := (r.start + r.length) % len(buf)
	buf[i] = value
	r.length++
}

// grow doubles capacity and reorients the buffer to start at index 0,
// exactly as the teacher's chunked encode buffer is sized once up front
// and this buffer's C++ ancestor (tiny_queue.h) doubles on overflow.
func (r *ringBuffer[T]) grow() {
	oldCap := r.capacity()
	newCap := oldCap * 2
	newBuf := make([]T, newCap)

	oldBuf := r.slice()
	if r.start == 0 {
		copy(newBuf, oldBuf)
	} else {
		n := copy(newBuf, oldBuf[r.start:])
		copy(newBuf[n:], oldBuf[:r.start])
	}

	r.start = 0
	r.heap = newBuf
}
