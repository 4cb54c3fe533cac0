package uca

// weightBuf is one level's comparison state: two independent FIFO queues
// of non-zero weights (the "left"/"right" columns of spec.md §4.7's
// (left, right) pairs — zero weights are suppressed on each side rather
// than paired, since ignorable weights must shift later weights leftward
// independently per string), plus a sticky three-valued result latch.
type weightBuf struct {
	left, right ringBuffer[uint16]
	result      int
}

// push feeds one weight from each side into the buffer. Once a result is
// decided at this level, push is a no-op (short-circuit).
func (w *weightBuf) push(left, right uint16) {
	if w.result != 0 {
		return
	}
	if left != 0 {
		w.left.pushEnd(left)
	}
	if right != 0 {
		w.right.pushEnd(right)
	}
	if w.left.isEmpty() || w.right.isEmpty() {
		return
	}
	l, r := *w.left.at(0), *w.right.at(0)
	switch {
	case l < r:
		w.result = -1
	case l > r:
		w.result = 1
	default:
		w.left.popStart()
		w.right.popStart()
	}
}

// finalResult decides the level once both CEA streams are exhausted: any
// weight still queued on one side and not the other means that side had
// more non-ignorable content at this level, and therefore sorts later.
func (w *weightBuf) finalResult() int {
	if w.result != 0 {
		return w.result
	}
	if !w.left.isEmpty() && !w.right.isEmpty() {
		l, r := *w.left.at(0), *w.right.at(0)
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		default:
			return 0
		}
	}
	switch {
	case w.left.isEmpty() && w.right.isEmpty():
		return 0
	case w.left.isEmpty():
		return -1
	default:
		return 1
	}
}

// Compare performs UCA-only comparison of a and b: it returns 0 if the
// two strings are canonically equivalent or collate equal across all four
// levels, a negative value if a sorts before b, or a positive value
// otherwise. Unlike CompareTiebreak, a zero result here does not
// distinguish canonically equivalent strings from strings that merely
// collate equal.
func Compare(a, b []byte) int {
	ea := NewElementIter(a)
	eb := NewElementIter(b)
	var l1, l2, l3, l4 weightBuf

	for {
		ela, aOk := ea.Next()
		elb, bOk := eb.Next()
		if !aOk && !bOk {
			break
		}
		l1.push(ela.L1, elb.L1)
		if l1.result != 0 {
			return l1.result
		}
		l2.push(ela.L2, elb.L2)
		l3.push(ela.L3, elb.L3)
		l4.push(ela.L4, elb.L4)
	}

	if r := l1.finalResult(); r != 0 {
		return r
	}
	if r := l2.finalResult(); r != 0 {
		return r
	}
	if r := l3.finalResult(); r != 0 {
		return r
	}
	return l4.finalResult()
}

// CompareTiebreak calls Compare; on a zero result it additionally breaks
// ties between canonically inequivalent but collation-equal strings by
// comparing their raw NFD code point sequences (spec.md §4.8). It is the
// comparison most callers — including a database collation registration —
// want, since a zero result here means the strings are truly identical
// once normalized, not merely collation-equivalent.
func CompareTiebreak(a, b []byte) int {
	if r := Compare(a, b); r != 0 {
		return r
	}
	return tiebreak(a, b)
}

// tiebreak re-normalizes both inputs through fresh NfdIters — independent
// of any iterator used by Compare, which may have denormalized its
// internal buffer during contraction resolution (spec.md §9) — and
// compares them lexicographically by code point, with the shorter
// sequence sorting first on early end of input.
func tiebreak(a, b []byte) int {
	na := NewNfdIter(a)
	nb := NewNfdIter(b)
	for {
		cpa, aOk := na.Next()
		cpb, bOk := nb.Next()
		switch {
		case !aOk && !bOk:
			return 0
		case !aOk:
			return -1
		case !bOk:
			return 1
		case cpa < cpb:
			return -1
		case cpa > cpb:
			return 1
		}
	}
}
