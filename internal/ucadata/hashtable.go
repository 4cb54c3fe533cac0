package ucadata

// Bucket is one slot of an open-addressing hash table keyed by code point,
// used for the contraction trie (spec.md §4.5). EmptyKey marks an unused
// bucket; NextOffset chains colliding entries by signed displacement from
// this bucket's own index, wrapping around the table. ContCount/ContIdx
// point at a continuation sub-table for contractions that extend past this
// code point, and Value is the CEA index for the sequence ending here (or
// 0, meaning "no mapping of its own", for a prefix that only exists to
// lead into a longer contraction).
type Bucket struct {
	Key        uint32
	NextOffset int16
	ContCount  uint16
	ContIdx    uint32
	Value      uint32
}

// EmptyKey marks an unused bucket. No valid UTF-8 code point can ever equal
// it, so it doubles as a sentinel with no extra "is this empty" field.
const EmptyKey = 0xFFFFFFFF

// HashFind looks up cp among buckets, following the collision chain
// recorded in NextOffset. It returns the matching bucket and true, or a
// zero Bucket and false.
//
// This is re-entrant: the same function walks both the root contraction
// table and any continuation sub-table reached through a bucket's
// ContIdx/ContCount, by passing a different slice each time.
func HashFind(cp uint32, buckets []Bucket) (Bucket, bool) {
	bucketCount := uint32(len(buckets))
	index := cp % bucketCount
	for {
		b := buckets[index]
		if b.Key == cp {
			return b, true
		}
		if b.NextOffset == 0 {
			return Bucket{}, false
		}
		index = uint32(int64(index)+int64(b.NextOffset)+int64(bucketCount)) % bucketCount
	}
}
