package ucadata

import "testing"

func emptyBuckets(n int) []Bucket {
	b := make([]Bucket, n)
	for i := range b {
		b[i].Key = EmptyKey
	}
	return b
}

func TestHashFindEmptyTable(t *testing.T) {
	buckets := emptyBuckets(4)
	if _, ok := HashFind(0x61, buckets); ok {
		t.Fatalf("HashFind on empty table returned a hit")
	}
}

func TestHashFindDirectSlot(t *testing.T) {
	buckets := emptyBuckets(4)
	buckets[1] = Bucket{Key: 0x61, Value: 42}
	got, ok := HashFind(0x61, buckets)
	if !ok || got.Value != 42 {
		t.Fatalf("HashFind(0x61)=%v,%v want {Value:42},true", got, ok)
	}
}

func TestHashFindMiss(t *testing.T) {
	buckets := emptyBuckets(4)
	buckets[1] = Bucket{Key: 0x61, Value: 42}
	if _, ok := HashFind(0x62, buckets); ok {
		t.Fatalf("HashFind(0x62) on a table without it returned a hit")
	}
}

func TestHashFindCollisionChain(t *testing.T) {
	// 0x61 (97) and 0x65 (101) both land on index 1 of a 4-bucket table.
	// 0x61 is inserted first at its natural slot; 0x65 is chained two slots
	// forward to index 3, with 0x61's NextOffset recording the jump.
	buckets := emptyBuckets(4)
	buckets[1] = Bucket{Key: 0x61, NextOffset: 2, Value: 1}
	buckets[3] = Bucket{Key: 0x65, Value: 2}

	got, ok := HashFind(0x65, buckets)
	if !ok || got.Value != 2 {
		t.Fatalf("HashFind(0x65)=%v,%v want {Value:2},true", got, ok)
	}
	got, ok = HashFind(0x61, buckets)
	if !ok || got.Value != 1 {
		t.Fatalf("HashFind(0x61)=%v,%v want {Value:1},true", got, ok)
	}
}

func TestHashFindCollisionChainWraps(t *testing.T) {
	// A chain offset that runs past the end of the table wraps around.
	// 0x63 (99) and 0x67 (103) both land on index 3 of a 4-bucket table.
	buckets := emptyBuckets(4)
	buckets[3] = Bucket{Key: 0x63, NextOffset: 2, Value: 1} // 3 + 2 wraps to 1
	buckets[1] = Bucket{Key: 0x67, Value: 2}

	got, ok := HashFind(0x67, buckets)
	if !ok || got.Value != 2 {
		t.Fatalf("HashFind(0x67)=%v,%v want {Value:2},true", got, ok)
	}
}
