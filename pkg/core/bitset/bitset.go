// Package bitset provides a growable set of small non-negative integers.
package bitset

// BitSet stores membership one bit per value, 64 values per bucket.
type BitSet struct {
	buckets []uint64
}

// New creates a set able to hold values below capacity without growing.
func New(capacity uint32) *BitSet {
	return &BitSet{buckets: make([]uint64, (capacity>>6)+1)} // >> 6 == / 64
}

func (bs *BitSet) grow(n uint32) {
	needed := (n >> 6) + 1
	if uint32(len(bs.buckets)) < needed {
		buckets := make([]uint64, needed)
		copy(buckets, bs.buckets)
		bs.buckets = buckets
	}
}

// Add inserts n, growing the set if needed.
func (bs *BitSet) Add(n uint32) {
	b := n >> 6
	if b >= uint32(len(bs.buckets)) {
		bs.grow(n)
	}
	// n & 63 == n % 64
	bs.buckets[b] |= 1 << (n & 63)
}

// Remove deletes n. Removing an absent value is a no-op.
func (bs *BitSet) Remove(n uint32) {
	b := n >> 6
	if b >= uint32(len(bs.buckets)) {
		return
	}
	bs.buckets[b] &^= 1 << (n & 63)
}

// Has reports whether n is in the set. A nil set is empty.
func (bs *BitSet) Has(n uint32) bool {
	if bs == nil {
		return false
	}
	b := n >> 6
	if b >= uint32(len(bs.buckets)) {
		return false
	}
	return bs.buckets[b]&(1<<(n&63)) != 0
}

// Clear removes every value and keeps the storage.
func (bs *BitSet) Clear() {
	clear(bs.buckets)
}

// Count returns the number of values in the set.
func (bs *BitSet) Count() int {
	if bs == nil {
		return 0
	}
	total := 0
	for _, w := range bs.buckets {
		for ; w != 0; w &= w - 1 {
			total++
		}
	}
	return total
}
