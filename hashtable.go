package unistr

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// NextPrime returns the smallest prime greater than or equal to n. It is
// used to size open-addressing tables.
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// pairTable maps pairs of code points to a code point. It is an
// open-addressing hash table with linear probing, sized to a prime at least
// twice the number of entries. Keys are never zero, so zero marks a free slot.
type pairTable struct {
	keys   []uint64
	values []rune
	count  int
}

func newPairTable(capacity int) *pairTable {
	size := NextPrime(2*capacity + 1)
	return &pairTable{
		keys:   make([]uint64, size),
		values: make([]rune, size),
	}
}

func pairKey(a, b rune) uint64 {
	return uint64(a)<<32 | uint64(uint32(b))
}

func (t *pairTable) slot(key uint64) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return int(xxh3.Hash(buf[:]) % uint64(len(t.keys)))
}

// insert adds or replaces the value of (a, b). The table never grows; it
// must have been created with sufficient capacity.
func (t *pairTable) insert(a, b, value rune) {
	key := pairKey(a, b)
	i := t.slot(key)
	for t.keys[i] != 0 && t.keys[i] != key {
		i = (i + 1) % len(t.keys)
	}
	if t.keys[i] == 0 {
		t.count++
	}
	t.keys[i] = key
	t.values[i] = value
}

// lookup returns the value of (a, b).
func (t *pairTable) lookup(a, b rune) (rune, bool) {
	key := pairKey(a, b)
	for i := t.slot(key); t.keys[i] != 0; i = (i + 1) % len(t.keys) {
		if t.keys[i] == key {
			return t.values[i], true
		}
	}
	return 0, false
}
