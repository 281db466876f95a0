package bloomdict

import (
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/cespare/xxhash"
)

func murmur64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

func mixsplit(key, seed uint64) uint64 {
	return murmur64(key + seed)
}

const (
	seedLo = 0x9E3779B97F4A7C15
	seedHi = 0xBF58476D1CE4E5B9
)

// hashPair derives the two base hashes for double hashing from a single
// xxhash pass over elem. h2 is forced nonzero so the k derived positions
// never collapse onto one bit.
func hashPair(elem []byte) (h1, h2 uint64) {
	base := xxhash.Sum64(elem)
	h1 = mixsplit(base, seedLo)
	h2 = mixsplit(base, seedHi)
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

// hashPairString is hashPair for a string, avoiding a copy of the word.
func hashPairString(word string) (h1, h2 uint64) {
	base := xxhash.Sum64String(word)
	h1 = mixsplit(base, seedLo)
	h2 = mixsplit(base, seedHi)
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

// New returns a filter sized for expectedCount elements at the target
// false positive rate, using the optimal m = -n*ln(p)/(ln 2)^2 bits and
// k = (m/n)*ln 2 hashes per element.
func New(expectedCount uint64, falsePositiveRate float64) (*Filter, error) {
	if expectedCount == 0 || !(falsePositiveRate > 0 && falsePositiveRate < 1) {
		return nil, ErrInvalidParameter
	}
	m := math.Ceil(-(float64(expectedCount) * math.Log(falsePositiveRate)) / (math.Ln2 * math.Ln2))
	if m > maxMBits {
		return nil, ErrInvalidParameter
	}
	mBits := uint64(m)
	return NewWithBits(mBits, optimalK(mBits, expectedCount))
}

// NewWithBits returns a filter with exactly mBits addressable bits and k
// hashes per element. Most callers want New.
func NewWithBits(mBits uint64, k uint32) (*Filter, error) {
	if mBits == 0 || mBits > maxMBits || k == 0 {
		return nil, ErrInvalidParameter
	}
	return &Filter{
		Bits:  make([]uint64, (mBits+63)/64),
		MBits: mBits,
		K:     k,
	}, nil
}

// optimalK returns the hash count minimizing the false positive rate for
// mBits bits and n elements, never less than one.
func optimalK(mBits, n uint64) uint32 {
	k := math.Round(float64(mBits) / float64(n) * math.Ln2)
	if k < 1 {
		return 1
	}
	return uint32(k)
}

// Insert adds elem to the set. Inserting the same element again sets no
// new bits and only advances NInserted.
func (f *Filter) Insert(elem []byte) {
	h1, h2 := hashPair(elem)
	for i := uint64(0); i < uint64(f.K); i++ {
		pos := (h1 + i*h2) % f.MBits
		f.Bits[pos>>6] |= 1 << (pos & 63)
	}
	f.NInserted++
}

// InsertString adds a word to the set.
func (f *Filter) InsertString(word string) {
	h1, h2 := hashPairString(word)
	for i := uint64(0); i < uint64(f.K); i++ {
		pos := (h1 + i*h2) % f.MBits
		f.Bits[pos>>6] |= 1 << (pos & 63)
	}
	f.NInserted++
}

// InsertAtomic adds elem to the set and is safe to call from concurrent
// goroutines. Bit sets are commutative, so any interleaving of inserts
// yields the same bit array as inserting sequentially.
func (f *Filter) InsertAtomic(elem []byte) {
	h1, h2 := hashPair(elem)
	for i := uint64(0); i < uint64(f.K); i++ {
		pos := (h1 + i*h2) % f.MBits
		atomic.OrUint64(&f.Bits[pos>>6], 1<<(pos&63))
	}
	atomic.AddUint64(&f.NInserted, 1)
}

// InsertAtomicString is InsertAtomic for a word.
func (f *Filter) InsertAtomicString(word string) {
	h1, h2 := hashPairString(word)
	for i := uint64(0); i < uint64(f.K); i++ {
		pos := (h1 + i*h2) % f.MBits
		atomic.OrUint64(&f.Bits[pos>>6], 1<<(pos&63))
	}
	atomic.AddUint64(&f.NInserted, 1)
}

// MightContain tells you whether elem might be in the set. A false
// result is definitive; a true result is wrong with probability close to
// the filter's false positive rate.
func (f *Filter) MightContain(elem []byte) bool {
	h1, h2 := hashPair(elem)
	for i := uint64(0); i < uint64(f.K); i++ {
		pos := (h1 + i*h2) % f.MBits
		if f.Bits[pos>>6]&(1<<(pos&63)) == 0 {
			return false
		}
	}
	return true
}

// MightContainString tells you whether a word might be in the set.
func (f *Filter) MightContainString(word string) bool {
	h1, h2 := hashPairString(word)
	for i := uint64(0); i < uint64(f.K); i++ {
		pos := (h1 + i*h2) % f.MBits
		if f.Bits[pos>>6]&(1<<(pos&63)) == 0 {
			return false
		}
	}
	return true
}

// EstimateFalsePositiveRate returns the expected false positive rate
// after n distinct elements, (1 - e^(-kn/m))^k.
func (f *Filter) EstimateFalsePositiveRate(n uint64) float64 {
	if n == 0 {
		return 0
	}
	kn := float64(f.K) * float64(n)
	return math.Pow(1-math.Exp(-kn/float64(f.MBits)), float64(f.K))
}

// FalsePositiveRate estimates the current false positive rate from the
// filter's own insert count.
func (f *Filter) FalsePositiveRate() float64 {
	return f.EstimateFalsePositiveRate(f.NInserted)
}

// PopCount returns the number of set bits.
func (f *Filter) PopCount() uint64 {
	var n uint64
	for _, w := range f.Bits {
		n += uint64(bits.OnesCount64(w))
	}
	return n
}
