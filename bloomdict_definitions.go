package bloomdict

import "errors"

// Filter is a Bloom filter over arbitrary byte elements. A filter answers
// membership with "might be in the set" or "definitely not in the set";
// false negatives cannot occur. The zero value is not usable, construct
// with New or NewWithBits, or restore one with Load.
type Filter struct {
	// Bits holds the bit array packed into 64-bit words, bit 0 of word 0
	// being position 0. Only the low MBits positions are addressable.
	Bits  []uint64
	MBits uint64
	K     uint32
	// NInserted counts insert calls, not distinct members. Feed it to
	// EstimateFalsePositiveRate when every element was inserted once.
	NInserted uint64
}

var (
	ErrInvalidParameter = errors.New("bloomdict: expected count must be positive and target rate must be in (0, 1)")
	ErrBadMagic         = errors.New("bloomdict: bad magic, not a serialized filter")
	ErrBadVersion       = errors.New("bloomdict: unsupported serialization version")
	ErrInvalidFilter    = errors.New("bloomdict: serialized filter header is inconsistent")
)

const (
	// filterMagic and filterVersion open every serialized filter.
	filterMagic   = "BDF1"
	filterVersion = uint8(1)

	// headerBytes is the serialized header size: magic, version, k,
	// mBits, nInserted, word count.
	headerBytes = 4 + 1 + 4 + 8 + 8 + 4

	// maxMBits keeps the serialized word count inside its uint32 field.
	maxMBits = (1<<32 - 1) * 64
)
