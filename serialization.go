package bloomdict

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Save writes the filter to w in its portable binary layout: magic,
// version, k, bit count, insert count and word count, then the bit
// words. All integers are little endian.
func (f *Filter) Save(w io.Writer) error {
	if _, err := w.Write([]byte(filterMagic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, filterVersion); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.K); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.MBits); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.NInserted); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(f.Bits))); err != nil {
		return err
	}
	return writeWords(w, f.Bits)
}

// Load reads a filter written by Save, validating the header before
// the bit array is allocated.
func Load(r io.Reader) (*Filter, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != filterMagic {
		return nil, ErrBadMagic
	}
	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != filterVersion {
		return nil, ErrBadVersion
	}
	var (
		k         uint32
		mBits     uint64
		nInserted uint64
		words     uint32
	)
	if err := binary.Read(r, binary.LittleEndian, &k); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &mBits); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &nInserted); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &words); err != nil {
		return nil, err
	}
	if k == 0 || mBits == 0 || mBits > maxMBits || uint64(words) != (mBits+63)/64 {
		return nil, ErrInvalidFilter
	}
	f := &Filter{
		Bits:      make([]uint64, words),
		MBits:     mBits,
		K:         k,
		NInserted: nInserted,
	}
	if err := readWords(r, f.Bits); err != nil {
		return nil, err
	}
	// Insert never touches positions past mBits in the last word.
	if extra := uint64(words)*64 - mBits; extra != 0 {
		if f.Bits[words-1]>>(64-extra) != 0 {
			return nil, ErrInvalidFilter
		}
	}
	return f, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the Save
// layout.
func (f *Filter) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(headerBytes + 8*len(f.Bits))
	if err := f.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Trailing bytes
// after the bit array are rejected.
func (f *Filter) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	loaded, err := Load(r)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return ErrInvalidFilter
	}
	*f = *loaded
	return nil
}
