//go:build !amd64 && !386 && !arm && !arm64 && !ppc64le && !mipsle && !mips64le && !mips64p32le && !wasm

package bloomdict

import (
	"encoding/binary"
	"io"
)

// writeWords encodes the bit array explicitly in little endian, for
// platforms where the in-memory layout cannot be copied directly.
func writeWords(w io.Writer, words []uint64) error {
	return binary.Write(w, binary.LittleEndian, words)
}

// readWords decodes the bit array explicitly in little endian.
func readWords(r io.Reader, words []uint64) error {
	return binary.Read(r, binary.LittleEndian, words)
}
