//go:build amd64 || 386 || arm || arm64 || ppc64le || mipsle || mips64le || mips64p32le || wasm

package bloomdict

import (
	"io"
	"unsafe"
)

// writeWords writes the bit array assuming a little endian system,
// using a direct byte copy for performance.
func writeWords(w io.Writer, words []uint64) error {
	if len(words) == 0 {
		return nil
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)
	_, err := w.Write(raw)
	return err
}

// readWords fills the bit array assuming a little endian system, using
// a direct byte copy for performance.
func readWords(r io.Reader, words []uint64) error {
	if len(words) == 0 {
		return nil
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)
	_, err := io.ReadFull(r, raw)
	return err
}
