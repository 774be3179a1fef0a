package wasm

import "encoding/binary"

// ComponentPreamble returns the 8-byte Component Model binary preamble:
// the magic number followed by the little-endian version field.
// The slice is freshly allocated on each call, so callers may modify it.
func ComponentPreamble() []byte {
	buf := make([]byte, PreambleSize)
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	binary.LittleEndian.PutUint32(buf[4:8], ComponentVersion)
	return buf
}
