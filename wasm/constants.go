package wasm

// WebAssembly binary preamble constants.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// ComponentVersion is the Component Model binary version field (10).
	ComponentVersion uint32 = 0x0A

	// PreambleSize is the byte length of the magic number plus version field.
	PreambleSize = 8
)
