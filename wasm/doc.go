// Package wasm holds the WebAssembly binary preamble constants used by
// the fixture generator.
//
// Every WebAssembly binary starts with the magic number "\0asm"
// followed by a 4-byte little-endian version field. Core modules carry
// version 1 in that field; Component Model binaries carry version 10.
package wasm
