// Package fixture generates the minimal WebAssembly Component Model
// test fixture: an 8-byte file holding the binary preamble and nothing
// else. It gives loader tests a well-formed component header without
// shipping a compiler toolchain.
package fixture
