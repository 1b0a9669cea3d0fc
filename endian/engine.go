// Package endian provides byte order utilities for the length prefixes of plain-encoded
// binary values.
//
// EndianEngine combines the standard library's ByteOrder and AppendByteOrder interfaces,
// so the same value can decode a prefix in place (Uint32) and append one while encoding
// (AppendUint32) without a scratch buffer.
//
// The plain encoding is defined as little-endian; the big-endian engine exists for
// interoperability tests and for producers that frame values with a different byte order.
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of the plain encoding.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine is the little-endian engine.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}
