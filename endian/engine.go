// Package endian provides the byte order engines used by qoif.
//
// The qoif stream itself is always big-endian: header dimensions and the
// payload of RGBA literal chunks are written most significant byte first.
// Little-endian and native engines exist for reading raw pixel words produced
// by other tools.
//
// # Basic Usage
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, width)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/qoifgo/qoif/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() EndianEngine {
	// 0x0100 is 256; a big-endian host stores 0x01 at the lowest address.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine. It is the stream byte order.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ParseEngine resolves "big", "little" or "native" to an engine.
// Unknown names return ErrUnknownByteOrder.
func ParseEngine(name string) (EndianEngine, error) {
	switch name {
	case "big", "be":
		return binary.BigEndian, nil
	case "little", "le":
		return binary.LittleEndian, nil
	case "native":
		return CheckEndianness(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownByteOrder, name)
	}
}
