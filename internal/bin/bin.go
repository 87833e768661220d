// Package bin contains utilities for dealing with binary
// representations of fixed-width integers in the host's native byte
// order.
package bin

import (
	"encoding/binary"
	"io"
	"unsafe"
)

// order is the host byte order.
var order binary.ByteOrder = binary.LittleEndian

func init() {
	n := uint32(1)
	b := (*[4]byte)(unsafe.Pointer(&n))
	if b[0] == 0 {
		order = binary.BigEndian
	}
}

// Order returns the host byte order.
func Order() binary.ByteOrder {
	return order
}

// Put stores the low len(buf) bytes of v into buf in host byte order.
// len(buf) must be 1, 2, 4, or 8.
func Put(buf []byte, v uint64) {
	switch len(buf) {
	case 1:
		buf[0] = byte(v)
	case 2:
		order.PutUint16(buf, uint16(v))
	case 4:
		order.PutUint32(buf, uint32(v))
	case 8:
		order.PutUint64(buf, v)
	default:
		panic("bin: bad width")
	}
}

// Get reads a host-byte-order integer from buf. len(buf) must be 1,
// 2, 4, or 8.
func Get(buf []byte) uint64 {
	switch len(buf) {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(order.Uint16(buf))
	case 4:
		return uint64(order.Uint32(buf))
	case 8:
		return order.Uint64(buf)
	default:
		panic("bin: bad width")
	}
}

// Read reads exactly size bytes from r and decodes them in host byte
// order.
func Read(r io.Reader, size int) (uint64, error) {
	var data [8]byte
	_, err := io.ReadFull(r, data[:size])
	if err != nil {
		return 0, err
	}

	return Get(data[:size]), nil
}

// Write writes the low size bytes of v to w in host byte order.
func Write(w io.Writer, v uint64, size int) error {
	var data [8]byte
	Put(data[:size], v)
	n, err := w.Write(data[:size])
	if (err == nil) && (n < size) {
		return io.ErrShortWrite
	}
	return err
}
