package enum

import (
	"fmt"
	"math/bits"
)

// Storage is the fixed-width integer representation backing an
// enumeration type. It determines the exact number of bytes, and the
// signedness, used when encoding and decoding values.
type Storage uint8

const (
	// Long is the platform-native signed integer. It is the default
	// storage for a Type that doesn't specify one. Its width depends
	// on the target platform, so use one of the fixed-width storages
	// when an exact cross-platform layout is required.
	Long Storage = iota

	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
)

// Size returns the width of s in bytes.
func (s Storage) Size() int {
	switch s {
	case Long:
		return bits.UintSize / 8
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32:
		return 4
	case Int64, Uint64:
		return 8
	default:
		panic(fmt.Sprintf("invalid storage: %d", s))
	}
}

// Signed reports whether s is a signed representation.
func (s Storage) Signed() bool {
	switch s {
	case Long, Int8, Int16, Int32, Int64:
		return true
	case Uint8, Uint16, Uint32, Uint64:
		return false
	default:
		panic(fmt.Sprintf("invalid storage: %d", s))
	}
}

func (s Storage) String() string {
	switch s {
	case Long:
		return "long"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	default:
		return fmt.Sprintf("Storage(%d)", uint8(s))
	}
}

// ParseStorage returns the Storage named by v, as produced by
// Storage.String. The empty string parses as Long.
func ParseStorage(v string) (Storage, error) {
	switch v {
	case "", "long":
		return Long, nil
	case "int8":
		return Int8, nil
	case "uint8":
		return Uint8, nil
	case "int16":
		return Int16, nil
	case "uint16":
		return Uint16, nil
	case "int32":
		return Int32, nil
	case "uint32":
		return Uint32, nil
	case "int64":
		return Int64, nil
	case "uint64":
		return Uint64, nil
	default:
		return Long, fmt.Errorf("unknown storage type: %q", v)
	}
}

// extend reinterprets raw, the low Size() bytes read from a buffer,
// as a value of s. Signed storages sign-extend, unsigned ones
// zero-extend.
func (s Storage) extend(raw uint64) int64 {
	shift := 64 - 8*s.Size()
	if s.Signed() {
		return int64(raw<<shift) >> shift
	}
	return int64(raw << shift >> shift)
}
