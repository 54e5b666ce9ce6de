package cbor

import (
	"encoding/binary"
	"fmt"

	"github.com/mikhailwahib/sstable/internal/bytestream"
)

// Major types, stored in the top three bits of the initial byte.
const (
	majorUint  byte = 0 << 5
	majorBytes byte = 2 << 5
	majorText  byte = 3 << 5
)

const majorMask = 0xE0
const addInfoMask = 0x1F

// Additional-info size tags: values 0-23 are embedded directly; 24-27
// mean the length/value follows in 1, 2, 4, or 8 big-endian bytes.
const (
	addInfoEmbeddedMax = 23
	addInfoU8          = 24
	addInfoU16         = 25
	addInfoU32         = 26
	addInfoU64         = 27
)

// headBytes returns the minimal CBOR head for (major, n): smallest size
// class that fits, per RFC 7049 §3.9's deterministic encoding rule.
func headBytes(major byte, n uint64) []byte {
	switch {
	case n <= addInfoEmbeddedMax:
		return []byte{major | byte(n)}
	case n <= 0xFF:
		return []byte{major | addInfoU8, byte(n)}
	case n <= 0xFFFF:
		buf := make([]byte, 3)
		buf[0] = major | addInfoU16
		binary.BigEndian.PutUint16(buf[1:], uint16(n))
		return buf
	case n <= 0xFFFFFFFF:
		buf := make([]byte, 5)
		buf[0] = major | addInfoU32
		binary.BigEndian.PutUint32(buf[1:], uint32(n))
		return buf
	default:
		buf := make([]byte, 9)
		buf[0] = major | addInfoU64
		binary.BigEndian.PutUint64(buf[1:], n)
		return buf
	}
}

// readHead reads one CBOR head from r, returning the major type and the
// decoded length/value. A missing first byte is ErrEndOfStream (a clean
// record boundary); any failure reading continuation bytes is mid-record
// and is reported as ErrFraming.
func readHead(r byteReader) (major byte, n uint64, err error) {
	first, err := bytestream.ReadByte(r)
	if err != nil {
		return 0, 0, err
	}

	major = first & majorMask
	addInfo := first & addInfoMask

	switch {
	case addInfo <= addInfoEmbeddedMax:
		return major, uint64(addInfo), nil
	case addInfo == addInfoU8:
		b, err := bytestream.ReadArray1(r)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: reading u8 length: %v", ErrFraming, err)
		}
		return major, uint64(b[0]), nil
	case addInfo == addInfoU16:
		b, err := bytestream.ReadArray2(r)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: reading u16 length: %v", ErrFraming, err)
		}
		return major, uint64(binary.BigEndian.Uint16(b[:])), nil
	case addInfo == addInfoU32:
		b, err := bytestream.ReadArray4(r)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: reading u32 length: %v", ErrFraming, err)
		}
		return major, uint64(binary.BigEndian.Uint32(b[:])), nil
	case addInfo == addInfoU64:
		b, err := bytestream.ReadArray8(r)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: reading u64 length: %v", ErrFraming, err)
		}
		return major, binary.BigEndian.Uint64(b[:]), nil
	default:
		return 0, 0, fmt.Errorf("%w: invalid additional info %d", ErrFraming, addInfo)
	}
}

// byteReader is the minimal interface readHead and the payload readers
// need; *bufio.Reader, *bytes.Reader, and bytestream.Reader.R() all
// satisfy it.
type byteReader interface {
	Read(p []byte) (int, error)
}
