package cbor

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/mikhailwahib/sstable/internal/bytestream"
)

// ReadScalar is the polymorphic reader over the three supported kinds: it
// lets the SSTable reader stream K or V without a type parameter, by
// reading whichever major type the next head declares. A missing first
// byte propagates bytestream.ErrEndOfStream unchanged so the caller can
// treat it as a clean end of iteration; everything else is ErrFraming.
func ReadScalar(r byteReader) (Scalar, error) {
	major, n, err := readHead(r)
	if err != nil {
		return Scalar{}, err
	}

	switch major {
	case majorUint:
		return Scalar{Kind: KindUint64, U64: n}, nil
	case majorBytes:
		buf, err := bytestream.ReadSlice(r, int(n))
		if err != nil {
			return Scalar{}, fmt.Errorf("%w: reading byte-string payload: %v", ErrFraming, err)
		}
		return Scalar{Kind: KindBytes, Bytes: buf}, nil
	case majorText:
		buf, err := bytestream.ReadSlice(r, int(n))
		if err != nil {
			return Scalar{}, fmt.Errorf("%w: reading text payload: %v", ErrFraming, err)
		}
		if !utf8.Valid(buf) {
			return Scalar{}, fmt.Errorf("%w: invalid UTF-8 in text string", ErrFraming)
		}
		return Scalar{Kind: KindText, Text: string(buf)}, nil
	default:
		return Scalar{}, fmt.Errorf("%w: unsupported major type %d", ErrFraming, major>>5)
	}
}

// ReadUint64 reads exactly one major-0 item, failing with ErrFraming if
// the next item is a different major type. Used to decode the u64 offset
// field of an index entry, which is never mid-record when it appears
// (the preceding key scalar already consumed any clean end-of-stream).
func ReadUint64(r byteReader) (uint64, error) {
	s, err := ReadScalar(r)
	if err != nil {
		return 0, err
	}
	if s.Kind != KindUint64 {
		return 0, fmt.Errorf("%w: expected unsigned integer, got %s", ErrFraming, s.Kind)
	}
	return s.U64, nil
}

// Decode decodes a single scalar of the given kind from a complete,
// already-framed byte slice (no trailing bytes). It is a convenience
// wrapper over ReadScalar for callers holding an in-memory buffer rather
// than a stream.
func Decode(kind Kind, data []byte) (Scalar, error) {
	s, err := ReadScalar(bytes.NewReader(data))
	if err != nil {
		return Scalar{}, err
	}
	if s.Kind != kind {
		return Scalar{}, fmt.Errorf("%w: expected kind %s, got %s", ErrFraming, kind, s.Kind)
	}
	return s, nil
}
