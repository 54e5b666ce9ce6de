package bytestream

import (
	"errors"
	"io"
)

// ReadByte takes one byte from r. A read that finds the stream already
// exhausted is reported as ErrEndOfStream so callers can distinguish a
// clean record boundary from a truncated one.
func ReadByte(r io.Reader) (byte, error) {
	var buf [1]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return 0, ErrEndOfStream
		}
		return 0, err
	}
	return buf[0], nil
}

// ReadArray1 takes a fixed one-byte array from r. Used for CBOR head
// continuation bytes, where running out of input is always mid-record.
func ReadArray1(r io.Reader) ([1]byte, error) {
	var buf [1]byte
	_, err := io.ReadFull(r, buf[:])
	return buf, err
}

// ReadArray2 takes a fixed two-byte array from r.
func ReadArray2(r io.Reader) ([2]byte, error) {
	var buf [2]byte
	_, err := io.ReadFull(r, buf[:])
	return buf, err
}

// ReadArray4 takes a fixed four-byte array from r.
func ReadArray4(r io.Reader) ([4]byte, error) {
	var buf [4]byte
	_, err := io.ReadFull(r, buf[:])
	return buf, err
}

// ReadArray8 takes a fixed eight-byte array from r.
func ReadArray8(r io.Reader) ([8]byte, error) {
	var buf [8]byte
	_, err := io.ReadFull(r, buf[:])
	return buf, err
}

// ReadSlice takes a heap-allocated slice of n bytes from r. Used for the
// byte/text payload of a CBOR item once its length is known.
func ReadSlice(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
