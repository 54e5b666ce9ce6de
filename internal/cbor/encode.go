package cbor

// EncodeUint64 encodes v as a CBOR major-0 item with minimal head sizing.
func EncodeUint64(v uint64) []byte {
	return headBytes(majorUint, v)
}

// EncodeBytes encodes b as a CBOR major-2 item.
func EncodeBytes(b []byte) []byte {
	head := headBytes(majorBytes, uint64(len(b)))
	return append(head, b...)
}

// EncodeText encodes s as a CBOR major-3 item. s must be valid UTF-8;
// callers that build Scalar values from external data should validate
// before encoding.
func EncodeText(s string) []byte {
	head := headBytes(majorText, uint64(len(s)))
	return append(head, s...)
}

// Encode is the polymorphic writer over the three supported kinds: it
// lets the SSTable writer emit a record without knowing K or V
// concretely.
func Encode(s Scalar) []byte {
	switch s.Kind {
	case KindUint64:
		return EncodeUint64(s.U64)
	case KindBytes:
		return EncodeBytes(s.Bytes)
	case KindText:
		return EncodeText(s.Text)
	default:
		panic("cbor: encode of unset Scalar kind")
	}
}
