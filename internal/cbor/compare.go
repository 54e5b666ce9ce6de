package cbor

import "bytes"

// Compare implements CBOR canonical byte order (RFC 7049 §3.9) between
// two already-encoded scalars: the shorter encoding sorts first; ties of
// equal length fall back to lexicographic byte comparison of the
// encoded bytes. This is deliberately not the same as comparing the
// decoded values — a two-byte text head sorts after a one-byte one even
// though "00" < "5" lexicographically on the decoded string.
func Compare(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return bytes.Compare(a, b)
}

// NaturalCompare orders two scalars of the same kind by their decoded
// value: numeric for KindUint64, lexicographic byte/rune comparison for
// KindBytes/KindText. Scalars of different kinds are not comparable by
// this function; callers only ever natural-sort within one table, whose
// key kind is fixed.
func NaturalCompare(a, b Scalar) int {
	switch a.Kind {
	case KindUint64:
		switch {
		case a.U64 < b.U64:
			return -1
		case a.U64 > b.U64:
			return 1
		default:
			return 0
		}
	case KindBytes:
		return bytes.Compare(a.Bytes, b.Bytes)
	case KindText:
		return bytes.Compare([]byte(a.Text), []byte(b.Text))
	default:
		return 0
	}
}
