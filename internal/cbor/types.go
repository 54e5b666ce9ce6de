// Package cbor implements the RFC 7049 subset this library needs: major
// types 0 (unsigned integer), 2 (byte string), and 3 (text string), with
// minimal head encoding and the canonical byte ordering that subset
// induces. It is the wire format for both the data and index files and
// the comparator the merge engine and index search are built on.
//
// Naming for the major-type and additional-info constants follows the
// CBOR spec's own terms (major type, additional information) rather than
// inventing new vocabulary.
package cbor

// Kind identifies which of the three supported CBOR scalar shapes a
// Scalar holds. The set is closed at three by design: a tagged union
// threaded through the writer and reader keeps those components from
// needing to know about K or V concretely, without the overhead of a
// generic or an interface-per-kind hierarchy.
type Kind int

const (
	// KindUint64 is CBOR major type 0: an unsigned integer up to 2^64-1.
	KindUint64 Kind = iota
	// KindBytes is CBOR major type 2: an opaque byte string.
	KindBytes
	// KindText is CBOR major type 3: a UTF-8 text string.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindUint64:
		return "uint64"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Scalar is one CBOR-encodable value of one of the three supported
// kinds. Only the field matching Kind is meaningful.
type Scalar struct {
	Kind  Kind
	U64   uint64
	Bytes []byte
	Text  string
}

// NewUint64 builds a Scalar of kind KindUint64.
func NewUint64(v uint64) Scalar { return Scalar{Kind: KindUint64, U64: v} }

// NewBytes builds a Scalar of kind KindBytes.
func NewBytes(b []byte) Scalar { return Scalar{Kind: KindBytes, Bytes: b} }

// NewText builds a Scalar of kind KindText.
func NewText(s string) Scalar { return Scalar{Kind: KindText, Text: s} }
