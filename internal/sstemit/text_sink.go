package sstemit

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/mikhailwahib/sstable/internal/cbor"
)

// TextSink formats records as "key<TAB>value<LF>" to a buffered writer
// over w. Each side is formatted by its own kind: text as-is, unsigned
// integers in decimal, byte strings hex-encoded; a text key with a
// byte-string value prints as "key<TAB>hex(value)<LF>".
type TextSink struct {
	bw *bufio.Writer
}

// NewTextSink wraps w in a buffered writer.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{bw: bufio.NewWriter(w)}
}

// Emit writes one formatted line.
func (s *TextSink) Emit(k, v cbor.Scalar) error {
	if _, err := fmt.Fprintf(s.bw, "%s\t%s\n", formatScalar(k), formatScalar(v)); err != nil {
		return fmt.Errorf("sstemit: write record: %w", err)
	}
	return nil
}

// Flush flushes the buffered writer. Callers must call this after the last
// Emit to guarantee the output reaches w.
func (s *TextSink) Flush() error {
	if err := s.bw.Flush(); err != nil {
		return fmt.Errorf("sstemit: flush: %w", err)
	}
	return nil
}

func formatScalar(s cbor.Scalar) string {
	switch s.Kind {
	case cbor.KindBytes:
		return hex.EncodeToString(s.Bytes)
	case cbor.KindUint64:
		return strconv.FormatUint(s.U64, 10)
	case cbor.KindText:
		return s.Text
	default:
		return ""
	}
}
