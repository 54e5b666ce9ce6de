package sstemit

import (
	"github.com/mikhailwahib/sstable/internal/cbor"
	"github.com/mikhailwahib/sstable/internal/sstable"
)

// SSTableSink wraps a sstable.Writer so the merge engine can write its
// combined output to a new table.
type SSTableSink struct {
	w *sstable.Writer
}

// NewSSTableSink wraps w.
func NewSSTableSink(w *sstable.Writer) *SSTableSink {
	return &SSTableSink{w: w}
}

// Emit appends the record to the wrapped writer.
func (s *SSTableSink) Emit(k, v cbor.Scalar) error {
	return s.w.Append(k, v)
}
