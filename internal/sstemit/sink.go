// Package sstemit provides the abstract (k, v) sink consumed by the merge
// engine: either another SSTable or a textual key/value stream.
package sstemit

import "github.com/mikhailwahib/sstable/internal/cbor"

// Sink accepts and persists (k, v) records one at a time, synchronously.
// Emit returns an I/O error on failure; the caller (the merge engine)
// propagates it and abandons remaining input without rolling back records
// already emitted.
type Sink interface {
	Emit(k, v cbor.Scalar) error
}
