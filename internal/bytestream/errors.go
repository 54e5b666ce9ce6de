// Package bytestream provides the minimal buffered read/write primitives
// the rest of the library is built on: single-byte, fixed-array, and
// length-prefixed reads over a buffered source, plus an append-mode
// writer that tracks its own stream offset.
package bytestream

import "errors"

// ErrEndOfStream signals that a read was attempted at a clean record
// boundary and zero bytes were available. Callers translate this into
// "no more records" rather than propagating it as a failure; any other
// error from this package means the stream ended (or failed) partway
// through a record and is fatal for the caller.
var ErrEndOfStream = errors.New("bytestream: end of stream")
