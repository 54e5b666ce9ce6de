package cbor

import "errors"

// ErrFraming is the sentinel wrapped by every decode failure: an unknown
// or unsupported major type, a malformed head, invalid UTF-8 in a text
// payload, or a record that ends mid-flight. It is never returned for a
// clean end-of-stream at a record boundary — see bytestream.ErrEndOfStream
// for that case, which callers translate before it ever reaches here.
var ErrFraming = errors.New("cbor: framing error")
