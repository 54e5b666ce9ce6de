package bytestream

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Reader is a buffered, seekable reader over a single file. It supports
// both sequential streaming and random positioning: SeekTo repositions
// the underlying file and resets the buffer so the next read starts
// exactly at the new offset. It also tracks the stream's current byte
// offset, so callers (e.g. a dump command) can report where a record
// began without consulting a separate index.
type Reader struct {
	file   *os.File
	br     *bufio.Reader
	track  *trackingReader
	offset int64
}

// NewReader opens path for reading.
func NewReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bytestream: open %s: %w", path, err)
	}
	r := &Reader{file: f}
	r.track = &trackingReader{r: r}
	r.br = bufio.NewReader(r.track)
	return r, nil
}

// R returns the reader for sequential reads; every byte consumed through it
// advances Offset.
func (r *Reader) R() *bufio.Reader { return r.br }

// Offset returns the stream position of the next unread byte: the bytes
// pulled from the file so far, minus whatever bufio is still holding
// unconsumed in its buffer.
func (r *Reader) Offset() int64 { return r.offset - int64(r.br.Buffered()) }

// SeekTo repositions the reader at offset. No record-boundary validation
// is performed: the caller is responsible for offset having come from a
// valid index entry.
func (r *Reader) SeekTo(offset int64) error {
	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	r.br.Reset(r.track)
	r.offset = offset
	return nil
}

// Close closes the underlying file.
func (r *Reader) Close() error { return r.file.Close() }

// Path returns the file path this reader was opened from.
func (r *Reader) Path() string { return r.file.Name() }

// trackingReader counts bytes pulled from the underlying file into bufio's
// buffer. This is the fill position, not the consume position; Reader.Offset
// subtracts bufio's still-unconsumed buffer to recover the true stream
// position of the next unread byte.
type trackingReader struct {
	r *Reader
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.file.Read(p)
	t.r.offset += int64(n)
	return n, err
}
