package bytestream

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DefaultBufferSize is used when a caller does not specify a writer buffer size.
const DefaultBufferSize = 8 * 1024

// AppendWriter is a buffered writer over a file opened in append-create
// mode. It tracks its own logical offset rather than querying the file's
// OS-level position, because that position would otherwise lag behind
// bytes sitting in the bufio buffer.
type AppendWriter struct {
	file   *os.File
	bw     *bufio.Writer
	offset int64
}

// NewAppendWriter opens path for appending, creating it if necessary, and
// seeks to end-of-file immediately: append mode alone does not guarantee
// the cursor starts there on every platform, and the first Offset() call
// must reflect the true end of the file.
func NewAppendWriter(path string, bufSize int) (*AppendWriter, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("bytestream: open %s: %w", path, err)
	}

	pos, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("bytestream: seek %s: %w", path, err)
	}

	return &AppendWriter{
		file:   f,
		bw:     bufio.NewWriterSize(f, bufSize),
		offset: pos,
	}, nil
}

// Write implements io.Writer, advancing the tracked offset by the number
// of bytes actually buffered.
func (w *AppendWriter) Write(p []byte) (int, error) {
	n, err := w.bw.Write(p)
	w.offset += int64(n)
	return n, err
}

// Offset returns the logical end-of-stream position: the byte offset the
// next Write call will land at.
func (w *AppendWriter) Offset() int64 { return w.offset }

// Flush flushes buffered bytes to the underlying file.
func (w *AppendWriter) Flush() error { return w.bw.Flush() }

// Sync flushes then fsyncs the underlying file.
func (w *AppendWriter) Sync() error {
	if err := w.bw.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close flushes and closes the underlying file. Closing without a prior
// Flush/Sync still flushes buffered bytes, so no data queued in the
// bufio.Writer is lost on Close specifically — only an abandoned writer
// that is never closed loses its buffered tail.
func (w *AppendWriter) Close() error {
	ferr := w.bw.Flush()
	cerr := w.file.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}

// File returns the path and underlying *os.File, for callers that need to
// reopen or rename after the writer is done with them.
func (w *AppendWriter) File() (string, *os.File) { return w.file.Name(), w.file }
