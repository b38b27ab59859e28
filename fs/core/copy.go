package core

import (
	"io"
)

// DefaultCopyChunkSize is the buffer size CopyStream uses when none is given.
const DefaultCopyChunkSize = 1 << 20

// CopyStream copies src to dst through a buffer of chunkSize bytes and
// returns the number of bytes copied. A chunkSize <= 0 selects
// DefaultCopyChunkSize.
//
// CopyStream neither flushes nor closes either side; callers own both
// streams and must close them, surfacing close-time failures.
//
// Example:
//
//	in, err := filesystem.OpenInputStream(src)
//	...
//	out, err := filesystem.OpenOutputStream(dst)
//	...
//	if _, err := core.CopyStream(out, in, 0); err != nil {
//	    return err
//	}
func CopyStream(dst io.Writer, src io.Reader, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultCopyChunkSize
	}
	buf := make([]byte, chunkSize)

	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			m, writeErr := dst.Write(buf[:n])
			written += int64(m)
			if writeErr != nil {
				return written, writeErr
			}
			if m != n {
				return written, io.ErrShortWrite
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
