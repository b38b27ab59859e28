package stream

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/localfs/errors"
)

// failingFile fails writes or close on demand.
type failingFile struct {
	writeErr error
	closeErr error
	closed   int
}

func (f *failingFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *failingFile) Close() error {
	f.closed++
	return f.closeErr
}

func TestWritable_WriteFlushClose(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(p)
	require.NoError(t, err)

	w := NewWritable(f, p, 0, 16)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)

	pos, err := w.Tell()
	require.NoError(t, err)
	require.Equal(t, int64(5), pos)

	// Still buffered.
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Empty(t, data)

	require.NoError(t, w.Flush())
	data, err = os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err = os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(data))
}

func TestWritable_TellStartsAtOffset(t *testing.T) {
	w := NewWritable(&failingFile{}, "f", 100, 16)
	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)

	pos, err := w.Tell()
	require.NoError(t, err)
	require.Equal(t, int64(103), pos)
}

func TestWritable_AfterClose(t *testing.T) {
	ff := &failingFile{}
	w := NewWritable(ff, "f", 0, 16)
	require.NoError(t, w.Close())
	require.Equal(t, 1, ff.closed)

	_, err := w.Write([]byte("x"))
	require.ErrorIs(t, err, fs.ErrClosed)

	require.ErrorIs(t, w.Flush(), fs.ErrClosed)

	_, err = w.Tell()
	require.ErrorIs(t, err, fs.ErrClosed)

	require.NoError(t, w.Close())
	require.Equal(t, 1, ff.closed)
}

func TestWritable_CloseReportsFlushFailure(t *testing.T) {
	ff := &failingFile{writeErr: stderrors.New("no space left on device"), closeErr: stderrors.New("close failed")}
	w := NewWritable(ff, "f", 0, 16)

	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)

	err = w.Close()
	require.True(t, errors.HasCode(err, errors.CodeIO))
	require.Contains(t, err.Error(), "no space left on device")
	require.Equal(t, 1, ff.closed)
}

func TestWritable_CloseReportsCloseFailure(t *testing.T) {
	ff := &failingFile{closeErr: stderrors.New("close failed")}
	w := NewWritable(ff, "f", 0, 16)

	err := w.Close()
	require.True(t, errors.HasCode(err, errors.CodeIO))
	require.Contains(t, err.Error(), "close failed")
}

func TestWritable_LargeWriteBypassesBuffer(t *testing.T) {
	ff := &failingFile{writeErr: stderrors.New("disk error")}
	w := NewWritable(ff, "f", 0, 4)

	_, err := w.Write([]byte("larger than the buffer"))
	require.True(t, errors.HasCode(err, errors.CodeIO))
}
