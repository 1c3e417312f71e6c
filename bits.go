package louds

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// byteOrder is the byte order of every serialized word.
var byteOrder = binary.LittleEndian

// wordWriter writes fixed-width words and counts bytes. The first error is
// sticky; later writes are dropped.
type wordWriter struct {
	w   io.Writer
	n   int64
	err error
	buf [4]byte
}

func newWordWriter(w io.Writer) *wordWriter {
	return &wordWriter{w: w}
}

// Write lets nested encoders share the byte count and the sticky error.
func (w *wordWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	w.err = err
	return n, err
}

func (w *wordWriter) WriteWord(v uint32) {
	byteOrder.PutUint32(w.buf[:], v)
	w.WriteBytes(w.buf[:])
}

func (w *wordWriter) WriteWords(vs []uint32) {
	for _, v := range vs {
		w.WriteWord(v)
	}
}

func (w *wordWriter) WriteBytes(p []byte) {
	w.Write(p)
}

// wordReader reads fixed-width words, counting bytes consumed. A short
// read is reported as ErrCorrupt naming the field being read.
type wordReader struct {
	io.Reader
	n   int64
	buf [4]byte
}

func newWordReader(r io.Reader) *wordReader {
	return &wordReader{Reader: r}
}

func (r *wordReader) ReadWord(field string) (uint32, error) {
	if err := r.ReadBytes(r.buf[:], field); err != nil {
		return 0, err
	}
	return byteOrder.Uint32(r.buf[:]), nil
}

// ReadWords reads n words. The result grows as words arrive so a corrupt
// count fails on truncation before allocating for it.
func (r *wordReader) ReadWords(n uint32, field string) ([]uint32, error) {
	const chunk = 4096
	dst := make([]uint32, 0, min(n, chunk))
	for uint32(len(dst)) < n {
		v, err := r.ReadWord(field)
		if err != nil {
			return nil, err
		}
		dst = append(dst, v)
	}
	return dst, nil
}

func (r *wordReader) ReadBytes(p []byte, field string) error {
	n, err := io.ReadFull(r.Reader, p)
	r.n += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrCorrupt, "truncated %s after %d bytes", field, r.n)
	}
	return errors.Wrapf(err, "reading %s", field)
}
