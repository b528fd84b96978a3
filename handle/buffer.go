/*
 *  MIT License
 *
 *  Copyright (c) 2020 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

package handle

import (
	"bytes"
	"io"
	"sync/atomic"

	"github.com/nabbar/xopen/codec"
	"github.com/nabbar/xopen/ioutils/nopwritecloser"
)

// BufferWrapper is a Handle over an in-memory buffer; when a codec is
// layered, Close flushes the codec before Value() snapshots the
// underlying bytes, matching the donor's "buffer wrapper" semantics.
type BufferWrapper struct {
	*WrappedHandle

	raw    *bytes.Buffer
	codecW io.WriteCloser // non-nil when a compressing codec is layered
	closed atomic.Bool
}

// NewBuffer returns a BufferWrapper seeded with initial (nil or empty
// means a fresh buffer).
func NewBuffer(initial []byte, name, mode string) *BufferWrapper {
	raw := bytes.NewBuffer(append([]byte(nil), initial...))
	return &BufferWrapper{
		WrappedHandle: New(raw, name, mode),
		raw:           raw,
	}
}

// LayerCodec wraps subsequent Write calls with f's compressing writer at
// level; it must be called before any data is written through the
// wrapper's Write method, since compressed output is not seekable back
// into plain form.
func (b *BufferWrapper) LayerCodec(f codec.Format, level int) error {
	w, err := f.Writer(nopwritecloser.New(b.raw), level)
	if err != nil {
		return err
	}
	b.codecW = w
	b.WrappedHandle = New(struct {
		io.Reader
		io.Writer
	}{Reader: b.raw, Writer: w}, b.Name(), b.Mode())
	return nil
}

// Value returns the buffer's current contents. If a codec is layered,
// Close must be called first to flush it; calling Value before Close
// returns whatever has been flushed to the underlying buffer so far.
func (b *BufferWrapper) Value() []byte {
	return append([]byte(nil), b.raw.Bytes()...)
}

// Close flushes any layered codec before delegating to WrappedHandle's
// close (which fires CLOSE listeners and is itself idempotent).
func (b *BufferWrapper) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	if b.codecW != nil {
		if err := b.codecW.Close(); err != nil {
			return err
		}
	}
	return b.WrappedHandle.Close()
}
