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

package codec

import (
	"bytes"
	"io"
	"sync/atomic"

	"github.com/nabbar/xopen/ioutils/nopwritecloser"
)

// chunkSize is the internal buffering quantum used by streamCompressor
// while adapting a write-oriented codec library into a pull (io.Reader)
// interface.
const chunkSize = 64 * 1024

// NewStreamCompressor returns an io.ReadCloser that yields src's contents
// compressed under f, one buffered chunk at a time, without holding the
// whole stream in memory. Most codec libraries expose compression only
// as an io.Writer; this adapts that into something a caller can Read
// from directly (e.g. to feed an HTTP request body).
func NewStreamCompressor(f Format, src io.Reader, level int) (io.ReadCloser, error) {
	rc, ok := src.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(src)
	}

	buf := bytes.NewBuffer(nil)
	wrt, err := f.Writer(nopwritecloser.New(buf), level)
	if err != nil {
		return nil, err
	}

	return &streamCompressor{
		src: rc,
		wrt: wrt,
		buf: buf,
		eof: new(atomic.Bool),
	}, nil
}

type streamCompressor struct {
	src io.ReadCloser
	wrt io.WriteCloser
	buf *bytes.Buffer
	eof *atomic.Bool
}

func (s *streamCompressor) Read(p []byte) (int, error) {
	want := len(p)
	if want < chunkSize {
		want = chunkSize
	}

	if s.eof.Load() && s.buf.Len() == 0 {
		return 0, io.EOF
	}

	if s.buf.Len() < want && !s.eof.Load() {
		if err := s.fill(want); err != nil {
			return 0, err
		}
	}

	n, err := s.buf.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}

// fill pulls from src and pushes through wrt until buf holds at least
// size bytes or src is exhausted, in which case wrt and src are closed
// and eof is latched so subsequent Read calls drain buf then report EOF.
func (s *streamCompressor) fill(size int) error {
	chunk := make([]byte, chunkSize)

	for s.buf.Len() < size {
		n, rerr := s.src.Read(chunk)

		if n > 0 {
			if _, werr := s.wrt.Write(chunk[:n]); werr != nil {
				return werr
			}
		}

		if rerr == io.EOF {
			s.eof.Store(true)
			werr := s.wrt.Close()
			cerr := s.src.Close()
			if cerr != nil {
				return cerr
			}
			return werr
		}
		if rerr != nil {
			return rerr
		}
	}

	return nil
}

func (s *streamCompressor) Close() error {
	if s.eof.Swap(true) {
		return nil
	}
	return s.wrt.Close()
}

// NewStreamDecompressor is the pull-side counterpart: decompression
// libraries are already reader-oriented, so this is a thin pass-through
// to f.Reader kept here for API symmetry with NewStreamCompressor.
func NewStreamDecompressor(f Format, src io.Reader) (io.ReadCloser, error) {
	return f.Reader(src)
}
