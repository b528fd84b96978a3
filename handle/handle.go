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

// Package handle implements the lifecycle wrapper that sits between the
// root opener and whatever raw stream a source resolved to: forwarding
// the file API, exposing a line iterator with an optional progress hook,
// providing a best-effort peek, and firing CLOSE listeners exactly once.
// Grounded on the donor's ioutils.IOWrapper (read/write passthrough with
// optional per-call transforms) and ioutils/bufferReadCloser (buffered
// wrappers with a custom close function), generalised from "wrap an
// io.Reader/Writer" to the richer file-handle surface this spec needs.
package handle

import (
	"bufio"
	"io"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

// Handle is the file API a WrappedHandle forwards to its inner stream.
type Handle interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	Name() string
	Mode() string
	Closed() bool

	// Compression reports the canonical name of the codec layered over
	// this handle by the root opener, or "" when none was.
	Compression() string
	Tell() (int64, error)
	Flush() error
	Fileno() (uintptr, error)
	Truncate(size int64) error

	Peek(n int) ([]byte, error)
	Lines() LineIterator

	RegisterListener(event Event, l Listener)
}

// LineIterator yields successive lines from a Handle's reader, optionally
// reporting each line's length to a progress hook before returning it.
type LineIterator interface {
	Next() (line []byte, ok bool)
	Err() error
}

// Fileno is implemented by streams that expose an OS file descriptor
// (notably *os.File); Fileno() fails cleanly on streams that don't.
type Fileno interface {
	Fd() uintptr
}

// WrappedHandle is the concrete Handle: a thin forwarder over an inner
// stream plus the file-API surface the inner stream may or may not
// natively support.
type WrappedHandle struct {
	inner       interface{} // at minimum io.Reader or io.Writer; may add io.Seeker, io.Closer, Fileno
	name        string
	mode        string
	compression string

	events EventManager
	closed atomic.Bool

	mu   sync.Mutex
	iter *lineIterator

	// onLine, if set, is called with each line's byte length as Lines()
	// advances, before the line is handed to the caller.
	onLine func(n int64)
}

// New wraps inner (any combination of io.Reader/io.Writer/io.Seeker/
// io.Closer) with name and mode as reported by Name()/Mode().
func New(inner interface{}, name, mode string) *WrappedHandle {
	return &WrappedHandle{inner: inner, name: name, mode: mode}
}

// SetLineHook installs a callback invoked with each line's length as
// Lines() advances; the root opener wires this to a progress bar.
func (h *WrappedHandle) SetLineHook(fn func(n int64)) {
	h.onLine = fn
}

func (h *WrappedHandle) Name() string        { return h.name }
func (h *WrappedHandle) Mode() string        { return h.mode }
func (h *WrappedHandle) Closed() bool        { return h.closed.Load() }
func (h *WrappedHandle) Compression() string { return h.compression }

// SetCompression records the canonical codec name the opener layered
// over this handle, surfaced back through Compression(). Called once,
// before the handle is returned to the caller.
func (h *WrappedHandle) SetCompression(name string) {
	h.compression = name
}

func (h *WrappedHandle) Read(p []byte) (int, error) {
	r, ok := h.inner.(io.Reader)
	if !ok {
		return 0, io.ErrClosedPipe
	}
	return r.Read(p)
}

func (h *WrappedHandle) Write(p []byte) (int, error) {
	w, ok := h.inner.(io.Writer)
	if !ok {
		return 0, io.ErrClosedPipe
	}
	return w.Write(p)
}

func (h *WrappedHandle) Seek(offset int64, whence int) (int64, error) {
	s, ok := h.inner.(io.Seeker)
	if !ok {
		return 0, ErrorNotSeekable.Error(nil)
	}
	return s.Seek(offset, whence)
}

// Tell is Seek(0, io.SeekCurrent), matching the donor's file-API naming.
func (h *WrappedHandle) Tell() (int64, error) {
	return h.Seek(0, io.SeekCurrent)
}

func (h *WrappedHandle) Flush() error {
	if f, ok := h.inner.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (h *WrappedHandle) Fileno() (uintptr, error) {
	if f, ok := h.inner.(Fileno); ok {
		return f.Fd(), nil
	}
	return 0, ErrorNotPeekable.Error(nil)
}

func (h *WrappedHandle) Truncate(size int64) error {
	if t, ok := h.inner.(interface{ Truncate(int64) error }); ok {
		return t.Truncate(size)
	}
	return ErrorNotSeekable.Error(nil)
}

// Peek prefers a native Peek(n) on the inner stream (e.g. *bufio.Reader),
// falls back to save-position/read/seek-back when the stream is
// seekable, and otherwise fails with ErrorNotPeekable.
func (h *WrappedHandle) Peek(n int) ([]byte, error) {
	if p, ok := h.inner.(interface {
		Peek(int) ([]byte, error)
	}); ok {
		return p.Peek(n)
	}

	s, ok := h.inner.(io.Seeker)
	r, rok := h.inner.(io.Reader)
	if !ok || !rok {
		return nil, ErrorNotPeekable.Error(nil)
	}

	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, ErrorNotPeekable.Error(err)
	}

	buf := make([]byte, n)
	read, err := io.ReadFull(r, buf)
	if _, serr := s.Seek(pos, io.SeekStart); serr != nil {
		return nil, ErrorNotPeekable.Error(serr)
	}
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, ErrorNotPeekable.Error(err)
	}
	return buf[:read], nil
}

// Lines returns (creating on first call) the line iterator over this
// handle's reader.
func (h *WrappedHandle) Lines() LineIterator {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.iter == nil {
		r, _ := h.inner.(io.Reader)
		h.iter = &lineIterator{sc: bufio.NewScanner(r), onLine: h.onLine}
	}
	return h.iter
}

func (h *WrappedHandle) RegisterListener(event Event, l Listener) {
	h.events.Register(event, l)
}

// Close forwards to the inner io.Closer (if any), drops the line
// iterator, and fires CLOSE listeners. Double-close is idempotent:
// the inner Close and the listener firing only happen once.
func (h *WrappedHandle) Close() error {
	if h.closed.Swap(true) {
		return nil
	}

	h.mu.Lock()
	h.iter = nil
	h.mu.Unlock()

	var err error
	if c, ok := h.inner.(io.Closer); ok {
		err = c.Close()
	}

	if lerr := h.events.Fire(EventClose, h, map[string]interface{}{"err": err}); lerr != nil {
		return multierror.Append(nil, err, lerr).ErrorOrNil()
	}
	return err
}

type lineIterator struct {
	sc     *bufio.Scanner
	onLine func(n int64)
	err    error
}

func (l *lineIterator) Next() ([]byte, bool) {
	if l.sc == nil || !l.sc.Scan() {
		l.err = l.sc.Err()
		return nil, false
	}
	line := l.sc.Bytes()
	if l.onLine != nil {
		l.onLine(int64(len(line)))
	}
	return line, true
}

func (l *lineIterator) Err() error {
	return l.err
}
