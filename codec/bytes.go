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

	"github.com/nabbar/xopen/ioutils/nopwritecloser"
)

// Compress returns buf compressed under f at level. This is the one-shot
// byte-slice path: it never spawns an external executable, since the
// fixed cost of a subprocess dwarfs any benefit on small in-memory
// payloads.
func (f Format) Compress(buf []byte, level int) ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, len(buf)/2+64))

	w, err := f.Writer(nopwritecloser.New(out), level)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(buf); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Decompress returns buf decompressed under f. Returns ErrorFormatMismatch
// if buf's magic bytes do not match f (when f declares any).
func (f Format) Decompress(buf []byte) ([]byte, error) {
	if len(f.Magic) > 0 && !f.DetectHeader(buf) {
		return nil, ErrorFormatMismatch.Errorf(f.Name)
	}

	r, err := f.Reader(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrorTruncatedInput.Error(err)
	}
	return out, nil
}
