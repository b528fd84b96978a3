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

package process

import (
	"io"

	"github.com/nabbar/xopen/codec"
)

// WrapStdin layers f as a compressing codec over the raw stdin pipe, so
// subsequent Write calls on the returned io.WriteCloser deliver
// compressed bytes to the child (e.g. a child that expects gzipped
// stdin). The slot moves from "open" to "wrapped"; calling this twice,
// or on a stream that was never piped, fails.
func (p *Process) WrapStdin(f codec.Format, level int) (io.WriteCloser, error) {
	if p.stdin == nil {
		return nil, ErrorNotAPipe.Errorf(Stdin.String())
	}
	w, err := f.Writer(p.stdin, level)
	if err != nil {
		return nil, err
	}
	if err = p.markWrapped(Stdin); err != nil {
		return nil, err
	}
	return w, nil
}

// WrapStdout layers f as a decompressing codec over the raw stdout pipe,
// so subsequent Read calls on the returned io.ReadCloser yield
// decompressed bytes read from the child.
func (p *Process) WrapStdout(f codec.Format) (io.ReadCloser, error) {
	if p.stdout == nil {
		return nil, ErrorNotAPipe.Errorf(Stdout.String())
	}
	r, err := f.Reader(p.stdout)
	if err != nil {
		return nil, err
	}
	if err = p.markWrapped(Stdout); err != nil {
		return nil, err
	}
	return r, nil
}

// WrapStderr is WrapStdout's counterpart for the error stream.
func (p *Process) WrapStderr(f codec.Format) (io.ReadCloser, error) {
	if p.stderr == nil {
		return nil, ErrorNotAPipe.Errorf(Stderr.String())
	}
	r, err := f.Reader(p.stderr)
	if err != nil {
		return nil, err
	}
	if err = p.markWrapped(Stderr); err != nil {
		return nil, err
	}
	return r, nil
}
