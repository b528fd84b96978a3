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
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/nabbar/xopen/execcache"
)

// Operation selects which direction an external command is built for.
type Operation uint8

const (
	OpCompress Operation = iota
	OpDecompress
)

// BuildArgs constructs the argument vector for f's resolved executable
// per the per-codec grammar: gzip/pigz, bzip2/pbzip2 and xz/lzma each
// place their flags in a slightly different order, so this is a switch
// on Format.Name rather than one generic template.
func BuildArgs(f Format, exeName string, op Operation, level, threads int, path string) []string {
	lvl := f.ClampLevel(level)
	var args []string

	switch f.Name {
	case "gzip":
		if op == OpDecompress {
			args = []string{"-d", "-c"}
		} else {
			args = []string{fmt.Sprintf("-%d", lvl), "-c"}
		}
		if exeName == "pigz" && threads > 1 {
			args = append(args, "-p", strconv.Itoa(threads))
		}
	case "bz2":
		if op == OpDecompress {
			args = []string{"-d", "-c"}
		} else {
			args = []string{fmt.Sprintf("-%d", lvl), "-z", "-c"}
		}
		if exeName == "pbzip2" && threads > 1 {
			args = append(args, fmt.Sprintf("-p%d", threads))
		}
	case "lzma":
		if op == OpDecompress {
			args = []string{"-d", "-c"}
		} else {
			args = []string{fmt.Sprintf("-%d", lvl), "-z", "-c"}
		}
		if threads > 1 {
			args = append(args, "-T", strconv.Itoa(threads))
		}
	default:
		if op == OpDecompress {
			args = []string{"-d", "-c"}
		} else {
			args = []string{fmt.Sprintf("-%d", lvl), "-c"}
		}
		if f.Parallel && f.ThreadsFlag != "" && threads > 1 {
			args = append(args, f.ThreadsFlag, strconv.Itoa(threads))
		}
	}

	if path != "" {
		args = append(args, path)
	}

	return append([]string{exeName}, args...)
}

// Resolve looks up the first available executable for f via cache,
// returning its resolved name and whether use_system is viable at all.
func Resolve(cache *execcache.Cache, f Format) (name string, ok bool) {
	if !f.Parallel && len(f.Executables) == 0 {
		return "", false
	}
	res, found := cache.Resolve(f.Executables...)
	if !found {
		return "", false
	}
	return res.Name, true
}

// externalReader decompresses by piping a spawned child's stdout.
type externalReader struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	waited bool
}

// NewExternalReader spawns exe/args with stdout piped, suitable for
// reading a decompressed stream chunk by chunk. The child inherits no
// stdin; callers that need to feed it data should use NewExternalWriter
// on the compress side instead.
func NewExternalReader(path string, args []string) (io.ReadCloser, error) {
	c := exec.Command(args[0], args[1:]...)
	if path == "" {
		return nil, ErrorNotReadable.Error(nil)
	}

	out, e := c.StdoutPipe()
	if e != nil {
		return nil, ErrorCodec.Error(e)
	}
	if e = c.Start(); e != nil {
		return nil, ErrorCodec.Error(e)
	}

	return &externalReader{cmd: c, stdout: out}, nil
}

func (r *externalReader) Read(p []byte) (int, error) {
	n, e := r.stdout.Read(p)
	if e == io.EOF {
		if werr := r.wait(); werr != nil {
			return n, werr
		}
	}
	return n, e
}

func (r *externalReader) wait() error {
	if r.waited {
		return nil
	}
	r.waited = true
	if e := r.cmd.Wait(); e != nil {
		return ErrorTruncatedInput.Error(e)
	}
	return nil
}

func (r *externalReader) Close() error {
	_ = r.stdout.Close()
	if r.cmd.ProcessState == nil {
		_ = r.cmd.Process.Kill()
	}
	return r.wait()
}

// externalWriter compresses by piping into a spawned child's stdin,
// whose stdout is bound directly to dst.
type externalWriter struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	dst   io.Closer
}

// NewExternalWriter spawns exe/args with stdin piped and stdout bound to
// dst, suitable for writing a stream that the child compresses.
func NewExternalWriter(args []string, dst io.Writer) (io.WriteCloser, error) {
	c := exec.Command(args[0], args[1:]...)
	c.Stdout = dst

	in, e := c.StdinPipe()
	if e != nil {
		return nil, ErrorCodec.Error(e)
	}
	if e = c.Start(); e != nil {
		return nil, ErrorCodec.Error(e)
	}

	closer, _ := dst.(io.Closer)
	return &externalWriter{cmd: c, stdin: in, dst: closer}, nil
}

func (w *externalWriter) Write(p []byte) (int, error) {
	return w.stdin.Write(p)
}

func (w *externalWriter) Close() error {
	if e := w.stdin.Close(); e != nil {
		return ErrorCodec.Error(e)
	}
	werr := w.cmd.Wait()
	if w.dst != nil {
		_ = w.dst.Close()
	}
	if werr != nil {
		return ErrorCodec.Error(werr)
	}
	return nil
}
