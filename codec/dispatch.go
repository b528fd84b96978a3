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
	"io"
	"os"

	"github.com/nabbar/xopen/execcache"
)

// Options controls one Dispatch call.
type Options struct {
	// UseSystem requests the external-executable codec when one resolves;
	// a spawn failure at any stage falls back to the in-process codec.
	UseSystem bool

	// Level is the compression level; <= 0 means "format default".
	Level int

	// Threads is the parallelism hint passed to a parallel-capable
	// external executable (e.g. pigz -p, xz -T). Ignored in-process.
	Threads int

	// Cache resolves external executables; Default() is used when nil.
	Cache *execcache.Cache

	// SourcePath is the filesystem path behind src, when known; some
	// external readers need a path argument rather than a piped stdin.
	SourcePath string
}

func (o Options) cache() *execcache.Cache {
	if o.Cache != nil {
		return o.Cache
	}
	return execcache.Default()
}

// DispatchReader opens a decompressing io.ReadCloser over src for format
// f, preferring an external executable when opts.UseSystem asks for one
// and it resolves; any external-path failure (resolve or spawn) falls
// back to the in-process codec rather than surfacing the error, per the
// use_system policy.
func DispatchReader(f Format, src io.Reader, opts Options) (io.ReadCloser, error) {
	if opts.UseSystem && opts.SourcePath != "" {
		if exeName, ok := Resolve(opts.cache(), f); ok {
			args := BuildArgs(f, exeName, OpDecompress, opts.Level, opts.Threads, opts.SourcePath)
			if rc, e := NewExternalReader(opts.SourcePath, args); e == nil {
				return rc, nil
			}
		}
	}
	return f.Reader(src)
}

// DispatchWriter opens a compressing io.WriteCloser writing into dst for
// format f. External dispatch requires dst to expose an *os.File (a
// destination stream without a file descriptor, e.g. an in-memory
// buffer, forces in-process per the use_system policy).
func DispatchWriter(f Format, dst io.WriteCloser, opts Options) (io.WriteCloser, error) {
	if opts.UseSystem {
		if _, isFile := dst.(*os.File); isFile {
			if exeName, ok := Resolve(opts.cache(), f); ok {
				args := BuildArgs(f, exeName, OpCompress, opts.Level, opts.Threads, "")
				if wc, e := NewExternalWriter(args, dst); e == nil {
					return wc, nil
				}
			}
		}
	}
	return f.Writer(dst, opts.Level)
}
