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

// Package xopen is the unified opener (§4.4): given any of a path, a
// URL, a "|command" string, an already-open stream, a buffer sentinel,
// or a standard-stream token, Open classifies the source (via package
// source), parses the requested mode (via package mode), resolves and
// layers a compression codec (via package codec), and returns a
// handle.Handle forwarding the file API to whatever the source resolved
// to.
package xopen

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/nabbar/xopen/codec"
	"github.com/nabbar/xopen/handle"
	"github.com/nabbar/xopen/mode"
	"github.com/nabbar/xopen/pathutil"
	"github.com/nabbar/xopen/process"
	"github.com/nabbar/xopen/source"
	"github.com/nabbar/xopen/urlutil"
)

// Open classifies src, opens the underlying transport, optionally layers
// a compression codec over it, and returns a handle.Handle. The caller
// is always responsible for calling Close on the returned Handle.
func Open(src interface{}, opts Options) (handle.Handle, error) {
	desc, err := source.Classify(src)
	if err != nil {
		return nil, err
	}
	if opts.ForceFileType {
		desc.Type = opts.FileType
	}

	m := mode.Parse(opts.Mode)

	switch desc.Type {
	case source.Stdio:
		return openStdio(desc, m, opts)
	case source.Local:
		return openLocal(desc, m, opts)
	case source.URL:
		return openURL(desc, opts)
	case source.Process:
		return openProcess(desc, m, opts)
	case source.FileLike:
		return openFileLike(desc, m, opts)
	case source.Buffer:
		return openBuffer(desc, m, opts)
	default:
		return nil, ErrorUnsupportedFileType.Errorf(desc.Type.String())
	}
}

// resolveFormat implements §4.3's compression dispatcher. peek, when
// non-nil, lets a guess inspect the stream's magic bytes before falling
// back to a name-based guess; onUnknown names the error a True hint (or
// an explicit name that does not resolve) raises, letting STDIO's
// "not peekable" wording and everywhere else's generic FormatUnknown
// share one code path.
//
// False (NoCompression) never looks anywhere. An explicit name is
// resolved directly and, when Validate is set, checked against the best
// available guess — disagreement fails FormatMismatch. With no explicit
// name, None and True guess the same way; None treats an undetectable
// format as "no codec", True reports onUnknown.
func resolveFormat(opts Options, name string, peek codec.Peekable, onUnknown func(name string) error) (codec.Format, bool, error) {
	reg := opts.registry()

	if opts.NoCompression {
		return codec.Format{}, false, nil
	}

	if opts.Compression != "" {
		f, ok := reg.Get(opts.Compression)
		if !ok {
			return codec.Format{}, false, codec.ErrorUnknownFormat.Errorf(opts.Compression)
		}
		if opts.Validate {
			if guess, gok := guessFormat(reg, name, peek); gok && guess.Name != f.Name {
				return codec.Format{}, false, codec.ErrorFormatMismatch.Errorf(f.Name)
			}
		}
		return f, true, nil
	}

	if f, ok := guessFormat(reg, name, peek); ok {
		return f, true, nil
	}
	if opts.CompressionRequired {
		return codec.Format{}, false, onUnknown(name)
	}
	return codec.Format{}, false, nil
}

// guessFormat tries peek's magic bytes first, then falls back to a
// name-based guess, matching §4.3 dispatcher steps (i) and (ii).
func guessFormat(reg *codec.Registry, name string, peek codec.Peekable) (codec.Format, bool) {
	if peek != nil {
		if f, ok := reg.GuessByPeekable(peek); ok {
			return f, true
		}
	}
	if name != "" {
		return reg.GuessByName(name)
	}
	return codec.Format{}, false
}

func unknownFormatErr(name string) error {
	return codec.ErrorFormatUnknown.Errorf(name)
}

// needsPeek reports whether resolveFormat can make use of a peek at the
// stream's magic bytes: always for a guess, and for an explicit name
// only when Validate asks for a mismatch check against that guess.
func needsPeek(opts Options) bool {
	if opts.NoCompression {
		return false
	}
	if opts.Compression != "" {
		return opts.Validate
	}
	return true
}

func dispatchOptions(opts Options, path string) codec.Options {
	return codec.Options{
		UseSystem:  opts.useSystem(),
		Level:      opts.Level,
		Threads:    opts.Threads,
		SourcePath: path,
	}
}

// openLocalFile opens path with the os.OpenFile flags matching m's
// access, creating it (and truncating, for TruncateReadWrite) as needed.
func openLocalFile(path string, m mode.FileMode) (*os.File, error) {
	const defaultPerm = 0o644

	switch m.Access() {
	case mode.Write:
		return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultPerm)
	case mode.TruncateReadWrite:
		return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, defaultPerm)
	case mode.ReadWrite:
		return os.OpenFile(path, os.O_RDWR, defaultPerm)
	case mode.Append:
		return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, defaultPerm)
	case mode.Exclusive:
		return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defaultPerm)
	default:
		return os.Open(path)
	}
}

func openLocal(desc source.Descriptor, m mode.FileMode, opts Options) (handle.Handle, error) {
	path := desc.Path
	if opts.Validate {
		var err error
		if m.Writable() {
			path, err = pathutil.CheckWritable(path, true)
		} else {
			path, err = pathutil.CheckReadable(path)
		}
		if err != nil {
			return nil, err
		}
	}

	f, err := openLocalFile(path, m)
	if err != nil {
		return nil, err
	}

	if m.Writable() {
		format, ok, err := resolveFormat(opts, path, nil, unknownFormatErr)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if !ok {
			return handle.New(f, path, m.String()), nil
		}

		w, err := codec.DispatchWriter(format, f, dispatchOptions(opts, path))
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		h := handle.New(struct {
			io.Reader
			io.Writer
			io.Closer
		}{Reader: f, Writer: w, Closer: closerFunc(func() error {
			if err := w.Close(); err != nil {
				return err
			}
			return f.Close()
		})}, path, m.String())
		h.SetCompression(format.Name)
		return h, nil
	}

	var (
		rdr  io.Reader = f
		peek codec.Peekable
	)
	if needsPeek(opts) {
		br := bufio.NewReader(f)
		rdr, peek = br, br
	}

	format, ok, err := resolveFormat(opts, path, peek, unknownFormatErr)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !ok {
		if peek == nil {
			return handle.New(f, path, m.String()), nil
		}
		return handle.New(struct {
			io.Reader
			io.Closer
		}{Reader: rdr, Closer: f}, path, m.String()), nil
	}

	r, err := codec.DispatchReader(format, rdr, dispatchOptions(opts, path))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	h := handle.New(struct {
		io.Reader
		io.Closer
	}{Reader: r, Closer: closerFunc(func() error {
		if err := r.Close(); err != nil {
			return err
		}
		return f.Close()
	})}, path, m.String())
	h.SetCompression(format.Name)
	return h, nil
}

func notGuessableErr(name string) error {
	return ErrorCompressionNotGuessable.Errorf(name)
}

func openStdio(desc source.Descriptor, m mode.FileMode, opts Options) (handle.Handle, error) {
	std := source.DefaultStdStream(desc.Std, m.Access())
	h := handle.NewStd(std)

	if m.Writable() {
		// A write-side pipe offers nothing to peek, so resolveFormat can
		// only resolve here via an explicit Options.Compression name,
		// matching §4.4's "reject compression=True on write".
		format, ok, err := resolveFormat(opts, h.Name(), nil, notGuessableErr)
		if err != nil {
			return nil, err
		}
		if !ok {
			return h, nil
		}
		w, err := format.Writer(nopCloser{h}, opts.Level)
		if err != nil {
			return nil, err
		}
		out := handle.New(struct {
			io.Writer
			io.Closer
		}{Writer: w, Closer: w}, h.Name(), m.String())
		out.SetCompression(format.Name)
		return out, nil
	}

	br := bufio.NewReader(h)
	format, ok, err := resolveFormat(opts, h.Name(), br, notGuessableErr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return handle.New(struct {
			io.Reader
			io.Closer
		}{Reader: br, Closer: h}, h.Name(), m.String()), nil
	}

	r, err := format.Reader(br)
	if err != nil {
		return nil, err
	}
	out := handle.New(r, h.Name(), m.String())
	out.SetCompression(format.Name)
	return out, nil
}

func openURL(desc source.Descriptor, opts Options) (handle.Handle, error) {
	u, err := urlutil.Parse(desc.Path)
	if err != nil {
		return nil, err
	}

	resp, err := urlutil.Open(opts.ctx(), u)
	if err != nil {
		return nil, err
	}

	name := urlutil.DeriveName(resp, u)
	if name == "" {
		name = desc.Path
	}

	br := bufio.NewReader(resp.Body)
	format, ok, err := resolveFormat(opts, name, br, unknownFormatErr)
	if err != nil {
		_ = resp.Body.Close()
		return nil, err
	}
	if !ok {
		return handle.New(struct {
			io.Reader
			io.Closer
		}{Reader: br, Closer: resp.Body}, name, "rb"), nil
	}

	r, err := format.Reader(br)
	if err != nil {
		_ = resp.Body.Close()
		return nil, err
	}
	h := handle.New(struct {
		io.Reader
		io.Closer
	}{Reader: r, Closer: closerFunc(func() error {
		if err := r.Close(); err != nil {
			return err
		}
		return resp.Body.Close()
	})}, name, "rb")
	h.SetCompression(format.Name)
	return h, nil
}

func openProcess(desc source.Descriptor, m mode.FileMode, opts Options) (handle.Handle, error) {
	parts, err := shlexSplit(desc.Path)
	if err != nil || len(parts) == 0 {
		return nil, ErrorUnsupportedFileType.Errorf("process")
	}

	p := process.New(opts.ctx(), parts[0], parts[1:]...)
	if err = p.Start(m.Writable(), m.Readable(), true); err != nil {
		return nil, err
	}

	if m.Writable() {
		// resolveFormat is given no peek and no name, so a process write
		// pipe can only resolve a format via an explicit Options.
		// Compression, never a guess — matching §4.4's "reject
		// compression=True on write" (no peek possible).
		format, ok, err := resolveFormat(opts, "", nil, notGuessableErr)
		if err != nil {
			_ = p.Close(process.CloseOptions{RaiseOnError: false})
			return nil, err
		}
		if !ok {
			return handle.New(struct {
				io.Writer
				io.Closer
			}{Writer: p.RawStdin(), Closer: closerFunc(func() error {
				return p.Close(process.CloseOptions{RaiseOnError: true})
			})}, desc.Path, m.String()), nil
		}
		w, err := p.WrapStdin(format, opts.Level)
		if err != nil {
			return nil, err
		}
		out := handle.New(struct {
			io.Writer
			io.Closer
		}{Writer: w, Closer: closerFunc(func() error {
			return p.Close(process.CloseOptions{RaiseOnError: true})
		})}, desc.Path, m.String())
		out.SetCompression(format.Name)
		return out, nil
	}

	format, ok, err := resolveFormat(opts, "", nil, unknownFormatErr)
	if err != nil {
		_ = p.Close(process.CloseOptions{RaiseOnError: false})
		return nil, err
	}
	if !ok {
		return handle.New(struct {
			io.Reader
			io.Closer
		}{Reader: p.RawStdout(), Closer: closerFunc(func() error {
			return p.Close(process.CloseOptions{RaiseOnError: true})
		})}, desc.Path, m.String()), nil
	}
	r, err := p.WrapStdout(format)
	if err != nil {
		return nil, err
	}
	out := handle.New(struct {
		io.Reader
		io.Closer
	}{Reader: r, Closer: closerFunc(func() error {
		return p.Close(process.CloseOptions{RaiseOnError: true})
	})}, desc.Path, m.String())
	out.SetCompression(format.Name)
	return out, nil
}

// openFileLike implements §4.4's FILELIKE dispatch: the caller's stream
// is used as-is unless a codec is requested, in which case its coding
// must be binary (text coding cannot be layered with a byte-oriented
// codec), failing ErrorIncompatibleStreamMode otherwise.
func openFileLike(desc source.Descriptor, m mode.FileMode, opts Options) (handle.Handle, error) {
	if m.Writable() {
		w, wok := desc.Stream.(io.Writer)
		format, ok, err := resolveFormat(opts, "", nil, unknownFormatErr)
		if err != nil {
			return nil, err
		}
		if !ok {
			return handle.New(desc.Stream, "<stream>", m.String()), nil
		}
		if !m.Binary() || !wok {
			return nil, ErrorIncompatibleStreamMode.Errorf(m.String())
		}

		cw, err := format.Writer(nopCloser{w}, opts.Level)
		if err != nil {
			return nil, err
		}
		h := handle.New(struct {
			io.Writer
			io.Closer
		}{Writer: cw, Closer: closerFunc(func() error {
			if err := cw.Close(); err != nil {
				return err
			}
			if c, cok := desc.Stream.(io.Closer); cok {
				return c.Close()
			}
			return nil
		})}, "<stream>", m.String())
		h.SetCompression(format.Name)
		return h, nil
	}

	r, rok := desc.Stream.(io.Reader)
	if !rok {
		return nil, ErrorIncompatibleStreamMode.Errorf(m.String())
	}

	br := bufio.NewReader(r)
	format, ok, err := resolveFormat(opts, "", br, unknownFormatErr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return handle.New(struct {
			io.Reader
			io.Closer
		}{Reader: br, Closer: closerFunc(func() error {
			if c, cok := desc.Stream.(io.Closer); cok {
				return c.Close()
			}
			return nil
		})}, "<stream>", m.String()), nil
	}
	if !m.Binary() {
		return nil, ErrorIncompatibleStreamMode.Errorf(m.String())
	}

	cr, err := format.Reader(br)
	if err != nil {
		return nil, err
	}
	h := handle.New(struct {
		io.Reader
		io.Closer
	}{Reader: cr, Closer: closerFunc(func() error {
		if err := cr.Close(); err != nil {
			return err
		}
		if c, cok := desc.Stream.(io.Closer); cok {
			return c.Close()
		}
		return nil
	})}, "<stream>", m.String())
	h.SetCompression(format.Name)
	return h, nil
}

func openBuffer(desc source.Descriptor, m mode.FileMode, opts Options) (handle.Handle, error) {
	b := handle.NewBuffer(desc.Contents, "<buffer>", m.String())

	format, ok, err := resolveFormat(opts, "", nil, unknownFormatErr)
	if err != nil {
		return nil, err
	}
	if ok && m.Writable() {
		if err := b.LayerCodec(format, opts.Level); err != nil {
			return nil, err
		}
		b.SetCompression(format.Name)
	}
	return b, nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// shlexSplit splits s into words, honouring single and double quotes the
// way a POSIX shell would (no variable expansion, no escape sequences
// beyond a backslash preceding a quote character inside double quotes).
// A single/double quote left open is reported as an error.
func shlexSplit(s string) ([]string, error) {
	var (
		words  []string
		cur    strings.Builder
		inWord bool
		quote  rune
	)

	flush := func() {
		if inWord {
			words = append(words, cur.String())
			cur.Reset()
			inWord = false
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if quote != 0 {
			if r == quote {
				quote = 0
				continue
			}
			if quote == '"' && r == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\') {
				i++
				cur.WriteRune(runes[i])
				continue
			}
			cur.WriteRune(r)
			continue
		}

		switch {
		case r == ' ' || r == '\t':
			flush()
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		default:
			inWord = true
			cur.WriteRune(r)
		}
	}

	if quote != 0 {
		return nil, ErrorUnsupportedFileType.Errorf("process: unterminated quote")
	}
	flush()
	return words, nil
}
