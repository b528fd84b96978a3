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

package xopen

import (
	"context"

	"github.com/nabbar/xopen/codec"
	"github.com/nabbar/xopen/source"
)

// Options controls one Open call. Compression selects the four-state
// hint: NoCompression is the `False` state; a non-empty Compression is
// the `<name>` state; Compression=="" is `None` or `True` depending on
// CompressionRequired. Every other field has a usable zero value.
type Options struct {
	// Mode is the `[rwax][+]?[bt]?U?` grammar string; "" is read-text.
	Mode string

	// Compression names a registered codec ("gzip", "bz2", ...). Left
	// "", Open guesses one from the stream's magic bytes (when the
	// stream can be peeked) and otherwise the source's name.
	Compression string

	// NoCompression forces Open to skip both the guess and any named
	// Compression, handing back the raw stream.
	NoCompression bool

	// CompressionRequired promotes an unresolved guess from "no codec"
	// (the default, `None`) to a hard failure (`True`): when Compression
	// is "" and neither the stream's magic bytes nor its name resolve a
	// format, Open returns codec.ErrorFormatUnknown (or, for a STDIO
	// source, ErrorCompressionNotGuessable) instead of opening the raw
	// stream. Ignored when Compression is set or NoCompression is true.
	CompressionRequired bool

	// UseSystem requests the external-executable codec path; the zero
	// value falls back to Current().UseSystem.
	UseSystem bool

	// Level and Threads are forwarded to the codec dispatcher.
	Level   int
	Threads int

	// FileType overrides source.Classify's own classification when set
	// to anything other than its zero value combined with ForceFileType.
	FileType      source.FileType
	ForceFileType bool

	// Validate requests pathutil's readable/writable probe on a LOCAL
	// path before Open hands it to os.Open/os.Create, and, whenever an
	// explicit Compression is given, also compares it against a
	// guess from the stream's magic bytes or name: a disagreement fails
	// with codec.ErrorFormatMismatch.
	Validate bool

	// Registry selects which codec.Registry resolves Compression; nil
	// means codec.Default().
	Registry *codec.Registry

	// Context governs a PROCESS source's spawn and, if Options.Timeout
	// is set, its close.
	Context context.Context
}

func (o Options) registry() *codec.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return codec.Default()
}

func (o Options) useSystem() bool {
	if o.UseSystem {
		return true
	}
	return Current().UseSystem
}

func (o Options) ctx() context.Context {
	if o.Context != nil {
		return o.Context
	}
	return context.Background()
}
