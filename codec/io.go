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
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"io"

	bz2 "github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Reader opens a decompressing io.ReadCloser over r. The standard library
// has no bzip2 encoder but does have a decoder, so Bzip2 reads stay on
// compress/bzip2 even though its writes route through dsnet/compress.
func (a Algorithm) Reader(r io.Reader) (io.ReadCloser, error) {
	switch a {
	case Bzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	case Gzip:
		return gzip.NewReader(r)
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case XZ:
		c, e := xz.NewReader(bufio.NewReader(r))
		if e != nil {
			return nil, e
		}
		return io.NopCloser(c), nil
	case Zstd:
		d, e := zstd.NewReader(r)
		if e != nil {
			return nil, e
		}
		return zstdReaderCloser{d}, nil
	default:
		return io.NopCloser(r), nil
	}
}

// zstdReaderCloser adapts *zstd.Decoder (whose Close takes no error) to
// io.ReadCloser.
type zstdReaderCloser struct {
	*zstd.Decoder
}

func (z zstdReaderCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Writer opens a compressing io.WriteCloser over w at the given level.
// level <= 0 asks for the codec's library default. Not every codec's
// compression-level knob maps cleanly onto the struct library; LZ4 and XZ
// accept level for API symmetry with Format.MinLevel/MaxLevel but apply
// only their library defaults, which is why those two formats clamp level
// silently rather than rejecting out-of-range values.
func (a Algorithm) Writer(w io.WriteCloser, level int) (io.WriteCloser, error) {
	switch a {
	case Bzip2:
		var cfg *bz2.WriterConfig
		if level > 0 {
			cfg = &bz2.WriterConfig{Level: level}
		}
		return bz2.NewWriter(w, cfg)
	case Gzip:
		if level <= 0 {
			return gzip.NewWriter(w), nil
		}
		return gzip.NewWriterLevel(w, level)
	case LZ4:
		return lz4.NewWriter(w), nil
	case XZ:
		return xz.NewWriter(w)
	case Zstd:
		lvl := zstd.SpeedDefault
		if level > 0 {
			lvl = zstd.EncoderLevelFromZstd(level)
		}
		enc, e := zstd.NewWriter(w, zstd.WithEncoderLevel(lvl))
		if e != nil {
			return nil, e
		}
		return enc, nil
	default:
		return w, nil
	}
}
