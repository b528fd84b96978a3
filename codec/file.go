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
	"strings"
)

// minChunkSize is the floor for the chunked file-copy loop; never less
// than 64 KiB so compress_file/decompress_file never pulls the whole
// file into memory, however small the caller-requested buffer is.
const minChunkSize = 64 * 1024

// FileOptions controls CompressFile/DecompressFile beyond the codec
// dispatch Options it embeds.
type FileOptions struct {
	Options

	// Dest, if empty, is derived: appending Format.Extension when
	// compressing, stripping a recognised extension when decompressing.
	Dest string

	// Keep, when false, removes the source file after a successful close.
	Keep bool

	// OnChunk, if set, is called with each chunk's length before it is
	// written to dest; the root opener wires this to a progress bar.
	OnChunk func(n int64)
}

// deriveDest appends f's default extension to src.
func deriveCompressDest(f Format, src string) (string, error) {
	if f.Extension == "" {
		return "", ErrorDestinationUnresolved.Errorf(src)
	}
	return src + "." + f.Extension, nil
}

// deriveDecompressDest strips one of f's recognised extensions from src.
func deriveDecompressDest(f Format, src string) (string, error) {
	candidates := append([]string{f.Extension}, f.Aliases...)
	for _, ext := range candidates {
		if ext == "" {
			continue
		}
		suffix := "." + ext
		if strings.HasSuffix(src, suffix) {
			return strings.TrimSuffix(src, suffix), nil
		}
	}
	return "", ErrorDestinationUnresolved.Errorf(src)
}

// CompressFile compresses the file at srcPath under f, producing
// opts.Dest (or a derived path) and returning the destination path.
// Source and destination are opened as plain files here: callers that
// need to compress an already-open stream should use NewStreamCompressor
// or Format.Writer directly.
func CompressFile(f Format, srcPath string, opts FileOptions) (string, error) {
	dest := opts.Dest
	if dest == "" {
		d, err := deriveCompressDest(f, srcPath)
		if err != nil {
			return "", err
		}
		dest = d
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return "", ErrorNotReadable.Error(err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dest)
	if err != nil {
		return "", ErrorNotWritable.Error(err)
	}

	opts.Options.SourcePath = srcPath
	w, err := DispatchWriter(f, out, opts.Options)
	if err != nil {
		_ = out.Close()
		return "", err
	}

	if err = copyChunked(w, in, opts.OnChunk); err != nil {
		_ = w.Close()
		return "", err
	}
	if err = w.Close(); err != nil {
		return "", ErrorCodec.Error(err)
	}

	if !opts.Keep {
		if err = os.Remove(srcPath); err != nil {
			return "", ErrorCodec.Error(err)
		}
	}

	return dest, nil
}

// DecompressFile decompresses the file at srcPath under f, producing
// opts.Dest (or a derived path) and returning the destination path.
func DecompressFile(f Format, srcPath string, opts FileOptions) (string, error) {
	dest := opts.Dest
	if dest == "" {
		d, err := deriveDecompressDest(f, srcPath)
		if err != nil {
			return "", err
		}
		dest = d
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return "", ErrorNotReadable.Error(err)
	}
	defer func() { _ = in.Close() }()

	opts.Options.SourcePath = srcPath
	r, err := DispatchReader(f, in, opts.Options)
	if err != nil {
		return "", err
	}

	out, err := os.Create(dest)
	if err != nil {
		_ = r.Close()
		return "", ErrorNotWritable.Error(err)
	}

	if err = copyChunked(out, r, opts.OnChunk); err != nil {
		_ = out.Close()
		_ = r.Close()
		return "", err
	}
	if err = out.Close(); err != nil {
		_ = r.Close()
		return "", ErrorCodec.Error(err)
	}
	if err = r.Close(); err != nil {
		return "", err
	}

	if !opts.Keep {
		if err = os.Remove(srcPath); err != nil {
			return "", ErrorCodec.Error(err)
		}
	}

	return dest, nil
}

// copyChunked streams src into dst in minChunkSize chunks, reporting
// each chunk's length to onChunk (if set) before the chunk is written.
func copyChunked(dst io.Writer, src io.Reader, onChunk func(n int64)) error {
	buf := make([]byte, minChunkSize)

	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if onChunk != nil {
				onChunk(int64(n))
			}
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return ErrorCodec.Error(werr)
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return ErrorTruncatedInput.Error(rerr)
		}
	}
}
