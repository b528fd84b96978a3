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

package main

import (
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// newByteBar builds an mpb progress container with a single byte-count
// bar for path sized to its current length on disk, returning the
// container (nil if progress is disabled or the size can't be read,
// in which case Wait is a no-op) and the OnChunk callback xopen's file
// helpers drive it with.
func newByteBar(path, label string) (*mpb.Progress, func(n int64)) {
	if flagNoProgress {
		return nil, nil
	}

	size := fileSize(path)
	if size <= 0 {
		return nil, nil
	}

	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
	bar := p.AddBar(size,
		mpb.PrependDecorators(decor.Name(label+" "+path, decor.WCSyncSpaceR)),
		mpb.AppendDecorators(decor.Counters(decor.SizeB1024(0), "% .2f / % .2f", decor.WCSyncSpace)),
	)

	return p, func(n int64) {
		bar.IncrInt64(n)
	}
}
