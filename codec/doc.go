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

// Package codec is the compression-format registry and codec dispatch
// engine: detection by filename, MIME type and magic bytes; selection
// between an in-process codec and an external compressor subprocess;
// streaming adapters over both; and the compress_file/decompress_file
// chunked-copy helpers.
//
//	┌────────────┐     guess by name/magic/MIME      ┌──────────────┐
//	│  Registry  │ <-------------------------------- │  Dispatch()  │
//	└─────┬──────┘                                   └──────┬───────┘
//	      │ Format{aliases, magic, exe...}                  │ chooses
//	      v                                                  v
//	┌────────────┐   use_system && resolvable exe    ┌──────────────┐
//	│ in-process │ <--------------------------------> │   external   │
//	│   codec    │        fallback on spawn error      │ reader/writer│
//	└────────────┘                                     └──────────────┘
//
// The three required formats (gzip, bz2, lzma) are registered into the
// package-level Default registry at init() time; callers may Register
// additional formats (e.g. zstd, lz4) without touching this package.
package codec
