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

func init() {
	defaultRegistry.Register(Format{
		Name:         "gzip",
		Aliases:      []string{"gz", "pigz"},
		Extension:    "gz",
		Executables:  []string{"pigz", "gzip"},
		MinLevel:     1,
		MaxLevel:     9,
		DefaultLevel: 6,
		Parallel:     true,
		ThreadsFlag:  "-p",
		MIME:         []string{"application/gzip", "application/x-gzip"},
		Magic:        [][]byte{{0x1F, 0x8B}},
		Algorithm:    Gzip,
	})

	defaultRegistry.Register(Format{
		Name:         "bz2",
		Aliases:      []string{"bzip", "bzip2", "pbzip2"},
		Extension:    "bz2",
		Executables:  []string{"pbzip2", "bzip2"},
		MinLevel:     1,
		MaxLevel:     9,
		DefaultLevel: 6,
		Parallel:     true,
		ThreadsFlag:  "-p",
		MIME:         []string{"application/x-bzip2", "application/x-bzip"},
		Magic:        [][]byte{{'B', 'Z', 'h'}},
		Algorithm:    Bzip2,
	})

	defaultRegistry.Register(Format{
		Name:         "lzma",
		Aliases:      []string{"xz", "7z", "7zip"},
		Extension:    "xz",
		Executables:  []string{"xz", "lzma"},
		MinLevel:     0,
		MaxLevel:     9,
		DefaultLevel: 6,
		MIME:         []string{"application/x-xz", "application/x-lzma", "application/x-7z-compressed"},
		Magic: [][]byte{
			{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}, // .xz container
			{0x5D, 0x00, 0x00},                   // legacy .lzma (LZMA1) stream
			{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C},    // 7-zip container
		},
		Algorithm: XZ,
	})

	// lz4 is not in the required table but is a cheap, already-imported
	// addition: the in-process codec is needed regardless for Dispatch
	// to round-trip .lz4 sources, so it is registered alongside the
	// three required formats rather than left for cmd/xopen to add.
	defaultRegistry.Register(Format{
		Name:         "lz4",
		Aliases:      []string{"lz4"},
		Extension:    "lz4",
		Executables:  []string{"lz4"},
		MinLevel:     1,
		MaxLevel:     9,
		DefaultLevel: 1,
		MIME:         []string{"application/x-lz4"},
		Magic:        [][]byte{{0x04, 0x22, 0x4D, 0x18}},
		Algorithm:    LZ4,
	})
}

// ZstdFormat returns the supplemental zstd Format record. It is not
// registered into Default by this package's own init(); cmd/xopen
// registers it explicitly at startup via Default().Register(ZstdFormat()).
func ZstdFormat() Format {
	return Format{
		Name:         "zstd",
		Aliases:      []string{"zst"},
		Extension:    "zst",
		Executables:  []string{"zstd"},
		MinLevel:     1,
		MaxLevel:     22,
		DefaultLevel: 3,
		Parallel:     true,
		ThreadsFlag:  "-T",
		MIME:         []string{"application/zstd", "application/x-zstd"},
		Magic:        [][]byte{{0x28, 0xB5, 0x2F, 0xFD}},
		Algorithm:    Zstd,
	}
}
