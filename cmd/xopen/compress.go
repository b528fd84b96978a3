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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nabbar/xopen/codec"
)

var flagFormat string

func newCompressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <path> [dest]",
		Short: "Compress a local file with an in-process or external codec",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(args)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "", "codec name (gzip, bzip2, lzma, lz4, zstd, ...); guessed from the destination name if empty")
	return cmd
}

func runCompress(args []string) error {
	src := args[0]

	f, ok := resolveCompressFormat(args)
	if !ok {
		return fmt.Errorf("no codec named %q and none could be guessed", flagFormat)
	}

	bar, onChunk := newByteBar(src, "compressing")
	opts := codec.FileOptions{
		Options: dispatchOptionsFromFlags(src),
		Keep:    true,
		OnChunk: onChunk,
	}
	if len(args) == 2 {
		opts.Dest = args[1]
	}

	dest, err := codec.CompressFile(f, src, opts)
	if bar != nil {
		bar.Wait()
	}
	if err != nil {
		return err
	}

	colorOK.PrintLnf("wrote %s", dest)
	log.Info("compressed %s into %s using %s", nil, src, dest, f.Name)
	return nil
}

func resolveCompressFormat(args []string) (codec.Format, bool) {
	if flagFormat != "" {
		return codec.Default().Get(flagFormat)
	}
	name := args[0]
	if len(args) == 2 {
		name = args[1]
	}
	return codec.Default().GuessByName(name)
}

func dispatchOptionsFromFlags(srcPath string) codec.Options {
	return codec.Options{
		UseSystem:  flagUseSystem,
		Level:      flagLevel,
		Threads:    flagThreads,
		SourcePath: srcPath,
	}
}

func fileSize(path string) int64 {
	st, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return st.Size()
}
