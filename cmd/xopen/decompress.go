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

	"github.com/spf13/cobra"

	"github.com/nabbar/xopen/codec"
)

func newDecompressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress <path> [dest]",
		Short: "Decompress a local file, guessing its codec from extension or magic bytes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(args)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "", "codec name; guessed from the source name if empty")
	return cmd
}

func runDecompress(args []string) error {
	src := args[0]

	f, ok := resolveDecompressFormat(src)
	if !ok {
		f, ok = detectByMagic(src)
	}
	if !ok {
		return fmt.Errorf("could not determine a codec for %q", src)
	}

	bar, onChunk := newByteBar(src, "decompressing")
	opts := codec.FileOptions{
		Options: dispatchOptionsFromFlags(src),
		Keep:    true,
		OnChunk: onChunk,
	}
	if len(args) == 2 {
		opts.Dest = args[1]
	}

	dest, err := codec.DecompressFile(f, src, opts)
	if bar != nil {
		bar.Wait()
	}
	if err != nil {
		return err
	}

	colorOK.PrintLnf("wrote %s", dest)
	log.Info("decompressed %s into %s using %s", nil, src, dest, f.Name)
	return nil
}

func resolveDecompressFormat(src string) (codec.Format, bool) {
	if flagFormat != "" {
		return codec.Default().Get(flagFormat)
	}
	return codec.Default().GuessByName(src)
}
