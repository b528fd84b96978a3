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
	"fmt"

	liberr "github.com/nabbar/xopen/errors"
)

const (
	ErrorUnknownFormat liberr.CodeError = iota + liberr.MinPkgCodec
	ErrorFormatMismatch
	ErrorFormatUnknown
	ErrorNotReadable
	ErrorNotWritable
	ErrorTruncatedInput
	ErrorCodec
	ErrorDestinationUnresolved
)

func init() {
	if liberr.ExistInMapMessage(ErrorUnknownFormat) {
		panic(fmt.Errorf("error code collision xopen/codec"))
	}
	liberr.RegisterIdFctMessage(ErrorUnknownFormat, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorUnknownFormat:
		return "no registered format matches the given name, extension, MIME type or magic bytes"
	case ErrorFormatMismatch:
		return "magic bytes at the start of the stream do not match the requested format %q"
	case ErrorFormatUnknown:
		return "compression was required but no format could be guessed from the stream's magic bytes or its name %q"
	case ErrorNotReadable:
		return "format has no usable decompressing reader, neither in-process nor external"
	case ErrorNotWritable:
		return "format has no usable compressing writer, neither in-process nor external"
	case ErrorTruncatedInput:
		return "compressed stream ended before a complete frame was read"
	case ErrorCodec:
		return "underlying codec library returned an error"
	case ErrorDestinationUnresolved:
		return "destination path omitted and could not be derived from source name %q"
	}
	return liberr.NullMessage
}
