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

package process

import (
	"fmt"

	liberr "github.com/nabbar/xopen/errors"
)

const (
	ErrorAlreadyClosed liberr.CodeError = iota + liberr.MinPkgProcess
	ErrorTimedOut
	ErrorProcessFailed
	ErrorInvalidStreamName
	ErrorNotAPipe
)

func init() {
	if liberr.ExistInMapMessage(ErrorAlreadyClosed) {
		panic(fmt.Errorf("error code collision xopen/process"))
	}
	liberr.RegisterIdFctMessage(ErrorAlreadyClosed, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorAlreadyClosed:
		return "process handle is already closed"
	case ErrorTimedOut:
		return "process did not exit before the requested timeout"
	case ErrorProcessFailed:
		return "process exited with code %d, outside the accepted set"
	case ErrorInvalidStreamName:
		return "stream name must be one of stdin, stdout, stderr"
	case ErrorNotAPipe:
		return "wrap_pipes was requested on stream %q, which is not an open pipe"
	}
	return liberr.NullMessage
}
