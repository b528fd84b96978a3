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
	"context"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"
)

// Listener receives the process's exit code when Close fires its CLOSE
// event, mirroring the donor WrappedHandle's listener-registration shape.
type Listener func(returncode int, exited bool)

// Process wraps an *exec.Cmd together with the std-stream slot machine
// and idempotent, timeout-aware Close described in the process adapter
// design: absent -> open -> wrapped? -> closed per stream.
type Process struct {
	cmd *exec.Cmd

	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr io.ReadCloser

	stdinSlot  atomic.Int32
	stdoutSlot atomic.Int32
	stderrSlot atomic.Int32

	started atomic.Bool
	closed  atomic.Bool

	cancel context.CancelFunc

	mu        sync.Mutex
	listeners []Listener

	recordOutput bool
	outStdout    []byte
	outStderr    []byte
}

// New builds a Process for name/args without starting it. ctx governs
// Terminate: cancelling it kills the child if still running.
func New(ctx context.Context, name string, args ...string) *Process {
	cctx, cancel := context.WithCancel(ctx)
	c := exec.CommandContext(cctx, name, args...)

	return &Process{cmd: c, cancel: cancel}
}

// Cmd exposes the underlying *exec.Cmd for callers that need to set
// Dir, Env, or SysProcAttr before Start.
func (p *Process) Cmd() *exec.Cmd {
	return p.cmd
}

// Start opens the requested std pipes and launches the child. wantStdin/
// wantStdout/wantStderr select which of the three streams to pipe; a
// stream not requested stays in the "absent" slot state.
func (p *Process) Start(wantStdin, wantStdout, wantStderr bool) error {
	if wantStdin {
		in, err := p.cmd.StdinPipe()
		if err != nil {
			return ErrorNotAPipe.Error(err)
		}
		p.stdin = in
		p.stdinSlot.Store(int32(slotOpen))
	}
	if wantStdout {
		out, err := p.cmd.StdoutPipe()
		if err != nil {
			return ErrorNotAPipe.Error(err)
		}
		p.stdout = out
		p.stdoutSlot.Store(int32(slotOpen))
	}
	if wantStderr {
		errPipe, err := p.cmd.StderrPipe()
		if err != nil {
			return ErrorNotAPipe.Error(err)
		}
		p.stderr = errPipe
		p.stderrSlot.Store(int32(slotOpen))
	}

	if err := p.cmd.Start(); err != nil {
		return err
	}
	p.started.Store(true)
	return nil
}

// IsWrapped reports whether stream currently carries a codec layer.
func (p *Process) IsWrapped(stream Stream) bool {
	return p.slotState(stream) == slotWrapped
}

func (p *Process) slot(stream Stream) *atomic.Int32 {
	switch stream {
	case Stdin:
		return &p.stdinSlot
	case Stdout:
		return &p.stdoutSlot
	default:
		return &p.stderrSlot
	}
}

func (p *Process) slotState(stream Stream) slotState {
	return slotState(p.slot(stream).Load())
}

// markWrapped records that stream now carries a codec layer; called by
// WrapStdin/WrapStdout/WrapStderr in wrap.go after a successful wrap.
func (p *Process) markWrapped(stream Stream) error {
	s := p.slot(stream)
	if slotState(s.Load()) != slotOpen {
		return ErrorNotAPipe.Errorf(stream.String())
	}
	s.Store(int32(slotWrapped))
	return nil
}

// RawStdin/RawStdout/RawStderr expose the unwrapped pipe ends, for
// WrapStdin/WrapStdout/WrapStderr to layer a codec over.
func (p *Process) RawStdin() io.WriteCloser { return p.stdin }
func (p *Process) RawStdout() io.ReadCloser { return p.stdout }
func (p *Process) RawStderr() io.ReadCloser { return p.stderr }

// RegisterListener adds a CLOSE listener, fired by Close with the
// process's exit code.
func (p *Process) RegisterListener(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

func (p *Process) fireListeners(code int, exited bool) {
	p.mu.Lock()
	ls := append([]Listener(nil), p.listeners...)
	p.mu.Unlock()

	for _, l := range ls {
		l(code, exited)
	}
}

// CloseOptions controls Close's behaviour.
type CloseOptions struct {
	Timeout       time.Duration // <=0 means wait indefinitely
	RaiseOnError  bool
	RecordOutput  bool
	Terminate     bool // on timeout, kill the child instead of erroring
}

// Close closes stdin (any wrapper then the raw pipe), waits for the
// child up to opts.Timeout, optionally drains and records stdout/stderr,
// fires CLOSE listeners with the exit code, and — when RaiseOnError —
// rejects any exit code outside acceptedExitCodes().
func (p *Process) Close(opts CloseOptions) error {
	if p.closed.Swap(true) {
		if opts.RaiseOnError {
			return ErrorAlreadyClosed.Error(nil)
		}
		return nil
	}

	if p.stdin != nil {
		_ = p.stdin.Close()
	}

	waitErr := p.waitWithTimeout(opts.Timeout, opts.Terminate)

	if opts.RecordOutput {
		if p.stdout != nil {
			p.outStdout, _ = io.ReadAll(p.stdout)
		}
		if p.stderr != nil {
			p.outStderr, _ = io.ReadAll(p.stderr)
		}
	}
	if p.stdout != nil {
		_ = p.stdout.Close()
	}
	if p.stderr != nil {
		_ = p.stderr.Close()
	}
	p.stdinSlot.Store(int32(slotClosed))
	p.stdoutSlot.Store(int32(slotClosed))
	p.stderrSlot.Store(int32(slotClosed))

	code, exited := p.exitCode()
	p.fireListeners(code, exited)

	if waitErr != nil {
		if waitErr == context.DeadlineExceeded {
			if opts.Terminate {
				return nil
			}
			return ErrorTimedOut.Error(nil)
		}
	}

	if opts.RaiseOnError && !acceptedCode(code) {
		return ErrorProcessFailed.Errorf(code)
	}
	return nil
}

func acceptedCode(code int) bool {
	for _, c := range acceptedExitCodes() {
		if c == code {
			return true
		}
	}
	return false
}

// waitWithTimeout races cmd.Wait() against timeout on a background
// goroutine, mirroring mapCloser's context-poll pattern; a zero timeout
// waits indefinitely. On timeout, Terminate kills the child instead of
// leaving it to the caller's ctx cancellation.
func (p *Process) waitWithTimeout(timeout time.Duration, terminate bool) error {
	if !p.started.Load() {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- p.cmd.Wait() }()

	if timeout <= 0 {
		<-done
		return nil
	}

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-done:
		return nil
	case <-t.C:
		if terminate {
			p.Terminate()
			<-done
		}
		return context.DeadlineExceeded
	}
}

// Terminate cancels the Process's context, killing the child if it is
// still running.
func (p *Process) Terminate() {
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *Process) exitCode() (code int, exited bool) {
	st := p.cmd.ProcessState
	if st == nil {
		return 0, false
	}
	return st.ExitCode(), true
}

// Output returns the bytes captured by Close when RecordOutput was set.
func (p *Process) Output() (stdout, stderr []byte) {
	return p.outStdout, p.outStderr
}

// Communicate writes input to stdin (if non-nil), then closes with
// RaiseOnError and RecordOutput set, and returns the captured streams.
func (p *Process) Communicate(input []byte) (stdout, stderr []byte, err error) {
	if input != nil && p.stdin != nil {
		if _, werr := p.stdin.Write(input); werr != nil {
			return nil, nil, werr
		}
	}

	err = p.Close(CloseOptions{RaiseOnError: true, RecordOutput: true})
	stdout, stderr = p.Output()
	return stdout, stderr, err
}
