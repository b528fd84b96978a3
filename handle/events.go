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

package handle

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Event names a lifecycle moment a Handle fires listeners for.
type Event string

const (
	EventClose Event = "close"
)

// Listener receives the firing Handle plus event-specific keyword data,
// returning any error the listener's action produced. A non-nil return
// does not stop later listeners from firing; Fire aggregates every
// listener's error into a single *multierror.Error.
type Listener func(h Handle, kwargs map[string]interface{}) error

// EventManager registers and fires named-event listeners, in
// registration order, against whatever Handle is doing the firing.
type EventManager struct {
	mu        sync.Mutex
	listeners map[Event][]Listener
}

// Register adds l under event.
func (m *EventManager) Register(event Event, l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listeners == nil {
		m.listeners = make(map[Event][]Listener)
	}
	m.listeners[event] = append(m.listeners[event], l)
}

// Fire invokes every listener registered for event, passing h and kwargs,
// and returns their aggregated errors (nil if none failed).
func (m *EventManager) Fire(event Event, h Handle, kwargs map[string]interface{}) error {
	m.mu.Lock()
	ls := append([]Listener(nil), m.listeners[event]...)
	m.mu.Unlock()

	var result *multierror.Error
	for _, l := range ls {
		if err := l(h, kwargs); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
