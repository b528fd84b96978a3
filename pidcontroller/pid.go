/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package pidcontroller implements a small discrete PID (proportional,
// integral, derivative) stepper, used by the duration package to space out
// a range of values between two bounds instead of stepping them linearly.
package pidcontroller

import "context"

// Controller steps a PID loop one correction at a time.
type Controller struct {
	rateP float64
	rateI float64
	rateD float64
}

// New returns a Controller tuned with the given proportional, integral and
// derivative rates.
func New(rateP, rateI, rateD float64) *Controller {
	return &Controller{rateP: rateP, rateI: rateI, rateD: rateD}
}

// RangeCtx walks from 'from' to 'to', accumulating a PID-corrected step at
// each iteration, and returns every value visited along the way. It stops
// early, returning what it has so far, if ctx is canceled.
func (c *Controller) RangeCtx(ctx context.Context, from, to float64) []float64 {
	var (
		out       = []float64{from}
		setPoint  = to
		value     = from
		integral  float64
		lastError = setPoint - value
	)

	for {
		select {
		case <-ctx.Done():
			return out
		default:
		}

		err := setPoint - value
		if (from <= to && value >= to) || (from > to && value <= to) {
			break
		}

		integral += err
		derivative := err - lastError
		lastError = err

		step := c.rateP*err + c.rateI*integral + c.rateD*derivative
		if step == 0 {
			break
		}

		value += step
		if (from <= to && value > to) || (from > to && value < to) {
			value = to
		}
		out = append(out, value)

		if value == to {
			break
		}
	}

	return out
}
