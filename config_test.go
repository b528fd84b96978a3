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

package xopen_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/nabbar/xopen"
)

var _ = Describe("Configure / Current", func() {
	It("TC-CFG-001: Configure snapshots viper keys into Current", func() {
		v := viper.New()
		v.Set("thread_ceiling", 8)
		v.Set("progress_enabled", true)
		v.Set("use_system", true)

		cfg := xopen.Configure(v)
		Expect(cfg.ThreadCeiling).To(Equal(8))
		Expect(cfg.ProgressEnabled).To(BeTrue())
		Expect(cfg.UseSystem).To(BeTrue())
		Expect(xopen.Current()).To(Equal(cfg))
	})

	It("TC-CFG-002: Configure(nil) applies defaults", func() {
		cfg := xopen.Configure(nil)
		Expect(cfg.ThreadCeiling).To(Equal(4))
		Expect(cfg.ProgressEnabled).To(BeFalse())
	})
})
