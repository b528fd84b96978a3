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

// Package urlutil is the URL collaborator a Descriptor of FileType URL
// hands off to: Parse validates the string, Open performs the request
// and returns the body as a stream, and DeriveName recovers a filename
// from Content-Disposition or, failing that, the URL path.
package urlutil

import (
	"context"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Parse validates raw as an absolute URL with a scheme and host.
func Parse(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrorInvalidURL.Errorf(raw)
	}
	return u, nil
}

// Open issues a GET request against u and returns the response body as
// an io.ReadCloser; the caller is responsible for closing it. A non-2xx
// status closes the body and fails with ErrorUnexpectedStatus.
func Open(ctx context.Context, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, ErrorInvalidURL.Errorf(u.String())
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, ErrorRequestFailed.Errorf(u.String())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, ErrorUnexpectedStatus.Errorf(u.String(), resp.StatusCode)
	}

	return resp, nil
}

// DeriveName recovers a filename for the fetched resource, preferring
// the Content-Disposition header's filename parameter and falling back
// to the last path segment of u. It returns "" when neither yields a
// usable name (e.g. a bare "https://host/" URL with no disposition).
func DeriveName(resp *http.Response, u *url.URL) string {
	if resp != nil {
		if cd := resp.Header.Get("Content-Disposition"); cd != "" {
			if _, params, err := mime.ParseMediaType(cd); err == nil {
				if name := params["filename"]; name != "" {
					return name
				}
			}
		}
	}

	if u == nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "" || base == "." || base == "/" || strings.TrimSpace(base) == "" {
		return ""
	}
	return base
}
