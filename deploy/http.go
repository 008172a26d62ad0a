/*
Copyright 2026 The Flux authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package deploy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fluxcd/artifactory-upload/digest"
)

// UserAgent is sent with every request of the HTTPTransport.
const UserAgent = "artifactory-upload"

// HTTPTransport uploads files with an in-process HTTP client.
type HTTPTransport struct {
	httpClient *retryablehttp.Client
}

// NewHTTPTransport configures a client that makes a single attempt per
// request. A zero timeout leaves the request unbounded.
func NewHTTPTransport(log logr.Logger, timeout time.Duration) *HTTPTransport {
	httpClient := retryablehttp.NewClient()
	httpClient.HTTPClient = cleanhttp.DefaultPooledClient()
	httpClient.HTTPClient.Timeout = timeout
	httpClient.RetryMax = 0
	httpClient.CheckRetry = noRetryPolicy
	httpClient.Logger = newErrorLogger(log)

	return &HTTPTransport{
		httpClient: httpClient,
	}
}

// noRetryPolicy never asks for another attempt and hands every response,
// whatever its status, back to the caller.
func noRetryPolicy(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

// Put streams the file to the request URL.
// A non-2xx response is returned as a TransportError with ExitCodeHTTPError,
// after its body has been written to stderr.
func (t *HTTPTransport) Put(ctx context.Context, r *Request, stdout, stderr io.Writer) error {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return &digest.FileAccessError{Path: r.FilePath, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return &digest.FileAccessError{Path: r.FilePath, Err: err}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPut, r.URL(), f)
	if err != nil {
		return &TransportError{Code: ExitCodeFailure, Err: fmt.Errorf("failed to create a new request: %w", err)}
	}
	req.ContentLength = fi.Size()
	for _, h := range r.Headers() {
		// Assigned directly to keep the casing Artifactory documents.
		req.Header[h.Name] = []string{h.Value}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return &TransportError{Code: exitCodeFor(err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Code: exitCodeFor(err), StatusCode: resp.StatusCode,
			Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if code := resp.StatusCode; code < 200 || code > 299 {
		if len(body) > 0 {
			if err := writeBody(stderr, body); err != nil {
				return &TransportError{Code: ExitCodeWriteError, StatusCode: code, Err: err}
			}
		}
		return &TransportError{Code: ExitCodeHTTPError, StatusCode: code,
			Err: fmt.Errorf("the requested URL returned error: %s", resp.Status)}
	}

	if err := writeBody(stdout, body); err != nil {
		return &TransportError{Code: ExitCodeWriteError, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// writeBody writes the response body followed by a newline.
func writeBody(w io.Writer, body []byte) error {
	if _, err := w.Write(append(body, '\n')); err != nil {
		return fmt.Errorf("failed to write response body: %w", err)
	}
	return nil
}
