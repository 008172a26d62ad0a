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
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/go-logr/logr"

	"github.com/fluxcd/artifactory-upload/config"
)

// Exit codes for transport failures. They follow the curl exit codes for
// the same conditions, so both transports report failures alike.
const (
	ExitCodeFailure        = 1
	ExitCodeResolveHost    = 6
	ExitCodeConnect        = 7
	ExitCodeHTTPError      = 22
	ExitCodeWriteError     = 23
	ExitCodeOperationTimed = 28
)

// Transport performs the PUT described by a Request. The server response
// body goes to stdout on success and to stderr on failure. Exactly one
// attempt is made.
type Transport interface {
	Put(ctx context.Context, req *Request, stdout, stderr io.Writer) error
}

// NewTransport returns the Transport registered under the given name.
func NewTransport(name string, log logr.Logger, timeout time.Duration) (Transport, error) {
	switch name {
	case config.TransportHTTP:
		return NewHTTPTransport(log, timeout), nil
	case config.TransportCurl:
		return NewCurlTransport(log, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported transport '%s'", name)
	}
}

// TransportError is returned when the upload could not be performed or the
// server did not answer with a 2xx status. Code is the exit status the
// process should terminate with and StatusCode the HTTP status, if known.
type TransportError struct {
	Code       int
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upload failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status, it is never zero.
func (e *TransportError) ExitCode() int {
	if e.Code <= 0 {
		return ExitCodeFailure
	}
	return e.Code
}

// exitCodeFor maps a network level error to the matching curl exit code.
func exitCodeFor(err error) int {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ExitCodeResolveHost
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ExitCodeOperationTimed
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ExitCodeOperationTimed
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return ExitCodeConnect
	}
	return ExitCodeFailure
}
