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
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/fluxcd/artifactory-upload/logger"
)

// DefaultCurlBinary is looked up in PATH.
const DefaultCurlBinary = "curl"

// CurlTransport uploads files by running the curl command line client.
// The exit status of curl is returned as the TransportError code.
type CurlTransport struct {
	// Binary is the curl executable to run.
	Binary  string
	timeout time.Duration
	log     logr.Logger
}

// NewCurlTransport returns a CurlTransport running DefaultCurlBinary.
func NewCurlTransport(log logr.Logger, timeout time.Duration) *CurlTransport {
	return &CurlTransport{
		Binary:  DefaultCurlBinary,
		timeout: timeout,
		log:     log.WithName("curl"),
	}
}

// Args returns the curl arguments for the given request. The headers are
// read from stdin, which keeps the API key out of the process list.
func (t *CurlTransport) Args(r *Request) []string {
	args := []string{
		"--silent",
		"--show-error",
		"--fail",
		"--write-out", "\n",
		"--request", "PUT",
		"--header", "@-",
	}
	if t.timeout > 0 {
		args = append(args, "--max-time", strconv.FormatFloat(t.timeout.Seconds(), 'f', -1, 64))
	}
	return append(args, "--upload-file", r.FilePath, r.URL())
}

// HeaderFile returns the headers in the format curl reads with "--header @-".
// curl drops a header written as "Name:", so an empty value uses the
// "Name;" form to still send it.
func HeaderFile(r *Request) string {
	var sb strings.Builder
	for _, h := range r.Headers() {
		if h.Value == "" {
			fmt.Fprintf(&sb, "%s;\n", h.Name)
			continue
		}
		fmt.Fprintf(&sb, "%s:%s\n", h.Name, h.Value)
	}
	return sb.String()
}

// Put runs curl and waits for it to exit.
func (t *CurlTransport) Put(ctx context.Context, r *Request, stdout, stderr io.Writer) error {
	args := t.Args(r)
	t.log.V(logger.DebugLevel).Info("running curl", "binary", t.Binary, "args", args)

	cmd := exec.CommandContext(ctx, t.Binary, args...)
	cmd.Stdin = strings.NewReader(HeaderFile(r))
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &TransportError{Code: exitErr.ExitCode(), Err: fmt.Errorf("%s exited with status %d", t.Binary, exitErr.ExitCode())}
	}
	return &TransportError{Code: ExitCodeFailure, Err: fmt.Errorf("failed to run %s: %w", t.Binary, err)}
}
