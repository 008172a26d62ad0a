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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/fluxcd/artifactory-upload/config"
	"github.com/fluxcd/artifactory-upload/masktoken"
)

func main() {
	os.Exit(execute(signals.SetupSignalHandler(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the upload command with the given arguments and returns the
// process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd, opts := newRootCmd(stdout, stderr)
	cmd.SetArgs(config.NormalizeArgs(args))

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var usageErr *config.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	fmt.Fprintf(stderr, "Error: %s\n", masktoken.MaskTokenFromString(err.Error(), opts.upload.APIKey))
	return exitCode(err)
}

// exitCoder is implemented by the errors which carry their own exit status.
type exitCoder interface {
	ExitCode() int
}

// exitCode maps an upload error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}
