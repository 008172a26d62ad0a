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

package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const (
	// TransportHTTP performs the upload with the in-process HTTP client.
	TransportHTTP = "http"
	// TransportCurl performs the upload by invoking the curl binary.
	TransportCurl = "curl"
)

// SupportedTransports lists the values accepted by the --transport flag.
var SupportedTransports = []string{TransportHTTP, TransportCurl}

// Options contains the settings of a single upload.
type Options struct {
	// RepositoryURL is the base URL of the Artifactory repository.
	RepositoryURL string `json:"repositoryURL"`
	// RepositoryPath is the path inside the repository where the file is placed.
	RepositoryPath string `json:"repositoryPath"`
	// File is the path to the local file to upload.
	File string `json:"file"`
	// Properties are KEY=VALUE pairs attached to the uploaded file, in order.
	Properties []string `json:"properties"`
	// Transport selects how the PUT request is performed.
	Transport string `json:"transport"`
	// Timeout bounds the upload request. Zero means no timeout.
	Timeout time.Duration `json:"timeout"`

	// APIKey is the value of the X-JFrog-Art-Api header. It is read from the
	// environment by Complete and never bound to a flag.
	APIKey string `json:"-"`
}

// Complete fills in the values which are not sourced from flags.
// Arguments left over after flag parsing are rejected, values for the
// properties flag are expected to be rewritten by NormalizeArgs beforehand.
func (o *Options) Complete(args []string) error {
	if len(args) > 0 {
		return &UsageError{Reason: fmt.Sprintf("unrecognized arguments: %s", strings.Join(args, " "))}
	}
	o.APIKey = os.Getenv(EnvAPIKey)
	return nil
}

// Validate returns a UsageError if a required flag was not given on the
// parsed flag set or a value is out of range. Required flags are only checked
// for presence, an empty value fails later when it is used. Validate does not
// touch the filesystem.
func (o *Options) Validate(fs *pflag.FlagSet) error {
	var missing []string
	for _, name := range []string{flagRepositoryURL, flagFile} {
		if !fs.Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return &UsageError{Reason: fmt.Sprintf("the following arguments are required: %s", strings.Join(missing, ", "))}
	}

	if !slices.Contains(SupportedTransports, o.Transport) {
		return &UsageError{Reason: fmt.Sprintf("invalid transport %q (must be one of: %q)", o.Transport, SupportedTransports)}
	}
	if o.Timeout < 0 {
		return &UsageError{Reason: fmt.Sprintf("invalid timeout %s", o.Timeout)}
	}
	return nil
}

// MalformedProperties returns the properties which do not have the
// KEY=VALUE shape. They are still forwarded as is.
func (o *Options) MalformedProperties() []string {
	var malformed []string
	for _, p := range o.Properties {
		if k, _, ok := strings.Cut(p, "="); !ok || k == "" {
			malformed = append(malformed, p)
		}
	}
	return malformed
}
