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

package config_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/fluxcd/artifactory-upload/config"
)

func validOptions() config.Options {
	return config.Options{
		RepositoryURL: "https://example.com/repo",
		File:          "/tmp/artifact.bin",
		Transport:     config.TransportHTTP,
	}
}

func Test_Options_Validate(t *testing.T) {
	tests := []struct {
		name        string
		commandLine []string
		expectedErr string
	}{
		{
			name:        "required flags given",
			commandLine: []string{"--repository-url", "https://example.com/repo", "--file", "/tmp/artifact.bin"},
		},
		{
			name: "repository path and file do not need to exist",
			commandLine: []string{
				"--repository-url", "https://example.com/repo",
				"--repository-path", "does/not/matter",
				"--file", "/this/file/does/not/exist",
			},
		},
		{
			name:        "empty values only need to be present",
			commandLine: []string{"--repository-url", "", "--file="},
		},
		{
			name:        "missing repository url",
			commandLine: []string{"--file", "/tmp/artifact.bin"},
			expectedErr: "the following arguments are required: --repository-url",
		},
		{
			name:        "missing file",
			commandLine: []string{"--repository-url", "https://example.com/repo"},
			expectedErr: "the following arguments are required: --file",
		},
		{
			name:        "missing repository url and file",
			commandLine: []string{"--repository-path", "sub/dir"},
			expectedErr: "the following arguments are required: --repository-url, --file",
		},
		{
			name: "unsupported transport",
			commandLine: []string{
				"--repository-url", "https://example.com/repo", "--file", "/tmp/artifact.bin",
				"--transport", "ftp",
			},
			expectedErr: `invalid transport "ftp"`,
		},
		{
			name: "negative timeout",
			commandLine: []string{
				"--repository-url", "https://example.com/repo", "--file", "/tmp/artifact.bin",
				"--timeout", "-1s",
			},
			expectedErr: "invalid timeout -1s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			f := pflag.NewFlagSet("test", pflag.ContinueOnError)
			opts := config.Options{}
			opts.BindFlags(f)
			g.Expect(f.Parse(tt.commandLine)).To(Succeed())

			err := opts.Validate(f)
			if tt.expectedErr == "" {
				g.Expect(err).NotTo(HaveOccurred())
				return
			}

			g.Expect(err).To(HaveOccurred())
			g.Expect(err.Error()).To(ContainSubstring(tt.expectedErr))

			var usageErr *config.UsageError
			g.Expect(errors.As(err, &usageErr)).To(BeTrue())
			g.Expect(usageErr.ExitCode()).To(Equal(2))
		})
	}
}

func Test_Options_Complete(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		apiKey      string
		expectedErr string
	}{
		{
			name: "no arguments",
		},
		{
			name:        "leftover arguments are rejected",
			args:        []string{"b=2", "c=3"},
			expectedErr: "unrecognized arguments: b=2 c=3",
		},
		{
			name:   "api key is read from the environment",
			apiKey: "AKCp8secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			t.Setenv(config.EnvAPIKey, tt.apiKey)

			opts := validOptions()
			opts.Properties = []string{"a=1"}

			err := opts.Complete(tt.args)
			if tt.expectedErr != "" {
				var usageErr *config.UsageError
				g.Expect(errors.As(err, &usageErr)).To(BeTrue())
				g.Expect(err.Error()).To(ContainSubstring(tt.expectedErr))
				return
			}

			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(opts.Properties).To(Equal([]string{"a=1"}))
			g.Expect(opts.APIKey).To(Equal(tt.apiKey))
		})
	}
}

func Test_Options_MalformedProperties(t *testing.T) {
	g := NewWithT(t)

	opts := validOptions()
	opts.Properties = []string{"build=42", "novalue", "=orphan", "empty=", "a=b=c"}

	g.Expect(opts.MalformedProperties()).To(Equal([]string{"novalue", "=orphan"}))
}
