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
	"io"

	"github.com/spf13/cobra"

	"github.com/fluxcd/artifactory-upload/config"
	"github.com/fluxcd/artifactory-upload/deploy"
	"github.com/fluxcd/artifactory-upload/digest"
	"github.com/fluxcd/artifactory-upload/logger"
	"github.com/fluxcd/artifactory-upload/masktoken"
)

const longDescription = `Upload a file to Artifactory.

The SHA-256 and SHA-1 checksums of the file are sent along with the file
content, and the given properties are attached to the deployed file.

Additionally the environment variable "ARTIFACTORY_API_KEY" must be defined
and contain a valid key which can be used as a value within a
"X-JFrog-Art-Api" HTTP header.`

type rootOptions struct {
	upload config.Options
	log    logger.Options
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "artifactory-upload --repository-url URL --file PATH [--repository-path PATH] [--properties KEY=VALUE ...]",
		Short:         "Upload a file to Artifactory",
		Long:          longDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, args, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.UsageError{Reason: err.Error()}
	})

	opts.upload.BindFlags(cmd.Flags())
	opts.log.BindFlags(cmd.Flags())
	cmd.Flags().SortFlags = false

	return cmd, opts
}

func runUpload(cmd *cobra.Command, args []string, opts *rootOptions) error {
	if err := opts.upload.Complete(args); err != nil {
		return err
	}
	if err := opts.upload.Validate(cmd.Flags()); err != nil {
		return err
	}

	log := logger.NewLogger(opts.log, cmd.ErrOrStderr())
	if malformed := opts.upload.MalformedProperties(); len(malformed) > 0 {
		log.Info("properties are not in KEY=VALUE form and are used as is", "properties", malformed)
	}

	checksums, err := digest.FromFile(opts.upload.File)
	if err != nil {
		return err
	}
	req := deploy.NewRequest(&opts.upload, checksums)
	log.V(logger.DebugLevel).Info("computed checksums", "file", req.FilePath,
		"sha256", checksums.SHA256, "sha1", checksums.SHA1)

	transport, err := deploy.NewTransport(opts.upload.Transport, log, opts.upload.Timeout)
	if err != nil {
		return &config.UsageError{Reason: err.Error()}
	}

	stdout := masktoken.NewWriter(cmd.OutOrStdout(), req.APIKey)
	stderr := masktoken.NewWriter(cmd.ErrOrStderr(), req.APIKey)
	defer stdout.Flush()
	defer stderr.Flush()

	log.V(logger.DebugLevel).Info("uploading artifact", "url", req.URL(), "transport", opts.upload.Transport)
	if err := transport.Put(cmd.Context(), req, stdout, stderr); err != nil {
		return err
	}
	log.V(logger.DebugLevel).Info("artifact uploaded", "url", req.URL())
	return nil
}
