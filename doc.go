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

// Package artifactoryupload uploads a file to an Artifactory repository
// together with its checksums and properties.
//
// Configuration (config pkg):
//   - Flag binding for the repository URL, repository path, file and properties
//   - API key sourced once from the ARTIFACTORY_API_KEY environment variable
//   - Usage errors detected before any file or network I/O
//
// Digest Computation (digest pkg):
//   - SHA-256 and SHA-1 computed in a single pass over the file content
//
// Deployment (deploy pkg):
//   - Deploy URL with Artifactory matrix parameters for properties
//   - X-JFrog-Art-Api and X-Checksum-* headers
//   - Single attempt PUT with an in-process HTTP client or with curl
//   - Transport failures mapped to curl compatible exit codes
//
// The artifactory-upload command in cmd/cli wires these together and exits
// with the status of the upload.
package artifactoryupload
