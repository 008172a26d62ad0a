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
	"path/filepath"
	"strings"

	"github.com/fluxcd/artifactory-upload/config"
	"github.com/fluxcd/artifactory-upload/digest"
)

// Artifactory deploy headers. The names are sent with exactly this casing.
const (
	HeaderAPIKey         = "X-JFrog-Art-Api"
	HeaderChecksumDeploy = "X-Checksum-Deploy"
	HeaderChecksumSHA256 = "X-Checksum-Sha256"
	HeaderChecksumSHA1   = "X-Checksum-Sha1"
)

// Header is a single HTTP request header.
type Header struct {
	Name  string
	Value string
}

// Request describes the PUT of one file into an Artifactory repository.
type Request struct {
	// RepositoryURL is the base URL of the repository.
	RepositoryURL string
	// RepositoryPath is the path inside the repository, it may be empty.
	RepositoryPath string
	// FilePath is the local file whose content is the request body.
	FilePath string
	// Properties are KEY=VALUE entries attached to the deployed file.
	Properties []string
	// APIKey is sent as the X-JFrog-Art-Api header, it may be empty.
	APIKey string
	// Checksums are the digests of the file content.
	Checksums digest.Checksums
}

// NewRequest returns the Request for the given options and file digests.
func NewRequest(opts *config.Options, checksums digest.Checksums) *Request {
	return &Request{
		RepositoryURL:  opts.RepositoryURL,
		RepositoryPath: opts.RepositoryPath,
		FilePath:       opts.File,
		Properties:     append([]string(nil), opts.Properties...),
		APIKey:         opts.APIKey,
		Checksums:      checksums,
	}
}

// PropertiesSegment returns the matrix parameters Artifactory reads
// properties from, e.g. ";a=1;b=2". It is empty when there are no properties.
// Entries are used verbatim and in order.
func PropertiesSegment(properties []string) string {
	var sb strings.Builder
	for _, p := range properties {
		sb.WriteByte(';')
		sb.WriteString(p)
	}
	return sb.String()
}

// URL returns the deploy URL:
// <repository URL><properties>/<repository path>/<file name>.
// Both slashes are always present, an empty repository path leaves an
// empty segment.
func (r *Request) URL() string {
	return r.RepositoryURL + PropertiesSegment(r.Properties) +
		"/" + r.RepositoryPath + "/" + filepath.Base(r.FilePath)
}

// Headers returns the deploy headers in a stable order.
func (r *Request) Headers() []Header {
	return []Header{
		{Name: HeaderAPIKey, Value: r.APIKey},
		{Name: HeaderChecksumDeploy, Value: "false"},
		{Name: HeaderChecksumSHA256, Value: r.Checksums.SHA256},
		{Name: HeaderChecksumSHA1, Value: r.Checksums.SHA1},
	}
}
