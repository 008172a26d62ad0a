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
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/fluxcd/artifactory-upload/config"
	"github.com/fluxcd/artifactory-upload/digest"
)

func TestPropertiesSegment(t *testing.T) {
	tests := []struct {
		name       string
		properties []string
		want       string
	}{
		{name: "no properties", properties: nil, want: ""},
		{name: "empty properties", properties: []string{}, want: ""},
		{name: "single property", properties: []string{"build=42"}, want: ";build=42"},
		{name: "keeps order", properties: []string{"b=2", "a=1"}, want: ";b=2;a=1"},
		{name: "malformed entries are forwarded", properties: []string{"novalue", "x=y=z"}, want: ";novalue;x=y=z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(PropertiesSegment(tt.properties)).To(Equal(tt.want))
		})
	}
}

func TestRequest_URL(t *testing.T) {
	tests := []struct {
		name           string
		repositoryURL  string
		repositoryPath string
		file           string
		properties     []string
		want           string
	}{
		{
			name:           "without properties",
			repositoryURL:  "https://example.com/repo",
			repositoryPath: "sub/dir",
			file:           "/tmp/artifact.bin",
			want:           "https://example.com/repo/sub/dir/artifact.bin",
		},
		{
			name:           "with a property",
			repositoryURL:  "https://example.com/repo",
			repositoryPath: "sub/dir",
			file:           "/tmp/artifact.bin",
			properties:     []string{"build=42"},
			want:           "https://example.com/repo;build=42/sub/dir/artifact.bin",
		},
		{
			name:          "empty repository path keeps both slashes",
			repositoryURL: "https://example.com/repo",
			file:          "artifact.bin",
			want:          "https://example.com/repo//artifact.bin",
		},
		{
			name:           "relative file path uses the base name",
			repositoryURL:  "https://example.com/repo",
			repositoryPath: "releases",
			file:           "build/out/app.tar.gz",
			properties:     []string{"a=1", "b=2"},
			want:           "https://example.com/repo;a=1;b=2/releases/app.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)

			r := NewRequest(&config.Options{
				RepositoryURL:  tt.repositoryURL,
				RepositoryPath: tt.repositoryPath,
				File:           tt.file,
				Properties:     tt.properties,
			}, digest.Checksums{})

			u := r.URL()
			g.Expect(u).To(Equal(tt.want))
			// Same input, same URL.
			g.Expect(r.URL()).To(Equal(u))

			rest := strings.TrimPrefix(u, tt.repositoryURL)
			if len(tt.properties) == 0 {
				g.Expect(rest).To(HavePrefix("/"))
				g.Expect(rest).NotTo(ContainSubstring(";"))
			} else {
				g.Expect(rest).To(HavePrefix(PropertiesSegment(tt.properties) + "/"))
			}
		})
	}
}

func TestRequest_Headers(t *testing.T) {
	g := NewWithT(t)

	checksums := digest.FromBytes([]byte("abc"))
	r := NewRequest(&config.Options{
		RepositoryURL: "https://example.com/repo",
		File:          "/tmp/artifact.bin",
		APIKey:        "AKCp8secret",
	}, checksums)

	g.Expect(r.Headers()).To(Equal([]Header{
		{Name: "X-JFrog-Art-Api", Value: "AKCp8secret"},
		{Name: "X-Checksum-Deploy", Value: "false"},
		{Name: "X-Checksum-Sha256", Value: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{Name: "X-Checksum-Sha1", Value: "a9993e364706816aba3e25717850c26c9cd0d89d"},
	}))
}

func TestNewRequest_CopiesProperties(t *testing.T) {
	g := NewWithT(t)

	opts := &config.Options{Properties: []string{"a=1"}}
	r := NewRequest(opts, digest.Checksums{})
	opts.Properties[0] = "changed=1"

	g.Expect(r.Properties).To(Equal([]string{"a=1"}))
}
