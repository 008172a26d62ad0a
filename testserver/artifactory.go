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

package testserver

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Deploy is a request received by the ArtifactoryServer.
type Deploy struct {
	// Method is the HTTP method of the request.
	Method string
	// Path is the request path, including the properties.
	Path string
	// Target is the repository path the file was deployed to, without properties.
	Target string
	// Properties are the KEY=VALUE matrix parameters found in the path, in order.
	Properties []string
	// Header holds the request headers.
	Header http.Header
	// Body is the request body.
	Body []byte
}

// ArtifactoryServer is an HTTP server for testing purposes which mimics the
// deploy API of an Artifactory repository. PUT requests are stored below the
// docroot and can be fetched back with GET.
type ArtifactoryServer struct {
	*HTTPServer

	mu      sync.Mutex
	deploys []Deploy
	apiKey  string
	status  int
}

// NewTempArtifactoryServer returns an ArtifactoryServer with a newly created
// temp dir as the docroot.
func NewTempArtifactoryServer() (*ArtifactoryServer, error) {
	tmpDir, err := os.MkdirTemp("", "artifactory-test-")
	if err != nil {
		return nil, err
	}
	return NewArtifactoryServer(tmpDir), nil
}

// NewArtifactoryServer returns an ArtifactoryServer with the given docroot set.
func NewArtifactoryServer(docroot string) *ArtifactoryServer {
	s := &ArtifactoryServer{}
	s.HTTPServer = newHTTPServer(docroot, s)
	return s
}

// WithAPIKey makes the server answer 401 to requests which do not carry the
// given key in the X-JFrog-Art-Api header.
func (s *ArtifactoryServer) WithAPIKey(key string) *ArtifactoryServer {
	s.apiKey = key
	return s
}

// WithStatus makes the server answer every request with the given status
// code. Requests are still recorded.
func (s *ArtifactoryServer) WithStatus(code int) *ArtifactoryServer {
	s.status = code
	return s
}

// Deploys returns the requests received so far.
func (s *ArtifactoryServer) Deploys() []Deploy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Deploy(nil), s.deploys...)
}

// ServeHTTP implements http.Handler.
func (s *ArtifactoryServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	target, properties := splitProperties(r.URL.Path)

	s.mu.Lock()
	s.deploys = append(s.deploys, Deploy{
		Method:     r.Method,
		Path:       r.URL.Path,
		Target:     target,
		Properties: properties,
		Header:     r.Header.Clone(),
		Body:       body,
	})
	s.mu.Unlock()

	if s.status != 0 {
		writeError(w, s.status, http.StatusText(s.status))
		return
	}
	if s.apiKey != "" && r.Header.Get("X-JFrog-Art-Api") != s.apiKey {
		writeError(w, http.StatusUnauthorized, "Bad credentials")
		return
	}

	localPath, err := securejoin.SecureJoin(s.Root(), target)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch r.Method {
	case http.MethodGet:
		http.ServeFile(w, r, localPath)
	case http.MethodPut:
		s.deploy(w, r, localPath, target, body)
	default:
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}
}

func (s *ArtifactoryServer) deploy(w http.ResponseWriter, r *http.Request, localPath, target string, body []byte) {
	if r.Header.Get("X-Checksum-Deploy") == "true" {
		writeError(w, http.StatusNotFound, "Checksum deploy failed. No existing file with the given checksum.")
		return
	}

	sha256sum := fmt.Sprintf("%x", sha256.Sum256(body))
	sha1sum := fmt.Sprintf("%x", sha1.Sum(body))
	if v := r.Header.Get("X-Checksum-Sha256"); v != "" && v != sha256sum {
		writeError(w, http.StatusConflict, fmt.Sprintf("Checksum policy rejected the upload: sha256 '%s' does not match '%s'", v, sha256sum))
		return
	}
	if v := r.Header.Get("X-Checksum-Sha1"); v != "" && v != sha1sum {
		writeError(w, http.StatusConflict, fmt.Sprintf("Checksum policy rejected the upload: sha1 '%s' does not match '%s'", v, sha1sum))
		return
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := os.WriteFile(localPath, body, 0o644); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.org.jfrog.artifactory.storage.ItemCreated+json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"downloadUri": s.URL() + target,
		"path":        target,
		"size":        strconv.Itoa(len(body)),
		"checksums": map[string]string{
			"sha1":   sha1sum,
			"sha256": sha256sum,
		},
	})
}

// splitProperties removes the ";key=value" matrix parameters from every
// segment of the given path and returns the cleaned path and the parameters.
func splitProperties(p string) (string, []string) {
	var properties []string
	segments := strings.Split(p, "/")
	for i, segment := range segments {
		parts := strings.Split(segment, ";")
		segments[i] = parts[0]
		properties = append(properties, parts[1:]...)
	}
	return path.Clean("/" + strings.Join(segments, "/")), properties
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"errors": []map[string]interface{}{
			{"status": code, "message": message},
		},
	})
}
