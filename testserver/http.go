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
	"net/http"
	"net/http/httptest"
	"path/filepath"
)

// HTTPServer is an HTTP server for testing purposes. It serves a single
// handler and offers a lightweight middleware configuration option.
type HTTPServer struct {
	docroot    string
	handler    http.Handler
	middleware func(http.Handler) http.Handler
	server     *httptest.Server
}

func newHTTPServer(docroot string, handler http.Handler) *HTTPServer {
	root, err := filepath.Abs(docroot)
	if err != nil {
		panic(err)
	}
	return &HTTPServer{
		docroot: root,
		handler: handler,
	}
}

// WithMiddleware configures the middleware of the HTTPServer, this can for
// example be used to inject failures. It should be called before starting
// the server, or requires a stop/start cycle.
func (s *HTTPServer) WithMiddleware(m func(handler http.Handler) http.Handler) *HTTPServer {
	s.middleware = m
	return s
}

// Start starts the HTTPServer.
func (s *HTTPServer) Start() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.middleware != nil {
			s.middleware(s.handler).ServeHTTP(w, r)
			return
		}
		s.handler.ServeHTTP(w, r)
	}))
}

// Stop stops the HTTPServer, if started.
func (s *HTTPServer) Stop() {
	if s.server != nil {
		s.server.Close()
	}
}

// Root returns the configured docroot of the HTTPServer.
func (s *HTTPServer) Root() string {
	return s.docroot
}

// URL returns the base URL of the HTTPServer, it is empty until the server
// has been started.
func (s *HTTPServer) URL() string {
	if s.server != nil {
		return s.server.URL
	}
	return ""
}
