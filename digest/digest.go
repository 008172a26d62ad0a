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

package digest

import (
	"bytes"
	"crypto/sha1"
	_ "crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	godigest "github.com/opencontainers/go-digest"
)

// Checksums holds the lowercase hex encoded digests Artifactory accepts
// as X-Checksum-* headers.
type Checksums struct {
	SHA256 string `json:"sha256"`
	SHA1   string `json:"sha1"`
}

// Digester computes the SHA-256 and SHA-1 digests of the data written to it
// in a single pass.
type Digester struct {
	sha256 godigest.Digester
	sha1   hash.Hash
	w      io.Writer
}

// NewDigester returns a Digester ready for writing.
func NewDigester() *Digester {
	d := &Digester{
		sha256: godigest.SHA256.Digester(),
		sha1:   sha1.New(),
	}
	d.w = io.MultiWriter(d.sha256.Hash(), d.sha1)
	return d
}

// Write adds more data to both running hashes. It never returns an error.
func (d *Digester) Write(p []byte) (int, error) {
	return d.w.Write(p)
}

// Checksums returns the digests of the data written so far.
func (d *Digester) Checksums() Checksums {
	return Checksums{
		SHA256: d.sha256.Digest().Encoded(),
		SHA1:   hex.EncodeToString(d.sha1.Sum(nil)),
	}
}

// FromReader consumes the reader and returns the digests of its content.
func FromReader(r io.Reader) (Checksums, error) {
	d := NewDigester()
	if _, err := io.Copy(d, r); err != nil {
		return Checksums{}, err
	}
	return d.Checksums(), nil
}

// FromBytes returns the digests of the given content.
func FromBytes(p []byte) Checksums {
	c, _ := FromReader(bytes.NewReader(p))
	return c
}

// FromFile returns the digests of the file content at the given path.
// Any failure to open or read the file is returned as a FileAccessError.
func FromFile(path string) (Checksums, error) {
	f, err := os.Open(path)
	if err != nil {
		return Checksums{}, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Checksums{}, &FileAccessError{Path: path, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return Checksums{}, &FileAccessError{Path: path, Err: fmt.Errorf("not a regular file")}
	}

	c, err := FromReader(f)
	if err != nil {
		return Checksums{}, &FileAccessError{Path: path, Err: err}
	}
	return c, nil
}
