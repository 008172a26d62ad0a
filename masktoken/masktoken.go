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

package masktoken

import (
	"bytes"
	"io"
	"strings"
)

// Mask replaces every occurrence of a token.
const Mask = "*****"

// MaskTokenFromString redacts all occurrences of the given token from the
// provided string, replacing them with Mask. An empty token leaves the string
// untouched.
// This is used to keep the API key out of error messages and server output.
func MaskTokenFromString(log string, token string) string {
	if token == "" {
		return log
	}
	return strings.ReplaceAll(log, token, Mask)
}

// Writer masks a token in everything written through it. Output is
// forwarded line by line, so a token is masked even when it is split across
// two writes. Flush must be called to forward a trailing partial line.
type Writer struct {
	w     io.Writer
	token []byte
	buf   bytes.Buffer
}

// NewWriter returns a Writer forwarding to w.
func NewWriter(w io.Writer, token string) *Writer {
	return &Writer{w: w, token: []byte(token)}
}

// Write buffers p and forwards every complete line with the token masked.
func (m *Writer) Write(p []byte) (int, error) {
	m.buf.Write(p)
	i := bytes.LastIndexByte(m.buf.Bytes(), '\n')
	if i < 0 {
		return len(p), nil
	}
	if _, err := m.w.Write(m.mask(m.buf.Next(i + 1))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Flush forwards the buffered partial line, if any.
func (m *Writer) Flush() error {
	if m.buf.Len() == 0 {
		return nil
	}
	_, err := m.w.Write(m.mask(m.buf.Next(m.buf.Len())))
	return err
}

func (m *Writer) mask(p []byte) []byte {
	if len(m.token) == 0 {
		return p
	}
	return bytes.ReplaceAll(p, m.token, []byte(Mask))
}
