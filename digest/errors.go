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

import "fmt"

// FileAccessError is returned when the file to be digested can not be
// opened or read. It includes the Path and the underlying Err.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to read file '%s': %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status for a file access failure.
func (e *FileAccessError) ExitCode() int {
	return 1
}
