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

package config

// UsageErrorExitCode is the exit status for command line usage errors.
const UsageErrorExitCode = 2

// UsageError is returned when the command line arguments are incomplete or
// invalid. It is detected before any file or network I/O.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// ExitCode returns UsageErrorExitCode.
func (e *UsageError) ExitCode() int {
	return UsageErrorExitCode
}
