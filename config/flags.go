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

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// EnvAPIKey is the environment variable holding the Artifactory API key.
	EnvAPIKey = "ARTIFACTORY_API_KEY"

	flagRepositoryURL  = "repository-url"
	flagRepositoryPath = "repository-path"
	flagFile           = "file"
	flagProperties     = "properties"

	flagTransport    = "transport"
	envTransport     = "ARTIFACTORY_UPLOAD_TRANSPORT"
	defaultTransport = TransportHTTP

	flagTimeout = "timeout"
)

// BindFlags will parse the given pflag.FlagSet for the upload flags and set the Options accordingly.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.RepositoryURL, flagRepositoryURL, "",
		"Base `URL` to an Artifactory repository.")
	fs.StringVar(&o.RepositoryPath, flagRepositoryPath, "",
		"The `PATH` inside the Artifactory repository where the new file shall be placed.")
	fs.StringVar(&o.File, flagFile, "",
		"The `PATH` to the file which shall get uploaded.")
	fs.StringArrayVar(&o.Properties, flagProperties, nil,
		"`KEY=VALUE` pairs which get attached as properties to the uploaded file.")
	fs.StringVar(&o.Transport, flagTransport,
		envOrDefault(envTransport, defaultTransport),
		"The transport used for the upload. Can be 'http' or 'curl'.")
	fs.DurationVar(&o.Timeout, flagTimeout, 0,
		"The maximum duration of the upload request, 0 means no timeout.")
}

// envOrDefault returns the value of the environment variable named by the key.
// If the variable is empty or not present, it returns the defaultValue instead.
func envOrDefault(envName, defaultValue string) string {
	ret := os.Getenv(envName)
	if ret != "" {
		return ret
	}
	return defaultValue
}

// NormalizeArgs rewrites the "--properties a=1 b=2" form, where the flag takes
// all following arguments up to the next flag, into one "--properties=VALUE"
// argument per value. A --properties flag without any value is dropped, so it
// never consumes the flag after it. Arguments after a "--" terminator are
// kept as they are.
func NormalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(normalized, args[i:]...)
		}
		if arg != "--"+flagProperties {
			normalized = append(normalized, arg)
			continue
		}
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			normalized = append(normalized, "--"+flagProperties+"="+args[i])
		}
	}
	return normalized
}
