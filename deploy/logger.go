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
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fluxcd/artifactory-upload/logger"
)

// newErrorLogger returns a retryablehttp.LeveledLogger writing to the given
// logr.Logger. The client errors are reported by the transport itself, so
// they are only logged at debug level.
func newErrorLogger(log logr.Logger) retryablehttp.LeveledLogger {
	return &errorLogger{log: log.WithName("http")}
}

type errorLogger struct {
	log logr.Logger
}

func (l *errorLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.V(logger.DebugLevel).Info(msg, keysAndValues...)
}

func (l *errorLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.V(logger.TraceLevel).Info(msg, keysAndValues...)
}

func (l *errorLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(logger.TraceLevel).Info(msg, keysAndValues...)
}

func (l *errorLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.V(logger.DebugLevel).Info(msg, keysAndValues...)
}
