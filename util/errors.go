// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"strings"
)

// HTTPErr is an error carrying the status code of a failed remote call
type HTTPErr struct {
	Status  int
	Message string
}

func (err HTTPErr) Error() string {
	return fmt.Sprintf("%d: %v", err.Status, err.Message)
}

// ConfigError reports environment variables that must be set but are not
type ConfigError struct {
	Missing []string
}

func (err *ConfigError) Error() string {
	if len(err.Missing) == 1 {
		return fmt.Sprintf("The environment variable %s is missing", err.Missing[0])
	}
	return fmt.Sprintf("The following environment variables are missing: [%s]", strings.Join(err.Missing, ", "))
}
