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

package eopf

import "fmt"

// ValidationError reports product metadata that cannot be converted: a
// required key is missing, the product type is not supported or a file name
// does not have the expected structure
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

// Invalidf creates a ValidationError from a format string
func Invalidf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
