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

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Attrs is a decoded JSON object from the metadata document, with typed
// getters that tolerate missing keys and JSON nulls
type Attrs map[string]interface{}

// AsAttrs converts a decoded JSON value to Attrs, or nil if it is not an object
func AsAttrs(value interface{}) Attrs {
	switch obj := value.(type) {
	case Attrs:
		return obj
	case map[string]interface{}:
		return Attrs(obj)
	}
	return nil
}

// Has is true when key is present with a non-null value
func (a Attrs) Has(key string) bool {
	value, ok := a[key]
	return ok && value != nil
}

// Raw returns the value of key as decoded, nil if missing
func (a Attrs) Raw(key string) interface{} {
	return a[key]
}

// String returns the value of key if it is a string, else the empty string
func (a Attrs) String(key string) string {
	if value, ok := a[key].(string); ok {
		return value
	}
	return ""
}

// Float returns the value of key as a number. Numeric strings are accepted.
func (a Attrs) Float(key string) *float64 {
	switch value := a[key].(type) {
	case float64:
		return &value
	case int:
		f := float64(value)
		return &f
	case json.Number:
		if f, err := value.Float64(); err == nil {
			return &f
		}
	case string:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return &f
		}
	}
	return nil
}

// Int returns the value of key as an integer. Numbers with a fractional part
// are rejected.
func (a Attrs) Int(key string) *int {
	f := a.Float(key)
	if f == nil || *f != math.Trunc(*f) {
		return nil
	}
	i := int(*f)
	return &i
}

// Map returns the value of key as Attrs, nil if it is not an object
func (a Attrs) Map(key string) Attrs {
	return AsAttrs(a[key])
}

// Slice returns the value of key if it is an array
func (a Attrs) Slice(key string) []interface{} {
	if value, ok := a[key].([]interface{}); ok {
		return value
	}
	return nil
}

// Strings returns the string elements of the array at key
func (a Attrs) Strings(key string) []string {
	var out []string
	for _, value := range a.Slice(key) {
		if s, ok := value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Floats returns the array at key as numbers. It fails if any element is not
// a number.
func (a Attrs) Floats(key string) ([]float64, error) {
	raw := a.Slice(key)
	if raw == nil {
		return nil, fmt.Errorf("%s is not an array", key)
	}
	out := make([]float64, 0, len(raw))
	for _, value := range raw {
		f, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("%s contains a non-numeric value: %v", key, value)
		}
		out = append(out, f)
	}
	return out, nil
}
