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

package model

import (
	"fmt"
	"time"
)

// Product metadata carries datetimes in several ISO 8601 flavours: with or
// without a zone designator, with or without fractional seconds. Parsing is
// lenient, formatting is always UTC with a Z suffix.

// TimeLayout is used when a time has sub-second precision
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// TimeLayoutSeconds is used when a time falls on a whole second
const TimeLayoutSeconds = "2006-01-02T15:04:05Z"

var metadataTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTime is a drop-in replacement for time.Parse, matching against the
// layouts found in product metadata. Times without a zone are taken as UTC.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range metadataTimeLayouts {
		if output, err := time.Parse(layout, value); err == nil {
			return output.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", value)
}

// FormatTime renders t in UTC with microsecond precision when it has any
func FormatTime(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/1000 != 0 {
		return t.Format(TimeLayout)
	}
	return t.Format(TimeLayoutSeconds)
}
