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
	"path"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// cpm_v256
	cpmCompactPattern = regexp.MustCompile(`cpm_v([0-9])([0-9])([0-9])`)
	// cpm-2.5.9
	cpmDottedPattern = regexp.MustCompile(`cpm-([0-9]+(?:\.[0-9]+)*)`)
)

// CPMVersion extracts the version of the processor that converted a product
// from the product location, e.g. ".../cpm_v256/..." or ".../cpm-2.5.9/...".
// It returns the empty string if the location carries no version.
func CPMVersion(href string) string {
	var raw string
	if m := cpmCompactPattern.FindStringSubmatch(href); m != nil {
		raw = m[1] + "." + m[2] + "." + m[3]
	} else if m := cpmDottedPattern.FindStringSubmatch(href); m != nil {
		raw = m[1]
	} else {
		return ""
	}

	version, err := semver.NewVersion(raw)
	if err != nil {
		return ""
	}
	return version.String()
}

var sourceSuffixes = []string{".safe", ".sen3"}

// SourceIdentifier returns the scene identifier of a source product
// reference: its last path segment without a .SAFE or .SEN3 extension
func SourceIdentifier(uri string) string {
	uri = strings.TrimSuffix(uri, "/")
	id := uri[strings.LastIndex(uri, "/")+1:]
	return trimSuffixFold(id, sourceSuffixes...)
}

// IdentifierFromHref derives an item identifier from the product location
func IdentifierFromHref(href string) string {
	href = strings.TrimSuffix(href, "/")
	id := href[strings.LastIndex(href, "/")+1:]
	return trimSuffixFold(id, ".zarr", ".safe", ".sen3")
}

// StripProductExtension removes a .SAFE or .SEN3 extension from a product id
func StripProductExtension(id string) string {
	return trimSuffixFold(id, sourceSuffixes...)
}

func trimSuffixFold(s string, suffixes ...string) string {
	lower := strings.ToLower(s)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lower, suffix) {
			return s[:len(s)-len(suffix)]
		}
	}
	return s
}

// JoinHref joins relative paths onto a product location. Empty elements are
// skipped, so JoinHref(prefix, "") is the prefix itself.
func JoinHref(prefix string, elems ...string) string {
	parts := make([]string, 0, len(elems))
	for _, elem := range elems {
		if elem != "" {
			parts = append(parts, elem)
		}
	}
	if len(parts) == 0 {
		return prefix
	}
	return strings.TrimSuffix(prefix, "/") + "/" + path.Join(parts...)
}
