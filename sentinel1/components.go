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

package sentinel1

import (
	"fmt"
	"path"
	"strings"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/util"
)

// Component is one measurement component of a Sentinel-1 product. Key is the
// polarization for GRD, the swath and polarization for SLC and the component
// type (osw, owi, rvl) for OCN products.
type Component struct {
	Key  string
	Name string
}

// ProductComponents lists the components of a product from the links of its
// stac_discovery section, in link order. Links that do not name a component
// are logged and skipped. A later link for a key that is already listed
// replaces the earlier component in place.
func ProductComponents(ctx util.LogContext, metadata *eopf.Metadata, family eopf.Family) ([]Component, error) {
	links := metadata.StacDiscovery().Slice("links")
	if len(links) == 0 {
		return nil, eopf.Invalidf("Links section in metadata is missing")
	}

	var components []Component
	positions := map[string]int{}
	for _, link := range links {
		name := linkName(link)
		if name == "" {
			util.LogAlert(ctx, fmt.Sprintf("Skipping link without a component name: %v", link))
			continue
		}

		var (
			component Component
			ok        bool
		)
		switch family {
		case eopf.FamilyGRD:
			component, ok = grdComponent(name)
		case eopf.FamilySLC:
			component, ok = slcComponent(name)
		case eopf.FamilyOCN:
			component, ok = ocnComponent(metadata, name)
		default:
			return nil, eopf.Invalidf("Product family %s has no components", family)
		}
		if !ok {
			util.LogAlert(ctx, fmt.Sprintf("Skipping link %s: not a %s component", name, family))
			continue
		}
		if i, seen := positions[component.Key]; seen {
			util.LogDebug(ctx, fmt.Sprintf("Component %s replaces %s for key %s", component.Name, components[i].Name, component.Key))
			components[i] = component
			continue
		}
		positions[component.Key] = len(components)
		components = append(components, component)
	}
	return components, nil
}

// linkName returns the component name a link entry refers to. Entries are
// either plain names or link objects whose href (or title) names the
// component.
func linkName(link interface{}) string {
	switch v := link.(type) {
	case string:
		return v
	case map[string]interface{}:
		attrs := eopf.Attrs(v)
		if href := strings.TrimSuffix(attrs.String("href"), "/"); href != "" {
			return strings.TrimSuffix(path.Base(href), ".zarr")
		}
		return attrs.String("title")
	}
	return ""
}

func grdComponent(name string) (Component, bool) {
	parts := strings.Split(name, "_")
	if len(parts) < minComponentParts {
		return Component{}, false
	}
	return Component{Key: parts[tokenPolarization], Name: name}, true
}

func slcComponent(name string) (Component, bool) {
	parts := strings.Split(name, "_")
	switch {
	case len(parts) > 8:
		return Component{Key: strings.Join(parts[6:9], "_"), Name: name}, true
	case len(parts) >= minComponentParts:
		return Component{Key: parts[tokenPolarization], Name: name}, true
	}
	return Component{}, false
}

// ocnComponent resolves an OCN component type (osw, owi, rvl) to the name of
// its measurement group, which the component lists in its own links
func ocnComponent(metadata *eopf.Metadata, name string) (Component, bool) {
	key := strings.ToLower(name)
	attrs := metadata.Attrs(key)
	for _, link := range attrs.Map("stac_discovery").Slice("links") {
		if sub := linkName(link); sub != "" {
			return Component{Key: key, Name: sub}, true
		}
	}
	return Component{}, false
}
