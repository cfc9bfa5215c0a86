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
	"encoding/json"
	"fmt"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// StacVersion is the STAC version written into every item
const StacVersion = "1.1.0"

// Item is a STAC item: a GeoJSON feature describing one product, with the
// STAC members next to the feature's own
type Item struct {
	geojson.Feature
	StacVersion    string            `json:"stac_version"`
	StacExtensions []string          `json:"stac_extensions"`
	Links          []Link            `json:"links"`
	Assets         map[string]*Asset `json:"assets"`
	Collection     string            `json:"collection,omitempty"`
}

// NewItem creates an empty item with the given identity and footprint
func NewItem(id string, geometry interface{}, bbox []float64) *Item {
	feature := geojson.NewFeature(geometry, id, map[string]interface{}{"datetime": nil})
	feature.Bbox = bbox
	return &Item{
		Feature:        *feature,
		StacVersion:    StacVersion,
		StacExtensions: []string{},
		Links:          []Link{},
		Assets:         map[string]*Asset{},
	}
}

// AddExtension registers an extension schema URI once
func (item *Item) AddExtension(uri string) {
	if !item.HasExtension(uri) {
		item.StacExtensions = append(item.StacExtensions, uri)
	}
}

// HasExtension reports whether the extension schema URI is registered
func (item *Item) HasExtension(uri string) bool {
	for _, ext := range item.StacExtensions {
		if ext == uri {
			return true
		}
	}
	return false
}

// AddAsset adds an asset under a key that must not be in use yet
func (item *Item) AddAsset(key string, asset *Asset) error {
	if _, exists := item.Assets[key]; exists {
		return fmt.Errorf("Asset key %q is already present in item %s", key, item.IDStr())
	}
	item.Assets[key] = asset
	return nil
}

// AddLink appends a link
func (item *Item) AddLink(link Link) {
	item.Links = append(item.Links, link)
}

// RemoveLinks drops every link with the given relation
func (item *Item) RemoveLinks(rel string) {
	kept := item.Links[:0]
	for _, link := range item.Links {
		if link.Rel != rel {
			kept = append(kept, link)
		}
	}
	item.Links = kept
}

// SetDatetimes writes the temporal properties. A nil datetime is written as
// an explicit null, which STAC allows when start and end are present.
func (item *Item) SetDatetimes(datetime, start, end *time.Time) {
	if datetime != nil {
		item.Properties["datetime"] = FormatTime(*datetime)
	} else {
		item.Properties["datetime"] = nil
	}
	if start != nil {
		item.Properties["start_datetime"] = FormatTime(*start)
	}
	if end != nil {
		item.Properties["end_datetime"] = FormatTime(*end)
	}
}

// SetUpdated sets the updated timestamp
func (item *Item) SetUpdated(t time.Time) {
	item.Properties["updated"] = FormatTime(t)
}

// ProductType returns the product:type property
func (item *Item) ProductType() string {
	return item.PropertyString("product:type")
}

// Link is a STAC link object
type Link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Type  string `json:"type,omitempty"`
	Title string `json:"title,omitempty"`
}

// Provider is a STAC provider object
type Provider struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	URL   string   `json:"url,omitempty"`
}

// Asset is a STAC asset. ExtraFields are flattened into the asset object
// when it is serialized.
type Asset struct {
	Href        string
	Title       string
	Description string
	Type        string
	Roles       []string
	ExtraFields map[string]interface{}
}

// SetExtra sets one extra field, creating the map if needed
func (a *Asset) SetExtra(key string, value interface{}) {
	if a.ExtraFields == nil {
		a.ExtraFields = map[string]interface{}{}
	}
	a.ExtraFields[key] = value
}

// MarshalJSON implements json.Marshaler
func (a Asset) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(a.ExtraFields)+5)
	for key, value := range a.ExtraFields {
		out[key] = value
	}
	out["href"] = a.Href
	if a.Title != "" {
		out["title"] = a.Title
	}
	if a.Description != "" {
		out["description"] = a.Description
	}
	if a.Type != "" {
		out["type"] = a.Type
	}
	if len(a.Roles) > 0 {
		out["roles"] = a.Roles
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Asset) UnmarshalJSON(data []byte) error {
	raw := map[string]interface{}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Asset{}
	for key, value := range raw {
		switch key {
		case "href":
			a.Href, _ = value.(string)
		case "title":
			a.Title, _ = value.(string)
		case "description":
			a.Description, _ = value.(string)
		case "type":
			a.Type, _ = value.(string)
		case "roles":
			if roles, ok := value.([]interface{}); ok {
				for _, role := range roles {
					if s, ok := role.(string); ok {
						a.Roles = append(a.Roles, s)
					}
				}
			}
		default:
			a.SetExtra(key, value)
		}
	}
	return nil
}
