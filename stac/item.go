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

package stac

import (
	"fmt"
	"time"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
)

// NullDatetime is the string some processor versions write instead of a
// JSON null datetime
const NullDatetime = "null"

// Datetimes reads the temporal properties of a product. A "null" datetime
// yields a nil datetime; an absent datetime falls back to start_datetime.
func Datetimes(properties eopf.Attrs) (datetime, start, end *time.Time, err error) {
	if start, err = parseOptionalTime(properties, "start_datetime"); err != nil {
		return nil, nil, nil, err
	}
	if end, err = parseOptionalTime(properties, "end_datetime"); err != nil {
		return nil, nil, nil, err
	}

	if !properties.Has("datetime") {
		return start, start, end, nil
	}
	if properties.String("datetime") == NullDatetime {
		return nil, start, end, nil
	}
	if datetime, err = parseOptionalTime(properties, "datetime"); err != nil {
		return nil, nil, nil, err
	}
	return datetime, start, end, nil
}

func parseOptionalTime(properties eopf.Attrs, key string) (*time.Time, error) {
	if !properties.Has(key) {
		return nil, nil
	}
	value := properties.String(key)
	if value == "" {
		return nil, eopf.Invalidf("%s is not a string: %v", key, properties.Raw(key))
	}
	t, err := model.ParseTime(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &t, nil
}

// RearrangeBbox orders a bounding box as minimum corner then maximum corner,
// whatever order the corners were written in
func RearrangeBbox(bbox []float64) []float64 {
	if len(bbox) == 0 || len(bbox)%2 != 0 {
		return bbox
	}
	dims := len(bbox) / 2
	out := make([]float64, len(bbox))
	for axis := 0; axis < dims; axis++ {
		a, b := bbox[axis], bbox[axis+dims]
		if a > b {
			a, b = b, a
		}
		out[axis] = a
		out[axis+dims] = b
	}
	return out
}

// Identifier returns the item id for a product: the stac_discovery id without
// a .SAFE or .SEN3 extension, or, if the product has no id, one derived from
// its location
func Identifier(discovery eopf.Attrs, href string) string {
	id := discovery.String("id")
	if id == "" {
		return eopf.IdentifierFromHref(href)
	}
	return eopf.StripProductExtension(id)
}

// NewItem creates an item with the identity, footprint and datetimes of a
// product. Mission specific fields and assets are left to the caller.
func NewItem(metadata *eopf.Metadata, href string) (*model.Item, error) {
	discovery := metadata.StacDiscovery()

	datetime, start, end, err := Datetimes(metadata.Properties())
	if err != nil {
		return nil, err
	}

	var bbox []float64
	if discovery.Has("bbox") {
		if bbox, err = discovery.Floats("bbox"); err != nil {
			return nil, eopf.Invalidf("invalid bbox in stac_discovery: %v", err)
		}
	}

	var geometry interface{}
	if raw := discovery.Raw("geometry"); raw != nil {
		if geometry, err = model.ResolveGeometry(raw); err != nil {
			return nil, eopf.Invalidf("invalid geometry in stac_discovery: %v", err)
		}
	}

	item := model.NewItem(Identifier(discovery, href), geometry, RearrangeBbox(bbox))
	item.SetDatetimes(datetime, start, end)
	return item, nil
}

// ViaLink links an item to the catalog entry of the product it was
// converted from
func ViaLink(href string) model.Link {
	return model.Link{
		Rel:   model.RelVia,
		Href:  href,
		Type:  model.MediaTypeGeoJSON,
		Title: "Source STAC item at the Copernicus Data Space Ecosystem",
	}
}

// Options carries what a conversion knows about a product besides its
// metadata
type Options struct {
	// Href is the product location, the prefix of every asset href
	Href string
	// CPMVersion is the version of the processor that converted the product
	CPMVersion string
	// SourceHref is the catalog entry of the product the item was converted from
	SourceHref string
	// Now is used for timestamps the product does not carry
	Now time.Time
}

// AddLinks adds the license link, and the via link if the source product is
// known
func AddLinks(item *model.Item, sourceHref string) {
	item.AddLink(model.LicenseLink)
	if sourceHref != "" {
		item.AddLink(ViaLink(sourceHref))
	}
}
