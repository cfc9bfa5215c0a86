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

import "strconv"

// Media types
const (
	MediaTypeZarr    = "application/vnd+zarr"
	MediaTypeJSON    = "application/json"
	MediaTypeGeoJSON = "application/geo+json"
	MediaTypePDF     = "application/pdf"
)

// Asset roles
const (
	RoleData        = "data"
	RoleMetadata    = "metadata"
	RoleDataset     = "dataset"
	RoleReflectance = "reflectance"
	RoleVisual      = "visual"
)

// Link relations
const (
	RelSelf    = "self"
	RelLicense = "license"
	RelVia     = "via"
)

// Extension schema URIs
const (
	TimestampsExtension = "https://stac-extensions.github.io/timestamps/v1.1.0/schema.json"
	SatExtension        = "https://stac-extensions.github.io/sat/v1.0.0/schema.json"
	ViewExtension       = "https://stac-extensions.github.io/view/v1.0.0/schema.json"
	EOExtension         = "https://stac-extensions.github.io/eo/v2.0.0/schema.json"
	ProjectionExtension = "https://stac-extensions.github.io/projection/v2.0.0/schema.json"
	GridExtension       = "https://stac-extensions.github.io/grid/v1.1.0/schema.json"
	MGRSExtension       = "https://stac-extensions.github.io/mgrs/v1.0.0/schema.json"
	ScientificExtension = "https://stac-extensions.github.io/scientific/v1.0.0/schema.json"
	RasterExtension     = "https://stac-extensions.github.io/raster/v1.1.0/schema.json"
	ProductExtension    = "https://stac-extensions.github.io/product/v0.1.0/schema.json"
	ProcessingExtension = "https://stac-extensions.github.io/processing/v1.2.0/schema.json"
	EOPFExtension       = "https://cs-si.github.io/eopf-stac-extension/v1.2.0/schema.json"
	SARExtension        = "https://stac-extensions.github.io/sar/v1.3.0/schema.json"
)

// LicenseLink points at the Copernicus Sentinel data legal notice
var LicenseLink = Link{
	Rel:   RelLicense,
	Href:  "https://sentinel.esa.int/documents/247904/690755/Sentinel_Data_Legal_Notice",
	Type:  MediaTypePDF,
	Title: "Legal notice on the use of Copernicus Sentinel Data and Service Information",
}

// Providers returns the providers of a Sentinel mission, numbered 1, 2 or 3
func Providers(sentinel int) []Provider {
	return []Provider{
		{
			Name:  "European Commission",
			Roles: []string{"licensor"},
			URL:   "https://commission.europa.eu/",
		},
		{
			Name:  "ESA",
			Roles: []string{"producer", "processor"},
			URL:   "https://sentinel.esa.int/web/sentinel/missions/sentinel-" + strconv.Itoa(sentinel),
		},
		{
			Name:  "EOPF Sentinel Zarr Samples Service",
			Roles: []string{"host", "processor"},
			URL:   "https://zarr.eopf.copernicus.eu/",
		},
	}
}
