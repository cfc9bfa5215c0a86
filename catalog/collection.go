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

package catalog

import (
	"sort"
	"strconv"
	"time"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/sentinel1"
	"github.com/clausmichele/eopf-stac/sentinel2"
	"github.com/clausmichele/eopf-stac/sentinel3"
	"github.com/clausmichele/eopf-stac/stac"
)

// Collection is a STAC collection document
type Collection struct {
	Type           string                            `json:"type"`
	StacVersion    string                            `json:"stac_version"`
	StacExtensions []string                          `json:"stac_extensions"`
	ID             string                            `json:"id"`
	Title          string                            `json:"title"`
	Description    string                            `json:"description"`
	Keywords       []string                          `json:"keywords"`
	License        string                            `json:"license"`
	Providers      []model.Provider                  `json:"providers"`
	Extent         Extent                            `json:"extent"`
	Summaries      map[string]interface{}            `json:"summaries"`
	ItemAssets     map[string]map[string]interface{} `json:"item_assets"`
	Links          []model.Link                      `json:"links"`
}

// Extent is the spatial and temporal extent of a collection. An open end
// of the temporal interval is null.
type Extent struct {
	Spatial struct {
		Bbox [][]float64 `json:"bbox"`
	} `json:"spatial"`
	Temporal struct {
		Interval [][]*string `json:"interval"`
	} `json:"temporal"`
}

type missionInfo struct {
	start       time.Time
	keywords    []string
	platforms   []string
	designators []string
}

var missions = map[eopf.Mission]missionInfo{
	eopf.Sentinel1: {
		start:       time.Date(2014, 10, 3, 0, 0, 0, 0, time.UTC),
		keywords:    []string{"Copernicus", "Sentinel", "EU", "ESA", "Satellite", "Global", "SAR", "C-band"},
		platforms:   []string{"sentinel-1a", "sentinel-1b", "sentinel-1c"},
		designators: []string{"2014-016A", "2016-025A", "2024-235A"},
	},
	eopf.Sentinel2: {
		start:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		keywords:    []string{"Copernicus", "Sentinel", "EU", "ESA", "Satellite", "Global", "Earth", "Reflectance"},
		platforms:   []string{"Sentinel-2A", "Sentinel-2B", "Sentinel-2C"},
		designators: []string{"2015-028A", "2017-013A", "2024-157A"},
	},
	eopf.Sentinel3: {
		start:       time.Date(2016, 2, 16, 0, 0, 0, 0, time.UTC),
		keywords:    []string{"Copernicus", "Sentinel", "EU", "ESA", "Satellite", "Global", "Earth"},
		platforms:   []string{"sentinel-3a", "sentinel-3b"},
		designators: []string{"2016-011A", "2018-039A"},
	},
}

type collectionInfo struct {
	title       string
	description string
	level       string
	instruments []string
	gsd         []float64
}

var collections = map[string]collectionInfo{
	"sentinel-1-l1-grd": {
		title:       "Sentinel-1 Level-1 GRD",
		description: "The Sentinel-1 Level-1 Ground Range Detected (GRD) product consists of focused SAR data " +
			"that has been detected, multi-looked and projected to ground range using the Earth ellipsoid model.",
		level:       "L1",
		instruments: []string{"sar"},
	},
	"sentinel-1-l1-slc": {
		title:       "Sentinel-1 Level-1 SLC",
		description: "The Sentinel-1 Level-1 Single Look Complex (SLC) product consists of focused SAR data " +
			"geo-referenced using orbit and attitude data from the satellite and provided in slant-range geometry.",
		level:       "L1",
		instruments: []string{"sar"},
	},
	"sentinel-1-l2-ocn": {
		title:       "Sentinel-1 Level-2 OCN",
		description: "The Sentinel-1 Level-2 Ocean (OCN) product provides geophysical parameters of the ocean " +
			"surface: ocean swell spectra, ocean wind field and surface radial velocity.",
		level:       "L2",
		instruments: []string{"sar"},
	},
	"sentinel-2-l1c": {
		title:       "Sentinel-2 Level-1C",
		description: "The Sentinel-2 Level-1C product is composed of 110x110 km2 tiles (ortho-images in UTM/WGS84 projection). " +
			"Earth is subdivided on a predefined set of tiles, defined in UTM/WGS84 projection and using a 100 km step. " +
			"However, each tile has a surface of 110x110 km2 in order to provide large overlap with the neighbouring. " +
			"The Level-1C product results from using a Digital Elevation Model (DEM) to project the image in cartographic " +
			"geometry. Per-pixel radiometric measurements are provided in Top Of Atmosphere (TOA) reflectances along with " +
			"the parameters to transform them into radiances.",
		level:       "L1",
		instruments: []string{"msi"},
		gsd:         []float64{10, 20, 60},
	},
	"sentinel-2-l2a": {
		title:       "Sentinel-2 Level-2A",
		description: "The Sentinel-2 Level-2A product provides Bottom Of Atmosphere (BOA) reflectance images derived " +
			"from the associated Level-1C products, together with aerosol optical thickness, water vapour and " +
			"scene classification maps.",
		level:       "L2",
		instruments: []string{"msi"},
		gsd:         []float64{10, 20, 60},
	},
	"sentinel-3-olci-l1-efr": {
		title:       "Sentinel-3 OLCI Level-1 EFR",
		description: "The Sentinel-3 OLCI L1 EFR product provides TOA radiances at full resolution " +
			"for each pixel in the instrument grid, each view and each OLCI channel, plus annotation " +
			"data associated to OLCI pixels.",
		level:       "L1",
		instruments: []string{"olci"},
		gsd:         []float64{300},
	},
	"sentinel-3-olci-l1-err": {
		title:       "Sentinel-3 OLCI Level-1 ERR",
		description: "The Sentinel-3 OLCI L1 ERR product provides TOA radiances at reduced resolution " +
			"for each pixel in the instrument grid, each view and each OLCI channel, plus annotation " +
			"data associated to OLCI pixels.",
		level:       "L1",
		instruments: []string{"olci"},
		gsd:         []float64{1200},
	},
	"sentinel-3-olci-l2-lfr": {
		title:       "Sentinel-3 OLCI Level-2 LFR",
		description: "The Sentinel-3 OLCI L2 LFR product provides land and atmospheric geophysical parameters computed for full resolution.",
		level:       "L2",
		instruments: []string{"olci"},
		gsd:         []float64{300},
	},
	"sentinel-3-olci-l2-lrr": {
		title:       "Sentinel-3 OLCI Level-2 LRR",
		description: "The Sentinel-3 OLCI L2 LRR product provides land and atmospheric geophysical parameters computed for reduced resolution.",
		level:       "L2",
		instruments: []string{"olci"},
		gsd:         []float64{1200},
	},
	"sentinel-3-slstr-l1-rbt": {
		title:       "Sentinel-3 SLSTR Level-1 RBT",
		description: "The Sentinel-3 SLSTR Level-1B RBT product provides radiances and brightness temperatures for each pixel " +
			"in a regular image grid for each view and SLSTR channel. In addition, it also contains annotations data " +
			"associated with each image pixels.",
		level:       "L1",
		instruments: []string{"slstr"},
		gsd:         []float64{500, 1000},
	},
	"sentinel-3-slstr-l2-lst": {
		title:       "Sentinel-3 SLSTR Level-2 LST",
		description: "The Sentinel-3 SLSTR Level-2 LST product provides land surface temperature.",
		level:       "L2",
		instruments: []string{"slstr"},
		gsd:         []float64{500, 1000},
	},
	"sentinel-3-slstr-l2-frp": {
		title:       "Sentinel-3 SLSTR Level-2 FRP",
		description: "The Sentinel-3 SLSTR Level-2 FRP product provides global (over land and water) fire radiative power.",
		level:       "L2",
		instruments: []string{"slstr"},
		gsd:         []float64{500, 1000},
	},
}

func itemAssets(productType eopf.ProductType) (map[string]stac.AssetDefinition, error) {
	switch productType.Mission {
	case eopf.Sentinel1:
		return sentinel1.ItemAssets(productType.Family)
	case eopf.Sentinel2:
		return sentinel2.ItemAssets(productType.Family)
	case eopf.Sentinel3:
		return sentinel3.ItemAssets(productType.Family)
	}
	return nil, eopf.Invalidf("The product type '%s' is not supported", productType.Code)
}

// CollectionOf builds the collection document for the collection items of
// a product type are registered in
func CollectionOf(code string) (*Collection, error) {
	productType, err := eopf.ParseProductType(code)
	if err != nil {
		return nil, err
	}
	id := productType.Collection()
	info, ok := collections[id]
	if !ok {
		return nil, eopf.Invalidf("No collection defined for product type '%s'", code)
	}
	mission := missions[productType.Mission]

	definitions, err := itemAssets(productType)
	if err != nil {
		return nil, err
	}
	assets := make(map[string]map[string]interface{}, len(definitions))
	for key, definition := range definitions {
		assets[key] = definition.ItemAsset()
	}

	c := &Collection{
		Type:           "Collection",
		StacVersion:    model.StacVersion,
		StacExtensions: []string{model.SatExtension, model.ProductExtension, model.ProcessingExtension},
		ID:             id,
		Title:          info.title,
		Description:    info.description,
		Keywords:       append([]string(nil), mission.keywords...),
		License:        "other",
		Providers:      model.Providers(int(productType.Mission)),
		Summaries: map[string]interface{}{
			"constellation":                         []string{"sentinel-" + strconv.Itoa(int(productType.Mission))},
			"platform":                              append([]string(nil), mission.platforms...),
			"instruments":                           append([]string(nil), info.instruments...),
			"sat:orbit_state":                       []string{model.OrbitAscending, model.OrbitDescending},
			"sat:platform_international_designator": append([]string(nil), mission.designators...),
			"processing:level":                      []string{info.level},
			"product:type":                          productTypesOf(id),
		},
		ItemAssets: assets,
		Links:      []model.Link{model.LicenseLink},
	}
	if len(info.gsd) > 0 {
		c.Summaries["gsd"] = append([]float64(nil), info.gsd...)
	}
	start := model.FormatTime(mission.start)
	c.Extent.Spatial.Bbox = [][]float64{{-180, -90, 180, 90}}
	c.Extent.Temporal.Interval = [][]*string{{&start, nil}}
	return c, nil
}

// productTypesOf lists the product type codes registered in a collection
func productTypesOf(collection string) []string {
	var codes []string
	for _, code := range eopf.SupportedProductTypes() {
		if c, _ := eopf.CollectionFor(code); c == collection {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}
