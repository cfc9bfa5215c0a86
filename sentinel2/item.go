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

package sentinel2

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/stac"
	"github.com/clausmichele/eopf-stac/util"
)

const (
	constellation = "sentinel-2"
	instrument    = "msi"
	gsd           = 10.0

	sunAzimuthKey = "mean_sun_azimuth_angle_in_deg_for_all_bands_all_detectors"
	sunZenithKey  = "mean_sun_zenith_angle_in_deg_for_all_bands_all_detectors"
	crsKey        = "horizontal_CRS_code"
)

var (
	mgrsPattern     = regexp.MustCompile(`_T(\d{1,2})([CDEFGHJKLMNPQRSTUVWX])([ABCDEFGHJKLMNPQRSTUVWXYZ][ABCDEFGHJKLMNPQRSTUV])`)
	baselinePattern = regexp.MustCompile(`_N(\d{2})(\d{2})_`)
)

// CreateItem converts the metadata of a Sentinel-2 MSI product to a STAC
// item
func CreateItem(ctx util.LogContext, metadata *eopf.Metadata, productType eopf.ProductType, opts stac.Options) (*model.Item, error) {
	item, err := stac.NewItem(metadata, opts.Href)
	if err != nil {
		return nil, err
	}
	properties := metadata.Properties()
	other := metadata.OtherMetadata()
	sourceID := metadata.StacDiscovery().String("id")

	timestamps, err := stac.TimestampsFrom(properties, opts.Now)
	if err != nil {
		return nil, err
	}
	sat, err := stac.SatelliteFrom(properties)
	if err != nil {
		return nil, err
	}

	err = model.ApplyMixins(item,
		commonMetadata(properties),
		timestamps,
		&model.ElectroOptical{
			CloudCover: properties.Float("eo:cloud_cover"),
			SnowCover:  properties.Float("eo:snow_cover"),
		},
		sat,
		projectionFrom(item, other),
		mgrsFrom(ctx, sourceID),
		viewFrom(other),
		stac.ProcessingFrom(properties, opts.CPMVersion, Baseline(sourceID)),
		stac.ProductFrom(productType.Code, properties),
		scientificFrom(properties),
		stac.EOPFFrom(properties),
	)
	if err != nil {
		return nil, err
	}

	util.LogDebug(ctx, "Creating assets...")
	var assets stac.AssetSet
	switch productType.Family {
	case eopf.FamilyMSIL1C:
		assets, err = L1CAssetSet(opts.Href, metadata, item)
	case eopf.FamilyMSIL2A:
		assets, err = L2AAssetSet(opts.Href, metadata, item)
	default:
		err = eopf.Invalidf("Invalid Sentinel-2 product type '%s'", productType.Code)
	}
	if err != nil {
		return nil, err
	}
	if err = assets.AddTo(item); err != nil {
		return nil, err
	}

	stac.AddLinks(item, opts.SourceHref)
	return item, nil
}

func commonMetadata(properties eopf.Attrs) model.CommonMetadata {
	mission := properties.String("mission")
	if mission == "" {
		mission = eopf.Sentinel2.String()
	}
	itemGSD := gsd
	return model.CommonMetadata{
		Mission:       mission,
		Constellation: constellation,
		Platform:      properties.String("platform"),
		Instruments:   []string{instrument},
		GSD:           &itemGSD,
		Providers:     model.Providers(2),
	}
}

func projectionFrom(item *model.Item, other eopf.Attrs) *model.Projection {
	code := other.String(crsKey)
	centroid := model.Centroid(item.Geometry)
	if code == "" && centroid == nil {
		return nil
	}
	return &model.Projection{Code: code, Bbox: item.Bbox, Centroid: centroid}
}

// MGRSFromID reads the MGRS tile from a product identifier, e.g. _T32UPC
func MGRSFromID(id string) (*model.MGRS, bool) {
	match := mgrsPattern.FindStringSubmatch(id)
	if match == nil {
		return nil, false
	}
	zone, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, false
	}
	return &model.MGRS{UTMZone: zone, LatitudeBand: match[2], GridSquare: match[3]}, true
}

func mgrsFrom(ctx util.LogContext, id string) *model.MGRS {
	mgrs, ok := MGRSFromID(id)
	if !ok {
		util.LogAlert(ctx, fmt.Sprintf("Error populating MGRS and Grid Extensions fields from ID: %s", id))
		return nil
	}
	return mgrs
}

// Baseline returns the processing baseline of a product identifier, 05.10
// for N0510. It is empty if the identifier has none.
func Baseline(id string) string {
	match := baselinePattern.FindStringSubmatch(id)
	if match == nil {
		return ""
	}
	return match[1] + "." + match[2]
}

// viewFrom reads the mean sun angles. Elevation is the complement of the
// zenith angle.
func viewFrom(other eopf.Attrs) *model.View {
	azimuth := other.Float(sunAzimuthKey)
	zenith := other.Float(sunZenithKey)
	if azimuth == nil && zenith == nil {
		return nil
	}
	view := &model.View{SunAzimuth: azimuth}
	if zenith != nil {
		elevation := 90 - *zenith
		view.SunElevation = &elevation
	}
	return view
}

func scientificFrom(properties eopf.Attrs) *model.Scientific {
	doi := properties.String("sci:doi")
	if doi == "" {
		return nil
	}
	return &model.Scientific{DOI: doi}
}
