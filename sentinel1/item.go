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

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/stac"
	"github.com/clausmichele/eopf-stac/util"
)

const (
	constellation = "sentinel-1"
	instrument    = "sar"

	// FrequencyBand of every Sentinel-1 SAR instrument
	FrequencyBand = "C"
	// DefaultCenterFrequency in GHz, used if the product does not state one
	DefaultCenterFrequency = 5.405

	softwareIPF = "Sentinel-1 IPF"
)

// CreateItem converts the metadata of a Sentinel-1 product to a STAC item.
// The SAFE identifier of the product is rebuilt from its components.
func CreateItem(ctx util.LogContext, metadata *eopf.Metadata, productType eopf.ProductType, opts stac.Options) (*model.Item, error) {
	item, err := stac.NewItem(metadata, opts.Href)
	if err != nil {
		return nil, err
	}
	properties := metadata.Properties()
	other := metadata.OtherMetadata()

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
		sat,
		viewFrom(properties, other),
		stac.ProcessingFrom(properties, opts.CPMVersion, stac.SoftwareVersion(properties, softwareIPF)),
		stac.ProductFrom(productType.Code, properties),
		sarFrom(properties),
		stac.EOPFFrom(properties),
	)
	if err != nil {
		return nil, err
	}

	util.LogDebug(ctx, "Getting product components...")
	components, err := ProductComponents(ctx, metadata, productType.Family)
	if err != nil {
		return nil, err
	}
	if item.ID, err = identifier(item, productType.Code, properties, components); err != nil {
		return nil, err
	}
	util.LogDebug(ctx, fmt.Sprintf("Sentinel-1 identifier is %s", item.IDStr()))

	var assets stac.AssetSet
	switch productType.Family {
	case eopf.FamilyGRD:
		assets, err = GRDAssetSet(opts.Href, components)
	case eopf.FamilySLC:
		assets, err = SLCAssetSet(opts.Href, components)
	case eopf.FamilyOCN:
		assets, err = OCNAssetSet(opts.Href, components, properties.String("eopf:instrument_mode"))
	default:
		err = eopf.Invalidf("Unsupported Sentinel-1 product type '%s'", productType.Code)
	}
	if err != nil {
		return nil, err
	}
	if err = assets.AddTo(item); err != nil {
		return nil, err
	}

	stac.AddLinks(item, opts.SourceHref)

	// footprints of converted products are open rings
	if item.Geometry != nil {
		if item.Geometry, err = model.ClosePolygon(item.Geometry); err != nil {
			return nil, eopf.Invalidf("invalid geometry: %v", err)
		}
	}
	return item, nil
}

func commonMetadata(properties eopf.Attrs) model.CommonMetadata {
	mission := properties.String("mission")
	if mission == "" {
		mission = eopf.Sentinel1.String()
	}
	return model.CommonMetadata{
		Mission:       mission,
		Constellation: constellation,
		Platform:      properties.String("platform"),
		Instruments:   []string{instrument},
		Providers:     model.Providers(1),
	}
}

// viewFrom reads the viewing angles. Azimuth and incidence angle are only
// found in other_metadata.
func viewFrom(properties, other eopf.Attrs) *model.View {
	view := &model.View{
		Azimuth:        other.Float("view:azimuth"),
		IncidenceAngle: other.Float("view:incidence_angle"),
		OffNadir:       properties.Float("view:off_nadir"),
	}
	if view.Azimuth == nil && view.IncidenceAngle == nil && view.OffNadir == nil {
		return nil
	}
	return view
}

func sarFrom(properties eopf.Attrs) *model.SAR {
	sar := &model.SAR{
		Polarizations:        properties.Strings("sar:polarizations"),
		FrequencyBand:        FrequencyBand,
		CenterFrequency:      properties.Float("sar:center_frequency"),
		ProductType:          properties.String("sar:product_type"),
		ObservationDirection: properties.String("sar:observation_direction"),
		ResolutionRange:      properties.Float("sar:resolution_range"),
		ResolutionAzimuth:    properties.Float("sar:resolution_azimuth"),
		PixelSpacingRange:    properties.Float("sar:pixel_spacing_range"),
		PixelSpacingAzimuth:  properties.Float("sar:pixel_spacing_azimuth"),
	}
	if sar.CenterFrequency == nil {
		frequency := DefaultCenterFrequency
		sar.CenterFrequency = &frequency
	}

	mode := properties.String("eopf:instrument_mode")
	if mode == "" || mode == stac.PlaceholderInstrumentMode {
		mode = properties.String("sar:instrument_mode")
	}
	sar.InstrumentMode = mode
	return sar
}

// identifier rebuilds the SAFE identifier from the first component
func identifier(item *model.Item, productType string, properties eopf.Attrs, components []Component) (string, error) {
	if len(components) == 0 {
		return "", eopf.Invalidf("No product component found in links")
	}
	start := item.PropertyString("start_datetime")
	end := item.PropertyString("end_datetime")
	if start == "" || end == "" {
		return "", eopf.Invalidf("start_datetime and end_datetime are required")
	}
	orbit := properties.Int("sat:absolute_orbit")
	if orbit == nil {
		return "", eopf.Invalidf("sat:absolute_orbit is required")
	}

	return ConstructIdentifier(productType, properties.Strings("sar:polarizations"),
		start, end, properties.String("platform"), *orbit, components[0].Name)
}
