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

package sentinel3

import (
	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/stac"
	"github.com/clausmichele/eopf-stac/util"
)

const (
	constellation = "sentinel-3"
	softwarePUG   = "PUG"

	// some processor versions report the 300m OLCI grid as 270m
	reportedGSD  = 270.0
	correctedGSD = 300.0
)

// CreateItem converts the metadata of a Sentinel-3 OLCI or SLSTR product to
// a STAC item
func CreateItem(ctx util.LogContext, metadata *eopf.Metadata, productType eopf.ProductType, opts stac.Options) (*model.Item, error) {
	item, err := stac.NewItem(metadata, opts.Href)
	if err != nil {
		return nil, err
	}
	properties := metadata.Properties()

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
		stac.ElectroOpticalFrom(properties),
		stac.ProcessingFrom(properties, opts.CPMVersion, stac.SoftwareVersion(properties, softwarePUG)),
		stac.ProductFrom(productType.Code, properties),
		stac.EOPFFrom(properties),
	)
	if err != nil {
		return nil, err
	}

	util.LogDebug(ctx, "Creating assets...")
	assets, err := AssetSet(opts.Href, productType.Family)
	if err != nil {
		return nil, err
	}
	if err = assets.AddTo(item); err != nil {
		return nil, err
	}

	stac.AddLinks(item, opts.SourceHref)
	return item, nil
}

// commonMetadata reads the common fields. The product states its instrument
// as a single string.
func commonMetadata(properties eopf.Attrs) model.CommonMetadata {
	cm := model.CommonMetadata{
		Mission:       eopf.Sentinel3.String(),
		Constellation: constellation,
		Platform:      properties.String("platform"),
		GSD:           GSD(properties),
		Providers:     model.Providers(3),
	}
	if instrument := properties.String("instrument"); instrument != "" {
		cm.Instruments = []string{instrument}
	}
	return cm
}

// GSD returns the gsd property, reporting 270 as 300
func GSD(properties eopf.Attrs) *float64 {
	gsd := properties.Float("gsd")
	if gsd != nil && *gsd == reportedGSD {
		corrected := correctedGSD
		return &corrected
	}
	return gsd
}
