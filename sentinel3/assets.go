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
	"fmt"
	"strings"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/stac"
)

// AssetEntry is a component asset of a Sentinel-3 product and its path
// inside the product
type AssetEntry struct {
	Path       string
	Definition stac.AssetDefinition
}

func dataAsset(title, description string, bands []model.Band) stac.AssetDefinition {
	definition := stac.AssetDefinition{
		Title:       title,
		Description: description,
		Type:        model.MediaTypeZarr,
		Roles:       []string{model.RoleData},
	}
	if len(bands) > 0 {
		definition.Extra = map[string]interface{}{"bands": bands}
	}
	return definition
}

func datasetAsset(title, description string, bands []model.Band, gsd int) stac.AssetDefinition {
	extra := stac.DatasetExtra()
	extra["bands"] = bands
	if gsd > 0 {
		extra["gsd"] = gsd
	}
	return stac.AssetDefinition{
		Title:       title,
		Description: description,
		Type:        model.MediaTypeZarr,
		Roles:       []string{model.RoleData, model.RoleDataset},
		Extra:       extra,
	}
}

// OLCIL1Assets are the radiance assets of OLCI L1 EFR and ERR products: the
// measurements dataset and one asset per band
var OLCIL1Assets = func() map[string]AssetEntry {
	assets := map[string]AssetEntry{
		"radianceData": {
			Path: "measurements",
			Definition: datasetAsset("TOA radiance for OLCI acquisition bands 01 to 21", "",
				model.BandsOf(OLCIBands, olciBandKeys()...), 0),
		},
	}
	for _, key := range olciBandKeys() {
		assets[key+"_radianceData"] = AssetEntry{
			Path: "measurements/" + strings.ToLower(key) + "_radiance",
			Definition: dataAsset(fmt.Sprintf("TOA radiance for OLCI acquisition band %s", key), "",
				model.BandsOf(OLCIBands, key)),
		}
	}
	return assets
}()

// OLCIL2Assets are the land products of OLCI L2 LFR and LRR products
var OLCIL2Assets = map[string]AssetEntry{
	"lagp": {
		Path: "measurements",
		Definition: datasetAsset("Land and atmospheric geophysical products",
			"Dataset containing variables for the \n"+
				"- Green Instantaneous Fraction of Absorbed Photosynthetically Active Radiation (GI-FAPAR) \n"+
				"- Terrestrial Chlorophyll Index (OTCI) \n"+
				"- Integrated Water Vapour (IWV) \n"+
				"- GIFAPAR by-products red and NIR rectified reflectances (RC681, RC865)",
			model.BandsOf(OLCIBands, "Oa03", "Oa10", "Oa17", "Oa18", "Oa19"), 0),
	},
	"gifapar": {
		Path: "measurements/gifapar",
		Definition: dataAsset("Green Instantaneous FAPAR (GIFAPAR)",
			"Fraction of Absorbed Photosynthetically Active Radiation (FAPAR) in the plant canopy",
			model.BandsOf(OLCIBands, "Oa03", "Oa10", "Oa17")),
	},
	"otci": {
		Path: "measurements/otci",
		Definition: dataAsset("OLCI Terrestrial Chlorophyll Index",
			"Estimates of the Chlorophyll content in terrestrial vegetation, aims at monitoring "+
				"vegetation condition and health", nil),
	},
	"iwv": {
		Path: "measurements/iwv",
		Definition: dataAsset("Integrated Water Vapour Column",
			"Total amount of water vapour integrated over an atmosphere column",
			model.BandsOf(OLCIBands, "Oa18", "Oa19")),
	},
	"rc681": {
		Path: "measurements/rc681",
		Definition: dataAsset("Green Instantaneous FAPAR (GIFAPAR) - Rectified Reflectance - red channel",
			"By-products of the GI-FAPAR, the so-called red rectified reflectance is a "+
				"virtual reflectance largely decontaminated from atmospheric and angular effects, "+
				"and good proxy to Top of Canopy reflectances.",
			model.BandsOf(OLCIBands, "Oa10")),
	},
	"rc865": {
		Path: "measurements/rc865",
		Definition: dataAsset("Green Instantaneous FAPAR (GIFAPAR) - Rectified Reflectance - NIR channel",
			"By-products of the GI-FAPAR, the so-called NIR rectified reflectance is a "+
				"virtual reflectance largely decontaminated from atmospheric and angular effects, "+
				"and good proxy to Top of Canopy reflectances.",
			model.BandsOf(OLCIBands, "Oa17")),
	},
	"lqsf": {
		Path: "quality/lqsf",
		Definition: dataAsset("Land Quality and Science Flags",
			"The quality and science flags provide information about validity, suspicious quality, "+
				"cosmetic filling, environment and input quality.", nil),
	},
}

var (
	visibleBands  = []string{"S01", "S02", "S03", "S04", "S05", "S06"}
	stripeBBands  = []string{"S04", "S05", "S06"}
	thermalBands  = []string{"S07", "S08", "S09", "S11"}
	fireBands     = []string{"S10"}
	lstBands      = []string{"S07", "S08", "S09"}
	frpInputBands = []string{"S05", "S06", "S07", "S10"}
)

// SLSTRL1Assets are the radiance and brightness temperature datasets of an
// SLSTR RBT product, one per stripe and view
var SLSTRL1Assets = map[string]AssetEntry{
	"radiance_an": {
		Path: "measurements/anadir",
		Definition: datasetAsset("TOA radiance - stripe A, nadir view",
			"Dataset of the TOA radiances for the 500m grid, stripe A, nadir view",
			model.BandsOf(SLSTRBands, visibleBands...), 500),
	},
	"radiance_ao": {
		Path: "measurements/aoblique",
		Definition: datasetAsset("TOA radiance - stripe A, oblique view",
			"Dataset of the TOA radiances for the 500m grid, stripe A, oblique view",
			model.BandsOf(SLSTRBands, visibleBands...), 500),
	},
	"radiance_bn": {
		Path: "measurements/bnadir",
		Definition: datasetAsset("TOA radiance - stripe B, nadir view",
			"Dataset of the TOA radiances for the 500m grid, stripe B, nadir view",
			model.BandsOf(SLSTRBands, stripeBBands...), 500),
	},
	"radiance_bo": {
		Path: "measurements/boblique",
		Definition: datasetAsset("TOA radiance - stripe B, oblique view",
			"Dataset of the TOA radiances for the 500m grid, stripe B, oblique view",
			model.BandsOf(SLSTRBands, stripeBBands...), 500),
	},
	"BT_in": {
		Path: "measurements/inadir",
		Definition: datasetAsset("TOA brightness temperature - TIR, nadir view",
			"Dataset of the TOA brightness temperature for channels S7-S9 and F2 in the 1km grid, nadir view",
			model.BandsOf(SLSTRBands, thermalBands...), 1000),
	},
	"BT_io": {
		Path: "measurements/ioblique",
		Definition: datasetAsset("TOA brightness temperature - TIR, oblique view",
			"Dataset of the TOA brightness temperature for channels S7-S9 and F2, 1km grid, oblique view",
			model.BandsOf(SLSTRBands, thermalBands...), 1000),
	},
	"BT_fn": {
		Path: "measurements/fnadir",
		Definition: datasetAsset("TOA brightness temperature - F1, nadir view",
			"Dataset of the TOA brightness temperature for the F1 channel, 1km grid, nadir view",
			model.BandsOf(SLSTRBands, fireBands...), 1000),
	},
	"BT_fo": {
		Path: "measurements/foblique",
		Definition: datasetAsset("TOA brightness temperature - F1, oblique view",
			"Dataset of the TOA brightness temperature for the F1 channel, 1km grid, oblique view",
			model.BandsOf(SLSTRBands, fireBands...), 1000),
	},
}

// SLSTRLSTAssets is the land surface temperature dataset of an SLSTR LST
// product
var SLSTRLSTAssets = map[string]AssetEntry{
	"lst": {
		Path: "measurements",
		Definition: datasetAsset("Land Surface Temperature (LST)",
			"Gridded Land Surface Temperature generated on the wide 1 km measurement grid",
			model.BandsOf(SLSTRBands, lstBands...), 1000),
	},
}

// SLSTRFRPAssets are the fire radiative power datasets of an SLSTR FRP
// product
var SLSTRFRPAssets = map[string]AssetEntry{
	"FRP_an": {
		Path:       "measurements/anadir",
		Definition: datasetAsset("FRP_an measurements", "", model.BandsOf(SLSTRBands, frpInputBands...), 0),
	},
	"FRP_bn": {
		Path:       "measurements/bnadir",
		Definition: datasetAsset("FRP_bn measurements", "", model.BandsOf(SLSTRBands, frpInputBands...), 0),
	},
	"FRP_in": {
		Path:       "measurements/inadir",
		Definition: datasetAsset("FRP_in measurements", "", model.BandsOf(SLSTRBands, frpInputBands...), 0),
	},
}

// assetTable returns the component assets of a product family
func assetTable(family eopf.Family) (map[string]AssetEntry, error) {
	switch family {
	case eopf.FamilyOLCIL1:
		return OLCIL1Assets, nil
	case eopf.FamilyOLCIL2:
		return OLCIL2Assets, nil
	case eopf.FamilySLSTRL1:
		return SLSTRL1Assets, nil
	case eopf.FamilySLSTRLST:
		return SLSTRLSTAssets, nil
	case eopf.FamilySLSTRFRP:
		return SLSTRFRPAssets, nil
	}
	return nil, eopf.Invalidf("Unsupported Sentinel-3 product family '%s'", family)
}

// AssetSet creates the assets of a product of the given family at prefix
func AssetSet(prefix string, family eopf.Family) (stac.AssetSet, error) {
	table, err := assetTable(family)
	if err != nil {
		return nil, err
	}
	assets := stac.AssetSet{}
	for key, entry := range table {
		if err := assets.Add(key, entry.Definition.Create(eopf.JoinHref(prefix, entry.Path))); err != nil {
			return nil, err
		}
	}
	if err := assets.AddProductAssets(prefix); err != nil {
		return nil, err
	}
	return assets, nil
}

// ItemAssets returns the asset definitions items of a product family carry
func ItemAssets(family eopf.Family) (map[string]stac.AssetDefinition, error) {
	table, err := assetTable(family)
	if err != nil {
		return nil, err
	}
	definitions := make(map[string]stac.AssetDefinition, len(table)+2)
	for key, entry := range table {
		definitions[key] = entry.Definition
	}
	definitions[stac.ProductAssetKey] = stac.ProductAsset
	definitions[stac.MetadataAssetKey] = stac.MetadataAsset
	return definitions, nil
}
