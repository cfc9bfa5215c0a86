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
	"strings"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/stac"
)

const (
	measurementsPath = "measurements"
	calibrationPath  = "quality/calibration"
	noisePath        = "quality/noise"

	waveMode = "WV"
)

const (
	calibrationDescription = "Calibration metadata including calibration information and the beta nought, " +
		"sigma nought, gamma and digital number look-up tables that can be used for " +
		"absolute product calibration."
	noiseDescription = "Estimated thermal noise look-up tables"
)

func polarizationAssets(pol string) map[string]stac.AssetDefinition {
	lower := strings.ToLower(pol)
	return map[string]stac.AssetDefinition{
		lower: {
			Title:       pol + " Data",
			Description: pol + " polarization backscattering coefficient, 16-bit DN.",
			Type:        model.MediaTypeZarr,
			Roles:       []string{model.RoleData, model.RoleDataset},
			Extra:       stac.DatasetExtra(),
		},
		"calibration-" + lower: {
			Title:       pol + " Calibration",
			Description: calibrationDescription,
			Type:        model.MediaTypeZarr,
			Roles:       []string{model.RoleMetadata, model.RoleDataset},
			Extra:       stac.DatasetExtra(),
		},
		"noise-" + lower: {
			Title:       pol + " Noise",
			Description: noiseDescription,
			Type:        model.MediaTypeZarr,
			Roles:       []string{model.RoleMetadata, model.RoleDataset},
			Extra:       stac.DatasetExtra(),
		},
	}
}

// GRDAssets are the measurement, calibration and noise assets of each
// polarization of a GRD product
var GRDAssets = func() map[string]stac.AssetDefinition {
	assets := map[string]stac.AssetDefinition{}
	for _, pol := range []string{"VV", "VH", "HH", "HV"} {
		for key, definition := range polarizationAssets(pol) {
			assets[key] = definition
		}
	}
	return assets
}()

// grdAssetPaths maps a GRD asset key prefix to its path inside a component
var grdAssetPaths = map[string]string{
	"":             measurementsPath,
	"calibration-": calibrationPath,
	"noise-":       noisePath,
}

// OCNAssets are the component assets of an OCN product, by component type
var OCNAssets = map[string]stac.AssetDefinition{
	"osw": {
		Title: "Ocean Swell spectra",
		Type:  model.MediaTypeZarr,
		Roles: []string{model.RoleData, model.RoleDataset},
		Extra: stac.DatasetExtra(),
	},
	"owi": {
		Title: "Ocean Wind field",
		Type:  model.MediaTypeZarr,
		Roles: []string{model.RoleData, model.RoleDataset},
		Extra: stac.DatasetExtra(),
	},
	"rvl": {
		Title: "Surface Radial Velocity",
		Type:  model.MediaTypeZarr,
		Roles: []string{model.RoleData, model.RoleDataset},
		Extra: stac.DatasetExtra(),
	},
}

// GRDAssetSet creates three assets per polarization component
func GRDAssetSet(prefix string, components []Component) (stac.AssetSet, error) {
	assets := stac.AssetSet{}
	for _, component := range components {
		lower := strings.ToLower(component.Key)
		if _, ok := GRDAssets[lower]; !ok {
			return nil, eopf.Invalidf("Unexpected polarization of component %s", component.Name)
		}
		for keyPrefix, assetPath := range grdAssetPaths {
			key := keyPrefix + lower
			href := eopf.JoinHref(prefix, component.Name, assetPath)
			if err := assets.Add(key, GRDAssets[key].Create(href)); err != nil {
				return nil, err
			}
		}
	}
	if err := assets.AddProductAssets(prefix); err != nil {
		return nil, err
	}
	return assets, nil
}

// SLCAssetSet creates the assets of an SLC product. Bursts are not exposed
// as assets, only the product itself.
func SLCAssetSet(prefix string, _ []Component) (stac.AssetSet, error) {
	assets := stac.AssetSet{}
	if err := assets.AddProductAssets(prefix); err != nil {
		return nil, err
	}
	return assets, nil
}

// OCNAssetSet creates one asset per OCN component. Wave mode products hold
// one measurement dataset per vignette and get no component assets.
func OCNAssetSet(prefix string, components []Component, instrumentMode string) (stac.AssetSet, error) {
	assets := stac.AssetSet{}
	if instrumentMode != waveMode {
		for _, component := range components {
			definition, ok := OCNAssets[component.Key]
			if !ok {
				return nil, eopf.Invalidf("Unexpected OCN component %s", component.Key)
			}
			href := eopf.JoinHref(prefix, component.Key, component.Name, measurementsPath)
			if err := assets.Add(component.Key, definition.Create(href)); err != nil {
				return nil, err
			}
		}
	}
	if err := assets.AddProductAssets(prefix); err != nil {
		return nil, err
	}
	return assets, nil
}

// ItemAssets returns the asset definitions items of a product family can
// carry
func ItemAssets(family eopf.Family) (map[string]stac.AssetDefinition, error) {
	definitions := map[string]stac.AssetDefinition{}
	switch family {
	case eopf.FamilyGRD:
		for key, definition := range GRDAssets {
			definitions[key] = definition
		}
	case eopf.FamilyOCN:
		for key, definition := range OCNAssets {
			definitions[key] = definition
		}
	case eopf.FamilySLC:
	default:
		return nil, eopf.Invalidf("Unsupported Sentinel-1 product family '%s'", family)
	}
	definitions[stac.ProductAssetKey] = stac.ProductAsset
	definitions[stac.MetadataAssetKey] = stac.MetadataAsset
	return definitions, nil
}
