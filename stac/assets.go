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
	"sort"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
)

// Keys of the assets every item carries
const (
	ProductAssetKey  = "product"
	MetadataAssetKey = "product_metadata"
)

// AssetDefinition describes an asset without its location. Items create
// assets from it; collections list it under item_assets.
type AssetDefinition struct {
	Title       string
	Description string
	Type        string
	Roles       []string
	Extra       map[string]interface{}
}

// Create returns an asset at href. The asset gets its own copy of the roles
// and extra fields.
func (d AssetDefinition) Create(href string) *model.Asset {
	asset := &model.Asset{
		Href:        href,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		Roles:       append([]string(nil), d.Roles...),
	}
	for key, value := range d.Extra {
		asset.SetExtra(key, copyValue(value))
	}
	return asset
}

// ItemAsset returns the definition as an item_assets entry of a collection
func (d AssetDefinition) ItemAsset() map[string]interface{} {
	out := map[string]interface{}{}
	for key, value := range d.Extra {
		out[key] = copyValue(value)
	}
	if d.Title != "" {
		out["title"] = d.Title
	}
	if d.Description != "" {
		out["description"] = d.Description
	}
	if d.Type != "" {
		out["type"] = d.Type
	}
	if len(d.Roles) > 0 {
		out["roles"] = append([]string(nil), d.Roles...)
	}
	return out
}

// DefinitionOf returns the definition of an existing asset, dropping its
// href
func DefinitionOf(asset *model.Asset) AssetDefinition {
	d := AssetDefinition{
		Title:       asset.Title,
		Description: asset.Description,
		Type:        asset.Type,
		Roles:       append([]string(nil), asset.Roles...),
	}
	if len(asset.ExtraFields) > 0 {
		d.Extra = make(map[string]interface{}, len(asset.ExtraFields))
		for key, value := range asset.ExtraFields {
			d.Extra[key] = copyValue(value)
		}
	}
	return d
}

func copyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, inner := range v {
			out[key] = copyValue(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, inner := range v {
			out[i] = copyValue(inner)
		}
		return out
	case []model.Band:
		return append([]model.Band(nil), v...)
	case []string:
		return append([]string(nil), v...)
	}
	return value
}

// DatasetExtra returns the extra fields of an asset that opens as an xarray
// dataset
func DatasetExtra() map[string]interface{} {
	return map[string]interface{}{model.OpenDatasetKwargs: model.NativeKwargs()}
}

// ProductAsset is the asset for the whole Zarr hierarchy of a product
var ProductAsset = AssetDefinition{
	Title:       "EOPF Product",
	Description: "The full Zarr hierarchy of the EOPF product",
	Type:        model.MediaTypeZarr,
	Roles:       []string{model.RoleData, model.RoleMetadata},
	Extra:       map[string]interface{}{model.OpenDatatreeKwargs: model.NativeKwargs()},
}

// MetadataAsset is the asset for the consolidated metadata of a product
var MetadataAsset = AssetDefinition{
	Title:       "Consolidated Metadata",
	Description: "Consolidated metadata of the EOPF product",
	Type:        model.MediaTypeJSON,
	Roles:       []string{model.RoleMetadata},
}

// AssetSet collects the assets of an item under unique keys
type AssetSet map[string]*model.Asset

// Add adds an asset. A key that is already present is an error.
func (s AssetSet) Add(key string, asset *model.Asset) error {
	if _, exists := s[key]; exists {
		return fmt.Errorf("Duplicate asset key: %s", key)
	}
	s[key] = asset
	return nil
}

// AddProductAssets adds the product and product_metadata assets of the
// product at prefix
func (s AssetSet) AddProductAssets(prefix string) error {
	if err := s.Add(ProductAssetKey, ProductAsset.Create(prefix)); err != nil {
		return err
	}
	return s.Add(MetadataAssetKey, MetadataAsset.Create(eopf.JoinHref(prefix, eopf.MetadataFile)))
}

// Keys returns the asset keys, sorted
func (s AssetSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AddTo adds every asset to the item
func (s AssetSet) AddTo(item *model.Item) error {
	for _, key := range s.Keys() {
		if err := item.AddAsset(key, s[key]); err != nil {
			return err
		}
	}
	return nil
}
