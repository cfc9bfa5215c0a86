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
	"path"
	"strconv"
	"strings"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/stac"
)

// AssetPath is an asset key and the path of the array or group it points at.
// Keys are <name>_<resolution>m, e.g. B02_10m.
type AssetPath struct {
	Key  string
	Path string
}

// L1CBandAssets are the reflectance bands of an L1C product
var L1CBandAssets = []AssetPath{
	{"B01_60m", "measurements/reflectance/r60m/b01"},
	{"B02_10m", "measurements/reflectance/r10m/b02"},
	{"B03_10m", "measurements/reflectance/r10m/b03"},
	{"B04_10m", "measurements/reflectance/r10m/b04"},
	{"B05_20m", "measurements/reflectance/r20m/b05"},
	{"B06_20m", "measurements/reflectance/r20m/b06"},
	{"B07_20m", "measurements/reflectance/r20m/b07"},
	{"B08_10m", "measurements/reflectance/r10m/b08"},
	{"B09_60m", "measurements/reflectance/r60m/b09"},
	{"B10_60m", "measurements/reflectance/r60m/b10"},
	{"B11_20m", "measurements/reflectance/r20m/b11"},
	{"B12_20m", "measurements/reflectance/r20m/b12"},
	{"B8A_20m", "measurements/reflectance/r20m/b8a"},
}

// L2ABandAssets are the surface reflectance bands of an L2A product, each at
// its native resolution
var L2ABandAssets = []AssetPath{
	{"B02_10m", "measurements/reflectance/r10m/b02"},
	{"B03_10m", "measurements/reflectance/r10m/b03"},
	{"B04_10m", "measurements/reflectance/r10m/b04"},
	{"B08_10m", "measurements/reflectance/r10m/b08"},
	{"B01_20m", "measurements/reflectance/r20m/b01"},
	{"B05_20m", "measurements/reflectance/r20m/b05"},
	{"B06_20m", "measurements/reflectance/r20m/b06"},
	{"B07_20m", "measurements/reflectance/r20m/b07"},
	{"B8A_20m", "measurements/reflectance/r20m/b8a"},
	{"B11_20m", "measurements/reflectance/r20m/b11"},
	{"B12_20m", "measurements/reflectance/r20m/b12"},
	{"B09_60m", "measurements/reflectance/r60m/b09"},
}

// L2AAtmosphereAssets are the aerosol and water vapour arrays of an L2A
// product
var L2AAtmosphereAssets = []AssetPath{
	{"AOT_10m", "quality/atmosphere/r10m/aot"},
	{"WVP_10m", "quality/atmosphere/r10m/wvp"},
}

// L2ASCLAssets point at the scene classification array. The asset opens the
// group holding it.
var L2ASCLAssets = []AssetPath{
	{"SCL_20m", "conditions/mask/l2a_classification/r20m/scl"},
}

// L1CTCIAssets is the true color quicklook of an L1C product
var L1CTCIAssets = []AssetPath{
	{"TCI_10m", "quality/l1c_quicklook/r10m/tci"},
}

// L2ATCIAssets is the true color quicklook of an L2A product
var L2ATCIAssets = []AssetPath{
	{"TCI_10m", "quality/l2a_quicklook/r10m/tci"},
}

// DatasetAssets are the reflectance groups, one per resolution
var DatasetAssets = []AssetPath{
	{"SR_10m", "measurements/reflectance/r10m"},
	{"SR_20m", "measurements/reflectance/r20m"},
	{"SR_60m", "measurements/reflectance/r60m"},
}

var datasetBands = map[string][]string{
	"SR_10m": {"B02", "B03", "B04", "B08"},
	"SR_20m": {"B01", "B02", "B03", "B04", "B05", "B06", "B07", "B8A", "B11", "B12"},
	"SR_60m": {"B01", "B02", "B03", "B04", "B05", "B06", "B07", "B8A", "B09", "B11", "B12"},
}

var tciBands = []string{"B04", "B03", "B02"}

// assetBuilder creates the assets of one product. Attributes stored next to
// an array in the product refine the asset created for it.
type assetBuilder struct {
	prefix   string
	metadata *eopf.Metadata
	item     *model.Item
	assets   stac.AssetSet
}

func (b *assetBuilder) add(ap AssetPath, href string, roles []string) (*model.Asset, error) {
	name, gsd, err := splitAssetKey(ap.Key)
	if err != nil {
		return nil, err
	}
	description, ok := Descriptions[name]
	if !ok {
		return nil, fmt.Errorf("No description for asset %s", ap.Key)
	}
	asset := &model.Asset{
		Href:  href,
		Title: fmt.Sprintf("%s - %dm", description, gsd),
		Type:  model.MediaTypeZarr,
		Roles: roles,
	}
	asset.SetExtra("gsd", gsd)
	ApplyArrayAttrs(b.item, asset, b.metadata.Attrs(ap.Path))

	if err := b.assets.Add(ap.Key, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (b *assetBuilder) bands(table []AssetPath) error {
	for _, ap := range table {
		asset, err := b.add(ap, eopf.JoinHref(b.prefix, ap.Path), []string{model.RoleData, model.RoleReflectance})
		if err != nil {
			return err
		}
		name, _, _ := splitAssetKey(ap.Key)
		asset.SetExtra("bands", describedBands(name))
	}
	return nil
}

func (b *assetBuilder) atmosphere(table []AssetPath) error {
	for _, ap := range table {
		if _, err := b.add(ap, eopf.JoinHref(b.prefix, ap.Path), []string{model.RoleData}); err != nil {
			return err
		}
	}
	return nil
}

func (b *assetBuilder) classification(table []AssetPath) error {
	for _, ap := range table {
		asset, err := b.add(ap, eopf.JoinHref(b.prefix, path.Dir(ap.Path)), []string{model.RoleData, model.RoleDataset})
		if err != nil {
			return err
		}
		for key, value := range stac.DatasetExtra() {
			asset.SetExtra(key, value)
		}
	}
	return nil
}

func (b *assetBuilder) trueColor(table []AssetPath) error {
	for _, ap := range table {
		asset, err := b.add(ap, eopf.JoinHref(b.prefix, ap.Path), []string{model.RoleVisual, model.RoleData})
		if err != nil {
			return err
		}
		asset.SetExtra("bands", describedBands(tciBands...))
	}
	return nil
}

func (b *assetBuilder) datasets(table []AssetPath) error {
	for _, ap := range table {
		asset, err := b.add(ap, eopf.JoinHref(b.prefix, ap.Path),
			[]string{model.RoleData, model.RoleReflectance, model.RoleDataset})
		if err != nil {
			return err
		}
		asset.SetExtra("bands", describedBands(datasetBands[ap.Key]...))
		for key, value := range stac.DatasetExtra() {
			asset.SetExtra(key, value)
		}
	}
	return nil
}

// L1CAssetSet creates the assets of an L1C product
func L1CAssetSet(prefix string, metadata *eopf.Metadata, item *model.Item) (stac.AssetSet, error) {
	b := &assetBuilder{prefix: prefix, metadata: metadata, item: item, assets: stac.AssetSet{}}
	steps := []func() error{
		func() error { return b.bands(L1CBandAssets) },
		func() error { return b.trueColor(L1CTCIAssets) },
		func() error { return b.datasets(DatasetAssets) },
		func() error { return b.assets.AddProductAssets(prefix) },
	}
	return b.run(steps)
}

// L2AAssetSet creates the assets of an L2A product
func L2AAssetSet(prefix string, metadata *eopf.Metadata, item *model.Item) (stac.AssetSet, error) {
	b := &assetBuilder{prefix: prefix, metadata: metadata, item: item, assets: stac.AssetSet{}}
	steps := []func() error{
		func() error { return b.bands(L2ABandAssets) },
		func() error { return b.atmosphere(L2AAtmosphereAssets) },
		func() error { return b.classification(L2ASCLAssets) },
		func() error { return b.trueColor(L2ATCIAssets) },
		func() error { return b.datasets(DatasetAssets) },
		func() error { return b.assets.AddProductAssets(prefix) },
	}
	return b.run(steps)
}

func (b *assetBuilder) run(steps []func() error) (stac.AssetSet, error) {
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return b.assets, nil
}

// splitAssetKey splits B02_10m into B02 and 10
func splitAssetKey(key string) (string, int, error) {
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 || !strings.HasSuffix(parts[1], "m") {
		return "", 0, fmt.Errorf("Invalid asset key %s", key)
	}
	gsd, err := strconv.Atoi(strings.TrimSuffix(parts[1], "m"))
	if err != nil {
		return "", 0, fmt.Errorf("Invalid resolution in asset key %s: %w", key, err)
	}
	return parts[0], gsd, nil
}

// ApplyArrayAttrs copies the attributes of an array into its asset. Scale
// and offset add the raster extension to the item.
func ApplyArrayAttrs(item *model.Item, asset *model.Asset, attrs eopf.Attrs) {
	if attrs == nil {
		return
	}
	if longName := attrs.String("long_name"); longName != "" {
		asset.Description = longName
	}
	for _, key := range []string{"proj:bbox", "proj:shape", "proj:transform"} {
		if attrs.Has(key) {
			asset.SetExtra(key, attrs.Raw(key))
		}
	}
	if code := epsgCode(attrs); code != "" {
		asset.SetExtra("proj:code", code)
	}

	scale, offset := attrs.Float("scale_factor"), attrs.Float("add_offset")
	if scale != nil {
		asset.SetExtra("raster:scale", *scale)
	}
	if offset != nil {
		asset.SetExtra("raster:offset", *offset)
	}
	if scale != nil || offset != nil {
		item.AddExtension(model.RasterExtension)
	}

	if attrs.Has("fill_value") {
		asset.SetExtra("nodata", attrs.Raw("fill_value"))
	}
	if dtype := attrs.String("dtype"); dtype != "" {
		asset.SetExtra("data_type", DataType(dtype))
	}
}

func epsgCode(attrs eopf.Attrs) string {
	if code := attrs.Int("proj:epsg"); code != nil {
		return fmt.Sprintf("EPSG:%d", *code)
	}
	if code := attrs.String("proj:epsg"); code != "" {
		return "EPSG:" + code
	}
	return ""
}

var dataTypes = map[string]string{
	"b1":  "uint8",
	"u1":  "uint8",
	"u2":  "uint16",
	"u4":  "uint32",
	"u8":  "uint64",
	"i1":  "int8",
	"i2":  "int16",
	"i4":  "int32",
	"i8":  "int64",
	"f2":  "float16",
	"f4":  "float32",
	"f8":  "float64",
	"c8":  "cfloat32",
	"c16": "cfloat64",
}

// DataType converts a Zarr dtype such as <u2 to a raster data type name.
// Names that are already spelled out are passed through.
func DataType(dtype string) string {
	code := strings.TrimLeft(dtype, "<>|=")
	if name, ok := dataTypes[code]; ok {
		return name
	}
	return code
}

// ItemAssets returns the asset definitions items of a product family carry.
// Attributes read from a product are not part of them.
func ItemAssets(family eopf.Family) (map[string]stac.AssetDefinition, error) {
	var (
		assets stac.AssetSet
		err    error
	)
	empty := eopf.NewMetadata(map[string]interface{}{})
	item := model.NewItem("", nil, nil)
	switch family {
	case eopf.FamilyMSIL1C:
		assets, err = L1CAssetSet("", empty, item)
	case eopf.FamilyMSIL2A:
		assets, err = L2AAssetSet("", empty, item)
	default:
		err = eopf.Invalidf("Unsupported Sentinel-2 product family '%s'", family)
	}
	if err != nil {
		return nil, err
	}
	definitions := make(map[string]stac.AssetDefinition, len(assets))
	for key, asset := range assets {
		definitions[key] = stac.DefinitionOf(asset)
	}
	return definitions, nil
}
