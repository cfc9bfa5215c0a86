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
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/stac"
	"github.com/clausmichele/eopf-stac/util"
)

func createTestItem(t *testing.T, file, href string) (*model.Item, *eopf.Metadata) {
	data, err := os.ReadFile(file)
	require.Nil(t, err)
	metadata, err := eopf.ParseMetadata(data)
	require.Nil(t, err)
	productType, err := metadata.ProductType()
	require.Nil(t, err)

	item, err := CreateItem(&util.BasicLogContext{}, metadata, productType, stac.Options{
		Href:       href,
		CPMVersion: "2.5.6",
		Now:        time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.Nil(t, err)
	return item, metadata
}

func TestCreateItem_L1C(t *testing.T) {
	// Mock
	href := "s3://eopf-data/S02MSIL1C_20240428T102559_0000_B108_T853.zarr"

	// Tested code
	item, _ := createTestItem(t, "testdata/S02MSIL1C.json", href)

	// Asserts
	assert.Equal(t, "S2B_MSIL1C_20240428T102559_N0510_R108_T32UPC_20240428T123125", item.IDStr())
	assert.Equal(t, []float64{10.5, 47.7, 12.0, 48.6}, []float64(item.Bbox))
	assert.Equal(t, "Sentinel-2", item.Properties["mission"])
	assert.Equal(t, []string{"msi"}, item.Properties["instruments"])
	assert.Equal(t, 10.0, item.Properties["gsd"])
	assert.Len(t, item.Properties["providers"], 3)
	assert.Len(t, item.StacExtensions, 12)
	assert.Len(t, item.Assets, 19)

	assert.Equal(t, "05.10", item.Properties["processing:version"])
	assert.NotContains(t, item.Properties, "processing:facility")
	assert.NotContains(t, item.Properties, "processing:expression")
	assert.Equal(t, "GS2B_20240428T102559_037316_N05.10", item.Properties["eopf:datatake_id"])
	assert.Equal(t, "10.5270/S2_-742ikth", item.Properties["sci:doi"])
	assert.Equal(t, "PT24H", item.Properties["product:timeliness"])

	assert.Equal(t, 32, item.Properties["mgrs:utm_zone"])
	assert.Equal(t, "U", item.Properties["mgrs:latitude_band"])
	assert.Equal(t, "PC", item.Properties["mgrs:grid_square"])
	assert.Equal(t, "MGRS-32UPC", item.Properties["grid:code"])

	assert.Equal(t, "EPSG:32632", item.Properties["proj:code"])
	assert.Equal(t, map[string]float64{"lat": 48.15, "lon": 11.25}, item.Properties["proj:centroid"])
	assert.Equal(t, 158.2, item.Properties["view:sun_azimuth"])
	assert.InDelta(t, 51.5, item.Properties["view:sun_elevation"], 1e-9)

	for _, ap := range append(append([]AssetPath{}, L1CBandAssets...), L1CTCIAssets...) {
		asset := item.Assets[ap.Key]
		require.NotNil(t, asset, ap.Key)
		assert.Equal(t, href+"/"+ap.Path, asset.Href)
		assert.Contains(t, asset.Roles, model.RoleData, ap.Key)
	}
	for _, ap := range DatasetAssets {
		asset := item.Assets[ap.Key]
		kwargs := asset.ExtraFields[model.OpenDatasetKwargs].(map[string]interface{})
		assert.Equal(t, "eopf-zarr", kwargs["engine"])
		assert.Equal(t, "native", kwargs["op_mode"])
		assert.Contains(t, asset.Roles, model.RoleDataset)
		assert.Contains(t, asset.Roles, model.RoleReflectance)
	}
	assert.Equal(t, href, item.Assets[stac.ProductAssetKey].Href)
	assert.Equal(t, href+"/.zmetadata", item.Assets[stac.MetadataAssetKey].Href)
	assert.Equal(t, model.LicenseLink, item.Links[0])
}

func TestCreateItem_L1CArrayAttrs(t *testing.T) {
	item, _ := createTestItem(t, "testdata/S02MSIL1C.json", "/data/product.zarr")

	blue := item.Assets["B02_10m"]
	assert.Equal(t, "Blue (band 2) - 10m", blue.Title)
	assert.Equal(t, "TOA reflectance from MSI acquisition at spectral band b02 492.3 nm", blue.Description)
	assert.Equal(t, 10, blue.ExtraFields["gsd"])
	assert.Equal(t, "EPSG:32632", blue.ExtraFields["proj:code"])
	assert.Equal(t, 0.0001, blue.ExtraFields["raster:scale"])
	assert.Equal(t, -0.1, blue.ExtraFields["raster:offset"])
	assert.Equal(t, 0.0, blue.ExtraFields["nodata"])
	assert.Equal(t, "uint16", blue.ExtraFields["data_type"])
	assert.True(t, item.HasExtension(model.RasterExtension))

	bands := blue.ExtraFields["bands"].([]model.Band)
	require.Len(t, bands, 1)
	assert.Equal(t, "blue", bands[0].CommonName)
	assert.Equal(t, "Blue (band 2)", bands[0].Description)

	tci := item.Assets["TCI_10m"].ExtraFields["bands"].([]model.Band)
	assert.Equal(t, []string{"B04", "B03", "B02"}, []string{tci[0].Name, tci[1].Name, tci[2].Name})
	assert.Contains(t, item.Assets["TCI_10m"].Roles, model.RoleVisual)
}

func TestCreateItem_L2A(t *testing.T) {
	href := "s3://eopf-data/S02MSIL2A_20250109T100401_0000_A122_T461.zarr"

	item, _ := createTestItem(t, "testdata/S02MSIL2A.json", href)

	assert.Equal(t, "S2A_MSIL2A_20250109T100401_N0511_R122_T34UCE_20250109T122750", item.IDStr())
	assert.Nil(t, item.Properties["datetime"])
	assert.Equal(t, "05.11", item.Properties["processing:version"])
	assert.Equal(t, 0.1, item.Properties["eo:snow_cover"])
	assert.Len(t, item.Assets, 21)
	assert.False(t, item.HasExtension(model.SatExtension))
	assert.False(t, item.HasExtension(model.ViewExtension))

	for _, table := range [][]AssetPath{L2ABandAssets, L2AAtmosphereAssets, L2ATCIAssets, DatasetAssets} {
		for _, ap := range table {
			asset := item.Assets[ap.Key]
			require.NotNil(t, asset, ap.Key)
			assert.Equal(t, href+"/"+ap.Path, asset.Href)
			assert.Contains(t, asset.Roles, model.RoleData, ap.Key)
		}
	}

	scl := item.Assets["SCL_20m"]
	assert.Equal(t, href+"/conditions/mask/l2a_classification/r20m", scl.Href)
	assert.Equal(t, "uint8", scl.ExtraFields["data_type"])
	assert.Contains(t, scl.ExtraFields, model.OpenDatasetKwargs)

	rededge := item.Assets["B05_20m"]
	assert.Equal(t, "EPSG:32634", rededge.ExtraFields["proj:code"])
	assert.Equal(t, 0.0001, rededge.ExtraFields["raster:scale"])
	assert.NotContains(t, item.Assets["AOT_10m"].ExtraFields, "raster:scale")
}

func TestCreateItem_MGRSMismatch(t *testing.T) {
	metadata := eopf.NewMetadata(map[string]interface{}{
		".zattrs": map[string]interface{}{
			"stac_discovery": map[string]interface{}{
				"id": "S02MSIL1C_20240428T102559_0000_B108_T853",
				"properties": map[string]interface{}{
					"start_datetime": "2024-04-28T10:25:59Z",
					"end_datetime":   "2024-04-28T10:25:59Z",
				},
			},
			"other_metadata": map[string]interface{}{},
		},
	})
	productType, _ := eopf.ParseProductType("S02MSIL1C")

	item, err := CreateItem(&util.BasicLogContext{}, metadata, productType, stac.Options{Href: "/data/p.zarr"})

	require.Nil(t, err)
	assert.False(t, item.HasExtension(model.MGRSExtension))
	assert.NotContains(t, item.Properties, "grid:code")
}

func TestMGRSFromID(t *testing.T) {
	mgrs, ok := MGRSFromID("S2A_MSIL2A_20250109T100401_N0511_R122_T34UCE_20250109T122750")
	assert.True(t, ok)
	assert.Equal(t, &model.MGRS{UTMZone: 34, LatitudeBand: "U", GridSquare: "CE"}, mgrs)

	mgrs, ok = MGRSFromID("S2A_MSIL2A_20250109T100401_N0511_R122_T34ICE")
	assert.False(t, ok)
	assert.Nil(t, mgrs)
}

func TestBaseline(t *testing.T) {
	assert.Equal(t, "05.10", Baseline("S2B_MSIL1C_20240428T102559_N0510_R108_T32UPC_20240428T123125"))
	assert.Equal(t, "", Baseline("S02MSIL1C_20240428T102559_0000_B108_T853"))
}

func TestViewFrom_SunElevationFromZenith(t *testing.T) {
	// Tested code
	view := viewFrom(eopf.Attrs{sunAzimuthKey: 160.25, sunZenithKey: 38.5})
	zenithOnly := viewFrom(eopf.Attrs{sunZenithKey: 90.0})
	none := viewFrom(eopf.Attrs{})

	// Asserts
	require.NotNil(t, view)
	assert.InDelta(t, 160.25, *view.SunAzimuth, 1e-9)
	assert.InDelta(t, 51.5, *view.SunElevation, 1e-9)

	require.NotNil(t, zenithOnly)
	assert.Nil(t, zenithOnly.SunAzimuth)
	assert.InDelta(t, 0.0, *zenithOnly.SunElevation, 1e-9)

	assert.Nil(t, none)
}
