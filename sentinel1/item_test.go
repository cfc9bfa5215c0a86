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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/stac"
	"github.com/clausmichele/eopf-stac/util"
)

const testHref = "https://objects.example.com/bucket/product.zarr"

func createTestItem(t *testing.T, file, code string) *model.Item {
	metadata := readMetadata(t, file)
	productType, err := eopf.ParseProductType(code)
	require.Nil(t, err)

	item, err := CreateItem(&util.BasicLogContext{}, metadata, productType, stac.Options{
		Href:       testHref,
		CPMVersion: "2.5.6",
		Now:        time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.Nil(t, err)
	return item
}

func TestCreateItem_GRD(t *testing.T) {
	// Tested code
	item := createTestItem(t, "testdata/S01SIWGRH.json", "S01SIWGRH")

	// Asserts
	assert.Equal(t, "S1A_IW_GRDH_1SDV_20250319T002519_20250319T002544_058366_07377B_ABA5", item.IDStr())
	assert.Len(t, item.Assets, 8)
	assert.Equal(t, testHref+"/S01SIWGRD_20250319T002519_0025_A334_ABA5_07377B_VH/measurements", item.Assets["vh"].Href)
	assert.Equal(t, testHref+"/S01SIWGRD_20250319T002519_0025_A334_ABA5_07377B_VV/quality/noise", item.Assets["noise-vv"].Href)
	assert.Contains(t, item.Assets["noise-vv"].ExtraFields, model.OpenDatasetKwargs)

	assert.Equal(t, "sentinel-1", item.Properties["constellation"])
	assert.Equal(t, "descending", item.Properties["sat:orbit_state"])
	assert.Equal(t, FrequencyBand, item.Properties["sar:frequency_band"])
	assert.Equal(t, DefaultCenterFrequency, item.Properties["sar:center_frequency"])
	assert.Equal(t, "IW", item.Properties["sar:instrument_mode"])
	assert.Equal(t, 193.8, item.Properties["view:azimuth"])
	assert.Equal(t, "003.91", item.Properties["processing:version"])
	assert.NotContains(t, item.Properties, "processing:facility")
	assert.NotContains(t, item.Properties, "product:timeliness")
	assert.Nil(t, item.Properties["datetime"])

	software := item.Properties["processing:software"].(map[string]interface{})
	assert.Equal(t, "2.5.6", software[stac.SoftwareCPM])

	for _, ext := range []string{model.SARExtension, model.SatExtension, model.ViewExtension,
		model.ProcessingExtension, model.ProductExtension, model.EOPFExtension, model.TimestampsExtension} {
		assert.True(t, item.HasExtension(ext), ext)
	}

	polygon, ok := item.Geometry.(*geojson.Polygon)
	require.True(t, ok)
	ring := polygon.Coordinates[0]
	assert.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestCreateItem_OCN(t *testing.T) {
	item := createTestItem(t, "testdata/S01SIWOCN.json", "S01SIWOCN")

	assert.Equal(t, "S1A_IW_OCN__2SDV_20250321T063156_20250321T063221_058399_0738CE_2479", item.IDStr())
	assert.Len(t, item.Assets, 5)
	assert.Equal(t, testHref+"/owi/S01SIWOCN_20250321T063156_0025_A334_2479_0738CE_VV/measurements",
		item.Assets["owi"].Href)
	assert.Equal(t, "Ocean Wind field", item.Assets["owi"].Title)
}

func TestCreateItem_SLCWaveMode(t *testing.T) {
	item := createTestItem(t, "testdata/S01SWVSLC.json", "S01SWVSLC")

	assert.Equal(t, "S1C_WV_SLC__1SSV_20250414T005618_20250414T005803_001882_0039A3_AE9F", item.IDStr())
	assert.Len(t, item.Assets, 2)
	assert.Equal(t, testHref, item.Assets[stac.ProductAssetKey].Href)
	assert.Contains(t, item.Assets[stac.ProductAssetKey].ExtraFields, model.OpenDatatreeKwargs)
	assert.Equal(t, "WV", item.Properties["sar:instrument_mode"])
	assert.NotContains(t, item.Properties, "eopf:instrument_mode")
}

func TestCreateItem_NoComponents(t *testing.T) {
	metadata := eopf.NewMetadata(map[string]interface{}{
		".zattrs": map[string]interface{}{
			"stac_discovery": map[string]interface{}{
				"id":    "S01SIWGRH_20250319T002519_0024_A334_T651",
				"links": []interface{}{"x"},
				"properties": map[string]interface{}{
					"start_datetime": "2025-03-19T00:25:19Z",
					"end_datetime":   "2025-03-19T00:25:44Z",
				},
			},
			"other_metadata": map[string]interface{}{},
		},
	})
	productType, _ := eopf.ParseProductType("S01SIWGRH")

	_, err := CreateItem(&util.BasicLogContext{}, metadata, productType, stac.Options{Href: testHref})

	assert.EqualError(t, err, "No product component found in links")
}
