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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clausmichele/eopf-stac/eopf"
)

func TestConstructIdentifier(t *testing.T) {
	cases := []struct {
		productType   string
		polarizations []string
		start, end    string
		platform      string
		orbit         int
		component     string
		expected      string
	}{
		{
			"S01SIWGRH", []string{"VV", "VH"},
			"2025-03-19T00:25:19.166197Z", "2025-03-19T00:25:44.165074Z", "sentinel-1a", 58366,
			"S01SIWGRD_20250319T002519_0025_A334_ABA5_07377B_VH",
			"S1A_IW_GRDH_1SDV_20250319T002519_20250319T002544_058366_07377B_ABA5",
		},
		{
			"S01SIWSLC", []string{"VV", "VH"},
			"2025-01-30T16:19:59.443577Z", "2025-01-30T16:20:26.529642Z", "sentinel-1a", 57676,
			"S01SIWSLC_20250130T161959_0027_A330_3B7C_071BB7_VH_IW1_604570",
			"S1A_IW_SLC__1SDV_20250130T161959_20250130T162026_057676_071BB7_3B7C",
		},
		{
			"S01SWVSLC", []string{"VV"},
			"2025-04-14T00:56:18.175594Z", "2025-04-14T00:58:03.656057Z", "sentinel-1c", 1882,
			"S01SWVSLC_20250414T005618_0105_C011_AE9F_0039A3_VV_WV1_001",
			"S1C_WV_SLC__1SSV_20250414T005618_20250414T005803_001882_0039A3_AE9F",
		},
		{
			"S01SIWOCN", nil,
			"2025-03-21T06:31:56.675155Z", "2025-03-21T06:32:21.673897Z", "sentinel-1a", 58399,
			"S01SIWOCN_20250321T063156_0025_A334_2479_0738CE_VV",
			"S1A_IW_OCN__2SDV_20250321T063156_20250321T063221_058399_0738CE_2479",
		},
		{
			"S01SEWOCN", nil,
			"2025-04-04T18:09:06.863005Z", "2025-04-04T18:09:27.763186Z", "sentinel-1c", 1747,
			"S01SEWOCN_20250404T180906_0021_C010_31EF_003100_HH",
			"S1C_EW_OCN__2SDH_20250404T180906_20250404T180927_001747_003100_31EF",
		},
		{
			"S01SEWOCN", nil,
			"2025-04-04T18:09:06.863005Z", "2025-04-04T18:09:27.763186Z", "sentinel-1c", 1747,
			"S01SEWOCN_20250404T180906_0021_C010_31EF_003100_VV",
			"S1C_EW_OCN__2SDV_20250404T180906_20250404T180927_001747_003100_31EF",
		},
		{
			"S01SSMOCN", nil,
			"2025-04-08T07:31:17.537272Z", "2025-04-08T07:31:36.699804Z", "sentinel-1a", 58662,
			"S01SS4OCN_20250408T073117_0019_A335_9E64_074370_VV",
			"S1A_SM_OCN__2SDV_20250408T073117_20250408T073136_058662_074370_9E64",
		},
	}

	for _, c := range cases {
		id, err := ConstructIdentifier(c.productType, c.polarizations, c.start, c.end, c.platform, c.orbit, c.component)

		assert.Nil(t, err, c.expected)
		assert.Equal(t, c.expected, id)
	}
}

func TestConstructIdentifier_Deterministic(t *testing.T) {
	args := func() (string, error) {
		return ConstructIdentifier("S01SIWGRH", []string{"HH", "HV"},
			"2025-03-19T00:25:19.166197Z", "2025-03-19T00:25:44.165074Z", "Sentinel-1B", 7,
			"S01SIWGRD_20250319T002519_0025_A334_ABA5_07377B_HH")
	}

	first, err := args()
	assert.Nil(t, err)
	second, _ := args()

	assert.Equal(t, first, second)
	assert.Equal(t, "S1B_IW_GRDH_1SDH_20250319T002519_20250319T002544_000007_07377B_ABA5", first)
}

func TestConstructIdentifier_WaveModeOCN(t *testing.T) {
	id, err := ConstructIdentifier("S01SWVOCN", []string{"HH"},
		"2025-04-14T00:56:18Z", "2025-04-14T00:58:03Z", "sentinel-1a", 1,
		"S01SWVOCN_20250414T005618_0105_A011_AE9F_0039A3_HH")

	assert.Nil(t, err)
	assert.Equal(t, "S1A_WV_OCN__2SSH_20250414T005618_20250414T005803_000001_0039A3_AE9F", id)
}

func TestConstructIdentifier_Errors(t *testing.T) {
	component := "S01SIWGRD_20250319T002519_0025_A334_ABA5_07377B_VH"
	start, end := "2025-03-19T00:25:19Z", "2025-03-19T00:25:44Z"

	cases := map[string]func() (string, error){
		"product type": func() (string, error) {
			return ConstructIdentifier("S02MSIL1C", nil, start, end, "sentinel-1a", 1, component)
		},
		"empty component": func() (string, error) {
			return ConstructIdentifier("S01SIWGRH", nil, start, end, "sentinel-1a", 1, "")
		},
		"short component": func() (string, error) {
			return ConstructIdentifier("S01SIWGRH", nil, start, end, "sentinel-1a", 1, "S01SIWGRD_20250319T002519")
		},
		"polarization": func() (string, error) {
			return ConstructIdentifier("S01SIWGRH", []string{"VH", "VV"}, start, end, "sentinel-1a", 1, component)
		},
		"platform": func() (string, error) {
			return ConstructIdentifier("S01SIWGRH", nil, start, end, "sentinel-2a", 1, component)
		},
	}

	for name, construct := range cases {
		_, err := construct()

		var validationErr *eopf.ValidationError
		assert.True(t, errors.As(err, &validationErr), name)
	}
}
