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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausmichele/eopf-stac/eopf"
)

func TestTimestampsFrom(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	ts, err := TimestampsFrom(eopf.Attrs{"created": "2025-03-19T02:10:00Z"}, now)
	require.Nil(t, err)
	assert.Equal(t, time.Date(2025, 3, 19, 2, 10, 0, 0, time.UTC), ts.Created)

	ts, err = TimestampsFrom(eopf.Attrs{}, now)
	require.Nil(t, err)
	assert.Equal(t, now, ts.Created)
}

func TestSatelliteFrom(t *testing.T) {
	// Mock
	properties := eopf.Attrs{
		"sat:orbit_state":    "ascending",
		"sat:absolute_orbit": 58366.0,
		"sat:anx_datetime":   "2025-03-19T00:01:02Z",
	}

	// Tested code
	sat, err := SatelliteFrom(properties)

	// Asserts
	require.Nil(t, err)
	assert.Equal(t, "ascending", sat.OrbitState)
	assert.Equal(t, 58366, *sat.AbsoluteOrbit)
	assert.Nil(t, sat.RelativeOrbit)
	assert.Equal(t, 2025, sat.AnxDatetime.Year())
}

func TestSatelliteFrom_None(t *testing.T) {
	sat, err := SatelliteFrom(eopf.Attrs{"platform": "sentinel-1a"})

	assert.Nil(t, err)
	assert.Nil(t, sat)
}

func TestElectroOpticalFrom(t *testing.T) {
	assert.Nil(t, ElectroOpticalFrom(eopf.Attrs{}))

	eo := ElectroOpticalFrom(eopf.Attrs{"eo:cloud_cover": 12.5})

	assert.Equal(t, 12.5, *eo.CloudCover)
	assert.Nil(t, eo.SnowCover)
}

func TestProcessingFrom_Placeholders(t *testing.T) {
	// Mock
	properties := eopf.Attrs{
		"processing:expression": PlaceholderExpression,
		"processing:facility":   PlaceholderFacility,
		"processing:version":    PlaceholderVersion,
		"processing:level":      "L1",
		"processing:software":   map[string]interface{}{"Sentinel-1 IPF": "003.91"},
	}

	// Tested code
	p := ProcessingFrom(properties, "2.5.9", "")

	// Asserts
	require.NotNil(t, p)
	assert.Nil(t, p.Expression)
	assert.Equal(t, "", p.Facility)
	assert.Equal(t, "", p.Version)
	assert.Equal(t, "L1", p.Level)
	assert.Equal(t, map[string]interface{}{"Sentinel-1 IPF": "003.91", SoftwareCPM: "2.5.9"}, p.Software)
	assert.Equal(t, map[string]interface{}{"Sentinel-1 IPF": "003.91"}, properties["processing:software"])
}

func TestProcessingFrom_Baseline(t *testing.T) {
	properties := eopf.Attrs{"processing:version": "02.00", "processing:facility": "ESA"}

	p := ProcessingFrom(properties, "", "05.10")

	assert.Equal(t, "05.10", p.Version)
	assert.Equal(t, "ESA", p.Facility)
	assert.Nil(t, p.Software)
}

func TestProcessingFrom_None(t *testing.T) {
	assert.Nil(t, ProcessingFrom(eopf.Attrs{}, "", ""))
	assert.NotNil(t, ProcessingFrom(eopf.Attrs{}, "2.5.6", ""))
}

func TestSoftwareVersion(t *testing.T) {
	properties := eopf.Attrs{"processing:software": map[string]interface{}{"PUG": "06.23"}}

	assert.Equal(t, "06.23", SoftwareVersion(properties, "PUG"))
	assert.Equal(t, "", SoftwareVersion(eopf.Attrs{}, "PUG"))
}

func TestProductFrom(t *testing.T) {
	properties := eopf.Attrs{
		"product:timeliness":          "PT3H",
		"product:timeliness_category": "NRT",
		"product:acquisition_type":    "nominal",
	}

	p := ProductFrom("S03OLCEFR", properties)

	assert.Equal(t, "S03OLCEFR", p.Type)
	assert.Equal(t, "nominal", p.AcquisitionType)
	assert.Equal(t, "PT3H", p.Timeliness)
	assert.Equal(t, "NRT", p.TimelinessCategory)
}

func TestProductFrom_PlaceholderTimeliness(t *testing.T) {
	properties := eopf.Attrs{
		"product:timeliness":          PlaceholderTimeliness,
		"product:timeliness_category": "NRT",
	}

	p := ProductFrom("S01SIWGRH", properties)

	assert.Equal(t, "", p.Timeliness)
	assert.Equal(t, "", p.TimelinessCategory)
	assert.Nil(t, ProductFrom("", properties))
}

func TestEOPFFrom(t *testing.T) {
	// Mock
	properties := eopf.Attrs{
		"eopf:data_take_id":    "0x07377B",
		"eopf:instrument_mode": PlaceholderInstrumentMode,
		"eopf:origin_datetime": "2025-03-19T02:00:00Z",
		"eopf:datastrip_id":    "S2B_OPER_MSI_L1C_DS",
	}

	// Tested code
	e := EOPFFrom(properties)

	// Asserts
	require.NotNil(t, e)
	assert.Equal(t, "0x07377B", e.DatatakeID)
	assert.Equal(t, "", e.InstrumentMode)
	assert.Equal(t, "2025-03-19T02:00:00Z", e.OriginDatetime)
	assert.Equal(t, "S2B_OPER_MSI_L1C_DS", e.DatastripID)
}

func TestEOPFFrom_PlaceholderOnly(t *testing.T) {
	e := EOPFFrom(eopf.Attrs{"eopf:instrument_mode": PlaceholderInstrumentMode})

	require.NotNil(t, e)
	assert.Equal(t, "", e.InstrumentMode)
	assert.Nil(t, EOPFFrom(eopf.Attrs{}))
}
