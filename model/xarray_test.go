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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXarrayBackendConfig_NativeDefaults(t *testing.T) {
	// Tested code
	config := XarrayBackendConfig{Mode: OpModeNative}.Map()

	// Asserts
	assert.Equal(t, "eopf-zarr", config["engine"])
	assert.Equal(t, "native", config["op_mode"])
	assert.Equal(t, map[string]interface{}{}, config["chunks"])
	assert.NotContains(t, config, "bands")
	assert.NotContains(t, config, "spatial_res")
}

func TestXarrayBackendConfig_AnalysisDefaults(t *testing.T) {
	config := XarrayBackendConfig{Mode: OpModeAnalysis}.Map()

	assert.Equal(t, "analysis", config["op_mode"])
	assert.Contains(t, config, "bands")
	assert.Nil(t, config["bands"])
	assert.Contains(t, config, "spatial_res")
	assert.Nil(t, config["spatial_res"])
}

func TestXarrayBackendConfig_Analysis(t *testing.T) {
	config := XarrayBackendConfig{
		Mode:       OpModeAnalysis,
		Bands:      []string{"b01", "b02"},
		SpatialRes: 10,
		Chunks:     "auto",
	}.Map()

	assert.Equal(t, []string{"b01", "b02"}, config["bands"])
	assert.Equal(t, 10, config["spatial_res"])
	assert.Equal(t, "auto", config["chunks"])
}

func TestXarrayBackendConfig_AnalysisEdges(t *testing.T) {
	config := XarrayBackendConfig{Mode: OpModeAnalysis, Bands: []string{}, SpatialRes: 0, Chunks: -1}.Map()

	assert.Nil(t, config["bands"])
	assert.Nil(t, config["spatial_res"])
	assert.Equal(t, -1, config["chunks"])
}
