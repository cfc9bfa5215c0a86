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

// OpMode is the operating mode of the eopf-zarr xarray backend
type OpMode string

// Recognised backend modes
const (
	OpModeNative   OpMode = "native"
	OpModeAnalysis OpMode = "analysis"
)

// Keys under which backend kwargs are published on an asset
const (
	OpenDatatreeKwargs = "xarray:open_datatree_kwargs"
	OpenDatasetKwargs  = "xarray:open_dataset_kwargs"
)

const xarrayEngine = "eopf-zarr"

// XarrayBackendConfig describes how a client opens an asset with xarray
type XarrayBackendConfig struct {
	Mode OpMode
	// Chunks is passed through verbatim; nil means an empty chunk mapping
	Chunks     interface{}
	Bands      []string
	SpatialRes int
}

// Map renders the config as the kwargs object stored on assets. In analysis
// mode bands and spatial_res are always present, explicitly null when unset.
func (c XarrayBackendConfig) Map() map[string]interface{} {
	chunks := c.Chunks
	if chunks == nil {
		chunks = map[string]interface{}{}
	}
	out := map[string]interface{}{
		"engine":  xarrayEngine,
		"op_mode": string(c.Mode),
		"chunks":  chunks,
	}

	if len(c.Bands) > 0 {
		out["bands"] = c.Bands
	} else if c.Mode == OpModeAnalysis {
		out["bands"] = nil
	}

	if c.SpatialRes > 0 {
		out["spatial_res"] = c.SpatialRes
	} else if c.Mode == OpModeAnalysis {
		out["spatial_res"] = nil
	}
	return out
}

// NativeKwargs is the native mode config used by every generated asset
func NativeKwargs() map[string]interface{} {
	return XarrayBackendConfig{Mode: OpModeNative}.Map()
}
