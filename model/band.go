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

// Band describes one spectral band of an asset. Wavelengths keep the unit of
// the mission's band table.
type Band struct {
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	CommonName       string  `json:"eo:common_name,omitempty"`
	CenterWavelength float64 `json:"eo:center_wavelength,omitempty"`
	FullWidthHalfMax float64 `json:"eo:full_width_half_max,omitempty"`
}

// BandsOf looks up bands by key in a band table, keeping the order of keys.
// Unknown keys are skipped.
func BandsOf(table map[string]Band, keys ...string) []Band {
	bands := make([]Band, 0, len(keys))
	for _, key := range keys {
		if band, ok := table[key]; ok {
			bands = append(bands, band)
		}
	}
	return bands
}
