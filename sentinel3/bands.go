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

package sentinel3

import (
	"fmt"

	"github.com/clausmichele/eopf-stac/model"
)

// OLCIBands are the OLCI spectral bands. Wavelengths are in nanometres.
var OLCIBands = map[string]model.Band{
	"Oa01": {Name: "Oa01", CenterWavelength: 400, FullWidthHalfMax: 15},
	"Oa02": {Name: "Oa02", CenterWavelength: 412.5, FullWidthHalfMax: 10},
	"Oa03": {Name: "Oa03", CommonName: "coastal", CenterWavelength: 442.5, FullWidthHalfMax: 10},
	"Oa04": {Name: "Oa04", CommonName: "blue", CenterWavelength: 490, FullWidthHalfMax: 10},
	"Oa05": {Name: "Oa05", CommonName: "green05", CenterWavelength: 510, FullWidthHalfMax: 10},
	"Oa06": {Name: "Oa06", CommonName: "green", CenterWavelength: 560, FullWidthHalfMax: 10},
	"Oa07": {Name: "Oa07", CommonName: "yellow", CenterWavelength: 620, FullWidthHalfMax: 10},
	"Oa08": {Name: "Oa08", CenterWavelength: 665, FullWidthHalfMax: 10},
	"Oa09": {Name: "Oa09", CommonName: "red", CenterWavelength: 673.75, FullWidthHalfMax: 7.5},
	"Oa10": {Name: "Oa10", CenterWavelength: 681.25, FullWidthHalfMax: 7.5},
	"Oa11": {Name: "Oa11", CommonName: "rededge071", CenterWavelength: 708.75, FullWidthHalfMax: 10},
	"Oa12": {Name: "Oa12", CommonName: "rededge075", CenterWavelength: 753.75, FullWidthHalfMax: 7.5},
	"Oa13": {Name: "Oa13", CenterWavelength: 761.25, FullWidthHalfMax: 2.5},
	"Oa14": {Name: "Oa14", CenterWavelength: 764.375, FullWidthHalfMax: 3.75},
	"Oa15": {Name: "Oa15", CenterWavelength: 767.5, FullWidthHalfMax: 2.5},
	"Oa16": {Name: "Oa16", CommonName: "rededge078", CenterWavelength: 778.75, FullWidthHalfMax: 15},
	"Oa17": {Name: "Oa17", CommonName: "nir08", CenterWavelength: 865, FullWidthHalfMax: 20},
	"Oa18": {Name: "Oa18", CenterWavelength: 885, FullWidthHalfMax: 10},
	"Oa19": {Name: "Oa19", CenterWavelength: 900, FullWidthHalfMax: 10},
	"Oa20": {Name: "Oa20", CommonName: "nir09", CenterWavelength: 940, FullWidthHalfMax: 20},
	"Oa21": {Name: "Oa21", CenterWavelength: 1020, FullWidthHalfMax: 40},
}

// SLSTRBands are the SLSTR channels by table key. The band names are the
// channel names, S1 to S9 and the fire channels F1 and F2.
var SLSTRBands = map[string]model.Band{
	"S01": {Name: "S1", CommonName: "green", CenterWavelength: 554.27, FullWidthHalfMax: 19.26},
	"S02": {Name: "S2", CommonName: "red", CenterWavelength: 659.47, FullWidthHalfMax: 19.25},
	"S03": {Name: "S3", CommonName: "nir08", CenterWavelength: 868, FullWidthHalfMax: 20.6},
	"S04": {Name: "S4", CommonName: "cirrus", CenterWavelength: 1374.8, FullWidthHalfMax: 20.8},
	"S05": {Name: "S5", CommonName: "swir16", CenterWavelength: 1613.4, FullWidthHalfMax: 60.68},
	"S06": {Name: "S6", CommonName: "swir22", CenterWavelength: 2255.7, FullWidthHalfMax: 50.15},
	"S07": {Name: "S7", CenterWavelength: 3742, FullWidthHalfMax: 398},
	"S08": {Name: "S8", CenterWavelength: 10854, FullWidthHalfMax: 776},
	"S09": {Name: "S9", CenterWavelength: 12022.5, FullWidthHalfMax: 905},
	"S10": {Name: "F1", CenterWavelength: 3742, FullWidthHalfMax: 398},
	"S11": {Name: "F2", CenterWavelength: 10854, FullWidthHalfMax: 776},
}

// olciBandKeys lists Oa01 to Oa21 in order
func olciBandKeys() []string {
	keys := make([]string, 0, len(OLCIBands))
	for i := 1; i <= len(OLCIBands); i++ {
		keys = append(keys, fmt.Sprintf("Oa%02d", i))
	}
	return keys
}
