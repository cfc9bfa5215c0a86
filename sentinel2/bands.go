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

import "github.com/clausmichele/eopf-stac/model"

// Bands are the MSI spectral bands. Wavelengths are in micrometres.
var Bands = map[string]model.Band{
	"B01": {Name: "B01", CommonName: "coastal", CenterWavelength: 0.443, FullWidthHalfMax: 0.027},
	"B02": {Name: "B02", CommonName: "blue", CenterWavelength: 0.49, FullWidthHalfMax: 0.098},
	"B03": {Name: "B03", CommonName: "green", CenterWavelength: 0.56, FullWidthHalfMax: 0.045},
	"B04": {Name: "B04", CommonName: "red", CenterWavelength: 0.665, FullWidthHalfMax: 0.038},
	"B05": {Name: "B05", CommonName: "rededge071", CenterWavelength: 0.704, FullWidthHalfMax: 0.019},
	"B06": {Name: "B06", CommonName: "rededge075", CenterWavelength: 0.74, FullWidthHalfMax: 0.018},
	"B07": {Name: "B07", CommonName: "rededge078", CenterWavelength: 0.783, FullWidthHalfMax: 0.028},
	"B08": {Name: "B08", CommonName: "nir", CenterWavelength: 0.842, FullWidthHalfMax: 0.145},
	"B8A": {Name: "B8A", CommonName: "nir08", CenterWavelength: 0.865, FullWidthHalfMax: 0.033},
	"B09": {Name: "B09", CommonName: "nir09", CenterWavelength: 0.945, FullWidthHalfMax: 0.026},
	"B10": {Name: "B10", CommonName: "cirrus", CenterWavelength: 1.3735, FullWidthHalfMax: 0.075},
	"B11": {Name: "B11", CommonName: "swir16", CenterWavelength: 1.61, FullWidthHalfMax: 0.143},
	"B12": {Name: "B12", CommonName: "swir22", CenterWavelength: 2.19, FullWidthHalfMax: 0.242},
}

// Descriptions names the band and auxiliary assets
var Descriptions = map[string]string{
	"AOT": "Aerosol optical thickness (AOT)",
	"WVP": "Water vapour (WVP)",
	"TCI": "True color image",
	"B01": "Coastal aerosol (band 1)",
	"B02": "Blue (band 2)",
	"B03": "Green (band 3)",
	"B04": "Red (band 4)",
	"B05": "Red edge 1 (band 5)",
	"B06": "Red edge 2 (band 6)",
	"B07": "Red edge 3 (band 7)",
	"B08": "NIR 1 (band 8)",
	"B8A": "NIR 2 (band 8A)",
	"B09": "NIR 3 (band 9)",
	"B10": "Cirrus (band 10)",
	"B11": "SWIR 1 (band 11)",
	"B12": "SWIR 2 (band 12)",
	"SCL": "Scene classification map (SCL)",
	"SR":  "Surface Reflectance",
}

// describedBands returns the bands of keys, each described by its asset
// description
func describedBands(keys ...string) []model.Band {
	bands := model.BandsOf(Bands, keys...)
	for i := range bands {
		bands[i].Description = Descriptions[bands[i].Name]
	}
	return bands
}
