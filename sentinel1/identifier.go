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
	"fmt"
	"strings"

	"github.com/clausmichele/eopf-stac/eopf"
)

// safeProductTypes maps product type codes to the type field of SAFE
// product names
var safeProductTypes = map[string]string{
	"S01SIWGRH": "IW_GRDH_1S",
	"S01SIWGRD": "IW_GRDH_1S",
	"S01SSMGRH": "SM_GRDH_1S",
	"S01SSMGRD": "SM_GRDH_1S",
	"S01SEWGRH": "EW_GRDH_1S",
	"S01SEWGRD": "EW_GRDH_1S",
	"S01SIWSLC": "IW_SLC__1S",
	"S01SIVSLC": "IW_SLC__1S",
	"S01SWVSLC": "WV_SLC__1S",
	"S01SSMSLC": "SM_SLC__1S",
	"S01SEWSLC": "EW_SLC__1S",
	"S01SIWOCN": "IW_OCN__2S",
	"S01SEWOCN": "EW_OCN__2S",
	"S01SSMOCN": "SM_OCN__2S",
	"S01SWVOCN": "WV_OCN__2S",
}

const waveModeOCN = "S01SWVOCN"

// Token positions in a component name such as
// S01SIWGRD_20250319T002519_0025_A334_ABA5_07377B_VH
const (
	tokenCRC          = 4
	tokenDatatake     = 5
	tokenPolarization = 6
	minComponentParts = 7
)

// ConstructIdentifier rebuilds the SAFE identifier of a Sentinel-1 product:
// S1{platform}_{type}{polarization}_{start}_{end}_{orbit}_{datatake}_{crc}.
// When polarizations is empty the polarization is read from the component
// name.
func ConstructIdentifier(productType string, polarizations []string, start, end, platform string, orbit int, component string) (string, error) {
	typeCode, ok := safeProductTypes[productType]
	if !ok {
		return "", eopf.Invalidf("Unexpected product type: %s", productType)
	}

	if component == "" {
		return "", eopf.Invalidf("Name of component cannot be empty")
	}
	parts := strings.Split(component, "_")
	if len(parts) < minComponentParts {
		return "", eopf.Invalidf("Unexpected format of component name: %s", component)
	}
	crc := parts[tokenCRC]
	datatake := parts[tokenDatatake]
	if len(polarizations) == 0 {
		polarizations = []string{parts[tokenPolarization]}
	}

	polarizationCode, err := polarizationCode(productType, polarizations)
	if err != nil {
		return "", err
	}

	platformCode, err := platformCode(platform)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("S1%s_%s%s_%s_%s_%06d_%s_%s",
		platformCode, typeCode, polarizationCode,
		compactTime(start), compactTime(end),
		orbit, datatake, crc), nil
}

func polarizationCode(productType string, polarizations []string) (string, error) {
	product, err := eopf.ParseProductType(productType)
	if err != nil {
		return "", err
	}

	if product.Family == eopf.FamilyOCN {
		vv := polarizations[0] == "VV"
		switch {
		case productType == waveModeOCN && vv:
			return "SV", nil
		case productType == waveModeOCN:
			return "SH", nil
		case vv:
			return "DV", nil
		default:
			return "DH", nil
		}
	}

	switch strings.Join(polarizations, ",") {
	case "VV,VH":
		return "DV", nil
	case "HH,HV":
		return "DH", nil
	case "VV":
		return "SV", nil
	case "HH":
		return "SH", nil
	}
	return "", eopf.Invalidf("Unexpected polarization value: %v", polarizations)
}

func platformCode(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "sentinel-1a":
		return "A", nil
	case "sentinel-1b":
		return "B", nil
	case "sentinel-1c":
		return "C", nil
	}
	return "", eopf.Invalidf("Unexpected platform: '%s'", platform)
}

// compactTime turns 2025-03-19T00:25:19.166197Z into 20250319T002519
func compactTime(value string) string {
	if len(value) > 19 {
		value = value[:19]
	}
	return strings.NewReplacer("-", "", ":", "").Replace(value)
}
