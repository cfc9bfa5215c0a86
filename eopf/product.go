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

package eopf

import "sort"

// Mission is a Sentinel mission handled by the converter
type Mission int

// Supported missions
const (
	Sentinel1 Mission = 1
	Sentinel2 Mission = 2
	Sentinel3 Mission = 3
)

func (m Mission) String() string {
	switch m {
	case Sentinel1:
		return "Sentinel-1"
	case Sentinel2:
		return "Sentinel-2"
	case Sentinel3:
		return "Sentinel-3"
	}
	return "unknown"
}

// Family groups the product types of a mission that are converted the same way
type Family string

// Product families
const (
	FamilyGRD      Family = "GRD"
	FamilySLC      Family = "SLC"
	FamilyOCN      Family = "OCN"
	FamilyMSIL1C   Family = "MSIL1C"
	FamilyMSIL2A   Family = "MSIL2A"
	FamilyOLCIL1   Family = "OLCIL1"
	FamilyOLCIL2   Family = "OLCIL2"
	FamilySLSTRL1  Family = "SLSTRL1"
	FamilySLSTRLST Family = "SLSTRLST"
	FamilySLSTRFRP Family = "SLSTRFRP"
)

// ProductType is a resolved product type code
type ProductType struct {
	Code    string
	Mission Mission
	Family  Family
}

type productTypeInfo struct {
	mission    Mission
	family     Family
	collection string
}

var productTypes = map[string]productTypeInfo{
	"S01SIWGRH": {Sentinel1, FamilyGRD, "sentinel-1-l1-grd"},
	"S01SSMGRH": {Sentinel1, FamilyGRD, "sentinel-1-l1-grd"},
	"S01SEWGRH": {Sentinel1, FamilyGRD, "sentinel-1-l1-grd"},
	"S01SIWGRD": {Sentinel1, FamilyGRD, "sentinel-1-l1-grd"},
	"S01SSMGRD": {Sentinel1, FamilyGRD, "sentinel-1-l1-grd"},
	"S01SEWGRD": {Sentinel1, FamilyGRD, "sentinel-1-l1-grd"},
	"S01SIWSLC": {Sentinel1, FamilySLC, "sentinel-1-l1-slc"},
	"S01SIVSLC": {Sentinel1, FamilySLC, "sentinel-1-l1-slc"},
	"S01SWVSLC": {Sentinel1, FamilySLC, "sentinel-1-l1-slc"},
	"S01SSMSLC": {Sentinel1, FamilySLC, "sentinel-1-l1-slc"},
	"S01SEWSLC": {Sentinel1, FamilySLC, "sentinel-1-l1-slc"},
	"S01SIWOCN": {Sentinel1, FamilyOCN, "sentinel-1-l2-ocn"},
	"S01SEWOCN": {Sentinel1, FamilyOCN, "sentinel-1-l2-ocn"},
	"S01SSMOCN": {Sentinel1, FamilyOCN, "sentinel-1-l2-ocn"},
	"S01SWVOCN": {Sentinel1, FamilyOCN, "sentinel-1-l2-ocn"},
	"S02MSIL1C": {Sentinel2, FamilyMSIL1C, "sentinel-2-l1c"},
	"S02MSIL2A": {Sentinel2, FamilyMSIL2A, "sentinel-2-l2a"},
	"S03OLCEFR": {Sentinel3, FamilyOLCIL1, "sentinel-3-olci-l1-efr"},
	"S03OLCERR": {Sentinel3, FamilyOLCIL1, "sentinel-3-olci-l1-err"},
	"S03OLCLFR": {Sentinel3, FamilyOLCIL2, "sentinel-3-olci-l2-lfr"},
	"S03OLCLRR": {Sentinel3, FamilyOLCIL2, "sentinel-3-olci-l2-lrr"},
	"S03SLSRBT": {Sentinel3, FamilySLSTRL1, "sentinel-3-slstr-l1-rbt"},
	"S03SLSLST": {Sentinel3, FamilySLSTRLST, "sentinel-3-slstr-l2-lst"},
	"S03SLSFRP": {Sentinel3, FamilySLSTRFRP, "sentinel-3-slstr-l2-frp"},
}

// ParseProductType resolves a product type code
func ParseProductType(code string) (ProductType, error) {
	info, ok := productTypes[code]
	if !ok {
		return ProductType{}, Invalidf("The product type '%s' is not supported", code)
	}
	return ProductType{Code: code, Mission: info.mission, Family: info.family}, nil
}

// Collection returns the id of the collection items of this type belong to
func (pt ProductType) Collection() string {
	return productTypes[pt.Code].collection
}

// CollectionFor returns the collection of a product type code
func CollectionFor(code string) (string, error) {
	info, ok := productTypes[code]
	if !ok || info.collection == "" {
		return "", Invalidf("No collection defined for product type '%s'", code)
	}
	return info.collection, nil
}

// SupportedProductTypes lists every supported product type code, sorted
func SupportedProductTypes() []string {
	codes := make([]string, 0, len(productTypes))
	for code := range productTypes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
