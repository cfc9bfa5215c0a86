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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
)

func validItem() *model.Item {
	geometry := map[string]interface{}{
		"type":        "Polygon",
		"coordinates": [][][]float64{{{10, 46}, {11, 46}, {11, 47}, {10, 46}}},
	}
	item := model.NewItem("S2B_MSIL1C_20240428T102559", geometry, []float64{10, 46, 11, 47})
	datetime := time.Date(2024, 4, 28, 10, 25, 59, 0, time.UTC)
	item.SetDatetimes(&datetime, nil, nil)
	item.AddLink(model.LicenseLink)
	item.Assets[ProductAssetKey] = ProductAsset.Create("s3://bucket/product.zarr")
	return item
}

func TestValidateItem(t *testing.T) {
	assert.Nil(t, ValidateItem(validItem()))
}

func TestValidateItem_NullDatetimeNeedsRange(t *testing.T) {
	// Mock
	item := validItem()
	start := time.Date(2024, 4, 28, 10, 25, 59, 0, time.UTC)
	item.SetDatetimes(nil, &start, nil)

	// Tested code
	err := ValidateItem(item)

	// Asserts
	var validationErr *eopf.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	end := start.Add(time.Minute)
	item.SetDatetimes(nil, &start, &end)
	assert.Nil(t, ValidateItem(item))
}

func TestValidateItem_MissingBbox(t *testing.T) {
	item := validItem()
	item.Bbox = nil

	assert.NotNil(t, ValidateItem(item))
}

func TestValidateItem_EmptyAssetHref(t *testing.T) {
	item := validItem()
	item.Assets["broken"] = &model.Asset{Title: "no location"}

	assert.NotNil(t, ValidateItem(item))
}
