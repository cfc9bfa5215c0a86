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

package converter

import (
	"context"
	"fmt"
	"time"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/sentinel1"
	"github.com/clausmichele/eopf-stac/sentinel2"
	"github.com/clausmichele/eopf-stac/sentinel3"
	"github.com/clausmichele/eopf-stac/stac"
	"github.com/clausmichele/eopf-stac/util"
)

// SourceLookup finds the catalog entry of the scene a product was converted
// from
type SourceLookup interface {
	ItemURL(ctx context.Context, sceneID string) (string, error)
}

// Input describes one conversion
type Input struct {
	// Href is the product location
	Href string
	// SourceURI references the product the EOPF product was converted from.
	// It may be empty.
	SourceURI string
	// Now is used for timestamps, the current time if zero
	Now time.Time
}

type createFunc func(util.LogContext, *eopf.Metadata, eopf.ProductType, stac.Options) (*model.Item, error)

var creators = map[eopf.Mission]createFunc{
	eopf.Sentinel1: sentinel1.CreateItem,
	eopf.Sentinel2: sentinel2.CreateItem,
	eopf.Sentinel3: sentinel3.CreateItem,
}

// CreateItem converts a metadata document into a validated STAC item. The
// lookup may be nil, in which case no via link is added.
func CreateItem(ctx context.Context, logCtx util.LogContext, metadata *eopf.Metadata, input Input, lookup SourceLookup) (*model.Item, error) {
	productType, err := metadata.ProductType()
	if err != nil {
		return nil, err
	}
	util.LogInfo(logCtx, "Product type is "+productType.Code)

	create, ok := creators[productType.Mission]
	if !ok {
		return nil, eopf.Invalidf("The product type '%s' is not supported", productType.Code)
	}

	cpmVersion := eopf.CPMVersion(input.Href)
	util.LogInfo(logCtx, "CPM version is "+cpmVersion)

	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	item, err := create(logCtx, metadata, productType, stac.Options{
		Href:       input.Href,
		CPMVersion: cpmVersion,
		SourceHref: sourceHref(ctx, logCtx, input.SourceURI, lookup),
		Now:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item for %s: %w", input.Href, err)
	}

	if err = stac.ValidateItem(item); err != nil {
		return nil, eopf.Invalidf("Item %s is not valid: %v", item.IDStr(), err)
	}
	util.LogInfo(logCtx, "Successfully created STAC item "+item.IDStr())
	return item, nil
}

// sourceHref resolves the catalog entry of the source scene. Every failure
// is only logged: the item is still created, without a via link.
func sourceHref(ctx context.Context, logCtx util.LogContext, sourceURI string, lookup SourceLookup) string {
	if sourceURI == "" {
		util.LogAlert(logCtx, "No reference to source product provided. Some STAC properties might not be available!")
		return ""
	}
	sceneID := eopf.SourceIdentifier(sourceURI)
	util.LogInfo(logCtx, "Source scene ID is "+sceneID)

	var href string
	if lookup != nil {
		var err error
		if href, err = lookup.ItemURL(ctx, sceneID); err != nil {
			util.LogAlert(logCtx, err.Error())
			href = ""
		}
	}
	if href == "" {
		util.LogAlert(logCtx, "No link to the source scene will be added to the STAC item")
		return ""
	}
	util.LogInfo(logCtx, "STAC item URL of source scene is "+href)
	return href
}
