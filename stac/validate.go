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
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
)

//go:embed schema/item.schema.json
var itemSchemaJSON []byte

const itemSchemaURL = "https://eopf-stac.local/schema/item.schema.json"

var (
	itemSchema     *jsonschema.Schema
	itemSchemaErr  error
	itemSchemaOnce sync.Once
)

func compiledItemSchema() (*jsonschema.Schema, error) {
	itemSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(itemSchemaURL, bytes.NewReader(itemSchemaJSON)); err != nil {
			itemSchemaErr = fmt.Errorf("item schema load failed: %w", err)
			return
		}
		itemSchema, itemSchemaErr = c.Compile(itemSchemaURL)
	})
	return itemSchema, itemSchemaErr
}

// ValidateItem checks the serialized item against the STAC item schema
func ValidateItem(item *model.Item) error {
	schema, err := compiledItemSchema()
	if err != nil {
		return err
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to serialize item %s: %w", item.IDStr(), err)
	}
	var document interface{}
	if err = json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("failed to decode item %s: %w", item.IDStr(), err)
	}

	if err = schema.Validate(document); err != nil {
		return eopf.Invalidf("STAC item %s is not valid: %v", item.IDStr(), err)
	}
	return nil
}
