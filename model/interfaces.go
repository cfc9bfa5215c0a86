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

import "reflect"

// ItemMixin is an interface for data that can be used to augment an existing STAC item
type ItemMixin interface {
	Apply(*Item) error
}

// ApplyMixins applies each mixin in order, skipping nil ones
func ApplyMixins(item *Item, mixins ...ItemMixin) error {
	for _, mixin := range mixins {
		if isNil(mixin) {
			continue
		}
		if err := mixin.Apply(item); err != nil {
			return err
		}
	}
	return nil
}

func isNil(mixin ItemMixin) bool {
	if mixin == nil {
		return true
	}
	v := reflect.ValueOf(mixin)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
