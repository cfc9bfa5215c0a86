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

import "encoding/json"

// MetadataFile is the consolidated metadata file at the root of every product
const MetadataFile = ".zmetadata"

const rootAttrs = ".zattrs"

// Metadata is the "metadata" mapping of a consolidated metadata document. It
// holds the root ".zattrs" entry with stac_discovery and other_metadata, and
// one "<path>/.zattrs" entry per group or array of the product.
type Metadata struct {
	doc Attrs
}

// Validate checks that a decoded consolidated metadata document holds the
// two objects every conversion needs, and returns its "metadata" mapping
func Validate(document map[string]interface{}) (*Metadata, error) {
	metadata := AsAttrs(document["metadata"])
	root := metadata.Map(rootAttrs)
	if root.Map("stac_discovery") == nil {
		return nil, Invalidf("JSON object 'stac_discovery' not found in %s file", MetadataFile)
	}
	if root.Map("other_metadata") == nil {
		return nil, Invalidf("JSON object 'other_metadata' not found in %s file", MetadataFile)
	}
	return &Metadata{doc: metadata}, nil
}

// ParseMetadata decodes and validates a consolidated metadata document
func ParseMetadata(data []byte) (*Metadata, error) {
	document := map[string]interface{}{}
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, Invalidf("%s is not a valid JSON object: %v", MetadataFile, err)
	}
	return Validate(document)
}

// NewMetadata wraps an already validated "metadata" mapping
func NewMetadata(metadata map[string]interface{}) *Metadata {
	return &Metadata{doc: metadata}
}

// Raw returns the underlying mapping
func (m *Metadata) Raw() map[string]interface{} {
	return m.doc
}

// StacDiscovery returns the stac_discovery object
func (m *Metadata) StacDiscovery() Attrs {
	return m.doc.Map(rootAttrs).Map("stac_discovery")
}

// OtherMetadata returns the other_metadata object
func (m *Metadata) OtherMetadata() Attrs {
	return m.doc.Map(rootAttrs).Map("other_metadata")
}

// Properties returns stac_discovery.properties, never nil
func (m *Metadata) Properties() Attrs {
	if properties := m.StacDiscovery().Map("properties"); properties != nil {
		return properties
	}
	return Attrs{}
}

// Attrs returns the attributes of the group or array at path, nil if the
// product has none
func (m *Metadata) Attrs(path string) Attrs {
	return m.doc.Map(path + "/" + rootAttrs)
}

// ProductTypeCode returns product:type, falling back to eopf:type which older
// processor versions write instead
func (m *Metadata) ProductTypeCode() (string, error) {
	properties := m.Properties()
	if code := properties.String("product:type"); code != "" {
		return code, nil
	}
	if code := properties.String("eopf:type"); code != "" {
		return code, nil
	}
	return "", Invalidf("No product type in stac_discovery metadata")
}

// ProductType resolves the product type of the document
func (m *Metadata) ProductType() (ProductType, error) {
	code, err := m.ProductTypeCode()
	if err != nil {
		return ProductType{}, err
	}
	return ParseProductType(code)
}
