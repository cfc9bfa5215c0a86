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
	"fmt"
	"time"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
)

// Placeholder values written by some processor versions. They carry no
// information and are never copied into an item.
const (
	PlaceholderExpression     = "systematic"
	PlaceholderFacility       = "OPE,OPE,OPE"
	PlaceholderVersion        = "TODO"
	PlaceholderTimeliness     = "MISSING"
	PlaceholderInstrumentMode = "Earth Observation"
)

// SoftwareCPM is the processing:software entry holding the version of the
// processor that converted the product
const SoftwareCPM = "EOPF-CPM"

// TimestampsFrom uses the created property of the product, or now if the
// product has none
func TimestampsFrom(properties eopf.Attrs, now time.Time) (*model.Timestamps, error) {
	created := now.UTC()
	if properties.Has("created") {
		t, err := model.ParseTime(properties.String("created"))
		if err != nil {
			return nil, fmt.Errorf("invalid created: %w", err)
		}
		created = t
	}
	return &model.Timestamps{Created: created}, nil
}

// SatelliteFrom reads the sat extension fields. It returns nil if the product
// has none of them.
func SatelliteFrom(properties eopf.Attrs) (*model.Satellite, error) {
	if !anyPresent(properties, "sat:orbit_state", "sat:absolute_orbit", "sat:relative_orbit",
		"sat:anx_datetime", "sat:platform_international_designator") {
		return nil, nil
	}

	sat := &model.Satellite{
		OrbitState:                      properties.String("sat:orbit_state"),
		AbsoluteOrbit:                   properties.Int("sat:absolute_orbit"),
		RelativeOrbit:                   properties.Int("sat:relative_orbit"),
		PlatformInternationalDesignator: properties.String("sat:platform_international_designator"),
	}
	if properties.Has("sat:anx_datetime") {
		anx, err := model.ParseTime(properties.String("sat:anx_datetime"))
		if err != nil {
			return nil, fmt.Errorf("invalid sat:anx_datetime: %w", err)
		}
		sat.AnxDatetime = &anx
	}
	return sat, nil
}

// ElectroOpticalFrom reads the eo extension fields, nil if there are none
func ElectroOpticalFrom(properties eopf.Attrs) *model.ElectroOptical {
	if !anyPresent(properties, "eo:cloud_cover", "eo:snow_cover") {
		return nil
	}
	return &model.ElectroOptical{
		CloudCover: properties.Float("eo:cloud_cover"),
		SnowCover:  properties.Float("eo:snow_cover"),
	}
}

// ProcessingFrom reads the processing extension fields and drops placeholder
// values. The processor version, if known, is added to processing:software
// and the baseline, if known, replaces processing:version.
func ProcessingFrom(properties eopf.Attrs, cpmVersion, baseline string) *model.Processing {
	if !anyPresent(properties, "processing:expression", "processing:facility", "processing:level",
		"processing:lineage", "processing:software", "processing:datetime", "processing:version") &&
		cpmVersion == "" && baseline == "" {
		return nil
	}

	p := &model.Processing{
		Datetime: properties.Raw("processing:datetime"),
		Level:    properties.String("processing:level"),
		Lineage:  properties.String("processing:lineage"),
	}
	if expression := properties.Raw("processing:expression"); expression != PlaceholderExpression {
		p.Expression = expression
	}
	if facility := properties.String("processing:facility"); facility != PlaceholderFacility {
		p.Facility = facility
	}
	if version := properties.String("processing:version"); version != PlaceholderVersion {
		p.Version = version
	}

	if software := properties.Map("processing:software"); software != nil {
		p.Software = make(map[string]interface{}, len(software)+1)
		for name, version := range software {
			p.Software[name] = version
		}
	}
	if cpmVersion != "" {
		if p.Software == nil {
			p.Software = map[string]interface{}{}
		}
		p.Software[SoftwareCPM] = cpmVersion
	}
	if baseline != "" {
		p.Version = baseline
	}
	return p
}

// SoftwareVersion returns the version processing:software records for one
// software name
func SoftwareVersion(properties eopf.Attrs, name string) string {
	return properties.Map("processing:software").String(name)
}

// ProductFrom reads the product extension fields. Timeliness is only kept
// when both timeliness fields are set and not a placeholder.
func ProductFrom(productType string, properties eopf.Attrs) *model.Product {
	p := &model.Product{
		Type:            productType,
		AcquisitionType: properties.String("product:acquisition_type"),
	}
	timeliness := properties.String("product:timeliness")
	if timeliness != PlaceholderTimeliness {
		p.Timeliness = timeliness
		p.TimelinessCategory = properties.String("product:timeliness_category")
	}
	if p.Type == "" && p.AcquisitionType == "" && (p.Timeliness == "" || p.TimelinessCategory == "") {
		return nil
	}
	return p
}

// EOPFFrom reads the EOPF extension fields, nil if there are none.
// eopf:data_take_id is accepted for eopf:datatake_id.
func EOPFFrom(properties eopf.Attrs) *model.EOPF {
	datatakeID := properties.Raw("eopf:datatake_id")
	if datatakeID == nil {
		datatakeID = properties.Raw("eopf:data_take_id")
	}
	e := &model.EOPF{
		DatatakeID:                datatakeID,
		DatastripID:               properties.Raw("eopf:datastrip_id"),
		InstrumentConfigurationID: properties.Raw("eopf:instrument_configuration_id"),
	}
	instrumentMode := properties.Raw("eopf:instrument_mode")
	if mode := properties.String("eopf:instrument_mode"); mode != PlaceholderInstrumentMode {
		e.InstrumentMode = mode
	}
	if origin := properties.String("eopf:origin_datetime"); origin != "" {
		e.OriginDatetime = origin
	}

	if e.DatatakeID == nil && e.DatastripID == nil && instrumentMode == nil &&
		properties.Raw("eopf:origin_datetime") == nil && e.InstrumentConfigurationID == nil {
		return nil
	}
	return e
}

func anyPresent(properties eopf.Attrs, keys ...string) bool {
	for _, key := range keys {
		if properties.Has(key) {
			return true
		}
	}
	return false
}
