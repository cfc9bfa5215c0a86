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

import (
	"fmt"
	"strings"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// CommonMetadata is a mixin containing the STAC common metadata of a product
type CommonMetadata struct {
	Mission       string
	Constellation string
	Platform      string
	Instruments   []string
	GSD           *float64
	Providers     []Provider
}

// Apply implements the ItemMixin interface
func (cm CommonMetadata) Apply(item *Item) error {
	if cm.Mission != "" {
		item.Properties["mission"] = cm.Mission
	}
	if cm.Constellation != "" {
		item.Properties["constellation"] = cm.Constellation
	}
	if cm.Platform != "" {
		item.Properties["platform"] = cm.Platform
	}
	if len(cm.Instruments) > 0 {
		item.Properties["instruments"] = cm.Instruments
	}
	if cm.GSD != nil {
		item.Properties["gsd"] = *cm.GSD
	}
	if len(cm.Providers) > 0 {
		item.Properties["providers"] = cm.Providers
	}
	return nil
}

// Timestamps is a mixin for the created/updated common metadata and the
// published timestamp of the timestamps extension
type Timestamps struct {
	Created time.Time
}

// Apply implements the ItemMixin interface
func (ts Timestamps) Apply(item *Item) error {
	created := FormatTime(ts.Created)
	item.Properties["created"] = created
	item.Properties["updated"] = created
	item.Properties["published"] = created
	item.AddExtension(TimestampsExtension)
	return nil
}

// Orbit states accepted by the sat extension
const (
	OrbitAscending     = "ascending"
	OrbitDescending    = "descending"
	OrbitGeostationary = "geostationary"
)

// Satellite is a mixin containing sat extension fields
type Satellite struct {
	OrbitState                      string
	AbsoluteOrbit                   *int
	RelativeOrbit                   *int
	AnxDatetime                     *time.Time
	PlatformInternationalDesignator string
}

// Apply implements the ItemMixin interface
func (sat Satellite) Apply(item *Item) error {
	if sat.OrbitState != "" {
		state := strings.ToLower(sat.OrbitState)
		switch state {
		case OrbitAscending, OrbitDescending, OrbitGeostationary:
		default:
			return fmt.Errorf("Unknown orbit state: %s", sat.OrbitState)
		}
		item.Properties["sat:orbit_state"] = state
	}
	if sat.AbsoluteOrbit != nil {
		item.Properties["sat:absolute_orbit"] = *sat.AbsoluteOrbit
	}
	if sat.RelativeOrbit != nil {
		item.Properties["sat:relative_orbit"] = *sat.RelativeOrbit
	}
	if sat.AnxDatetime != nil {
		item.Properties["sat:anx_datetime"] = FormatTime(*sat.AnxDatetime)
	}
	if sat.PlatformInternationalDesignator != "" {
		item.Properties["sat:platform_international_designator"] = sat.PlatformInternationalDesignator
	}
	item.AddExtension(SatExtension)
	return nil
}

// ElectroOptical is a mixin containing eo extension item fields
type ElectroOptical struct {
	CloudCover *float64
	SnowCover  *float64
}

// Apply implements the ItemMixin interface
func (eo ElectroOptical) Apply(item *Item) error {
	if eo.CloudCover != nil {
		item.Properties["eo:cloud_cover"] = *eo.CloudCover
	}
	if eo.SnowCover != nil {
		item.Properties["eo:snow_cover"] = *eo.SnowCover
	}
	item.AddExtension(EOExtension)
	return nil
}

// View is a mixin containing view extension fields
type View struct {
	Azimuth        *float64
	IncidenceAngle *float64
	OffNadir       *float64
	SunAzimuth     *float64
	SunElevation   *float64
}

// Apply implements the ItemMixin interface
func (v View) Apply(item *Item) error {
	set := func(key string, value *float64) {
		if value != nil {
			item.Properties[key] = *value
		}
	}
	set("view:azimuth", v.Azimuth)
	set("view:incidence_angle", v.IncidenceAngle)
	set("view:off_nadir", v.OffNadir)
	set("view:sun_azimuth", v.SunAzimuth)
	set("view:sun_elevation", v.SunElevation)
	item.AddExtension(ViewExtension)
	return nil
}

// Processing is a mixin containing processing extension fields.
// Software maps a software name to its version.
type Processing struct {
	Expression interface{}
	Facility   string
	Level      string
	Lineage    string
	Version    string
	Datetime   interface{}
	Software   map[string]interface{}
}

// Apply implements the ItemMixin interface
func (p Processing) Apply(item *Item) error {
	set := func(key string, value string) {
		if value != "" {
			item.Properties[key] = value
		}
	}
	if p.Expression != nil {
		item.Properties["processing:expression"] = p.Expression
	}
	if p.Datetime != nil {
		item.Properties["processing:datetime"] = p.Datetime
	}
	if len(p.Software) > 0 {
		item.Properties["processing:software"] = p.Software
	}
	set("processing:facility", p.Facility)
	set("processing:level", p.Level)
	set("processing:lineage", p.Lineage)
	set("processing:version", p.Version)
	item.AddExtension(ProcessingExtension)
	return nil
}

// Product is a mixin containing product extension fields
type Product struct {
	Type               string
	AcquisitionType    string
	Timeliness         string
	TimelinessCategory string
}

// Apply implements the ItemMixin interface
func (p Product) Apply(item *Item) error {
	if p.Type != "" {
		item.Properties["product:type"] = p.Type
	}
	if p.AcquisitionType != "" {
		item.Properties["product:acquisition_type"] = p.AcquisitionType
	}
	if p.Timeliness != "" && p.TimelinessCategory != "" {
		item.Properties["product:timeliness"] = p.Timeliness
		item.Properties["product:timeliness_category"] = p.TimelinessCategory
	}
	item.AddExtension(ProductExtension)
	return nil
}

// EOPF is a mixin containing fields of the EOPF extension. Identifiers keep
// the JSON type they were read with.
type EOPF struct {
	DatatakeID                interface{}
	DatastripID               interface{}
	InstrumentMode            string
	OriginDatetime            interface{}
	InstrumentConfigurationID interface{}
}

// Apply implements the ItemMixin interface
func (e EOPF) Apply(item *Item) error {
	set := func(key string, value interface{}) {
		if value != nil {
			item.Properties[key] = value
		}
	}
	set("eopf:datatake_id", e.DatatakeID)
	set("eopf:datastrip_id", e.DatastripID)
	set("eopf:origin_datetime", e.OriginDatetime)
	set("eopf:instrument_configuration_id", e.InstrumentConfigurationID)
	if e.InstrumentMode != "" {
		item.Properties["eopf:instrument_mode"] = e.InstrumentMode
	}
	item.AddExtension(EOPFExtension)
	return nil
}

// SAR is a mixin containing sar extension fields
type SAR struct {
	Polarizations        []string
	FrequencyBand        string
	CenterFrequency      *float64
	InstrumentMode       string
	ProductType          string
	ObservationDirection string
	ResolutionRange      *float64
	ResolutionAzimuth    *float64
	PixelSpacingRange    *float64
	PixelSpacingAzimuth  *float64
}

// Apply implements the ItemMixin interface
func (s SAR) Apply(item *Item) error {
	setString := func(key string, value string) {
		if value != "" {
			item.Properties[key] = value
		}
	}
	setFloat := func(key string, value *float64) {
		if value != nil {
			item.Properties[key] = *value
		}
	}
	if len(s.Polarizations) > 0 {
		item.Properties["sar:polarizations"] = s.Polarizations
	}
	setString("sar:frequency_band", s.FrequencyBand)
	setFloat("sar:center_frequency", s.CenterFrequency)
	setString("sar:instrument_mode", s.InstrumentMode)
	setString("sar:product_type", s.ProductType)
	setString("sar:observation_direction", s.ObservationDirection)
	setFloat("sar:resolution_range", s.ResolutionRange)
	setFloat("sar:resolution_azimuth", s.ResolutionAzimuth)
	setFloat("sar:pixel_spacing_range", s.PixelSpacingRange)
	setFloat("sar:pixel_spacing_azimuth", s.PixelSpacingAzimuth)
	item.AddExtension(SARExtension)
	return nil
}

// Projection is a mixin containing item level projection extension fields
type Projection struct {
	Code     string
	Bbox     []float64
	Centroid *geojson.Point
}

// Apply implements the ItemMixin interface
func (p Projection) Apply(item *Item) error {
	if p.Code != "" {
		item.Properties["proj:code"] = p.Code
	}
	if len(p.Bbox) > 0 {
		item.Properties["proj:bbox"] = p.Bbox
	}
	if p.Centroid != nil && len(p.Centroid.Coordinates) >= 2 {
		item.Properties["proj:centroid"] = map[string]float64{
			"lat": Round(p.Centroid.Coordinates[1], 5),
			"lon": Round(p.Centroid.Coordinates[0], 5),
		}
	}
	item.AddExtension(ProjectionExtension)
	return nil
}

// MGRS is a mixin for a Military Grid Reference System tile. It fills both
// the mgrs and the grid extension.
type MGRS struct {
	UTMZone      int
	LatitudeBand string
	GridSquare   string
}

// GridCode returns the grid:code of the tile, e.g. MGRS-32UPC
func (m MGRS) GridCode() string {
	return fmt.Sprintf("MGRS-%d%s%s", m.UTMZone, m.LatitudeBand, m.GridSquare)
}

// Apply implements the ItemMixin interface
func (m MGRS) Apply(item *Item) error {
	if m.UTMZone < 1 || m.UTMZone > 60 {
		return fmt.Errorf("Invalid UTM zone: %d", m.UTMZone)
	}
	item.Properties["mgrs:utm_zone"] = m.UTMZone
	item.Properties["mgrs:latitude_band"] = m.LatitudeBand
	item.Properties["mgrs:grid_square"] = m.GridSquare
	item.Properties["grid:code"] = m.GridCode()
	item.AddExtension(MGRSExtension)
	item.AddExtension(GridExtension)
	return nil
}

// Scientific is a mixin for the scientific extension
type Scientific struct {
	DOI string
}

// Apply implements the ItemMixin interface
func (s Scientific) Apply(item *Item) error {
	item.Properties["sci:doi"] = s.DOI
	item.AddExtension(ScientificExtension)
	return nil
}
