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
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/venicegeo/geojson-go/geojson"
)

// ResolveGeometry turns a decoded JSON geometry into its geojson-go object.
// Objects that are already resolved are returned as they are. Malformed
// coordinates are reported as errors.
func ResolveGeometry(geometry interface{}) (interface{}, error) {
	var (
		obj   map[string]interface{}
		ok    bool
		bytes []byte
		err   error
	)
	if _, ok = geometry.(geojson.Mapper); ok {
		return geometry, nil
	}
	if obj, ok = geometry.(map[string]interface{}); !ok {
		return nil, errors.New("Geometry is not a JSON object")
	}
	switch obj[geojson.TYPE] {
	case geojson.FEATURE, geojson.FEATURECOLLECTION:
		return nil, fmt.Errorf("%v is not a geometry", obj[geojson.TYPE])
	}
	if bytes, err = json.Marshal(obj); err != nil {
		return nil, err
	}
	resolved, err := parseGeometry(bytes)
	if err != nil {
		return nil, fmt.Errorf("Invalid %v geometry: %v", obj[geojson.TYPE], err)
	}
	if resolved == nil {
		return nil, fmt.Errorf("Unsupported geometry type %v", obj[geojson.TYPE])
	}
	return resolved, nil
}

func parseGeometry(bytes []byte) (result interface{}, err error) {
	// members of geometry collections are type-asserted without checks
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%v", r)
		}
	}()
	return geojson.Parse(bytes)
}

// PolygonFrom returns the GeoJSON Polygon held in geometry
func PolygonFrom(geometry interface{}) (*geojson.Polygon, error) {
	resolved, err := ResolveGeometry(geometry)
	if err != nil {
		return nil, err
	}
	polygon, ok := resolved.(*geojson.Polygon)
	if !ok {
		return nil, fmt.Errorf("Geometry %T is not a Polygon", resolved)
	}
	for _, ring := range polygon.Coordinates {
		for _, position := range ring {
			if len(position) < 2 {
				return nil, fmt.Errorf("Invalid position: %v", position)
			}
		}
	}
	return polygon, nil
}

// ClosePolygon returns a GeoJSON Polygon whose exterior ring ends on its first
// position. Rings that are already closed are left as they are.
func ClosePolygon(geometry interface{}) (*geojson.Polygon, error) {
	polygon, err := PolygonFrom(geometry)
	if err != nil {
		return nil, err
	}
	coordinates := copyRings(polygon.Coordinates)
	if len(coordinates) == 0 || len(coordinates[0]) == 0 {
		return nil, errors.New("Polygon has no exterior ring")
	}

	exterior := coordinates[0]
	first, last := exterior[0], exterior[len(exterior)-1]
	if first[0] != last[0] || first[1] != last[1] {
		coordinates[0] = append(exterior, append([]float64{}, first...))
	}
	if len(coordinates[0]) < 4 {
		return nil, fmt.Errorf("Polygon exterior ring has %d positions, at least 4 are required", len(coordinates[0]))
	}
	return geojson.NewPolygon(coordinates), nil
}

// copyRings deep-copies coordinates with exact capacities. NewBoundingBox
// writes into positions that have spare capacity.
func copyRings(rings [][][]float64) [][][]float64 {
	result := make([][][]float64, len(rings))
	for i, ring := range rings {
		result[i] = make([][]float64, len(ring))
		for j, position := range ring {
			result[i][j] = make([]float64, len(position))
			copy(result[i][j], position)
		}
	}
	return result
}

// Centroid returns the area-weighted centroid of a Polygon or MultiPolygon.
// Holes are subtracted. Footprints crossing the antimeridian are unwrapped
// before weighting. The result is nil when the geometry is not polygonal or
// has no area.
func Centroid(geometry interface{}) *geojson.Point {
	resolved, err := ResolveGeometry(geometry)
	if err != nil {
		return nil
	}

	var polygons [][][][]float64
	switch g := resolved.(type) {
	case *geojson.Polygon:
		polygons = append(polygons, copyRings(g.Coordinates))
	case *geojson.MultiPolygon:
		for _, rings := range g.Coordinates {
			polygons = append(polygons, copyRings(rings))
		}
	default:
		return nil
	}

	unwrapped := crossesAntimeridian(polygons)
	var area, cx, cy float64
	for _, rings := range polygons {
		for i, ring := range rings {
			if unwrapped {
				unwrapRing(ring)
			}
			a, x, y := ringMoments(ring)
			// exterior rings count positive, holes negative, whatever their winding
			if (i == 0) != (a > 0) {
				a, x, y = -a, -x, -y
			}
			area += a
			cx += x
			cy += y
		}
	}
	if area == 0 {
		return nil
	}
	lon := cx / (3 * area)
	if lon > 180 {
		lon -= 360
	}
	return geojson.NewPoint([]float64{lon, cy / (3 * area)})
}

// crossesAntimeridian reports whether a footprint spans more than half the
// globe in longitude, which only happens when it wraps around the date line
func crossesAntimeridian(polygons [][][][]float64) bool {
	bbox, err := geojson.NewBoundingBox(polygons)
	if err != nil || len(bbox) < 4 {
		return false
	}
	return bbox.Antimeridian() || bbox[len(bbox)/2]-bbox[0] > 180
}

func unwrapRing(ring [][]float64) {
	for _, position := range ring {
		if len(position) > 0 && position[0] < 0 {
			position[0] += 360
		}
	}
}

// ringMoments computes the signed area of a ring and its first moments
// (shoelace formula, moments not yet divided by 3*area)
func ringMoments(ring [][]float64) (area, mx, my float64) {
	n := len(ring)
	if n < 3 {
		return 0, 0, 0
	}
	for _, position := range ring {
		if len(position) < 2 {
			return 0, 0, 0
		}
	}
	for i := 0; i < n; i++ {
		x0, y0 := ring[i][0], ring[i][1]
		x1, y1 := ring[(i+1)%n][0], ring[(i+1)%n][1]
		cross := x0*y1 - x1*y0
		area += cross
		mx += (x0 + x1) * cross
		my += (y0 + y1) * cross
	}
	return area / 2, mx / 2, my / 2
}

// Round rounds v to the given number of decimals
func Round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
