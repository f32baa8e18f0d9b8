package dataset

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/katalvlaran/swarmlab/geo"
)

// LoadPolygon reads a GeoJSON document and returns the outer ring of its
// first polygon.
func LoadPolygon(r io.Reader) (geo.Polygon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrBadRecord)
	}

	ring, err := outerRing(gjson.ParseBytes(data))
	if err != nil {
		return nil, err
	}

	positions := ring.Array()
	poly := make(geo.Polygon, 0, len(positions))
	for i, pos := range positions {
		c := pos.Array()
		if !pos.IsArray() || len(c) < 2 {
			return nil, fmt.Errorf("%w: position %d", ErrBadRecord, i)
		}
		poly = append(poly, geo.Point{Lat: c[1].Float(), Lng: c[0].Float()})
	}
	if len(poly) == 0 {
		return nil, fmt.Errorf("%w: empty ring", ErrNoPolygon)
	}

	return poly, nil
}

func outerRing(doc gjson.Result) (gjson.Result, error) {
	geom := doc
	switch doc.Get("type").String() {
	case "FeatureCollection":
		geom = doc.Get("features.0.geometry")
	case "Feature":
		geom = doc.Get("geometry")
	}

	var ring gjson.Result
	switch t := geom.Get("type").String(); t {
	case "Polygon":
		ring = geom.Get("coordinates.0")
	case "MultiPolygon":
		ring = geom.Get("coordinates.0.0")
	default:
		return ring, fmt.Errorf("%w: geometry type %q", ErrNoPolygon, t)
	}
	if !ring.IsArray() {
		return ring, fmt.Errorf("%w: missing coordinates", ErrNoPolygon)
	}

	return ring, nil
}
