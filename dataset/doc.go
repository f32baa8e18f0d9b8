// Package dataset loads search inputs from files: an airport network from
// two CSV tables, and a campus polygon from GeoJSON.
//
// Airports CSV needs the columns id, name, latitude and longitude in any
// order; routes CSV needs source and target. Other columns are ignored.
// Each route becomes a directed edge weighted by the great-circle distance
// in kilometres. Routes naming an unknown airport, repeating an edge, or
// joining two airports at the same spot are skipped.
//
// LoadPolygon accepts a FeatureCollection (first feature), a Feature, a
// Polygon or a MultiPolygon (first polygon), and returns the outer ring.
// GeoJSON positions are [longitude, latitude].
package dataset
