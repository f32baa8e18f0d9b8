// Package geo provides the planar geometry used by the placement search:
// points in (lat, lng) degrees, polygons, even-odd containment, bounding
// boxes, a lazily generated coverage grid and great-circle distance.
//
// Polygons are ordered vertex lists and need not repeat the first vertex at
// the end; the last→first edge is implied. Nothing is validated: degenerate or
// self-intersecting polygons answer whatever the even-odd rule answers.
package geo
