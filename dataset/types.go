package dataset

import (
	"errors"

	"github.com/katalvlaran/swarmlab/geo"
)

var (
	// ErrMissingColumn is returned when a CSV header lacks a required column.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrBadRecord is returned for a row or position that cannot be parsed.
	ErrBadRecord = errors.New("dataset: bad record")

	// ErrNoPolygon is returned when a GeoJSON document holds no polygon ring.
	ErrNoPolygon = errors.New("dataset: no polygon")
)

// Airport is one row of the airports table.
type Airport struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Location geo.Point `json:"location"`
}
