package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/swarmlab/aco"
	"github.com/katalvlaran/swarmlab/geo"
)

// LoadGraph builds a route graph from an airports table and a routes table.
// Every airport becomes a node, even without routes. opts configure the graph.
func LoadGraph(airports, routes io.Reader, opts ...aco.GraphOption) (*aco.Graph, map[int]Airport, error) {
	index, err := LoadAirports(airports)
	if err != nil {
		return nil, nil, err
	}

	g := aco.NewGraph(opts...)
	for id := range index {
		g.AddNode(id)
	}

	r := newReader(routes)
	cols, err := header(r, "source", "target")
	if err != nil {
		return nil, nil, fmt.Errorf("routes: %w", err)
	}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("routes: %w: %v", ErrBadRecord, err)
		}
		line, _ := r.FieldPos(0)
		from, err := intField(rec, cols["source"])
		if err != nil {
			return nil, nil, fmt.Errorf("routes line %d: %w", line, err)
		}
		to, err := intField(rec, cols["target"])
		if err != nil {
			return nil, nil, fmt.Errorf("routes line %d: %w", line, err)
		}

		a, okA := index[from]
		b, okB := index[to]
		if !okA || !okB {
			continue
		}
		err = g.AddEdge(from, to, geo.Haversine(a.Location, b.Location)/1000)
		switch {
		case err == nil,
			errors.Is(err, aco.ErrDuplicateEdge),
			errors.Is(err, aco.ErrLoopNotAllowed),
			errors.Is(err, aco.ErrBadDistance):
		default:
			return nil, nil, fmt.Errorf("routes line %d: %w", line, err)
		}
	}

	return g, index, nil
}

// LoadAirports reads an airports table keyed by id. A repeated id keeps the last row.
func LoadAirports(r io.Reader) (map[int]Airport, error) {
	cr := newReader(r)
	cols, err := header(cr, "id", "name", "latitude", "longitude")
	if err != nil {
		return nil, fmt.Errorf("airports: %w", err)
	}

	out := make(map[int]Airport)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("airports: %w: %v", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(0)
		id, err := intField(rec, cols["id"])
		if err != nil {
			return nil, fmt.Errorf("airports line %d: %w", line, err)
		}
		lat, err := floatField(rec, cols["latitude"])
		if err != nil {
			return nil, fmt.Errorf("airports line %d: %w", line, err)
		}
		lng, err := floatField(rec, cols["longitude"])
		if err != nil {
			return nil, fmt.Errorf("airports line %d: %w", line, err)
		}
		a := Airport{ID: id, Location: geo.Point{Lat: lat, Lng: lng}}
		if i := cols["name"]; i < len(rec) {
			a.Name = rec[i]
		}
		out[id] = a
	}

	return out, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	return cr
}

// header reads the first row and maps each wanted column to its index.
func header(r *csv.Reader, want ...string) (map[string]int, error) {
	row, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty table", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	seen := make(map[string]int, len(row))
	for i, name := range row {
		seen[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cols := make(map[string]int, len(want))
	for _, w := range want {
		i, ok := seen[w]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, w)
		}
		cols[w] = i
	}

	return cols, nil
}

func intField(rec []string, i int) (int, error) {
	if i >= len(rec) {
		return 0, fmt.Errorf("%w: short row", ErrBadRecord)
	}
	v, err := strconv.Atoi(strings.TrimSpace(rec[i]))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	return v, nil
}

func floatField(rec []string, i int) (float64, error) {
	if i >= len(rec) {
		return 0, fmt.Errorf("%w: short row", ErrBadRecord)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	return v, nil
}
