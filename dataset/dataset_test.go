package dataset_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmlab/aco"
	"github.com/katalvlaran/swarmlab/dataset"
	"github.com/katalvlaran/swarmlab/geo"
)

const oneDegreeKm = 111.19492664455873

func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	return f
}

func TestLoadGraph_Fixtures(t *testing.T) {
	g, airports, err := dataset.LoadGraph(openFixture(t, "airports.csv"), openFixture(t, "routes.csv"))
	require.NoError(t, err)

	assert.Len(t, airports, 5)
	assert.Equal(t, "Charlie", airports[3].Name)
	assert.Equal(t, geo.Point{Lat: 10, Lng: 10}, airports[5].Location)

	// unknown airport, duplicate, zero-length and loop routes are skipped
	assert.Equal(t, 5, g.Len())
	assert.Equal(t, 3, g.EdgeCount())

	d, err := g.Distance(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, oneDegreeKm, d, 1e-9)

	d, err = g.Distance(3, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2*oneDegreeKm, d, 1e-9)

	_, err = g.Distance(1, 4)
	assert.ErrorIs(t, err, aco.ErrInvalidEdge)

	nb, err := g.Neighbors(5)
	require.NoError(t, err)
	assert.Empty(t, nb, "isolated airport is still a node")
}

func TestLoadGraph_FeedsSearch(t *testing.T) {
	g, _, err := dataset.LoadGraph(openFixture(t, "airports.csv"), openFixture(t, "routes.csv"),
		aco.WithEvaporation(0.2))
	require.NoError(t, err)
	assert.Equal(t, 0.2, g.Evaporation())

	path, err := aco.FindPath(g, 1, 3, aco.WithIterations(5), aco.WithAgents(5), aco.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, path)
}

func TestLoadGraph_Errors(t *testing.T) {
	airports := "id,name,latitude,longitude\n1,A,0,0\n2,B,0,1\n"

	tests := []struct {
		name     string
		airports string
		routes   string
		want     error
	}{
		{"missing airport column", "id,name,latitude\n1,A,0\n", "source,target\n", dataset.ErrMissingColumn},
		{"empty airports", "", "source,target\n", dataset.ErrMissingColumn},
		{"bad latitude", "id,name,latitude,longitude\n1,A,north,0\n", "source,target\n", dataset.ErrBadRecord},
		{"bad id", "id,name,latitude,longitude\nx,A,0,0\n", "source,target\n", dataset.ErrBadRecord},
		{"missing route column", airports, "from,to\n1,2\n", dataset.ErrMissingColumn},
		{"bad route id", airports, "source,target\n1,\\N\n", dataset.ErrBadRecord},
		{"short route row", airports, "source,target\n1\n", dataset.ErrBadRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := dataset.LoadGraph(strings.NewReader(tt.airports), strings.NewReader(tt.routes))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadPolygon_Fixture(t *testing.T) {
	poly, err := dataset.LoadPolygon(openFixture(t, "campus.geojson"))
	require.NoError(t, err)
	require.Len(t, poly, 5)
	assert.Equal(t, geo.Point{Lat: 50.40, Lng: 30.50}, poly[0])
	assert.Equal(t, geo.Point{Lat: 50.41, Lng: 30.51}, poly[2])
	assert.True(t, poly.Contains(geo.Point{Lat: 50.405, Lng: 30.505}))
}

func TestLoadPolygon_Shapes(t *testing.T) {
	ring := `[[0,0],[2,0],[2,1],[0,1]]`
	docs := map[string]string{
		"feature":      `{"type":"Feature","geometry":{"type":"Polygon","coordinates":[` + ring + `]}}`,
		"polygon":      `{"type":"Polygon","coordinates":[` + ring + `,[[0.5,0.5],[1,0.5],[1,0.8]]]}`,
		"multipolygon": `{"type":"MultiPolygon","coordinates":[[` + ring + `],[[[5,5],[6,5],[6,6]]]]}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			poly, err := dataset.LoadPolygon(strings.NewReader(doc))
			require.NoError(t, err)
			assert.Equal(t, geo.Polygon{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 2}, {Lat: 1, Lng: 2}, {Lat: 1, Lng: 0}}, poly)
		})
	}
}

func TestLoadPolygon_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"invalid json", `{"type":`, dataset.ErrBadRecord},
		{"point geometry", `{"type":"Point","coordinates":[1,2]}`, dataset.ErrNoPolygon},
		{"empty collection", `{"type":"FeatureCollection","features":[]}`, dataset.ErrNoPolygon},
		{"no coordinates", `{"type":"Polygon"}`, dataset.ErrNoPolygon},
		{"empty ring", `{"type":"Polygon","coordinates":[[]]}`, dataset.ErrNoPolygon},
		{"short position", `{"type":"Polygon","coordinates":[[[1,2],[3]]]}`, dataset.ErrBadRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.LoadPolygon(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.want)
		})
	}
}
