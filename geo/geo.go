package geo

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/swarmlab/internal/rng"
)

// EarthRadius is the mean earth radius in metres used by Haversine.
const EarthRadius = 6371000.0

// Point is a location in degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Polygon is an ordered ring of vertices; closing the ring is implicit.
type Polygon []Point

// Box is an axis-aligned bounding box in degrees.
type Box struct {
	South float64
	West  float64
	North float64
	East  float64
}

// Random is a source of uniform draws in [0,1).
type Random = rng.Random

// Contains reports whether p lies inside poly by the even-odd crossing rule,
// casting along the latitude axis over consecutive vertex pairs (last→first
// included).
func Contains(poly Polygon, p Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].Lat, poly[i].Lng
		xj, yj := poly[j].Lat, poly[j].Lng
		if (yi > p.Lng) != (yj > p.Lng) &&
			p.Lat < (xj-xi)*(p.Lng-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}

// Contains reports whether p lies inside the polygon.
func (poly Polygon) Contains(p Point) bool { return Contains(poly, p) }

// BoundingBox returns the min/max latitude and longitude over the vertices.
// An empty polygon yields the zero Box.
func BoundingBox(poly Polygon) Box {
	if len(poly) == 0 {
		return Box{}
	}
	lats := make([]float64, len(poly))
	lngs := make([]float64, len(poly))
	for i, p := range poly {
		lats[i] = p.Lat
		lngs[i] = p.Lng
	}

	return Box{
		South: floats.Min(lats),
		West:  floats.Min(lngs),
		North: floats.Max(lats),
		East:  floats.Max(lngs),
	}
}

// Sample draws a uniform point in the box, latitude first.
func (b Box) Sample(r Random) Point {
	lat := r.Float64()*(b.North-b.South) + b.South
	lng := r.Float64()*(b.East-b.West) + b.West

	return Point{Lat: lat, Lng: lng}
}

// CoverageGrid yields, in row-major order (latitude outer), every point
// south+i*step, west+j*step of poly's bounding box (bounds inclusive) that
// lies inside poly. A non-positive or NaN step yields nothing.
func CoverageGrid(poly Polygon, step float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !(step > 0) || len(poly) == 0 {
			return
		}
		b := BoundingBox(poly)
		for i := 0; ; i++ {
			lat := b.South + float64(i)*step
			if lat > b.North {
				return
			}
			for j := 0; ; j++ {
				lng := b.West + float64(j)*step
				if lng > b.East {
					break
				}
				p := Point{Lat: lat, Lng: lng}
				if Contains(poly, p) && !yield(p) {
					return
				}
			}
		}
	}
}

// Haversine returns the great-circle distance between a and b in metres.
func Haversine(a, b Point) float64 {
	phi1 := a.Lat * math.Pi / 180
	phi2 := b.Lat * math.Pi / 180
	dPhi := (b.Lat - a.Lat) * math.Pi / 180
	dLambda := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadius * c
}
