package geo

import (
	"errors"
	"math"
	"sort"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

var ErrInvalidCoordinates = errors.New("invalid coordinates")

type Point struct {
	Lat float64
	Lng float64
}

func NewPoint(lat, lng float64) (Point, error) {
	if !isFinite(lat) || !isFinite(lng) {
		return Point{}, ErrInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Point{}, ErrInvalidCoordinates
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// PointFromNullable returns nil unless both components are present and valid.
func PointFromNullable(lat, lng *float64) *Point {
	if lat == nil || lng == nil {
		return nil
	}
	p, err := NewPoint(*lat, *lng)
	if err != nil {
		return nil
	}
	return &p
}

// Haversine returns the great-circle surface distance between a and b in kilometres.
func Haversine(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// rounding can push h a hair outside [0,1] near antipodes
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// Distance is a great-circle distance that may be unknown.
type Distance struct {
	km    float64
	known bool
}

func Known(km float64) Distance { return Distance{km: km, known: true} }

func Unknown() Distance { return Distance{} }

// Between yields Unknown when either side lacks coordinates.
func Between(a, b *Point) Distance {
	if a == nil || b == nil {
		return Unknown()
	}
	return Known(Haversine(*a, *b))
}

func (d Distance) IsKnown() bool { return d.known }

// Km returns the distance and whether it is known.
func (d Distance) Km() (float64, bool) { return d.km, d.known }

// KmPtr returns nil for unknown distances; convenient for JSON and nullable columns.
func (d Distance) KmPtr() *float64 {
	if !d.known {
		return nil
	}
	km := d.km
	return &km
}

// Less orders known distances ascending, with unknown after every known distance.
func (d Distance) Less(other Distance) bool {
	switch {
	case d.known && other.known:
		return d.km < other.km
	case d.known:
		return true
	default:
		return false
	}
}

type Ranked[T any] struct {
	Item     T
	Distance Distance
	Rank     int // 1-based
}

// Rank orders items by distance from origin. Items with equal distance keep their input order.
func Rank[T any](origin Point, items []T, position func(T) *Point) []Ranked[T] {
	ranked := make([]Ranked[T], len(items))
	for i, item := range items {
		ranked[i] = Ranked[T]{Item: item, Distance: Between(&origin, position(item))}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance.Less(ranked[j].Distance)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
