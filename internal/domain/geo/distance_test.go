//go:build unit

package geo_test

import (
	"math"
	"testing"

	"roomfinder/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	cases := []struct {
		name     string
		lat, lng float64
		wantErr  bool
	}{
		{name: "origin", lat: 0, lng: 0},
		{name: "poles and antimeridian", lat: 90, lng: -180},
		{name: "latitude above range", lat: 90.0001, lng: 0, wantErr: true},
		{name: "longitude below range", lat: 0, lng: -180.5, wantErr: true},
		{name: "NaN", lat: math.NaN(), lng: 0, wantErr: true},
		{name: "infinity", lat: 0, lng: math.Inf(1), wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := geo.NewPoint(c.lat, c.lng)
			if c.wantErr {
				require.ErrorIs(t, err, geo.ErrInvalidCoordinates)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, geo.Point{Lat: c.lat, Lng: c.lng}, p)
		})
	}
}

func TestPointFromNullable(t *testing.T) {
	lat, lng, bad := 19.07, 72.87, 200.0

	assert.Nil(t, geo.PointFromNullable(nil, &lng))
	assert.Nil(t, geo.PointFromNullable(&lat, nil))
	assert.Nil(t, geo.PointFromNullable(&bad, &lng))

	p := geo.PointFromNullable(&lat, &lng)
	require.NotNil(t, p)
	assert.Equal(t, geo.Point{Lat: lat, Lng: lng}, *p)
}

func TestHaversine(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		p := geo.Point{Lat: 12.9716, Lng: 77.5946}
		assert.InDelta(t, 0, geo.Haversine(p, p), 1e-9)
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		d := geo.Haversine(geo.Point{Lat: 0, Lng: 0}, geo.Point{Lat: 0, Lng: 1})
		assert.InDelta(t, 111.19, d, 0.01)
	})

	t.Run("Mumbai to Pune", func(t *testing.T) {
		mumbai := geo.Point{Lat: 19.0760, Lng: 72.8777}
		pune := geo.Point{Lat: 18.5204, Lng: 73.8567}
		assert.InDelta(t, 120.15, geo.Haversine(mumbai, pune), 0.05)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := geo.Point{Lat: 28.6139, Lng: 77.2090}
		b := geo.Point{Lat: 13.0827, Lng: 80.2707}
		assert.InDelta(t, geo.Haversine(a, b), geo.Haversine(b, a), 1e-9)
	})

	t.Run("antipodes stay finite", func(t *testing.T) {
		d := geo.Haversine(geo.Point{Lat: 0, Lng: 0}, geo.Point{Lat: 0, Lng: 180})
		assert.False(t, math.IsNaN(d))
		assert.InDelta(t, math.Pi*geo.EarthRadiusKm, d, 1e-6)
	})
}

func TestDistance(t *testing.T) {
	known := geo.Known(2.5)
	unknown := geo.Unknown()

	km, ok := known.Km()
	assert.True(t, ok)
	assert.Equal(t, 2.5, km)
	require.NotNil(t, known.KmPtr())
	assert.Equal(t, 2.5, *known.KmPtr())

	_, ok = unknown.Km()
	assert.False(t, ok)
	assert.Nil(t, unknown.KmPtr())

	assert.True(t, geo.Known(1).Less(geo.Known(2)))
	assert.False(t, geo.Known(2).Less(geo.Known(1)))
	assert.True(t, known.Less(unknown))
	assert.False(t, unknown.Less(known))
	assert.False(t, unknown.Less(unknown))

	assert.False(t, geo.Between(nil, &geo.Point{}).IsKnown())
	assert.False(t, geo.Between(&geo.Point{}, nil).IsKnown())
}

type place struct {
	name string
	pos  *geo.Point
}

func TestRank(t *testing.T) {
	origin := geo.Point{Lat: 19.0760, Lng: 72.8777}
	items := []place{
		{name: "far", pos: &geo.Point{Lat: 19.30, Lng: 72.85}},
		{name: "unlocated-1"},
		{name: "near", pos: &geo.Point{Lat: 19.08, Lng: 72.88}},
		{name: "mid", pos: &geo.Point{Lat: 19.15, Lng: 72.85}},
		{name: "unlocated-2"},
	}

	ranked := geo.Rank(origin, items, func(p place) *geo.Point { return p.pos })

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Item.name
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, []string{"near", "mid", "far", "unlocated-1", "unlocated-2"}, names)
	assert.Nil(t, ranked[3].Distance.KmPtr())
	assert.Len(t, items, 5, "input is not reordered")
	assert.Equal(t, "far", items[0].name)
}

func TestRankEmpty(t *testing.T) {
	ranked := geo.Rank(geo.Point{}, []place{}, func(p place) *geo.Point { return p.pos })
	assert.Empty(t, ranked)
}
