package listing

import (
	"strings"
	"time"

	"roomfinder/internal/domain/geo"

	"github.com/google/uuid"
)

// Filter narrows the listing pool. Nil fields do not filter.
type Filter struct {
	RoomType   *string
	MinRent    *int
	MaxRent    *int
	GenderPref *string
}

func NewFilter(roomType *string, minRent, maxRent *int, genderPref *string) (Filter, error) {
	f := Filter{
		RoomType:   normalize(roomType),
		MinRent:    minRent,
		MaxRent:    maxRent,
		GenderPref: normalize(genderPref),
	}
	if (f.MinRent != nil && *f.MinRent < 0) || (f.MaxRent != nil && *f.MaxRent < 0) {
		return Filter{}, ErrInvalidRent
	}
	if f.MinRent != nil && f.MaxRent != nil && *f.MinRent > *f.MaxRent {
		return Filter{}, ErrInvalidRentRange
	}
	if f.GenderPref != nil {
		if _, ok := genderPrefs[*f.GenderPref]; !ok {
			return Filter{}, ErrInvalidGenderPref
		}
		// "Any" on the caller side means no preference
		if *f.GenderPref == GenderPrefAny {
			f.GenderPref = nil
		}
	}
	return f, nil
}

func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Candidate is the slice of a listing needed to rank it for pinning.
type Candidate struct {
	ID        uuid.UUID
	Title     string
	Rent      int
	Position  *geo.Point
	CreatedAt time.Time
}

func CandidatePosition(c Candidate) *geo.Point {
	return c.Position
}
