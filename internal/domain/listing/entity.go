package listing

import (
	"strings"
	"time"

	"roomfinder/internal/domain/geo"

	"github.com/google/uuid"
)

type Listing struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	title         string
	description   string
	rent          int
	city          string
	locality      string
	position      *geo.Point
	roomType      string
	genderPref    string
	availableFrom *time.Time
	available     bool
	createdAt     time.Time
}

type NewListingParams struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	Rent          int
	City          string
	Locality      string
	Position      *geo.Point
	RoomType      string
	GenderPref    string
	AvailableFrom *time.Time
}

func NewListing(p NewListingParams, now time.Time) (*Listing, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" || len(title) > maxTitleLength {
		return nil, ErrInvalidTitle
	}
	if p.Rent <= 0 {
		return nil, ErrInvalidRent
	}
	city := strings.TrimSpace(p.City)
	if city == "" || len(city) > maxCityLength {
		return nil, ErrInvalidCity
	}
	roomType := strings.TrimSpace(p.RoomType)
	if roomType == "" || len(roomType) > maxRoomTypeLength {
		roomType = DefaultRoomType
	}
	genderPref := strings.TrimSpace(p.GenderPref)
	if genderPref == "" {
		genderPref = GenderPrefAny
	}
	if _, ok := genderPrefs[genderPref]; !ok {
		return nil, ErrInvalidGenderPref
	}

	return &Listing{
		id:            uuid.New(),
		ownerID:       p.OwnerID,
		title:         title,
		description:   strings.TrimSpace(p.Description),
		rent:          p.Rent,
		city:          city,
		locality:      strings.TrimSpace(p.Locality),
		position:      p.Position,
		roomType:      roomType,
		genderPref:    genderPref,
		availableFrom: p.AvailableFrom,
		available:     true,
		createdAt:     now,
	}, nil
}

func (l *Listing) ID() uuid.UUID             { return l.id }
func (l *Listing) OwnerID() uuid.UUID        { return l.ownerID }
func (l *Listing) Title() string             { return l.title }
func (l *Listing) Description() string       { return l.description }
func (l *Listing) Rent() int                 { return l.rent }
func (l *Listing) City() string              { return l.city }
func (l *Listing) Locality() string          { return l.locality }
func (l *Listing) Position() *geo.Point      { return l.position }
func (l *Listing) RoomType() string          { return l.roomType }
func (l *Listing) GenderPref() string        { return l.genderPref }
func (l *Listing) AvailableFrom() *time.Time { return l.availableFrom }
func (l *Listing) Available() bool           { return l.available }
func (l *Listing) CreatedAt() time.Time      { return l.createdAt }
