package listing

import "errors"

var (
	ErrInvalidTitle      = errors.New("title must be 1-200 characters")
	ErrInvalidRent       = errors.New("rent must be positive")
	ErrInvalidCity       = errors.New("city is required")
	ErrInvalidRentRange  = errors.New("min rent must not exceed max rent")
	ErrInvalidGenderPref = errors.New("gender preference must be Male, Female or Any")
)

const (
	DefaultRoomType   = "1BHK"
	GenderPrefAny     = "Any"
	maxTitleLength    = 200
	maxCityLength     = 100
	maxRoomTypeLength = 50
)

// RedactedPlaceholder replaces hidden fields for callers without a live grant.
const RedactedPlaceholder = "Hidden - payment required"

var genderPrefs = map[string]struct{}{
	"Male":        {},
	"Female":      {},
	GenderPrefAny: {},
}
