package grant

import (
	"roomfinder/internal/domain/geo"
	"roomfinder/internal/domain/listing"
)

// SelectNearest ranks the pool by distance from origin and keeps the first n.
// Listings without coordinates rank after every located listing.
func SelectNearest(origin geo.Point, pool []listing.Candidate, n int) []geo.Ranked[listing.Candidate] {
	ranked := geo.Rank(origin, pool, listing.CandidatePosition)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func PinnedFromRanked(ranked []geo.Ranked[listing.Candidate]) []PinnedListing {
	pinned := make([]PinnedListing, len(ranked))
	for i, r := range ranked {
		pinned[i] = PinnedListing{
			ListingID: r.Item.ID,
			Rank:      r.Rank,
			Distance:  r.Distance,
		}
	}
	return pinned
}
