package services

import (
	"sort"

	"neolingo/contexts/curation/neo-service/domain/entities"
)

const (
	// MaxListedNeos caps every term listing.
	MaxListedNeos = 11
	// RejectListThreshold hides an unrated Neo once this many distinct users
	// have rejected it.
	RejectListThreshold = 3
)

// RankTermNeos applies the listing policy for one term.
//
// Neos the caller has already cast a non-zero vote on are excluded. Rated
// mode keeps Neos with at least one vote and no rejections, ordered by mean
// score; unrated mode keeps Neos with no votes and fewer than
// RejectListThreshold rejections, ordered by vote count. Each survivor
// carries the sum of its individual rating values, recomputed from the
// supplied rating rows.
func RankTermNeos(
	neos []entities.Neo,
	ratings []entities.NeoRating,
	callerRatings []entities.RatedNeo,
	wantRated bool,
) []entities.RankedNeo {
	votedByCaller := make(map[string]bool, len(callerRatings))
	for _, rated := range callerRatings {
		if rated.Value != 0 {
			votedByCaller[rated.NeoID] = true
		}
	}

	totals := make(map[string]int, len(neos))
	for _, rating := range ratings {
		totals[rating.NeoID] += rating.Value
	}

	ranked := make([]entities.RankedNeo, 0, len(neos))
	for _, neo := range neos {
		if votedByCaller[neo.NeoID] {
			continue
		}
		if wantRated {
			if neo.RatingCount == 0 || neo.RejectCount != 0 {
				continue
			}
		} else {
			if neo.RatingCount != 0 || neo.RejectCount >= RejectListThreshold {
				continue
			}
		}
		ranked = append(ranked, entities.RankedNeo{
			Neo:       neo,
			VoteTotal: totals[neo.NeoID],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if wantRated {
			if ranked[i].Neo.RatingScore == ranked[j].Neo.RatingScore {
				return ranked[i].Neo.NeoID < ranked[j].Neo.NeoID
			}
			return ranked[i].Neo.RatingScore > ranked[j].Neo.RatingScore
		}
		if ranked[i].Neo.RatingCount == ranked[j].Neo.RatingCount {
			return ranked[i].Neo.NeoID < ranked[j].Neo.NeoID
		}
		return ranked[i].Neo.RatingCount > ranked[j].Neo.RatingCount
	})

	if len(ranked) > MaxListedNeos {
		ranked = ranked[:MaxListedNeos]
	}
	return ranked
}
