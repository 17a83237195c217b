package services

import "neolingo/contexts/curation/neo-service/domain/entities"

// RatingAggregate is the derived summary persisted on a Neo row.
type RatingAggregate struct {
	RatingCount int
	RatingScore float64
	RejectCount int
}

// AggregateRatings derives the stored aggregate from a full scan of the
// Neo's rating rows. Both storage adapters run this inside the rating
// transaction so the persisted fields can never drift from the raw rows.
// Zero-valued ratings count toward RatingCount and the score denominator.
func AggregateRatings(ratings []entities.NeoRating) RatingAggregate {
	aggregate := RatingAggregate{RatingCount: len(ratings)}
	if len(ratings) == 0 {
		return aggregate
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating.Value
		if rating.IsReject() {
			aggregate.RejectCount++
		}
	}
	aggregate.RatingScore = float64(sum) / float64(len(ratings))
	return aggregate
}
