package discovery

import (
	"time"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/enums"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/model"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/rules"
)

// bucketsFor assigns the non-exclusive discovery categories. NEW,
// TODAY, NEAR and MINE can all co-occur; MORE is the catch-all for
// candidates that landed in no named bucket. Day boundaries are UTC.
func bucketsFor(candidate model.Candidate, distanceKM *float64, now time.Time, cfg Config) []enums.CategoryBucket {
	buckets := make([]enums.CategoryBucket, 0, 3)

	created := candidate.Profile.CreatedAt
	if rules.WithinWindow(created, now, cfg.NewProfileWindow) && !candidate.Interaction.Viewed {
		buckets = append(buckets, enums.CategoryNew)
	}
	if !created.IsZero() && rules.SameUTCDay(created, now) {
		buckets = append(buckets, enums.CategoryToday)
	}
	if candidate.Interaction.Matched {
		buckets = append(buckets, enums.CategoryMine)
	}
	if distanceKM != nil && *distanceKM <= cfg.NearRadiusKM {
		buckets = append(buckets, enums.CategoryNear)
	}
	if len(buckets) == 0 {
		buckets = append(buckets, enums.CategoryMore)
	}

	return buckets
}

func hasBucket(buckets []enums.CategoryBucket, target enums.CategoryBucket) bool {
	for _, bucket := range buckets {
		if bucket == target {
			return true
		}
	}
	return false
}
