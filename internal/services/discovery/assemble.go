package discovery

import (
	"sort"
	"time"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/enums"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/photos"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/scoring"
)

// ActionFlags drive UI gating for one candidate card.
type ActionFlags struct {
	CanLike  bool
	CanChat  bool
	CanBlock bool
}

// PhotoView is one resolved photo. URL is set only for photos the
// policy marked visible and unblurred.
type PhotoView struct {
	Slot        int
	Visible     bool
	Blurred     bool
	Restriction enums.PhotoRestriction
	URL         *string
}

// MatchResult is constructed fresh per request and never persisted.
type MatchResult struct {
	UserID       int64
	DisplayName  string
	Age          int
	City         string
	Score        int
	ScorePercent string
	Breakdown    scoring.Breakdown
	Buckets      []enums.CategoryBucket
	DistanceKM   *float64
	Photos       []PhotoView
	Actions      ActionFlags
	IsBlocked    bool
	CreatedAt    time.Time
	MatchedAt    *time.Time
}

type MatchList struct {
	Category    enums.CategoryBucket
	Title       string
	Matches     []MatchResult
	TotalCount  int
	Page        int
	Size        int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
	Skipped     int
}

// sortResults returns a new ordered view; the input slice is left
// untouched. Ties always break by candidate id ascending so paging is
// reproducible.
func sortResults(results []MatchResult, key enums.SortKey, order enums.SortOrder) []MatchResult {
	if key == "" {
		key = enums.SortByCompatibility
	}
	sorted := append([]MatchResult(nil), results...)

	descending := defaultDescending(key)
	switch order {
	case enums.SortAscending:
		descending = false
	case enums.SortDescending:
		descending = true
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		left, right := sorted[i], sorted[j]
		if key == enums.SortByDistance {
			// Unknown distance sorts last in either direction.
			switch {
			case left.DistanceKM == nil && right.DistanceKM == nil:
				return left.UserID < right.UserID
			case left.DistanceKM == nil:
				return false
			case right.DistanceKM == nil:
				return true
			}
		}
		if cmp := compareByKey(left, right, key); cmp != 0 {
			if descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return left.UserID < right.UserID
	})

	return sorted
}

func defaultDescending(key enums.SortKey) bool {
	switch key {
	case enums.SortByCompatibility, enums.SortByRecent:
		return true
	default:
		return false
	}
}

func compareByKey(left, right MatchResult, key enums.SortKey) int {
	switch key {
	case enums.SortByRecent:
		if left.CreatedAt.Equal(right.CreatedAt) {
			return 0
		}
		if left.CreatedAt.Before(right.CreatedAt) {
			return -1
		}
		return 1
	case enums.SortByDistance:
		return compareDistance(left.DistanceKM, right.DistanceKM)
	case enums.SortByAge:
		return compareInt(left.Age, right.Age)
	default:
		return compareInt(left.Score, right.Score)
	}
}

// Candidates without a resolvable distance sort last in either
// direction; they are never excluded.
func compareDistance(left, right *float64) int {
	switch {
	case left == nil && right == nil:
		return 0
	case left == nil:
		return 1
	case right == nil:
		return -1
	case *left < *right:
		return -1
	case *left > *right:
		return 1
	default:
		return 0
	}
}

func compareInt(left, right int) int {
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

func paginate(sorted []MatchResult, category enums.CategoryBucket, page, size, skipped int) MatchList {
	total := len(sorted)
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	// Pages at or past the end are empty without ever computing an
	// offset, so arbitrarily large page numbers cannot overflow.
	start := total
	if page < totalPages {
		start = page * size
	}
	end := start + size
	if end > total {
		end = total
	}

	pageItems := append([]MatchResult(nil), sorted[start:end]...)

	return MatchList{
		Category:    category,
		Title:       category.Title(),
		Matches:     pageItems,
		TotalCount:  total,
		Page:        page,
		Size:        size,
		TotalPages:  totalPages,
		HasNext:     page < totalPages-1,
		HasPrevious: page > 0,
		Skipped:     skipped,
	}
}

func toPhotoViews(decisions []photos.Decision, urls map[int]*string) []PhotoView {
	views := make([]PhotoView, 0, len(decisions))
	for _, decision := range decisions {
		view := PhotoView{
			Slot:        decision.Slot,
			Visible:     decision.Visible,
			Blurred:     decision.Blurred,
			Restriction: decision.Restriction,
		}
		if decision.Visible && !decision.Blurred {
			view.URL = urls[decision.Slot]
		}
		views = append(views, view)
	}
	return views
}
