package discovery

import (
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/enums"
)

// Criteria is the request-scoped filter set. Zero values fall back to
// the requester's saved preference; explicit values override it.
type Criteria struct {
	AgeMin        int
	AgeMax        int
	HeightMinCM   int
	HeightMaxCM   int
	City          string
	Education     string
	Occupation    string
	MaritalStatus string
	IncomeMin     int
	IncomeMax     int

	Category  enums.CategoryBucket
	SortBy    enums.SortKey
	SortOrder enums.SortOrder
	Page      int
	Size      int

	ExcludeLiked   bool
	ExcludeViewed  bool
	ExcludeMatched bool
	OnlyVerified   bool
	OnlyWithPhotos bool
	OnlyOnline     bool
}

// Validate fails fast on semantically contradictory values. Pagination
// size clamping is a documented normalization and happens later, not
// here.
func (c Criteria) Validate() error {
	if c.AgeMin < 0 {
		return FieldError{Field: "age_min", Reason: "must not be negative"}
	}
	if c.AgeMax < 0 {
		return FieldError{Field: "age_max", Reason: "must not be negative"}
	}
	if c.AgeMin > 0 && c.AgeMax > 0 && c.AgeMin > c.AgeMax {
		return FieldError{Field: "age_min", Reason: "exceeds age_max"}
	}
	if c.HeightMinCM < 0 {
		return FieldError{Field: "height_min_cm", Reason: "must not be negative"}
	}
	if c.HeightMaxCM < 0 {
		return FieldError{Field: "height_max_cm", Reason: "must not be negative"}
	}
	if c.HeightMinCM > 0 && c.HeightMaxCM > 0 && c.HeightMinCM > c.HeightMaxCM {
		return FieldError{Field: "height_min_cm", Reason: "exceeds height_max_cm"}
	}
	if c.IncomeMin < 0 {
		return FieldError{Field: "income_min", Reason: "must not be negative"}
	}
	if c.IncomeMax < 0 {
		return FieldError{Field: "income_max", Reason: "must not be negative"}
	}
	if c.IncomeMin > 0 && c.IncomeMax > 0 && c.IncomeMin > c.IncomeMax {
		return FieldError{Field: "income_min", Reason: "exceeds income_max"}
	}
	if c.Page < 0 {
		return FieldError{Field: "page", Reason: "must not be negative"}
	}
	if c.Size < 0 {
		return FieldError{Field: "size", Reason: "must not be negative"}
	}
	return nil
}
