package discovery

import (
	"strings"
	"time"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/model"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/rules"
)

// applyFilters narrows the candidate pool. Self-matches go first,
// before any other predicate. Candidates with no usable id are skipped
// and tallied, never fatal. The result preserves pool order; ordering
// is re-established deterministically by the assembler.
func applyFilters(pool []model.Candidate, requester model.Profile, pref model.Preference, criteria Criteria, now time.Time, onlineWindow time.Duration) ([]model.Candidate, int) {
	kept := make([]model.Candidate, 0, len(pool))
	skipped := 0

	for _, candidate := range pool {
		if candidate.Profile.UserID <= 0 {
			skipped++
			continue
		}
		if candidate.Profile.UserID == requester.UserID {
			continue
		}
		if candidate.Interaction.Blocked {
			continue
		}
		if !passesHardFilters(candidate.Profile, pref, criteria, now) {
			continue
		}
		if !passesSoftPreferences(candidate.Profile, pref, criteria) {
			continue
		}
		if !passesToggles(candidate, pref, criteria, now, onlineWindow) {
			continue
		}
		kept = append(kept, candidate)
	}

	return kept, skipped
}

func passesHardFilters(p model.Profile, pref model.Preference, criteria Criteria, now time.Time) bool {
	ageMin, ageMax := rangeOverride(criteria.AgeMin, criteria.AgeMax, pref.AgeMin, pref.AgeMax)
	if ageMin > 0 || ageMax > 0 {
		age := rules.AgeAt(p.Birthdate, now)
		if age < 0 {
			return false
		}
		if ageMin > 0 && age < ageMin {
			return false
		}
		if ageMax > 0 && age > ageMax {
			return false
		}
	}

	heightMin, heightMax := rangeOverride(criteria.HeightMinCM, criteria.HeightMaxCM, pref.HeightMinCM, pref.HeightMaxCM)
	if heightMin > 0 || heightMax > 0 {
		if p.HeightCM <= 0 {
			return false
		}
		if heightMin > 0 && p.HeightCM < heightMin {
			return false
		}
		if heightMax > 0 && p.HeightCM > heightMax {
			return false
		}
	}

	incomeMin, incomeMax := rangeOverride(criteria.IncomeMin, criteria.IncomeMax, pref.IncomeMin, pref.IncomeMax)
	if incomeMin > 0 && p.AnnualIncome < incomeMin {
		return false
	}
	if incomeMax > 0 && p.AnnualIncome > incomeMax {
		return false
	}

	if criteria.City != "" && !strings.EqualFold(strings.TrimSpace(criteria.City), strings.TrimSpace(p.City)) {
		return false
	}
	if criteria.Education != "" && !strings.EqualFold(criteria.Education, p.Education) {
		return false
	}
	if criteria.Occupation != "" && !strings.EqualFold(criteria.Occupation, p.Occupation) {
		return false
	}
	if criteria.MaritalStatus != "" && !strings.EqualFold(criteria.MaritalStatus, p.MaritalStatus) {
		return false
	}

	return true
}

// Soft preference filters apply only where the request did not override
// the corresponding field.
func passesSoftPreferences(p model.Profile, pref model.Preference, criteria Criteria) bool {
	if !valueAllowed(pref.Religions, p.Religion) {
		return false
	}
	if !valueAllowed(pref.Castes, p.Caste) {
		return false
	}
	if !valueAllowed(pref.MotherTongues, p.MotherTongue) {
		return false
	}
	if criteria.MaritalStatus == "" && !valueAllowed(pref.MaritalStatuses, p.MaritalStatus) {
		return false
	}
	if !valueAllowed(pref.Diets, p.Diet) {
		return false
	}
	return true
}

func passesToggles(candidate model.Candidate, pref model.Preference, criteria Criteria, now time.Time, onlineWindow time.Duration) bool {
	if criteria.ExcludeLiked && candidate.Interaction.Liked {
		return false
	}
	if criteria.ExcludeViewed && candidate.Interaction.Viewed {
		return false
	}
	if criteria.ExcludeMatched && candidate.Interaction.Matched {
		return false
	}
	if (criteria.OnlyVerified || pref.VerifiedOnly) && !candidate.Profile.Verified {
		return false
	}
	if criteria.OnlyWithPhotos && len(candidate.Profile.Photos) == 0 {
		return false
	}
	if criteria.OnlyOnline {
		last := candidate.Profile.LastActiveAt
		if last == nil || !rules.WithinWindow(*last, now, onlineWindow) {
			return false
		}
	}
	return true
}

func rangeOverride(criteriaMin, criteriaMax, prefMin, prefMax int) (int, int) {
	if criteriaMin > 0 || criteriaMax > 0 {
		return criteriaMin, criteriaMax
	}
	return prefMin, prefMax
}

func valueAllowed(allowed []string, value string) bool {
	if len(allowed) == 0 {
		return true
	}
	value = strings.TrimSpace(value)
	for _, entry := range allowed {
		if strings.EqualFold(strings.TrimSpace(entry), value) {
			return true
		}
	}
	return false
}
