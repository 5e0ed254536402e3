package discovery

import (
	"testing"
	"time"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/model"
)

var filterNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func poolCandidate(id int64, mutate func(*model.Candidate)) model.Candidate {
	candidate := model.Candidate{
		Profile: model.Profile{
			UserID:    id,
			Gender:    "female",
			Birthdate: time.Date(1998, 2, 1, 0, 0, 0, 0, time.UTC),
			HeightCM:  162,
			Religion:  "hindu",
			City:      "Mumbai",
			State:     "Maharashtra",
			Country:   "India",
			Verified:  true,
			CreatedAt: filterNow.Add(-30 * 24 * time.Hour),
			Photos:    []model.Photo{{Slot: 1, Key: "p1"}},
		},
	}
	if mutate != nil {
		mutate(&candidate)
	}
	return candidate
}

func TestApplyFiltersExcludesSelfFirst(t *testing.T) {
	requester := model.Profile{UserID: 10}
	pool := []model.Candidate{poolCandidate(10, nil), poolCandidate(20, nil)}

	kept, skipped := applyFilters(pool, requester, model.Preference{}, Criteria{}, filterNow, 5*time.Minute)
	if skipped != 0 {
		t.Fatalf("unexpected skipped count: %d", skipped)
	}
	if len(kept) != 1 || kept[0].Profile.UserID != 20 {
		t.Fatalf("expected self excluded, got %+v", kept)
	}
}

func TestApplyFiltersSkipsMalformedCandidates(t *testing.T) {
	pool := []model.Candidate{
		poolCandidate(0, nil),
		poolCandidate(20, nil),
	}

	kept, skipped := applyFilters(pool, model.Profile{UserID: 10}, model.Preference{}, Criteria{}, filterNow, 5*time.Minute)
	if skipped != 1 {
		t.Fatalf("expected one skipped candidate, got %d", skipped)
	}
	if len(kept) != 1 {
		t.Fatalf("expected malformed candidate dropped, got %d kept", len(kept))
	}
}

func TestApplyFiltersExcludesBlockedPairs(t *testing.T) {
	pool := []model.Candidate{
		poolCandidate(20, func(c *model.Candidate) { c.Interaction.Blocked = true }),
		poolCandidate(21, nil),
	}

	kept, _ := applyFilters(pool, model.Profile{UserID: 10}, model.Preference{}, Criteria{}, filterNow, 5*time.Minute)
	if len(kept) != 1 || kept[0].Profile.UserID != 21 {
		t.Fatalf("expected blocked candidate excluded, got %+v", kept)
	}
}

func TestApplyFiltersHardAgeRange(t *testing.T) {
	pool := []model.Candidate{
		poolCandidate(20, nil), // age 28
		poolCandidate(21, func(c *model.Candidate) {
			c.Profile.Birthdate = time.Date(1988, 1, 1, 0, 0, 0, 0, time.UTC) // age 38
		}),
		poolCandidate(22, func(c *model.Candidate) {
			c.Profile.Birthdate = time.Time{} // missing birthdate
		}),
	}
	criteria := Criteria{AgeMin: 24, AgeMax: 32}

	kept, _ := applyFilters(pool, model.Profile{UserID: 10}, model.Preference{}, criteria, filterNow, 5*time.Minute)
	if len(kept) != 1 || kept[0].Profile.UserID != 20 {
		t.Fatalf("expected only in-range candidate kept, got %+v", kept)
	}
}

func TestApplyFiltersCriteriaOverridesPreferenceRange(t *testing.T) {
	pref := model.Preference{AgeMin: 20, AgeMax: 25}
	criteria := Criteria{AgeMin: 26, AgeMax: 35}
	pool := []model.Candidate{poolCandidate(20, nil)} // age 28

	kept, _ := applyFilters(pool, model.Profile{UserID: 10}, pref, criteria, filterNow, 5*time.Minute)
	if len(kept) != 1 {
		t.Fatalf("expected criteria override to admit candidate, got %d", len(kept))
	}

	kept, _ = applyFilters(pool, model.Profile{UserID: 10}, pref, Criteria{}, filterNow, 5*time.Minute)
	if len(kept) != 0 {
		t.Fatalf("expected preference range to exclude candidate, got %d", len(kept))
	}
}

func TestApplyFiltersSoftPreferenceLists(t *testing.T) {
	pref := model.Preference{Religions: []string{"jain"}}
	pool := []model.Candidate{
		poolCandidate(20, nil), // hindu
		poolCandidate(21, func(c *model.Candidate) { c.Profile.Religion = "Jain" }),
	}

	kept, _ := applyFilters(pool, model.Profile{UserID: 10}, pref, Criteria{}, filterNow, 5*time.Minute)
	if len(kept) != 1 || kept[0].Profile.UserID != 21 {
		t.Fatalf("expected religion preference applied case-insensitively, got %+v", kept)
	}
}

func TestApplyFiltersExclusionToggles(t *testing.T) {
	pool := []model.Candidate{
		poolCandidate(20, func(c *model.Candidate) { c.Interaction.Liked = true }),
		poolCandidate(21, func(c *model.Candidate) { c.Interaction.Viewed = true }),
		poolCandidate(22, func(c *model.Candidate) { c.Interaction.Matched = true }),
		poolCandidate(23, nil),
	}
	criteria := Criteria{ExcludeLiked: true, ExcludeViewed: true, ExcludeMatched: true}

	kept, _ := applyFilters(pool, model.Profile{UserID: 10}, model.Preference{}, criteria, filterNow, 5*time.Minute)
	if len(kept) != 1 || kept[0].Profile.UserID != 23 {
		t.Fatalf("expected toggled exclusions applied, got %+v", kept)
	}
}

func TestApplyFiltersOnlyToggles(t *testing.T) {
	online := filterNow.Add(-time.Minute)
	stale := filterNow.Add(-time.Hour)
	pool := []model.Candidate{
		poolCandidate(20, func(c *model.Candidate) { c.Profile.Verified = false }),
		poolCandidate(21, func(c *model.Candidate) { c.Profile.Photos = nil }),
		poolCandidate(22, func(c *model.Candidate) { c.Profile.LastActiveAt = &stale }),
		poolCandidate(23, func(c *model.Candidate) { c.Profile.LastActiveAt = &online }),
	}
	criteria := Criteria{OnlyVerified: true, OnlyWithPhotos: true, OnlyOnline: true}

	kept, _ := applyFilters(pool, model.Profile{UserID: 10}, model.Preference{}, criteria, filterNow, 5*time.Minute)
	if len(kept) != 1 || kept[0].Profile.UserID != 23 {
		t.Fatalf("expected only online verified candidate with photos, got %+v", kept)
	}
}

func TestApplyFiltersVerifiedOnlyPreference(t *testing.T) {
	pref := model.Preference{VerifiedOnly: true}
	pool := []model.Candidate{
		poolCandidate(20, func(c *model.Candidate) { c.Profile.Verified = false }),
		poolCandidate(21, nil),
	}

	kept, _ := applyFilters(pool, model.Profile{UserID: 10}, pref, Criteria{}, filterNow, 5*time.Minute)
	if len(kept) != 1 || kept[0].Profile.UserID != 21 {
		t.Fatalf("expected unverified candidate excluded by preference, got %+v", kept)
	}
}

func TestApplyFiltersDeterministicAcrossInputOrder(t *testing.T) {
	forward := []model.Candidate{poolCandidate(20, nil), poolCandidate(21, nil), poolCandidate(22, nil)}
	backward := []model.Candidate{poolCandidate(22, nil), poolCandidate(21, nil), poolCandidate(20, nil)}

	keptForward, _ := applyFilters(forward, model.Profile{UserID: 10}, model.Preference{}, Criteria{}, filterNow, 5*time.Minute)
	keptBackward, _ := applyFilters(backward, model.Profile{UserID: 10}, model.Preference{}, Criteria{}, filterNow, 5*time.Minute)

	if len(keptForward) != len(keptBackward) {
		t.Fatalf("filtered set depends on input order: %d vs %d", len(keptForward), len(keptBackward))
	}

	seen := map[int64]bool{}
	for _, candidate := range keptForward {
		seen[candidate.Profile.UserID] = true
	}
	for _, candidate := range keptBackward {
		if !seen[candidate.Profile.UserID] {
			t.Fatalf("filtered membership depends on input order")
		}
	}
}
