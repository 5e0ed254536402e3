package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/model"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/rules"
)

type Criterion string

const (
	CriterionAgeFit    Criterion = "age_fit"
	CriterionHeightFit Criterion = "height_fit"
	CriterionReligion  Criterion = "religion"
	CriterionLocation  Criterion = "location"
	CriterionEducation Criterion = "education"
	CriterionLifestyle Criterion = "lifestyle"
)

// Breakdown is the per-criterion pass/fail view returned alongside the
// aggregate score.
type Breakdown map[Criterion]bool

// Weights is the externalized criterion weight table. Values are fixed
// configuration, tuned without touching the algorithm.
type Weights struct {
	AgeFit    int
	HeightFit int
	Religion  int
	Location  int
	Education int
	Lifestyle int
}

func DefaultWeights() Weights {
	return Weights{
		AgeFit:    20,
		HeightFit: 10,
		Religion:  20,
		Location:  20,
		Education: 15,
		Lifestyle: 15,
	}
}

func (w Weights) Total() int {
	return w.AgeFit + w.HeightFit + w.Religion + w.Location + w.Education + w.Lifestyle
}

type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) *Scorer {
	if weights.Total() <= 0 {
		weights = DefaultWeights()
	}
	return &Scorer{weights: weights}
}

// Score is a pure function of the two profile snapshots: the same
// inputs always produce the same 0..100 score. Missing data on either
// side fails the criterion; it never inflates the score and never
// shrinks the denominator.
func (s *Scorer) Score(requester model.Profile, pref model.Preference, candidate model.Profile, now time.Time) (int, Breakdown) {
	breakdown := Breakdown{
		CriterionAgeFit:    ageFit(pref, candidate, now),
		CriterionHeightFit: heightFit(pref, candidate),
		CriterionReligion:  religionMatch(requester, pref, candidate),
		CriterionLocation:  locationMatch(requester, candidate),
		CriterionEducation: educationCompatible(requester, candidate),
		CriterionLifestyle: lifestyleConcordant(requester, candidate),
	}

	earned := 0
	if breakdown[CriterionAgeFit] {
		earned += s.weights.AgeFit
	}
	if breakdown[CriterionHeightFit] {
		earned += s.weights.HeightFit
	}
	if breakdown[CriterionReligion] {
		earned += s.weights.Religion
	}
	if breakdown[CriterionLocation] {
		earned += s.weights.Location
	}
	if breakdown[CriterionEducation] {
		earned += s.weights.Education
	}
	if breakdown[CriterionLifestyle] {
		earned += s.weights.Lifestyle
	}

	score := int(math.Round(100 * float64(earned) / float64(s.weights.Total())))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, breakdown
}

// Percent renders the human-readable percentage for a score. It carries
// no side information so it is always reproducible from the score.
func Percent(score int) string {
	return fmt.Sprintf("%d%%", score)
}

func ageFit(pref model.Preference, candidate model.Profile, now time.Time) bool {
	if pref.AgeMin <= 0 || pref.AgeMax <= 0 {
		return false
	}
	age := rules.AgeAt(candidate.Birthdate, now)
	if age < 0 {
		return false
	}
	return age >= pref.AgeMin && age <= pref.AgeMax
}

func heightFit(pref model.Preference, candidate model.Profile) bool {
	if pref.HeightMinCM <= 0 || pref.HeightMaxCM <= 0 || candidate.HeightCM <= 0 {
		return false
	}
	return candidate.HeightCM >= pref.HeightMinCM && candidate.HeightCM <= pref.HeightMaxCM
}

func religionMatch(requester model.Profile, pref model.Preference, candidate model.Profile) bool {
	if strings.TrimSpace(candidate.Religion) == "" {
		return false
	}
	if len(pref.Religions) > 0 {
		return containsFold(pref.Religions, candidate.Religion)
	}
	if strings.TrimSpace(requester.Religion) == "" {
		return false
	}
	return strings.EqualFold(requester.Religion, candidate.Religion)
}

// locationMatch passes on the widest matching tier: same city, same
// state, or same country.
func locationMatch(requester, candidate model.Profile) bool {
	if equalFoldNonEmpty(requester.City, candidate.City) {
		return true
	}
	if equalFoldNonEmpty(requester.State, candidate.State) {
		return true
	}
	return equalFoldNonEmpty(requester.Country, candidate.Country)
}

var educationRank = map[string]int{
	"high_school": 1,
	"diploma":     2,
	"bachelors":   3,
	"masters":     4,
	"doctorate":   5,
}

// educationCompatible treats adjacent education levels as compatible.
func educationCompatible(requester, candidate model.Profile) bool {
	left, ok := educationRank[normalize(requester.Education)]
	if !ok {
		return false
	}
	right, ok := educationRank[normalize(candidate.Education)]
	if !ok {
		return false
	}
	diff := left - right
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

func lifestyleConcordant(requester, candidate model.Profile) bool {
	return equalFoldNonEmpty(requester.Diet, candidate.Diet) &&
		equalFoldNonEmpty(requester.Drinking, candidate.Drinking) &&
		equalFoldNonEmpty(requester.Smoking, candidate.Smoking)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func equalFoldNonEmpty(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	if target == "" {
		return false
	}
	for _, value := range values {
		if strings.EqualFold(strings.TrimSpace(value), target) {
			return true
		}
	}
	return false
}
