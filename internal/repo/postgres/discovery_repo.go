package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/model"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/discovery"
)

const defaultCandidateLimit = 500

// DiscoveryRepo loads the requester context and the raw candidate pool.
// All matching logic lives in the discovery service; this repo only
// materializes profiles, preferences and pairwise interaction state.
type DiscoveryRepo struct {
	pool *pgxpool.Pool
}

func NewDiscoveryRepo(pool *pgxpool.Pool) *DiscoveryRepo {
	return &DiscoveryRepo{pool: pool}
}

func (r *DiscoveryRepo) GetRequester(ctx context.Context, userID int64) (model.Profile, model.Preference, error) {
	if userID <= 0 {
		return model.Profile{}, model.Preference{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return model.Profile{}, model.Preference{}, discovery.ErrRequesterNotFound
	}

	var (
		profile model.Profile
		pref    model.Preference
	)
	err := r.pool.QueryRow(ctx, `
SELECT
	p.user_id,
	COALESCE(p.display_name, ''),
	COALESCE(p.gender, ''),
	COALESCE(p.birthdate, 'epoch'::timestamptz),
	COALESCE(p.height_cm, 0),
	COALESCE(p.religion, ''),
	COALESCE(p.caste, ''),
	COALESCE(p.mother_tongue, ''),
	COALESCE(p.marital_status, ''),
	COALESCE(p.diet, ''),
	COALESCE(p.drinking, ''),
	COALESCE(p.smoking, ''),
	COALESCE(p.education, ''),
	COALESCE(p.occupation, ''),
	COALESCE(p.annual_income, 0),
	COALESCE(p.country, ''),
	COALESCE(p.state, ''),
	COALESCE(p.city, ''),
	p.lat,
	p.lon,
	p.verified,
	p.last_active_at,
	p.created_at,
	COALESCE(pr.age_min, 0),
	COALESCE(pr.age_max, 0),
	COALESCE(pr.height_min_cm, 0),
	COALESCE(pr.height_max_cm, 0),
	COALESCE(pr.income_min, 0),
	COALESCE(pr.income_max, 0),
	COALESCE(pr.religions, '{}'::text[]),
	COALESCE(pr.castes, '{}'::text[]),
	COALESCE(pr.mother_tongues, '{}'::text[]),
	COALESCE(pr.marital_statuses, '{}'::text[]),
	COALESCE(pr.diets, '{}'::text[]),
	COALESCE(pr.verified_only, FALSE),
	COALESCE(pr.auto_match, FALSE),
	COALESCE(pr.min_match_score, 0)
FROM profiles p
LEFT JOIN preferences pr ON pr.user_id = p.user_id
WHERE p.user_id = $1
LIMIT 1
`, userID).Scan(
		&profile.UserID,
		&profile.DisplayName,
		&profile.Gender,
		&profile.Birthdate,
		&profile.HeightCM,
		&profile.Religion,
		&profile.Caste,
		&profile.MotherTongue,
		&profile.MaritalStatus,
		&profile.Diet,
		&profile.Drinking,
		&profile.Smoking,
		&profile.Education,
		&profile.Occupation,
		&profile.AnnualIncome,
		&profile.Country,
		&profile.State,
		&profile.City,
		&profile.Lat,
		&profile.Lon,
		&profile.Verified,
		&profile.LastActiveAt,
		&profile.CreatedAt,
		&pref.AgeMin,
		&pref.AgeMax,
		&pref.HeightMinCM,
		&pref.HeightMaxCM,
		&pref.IncomeMin,
		&pref.IncomeMax,
		&pref.Religions,
		&pref.Castes,
		&pref.MotherTongues,
		&pref.MaritalStatuses,
		&pref.Diets,
		&pref.VerifiedOnly,
		&pref.AutoMatch,
		&pref.MinMatchScore,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.Preference{}, discovery.ErrRequesterNotFound
		}
		return model.Profile{}, model.Preference{}, fmt.Errorf("get requester context: %w", err)
	}

	pref.UserID = profile.UserID
	return profile, pref, nil
}

func (r *DiscoveryRepo) ListCandidates(ctx context.Context, requesterID int64, limit int) ([]model.Candidate, error) {
	if requesterID <= 0 {
		return nil, fmt.Errorf("invalid requester id")
	}
	if limit <= 0 {
		limit = defaultCandidateLimit
	}
	if r.pool == nil {
		return []model.Candidate{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT
	p.user_id,
	COALESCE(p.display_name, ''),
	COALESCE(p.gender, ''),
	COALESCE(p.birthdate, 'epoch'::timestamptz),
	COALESCE(p.height_cm, 0),
	COALESCE(p.religion, ''),
	COALESCE(p.caste, ''),
	COALESCE(p.mother_tongue, ''),
	COALESCE(p.marital_status, ''),
	COALESCE(p.diet, ''),
	COALESCE(p.drinking, ''),
	COALESCE(p.smoking, ''),
	COALESCE(p.education, ''),
	COALESCE(p.occupation, ''),
	COALESCE(p.annual_income, 0),
	COALESCE(p.country, ''),
	COALESCE(p.state, ''),
	COALESCE(p.city, ''),
	p.lat,
	p.lon,
	p.verified,
	p.last_active_at,
	p.created_at,
	EXISTS (
		SELECT 1 FROM likes l
		WHERE l.actor_user_id = $1 AND l.target_user_id = p.user_id
	) AS liked,
	EXISTS (
		SELECT 1 FROM likes l
		WHERE l.actor_user_id = p.user_id AND l.target_user_id = $1
	) AS liked_by,
	EXISTS (
		SELECT 1 FROM profile_views v
		WHERE v.viewer_user_id = $1 AND v.target_user_id = p.user_id
	) AS viewed,
	EXISTS (
		SELECT 1 FROM blocks b
		WHERE (b.actor_user_id = $1 AND b.target_user_id = p.user_id)
			OR (b.actor_user_id = p.user_id AND b.target_user_id = $1)
	) AS blocked,
	EXISTS (
		SELECT 1 FROM message_threads t
		WHERE (t.user_a_id = $1 AND t.user_b_id = p.user_id)
			OR (t.user_a_id = p.user_id AND t.user_b_id = $1)
	) AS has_thread,
	(
		SELECT m.matched_at FROM matches m
		WHERE (m.user_a_id = $1 AND m.user_b_id = p.user_id)
			OR (m.user_a_id = p.user_id AND m.user_b_id = $1)
		LIMIT 1
	) AS matched_at
FROM profiles p
WHERE
	p.approved = TRUE
	AND p.user_id <> $1
ORDER BY p.created_at DESC, p.user_id DESC
LIMIT $2
`, requesterID, limit)
	if err != nil {
		return nil, fmt.Errorf("list discovery candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]model.Candidate, 0, limit)
	ids := make([]int64, 0, limit)
	for rows.Next() {
		var candidate model.Candidate
		if err := rows.Scan(
			&candidate.Profile.UserID,
			&candidate.Profile.DisplayName,
			&candidate.Profile.Gender,
			&candidate.Profile.Birthdate,
			&candidate.Profile.HeightCM,
			&candidate.Profile.Religion,
			&candidate.Profile.Caste,
			&candidate.Profile.MotherTongue,
			&candidate.Profile.MaritalStatus,
			&candidate.Profile.Diet,
			&candidate.Profile.Drinking,
			&candidate.Profile.Smoking,
			&candidate.Profile.Education,
			&candidate.Profile.Occupation,
			&candidate.Profile.AnnualIncome,
			&candidate.Profile.Country,
			&candidate.Profile.State,
			&candidate.Profile.City,
			&candidate.Profile.Lat,
			&candidate.Profile.Lon,
			&candidate.Profile.Verified,
			&candidate.Profile.LastActiveAt,
			&candidate.Profile.CreatedAt,
			&candidate.Interaction.Liked,
			&candidate.Interaction.LikedBy,
			&candidate.Interaction.Viewed,
			&candidate.Interaction.Blocked,
			&candidate.Interaction.HasMessageThread,
			&candidate.Interaction.MatchedAt,
		); err != nil {
			return nil, fmt.Errorf("scan discovery candidate: %w", err)
		}
		candidate.Interaction.Matched = candidate.Interaction.MatchedAt != nil
		candidates = append(candidates, candidate)
		ids = append(ids, candidate.Profile.UserID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate discovery candidates: %w", rows.Err())
	}

	if err := r.attachPhotos(ctx, candidates, ids); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (r *DiscoveryRepo) attachPhotos(ctx context.Context, candidates []model.Candidate, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT user_id, slot, object_key
FROM photos
WHERE user_id = ANY($1::bigint[]) AND approved = TRUE
ORDER BY user_id, slot
`, ids)
	if err != nil {
		return fmt.Errorf("list candidate photos: %w", err)
	}
	defer rows.Close()

	byUser := make(map[int64][]model.Photo, len(ids))
	for rows.Next() {
		var (
			userID int64
			photo  model.Photo
		)
		if err := rows.Scan(&userID, &photo.Slot, &photo.Key); err != nil {
			return fmt.Errorf("scan candidate photo: %w", err)
		}
		byUser[userID] = append(byUser[userID], photo)
	}
	if rows.Err() != nil {
		return fmt.Errorf("iterate candidate photos: %w", rows.Err())
	}

	for i := range candidates {
		candidates[i].Profile.Photos = byUser[candidates[i].Profile.UserID]
	}
	return nil
}
