package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EntitlementRepo struct {
	pool *pgxpool.Pool
}

type EntitlementSnapshotRecord struct {
	UserID             int64
	PremiumExpiresAt   *time.Time
	ContactViewCredits int
	InterestCredits    int
	HighlightedUntil   *time.Time
}

func NewEntitlementRepo(pool *pgxpool.Pool) *EntitlementRepo {
	return &EntitlementRepo{pool: pool}
}

func (r *EntitlementRepo) GetSnapshot(ctx context.Context, userID int64) (EntitlementSnapshotRecord, error) {
	if userID <= 0 {
		return EntitlementSnapshotRecord{}, fmt.Errorf("invalid user id")
	}
	if r.pool == nil {
		return EntitlementSnapshotRecord{UserID: userID}, nil
	}

	var snapshot EntitlementSnapshotRecord
	err := r.pool.QueryRow(ctx, `
SELECT
	user_id,
	premium_expires_at,
	contact_view_credits,
	interest_credits,
	highlighted_until
FROM entitlements
WHERE user_id = $1
LIMIT 1
`, userID).Scan(
		&snapshot.UserID,
		&snapshot.PremiumExpiresAt,
		&snapshot.ContactViewCredits,
		&snapshot.InterestCredits,
		&snapshot.HighlightedUntil,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return EntitlementSnapshotRecord{UserID: userID}, nil
		}
		return EntitlementSnapshotRecord{}, fmt.Errorf("get entitlement snapshot: %w", err)
	}

	return snapshot, nil
}
