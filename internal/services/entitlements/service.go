package entitlements

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgrepo "github.com/Sagar2372004/punarmilan-backend-sub001/internal/repo/postgres"
)

var ErrValidation = errors.New("validation error")

type Store interface {
	GetSnapshot(ctx context.Context, userID int64) (pgrepo.EntitlementSnapshotRecord, error)
}

type Config struct {
	DefaultIsPremium bool
}

type Service struct {
	store Store
	cfg   Config
	now   func() time.Time
}

// Snapshot is the member's paid entitlement state at a point in time.
type Snapshot struct {
	UserID             int64
	IsPremium          bool
	PremiumUntil       *time.Time
	ContactViewCredits int
	InterestCredits    int
	HighlightedUntil   *time.Time
}

func NewService(store Store, cfg Config) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

func (s *Service) Get(ctx context.Context, userID int64) (Snapshot, error) {
	if userID <= 0 {
		return Snapshot{}, ErrValidation
	}
	if s.store == nil {
		return Snapshot{}, fmt.Errorf("entitlement store is nil")
	}

	rec, err := s.store.GetSnapshot(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	now := s.now().UTC()
	isPremium := s.cfg.DefaultIsPremium
	if rec.PremiumExpiresAt != nil {
		isPremium = rec.PremiumExpiresAt.After(now)
	}

	return Snapshot{
		UserID:             userID,
		IsPremium:          isPremium,
		PremiumUntil:       rec.PremiumExpiresAt,
		ContactViewCredits: rec.ContactViewCredits,
		InterestCredits:    rec.InterestCredits,
		HighlightedUntil:   rec.HighlightedUntil,
	}, nil
}

// IsPremiumActive reports whether the member holds an unexpired premium
// plan at the given instant.
func (s *Service) IsPremiumActive(ctx context.Context, userID int64, at time.Time) (bool, error) {
	if userID <= 0 {
		return false, ErrValidation
	}
	if s.store == nil {
		return s.cfg.DefaultIsPremium, nil
	}

	rec, err := s.store.GetSnapshot(ctx, userID)
	if err != nil {
		return false, err
	}

	if at.IsZero() {
		at = s.now().UTC()
	}
	if rec.PremiumExpiresAt == nil {
		return s.cfg.DefaultIsPremium, nil
	}
	return rec.PremiumExpiresAt.After(at), nil
}
