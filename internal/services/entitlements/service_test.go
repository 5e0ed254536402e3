package entitlements

import (
	"context"
	"errors"
	"testing"
	"time"

	pgrepo "github.com/Sagar2372004/punarmilan-backend-sub001/internal/repo/postgres"
)

type entStoreStub struct {
	record pgrepo.EntitlementSnapshotRecord
	err    error
}

func (s *entStoreStub) GetSnapshot(_ context.Context, _ int64) (pgrepo.EntitlementSnapshotRecord, error) {
	return s.record, s.err
}

func TestIsPremiumActiveRespectsExpiry(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	service := NewService(&entStoreStub{record: pgrepo.EntitlementSnapshotRecord{PremiumExpiresAt: &future}}, Config{})
	active, err := service.IsPremiumActive(context.Background(), 10, now)
	if err != nil {
		t.Fatalf("is premium: %v", err)
	}
	if !active {
		t.Fatalf("expected active premium before expiry")
	}

	service = NewService(&entStoreStub{record: pgrepo.EntitlementSnapshotRecord{PremiumExpiresAt: &past}}, Config{})
	active, err = service.IsPremiumActive(context.Background(), 10, now)
	if err != nil {
		t.Fatalf("is premium: %v", err)
	}
	if active {
		t.Fatalf("expected expired premium to be inactive")
	}
}

func TestIsPremiumActiveFallsBackToDefault(t *testing.T) {
	service := NewService(&entStoreStub{}, Config{DefaultIsPremium: true})
	active, err := service.IsPremiumActive(context.Background(), 10, time.Time{})
	if err != nil {
		t.Fatalf("is premium: %v", err)
	}
	if !active {
		t.Fatalf("expected default premium when no record expiry")
	}
}

func TestIsPremiumActiveValidatesUser(t *testing.T) {
	service := NewService(&entStoreStub{}, Config{})
	if _, err := service.IsPremiumActive(context.Background(), 0, time.Time{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	service := NewService(&entStoreStub{record: pgrepo.EntitlementSnapshotRecord{
		PremiumExpiresAt:   &future,
		ContactViewCredits: 5,
		InterestCredits:    3,
	}}, Config{})
	service.now = func() time.Time { return now }

	snapshot, err := service.Get(context.Background(), 10)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !snapshot.IsPremium || snapshot.ContactViewCredits != 5 || snapshot.InterestCredits != 3 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}
