package events

import (
	"context"
	"sync"
	"testing"
	"time"

	pgrepo "github.com/Sagar2372004/punarmilan-backend-sub001/internal/repo/postgres"
)

type storeStub struct {
	mu      sync.Mutex
	userIDs []int64
	records []pgrepo.EventWriteRecord
}

func (s *storeStub) InsertBatch(_ context.Context, userID *int64, events []pgrepo.EventWriteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if userID != nil {
		s.userIDs = append(s.userIDs, *userID)
	}
	s.records = append(s.records, events...)
	return nil
}

func (s *storeStub) snapshot() ([]int64, []pgrepo.EventWriteRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.userIDs...), append([]pgrepo.EventWriteRecord(nil), s.records...)
}

func TestDispatcherPersistsEmittedSignals(t *testing.T) {
	store := &storeStub{}
	dispatcher := NewDispatcher(store, Config{}, nil)
	dispatcher.Start(context.Background())

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	dispatcher.EmitMutualMatch(10, 20, at)
	dispatcher.EmitMutualMatch(10, 21, at)
	dispatcher.Close()

	userIDs, records := store.snapshot()
	if len(records) != 2 {
		t.Fatalf("expected two persisted events, got %d", len(records))
	}
	for _, record := range records {
		if record.Name != EventMutualMatchFormed {
			t.Fatalf("unexpected event name: %s", record.Name)
		}
		if !record.OccurredAt.Equal(at) {
			t.Fatalf("unexpected occurred at: %v", record.OccurredAt)
		}
		if record.Props["event_id"] == "" {
			t.Fatalf("expected event id in props")
		}
	}
	for _, id := range userIDs {
		if id != 10 {
			t.Fatalf("expected requester id 10, got %d", id)
		}
	}
}

func TestDispatcherEmitDoesNotBlockWhenFull(t *testing.T) {
	dispatcher := NewDispatcher(&storeStub{}, Config{BufferSize: 1}, nil)
	// Worker intentionally not started: the buffer stays full.

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	done := make(chan struct{})
	go func() {
		defer close(done)
		dispatcher.EmitMutualMatch(10, 20, at)
		dispatcher.EmitMutualMatch(10, 21, at)
		dispatcher.EmitMutualMatch(10, 22, at)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("emit blocked on a full buffer")
	}

	if dispatcher.Dropped() != 2 {
		t.Fatalf("expected two dropped signals, got %d", dispatcher.Dropped())
	}
}

func TestDispatcherIgnoresInvalidIDs(t *testing.T) {
	store := &storeStub{}
	dispatcher := NewDispatcher(store, Config{}, nil)
	dispatcher.Start(context.Background())

	dispatcher.EmitMutualMatch(0, 20, time.Time{})
	dispatcher.EmitMutualMatch(10, -1, time.Time{})
	dispatcher.Close()

	_, records := store.snapshot()
	if len(records) != 0 {
		t.Fatalf("expected no events for invalid ids, got %d", len(records))
	}
}
