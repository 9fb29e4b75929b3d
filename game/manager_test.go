package game

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	id, g := m.Create(TimeControl{Base: time.Minute})
	if g == nil {
		t.Fatalf("Create returned nil game")
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}

	got, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != g {
		t.Fatalf("Get returned a different game")
	}

	if _, err := m.Get(uuid.New()); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown id: %v", err)
	}

	m.Remove(id)
	if m.Len() != 0 {
		t.Fatalf("Len after remove = %d", m.Len())
	}
	if _, err := m.Get(id); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("removed game still found")
	}
}

func TestManagerConcurrentCreate(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, 32)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], _ = m.Create(TimeControl{})
		}(i)
	}
	wg.Wait()

	if m.Len() != len(ids) {
		t.Fatalf("Len = %d, want %d", m.Len(), len(ids))
	}
	for _, id := range ids {
		if _, err := m.Get(id); err != nil {
			t.Fatalf("game %s missing: %v", id, err)
		}
	}
}
