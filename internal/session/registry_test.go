package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	errs "gomud/internal/errors"
	"gomud/util"
)

func newBareSession(id string) *Session {
	return New(id, "tester", "127.0.0.1:9", &connBuf{}, &fakeGame{}, NewRegistry(), util.NewLogger(0))
}

func TestRegistryAddGetRemove(t *testing.T) {
	r := NewRegistry()
	s := newBareSession("a")

	if err := r.Add(s); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
	got, ok := r.Get("a")
	if !ok || got != s {
		t.Error("Get should return the registered session")
	}

	r.Remove("a")
	if r.Len() != 0 {
		t.Errorf("Len after Remove = %d, want 0", r.Len())
	}
	if _, ok := r.Get("a"); ok {
		t.Error("Get after Remove should fail")
	}

	// Removing again is a no-op.
	r.Remove("a")
}

func TestRegistryRejectsDuplicateID(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(newBareSession("a")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	err := r.Add(newBareSession("a"))
	if !errors.Is(err, errs.ErrDuplicateSession) {
		t.Errorf("duplicate Add = %v, want ErrDuplicateSession", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryEach(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		if err := r.Add(newBareSession(id)); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}

	seen := make(map[string]bool)
	r.Each(func(s *Session) { seen[s.ID] = true })
	if len(seen) != 3 {
		t.Errorf("Each visited %d sessions, want 3", len(seen))
	}
}

func TestRegistryConcurrentRegistration(t *testing.T) {
	const n = 50
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := r.Add(newBareSession(fmt.Sprintf("sess-%d", i))); err != nil {
				t.Errorf("Add: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if r.Len() != n {
		t.Errorf("Len = %d, want %d", r.Len(), n)
	}
}
