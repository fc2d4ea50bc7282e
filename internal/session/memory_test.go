package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestStore() *MemoryStore {
	return NewMemoryStore(DefaultTTL)
}

func mustCreate(t *testing.T, s *MemoryStore, owner string) *Session {
	t.Helper()
	sess, err := s.Create(Problem{Text: "Solve for x: 2x + 3 = 11"}, ModeStandard, owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return sess
}

func TestCreateEmptyProblem(t *testing.T) {
	s := newTestStore()
	if _, err := s.Create(Problem{Text: "   "}, ModeStandard, ""); !errors.Is(err, ErrEmptyProblem) {
		t.Errorf("Create with blank problem = %v, want ErrEmptyProblem", err)
	}
}

func TestCreateThenGetVisibleImmediately(t *testing.T) {
	s := newTestStore()
	sess := mustCreate(t, s, "")

	got, err := s.Get(sess.ID, "")
	if err != nil {
		t.Fatalf("Get right after Create: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("ID = %q, want %q", got.ID, sess.ID)
	}
	if got.State != StateCreated {
		t.Errorf("State = %q, want created", got.State)
	}
}

func TestCreateVisibilityUnderConcurrentLoad(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	for i := range 100 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess, err := s.Create(Problem{Text: fmt.Sprintf("problem %d", i)}, ModeStandard, "")
			if err != nil {
				errs <- err
				return
			}
			if _, err := s.Get(sess.ID, ""); err != nil {
				errs <- fmt.Errorf("session %s invisible after create: %w", sess.ID, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestGetOwnershipFailsClosed(t *testing.T) {
	s := newTestStore()
	sess := mustCreate(t, s, "alice")

	if _, err := s.Get(sess.ID, "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-owner Get = %v, want ErrNotFound", err)
	}
	if _, err := s.Get(sess.ID, "alice"); err != nil {
		t.Errorf("owner Get = %v, want nil", err)
	}
	// Guest lookups (no owner supplied) succeed for any session.
	if _, err := s.Get(sess.ID, ""); err != nil {
		t.Errorf("ownerless Get = %v, want nil", err)
	}
}

func TestAppendOrdering(t *testing.T) {
	s := newTestStore()
	sess := mustCreate(t, s, "")

	for i := range 5 {
		if _, err := s.Append(sess.ID, Message{Role: RoleUser, Content: fmt.Sprintf("msg %d", i)}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.Get(sess.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(got.Messages))
	}
	for i := 1; i < len(got.Messages); i++ {
		if got.Messages[i].Timestamp.Before(got.Messages[i-1].Timestamp) {
			t.Errorf("timestamp at %d decreases", i)
		}
	}
	if got.State != StateActive {
		t.Errorf("State = %q, want active", got.State)
	}
}

func TestConcurrentAppendsNoLossNoCorruption(t *testing.T) {
	s := newTestStore()
	sess := mustCreate(t, s, "")

	const n = 50
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Append(sess.ID, Message{Role: RoleUser, Content: fmt.Sprintf("turn-%03d", i)})
			if err != nil {
				t.Errorf("Append: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.Get(sess.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Messages) != n {
		t.Fatalf("len(Messages) = %d, want %d (dropped append)", len(got.Messages), n)
	}
	seen := make(map[string]bool, n)
	for i, m := range got.Messages {
		if len(m.Content) != len("turn-000") {
			t.Errorf("message %d content corrupted: %q", i, m.Content)
		}
		if seen[m.Content] {
			t.Errorf("duplicate message %q", m.Content)
		}
		seen[m.Content] = true
		if i > 0 && m.Timestamp.Before(got.Messages[i-1].Timestamp) {
			t.Errorf("timestamp at %d decreases", i)
		}
	}
}

func TestClearIdempotent(t *testing.T) {
	s := newTestStore()
	sess := mustCreate(t, s, "alice")

	if err := s.Clear(sess.ID, "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-owner Clear = %v, want ErrNotFound", err)
	}
	if err := s.Clear(sess.ID, "alice"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := s.Clear(sess.ID, "alice"); err != nil {
		t.Errorf("second Clear = %v, want nil", err)
	}
	if _, err := s.Get(sess.ID, "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Clear = %v, want ErrNotFound", err)
	}
	if _, err := s.Append(sess.ID, Message{Role: RoleUser, Content: "hi"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Append after Clear = %v, want ErrNotFound", err)
	}
}

func TestReapEvictsOnlyIdleSessions(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	clock := time.Now()
	s.now = func() time.Time { return clock }

	idle := mustCreate(t, s, "")
	fresh := mustCreate(t, s, "")

	// Advance time past the TTL, then touch only one session.
	clock = clock.Add(11 * time.Minute)
	if _, err := s.Append(fresh.ID, Message{Role: RoleUser, Content: "still here"}); err != nil {
		t.Fatal(err)
	}

	if n := s.Reap(); n != 1 {
		t.Fatalf("Reap = %d, want 1", n)
	}
	if _, err := s.Get(idle.ID, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("idle session survived reap")
	}
	if _, err := s.Get(fresh.ID, ""); err != nil {
		t.Errorf("active session reaped: %v", err)
	}
	if got := s.ListActive(); len(got) != 1 {
		t.Errorf("ListActive = %d sessions, want 1", len(got))
	}
}
