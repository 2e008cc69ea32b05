package episode

import (
	"sync"
	"testing"
	"time"
)

func TestTryHandleAdmitsOnce(t *testing.T) {
	s := NewState(time.Now())

	if got := s.TryHandle(0); got != Admitted {
		t.Fatalf("first TryHandle: expected admitted, got %s", got)
	}
	if got := s.TryHandle(0); got != AlreadyHandled {
		t.Fatalf("second TryHandle: expected already_handled, got %s", got)
	}
	if !s.Handled() {
		t.Fatal("expected handled=true after admission")
	}
}

func TestTryHandleRejectsStaleEpoch(t *testing.T) {
	s := NewState(time.Now())
	s.Reset(time.Now()) // epoch now 1

	if got := s.TryHandle(0); got != StaleEpoch {
		t.Fatalf("expected stale_epoch, got %s", got)
	}
	if s.Handled() {
		t.Fatal("stale request must not set handled")
	}
}

// Exclusivity property: many concurrent claims on the same epoch, exactly one
// admitted.
func TestTryHandleConcurrentExclusivity(t *testing.T) {
	for round := 0; round < 50; round++ {
		s := NewState(time.Now())
		const callers = 12

		var wg sync.WaitGroup
		results := make([]AdmitResult, callers)
		start := make(chan struct{})
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				results[i] = s.TryHandle(0)
			}(i)
		}
		close(start)
		wg.Wait()

		admitted := 0
		for _, r := range results {
			if r == Admitted {
				admitted++
			}
		}
		if admitted != 1 {
			t.Fatalf("round %d: expected exactly 1 admission, got %d", round, admitted)
		}
	}
}

func TestResetClearsFlagsAndIncrementsEpoch(t *testing.T) {
	t0 := time.Now()
	s := NewState(t0)
	s.SetArmed(KindProximity, true)
	s.SetArmed(KindAmbientLight, true)
	if s.TryHandle(0) != Admitted {
		t.Fatal("setup: admission failed")
	}

	t1 := t0.Add(30 * time.Second)
	epoch := s.Reset(t1)

	if epoch != 1 {
		t.Fatalf("expected epoch 1, got %d", epoch)
	}
	if s.Handled() {
		t.Fatal("expected handled cleared")
	}
	if s.AnyArmed() {
		t.Fatal("expected armed flags cleared")
	}
	if !s.IdleBaseline().Equal(t1) {
		t.Fatalf("expected baseline %v, got %v", t1, s.IdleBaseline())
	}
}

func TestArmedIgnoresIdle(t *testing.T) {
	s := NewState(time.Now())
	s.SetArmed(KindIdle, true)
	if s.Armed(KindIdle) {
		t.Fatal("idle has no arm phase")
	}
	if s.AnyArmed() {
		t.Fatal("idle must not count as armed")
	}
}

func TestExecutingFlag(t *testing.T) {
	s := NewState(time.Now())
	if s.Executing() {
		t.Fatal("expected executing=false initially")
	}
	s.SetExecuting(true)
	if !s.Executing() {
		t.Fatal("expected executing=true")
	}
	s.SetExecuting(false)
	if s.Executing() {
		t.Fatal("expected executing=false after clear")
	}
}
