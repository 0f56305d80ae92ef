package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualRunsInOrder(t *testing.T) {
	m := NewManual()
	var order []int

	m.Once(300*time.Millisecond, func() { order = append(order, 3) })
	m.Once(100*time.Millisecond, func() { order = append(order, 1) })
	m.Once(200*time.Millisecond, func() { order = append(order, 2) })

	m.Advance(150 * time.Millisecond)
	if len(order) != 1 || order[0] != 1 {
		t.Fatalf("after 150ms order = %v", order)
	}

	m.Advance(time.Second)
	if len(order) != 3 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}
	if m.Pending() != 0 {
		t.Fatalf("pending = %d", m.Pending())
	}
}

func TestManualChainedTasks(t *testing.T) {
	m := NewManual()
	fired := 0

	m.Once(100*time.Millisecond, func() {
		fired++
		m.Once(100*time.Millisecond, func() { fired++ })
	})

	m.Advance(150 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	m.Advance(50 * time.Millisecond)
	if fired != 2 {
		t.Fatalf("chained task not fired: %d", fired)
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	fired := false

	id := m.Once(time.Second, func() { fired = true })
	m.Cancel(id)
	m.Advance(2 * time.Second)
	if fired {
		t.Fatalf("cancelled task fired")
	}

	m.Once(time.Second, func() { fired = true })
	m.CancelAll()
	m.Advance(2 * time.Second)
	if fired {
		t.Fatalf("task fired after CancelAll")
	}

	m.Stop()
	if id := m.Once(0, func() { fired = true }); id != 0 {
		t.Fatalf("stopped scheduler accepted task %d", id)
	}
}

func TestRealScheduler(t *testing.T) {
	s := New()
	defer s.Stop()

	done := make(chan struct{})
	s.Once(10*time.Millisecond, func() { close(done) })

	var cancelled atomic.Bool
	id := s.Once(20*time.Millisecond, func() { cancelled.Store(true) })
	s.Cancel(id)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("task did not fire")
	}

	time.Sleep(50 * time.Millisecond)
	if cancelled.Load() {
		t.Fatalf("cancelled task fired")
	}
}
