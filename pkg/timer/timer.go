// Package timer - отложенный запуск задач. Сессии игр ведут через него фазы анимации.
package timer

import (
	"sync"
	"time"
)

// Scheduler запускает функции с задержкой.
// Once возвращает id задачи, по которому ее можно отменить.
type Scheduler interface {
	Once(delay time.Duration, f func()) int64
	Cancel(id int64)
	CancelAll()
	Stop()
}

type realScheduler struct {
	mu      sync.Mutex
	nextID  int64
	stopped bool
	tasks   map[int64]*time.Timer
}

// New - планировщик на настоящих таймерах
func New() Scheduler {
	return &realScheduler{tasks: make(map[int64]*time.Timer)}
}

func (s *realScheduler) Once(delay time.Duration, f func()) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0
	}
	s.nextID++
	id := s.nextID
	s.tasks[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, ok := s.tasks[id]
		delete(s.tasks, id)
		s.mu.Unlock()
		if ok {
			f()
		}
	})
	return id
}

func (s *realScheduler) Cancel(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tasks[id]; ok {
		t.Stop()
		delete(s.tasks, id)
	}
}

func (s *realScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.tasks {
		t.Stop()
		delete(s.tasks, id)
	}
}

// Stop отменяет все задачи, новые больше не принимаются
func (s *realScheduler) Stop() {
	s.CancelAll()
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}
