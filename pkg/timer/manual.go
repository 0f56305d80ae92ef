package timer

import (
	"sort"
	"sync"
	"time"
)

type manualTask struct {
	id  int64
	at  time.Duration
	run func()
}

// Manual - планировщик с виртуальными часами для тестов.
// Время двигается только через Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int64
	stopped bool
	tasks   []manualTask
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Once(delay time.Duration, f func()) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return 0
	}
	m.nextID++
	m.tasks = append(m.tasks, manualTask{id: m.nextID, at: m.now + max(delay, 0), run: f})
	return m.nextID
}

func (m *Manual) Cancel(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.tasks {
		if t.id == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (m *Manual) CancelAll() {
	m.mu.Lock()
	m.tasks = nil
	m.mu.Unlock()
}

func (m *Manual) Stop() {
	m.mu.Lock()
	m.tasks = nil
	m.stopped = true
	m.mu.Unlock()
}

// Now - виртуальное время с момента создания
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending - сколько задач ждет запуска
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance сдвигает часы на d и по порядку запускает созревшие задачи.
// Задачи, запланированные из колбэков, тоже запускаются, если успевают созреть.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	for {
		idx := m.nextDue(target)
		if idx < 0 {
			break
		}
		t := m.tasks[idx]
		m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
		m.now = t.at

		// Колбэк может снова вызвать Once, поэтому без блокировки
		m.mu.Unlock()
		t.run()
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
}

func (m *Manual) nextDue(target time.Duration) int {
	due := make([]int, 0, len(m.tasks))
	for i, t := range m.tasks {
		if t.at <= target {
			due = append(due, i)
		}
	}
	if len(due) == 0 {
		return -1
	}
	sort.SliceStable(due, func(a, b int) bool {
		ta, tb := m.tasks[due[a]], m.tasks[due[b]]
		if ta.at != tb.at {
			return ta.at < tb.at
		}
		return ta.id < tb.id
	})
	return due[0]
}
