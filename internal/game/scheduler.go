package game

import (
	"log"

	"github.com/google/uuid"
)

type task struct {
	id  uint64
	run uuid.UUID
	due float64
	fn  func()
}

// Scheduler runs one-shot callbacks after a delay measured in game-loop
// seconds. Every task belongs to a run; a task whose run is no longer
// current is dropped instead of fired.
type Scheduler struct {
	now   float64
	next  uint64
	tasks []task
}

// After schedules fn delay seconds from now on behalf of run.
func (s *Scheduler) After(run uuid.UUID, delay float64, fn func()) uint64 {
	s.next++
	s.tasks = append(s.tasks, task{id: s.next, run: run, due: s.now + delay, fn: fn})
	return s.next
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	s.tasks = s.tasks[:0]
}

// Pending is the number of queued tasks.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// Advance moves the clock by dt and fires due tasks belonging to current.
// It returns how many fired.
func (s *Scheduler) Advance(dt float64, current uuid.UUID) int {
	s.now += dt
	var due []task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	fired := 0
	for _, t := range due {
		if t.run != current {
			log.Printf("game: dropped stale task %d from run %s", t.id, t.run)
			continue
		}
		t.fn()
		fired++
	}
	return fired
}
