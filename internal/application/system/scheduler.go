package system

import "time"

// Token identifies a scheduled callback.
type Token uint64

type task struct {
	token      Token
	due        time.Duration
	generation uint64
	fn         func()
}

// Scheduler runs one-shot callbacks after a delay of simulated time.
// Callbacks belong to the generation current when they were scheduled;
// CancelAll starts a new generation so nothing scheduled before it runs.
type Scheduler struct {
	clock      Clock
	next       Token
	generation uint64
	tasks      []task
}

// NewScheduler creates a scheduler driven by clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d has elapsed on the clock.
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	s.next++
	s.tasks = append(s.tasks, task{
		token:      s.next,
		due:        s.clock.Now() + d,
		generation: s.generation,
		fn:         fn,
	})
	return s.next
}

// Cancel removes the callback identified by t. It reports whether the
// callback was still pending.
func (s *Scheduler) Cancel(t Token) bool {
	for i, tk := range s.tasks {
		if tk.token == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback and invalidates any callback of
// the current generation that is about to run.
func (s *Scheduler) CancelAll() {
	s.generation++
	s.tasks = s.tasks[:0]
}

// Generation returns the current generation.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// RunDue runs every callback whose delay has elapsed, earliest first,
// and returns how many ran. Callbacks scheduled by a running callback
// run in the same call if they are already due.
func (s *Scheduler) RunDue() int {
	ran := 0
	for {
		i := s.earliestDue()
		if i < 0 {
			return ran
		}
		tk := s.tasks[i]
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		if tk.generation != s.generation {
			continue
		}
		tk.fn()
		ran++
	}
}

func (s *Scheduler) earliestDue() int {
	now := s.clock.Now()
	best := -1
	for i, tk := range s.tasks {
		if tk.due > now {
			continue
		}
		if best < 0 || tk.due < s.tasks[best].due {
			best = i
		}
	}
	return best
}
