// Package clock runs deferred callbacks against a level's frame time.
//
// A Scheduler never reads the wall clock. The owner advances it once per
// frame, and every entry whose due time has been reached fires in due order,
// ties broken by scheduling order. Cancelling the scheduler drops every
// pending entry, so a callback can never run into a torn-down level.
package clock

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled entry.
type Handle uint64

type entry struct {
	at       time.Duration
	seq      uint64
	handle   Handle
	interval time.Duration
	fn       func(now time.Duration)
	index    int
}

type queue []*entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Scheduler is a per-level deferred callback queue.
type Scheduler struct {
	now       time.Duration
	seq       uint64
	next      Handle
	queue     queue
	live      map[Handle]*entry
	cancelled bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[Handle]*entry)}
}

// Now is the time of the last Advance.
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending reports how many entries are waiting to fire.
func (s *Scheduler) Pending() int { return len(s.queue) }

// At schedules fn at an absolute frame time. Times in the past fire on the next Advance.
func (s *Scheduler) At(at time.Duration, fn func(now time.Duration)) Handle {
	return s.push(at, 0, fn)
}

// After schedules fn d after the current time.
func (s *Scheduler) After(d time.Duration, fn func(now time.Duration)) Handle {
	return s.push(s.now+d, 0, fn)
}

// Every schedules fn every interval, first firing one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func(now time.Duration)) Handle {
	if interval <= 0 {
		return 0
	}
	return s.push(s.now+interval, interval, fn)
}

func (s *Scheduler) push(at, interval time.Duration, fn func(now time.Duration)) Handle {
	if s.cancelled || fn == nil {
		return 0
	}
	s.seq++
	s.next++
	e := &entry{at: at, seq: s.seq, handle: s.next, interval: interval, fn: fn}
	heap.Push(&s.queue, e)
	s.live[e.handle] = e
	return e.handle
}

// Cancel removes a single entry. Unknown or fired handles are ignored.
func (s *Scheduler) Cancel(h Handle) {
	e, ok := s.live[h]
	if !ok {
		return
	}
	delete(s.live, h)
	if e.index >= 0 {
		heap.Remove(&s.queue, e.index)
	}
}

// CancelAll drops every pending entry and refuses new ones.
func (s *Scheduler) CancelAll() {
	s.cancelled = true
	s.queue = nil
	s.live = make(map[Handle]*entry)
}

// Cancelled reports whether CancelAll has been called.
func (s *Scheduler) Cancelled() bool { return s.cancelled }

// Advance moves the clock to now and fires every entry due at or before it.
// Callbacks may schedule or cancel entries; a new entry due by now fires in the same call.
func (s *Scheduler) Advance(now time.Duration) {
	if now > s.now {
		s.now = now
	}
	for !s.cancelled && len(s.queue) > 0 && s.queue[0].at <= s.now {
		e := heap.Pop(&s.queue).(*entry)
		due := e.at
		if e.interval > 0 {
			e.at += e.interval
			s.seq++
			e.seq = s.seq
			heap.Push(&s.queue, e)
		} else {
			delete(s.live, e.handle)
		}
		e.fn(due)
	}
}
