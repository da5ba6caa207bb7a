package game

import "container/heap"

// TimerID identifies a scheduled callback so it can be cancelled.
type TimerID int64

type timer struct {
	id        TimerID
	fireAt    int64 // logical clock value, ms
	period    int64 // repeat interval in ms, 0 for one-shot
	seq       int64
	fn        func()
	cancelled bool
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].fireAt != h[j].fireAt {
		return h[i].fireAt < h[j].fireAt
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Scheduler runs callbacks against a logical millisecond clock that only
// moves when Advance is called, so timer behavior is deterministic and
// independent of wall time. All methods must be called from the tick
// goroutine; there is no internal locking.
//
// Timers due at the same instant fire in the order they were scheduled.
// Delays are clamped to at least 1ms, so a callback scheduled from inside
// another callback never fires within the same Advance.
type Scheduler struct {
	now     int64
	pending timerHeap
	live    map[TimerID]*timer
	nextID  TimerID
	nextSeq int64
}

func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[TimerID]*timer)}
}

// Now returns the logical clock in ms.
func (s *Scheduler) Now() int64 { return s.now }

// Pending returns the number of timers still waiting to fire.
func (s *Scheduler) Pending() int { return len(s.live) }

// After schedules fn to run once delayMS logical milliseconds from now.
func (s *Scheduler) After(delayMS int64, fn func()) TimerID {
	return s.add(delayMS, 0, fn)
}

// Every schedules fn to run delayMS from now and then every periodMS after.
func (s *Scheduler) Every(delayMS, periodMS int64, fn func()) TimerID {
	if periodMS < 1 {
		periodMS = 1
	}
	return s.add(delayMS, periodMS, fn)
}

func (s *Scheduler) add(delayMS, periodMS int64, fn func()) TimerID {
	if delayMS < 1 {
		delayMS = 1
	}
	s.nextID++
	s.nextSeq++
	t := &timer{
		id:     s.nextID,
		fireAt: s.now + delayMS,
		period: periodMS,
		seq:    s.nextSeq,
		fn:     fn,
	}
	s.live[t.id] = t
	heap.Push(&s.pending, t)
	return t.id
}

// Cancel stops the timer with the given id. Cancelling an already-fired or
// unknown timer is a no-op.
func (s *Scheduler) Cancel(id TimerID) {
	if t, ok := s.live[id]; ok {
		t.cancelled = true
		delete(s.live, id)
	}
}

// CancelAll stops every pending timer, including a periodic timer that is
// mid-fire when called from inside its own callback.
func (s *Scheduler) CancelAll() {
	for _, t := range s.live {
		t.cancelled = true
	}
	s.live = make(map[TimerID]*timer)
	s.pending = s.pending[:0]
}

// Advance moves the logical clock forward by deltaMS and fires every timer
// that has come due, in (fireAt, scheduling order). Periodic timers are
// re-queued after each fire.
func (s *Scheduler) Advance(deltaMS int64) {
	s.now += deltaMS
	for len(s.pending) > 0 && s.pending[0].fireAt <= s.now {
		t := heap.Pop(&s.pending).(*timer)
		if t.cancelled {
			continue
		}
		if t.period > 0 {
			t.fn()
			if t.cancelled { // the callback may have cancelled its own chain
				continue
			}
			t.fireAt += t.period
			s.nextSeq++
			t.seq = s.nextSeq
			heap.Push(&s.pending, t)
		} else {
			delete(s.live, t.id)
			t.fn()
		}
	}
}
