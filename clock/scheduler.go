package clock

import (
	"fmt"
	"time"

	"github.com/kamstrup/intmap"
)

// SourceID identifies a tick source registered with a Scheduler.
type SourceID uint32

// Func is invoked when a source fires. now is the scheduler clock reading
// taken at the start of the advance.
type Func func(now time.Time)

// Handle identifies one activation of a source. Every Start hands out a new
// generation; handles from earlier generations are dead.
type Handle struct {
	Source     SourceID
	Generation uint64
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SourceCount     int
	ActiveCount     int
	TotalExecutions int64
	Sources         []SourceStats
}

// SourceStats provides execution statistics for a single source.
type SourceStats struct {
	Name           string
	Interval       time.Duration
	Active         bool
	Generation     uint64
	Starts         int64
	Cancels        int64
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type source struct {
	id       SourceID
	name     string
	interval time.Duration
	fn       Func

	active     bool
	generation uint64
	next       time.Time

	starts         int64
	cancels        int64
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler is a single-threaded tick source multiplexer. Each registered
// source owns exactly one slot, so a source can never have two live timers:
// starting an active source replaces its handle.
//
// Scheduler is not safe for concurrent use. Callbacks run synchronously
// inside Advance and may start or cancel any source.
type Scheduler struct {
	clock   Clock
	sources *intmap.Map[SourceID, *source]
	order   []SourceID
	nextID  SourceID
}

// NewScheduler creates a scheduler reading time from clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{
		clock:   clock,
		sources: intmap.New[SourceID, *source](8),
		order:   make([]SourceID, 0, 4),
	}
}

// Clock returns the clock the scheduler reads time from.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Register adds an inactive source. An interval of zero fires on every
// Advance, which is how per-frame sources are expressed.
func (s *Scheduler) Register(name string, interval time.Duration, fn Func) SourceID {
	if fn == nil {
		panic("cannot register source without a callback: " + name)
	}
	if interval < 0 {
		panic("source interval must not be negative: " + name)
	}

	s.nextID++
	id := s.nextID
	s.sources.Put(id, &source{
		id:          id,
		name:        name,
		interval:    interval,
		fn:          fn,
		minDuration: time.Duration(1<<63 - 1),
	})
	s.order = append(s.order, id)
	return id
}

func (s *Scheduler) mustGet(id SourceID) *source {
	src, ok := s.sources.Get(id)
	if !ok {
		panic(fmt.Sprintf("unknown source id %d", id))
	}
	return src
}

// Start activates a source. If the source is already active its current
// handle is cancelled first. The first firing happens one interval from now.
func (s *Scheduler) Start(id SourceID) Handle {
	src := s.mustGet(id)
	if src.active {
		src.cancels++
	}

	src.generation++
	src.active = true
	src.starts++
	src.next = s.clock.Now().Add(src.interval)

	return Handle{Source: id, Generation: src.generation}
}

// Cancel deactivates a source. It reports whether a live handle was
// cancelled; cancelling an inactive source is a no-op.
func (s *Scheduler) Cancel(id SourceID) bool {
	src := s.mustGet(id)
	if !src.active {
		return false
	}
	src.active = false
	src.cancels++
	return true
}

// Active reports whether the source currently has a live handle.
func (s *Scheduler) Active(id SourceID) bool {
	return s.mustGet(id).active
}

// Live reports whether h is the current handle of an active source.
func (s *Scheduler) Live(h Handle) bool {
	src, ok := s.sources.Get(h.Source)
	if !ok {
		return false
	}
	return src.active && src.generation == h.Generation
}

// Advance fires every active source that is due at the current clock time,
// in registration order, and returns how many fired. A source fires at most
// once per Advance.
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	fired := 0

	for _, id := range s.order {
		src, ok := s.sources.Get(id)
		if !ok || !src.active || now.Before(src.next) {
			continue
		}

		generation := src.generation
		start := time.Now()
		src.fn(now)
		duration := time.Since(start)

		src.executionCount++
		src.lastDuration = duration
		src.totalDuration += duration
		if duration < src.minDuration {
			src.minDuration = duration
		}
		if duration > src.maxDuration {
			src.maxDuration = duration
		}
		fired++

		// The callback may have restarted or cancelled its own source.
		if src.active && src.generation == generation {
			src.next = nextDeadline(src.next, src.interval, now)
		}
	}

	return fired
}

// nextDeadline keeps an interval source on its nominal schedule. A source
// that fell a whole interval or more behind is re-anchored to now instead of
// firing repeatedly to catch up.
func nextDeadline(due time.Time, interval time.Duration, now time.Time) time.Time {
	next := due.Add(interval)
	if !next.After(now) {
		return now.Add(interval)
	}
	return next
}

// GetStats returns statistics about source execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SourceCount: len(s.order),
		Sources:     make([]SourceStats, 0, len(s.order)),
	}

	for _, id := range s.order {
		src, ok := s.sources.Get(id)
		if !ok {
			continue
		}

		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if src.executionCount > 0 {
			avgDuration = src.totalDuration / time.Duration(src.executionCount)
			minDuration = src.minDuration
		}

		stats.Sources = append(stats.Sources, SourceStats{
			Name:           src.name,
			Interval:       src.interval,
			Active:         src.active,
			Generation:     src.generation,
			Starts:         src.starts,
			Cancels:        src.cancels,
			ExecutionCount: src.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    src.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   src.lastDuration,
			TotalDuration:  src.totalDuration,
		})

		if src.active {
			stats.ActiveCount++
		}
		stats.TotalExecutions += src.executionCount
	}

	return stats
}
