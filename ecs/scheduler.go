package ecs

import (
	"fmt"
	"iter"
	"runtime/debug"
	"slices"
	"time"

	"go.uber.org/zap"
)

// Queue selects one of a world's two system pipelines. The names reflect the
// external tick source: the host invokes the Update queue once per frame and
// the FixedUpdate queue once per fixed simulation interval. The core itself
// has no notion of wall-clock time.
type Queue int

const (
	Update Queue = iota
	FixedUpdate
)

func (q Queue) String() string {
	switch q {
	case Update:
		return "update"
	case FixedUpdate:
		return "fixed-update"
	default:
		return fmt.Sprintf("queue(%d)", int(q))
	}
}

// SweepReport captures the outcome of one RunQueue call. Faults are ordinary
// data here: a panicking system is recorded and the sweep moves on.
type SweepReport struct {
	Queue    Queue
	Executed int
	Faults   []*SystemFault
}

// Faulted reports whether any system panicked during the sweep.
func (r *SweepReport) Faulted() bool {
	return len(r.Faults) > 0
}

// SystemStats provides execution statistics for a single queued system.
type SystemStats struct {
	Name          string
	Queue         Queue
	Executions    int64
	Faults        int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// WorldStats aggregates per-system statistics across both queues of a world.
type WorldStats struct {
	World   string
	Systems []SystemStats
}

type systemStatsInternal struct {
	name          string
	executions    int64
	faults        int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (st *systemStatsInternal) record(d time.Duration) {
	st.executions++
	st.lastDuration = d
	st.totalDuration += d
	if d < st.minDuration {
		st.minDuration = d
	}
	if d > st.maxDuration {
		st.maxDuration = d
	}
}

// scheduler is one ordered system queue of a world.
type scheduler struct {
	world   *World
	queue   Queue
	systems []System
	stats   []*systemStatsInternal
}

func newScheduler(w *World, q Queue) *scheduler {
	return &scheduler{world: w, queue: q}
}

func newSystemStats(sys System) *systemStatsInternal {
	return &systemStatsInternal{
		name:        SystemName(sys),
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (s *scheduler) add(sys System) error {
	if sys == nil {
		return fmt.Errorf("%w: add to %s queue", ErrNilSystem, s.queue)
	}
	s.systems = append(s.systems, sys)
	s.stats = append(s.stats, newSystemStats(sys))
	return nil
}

func (s *scheduler) insert(sys System, order int) error {
	if sys == nil {
		return fmt.Errorf("%w: insert into %s queue", ErrNilSystem, s.queue)
	}
	if order < 0 || order > len(s.systems) {
		return fmt.Errorf("%w: order %d, %s queue length %d",
			ErrOrderOutOfRange, order, s.queue, len(s.systems))
	}
	s.systems = slices.Insert(s.systems, order, sys)
	s.stats = slices.Insert(s.stats, order, newSystemStats(sys))
	return nil
}

// remove drops the first occurrence of sys by identity, shifting subsequent
// entries left.
func (s *scheduler) remove(sys System) bool {
	for i, candidate := range s.systems {
		if candidate == sys {
			s.systems = slices.Delete(s.systems, i, i+1)
			s.stats = slices.Delete(s.stats, i, i+1)
			return true
		}
	}
	return false
}

// run executes every system currently in the queue, in order, once each.
// Membership is snapshotted at sweep start: a system may freely mutate the
// queue it is being driven from, but additions take effect next sweep and a
// removed system still finishes the current one.
func (s *scheduler) run() *SweepReport {
	report := &SweepReport{Queue: s.queue}

	systems := slices.Clone(s.systems)
	stats := slices.Clone(s.stats)

	for i, sys := range systems {
		s.runOne(sys, stats[i], report)
	}
	return report
}

func (s *scheduler) runOne(sys System, st *systemStatsInternal, report *SweepReport) {
	start := time.Now()
	defer func() {
		st.record(time.Since(start))
		if v := recover(); v != nil {
			st.faults++
			fault := &SystemFault{
				System: st.name,
				Queue:  s.queue,
				Value:  v,
				Stack:  debug.Stack(),
			}
			report.Faults = append(report.Faults, fault)
			s.world.log.Error("system fault during sweep",
				zap.String("world", s.world.name),
				zap.Stringer("queue", s.queue),
				zap.String("system", fault.System),
				zap.Any("panic", v))
		}
	}()

	report.Executed++
	sys.Execute(s.world)
}

func (s *scheduler) snapshotStats(into *WorldStats) {
	for _, st := range s.stats {
		avg := time.Duration(0)
		min := st.minDuration
		if st.executions > 0 {
			avg = st.totalDuration / time.Duration(st.executions)
		} else {
			min = 0
		}
		into.Systems = append(into.Systems, SystemStats{
			Name:          st.name,
			Queue:         s.queue,
			Executions:    st.executions,
			Faults:        st.faults,
			MinDuration:   min,
			MaxDuration:   st.maxDuration,
			AvgDuration:   avg,
			LastDuration:  st.lastDuration,
			TotalDuration: st.totalDuration,
		})
	}
}

func (w *World) queueFor(q Queue) *scheduler {
	switch q {
	case Update:
		return w.update
	case FixedUpdate:
		return w.fixed
	default:
		panic(fmt.Sprintf("ecs: unknown queue %d", int(q)))
	}
}

// AddSystem appends sys to the end of the chosen queue. Admission order is
// stable: systems without an explicit position execute in FIFO order.
func (w *World) AddSystem(q Queue, sys System) error {
	return w.queueFor(q).add(sys)
}

// AddSystemAt inserts sys at the given zero-based position, shifting
// subsequent entries right. order == queue length is equivalent to
// AddSystem; anything outside [0, length] fails with ErrOrderOutOfRange and
// leaves the queue unchanged.
func (w *World) AddSystemAt(q Queue, sys System, order int) error {
	return w.queueFor(q).insert(sys, order)
}

// RemoveSystem removes the first occurrence of sys from the chosen queue by
// identity, returning whether a removal happened. Membership in the other
// queue is unaffected.
func (w *World) RemoveSystem(q Queue, sys System) bool {
	return w.queueFor(q).remove(sys)
}

// RunQueue runs one sweep: every system currently in the queue, in queue
// order, synchronously on the calling goroutine. A fault raised by one
// system is caught at the per-system boundary and never prevents subsequent
// systems from running; inspect the report for captured faults. An empty
// queue is a no-op.
func (w *World) RunQueue(q Queue) *SweepReport {
	return w.queueFor(q).run()
}

// ExecuteOnce executes sys immediately against this world, bypassing both
// queues; no queue membership changes as a side effect. Unlike queued
// execution, panics propagate to the caller — there is no sweep to protect.
// Panics immediately if sys is nil.
func (w *World) ExecuteOnce(sys System) {
	if sys == nil {
		panic(ErrNilSystem)
	}
	sys.Execute(w)
}

// Stats returns a point-in-time copy of per-system execution statistics for
// both queues.
func (w *World) Stats() *WorldStats {
	stats := &WorldStats{World: w.name}
	w.update.snapshotStats(stats)
	w.fixed.snapshotStats(stats)
	return stats
}

// QueueView is a live, read-only view of one queue's ordered membership: it
// reflects later Add/Remove calls but offers no mutation of its own.
type QueueView struct {
	s *scheduler
}

// Systems returns a view of the chosen queue.
func (w *World) Systems(q Queue) QueueView {
	return QueueView{s: w.queueFor(q)}
}

// Len returns the current number of systems in the queue.
func (v QueueView) Len() int {
	return len(v.s.systems)
}

// At returns the system at position i.
func (v QueueView) At(i int) System {
	return v.s.systems[i]
}

// Index returns the position of the first occurrence of sys, or -1.
func (v QueueView) Index(sys System) int {
	return slices.Index(v.s.systems, sys)
}

// Contains reports whether sys is currently in the queue.
func (v QueueView) Contains(sys System) bool {
	return v.Index(sys) >= 0
}

// All iterates the queue in order. The iteration reads the live queue; for a
// stable copy, collect it first.
func (v QueueView) All() iter.Seq[System] {
	return func(yield func(System) bool) {
		for _, sys := range v.s.systems {
			if !yield(sys) {
				return
			}
		}
	}
}

// Names returns the diagnostic names of the queued systems in order.
func (v QueueView) Names() []string {
	names := make([]string, len(v.s.systems))
	for i, sys := range v.s.systems {
		names[i] = SystemName(sys)
	}
	return names
}
