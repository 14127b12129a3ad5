package scheduler

import (
	"sync"
	"time"

	"github.com/nyxforge/exec/env"
	"github.com/nyxforge/exec/internal/relay"
	"github.com/nyxforge/exec/internal/shutdown"
	"github.com/nyxforge/exec/metrics"
	"github.com/nyxforge/exec/pool"
)

// ThreadRunLoop is a fixed-size worker pool scheduler: a shared task
// channel, N consumer goroutines, and a deterministic, run-once Close built
// on internal/shutdown. Execute never blocks the caller past a best-effort
// synchronous send: a full queue detaches the send through internal/relay
// so a single slow consumer never stalls every producer.
type ThreadRunLoop struct {
	cfg     Config
	tasks   chan *taskSlot
	closeCh chan struct{}
	workers sync.WaitGroup
	sendWG  sync.WaitGroup
	coord   *shutdown.Coordinator
	pool    pool.Pool

	dispatched metrics.Counter
	queueDepth metrics.UpDownCounter
	latency    metrics.Histogram
}

// taskSlot is the per-dispatch bookkeeping object recycled across
// Execute/worker cycles via pool.Pool, so steady-state dispatch doesn't
// allocate a fresh struct per task.
type taskSlot struct {
	fn func()
}

// NewThreadRunLoop builds a ThreadRunLoop applying the given Options over
// defaultConfig, validating the result before starting any goroutines.
func NewThreadRunLoop(opts ...Option) (*ThreadRunLoop, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	newSlot := func() interface{} { return &taskSlot{} }
	var slotPool pool.Pool
	if cfg.DynamicSlotPool {
		slotPool = pool.NewDynamic(newSlot)
	} else {
		slotPool = pool.NewFixed(cfg.SlotPoolCapacity, newSlot)
	}

	t := &ThreadRunLoop{
		cfg:        cfg,
		tasks:      make(chan *taskSlot, cfg.QueueCapacity),
		closeCh:    make(chan struct{}),
		pool:       slotPool,
		dispatched: cfg.Metrics.Counter("exec_scheduler_dispatched_total"),
		queueDepth: cfg.Metrics.UpDownCounter("exec_scheduler_queue_depth"),
		latency:    cfg.Metrics.Histogram("exec_scheduler_task_latency_seconds"),
	}

	t.workers.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go t.runWorker()
	}

	t.coord = shutdown.New(
		func() { close(t.closeCh) },
		func() { t.sendWG.Wait() },
		func() { close(t.tasks) },
		func() { t.workers.Wait() },
	)

	return t, nil
}

func (t *ThreadRunLoop) runWorker() {
	defer t.workers.Done()
	for slot := range t.tasks {
		t.queueDepth.Add(-1)
		start := time.Now()
		slot.fn()
		t.latency.Record(time.Since(start).Seconds())
		t.dispatched.Add(1)
		slot.fn = nil
		t.pool.Put(slot)
	}
}

// Execute submits fn for a worker to run. A synchronous send is attempted
// first; if every worker is busy and the queue is full, the send detaches
// (internal/relay) rather than blocking the caller, and is dropped if Close
// starts before the send lands. Like RunLoop.Push, a worker only ever
// runs the closure it was handed - it never sees the receiver a scheduling
// adaptor is completing, so the receiver's stop-token check happens before
// the closure reaches here (exec.DeliverValue, or adapt.On's inline check
// before it ever submits the child's Start).
func (t *ThreadRunLoop) Execute(fn func()) {
	slot := t.pool.Get().(*taskSlot)
	slot.fn = fn
	t.queueDepth.Add(1)

	select {
	case t.tasks <- slot:
		return
	default:
	}
	relay.SendBlocking(t.tasks, slot, t.closeCh, &t.sendWG)
}

// Close runs the shutdown sequence exactly once: stop accepting new sends,
// wait out any detached Execute calls, close the task channel, then wait for
// every worker to drain and exit.
func (t *ThreadRunLoop) Close() { t.coord.Close() }

// Scheduler returns the env.Scheduler handle for this pool.
func (t *ThreadRunLoop) Scheduler() ThreadRunLoopScheduler { return ThreadRunLoopScheduler{t: t} }

// ThreadRunLoopScheduler is the copyable, comparable scheduler handle for a
// particular ThreadRunLoop.
type ThreadRunLoopScheduler struct{ t *ThreadRunLoop }

func (s ThreadRunLoopScheduler) Equal(sch env.Scheduler) bool {
	o, ok := sch.(ThreadRunLoopScheduler)
	return ok && o.t == s.t
}

func (s ThreadRunLoopScheduler) Execute(fn func()) { s.t.Execute(fn) }
