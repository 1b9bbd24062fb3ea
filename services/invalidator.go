package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Rikoze777/menu-api/pkg/cache"
)

type invalidation struct {
	keys   []string
	prefix string
	done   chan struct{}
}

// Invalidator applies cache invalidations off the request path. Services
// enqueue key sets after a mutation has committed and the response value is
// already determined, so cache cleanup latency never blocks the client.
// Failures are logged and dropped; they must never surface as API errors.
type Invalidator struct {
	cache *cache.Cache
	log   *zap.Logger
	jobs  chan invalidation
	wg    sync.WaitGroup
	once  sync.Once
}

func NewInvalidator(c *cache.Cache, log *zap.Logger) *Invalidator {
	inv := &Invalidator{
		cache: c,
		log:   log,
		jobs:  make(chan invalidation, 256),
	}
	inv.wg.Add(1)
	go inv.run()
	return inv
}

func (i *Invalidator) run() {
	defer i.wg.Done()
	for job := range i.jobs {
		if job.done != nil {
			close(job.done)
			continue
		}
		i.apply(job)
	}
}

func (i *Invalidator) apply(job invalidation) {
	ctx := context.Background()
	if job.prefix != "" {
		if err := i.cache.InvalidatePrefix(ctx, job.prefix); err != nil {
			i.log.Warn("cache prefix invalidation failed",
				zap.String("prefix", job.prefix), zap.Error(err))
		}
	}
	if len(job.keys) > 0 {
		if err := i.cache.Invalidate(ctx, job.keys...); err != nil {
			i.log.Warn("cache invalidation failed",
				zap.Strings("keys", job.keys), zap.Error(err))
		}
	}
}

func (i *Invalidator) Enqueue(keys ...string) {
	i.submit(invalidation{keys: keys})
}

func (i *Invalidator) EnqueuePrefix(prefix string) {
	i.submit(invalidation{prefix: prefix})
}

// submit never blocks the caller: if the queue is full the invalidation is
// applied inline rather than dropped, trading a little request latency for
// never serving stale data longer than the TTL.
func (i *Invalidator) submit(job invalidation) {
	select {
	case i.jobs <- job:
	default:
		i.apply(job)
	}
}

// Wait blocks until every invalidation enqueued before the call has been
// applied. Tests use it to make the asynchronous policy deterministic.
func (i *Invalidator) Wait() {
	done := make(chan struct{})
	i.jobs <- invalidation{done: done}
	<-done
}

// Close drains the queue and stops the worker. Safe to call more than once.
func (i *Invalidator) Close() {
	i.once.Do(func() { close(i.jobs) })
	i.wg.Wait()
}
