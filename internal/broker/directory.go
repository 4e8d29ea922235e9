package broker

import (
	"sort"
	"sync"
)

// Directory is the registry of all live Queues, keyed by (kind, target).
// Queues are created lazily on first use and removed only by PurgeAll; an
// emptied queue stays registered until then. At most one Queue object exists
// per key at any time.
type Directory struct {
	mu     sync.RWMutex
	queues map[Kind]map[string]*Queue
}

// NewDirectory returns an empty Directory.
func NewDirectory() *Directory {
	return &Directory{queues: map[Kind]map[string]*Queue{
		KindMessage: {},
		KindJob:     {},
	}}
}

// Get looks up the queue for (kind, target). When create is true and no queue
// exists, one is created and registered atomically, so two concurrent Puts to
// a brand-new target observe the same Queue object. The second return is
// false when the queue is absent and create is false.
func (d *Directory) Get(kind Kind, target string, create bool) (*Queue, bool) {
	d.mu.RLock()
	q, ok := d.queues[kind][target]
	d.mu.RUnlock()
	if ok || !create {
		return q, ok
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if q, ok = d.queues[kind][target]; ok {
		return q, true
	}
	q = NewQueue()
	d.queues[kind][target] = q
	return q, true
}

// PurgeAll removes every queue for both kinds and returns stats for what was
// dropped. The kind maps are swapped atomically under the write lock: a Put
// serialized before the swap is discarded with the old map, one serialized
// after lands in a fresh queue that survives the purge.
func (d *Directory) PurgeAll() []QueueStat {
	d.mu.Lock()
	old := d.queues
	d.queues = map[Kind]map[string]*Queue{
		KindMessage: {},
		KindJob:     {},
	}
	d.mu.Unlock()

	var dropped []QueueStat
	for kind, targets := range old {
		for target, q := range targets {
			dropped = append(dropped, QueueStat{Kind: kind, Target: target, Depth: q.Depth()})
		}
	}
	sortStats(dropped)
	return dropped
}

// Snapshot returns one QueueStat per registered queue, both kinds, sorted by
// kind then target. Depths are read per-queue and may be instantly stale
// under concurrent traffic.
func (d *Directory) Snapshot() []QueueStat {
	d.mu.RLock()
	stats := make([]QueueStat, 0, len(d.queues[KindMessage])+len(d.queues[KindJob]))
	for kind, targets := range d.queues {
		for target, q := range targets {
			stats = append(stats, QueueStat{Kind: kind, Target: target, Depth: q.Depth()})
		}
	}
	d.mu.RUnlock()
	sortStats(stats)
	return stats
}

// QueueStat describes one live queue.
type QueueStat struct {
	Kind   Kind
	Target string
	Depth  int
}

func sortStats(stats []QueueStat) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Kind != stats[j].Kind {
			return stats[i].Kind < stats[j].Kind
		}
		return stats[i].Target < stats[j].Target
	})
}
