package ecs

import "github.com/kamstrup/intmap"

// maxFreeIDs caps the recycling pool. Ids destroyed while the pool is full
// are discarded instead of pooled, bounding allocator memory.
const maxFreeIDs = 10000

// idAllocator issues entity ids and recycles released ones in FIFO order.
// FIFO reuse keeps a just-freed id out of circulation for as long as
// possible, so a stale external reference is less likely to silently alias
// a different live entity.
type idAllocator struct {
	nextID EntityId
	free   []EntityId
	alive  *intmap.Map[EntityId, struct{}]
}

func newIDAllocator() *idAllocator {
	return &idAllocator{
		alive: intmap.New[EntityId, struct{}](256),
	}
}

// allocate returns the oldest pooled id if any, otherwise a fresh one.
func (a *idAllocator) allocate() EntityId {
	var id EntityId
	if len(a.free) > 0 {
		id = a.free[0]
		a.free = a.free[1:]
	} else {
		id = a.nextID
		a.nextID++
	}
	a.alive.Put(id, struct{}{})
	return id
}

// release returns an id to the pool. Releasing an id that is not live is a
// no-op, which makes double-destroy safe at the Store level.
func (a *idAllocator) release(id EntityId) {
	if !a.alive.Has(id) {
		return
	}
	a.alive.Del(id)
	if len(a.free) < maxFreeIDs {
		a.free = append(a.free, id)
	}
}

func (a *idAllocator) isAlive(id EntityId) bool {
	return a.alive.Has(id)
}

func (a *idAllocator) liveCount() int {
	return a.alive.Len()
}

// reset rebuilds allocator state from a restored snapshot. The free pool is
// not part of the snapshot wire contract, so it starts empty; only the next
// fresh id and the given live set survive a restore.
func (a *idAllocator) reset(nextID EntityId, live []EntityId) {
	a.nextID = nextID
	a.free = a.free[:0]
	a.alive.Clear()
	for _, id := range live {
		a.alive.Put(id, struct{}{})
	}
}
