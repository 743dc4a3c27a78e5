package depot

type operation struct {
	typ    operationType
	entity Entity
	store  AnyStore
}

type operationType int

const (
	opDestroy operationType = iota
	opRemoveComponent
)

type opKey struct {
	entity Entity
	store  AnyStore
}

type opQueue struct {
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[Entity]struct{}
	pendingMods    map[opKey]struct{}
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
		pendingMods:    make(map[opKey]struct{}),
	}
}

// EnqueueDestroy queues e once; queuing it again keeps its first position.
func (q *opQueue) EnqueueDestroy(e Entity) {
	if _, exists := q.pendingDestroy[e]; exists {
		return
	}
	q.pendingDestroy[e] = struct{}{}
	q.destroyOps = append(q.destroyOps, operation{
		typ:    opDestroy,
		entity: e,
	})
}

func (q *opQueue) EnqueueComponentOp(typ operationType, sto AnyStore, e Entity) {
	// A pending destroy removes everything anyway.
	if _, isDestroyed := q.pendingDestroy[e]; isDestroyed {
		return
	}
	key := opKey{entity: e, store: sto}
	if _, exists := q.pendingMods[key]; exists {
		return
	}
	q.pendingMods[key] = struct{}{}
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: e,
		store:  sto,
	})
}

// Len reports how many operations are waiting.
func (q *opQueue) Len() int {
	return len(q.componentOps) + len(q.destroyOps)
}

func (w *World) processOperationQueue() {
	q := &w.opQueue
	if q.Len() == 0 {
		return
	}

	// Process component modifications first
	for _, op := range q.componentOps {
		if _, destroyed := q.pendingDestroy[op.entity]; destroyed {
			continue
		}
		if op.typ == opRemoveComponent {
			op.store.Remove(op.entity)
		}
	}

	// Process destroys last, in queue order
	for _, op := range q.destroyOps {
		w.DestroyEntity(op.entity)
	}

	w.logger.Debug().
		Int("component_ops", len(q.componentOps)).
		Int("destroyed", len(q.destroyOps)).
		Msg("deferred removals flushed")

	q.componentOps = q.componentOps[:0]
	q.destroyOps = q.destroyOps[:0]
	clear(q.pendingDestroy)
	clear(q.pendingMods)
}
