package depot

import (
	"time"

	"github.com/TheBitDrifter/depot/statsd"
	"github.com/rs/zerolog"
)

// World owns entity allocation, every component store and the system schedule.
// A World must not be copied; hold it by pointer.
type World struct {
	noCopy noCopy

	registry *Registry
	next     Entity
	opQueue  opQueue
	phases   [phaseCount][]dispatcher
	ticks    uint64
	logger   zerolog.Logger
}

func newWorld(opts ...WorldOption) *World {
	o := worldOptions{
		logger:   Config.logger(),
		family:   ComponentFamily,
		capacity: Config.StoreCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &World{
		registry: newRegistry(o.family, o.capacity, o.logger),
		opQueue:  newOpQueue(),
		logger:   o.logger,
	}
}

// NewEntity allocates the next entity id. Ids are never reused.
func (w *World) NewEntity() Entity {
	e := w.next
	w.next++
	return e
}

func (w *World) allocated(e Entity) bool {
	return e < w.next
}

// DestroyEntity removes every component attached to e right away.
// Use DestroyEntityDeferred from inside systems.
func (w *World) DestroyEntity(e Entity) {
	removed := w.registry.RemoveAll(e)
	w.logger.Trace().
		Uint32("entity_id", uint32(e)).
		Int("components_removed", removed).
		Msg("entity destroyed")
}

// DestroyEntityDeferred queues e for destruction at the next FlushDeferredRemovals.
func (w *World) DestroyEntityDeferred(e Entity) {
	w.opQueue.EnqueueDestroy(e)
}

// FlushDeferredRemovals applies queued component removals, then destroys queued entities in the
// order they were queued, and empties the queue.
func (w *World) FlushDeferredRemovals() {
	w.processOperationQueue()
}

// AdvanceTick runs every TickBegin system, then every Tick system, then every TickEnd system,
// each phase in registration order.
func (w *World) AdvanceTick() {
	tickStart := time.Now()
	for _, phase := range schedule {
		w.runPhase(phase)
	}
	w.ticks++
	statsd.EmitTickStat(tickStart, "all_phases")
}

func (w *World) runPhase(phase Phase) {
	phaseStart := time.Now()
	for _, d := range w.phases[phase] {
		w.runSystem(phase, d)
	}
	statsd.EmitTickStat(phaseStart, phase.String())
}

func (w *World) runSystem(phase Phase, d dispatcher) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error().
				Str("system", d.name()).
				Str("phase", phase.String()).
				Uint64("tick", w.ticks).
				Interface("panic", r).
				Msg("system panicked")
			panic(r)
		}
	}()

	systemStart := time.Now()
	d.run(w)
	statsd.EmitSystemStat(systemStart, d.name(), phase.String())

	w.logger.Trace().
		Str("system", d.name()).
		Str("phase", phase.String()).
		Uint64("tick", w.ticks).
		Dur("duration", time.Since(systemStart)).
		Msg("system ran")
}

func (w *World) register(phase Phase, d dispatcher) {
	if !phase.valid() {
		panic(InvalidPhaseError{Phase: phase})
	}
	w.phases[phase] = append(w.phases[phase], d)
	w.logger.Debug().
		Str("system", d.name()).
		Str("phase", phase.String()).
		Msg("system registered")
}

// Ticks reports how many times AdvanceTick has completed.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Systems lists registered system names in the order AdvanceTick runs them.
func (w *World) Systems() []string {
	names := make([]string, 0)
	for _, phase := range schedule {
		for _, d := range w.phases[phase] {
			names = append(names, d.name())
		}
	}
	return names
}

func (w *World) Registry() *Registry {
	return w.registry
}

func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

// noCopy trips go vet's copylocks check when a World is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
