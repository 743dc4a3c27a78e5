package depot

import (
	"sort"

	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/rs/zerolog"
)

func (w *World) loadComponentIntoArrayLogger(sto AnyStore, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	if id, ok := w.registry.ComponentID(sto); ok {
		dictLogger = dictLogger.Uint32("component_id", id)
	}
	dictLogger = dictLogger.Str("component_name", sto.Type().String())
	dictLogger = dictLogger.Int("count", sto.Len())
	return arrayLogger.Dict(dictLogger)
}

func (w *World) sortedStores() []AnyStore {
	stores := iter_util.Collect(w.registry.Stores())
	sort.SliceStable(stores, func(i, j int) bool {
		a, _ := w.registry.ComponentID(stores[i])
		b, _ := w.registry.ComponentID(stores[j])
		return a < b
	})
	return stores
}

// LogComponents logs every component store the world has materialized.
func (w *World) LogComponents(level zerolog.Level) {
	stores := w.sortedStores()
	event := w.logger.WithLevel(level)
	event.Int("total_components", len(stores))
	arrayLogger := zerolog.Arr()
	for _, sto := range stores {
		arrayLogger = w.loadComponentIntoArrayLogger(sto, arrayLogger)
	}
	event.Array("components", arrayLogger).Send()
}

// LogSystems logs registered systems in run order.
func (w *World) LogSystems(level zerolog.Level) {
	event := w.logger.WithLevel(level)
	arrayLogger := zerolog.Arr()
	total := 0
	for _, phase := range schedule {
		for _, d := range w.phases[phase] {
			arrayLogger = arrayLogger.Dict(zerolog.Dict().
				Str("system", d.name()).
				Str("phase", phase.String()))
			total++
		}
	}
	event.Int("total_systems", total).Array("systems", arrayLogger).Send()
}

// LogEntity logs the components attached to e.
func (w *World) LogEntity(level zerolog.Level, e Entity) {
	event := w.logger.WithLevel(level)
	arrayLogger := zerolog.Arr()
	for _, sto := range w.sortedStores() {
		if sto.Contains(e) {
			arrayLogger = w.loadComponentIntoArrayLogger(sto, arrayLogger)
		}
	}
	event.Array("components", arrayLogger)
	event.Uint32("entity_id", uint32(e)).Send()
}
