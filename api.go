package depot

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

// AnyStore is the type-erased face of a Store[T]. The registry holds every store behind it so
// that operations which do not care about T (destruction, intersection lookups, diagnostics)
// can reach all of them.
type AnyStore interface {
	Type() reflect.Type
	ElementType() table.ElementType
	Contains(Entity) bool
	IndexOf(Entity) (int, bool)
	EntityAt(index int) Entity
	Remove(Entity) bool
	Len() int

	signatureBit() (uint32, bool)
}

// Named lets a system choose the name used in logs and metrics.
type Named interface {
	Name() string
}

// Observer lets a system mark slots of its view as observed: an entity missing an observed
// component still produces a row, with a nil pointer in that slot. Slot 0 is the anchor and is
// always required.
type Observer interface {
	Observes() []int
}

type dispatcher interface {
	name() string
	run(w *World)
}

var (
	_ AnyStore = &Store[struct{}]{}
)
