package depot

import "github.com/TheBitDrifter/mask"

// Views and ForEach scans share one algorithm. The first component type is the anchor: its
// store is walked in dense order, and every other slot is resolved by looking the anchor's
// entity up in that slot's store. A missing required component drops the whole row; a missing
// observed component keeps the row with an absent slot. Row order is therefore the anchor's
// dense order, not entity creation order. Where filters are checked against the entity's
// signature before any slot is resolved.
//
// A view is a snapshot. Inserting or removing components after it was built does not update
// it, and may leave its rows pointing at moved values; rebuild the view instead.

type viewOptions struct {
	observed []int
	filters  []Filter
}

// ViewOption configures how a view or ForEach resolves its slots.
type ViewOption func(*viewOptions)

// Observe marks slots (0-based, in type-parameter order) as observed. Slot 0 cannot be
// observed.
func Observe(slots ...int) ViewOption {
	return func(o *viewOptions) {
		o.observed = append(o.observed, slots...)
	}
}

type slot struct {
	store    AnyStore
	observed bool
}

// plan is a resolved set of slots plus the compiled Where filters.
type plan struct {
	slots []slot
	where []predicate
}

func (w *World) slots(opts []ViewOption, stores ...AnyStore) plan {
	var o viewOptions
	for _, opt := range opts {
		opt(&o)
	}
	checkObserved(o.observed, len(stores))

	p := plan{slots: make([]slot, len(stores))}
	for i, sto := range stores {
		p.slots[i].store = sto
	}
	for _, i := range o.observed {
		p.slots[i].observed = true
	}
	for _, f := range o.filters {
		p.where = append(p.where, f.compile(w.registry))
	}
	return p
}

func admits(where []predicate, e Entity, signature mask.Mask) bool {
	for _, match := range where {
		if !match(e, signature) {
			return false
		}
	}
	return true
}

func checkObserved(observed []int, arity int) {
	for _, i := range observed {
		if i == 0 {
			panic(ObservedAnchorError{})
		}
		if i < 0 || i >= arity {
			panic(SlotRangeError{Slot: i, Arity: arity})
		}
	}
}

// scan calls yield with one dense index per slot for every matching anchor row. row is reused
// between calls.
func (w *World) scan(p plan, yield func(e Entity, row []int) bool) {
	slots := p.slots
	anchor := slots[0].store

	// Slots whose store has no signature bit are only checked by resolve.
	var required mask.Mask
	var prefilter bool
	for _, s := range slots {
		if s.observed {
			continue
		}
		if bit, ok := s.store.signatureBit(); ok {
			required.Mark(bit)
			prefilter = true
		}
	}

	row := make([]int, len(slots))
	for i := 0; i < anchor.Len(); i++ {
		e := anchor.EntityAt(i)
		signature := w.registry.Signature(e)
		if prefilter && !signature.ContainsAll(required) {
			continue
		}
		if !admits(p.where, e, signature) {
			continue
		}
		row[0] = i
		if !resolve(slots, e, row) {
			continue
		}
		if !yield(e, row) {
			return
		}
	}
}

func resolve(slots []slot, e Entity, row []int) bool {
	for j := 1; j < len(slots); j++ {
		index, ok := slots[j].store.IndexOf(e)
		switch {
		case ok:
			row[j] = index
		case slots[j].observed:
			row[j] = absentIndex
		default:
			return false
		}
	}
	return true
}

// view holds the parallel index lists shared by View1..View5: indices[slot][row].
type view struct {
	world    *World
	observed []bool
	entities []Entity
	indices  [][]int
	where    []predicate
}

func newView(w *World, p plan) view {
	v := view{
		world:    w,
		observed: make([]bool, len(p.slots)),
		indices:  make([][]int, len(p.slots)),
		where:    p.where,
	}
	for i, s := range p.slots {
		v.observed[i] = s.observed
	}
	w.scan(p, func(e Entity, row []int) bool {
		v.entities = append(v.entities, e)
		for j, index := range row {
			v.indices[j] = append(v.indices[j], index)
		}
		return true
	})
	return v
}

// Len reports the number of rows.
func (v *view) Len() int {
	return len(v.entities)
}

// Entities lists the entity of every row, in row order.
func (v *view) Entities() []Entity {
	return v.entities
}

// World returns the world the view was built from.
func (v *view) World() *World {
	return v.world
}

func (v *view) satisfied(slot int, found bool) bool {
	return found || v.observed[slot]
}

func (v *view) admits(e Entity) bool {
	return admits(v.where, e, v.world.registry.Signature(e))
}
