package depot

import (
	"iter"

	"github.com/TheBitDrifter/depot/typeid"
	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
)

// ComponentFamily numbers component types for every registry that is not given its own family.
var ComponentFamily = typeid.NewFamily("component")

// Registry maps component types to their stores. Stores are created on first use and kept in a
// table indexed by the type's identity within the registry's family.
//
// The registry also tracks a signature per entity: one bit per store the entity has a value in.
// Bits are handed out in store creation order. Stores created after the mask is full get no bit;
// scans and filters fall back to looking the entity up in those stores directly.
type Registry struct {
	family     *typeid.Family
	stores     []AnyStore
	count      int
	signatures []mask.Mask
	capacity   int
	logger     zerolog.Logger
}

func newRegistry(family *typeid.Family, capacity int, logger zerolog.Logger) *Registry {
	return &Registry{
		family:   family,
		capacity: capacity,
		logger:   logger,
	}
}

// StoreFor returns the store for T, creating it on first use.
func StoreFor[T any](r *Registry) *Store[T] {
	id := typeid.Of[T](r.family)
	if int(id) < len(r.stores) && r.stores[id] != nil {
		return r.stores[id].(*Store[T])
	}
	if int(id) >= len(r.stores) {
		grown := make([]AnyStore, int(id)+1)
		copy(grown, r.stores)
		r.stores = grown
	}

	sto := newStore[T](r.capacity, r.logger)
	if r.count < int(mask.MaxBits) {
		bit := uint32(r.count)
		sto.bit, sto.hasBit = bit, true
		sto.events = storeEvents{
			onInsert: func(e Entity) { r.mark(e, bit) },
			onRemove: func(e Entity) { r.unmark(e, bit) },
		}
	}
	r.stores[id] = sto
	r.count++

	r.logger.Debug().
		Uint32("component_id", id).
		Str("component_name", sto.Type().String()).
		Bool("signature_bit", sto.hasBit).
		Msg("component store created")
	return sto
}

// Lookup returns the store for T without creating it.
func Lookup[T any](r *Registry) (*Store[T], bool) {
	id := typeid.Of[T](r.family)
	if int(id) >= len(r.stores) || r.stores[id] == nil {
		return nil, false
	}
	return r.stores[id].(*Store[T]), true
}

// RemoveAll removes e from every store that holds it and reports how many values were removed.
func (r *Registry) RemoveAll(e Entity) int {
	removed := 0
	for _, sto := range r.stores {
		if sto == nil {
			continue
		}
		if sto.Contains(e) && sto.Remove(e) {
			removed++
		}
	}
	return removed
}

// Signature returns the set of store bits e currently owns a value in. Stores without a bit are
// not reflected.
func (r *Registry) Signature(e Entity) mask.Mask {
	if int(e) >= len(r.signatures) {
		return mask.Mask{}
	}
	return r.signatures[e]
}

// Stores yields every materialized store in identity order.
func (r *Registry) Stores() iter.Seq[AnyStore] {
	return func(yield func(AnyStore) bool) {
		for _, sto := range r.stores {
			if sto == nil {
				continue
			}
			if !yield(sto) {
				return
			}
		}
	}
}

// ComponentID returns the family identity of a store's component type.
func (r *Registry) ComponentID(sto AnyStore) (uint32, bool) {
	return r.family.Lookup(sto.Type())
}

func (r *Registry) Family() *typeid.Family {
	return r.family
}

// Len reports how many stores have been materialized.
func (r *Registry) Len() int {
	return r.count
}

func (r *Registry) mark(e Entity, bit uint32) {
	if int(e) >= len(r.signatures) {
		newLen := max(int(e)+1, 2*len(r.signatures))
		grown := make([]mask.Mask, newLen)
		copy(grown, r.signatures)
		r.signatures = grown
	}
	r.signatures[e].Mark(bit)
}

func (r *Registry) unmark(e Entity, bit uint32) {
	if int(e) >= len(r.signatures) {
		return
	}
	r.signatures[e].Unmark(bit)
}
