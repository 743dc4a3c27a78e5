// Package typeid assigns small, dense numeric identities to Go types.
//
// Identities are scoped to a Family: the first type seen by a family gets 0, the next 1, and so
// on. Two families never share numbering state, so the same type may hold different ids in
// different families and different types may hold equal ids across families.
//
//	components := typeid.NewFamily("components")
//	pos := typeid.Of[Position](components) // 0
//	vel := typeid.Of[Velocity](components) // 1
//	again := typeid.Of[Position](components) // 0
package typeid

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Family is a numbering context for type identities.
// It is safe for concurrent use.
type Family struct {
	name string

	// next is the lowest unused id.
	next atomic.Uint32

	ids sync.Map // reflect.Type -> uint32

	mu    sync.Mutex
	types []reflect.Type
}

// NewFamily creates an empty family. The name is only used for diagnostics.
func NewFamily(name string) *Family {
	return &Family{name: name}
}

// Of returns the identity of T within the family, allocating the next unused id on first use.
func Of[T any](f *Family) uint32 {
	return f.ID(reflect.TypeFor[T]())
}

// ID returns the identity of typ within the family, allocating it on first use.
func (f *Family) ID(typ reflect.Type) uint32 {
	if id, ok := f.ids.Load(typ); ok {
		return id.(uint32)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Another goroutine may have won the race for this type.
	if id, ok := f.ids.Load(typ); ok {
		return id.(uint32)
	}
	id := f.next.Add(1) - 1
	f.types = append(f.types, typ)
	f.ids.Store(typ, id)
	return id
}

// Lookup returns the identity of typ without allocating one.
func (f *Family) Lookup(typ reflect.Type) (uint32, bool) {
	id, ok := f.ids.Load(typ)
	if !ok {
		return 0, false
	}
	return id.(uint32), true
}

// TypeOf reverses ID.
func (f *Family) TypeOf(id uint32) (reflect.Type, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(id) >= len(f.types) {
		return nil, false
	}
	return f.types[id], true
}

// Len reports how many identities have been allocated.
func (f *Family) Len() int {
	return int(f.next.Load())
}

func (f *Family) Name() string {
	return f.name
}
