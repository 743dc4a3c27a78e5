package depot

import "github.com/TheBitDrifter/depot/typeid"

type factory struct{}

var Factory factory

func (f factory) NewWorld(opts ...WorldOption) *World {
	return newWorld(opts...)
}

func (f factory) NewFamily(name string) *typeid.Family {
	return typeid.NewFamily(name)
}

// FactoryNewStore creates a standalone store, outside of any World. Standalone stores have no
// signature bit and fire no events.
func FactoryNewStore[T any]() *Store[T] {
	return newStore[T](Config.StoreCapacity, Config.logger())
}
