package depot

// Components are plain Go values. Any type can be attached to an entity; the World creates the
// store for a type the first time that type is used.

// AddComponent attaches value to e. It reports false, changing nothing, if e already has a T or
// was never allocated by w.
func AddComponent[T any](w *World, e Entity, value T) bool {
	if !w.allocated(e) {
		return false
	}
	return StoreFor[T](w.registry).Insert(e, value)
}

// EmplaceComponent attaches the value built by ctor to e. See Store.Emplace.
func EmplaceComponent[T any](w *World, e Entity, ctor func() (T, error)) (bool, error) {
	if !w.allocated(e) {
		return false, nil
	}
	return StoreFor[T](w.registry).Emplace(e, ctor)
}

// RemoveComponent detaches e's T. Removing an absent component is a no-op.
func RemoveComponent[T any](w *World, e Entity) bool {
	return StoreFor[T](w.registry).Remove(e)
}

// RemoveComponentDeferred queues the removal of e's T for the next FlushDeferredRemovals.
func RemoveComponentDeferred[T any](w *World, e Entity) {
	w.opQueue.EnqueueComponentOp(opRemoveComponent, StoreFor[T](w.registry), e)
}

// GetComponent returns e's T, or nil. The pointer is invalidated by any insert or remove of T.
func GetComponent[T any](w *World, e Entity) *T {
	return StoreFor[T](w.registry).Get(e)
}

func HasComponent[T any](w *World, e Entity) bool {
	return StoreFor[T](w.registry).Contains(e)
}

// AllOf returns every T in the world, packed, with no entity association.
func AllOf[T any](w *World) []T {
	return StoreFor[T](w.registry).Values()
}

// EntityOf returns the owner of the index-th T, or InvalidEntity.
func EntityOf[T any](w *World, index int) Entity {
	return StoreFor[T](w.registry).EntityAt(index)
}

// RefOf returns e's T with the index needed to resolve it back with EntityOfRef.
func RefOf[T any](w *World, e Entity) (Ref[T], bool) {
	return StoreFor[T](w.registry).RefOf(e)
}

// EntityOfRef returns the owner of the T ref points at, or InvalidEntity if the ref is stale.
func EntityOfRef[T any](w *World, ref Ref[T]) Entity {
	return StoreFor[T](w.registry).EntityOf(ref)
}
