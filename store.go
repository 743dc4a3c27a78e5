package depot

import (
	"iter"
	"math"
	"reflect"
	"sync"

	"github.com/TheBitDrifter/table"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// absent marks an unused sparse slot.
const absent = math.MaxUint32

// absentIndex is the dense index reported for an observed component an entity does not own.
const absentIndex = -1

// Store is the sparse set holding every T in a World.
//
// Values live packed in a dense slice. sparse maps an entity to its dense index and owners maps
// a dense index back to its entity; both are kept as exact inverses. Removal moves the last
// value into the freed slot, so any pointer or index handed out earlier may refer to a
// different entity afterwards.
type Store[T any] struct {
	dense  []T
	owners []Entity
	sparse []uint32

	// generation changes whenever existing values may have moved.
	generation uint64

	elem   table.ElementType
	bit    uint32
	hasBit bool
	events storeEvents
	logger zerolog.Logger
}

// Ref is a pointer into a Store together with the dense index it was taken from.
type Ref[T any] struct {
	Index int
	Value *T

	generation uint64
}

type storeEvents struct {
	onInsert func(Entity)
	onRemove func(Entity)
}

func newStore[T any](capacity int, logger zerolog.Logger) *Store[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Store[T]{
		dense:  make([]T, 0, capacity),
		owners: make([]Entity, 0, capacity),
		elem:   elementTypeFor[T](),
		logger: logger,
	}
}

// elementTypes holds one table.ElementType per Go type for the whole process.
var elementTypes sync.Map // reflect.Type -> table.ElementType

func elementTypeFor[T any]() table.ElementType {
	typ := reflect.TypeFor[T]()
	if elem, ok := elementTypes.Load(typ); ok {
		return elem.(table.ElementType)
	}
	elem, _ := elementTypes.LoadOrStore(typ, table.FactoryNewElementType[T]())
	return elem.(table.ElementType)
}

// Insert attaches value to e. It reports false, changing nothing, when e already owns a T.
func (s *Store[T]) Insert(e Entity, value T) bool {
	if !e.Valid() || s.Contains(e) {
		return false
	}
	s.commit(e, value)
	return true
}

// Emplace attaches the value built by ctor to e. ctor only runs when e does not own a T yet.
// A failing or panicking ctor is reported as a ConstructionError and leaves the store exactly
// as it was.
func (s *Store[T]) Emplace(e Entity, ctor func() (T, error)) (bool, error) {
	if !e.Valid() || s.Contains(e) {
		return false, nil
	}
	value, err := construct(ctor)
	if err != nil {
		cerr := ConstructionError{Type: s.Type(), Entity: e, Err: err}
		s.logger.Error().
			Err(err).
			Uint32("entity_id", uint32(e)).
			Str("component_name", s.Type().String()).
			Msg("component construction failed")
		return false, cerr
	}
	s.commit(e, value)
	return true, nil
}

func construct[T any](ctor func() (T, error)) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value = zero
			err = eris.Errorf("constructor panicked: %v", r)
		}
	}()
	return ctor()
}

func (s *Store[T]) commit(e Entity, value T) {
	if int(e) >= len(s.sparse) {
		s.growSparse(int(e) + 1)
	}
	before := cap(s.dense)
	s.sparse[e] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	s.owners = append(s.owners, e)
	if cap(s.dense) != before {
		s.generation++
	}
	if s.events.onInsert != nil {
		s.events.onInsert(e)
	}
}

func (s *Store[T]) growSparse(needed int) {
	// Grow by doubling or to needed, whichever is larger
	newLen := max(needed, 2*len(s.sparse))
	grown := make([]uint32, newLen)
	copy(grown, s.sparse)
	for i := len(s.sparse); i < newLen; i++ {
		grown[i] = absent
	}
	s.sparse = grown
}

// Remove detaches e's T, if any, by moving the last value into its slot.
func (s *Store[T]) Remove(e Entity) bool {
	index, ok := s.IndexOf(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	if index != last {
		moved := s.owners[last]
		s.dense[index] = s.dense[last]
		s.owners[index] = moved
		s.sparse[moved] = uint32(index)
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]
	s.sparse[e] = absent
	s.generation++

	if s.events.onRemove != nil {
		s.events.onRemove(e)
	}
	return true
}

// Get returns e's T, or nil.
func (s *Store[T]) Get(e Entity) *T {
	index, ok := s.IndexOf(e)
	if !ok {
		return nil
	}
	return &s.dense[index]
}

// GetByIndex returns the value at a dense index, or nil when out of range.
func (s *Store[T]) GetByIndex(index int) *T {
	if index < 0 || index >= len(s.dense) {
		return nil
	}
	return &s.dense[index]
}

// RefOf returns e's T along with its dense index.
func (s *Store[T]) RefOf(e Entity) (Ref[T], bool) {
	index, ok := s.IndexOf(e)
	if !ok {
		return Ref[T]{}, false
	}
	return s.RefAt(index)
}

func (s *Store[T]) RefAt(index int) (Ref[T], bool) {
	if index < 0 || index >= len(s.dense) {
		return Ref[T]{}, false
	}
	return Ref[T]{Index: index, Value: &s.dense[index], generation: s.generation}, true
}

// EntityAt returns the owner of the value at a dense index, or InvalidEntity.
func (s *Store[T]) EntityAt(index int) Entity {
	if index < 0 || index >= len(s.owners) {
		return InvalidEntity
	}
	return s.owners[index]
}

// EntityOf returns the owner of the value ref points at. A ref taken before a removal or a
// reallocation of the store resolves to InvalidEntity.
func (s *Store[T]) EntityOf(ref Ref[T]) Entity {
	if ref.Value == nil || ref.generation != s.generation {
		return InvalidEntity
	}
	if ref.Index < 0 || ref.Index >= len(s.dense) || &s.dense[ref.Index] != ref.Value {
		return InvalidEntity
	}
	return s.owners[ref.Index]
}

func (s *Store[T]) IndexOf(e Entity) (int, bool) {
	if int(e) >= len(s.sparse) {
		return 0, false
	}
	index := s.sparse[e]
	if index == absent {
		return 0, false
	}
	return int(index), true
}

func (s *Store[T]) Contains(e Entity) bool {
	_, ok := s.IndexOf(e)
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Values is the dense array itself. It is only valid until the next insert or remove.
func (s *Store[T]) Values() []T {
	return s.dense
}

// Entities lists owners in dense order. Entities()[i] owns Values()[i].
func (s *Store[T]) Entities() []Entity {
	return s.owners
}

// All yields every (owner, value) pair in dense order.
func (s *Store[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := range s.dense {
			if !yield(s.owners[i], &s.dense[i]) {
				return
			}
		}
	}
}

func (s *Store[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *Store[T]) ElementType() table.ElementType {
	return s.elem
}

func (s *Store[T]) signatureBit() (uint32, bool) {
	return s.bit, s.hasBit
}
