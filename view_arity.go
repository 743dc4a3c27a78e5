package depot

import "iter"

// View1..View5 and ForEach1..ForEach5 differ only in arity; see view.go for the shared scan.

// Row1 is one row of a View1. Pointers for observed slots the entity lacks are nil.
type Row1[T1 any] struct {
	Entity Entity
	A      *T1
}

// View1 snapshots every entity owning a T1.
type View1[T1 any] struct {
	view
	s1 *Store[T1]
}

func NewView1[T1 any](w *World, opts ...ViewOption) *View1[T1] {
	v := &View1[T1]{
		s1: StoreFor[T1](w.registry),
	}
	v.view = newView(w, w.slots(opts, v.s1))
	return v
}

// At returns row i, 0 <= i < Len().
func (v *View1[T1]) At(i int) Row1[T1] {
	return Row1[T1]{
		Entity: v.entities[i],
		A:      v.s1.GetByIndex(v.indices[0][i]),
	}
}

func (v *View1[T1]) All() iter.Seq2[int, Row1[T1]] {
	return func(yield func(int, Row1[T1]) bool) {
		for i := range v.entities {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

func (v *View1[T1]) Each(fn func(Entity, *T1)) {
	for i := range v.entities {
		row := v.At(i)
		fn(row.Entity, row.A)
	}
}

// ByEntity resolves e directly against the stores rather than the snapshot.
func (v *View1[T1]) ByEntity(e Entity) (Row1[T1], bool) {
	row := Row1[T1]{
		Entity: e,
		A:      v.s1.Get(e),
	}
	if !v.admits(e) ||
		!v.satisfied(0, row.A != nil) {
		return Row1[T1]{}, false
	}
	return row, true
}

// ForEach1 runs fn for every row a View1 would hold, without building the view.
func ForEach1[T1 any](w *World, fn func(Entity, *T1), opts ...ViewOption) {
	s1 := StoreFor[T1](w.registry)
	w.scan(w.slots(opts, s1), func(e Entity, row []int) bool {
		fn(e, s1.GetByIndex(row[0]))
		return true
	})
}

// Row2 is one row of a View2. Pointers for observed slots the entity lacks are nil.
type Row2[T1, T2 any] struct {
	Entity Entity
	A      *T1
	B      *T2
}

// View2 snapshots every entity owning a T1 and a T2, minus the slots marked
// observed, which may be absent.
type View2[T1, T2 any] struct {
	view
	s1 *Store[T1]
	s2 *Store[T2]
}

func NewView2[T1, T2 any](w *World, opts ...ViewOption) *View2[T1, T2] {
	v := &View2[T1, T2]{
		s1: StoreFor[T1](w.registry),
		s2: StoreFor[T2](w.registry),
	}
	v.view = newView(w, w.slots(opts, v.s1, v.s2))
	return v
}

// At returns row i, 0 <= i < Len().
func (v *View2[T1, T2]) At(i int) Row2[T1, T2] {
	return Row2[T1, T2]{
		Entity: v.entities[i],
		A:      v.s1.GetByIndex(v.indices[0][i]),
		B:      v.s2.GetByIndex(v.indices[1][i]),
	}
}

func (v *View2[T1, T2]) All() iter.Seq2[int, Row2[T1, T2]] {
	return func(yield func(int, Row2[T1, T2]) bool) {
		for i := range v.entities {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

func (v *View2[T1, T2]) Each(fn func(Entity, *T1, *T2)) {
	for i := range v.entities {
		row := v.At(i)
		fn(row.Entity, row.A, row.B)
	}
}

// ByEntity resolves e directly against the stores rather than the snapshot.
func (v *View2[T1, T2]) ByEntity(e Entity) (Row2[T1, T2], bool) {
	row := Row2[T1, T2]{
		Entity: e,
		A:      v.s1.Get(e),
		B:      v.s2.Get(e),
	}
	if !v.admits(e) ||
		!v.satisfied(0, row.A != nil) ||
		!v.satisfied(1, row.B != nil) {
		return Row2[T1, T2]{}, false
	}
	return row, true
}

// ForEach2 runs fn for every row a View2 would hold, without building the view.
func ForEach2[T1, T2 any](w *World, fn func(Entity, *T1, *T2), opts ...ViewOption) {
	s1 := StoreFor[T1](w.registry)
	s2 := StoreFor[T2](w.registry)
	w.scan(w.slots(opts, s1, s2), func(e Entity, row []int) bool {
		fn(e, s1.GetByIndex(row[0]), s2.GetByIndex(row[1]))
		return true
	})
}

// Row3 is one row of a View3. Pointers for observed slots the entity lacks are nil.
type Row3[T1, T2, T3 any] struct {
	Entity Entity
	A      *T1
	B      *T2
	C      *T3
}

// View3 snapshots every entity owning a T1, a T2 and a T3, minus the slots marked
// observed, which may be absent.
type View3[T1, T2, T3 any] struct {
	view
	s1 *Store[T1]
	s2 *Store[T2]
	s3 *Store[T3]
}

func NewView3[T1, T2, T3 any](w *World, opts ...ViewOption) *View3[T1, T2, T3] {
	v := &View3[T1, T2, T3]{
		s1: StoreFor[T1](w.registry),
		s2: StoreFor[T2](w.registry),
		s3: StoreFor[T3](w.registry),
	}
	v.view = newView(w, w.slots(opts, v.s1, v.s2, v.s3))
	return v
}

// At returns row i, 0 <= i < Len().
func (v *View3[T1, T2, T3]) At(i int) Row3[T1, T2, T3] {
	return Row3[T1, T2, T3]{
		Entity: v.entities[i],
		A:      v.s1.GetByIndex(v.indices[0][i]),
		B:      v.s2.GetByIndex(v.indices[1][i]),
		C:      v.s3.GetByIndex(v.indices[2][i]),
	}
}

func (v *View3[T1, T2, T3]) All() iter.Seq2[int, Row3[T1, T2, T3]] {
	return func(yield func(int, Row3[T1, T2, T3]) bool) {
		for i := range v.entities {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

func (v *View3[T1, T2, T3]) Each(fn func(Entity, *T1, *T2, *T3)) {
	for i := range v.entities {
		row := v.At(i)
		fn(row.Entity, row.A, row.B, row.C)
	}
}

// ByEntity resolves e directly against the stores rather than the snapshot.
func (v *View3[T1, T2, T3]) ByEntity(e Entity) (Row3[T1, T2, T3], bool) {
	row := Row3[T1, T2, T3]{
		Entity: e,
		A:      v.s1.Get(e),
		B:      v.s2.Get(e),
		C:      v.s3.Get(e),
	}
	if !v.admits(e) ||
		!v.satisfied(0, row.A != nil) ||
		!v.satisfied(1, row.B != nil) ||
		!v.satisfied(2, row.C != nil) {
		return Row3[T1, T2, T3]{}, false
	}
	return row, true
}

// ForEach3 runs fn for every row a View3 would hold, without building the view.
func ForEach3[T1, T2, T3 any](w *World, fn func(Entity, *T1, *T2, *T3), opts ...ViewOption) {
	s1 := StoreFor[T1](w.registry)
	s2 := StoreFor[T2](w.registry)
	s3 := StoreFor[T3](w.registry)
	w.scan(w.slots(opts, s1, s2, s3), func(e Entity, row []int) bool {
		fn(e, s1.GetByIndex(row[0]), s2.GetByIndex(row[1]), s3.GetByIndex(row[2]))
		return true
	})
}

// Row4 is one row of a View4. Pointers for observed slots the entity lacks are nil.
type Row4[T1, T2, T3, T4 any] struct {
	Entity Entity
	A      *T1
	B      *T2
	C      *T3
	D      *T4
}

// View4 snapshots every entity owning a T1, a T2, a T3 and a T4, minus the slots marked
// observed, which may be absent.
type View4[T1, T2, T3, T4 any] struct {
	view
	s1 *Store[T1]
	s2 *Store[T2]
	s3 *Store[T3]
	s4 *Store[T4]
}

func NewView4[T1, T2, T3, T4 any](w *World, opts ...ViewOption) *View4[T1, T2, T3, T4] {
	v := &View4[T1, T2, T3, T4]{
		s1: StoreFor[T1](w.registry),
		s2: StoreFor[T2](w.registry),
		s3: StoreFor[T3](w.registry),
		s4: StoreFor[T4](w.registry),
	}
	v.view = newView(w, w.slots(opts, v.s1, v.s2, v.s3, v.s4))
	return v
}

// At returns row i, 0 <= i < Len().
func (v *View4[T1, T2, T3, T4]) At(i int) Row4[T1, T2, T3, T4] {
	return Row4[T1, T2, T3, T4]{
		Entity: v.entities[i],
		A:      v.s1.GetByIndex(v.indices[0][i]),
		B:      v.s2.GetByIndex(v.indices[1][i]),
		C:      v.s3.GetByIndex(v.indices[2][i]),
		D:      v.s4.GetByIndex(v.indices[3][i]),
	}
}

func (v *View4[T1, T2, T3, T4]) All() iter.Seq2[int, Row4[T1, T2, T3, T4]] {
	return func(yield func(int, Row4[T1, T2, T3, T4]) bool) {
		for i := range v.entities {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

func (v *View4[T1, T2, T3, T4]) Each(fn func(Entity, *T1, *T2, *T3, *T4)) {
	for i := range v.entities {
		row := v.At(i)
		fn(row.Entity, row.A, row.B, row.C, row.D)
	}
}

// ByEntity resolves e directly against the stores rather than the snapshot.
func (v *View4[T1, T2, T3, T4]) ByEntity(e Entity) (Row4[T1, T2, T3, T4], bool) {
	row := Row4[T1, T2, T3, T4]{
		Entity: e,
		A:      v.s1.Get(e),
		B:      v.s2.Get(e),
		C:      v.s3.Get(e),
		D:      v.s4.Get(e),
	}
	if !v.admits(e) ||
		!v.satisfied(0, row.A != nil) ||
		!v.satisfied(1, row.B != nil) ||
		!v.satisfied(2, row.C != nil) ||
		!v.satisfied(3, row.D != nil) {
		return Row4[T1, T2, T3, T4]{}, false
	}
	return row, true
}

// ForEach4 runs fn for every row a View4 would hold, without building the view.
func ForEach4[T1, T2, T3, T4 any](w *World, fn func(Entity, *T1, *T2, *T3, *T4), opts ...ViewOption) {
	s1 := StoreFor[T1](w.registry)
	s2 := StoreFor[T2](w.registry)
	s3 := StoreFor[T3](w.registry)
	s4 := StoreFor[T4](w.registry)
	w.scan(w.slots(opts, s1, s2, s3, s4), func(e Entity, row []int) bool {
		fn(e, s1.GetByIndex(row[0]), s2.GetByIndex(row[1]), s3.GetByIndex(row[2]), s4.GetByIndex(row[3]))
		return true
	})
}

// Row5 is one row of a View5. Pointers for observed slots the entity lacks are nil.
type Row5[T1, T2, T3, T4, T5 any] struct {
	Entity Entity
	A      *T1
	B      *T2
	C      *T3
	D      *T4
	E      *T5
}

// View5 snapshots every entity owning a T1, a T2, a T3, a T4 and a T5, minus the slots marked
// observed, which may be absent.
type View5[T1, T2, T3, T4, T5 any] struct {
	view
	s1 *Store[T1]
	s2 *Store[T2]
	s3 *Store[T3]
	s4 *Store[T4]
	s5 *Store[T5]
}

func NewView5[T1, T2, T3, T4, T5 any](w *World, opts ...ViewOption) *View5[T1, T2, T3, T4, T5] {
	v := &View5[T1, T2, T3, T4, T5]{
		s1: StoreFor[T1](w.registry),
		s2: StoreFor[T2](w.registry),
		s3: StoreFor[T3](w.registry),
		s4: StoreFor[T4](w.registry),
		s5: StoreFor[T5](w.registry),
	}
	v.view = newView(w, w.slots(opts, v.s1, v.s2, v.s3, v.s4, v.s5))
	return v
}

// At returns row i, 0 <= i < Len().
func (v *View5[T1, T2, T3, T4, T5]) At(i int) Row5[T1, T2, T3, T4, T5] {
	return Row5[T1, T2, T3, T4, T5]{
		Entity: v.entities[i],
		A:      v.s1.GetByIndex(v.indices[0][i]),
		B:      v.s2.GetByIndex(v.indices[1][i]),
		C:      v.s3.GetByIndex(v.indices[2][i]),
		D:      v.s4.GetByIndex(v.indices[3][i]),
		E:      v.s5.GetByIndex(v.indices[4][i]),
	}
}

func (v *View5[T1, T2, T3, T4, T5]) All() iter.Seq2[int, Row5[T1, T2, T3, T4, T5]] {
	return func(yield func(int, Row5[T1, T2, T3, T4, T5]) bool) {
		for i := range v.entities {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

func (v *View5[T1, T2, T3, T4, T5]) Each(fn func(Entity, *T1, *T2, *T3, *T4, *T5)) {
	for i := range v.entities {
		row := v.At(i)
		fn(row.Entity, row.A, row.B, row.C, row.D, row.E)
	}
}

// ByEntity resolves e directly against the stores rather than the snapshot.
func (v *View5[T1, T2, T3, T4, T5]) ByEntity(e Entity) (Row5[T1, T2, T3, T4, T5], bool) {
	row := Row5[T1, T2, T3, T4, T5]{
		Entity: e,
		A:      v.s1.Get(e),
		B:      v.s2.Get(e),
		C:      v.s3.Get(e),
		D:      v.s4.Get(e),
		E:      v.s5.Get(e),
	}
	if !v.admits(e) ||
		!v.satisfied(0, row.A != nil) ||
		!v.satisfied(1, row.B != nil) ||
		!v.satisfied(2, row.C != nil) ||
		!v.satisfied(3, row.D != nil) ||
		!v.satisfied(4, row.E != nil) {
		return Row5[T1, T2, T3, T4, T5]{}, false
	}
	return row, true
}

// ForEach5 runs fn for every row a View5 would hold, without building the view.
func ForEach5[T1, T2, T3, T4, T5 any](w *World, fn func(Entity, *T1, *T2, *T3, *T4, *T5), opts ...ViewOption) {
	s1 := StoreFor[T1](w.registry)
	s2 := StoreFor[T2](w.registry)
	s3 := StoreFor[T3](w.registry)
	s4 := StoreFor[T4](w.registry)
	s5 := StoreFor[T5](w.registry)
	w.scan(w.slots(opts, s1, s2, s3, s4, s5), func(e Entity, row []int) bool {
		fn(e, s1.GetByIndex(row[0]), s2.GetByIndex(row[1]), s3.GetByIndex(row[2]), s4.GetByIndex(row[3]), s5.GetByIndex(row[4]))
		return true
	})
}
