package depot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Tag struct{}

type Mass float64

type Label string

// newViewWorld builds entities 0..n-1 where entity i owns Position always, Velocity when i is
// even and Health when i is a multiple of three.
func newViewWorld(n int) *World {
	world := Factory.NewWorld()
	for i := 0; i < n; i++ {
		e := world.NewEntity()
		AddComponent(world, e, Position{X: float64(i)})
		if i%2 == 0 {
			AddComponent(world, e, Velocity{X: float64(i) * 10})
		}
		if i%3 == 0 {
			AddComponent(world, e, Health{Current: i})
		}
	}
	return world
}

func TestViewIntersection(t *testing.T) {
	tests := []struct {
		name string
		got  func(*World) []Entity
		want []Entity
	}{
		{
			name: "Single type",
			got:  func(w *World) []Entity { return NewView1[Velocity](w).Entities() },
			want: []Entity{0, 2, 4, 6, 8},
		},
		{
			name: "Two types",
			got:  func(w *World) []Entity { return NewView2[Position, Velocity](w).Entities() },
			want: []Entity{0, 2, 4, 6, 8},
		},
		{
			name: "Three types",
			got:  func(w *World) []Entity { return NewView3[Position, Velocity, Health](w).Entities() },
			want: []Entity{0, 6},
		},
		{
			name: "Type nobody owns",
			got:  func(w *World) []Entity { return NewView2[Position, Tag](w).Entities() },
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got(newViewWorld(10)))
		})
	}
}

func TestViewRowsPointAtOwnerValues(t *testing.T) {
	world := newViewWorld(10)
	// Shuffle dense order so anchor slots and entity ids diverge.
	RemoveComponent[Velocity](world, 0)
	AddComponent(world, 0, Velocity{X: 0})
	RemoveComponent[Position](world, 3)

	view := NewView2[Velocity, Position](world)
	require.Equal(t, 5, view.Len())
	for i, row := range view.All() {
		require.NotNil(t, row.A)
		require.NotNil(t, row.B)
		assert.Equal(t, float64(row.Entity)*10, row.A.X, "row %d", i)
		assert.Equal(t, float64(row.Entity), row.B.X, "row %d", i)
		assert.Same(t, GetComponent[Position](world, row.Entity), row.B)
	}

	// Rows follow the anchor's dense order.
	assert.Equal(t, StoreFor[Velocity](world.registry).Entities(), view.Entities())
}

func TestViewObservedSlot(t *testing.T) {
	world := newViewWorld(6)

	view := NewView2[Position, Health](world, Observe(1))
	require.Equal(t, 6, view.Len())
	for _, row := range view.All() {
		require.NotNil(t, row.A)
		if row.Entity%3 == 0 {
			require.NotNil(t, row.B)
			assert.Equal(t, int(row.Entity), row.B.Current)
		} else {
			assert.Nil(t, row.B)
		}
	}

	// Observed slots do not relax the required ones.
	mixed := NewView3[Position, Velocity, Health](world, Observe(2))
	assert.Equal(t, []Entity{0, 2, 4}, mixed.Entities())
}

func TestViewObservePanics(t *testing.T) {
	world := newViewWorld(3)

	assert.PanicsWithValue(t, ObservedAnchorError{}, func() {
		NewView2[Position, Velocity](world, Observe(0))
	})
	assert.PanicsWithValue(t, SlotRangeError{Slot: 2, Arity: 2}, func() {
		NewView2[Position, Velocity](world, Observe(2))
	})
	assert.PanicsWithValue(t, SlotRangeError{Slot: -1, Arity: 1}, func() {
		ForEach1(world, func(Entity, *Position) {}, Observe(-1))
	})
}

func TestViewByEntity(t *testing.T) {
	world := newViewWorld(6)
	view := NewView2[Position, Velocity](world)

	row, ok := view.ByEntity(4)
	require.True(t, ok)
	assert.Equal(t, Entity(4), row.Entity)
	assert.Equal(t, 40.0, row.B.X)

	_, ok = view.ByEntity(3)
	assert.False(t, ok, "entity 3 has no velocity")
	_, ok = view.ByEntity(InvalidEntity)
	assert.False(t, ok)

	observed := NewView2[Position, Velocity](world, Observe(1))
	row, ok = observed.ByEntity(3)
	require.True(t, ok)
	assert.Nil(t, row.B)
}

func TestViewIsASnapshot(t *testing.T) {
	world := newViewWorld(4)
	view := NewView1[Position](world)
	require.Equal(t, 4, view.Len())

	AddComponent(world, world.NewEntity(), Position{})
	assert.Equal(t, 4, view.Len())
	assert.Equal(t, 5, NewView1[Position](world).Len())
}

func TestForEachMatchesView(t *testing.T) {
	world := newViewWorld(12)

	var viaForEach []Entity
	ForEach3(world, func(e Entity, pos *Position, vel *Velocity, hp *Health) {
		assert.Same(t, GetComponent[Position](world, e), pos)
		assert.Same(t, GetComponent[Velocity](world, e), vel)
		viaForEach = append(viaForEach, e)
	}, Observe(2))

	assert.Equal(t, NewView3[Position, Velocity, Health](world, Observe(2)).Entities(), viaForEach)
}

func TestForEachMutatesInPlace(t *testing.T) {
	world := newViewWorld(4)
	ForEach2(world, func(_ Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
	})

	assert.Equal(t, []Position{{X: 0}, {X: 1}, {X: 22}, {X: 3}}, AllOf[Position](world))
}

func TestViewAllStopsEarly(t *testing.T) {
	world := newViewWorld(10)
	view := NewView1[Position](world)

	var seen []int
	for i := range view.All() {
		if i == 3 {
			break
		}
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestHigherArityViews(t *testing.T) {
	world := Factory.NewWorld()
	for i := 0; i < 4; i++ {
		e := world.NewEntity()
		AddComponent(world, e, Position{X: float64(i)})
		AddComponent(world, e, Velocity{})
		AddComponent(world, e, Health{})
		AddComponent(world, e, Mass(i))
		if i != 2 {
			AddComponent(world, e, Label("body"))
		}
	}

	four := NewView4[Position, Velocity, Health, Mass](world)
	assert.Equal(t, 4, four.Len())
	assert.Equal(t, Mass(3), *four.At(3).D)

	five := NewView5[Position, Velocity, Health, Mass, Label](world)
	assert.Equal(t, []Entity{0, 1, 3}, five.Entities())
	_, ok := five.ByEntity(2)
	assert.False(t, ok)

	optional := NewView5[Position, Velocity, Health, Mass, Label](world, Observe(4))
	assert.Equal(t, 4, optional.Len())
	row, ok := optional.ByEntity(2)
	require.True(t, ok)
	assert.Nil(t, row.E)

	var count int
	ForEach5(world, func(_ Entity, _ *Position, _ *Velocity, _ *Health, m *Mass, l *Label) {
		*m *= 2
		count++
	})
	assert.Equal(t, 3, count)
	assert.Equal(t, []Mass{0, 2, 2, 6}, AllOf[Mass](world))

	var each []Entity
	four.Each(func(e Entity, _ *Position, _ *Velocity, _ *Health, _ *Mass) {
		each = append(each, e)
	})
	assert.Equal(t, four.Entities(), each)
}
