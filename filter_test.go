package depot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entitySetup struct {
	attach func(w *World, e Entity)
	count  int
}

func withPos(w *World, e Entity)    { AddComponent(w, e, Position{}) }
func withVel(w *World, e Entity)    { AddComponent(w, e, Velocity{}) }
func withHealth(w *World, e Entity) { AddComponent(w, e, Health{}) }

func with(attach ...func(*World, Entity)) func(*World, Entity) {
	return func(w *World, e Entity) {
		for _, a := range attach {
			a(w, e)
		}
	}
}

func TestFilterMatching(t *testing.T) {
	tests := []struct {
		name            string
		entitySetups    []entitySetup
		filter          Filter
		expectedMatches int
	}{
		{
			name: "And matches exact",
			entitySetups: []entitySetup{
				{with(withPos, withVel), 5},
				{with(withPos), 10},
				{with(withVel), 15},
			},
			filter:          And(Has[Position](), Has[Velocity]()),
			expectedMatches: 5,
		},
		{
			name: "Or matches either",
			entitySetups: []entitySetup{
				{with(withPos, withVel), 5},
				{with(withPos), 10},
				{with(withVel), 15},
			},
			filter:          Or(Has[Position](), Has[Velocity]()),
			expectedMatches: 30,
		},
		{
			name: "Not excludes",
			entitySetups: []entitySetup{
				{with(withPos, withVel), 5},
				{with(withPos), 10},
				{with(withVel), 15},
				{with(withHealth), 20},
			},
			filter:          Not(Has[Velocity]()),
			expectedMatches: 30,
		},
		{
			name: "Nested",
			entitySetups: []entitySetup{
				{with(withPos, withVel, withHealth), 5},
				{with(withPos, withVel), 10},
				{with(withPos, withHealth), 15},
				{with(withVel, withHealth), 20},
				{with(withPos), 25},
			},
			// (Position AND Velocity) OR (Position AND Health)
			filter: Or(
				And(Has[Position](), Has[Velocity]()),
				And(Has[Position](), Has[Health]()),
			),
			expectedMatches: 30,
		},
		{
			name: "Not over nested filters",
			entitySetups: []entitySetup{
				{with(withPos, withVel), 5},
				{with(withPos, withHealth), 10},
				{with(withPos), 15},
			},
			filter:          Not(Or(Has[Velocity](), Has[Health]())),
			expectedMatches: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := Factory.NewWorld()
			var entities []Entity
			for _, setup := range tt.entitySetups {
				for i := 0; i < setup.count; i++ {
					e := world.NewEntity()
					setup.attach(world, e)
					entities = append(entities, e)
				}
			}

			matches := 0
			for _, e := range entities {
				if world.Matches(e, tt.filter) {
					matches++
				}
			}
			assert.Equal(t, tt.expectedMatches, matches)
		})
	}
}

func TestViewWhere(t *testing.T) {
	world := Factory.NewWorld()
	for i := 0; i < 6; i++ {
		e := world.NewEntity()
		AddComponent(world, e, Position{X: float64(i)})
		if i%2 == 0 {
			AddComponent(world, e, Velocity{})
		}
		if i >= 3 {
			AddComponent(world, e, Health{})
		}
	}

	still := NewView1[Position](world, Where(Not(Has[Velocity]())))
	assert.Equal(t, []Entity{1, 3, 5}, still.Entities())

	both := NewView1[Position](world, Where(Has[Velocity]()), Where(Has[Health]()))
	assert.Equal(t, []Entity{4}, both.Entities())

	_, ok := both.ByEntity(2)
	assert.False(t, ok, "ByEntity honours Where")
	row, ok := both.ByEntity(4)
	require.True(t, ok)
	assert.Equal(t, 4.0, row.A.X)

	var viaForEach []Entity
	ForEach2(world, func(e Entity, _ *Position, hp *Health) {
		viaForEach = append(viaForEach, e)
	}, Observe(1), Where(Or(Has[Velocity](), Has[Health]())))
	assert.Equal(t, []Entity{0, 2, 3, 4, 5}, viaForEach)
}

func TestNotOverNestedFiltersOnly(t *testing.T) {
	world := Factory.NewWorld()
	bare := world.NewEntity()
	AddComponent(world, bare, Position{})
	moving := world.NewEntity()
	AddComponent(world, moving, Position{})
	AddComponent(world, moving, Velocity{})

	notMoving := Not(And(Has[Velocity]()))
	assert.True(t, world.Matches(bare, notMoving))
	assert.False(t, world.Matches(moving, notMoving))
	assert.True(t, world.Matches(bare, Not()), "an empty Not rejects nothing")
	assert.Equal(t, []Entity{bare}, NewView1[Position](world, Where(notMoving)).Entities())
}

func TestFilterRejectsUnknownItems(t *testing.T) {
	tests := []struct {
		name  string
		build func() Filter
		item  any
	}{
		{"And with an int", func() Filter { return And(42) }, 42},
		{"Or with a string", func() Filter { return Or(Has[Position](), "velocity") }, "velocity"},
		{"Not with nil", func() Filter { return Not(nil) }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, InvalidFilterItemError{Item: tt.item}, func() {
				tt.build()
			})
		})
	}
}
