package depot

import (
	"fmt"
	"reflect"
)

// ConstructionError reports a component constructor that failed during Emplace.
type ConstructionError struct {
	Type   reflect.Type
	Entity Entity
	Err    error
}

func (e ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct %v for %v: %v", e.Type, e.Entity, e.Err)
}

func (e ConstructionError) Unwrap() error {
	return e.Err
}

type InvalidPhaseError struct {
	Phase Phase
}

func (e InvalidPhaseError) Error() string {
	return fmt.Sprintf("systems cannot be registered for phase %v", e.Phase)
}

type InvalidSystemError struct {
	System any
}

func (e InvalidSystemError) Error() string {
	return fmt.Sprintf("system %T is nil", e.System)
}

// ObservedAnchorError is raised when a view is asked to observe its first slot.
// The first slot drives iteration and must always be required.
type ObservedAnchorError struct{}

func (e ObservedAnchorError) Error() string {
	return "the anchor slot (0) of a view cannot be observed"
}

type SlotRangeError struct {
	Slot, Arity int
}

func (e SlotRangeError) Error() string {
	return fmt.Sprintf("slot %d is out of range for a view over %d components", e.Slot, e.Arity)
}

// InvalidFilterItemError is raised when And, Or or Not get an argument that is neither a Term nor
// a Filter.
type InvalidFilterItemError struct {
	Item any
}

func (e InvalidFilterItemError) Error() string {
	return fmt.Sprintf("filter item of type %T is neither a Term nor a Filter", e.Item)
}
