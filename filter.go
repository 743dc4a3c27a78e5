package depot

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

// Term names a component type inside a Filter. A Term on its own is also a Filter matching
// entities that own its type.
type Term interface {
	Filter
	store(r *Registry) AnyStore
}

type term[T any] struct{}

func (term[T]) store(r *Registry) AnyStore {
	return StoreFor[T](r)
}

func (t term[T]) compile(r *Registry) predicate {
	return newFilterNode(OpAnd, []any{t}).compile(r)
}

// Has is the Term for component type T.
func Has[T any]() Term {
	return term[T]{}
}

// Filter is a boolean expression over the component types an entity owns. Build one with And,
// Or and Not, whose arguments may be Terms or nested Filters. Any other argument panics with
// InvalidFilterItemError.
type Filter interface {
	compile(r *Registry) predicate
}

type predicate func(e Entity, signature mask.Mask) bool

type filterNode struct {
	op       Operation
	terms    []Term
	children []Filter
}

func And(items ...any) Filter {
	return newFilterNode(OpAnd, items)
}

func Or(items ...any) Filter {
	return newFilterNode(OpOr, items)
}

func Not(items ...any) Filter {
	return newFilterNode(OpNot, items)
}

func newFilterNode(op Operation, items []any) *filterNode {
	n := &filterNode{op: op}
	for _, item := range items {
		switch v := item.(type) {
		case Term:
			n.terms = append(n.terms, v)
		case []Term:
			n.terms = append(n.terms, v...)
		case Filter:
			n.children = append(n.children, v)
		default:
			panic(InvalidFilterItemError{Item: item})
		}
	}
	return n
}

// compile resolves the node's terms once per scan. Terms whose store has a signature bit are
// checked with mask arithmetic; the rest are looked up in their store.
func (n *filterNode) compile(r *Registry) predicate {
	var nodeMask mask.Mask
	var masked bool
	var unmasked []AnyStore
	for _, t := range n.terms {
		sto := t.store(r)
		if bit, ok := sto.signatureBit(); ok {
			nodeMask.Mark(bit)
			masked = true
			continue
		}
		unmasked = append(unmasked, sto)
	}
	children := make([]predicate, len(n.children))
	for i, child := range n.children {
		children[i] = child.compile(r)
	}

	switch n.op {
	case OpAnd:
		return func(e Entity, sig mask.Mask) bool {
			if masked && !sig.ContainsAll(nodeMask) {
				return false
			}
			for _, sto := range unmasked {
				if !sto.Contains(e) {
					return false
				}
			}
			for _, child := range children {
				if !child(e, sig) {
					return false
				}
			}
			return true
		}

	case OpOr:
		return func(e Entity, sig mask.Mask) bool {
			if masked && sig.ContainsAny(nodeMask) {
				return true
			}
			for _, sto := range unmasked {
				if sto.Contains(e) {
					return true
				}
			}
			for _, child := range children {
				if child(e, sig) {
					return true
				}
			}
			return false
		}

	case OpNot:
		return func(e Entity, sig mask.Mask) bool {
			if masked && sig.ContainsAny(nodeMask) {
				return false
			}
			for _, sto := range unmasked {
				if sto.Contains(e) {
					return false
				}
			}
			for _, child := range children {
				if child(e, sig) {
					return false
				}
			}
			return true
		}
	}
	return func(Entity, mask.Mask) bool { return false }
}

// Where restricts a view or ForEach to entities matching f, on top of its slot requirements.
// Passing Where more than once requires every filter to match.
func Where(f Filter) ViewOption {
	return func(o *viewOptions) {
		if f == nil {
			return
		}
		o.filters = append(o.filters, f)
	}
}

// Matches reports whether e currently satisfies f.
func (w *World) Matches(e Entity, f Filter) bool {
	return f.compile(w.registry)(e, w.registry.Signature(e))
}
