package depot

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
)

// A system is any value with a Run method taking the view of the component types it works on,
// or no arguments at all for systems that need no components. RegisterSystemN wraps it in a
// dispatcher so each phase keeps a single list regardless of arity; the World builds a fresh
// view for every invocation. Views passed to Run must not be kept past the call.

// System0 is a system that works on no components.
type System0 interface {
	Run()
}

type SystemFunc0 func()

func (f SystemFunc0) Run() {
	f()
}

type dispatch0 struct {
	label string
	sys   System0
}

func (d *dispatch0) name() string {
	return d.label
}

func (d *dispatch0) run(_ *World) {
	d.sys.Run()
}

func RegisterSystem0(w *World, phase Phase, sys System0) {
	checkSystem(sys)
	w.register(phase, &dispatch0{
		label: systemName(sys),
		sys:   sys,
	})
}

func checkSystem(sys any) {
	if sys == nil {
		panic(InvalidSystemError{System: sys})
	}
	v := reflect.ValueOf(sys)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			panic(InvalidSystemError{System: sys})
		}
	}
}

// systemName prefers Named, then the function name for function systems, then the type name.
func systemName(sys any) string {
	if named, ok := sys.(Named); ok {
		return named.Name()
	}
	v := reflect.ValueOf(sys)
	if v.Kind() == reflect.Func {
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			return filepath.Base(fn.Name())
		}
	}
	return fmt.Sprintf("%T", sys)
}

func observerOptions(sys any, arity int) []ViewOption {
	observer, ok := sys.(Observer)
	if !ok {
		return nil
	}
	observed := observer.Observes()
	checkObserved(observed, arity)
	return []ViewOption{Observe(observed...)}
}
