package depot

// System1 runs with a fresh View1 each time its phase comes up.
type System1[T1 any] interface {
	Run(*View1[T1])
}

type SystemFunc1[T1 any] func(*View1[T1])

func (f SystemFunc1[T1]) Run(v *View1[T1]) {
	f(v)
}

type dispatch1[T1 any] struct {
	label string
	sys   System1[T1]
	opts  []ViewOption
}

func (d *dispatch1[T1]) name() string {
	return d.label
}

func (d *dispatch1[T1]) run(w *World) {
	d.sys.Run(NewView1[T1](w, d.opts...))
}

func RegisterSystem1[T1 any](w *World, phase Phase, sys System1[T1]) {
	checkSystem(sys)
	w.register(phase, &dispatch1[T1]{
		label: systemName(sys),
		sys:   sys,
		opts:  observerOptions(sys, 1),
	})
}

// System2 runs with a fresh View2 each time its phase comes up.
type System2[T1, T2 any] interface {
	Run(*View2[T1, T2])
}

type SystemFunc2[T1, T2 any] func(*View2[T1, T2])

func (f SystemFunc2[T1, T2]) Run(v *View2[T1, T2]) {
	f(v)
}

type dispatch2[T1, T2 any] struct {
	label string
	sys   System2[T1, T2]
	opts  []ViewOption
}

func (d *dispatch2[T1, T2]) name() string {
	return d.label
}

func (d *dispatch2[T1, T2]) run(w *World) {
	d.sys.Run(NewView2[T1, T2](w, d.opts...))
}

func RegisterSystem2[T1, T2 any](w *World, phase Phase, sys System2[T1, T2]) {
	checkSystem(sys)
	w.register(phase, &dispatch2[T1, T2]{
		label: systemName(sys),
		sys:   sys,
		opts:  observerOptions(sys, 2),
	})
}

// System3 runs with a fresh View3 each time its phase comes up.
type System3[T1, T2, T3 any] interface {
	Run(*View3[T1, T2, T3])
}

type SystemFunc3[T1, T2, T3 any] func(*View3[T1, T2, T3])

func (f SystemFunc3[T1, T2, T3]) Run(v *View3[T1, T2, T3]) {
	f(v)
}

type dispatch3[T1, T2, T3 any] struct {
	label string
	sys   System3[T1, T2, T3]
	opts  []ViewOption
}

func (d *dispatch3[T1, T2, T3]) name() string {
	return d.label
}

func (d *dispatch3[T1, T2, T3]) run(w *World) {
	d.sys.Run(NewView3[T1, T2, T3](w, d.opts...))
}

func RegisterSystem3[T1, T2, T3 any](w *World, phase Phase, sys System3[T1, T2, T3]) {
	checkSystem(sys)
	w.register(phase, &dispatch3[T1, T2, T3]{
		label: systemName(sys),
		sys:   sys,
		opts:  observerOptions(sys, 3),
	})
}

// System4 runs with a fresh View4 each time its phase comes up.
type System4[T1, T2, T3, T4 any] interface {
	Run(*View4[T1, T2, T3, T4])
}

type SystemFunc4[T1, T2, T3, T4 any] func(*View4[T1, T2, T3, T4])

func (f SystemFunc4[T1, T2, T3, T4]) Run(v *View4[T1, T2, T3, T4]) {
	f(v)
}

type dispatch4[T1, T2, T3, T4 any] struct {
	label string
	sys   System4[T1, T2, T3, T4]
	opts  []ViewOption
}

func (d *dispatch4[T1, T2, T3, T4]) name() string {
	return d.label
}

func (d *dispatch4[T1, T2, T3, T4]) run(w *World) {
	d.sys.Run(NewView4[T1, T2, T3, T4](w, d.opts...))
}

func RegisterSystem4[T1, T2, T3, T4 any](w *World, phase Phase, sys System4[T1, T2, T3, T4]) {
	checkSystem(sys)
	w.register(phase, &dispatch4[T1, T2, T3, T4]{
		label: systemName(sys),
		sys:   sys,
		opts:  observerOptions(sys, 4),
	})
}

// System5 runs with a fresh View5 each time its phase comes up.
type System5[T1, T2, T3, T4, T5 any] interface {
	Run(*View5[T1, T2, T3, T4, T5])
}

type SystemFunc5[T1, T2, T3, T4, T5 any] func(*View5[T1, T2, T3, T4, T5])

func (f SystemFunc5[T1, T2, T3, T4, T5]) Run(v *View5[T1, T2, T3, T4, T5]) {
	f(v)
}

type dispatch5[T1, T2, T3, T4, T5 any] struct {
	label string
	sys   System5[T1, T2, T3, T4, T5]
	opts  []ViewOption
}

func (d *dispatch5[T1, T2, T3, T4, T5]) name() string {
	return d.label
}

func (d *dispatch5[T1, T2, T3, T4, T5]) run(w *World) {
	d.sys.Run(NewView5[T1, T2, T3, T4, T5](w, d.opts...))
}

func RegisterSystem5[T1, T2, T3, T4, T5 any](w *World, phase Phase, sys System5[T1, T2, T3, T4, T5]) {
	checkSystem(sys)
	w.register(phase, &dispatch5[T1, T2, T3, T4, T5]{
		label: systemName(sys),
		sys:   sys,
		opts:  observerOptions(sys, 5),
	})
}
