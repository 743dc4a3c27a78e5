package depot

// Phase selects when during AdvanceTick a system runs.
type Phase uint8

const (
	// PhaseNone is the zero value; no system ever runs in it.
	PhaseNone Phase = iota
	TickBegin
	Tick
	TickEnd

	phaseCount
)

// schedule is the fixed order AdvanceTick runs phases in.
var schedule = [...]Phase{TickBegin, Tick, TickEnd}

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case TickBegin:
		return "tickBegin"
	case Tick:
		return "tick"
	case TickEnd:
		return "tickEnd"
	}
	return "unknown"
}

func (p Phase) valid() bool {
	return p > PhaseNone && p < phaseCount
}
