package depot

import (
	"math"
	"strconv"
)

// Entity is an opaque identity that components are attached to.
// Entities are allocated in increasing order by a World and never reused.
type Entity uint32

// InvalidEntity is returned wherever a lookup has no owning entity.
const InvalidEntity Entity = math.MaxUint32

func (e Entity) Valid() bool {
	return e != InvalidEntity
}

func (e Entity) String() string {
	if !e.Valid() {
		return "entity(invalid)"
	}
	return "entity(" + strconv.FormatUint(uint64(e), 10) + ")"
}
